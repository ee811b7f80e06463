// Package favorites tracks the dishes a household has starred. Favorite
// dishes get a selection boost when a day's menu is reshuffled.
package favorites

import (
	"time"

	"kondate/internal/menu"
)

type Favorite struct {
	ID          string            `json:"id"`
	UserID      string            `json:"-"`
	Dish        string            `json:"dish_name"`
	Ingredients []menu.Ingredient `json:"ingredients"`
	CreatedAt   time.Time         `json:"created_at"`
}
