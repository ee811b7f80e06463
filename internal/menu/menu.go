package menu

import (
	"encoding/json"
	"fmt"
)

// Category labels a course within a menu. The values are the wire strings
// used by the persistence layer and the UI, so they stay in Japanese.
type Category string

const (
	CategoryStaple Category = "主食"
	CategoryMain   Category = "主菜"
	CategorySide   Category = "副菜"
	CategorySoup   Category = "汁物"
)

// Ingredient is a (name, quantity, unit) line. Two lines are fungible only
// when both name and unit match exactly; no unit conversion is ever applied.
type Ingredient struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// DishItem is a single course within a full menu.
type DishItem struct {
	Category    Category     `json:"category"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// FullMenu is the ordered list of courses for one meal occasion.
type FullMenu struct {
	Dishes []DishItem `json:"dishes"`
}

// AllIngredients flattens every course's ingredient list in order.
func (m FullMenu) AllIngredients() []Ingredient {
	var all []Ingredient
	for _, d := range m.Dishes {
		all = append(all, d.Ingredients...)
	}
	return all
}

// MainDish returns the main course, or false if the menu has none.
func (m FullMenu) MainDish() (DishItem, bool) {
	for _, d := range m.Dishes {
		if d.Category == CategoryMain {
			return d, true
		}
	}
	return DishItem{}, false
}

// DecodeIngredients normalizes the persisted ingredients column. Older rows
// stored a flat ingredient array instead of a structured menu; those are
// upgraded to a FullMenu with a single main course so callers only ever see
// one shape.
func DecodeIngredients(raw []byte, dishName string) (FullMenu, error) {
	var full FullMenu
	if err := json.Unmarshal(raw, &full); err == nil && len(full.Dishes) > 0 {
		return full, nil
	}

	var flat []Ingredient
	if err := json.Unmarshal(raw, &flat); err != nil {
		return FullMenu{}, fmt.Errorf("ingredients column is neither a menu nor an ingredient list: %w", err)
	}
	return FullMenu{Dishes: []DishItem{{
		Category:    CategoryMain,
		Name:        dishName,
		Ingredients: flat,
	}}}, nil
}
