package favorites

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"kondate/internal/menu"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns the user's favorites, newest first.
func (r *Repository) List(userID string) ([]Favorite, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, dish, ingredients, created_at FROM favorite_menus
		WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		var raw string
		if err := rows.Scan(&f.ID, &f.UserID, &f.Dish, &raw, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &f.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite ingredients: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return out, nil
}

// Names returns the favorited dish names as a set.
func (r *Repository) Names(userID string) (map[string]bool, error) {
	favs, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(favs))
	for _, f := range favs {
		names[f.Dish] = true
	}
	return names, nil
}

// Add stores a favorite; adding the same dish twice refreshes its ingredients.
func (r *Repository) Add(userID, dish string, ingredients []menu.Ingredient) error {
	if ingredients == nil {
		ingredients = []menu.Ingredient{}
	}
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite ingredients: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO favorite_menus (id, user_id, dish, ingredients, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, dish) DO UPDATE SET ingredients = excluded.ingredients
	`, uuid.NewString(), userID, dish, string(raw))
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the favorite for the dish. Removing a dish that was never
// favorited is not an error.
func (r *Repository) Remove(userID, dish string) error {
	_, err := r.db.Exec(`
		DELETE FROM favorite_menus WHERE user_id = ? AND dish = ?
	`, userID, dish)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
