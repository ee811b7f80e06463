package inventory

import (
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns the user's stock ordered by name.
func (r *Repository) List(userID string) ([]Item, error) {
	rows, err := r.db.Query(`
		SELECT name, qty, unit FROM inventory
		WHERE user_id = ? ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.Qty, &it.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}
	return items, nil
}

// Upsert sets the stored quantity for an item keyed by (user, name, unit).
// A zero or negative quantity removes the row instead.
func (r *Repository) Upsert(userID string, item Item) error {
	if item.Qty <= 0 {
		return r.Delete(userID, item.Name, item.Unit)
	}
	_, err := r.db.Exec(`
		INSERT INTO inventory (user_id, name, unit, qty, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, name, unit) DO UPDATE SET
			qty = excluded.qty,
			updated_at = CURRENT_TIMESTAMP
	`, userID, item.Name, item.Unit, item.Qty)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory item: %w", err)
	}
	return nil
}

func (r *Repository) Delete(userID, name, unit string) error {
	_, err := r.db.Exec(`
		DELETE FROM inventory WHERE user_id = ? AND name = ? AND unit = ?
	`, userID, name, unit)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

// Adjust adds delta to the stored quantity, creating the row when adding to
// an item not yet tracked. The result is clamped at zero; a row that reaches
// zero is removed.
func (r *Repository) Adjust(userID string, name, unit string, delta float64) error {
	var qty float64
	err := r.db.QueryRow(`
		SELECT qty FROM inventory WHERE user_id = ? AND name = ? AND unit = ?
	`, userID, name, unit).Scan(&qty)
	if err == sql.ErrNoRows {
		if delta <= 0 {
			return nil
		}
		return r.Upsert(userID, Item{Name: name, Qty: delta, Unit: unit})
	}
	if err != nil {
		return fmt.Errorf("failed to read inventory item: %w", err)
	}

	next := qty + delta
	if next <= 0 {
		return r.Delete(userID, name, unit)
	}
	_, err = r.db.Exec(`
		UPDATE inventory SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND name = ? AND unit = ?
	`, next, userID, name, unit)
	if err != nil {
		return fmt.Errorf("failed to adjust inventory item: %w", err)
	}
	return nil
}
