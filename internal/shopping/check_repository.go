package shopping

import (
	"database/sql"
	"fmt"
)

// CheckRepository persists which shopping-list items were ticked off for a
// given week.
type CheckRepository struct {
	db *sql.DB
}

func NewCheckRepository(db *sql.DB) *CheckRepository {
	return &CheckRepository{db: db}
}

// SetChecked marks an item checked or unchecked for the week.
func (r *CheckRepository) SetChecked(userID, weekIdentifier, itemName string, checked bool) error {
	state := 0
	if checked {
		state = 1
	}
	_, err := r.db.Exec(`
		INSERT INTO shopping_checks (user_id, week_identifier, item_name, is_checked, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, week_identifier, item_name) DO UPDATE SET
			is_checked = excluded.is_checked,
			updated_at = CURRENT_TIMESTAMP
	`, userID, weekIdentifier, itemName, state)
	if err != nil {
		return fmt.Errorf("failed to set shopping check: %w", err)
	}
	return nil
}

// ListChecked returns the names of items checked off for the week.
func (r *CheckRepository) ListChecked(userID, weekIdentifier string) (map[string]bool, error) {
	rows, err := r.db.Query(`
		SELECT item_name FROM shopping_checks
		WHERE user_id = ? AND week_identifier = ? AND is_checked = 1
	`, userID, weekIdentifier)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping checks: %w", err)
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan shopping check: %w", err)
		}
		checked[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping checks: %w", err)
	}
	return checked, nil
}
