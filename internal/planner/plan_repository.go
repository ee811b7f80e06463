package planner

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kondate/internal/menu"
	"kondate/internal/shopping"
)

const dateLayout = "2006-01-02"

// DailyMenu is one planned day as stored in daily_menus.
type DailyMenu struct {
	ID       string
	UserID   string
	MenuDate time.Time
	Dish     string
	Menu     menu.FullMenu
}

type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// SaveWeekly upserts the weekly plan keyed by (user_id, week_start).
func (r *PlanRepository) SaveWeekly(userID string, weekStart time.Time, plan *PlanData) error {
	menuData, err := json.Marshal(plan.Menu)
	if err != nil {
		return fmt.Errorf("failed to marshal menu data: %w", err)
	}
	listData, err := json.Marshal(plan.ShoppingList)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO weekly_menus (user_id, week_start, menu_data, shopping_list, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, week_start) DO UPDATE SET
			menu_data = excluded.menu_data,
			shopping_list = excluded.shopping_list,
			updated_at = CURRENT_TIMESTAMP
	`, userID, weekStart.Format(dateLayout), string(menuData), string(listData))
	if err != nil {
		return fmt.Errorf("failed to save weekly menu: %w", err)
	}
	return nil
}

// GetWeekly returns the stored plan for the week, or nil if none exists.
func (r *PlanRepository) GetWeekly(userID string, weekStart time.Time) (*PlanData, error) {
	var menuData, listData string
	err := r.db.QueryRow(`
		SELECT menu_data, shopping_list FROM weekly_menus
		WHERE user_id = ? AND week_start = ?
	`, userID, weekStart.Format(dateLayout)).Scan(&menuData, &listData)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly menu: %w", err)
	}

	var plan PlanData
	if err := json.Unmarshal([]byte(menuData), &plan.Menu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu data: %w", err)
	}
	if err := json.Unmarshal([]byte(listData), &plan.ShoppingList); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &plan, nil
}

// UpsertDay stores one day's menu keyed by (user_id, menu_date).
func (r *PlanRepository) UpsertDay(userID string, date time.Time, dish string, m menu.FullMenu) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal daily menu: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO daily_menus (id, user_id, menu_date, dish, ingredients, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, menu_date) DO UPDATE SET
			dish = excluded.dish,
			ingredients = excluded.ingredients,
			updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), userID, date.Format(dateLayout), dish, string(data))
	if err != nil {
		return fmt.Errorf("failed to upsert daily menu: %w", err)
	}
	return nil
}

// GetDay returns the menu stored for the date, or nil if none exists.
func (r *PlanRepository) GetDay(userID string, date time.Time) (*DailyMenu, error) {
	row := r.db.QueryRow(`
		SELECT id, user_id, menu_date, dish, ingredients FROM daily_menus
		WHERE user_id = ? AND menu_date = ?
	`, userID, date.Format(dateLayout))
	dm, err := scanDailyMenu(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily menu: %w", err)
	}
	return dm, nil
}

// ListDays returns all stored days for the user ordered by date.
func (r *PlanRepository) ListDays(userID string) ([]DailyMenu, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, menu_date, dish, ingredients FROM daily_menus
		WHERE user_id = ? ORDER BY menu_date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily menus: %w", err)
	}
	defer rows.Close()
	return scanDailyMenuRows(rows)
}

// ListDaysRange returns stored days within [from, to] ordered by date.
func (r *PlanRepository) ListDaysRange(userID string, from, to time.Time) ([]DailyMenu, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, menu_date, dish, ingredients FROM daily_menus
		WHERE user_id = ? AND menu_date >= ? AND menu_date <= ?
		ORDER BY menu_date
	`, userID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily menus: %w", err)
	}
	defer rows.Close()
	return scanDailyMenuRows(rows)
}

// DatedMenus converts stored days into reconciliation input rows.
func DatedMenus(days []DailyMenu) []shopping.DatedMenu {
	out := make([]shopping.DatedMenu, 0, len(days))
	for _, d := range days {
		out = append(out, shopping.DatedMenu{Date: d.MenuDate, Menu: d.Menu})
	}
	return out
}

func scanDailyMenu(row *sql.Row) (*DailyMenu, error) {
	var dm DailyMenu
	var dateStr, raw string
	if err := row.Scan(&dm.ID, &dm.UserID, &dateStr, &dm.Dish, &raw); err != nil {
		return nil, err
	}
	return decodeDailyMenu(&dm, dateStr, raw)
}

func scanDailyMenuRows(rows *sql.Rows) ([]DailyMenu, error) {
	var out []DailyMenu
	for rows.Next() {
		var dm DailyMenu
		var dateStr, raw string
		if err := rows.Scan(&dm.ID, &dm.UserID, &dateStr, &dm.Dish, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan daily menu: %w", err)
		}
		decoded, err := decodeDailyMenu(&dm, dateStr, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *decoded)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily menus: %w", err)
	}
	return out, nil
}

func decodeDailyMenu(dm *DailyMenu, dateStr, raw string) (*DailyMenu, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu date %q: %w", dateStr, err)
	}
	dm.MenuDate = date
	// A corrupt ingredients column degrades to an empty menu; one bad row
	// must not take down every listing that scans past it.
	if m, err := menu.DecodeIngredients([]byte(raw), dm.Dish); err == nil {
		dm.Menu = m
	}
	return dm, nil
}
