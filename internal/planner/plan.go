package planner

import (
	"time"

	"kondate/internal/menu"
	"kondate/internal/shopping"
)

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "日曜日",
	time.Monday:    "月曜日",
	time.Tuesday:   "火曜日",
	time.Wednesday: "水曜日",
	time.Thursday:  "木曜日",
	time.Friday:    "金曜日",
	time.Saturday:  "土曜日",
}

// WeekdayLabel returns the Japanese weekday name for a date.
func WeekdayLabel(t time.Time) string {
	return weekdayLabels[t.Weekday()]
}

// MenuItem is one planned day. Date uses the 2006-01-02 form; Menu is
// serialized under "ingredients" to stay compatible with stored plans.
type MenuItem struct {
	Day  string        `json:"day"`
	Date string        `json:"date,omitempty"`
	Dish string        `json:"dish"`
	Menu menu.FullMenu `json:"ingredients"`
}

// PlanData is a generated plan: the ordered day list plus the shopping list
// derived from it. The shopping list is always recomputed from the menu
// list and inventory, never edited independently.
type PlanData struct {
	Menu         []MenuItem      `json:"menu"`
	ShoppingList []shopping.Item `json:"shopping_list"`
}

// Menus returns the full menus of every planned day in order.
func (p PlanData) Menus() []menu.FullMenu {
	out := make([]menu.FullMenu, 0, len(p.Menu))
	for _, m := range p.Menu {
		out = append(out, m.Menu)
	}
	return out
}

// WeekStart returns the Monday of the week containing t, at day precision.
func WeekStart(t time.Time) time.Time {
	t = truncateDay(t)
	offset := int(t.Weekday()-time.Monday+7) % 7
	return t.AddDate(0, 0, -offset)
}
