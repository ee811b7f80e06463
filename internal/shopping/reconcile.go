// Package shopping derives the shopping list by netting aggregated menu
// demand against pantry inventory. The list is a pure function of its
// inputs and is recomputed, never persisted as independent truth.
package shopping

import (
	"time"

	"kondate/internal/inventory"
	"kondate/internal/menu"
)

// Item is one line of the shopping list.
type Item struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// DatedMenu is a persisted daily menu with its calendar date.
type DatedMenu struct {
	Date time.Time
	Menu menu.FullMenu
}

// Reconcile subtracts on-hand inventory from aggregated demand. Matching is
// by exact (name, unit); the result is clamped at zero and fully satisfied
// lines are dropped.
func Reconcile(demand []menu.Ingredient, stock []inventory.Item) []Item {
	out := make([]Item, 0, len(demand))
	for _, d := range demand {
		needed := d.Qty
		for _, inv := range stock {
			if inv.Name == d.Name && inv.Unit == d.Unit {
				needed -= inv.Qty
				break
			}
		}
		if needed > 0 {
			out = append(out, Item{Name: d.Name, Qty: needed, Unit: d.Unit})
		}
	}
	return out
}

// FromMenus aggregates the given menus and reconciles against stock in one
// pass. This is the path used right after generating a fresh plan.
func FromMenus(menus []menu.FullMenu, stock []inventory.Item) []Item {
	return Reconcile(menu.Aggregate(menus), stock)
}

// FromDailyMenus reconciles demand from persisted daily menus, keeping only
// rows dated today or later. Past days never contribute to demand even when
// their rows were never deleted.
func FromDailyMenus(rows []DatedMenu, stock []inventory.Item, today time.Time) []Item {
	var menus []menu.FullMenu
	for _, row := range rows {
		if !dayBefore(row.Date, today) {
			menus = append(menus, row.Menu)
		}
	}
	if len(menus) == 0 {
		return nil
	}
	return FromMenus(menus, stock)
}

// dayBefore reports whether a falls on an earlier calendar day than b. The
// comparison is on the calendar date each value carries in its own location:
// menu rows are parsed at UTC midnight while the clock keeps the server's
// zone, so comparing instants would shift the boundary by the zone offset.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
