package menu

import "math"

type aggKey struct {
	name string
	unit string
}

// Aggregate flattens every course of every menu and sums quantities grouped
// by the (name, unit) pair. Same name with a different unit stays a separate
// line. Sums are rounded to the nearest integer for display; output keeps
// first-seen order so results are deterministic.
func Aggregate(menus []FullMenu) []Ingredient {
	totals := make(map[aggKey]float64)
	var order []aggKey

	for _, m := range menus {
		for _, ing := range m.AllIngredients() {
			k := aggKey{name: ing.Name, unit: ing.Unit}
			if _, seen := totals[k]; !seen {
				order = append(order, k)
			}
			totals[k] += ing.Qty
		}
	}

	out := make([]Ingredient, 0, len(order))
	for _, k := range order {
		out = append(out, Ingredient{
			Name: k.name,
			Qty:  math.Round(totals[k]),
			Unit: k.unit,
		})
	}
	return out
}
