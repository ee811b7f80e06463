package shopping

import (
	"testing"
	"time"

	"kondate/internal/inventory"
	"kondate/internal/menu"
)

func TestReconcile(t *testing.T) {
	t.Run("PartialStock", func(t *testing.T) {
		demand := []menu.Ingredient{{Name: "玉ねぎ", Qty: 5, Unit: "個"}}
		stock := []inventory.Item{{Name: "玉ねぎ", Qty: 2, Unit: "個"}}

		got := Reconcile(demand, stock)
		if len(got) != 1 || got[0].Qty != 3 {
			t.Fatalf("Expected 玉ねぎ 3個, got %+v", got)
		}
	})

	t.Run("FullyStockedLineDropped", func(t *testing.T) {
		demand := []menu.Ingredient{{Name: "玉ねぎ", Qty: 5, Unit: "個"}}
		stock := []inventory.Item{{Name: "玉ねぎ", Qty: 6, Unit: "個"}}

		if got := Reconcile(demand, stock); len(got) != 0 {
			t.Fatalf("Expected an empty list, got %+v", got)
		}
	})

	t.Run("UnitMismatchIgnoresStock", func(t *testing.T) {
		demand := []menu.Ingredient{{Name: "玉ねぎ", Qty: 2, Unit: "個"}}
		stock := []inventory.Item{{Name: "玉ねぎ", Qty: 500, Unit: "g"}}

		got := Reconcile(demand, stock)
		if len(got) != 1 || got[0].Qty != 2 {
			t.Fatalf("Grams must not satisfy a demand in pieces, got %+v", got)
		}
	})

	t.Run("NoStock", func(t *testing.T) {
		demand := []menu.Ingredient{{Name: "米", Qty: 600, Unit: "g"}}
		got := Reconcile(demand, nil)
		if len(got) != 1 || got[0].Qty != 600 {
			t.Fatalf("Expected the full demand, got %+v", got)
		}
	})
}

func TestFromDailyMenusTemporalFilter(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	mk := func(day int, qty float64) DatedMenu {
		return DatedMenu{
			Date: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			Menu: menu.FullMenu{Dishes: []menu.DishItem{{
				Category:    menu.CategoryMain,
				Ingredients: []menu.Ingredient{{Name: "玉ねぎ", Qty: qty, Unit: "個"}},
			}}},
		}
	}

	rows := []DatedMenu{
		mk(9, 10),  // yesterday, must not count
		mk(10, 2),  // today counts even though the clock is past midnight
		mk(11, 3),  // tomorrow
	}

	got := FromDailyMenus(rows, nil, today)
	if len(got) != 1 {
		t.Fatalf("Expected a single aggregated line, got %+v", got)
	}
	if got[0].Qty != 5 {
		t.Errorf("Expected only today and tomorrow to count (2+3), got %g", got[0].Qty)
	}
}

func TestFromDailyMenusWestOfUTCClock(t *testing.T) {
	// Rows are parsed at UTC midnight; a morning clock in a zone west of
	// UTC is still the same calendar day and must not push today's menu
	// into the past.
	loc := time.FixedZone("UTC-7", -7*60*60)
	today := time.Date(2026, 8, 28, 9, 0, 0, 0, loc)
	rows := []DatedMenu{{
		Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Menu: menu.FullMenu{Dishes: []menu.DishItem{{
			Category:    menu.CategoryMain,
			Ingredients: []menu.Ingredient{{Name: "玉ねぎ", Qty: 2, Unit: "個"}},
		}}},
	}}

	got := FromDailyMenus(rows, nil, today)
	if len(got) != 1 || got[0].Qty != 2 {
		t.Fatalf("Today's menu must count regardless of the zone, got %+v", got)
	}
}

func TestFromDailyMenusAllPast(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []DatedMenu{{
		Date: today.AddDate(0, 0, -2),
		Menu: menu.FullMenu{Dishes: []menu.DishItem{{
			Ingredients: []menu.Ingredient{{Name: "米", Qty: 300, Unit: "g"}},
		}}},
	}}

	if got := FromDailyMenus(rows, nil, today); got != nil {
		t.Fatalf("Expected nil for an all-past plan, got %+v", got)
	}
}
