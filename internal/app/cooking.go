package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kondate/internal/history"
	"kondate/internal/metrics"
	"kondate/internal/planner"
	"kondate/internal/shopping"
)

// MarkCooked records that a dish was cooked on a date, with an optional
// rating. When the dish matches that date's planned menu the menu's
// ingredients are deducted from inventory, clamped at zero.
func (a *App) MarkCooked(ctx context.Context, userID, dish string, date time.Time, rating *history.Rating) error {
	rec := history.Record{UserID: userID, DishName: dish, CookedDate: date}
	if rating != nil {
		if !rating.Valid() {
			return &planner.ValidationError{Reason: "ratings must be between 1 and 5"}
		}
		score := rating.OverallScore()
		rec.TasteRating = rating.Taste
		rec.CookingTimeRating = rating.CookingTime
		rec.RepeatDesire = rating.RepeatDesire
		rec.OverallScore = score
		rec.Rank = history.RankFor(score)
		rec.Notes = rating.Notes
	}
	if err := a.history.Append(rec); err != nil {
		return err
	}

	day, err := a.plans.GetDay(userID, date)
	if err != nil {
		return err
	}
	if day != nil && day.Dish == dish {
		for _, ing := range day.Menu.AllIngredients() {
			if err := a.inventory.Adjust(userID, ing.Name, ing.Unit, -ing.Qty); err != nil {
				return err
			}
		}
		a.invalidateList(ctx, userID)
	}

	a.logger.Info("marked cooked",
		zap.String("user_id", userID),
		zap.String("dish", dish),
		zap.String("date", date.Format(dateLayout)))
	return nil
}

// ShoppingLine is one display row of the shopping list: the reconciled item
// plus its check-off state for the current week.
type ShoppingLine struct {
	shopping.Item
	Checked bool `json:"checked"`
}

// ShoppingList recomputes the list from the persisted daily menus dated
// today or later, netted against inventory. The list is derived state; only
// the check-off flags are read back from storage.
func (a *App) ShoppingList(ctx context.Context, userID string) ([]ShoppingLine, error) {
	now := a.now()
	weekID := planner.WeekStart(now).Format(dateLayout)

	items, cached := a.cache.Get(ctx, userID, weekID)
	if !cached {
		days, err := a.plans.ListDays(userID)
		if err != nil {
			return nil, err
		}
		stock, err := a.inventory.List(userID)
		if err != nil {
			return nil, err
		}
		items = shopping.FromDailyMenus(planner.DatedMenus(days), stock, now)
		a.cache.Set(ctx, userID, weekID, items)
	}

	checked, err := a.checks.ListChecked(userID, weekID)
	if err != nil {
		return nil, err
	}

	lines := make([]ShoppingLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, ShoppingLine{Item: it, Checked: checked[it.Name]})
	}
	return lines, nil
}

// CheckOffItem flips an item's check-off flag for the current week. Checking
// an item means it was bought, so its outstanding quantity moves into
// inventory; unchecking only clears the flag.
func (a *App) CheckOffItem(ctx context.Context, userID, itemName string, checked bool) error {
	now := a.now()
	weekID := planner.WeekStart(now).Format(dateLayout)

	if checked {
		lines, err := a.ShoppingList(ctx, userID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if line.Name == itemName && !line.Checked {
				if err := a.inventory.Adjust(userID, line.Name, line.Unit, line.Qty); err != nil {
					return err
				}
				a.invalidateList(ctx, userID)
				break
			}
		}
	}
	return a.checks.SetChecked(userID, weekID, itemName, checked)
}

func (a *App) invalidateList(ctx context.Context, userID string) {
	weekID := planner.WeekStart(a.now()).Format(dateLayout)
	a.cache.Invalidate(ctx, userID, weekID)
}

func metricsRun(userID string, days, eligible int, d time.Duration) metrics.GenerationRun {
	return metrics.GenerationRun{UserID: userID, Days: days, EligibleCount: eligible, Duration: d}
}
