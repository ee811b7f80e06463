package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kondate/internal/catalog"
	"kondate/internal/household"
	"kondate/internal/menu"
	"kondate/internal/planner"
	"kondate/internal/shopping"
)

// GeneratePlan runs the full pipeline for the inclusive [start, end] range:
// score the household's pool, pick one dish per day, compose each day into a
// full menu, aggregate demand, net against inventory and persist the weekly
// snapshot plus one row per day. Nothing is written when validation fails or
// every recipe is vetoed.
func (a *App) GeneratePlan(ctx context.Context, userID string, start, end time.Time) (*planner.PlanData, error) {
	began := a.now()

	settings, err := a.households.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	size := familySize(settings)

	days, err := planner.ValidateRequest(size, start, end)
	if err != nil {
		return nil, err
	}

	members, err := a.households.ListMembers(ctx, userID)
	if err != nil {
		return nil, err
	}
	members = effectiveMembers(members, settings)

	pool := catalog.Recipes(planMode(settings))
	var preferred []string
	if settings != nil {
		preferred = settings.PreferredTypes
	}

	ranked, err := planner.Rank(pool, preferred, members)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	picks := planner.SelectForDays(ranked, days, a.rng)
	a.mu.Unlock()

	items := make([]planner.MenuItem, 0, days)
	for i, pick := range picks {
		date := start.AddDate(0, 0, i)
		items = append(items, planner.MenuItem{
			Day:  planner.WeekdayLabel(date),
			Date: date.Format(dateLayout),
			Dish: pick.Name,
			Menu: menu.Compose(pick.Name, pick.IngredientsFor(size), size),
		})
	}

	stock, err := a.inventory.List(userID)
	if err != nil {
		return nil, err
	}

	plan := &planner.PlanData{Menu: items}
	plan.ShoppingList = shopping.FromMenus(plan.Menus(), stock)

	weekStart := planner.WeekStart(start)
	if err := a.plans.SaveWeekly(userID, weekStart, plan); err != nil {
		return nil, err
	}
	for i, item := range items {
		date := start.AddDate(0, 0, i)
		if err := a.plans.UpsertDay(userID, date, item.Dish, item.Menu); err != nil {
			return nil, err
		}
	}
	a.invalidateList(ctx, userID)

	if err := a.metrics.Record(metricsRun(userID, days, len(ranked), a.now().Sub(began))); err != nil {
		a.logger.Warn("failed to record generation run", zap.Error(err))
	}
	a.logger.Info("generated plan",
		zap.String("user_id", userID),
		zap.Int("days", days),
		zap.Int("eligible", len(ranked)))
	return plan, nil
}

// RefreshDay reselects the dish for one planned day using history-weighted
// roulette, excluding the dish currently on the menu, then recomposes the
// day and rebuilds that week's snapshot and shopping list.
func (a *App) RefreshDay(ctx context.Context, userID string, date time.Time) (*planner.MenuItem, error) {
	day, err := a.plans.GetDay(userID, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, fmt.Errorf("no menu planned for %s: %w", date.Format(dateLayout), ErrNotFound)
	}

	settings, err := a.households.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	size := familySize(settings)

	members, err := a.households.ListMembers(ctx, userID)
	if err != nil {
		return nil, err
	}
	members = effectiveMembers(members, settings)

	var preferred []string
	if settings != nil {
		preferred = settings.PreferredTypes
	}
	ranked, err := planner.Rank(catalog.Recipes(planMode(settings)), preferred, members)
	if err != nil {
		return nil, err
	}

	records, err := a.history.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	favs, err := a.favorites.Names(userID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	candidates := make([]planner.Candidate, 0, len(ranked))
	for _, s := range ranked {
		candidates = append(candidates, planner.Candidate{
			Name:   s.Recipe.Name,
			Weight: planner.DishWeight(s.Recipe.Name, records, favs[s.Recipe.Name], now),
		})
	}

	a.mu.Lock()
	name := planner.SelectWeighted(candidates, []string{day.Dish}, a.rng)
	a.mu.Unlock()

	recipe, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("selected dish %q missing from catalog", name)
	}
	newMenu := menu.Compose(recipe.Name, recipe.IngredientsFor(size), size)

	if err := a.plans.UpsertDay(userID, date, recipe.Name, newMenu); err != nil {
		return nil, err
	}
	if err := a.rebuildWeek(ctx, userID, date); err != nil {
		return nil, err
	}

	a.logger.Info("refreshed day",
		zap.String("user_id", userID),
		zap.String("date", date.Format(dateLayout)),
		zap.String("dish", recipe.Name))
	return &planner.MenuItem{
		Day:  planner.WeekdayLabel(date),
		Date: date.Format(dateLayout),
		Dish: recipe.Name,
		Menu: newMenu,
	}, nil
}

// SwapDays exchanges the menus planned for two dates and rebuilds the weekly
// snapshots involved.
func (a *App) SwapDays(ctx context.Context, userID string, dateA, dateB time.Time) error {
	dayA, err := a.plans.GetDay(userID, dateA)
	if err != nil {
		return err
	}
	dayB, err := a.plans.GetDay(userID, dateB)
	if err != nil {
		return err
	}
	if dayA == nil || dayB == nil {
		return fmt.Errorf("both days must be planned to swap: %w", ErrNotFound)
	}

	if err := a.plans.UpsertDay(userID, dateA, dayB.Dish, dayB.Menu); err != nil {
		return err
	}
	if err := a.plans.UpsertDay(userID, dateB, dayA.Dish, dayA.Menu); err != nil {
		return err
	}

	if err := a.rebuildWeek(ctx, userID, dateA); err != nil {
		return err
	}
	if !planner.WeekStart(dateA).Equal(planner.WeekStart(dateB)) {
		if err := a.rebuildWeek(ctx, userID, dateB); err != nil {
			return err
		}
	}
	return nil
}

// WeeklyPlan returns the stored snapshot for the week containing the date.
func (a *App) WeeklyPlan(ctx context.Context, userID string, date time.Time) (*planner.PlanData, error) {
	plan, err := a.plans.GetWeekly(userID, planner.WeekStart(date))
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no plan for week of %s: %w", date.Format(dateLayout), ErrNotFound)
	}
	return plan, nil
}

// DayMenu returns the stored menu for one date.
func (a *App) DayMenu(userID string, date time.Time) (*planner.DailyMenu, error) {
	day, err := a.plans.GetDay(userID, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, fmt.Errorf("no menu planned for %s: %w", date.Format(dateLayout), ErrNotFound)
	}
	return day, nil
}

// rebuildWeek regenerates the weekly snapshot for the week containing date
// from the persisted daily rows, so single-day mutations keep the snapshot
// and shopping list consistent.
func (a *App) rebuildWeek(ctx context.Context, userID string, date time.Time) error {
	weekStart := planner.WeekStart(date)
	days, err := a.plans.ListDaysRange(userID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return err
	}

	items := make([]planner.MenuItem, 0, len(days))
	for _, d := range days {
		items = append(items, planner.MenuItem{
			Day:  planner.WeekdayLabel(d.MenuDate),
			Date: d.MenuDate.Format(dateLayout),
			Dish: d.Dish,
			Menu: d.Menu,
		})
	}

	stock, err := a.inventory.List(userID)
	if err != nil {
		return err
	}

	plan := &planner.PlanData{Menu: items}
	plan.ShoppingList = shopping.FromDailyMenus(planner.DatedMenus(days), stock, a.now())

	if err := a.plans.SaveWeekly(userID, weekStart, plan); err != nil {
		return err
	}
	a.invalidateList(ctx, userID)
	return nil
}

func planMode(s *household.Settings) catalog.Mode {
	if s == nil || s.FamilyMode == "" {
		return catalog.ModeNormal
	}
	return catalog.Mode(s.FamilyMode)
}
