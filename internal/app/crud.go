package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kondate/internal/favorites"
	"kondate/internal/history"
	"kondate/internal/household"
	"kondate/internal/inventory"
	"kondate/internal/menu"
	"kondate/internal/metrics"
)

func (a *App) Settings(ctx context.Context, userID string) (*household.Settings, error) {
	return a.households.GetSettings(ctx, userID)
}

func (a *App) SaveSettings(ctx context.Context, userID string, s household.Settings) error {
	return a.households.SaveSettings(ctx, userID, s)
}

func (a *App) FamilyMembers(ctx context.Context, userID string) ([]household.FamilyMember, error) {
	return a.households.ListMembers(ctx, userID)
}

func (a *App) AddFamilyMember(ctx context.Context, m household.FamilyMember) (household.FamilyMember, error) {
	return a.households.CreateMember(ctx, m)
}

func (a *App) UpdateFamilyMember(ctx context.Context, m household.FamilyMember) error {
	if err := a.households.UpdateMember(ctx, m); err != nil {
		if errors.Is(err, household.ErrMemberNotFound) {
			return fmt.Errorf("%v: %w", err, ErrNotFound)
		}
		return err
	}
	return nil
}

func (a *App) RemoveFamilyMember(ctx context.Context, userID, id string) error {
	return a.households.DeleteMember(ctx, userID, id)
}

func (a *App) Inventory(ctx context.Context, userID string) ([]inventory.Item, error) {
	return a.inventory.List(userID)
}

// SetInventoryItem stores an absolute quantity; zero removes the row.
func (a *App) SetInventoryItem(ctx context.Context, userID string, item inventory.Item) error {
	if err := a.inventory.Upsert(userID, item); err != nil {
		return err
	}
	a.invalidateList(ctx, userID)
	return nil
}

func (a *App) RemoveInventoryItem(ctx context.Context, userID, name, unit string) error {
	if err := a.inventory.Delete(userID, name, unit); err != nil {
		return err
	}
	a.invalidateList(ctx, userID)
	return nil
}

func (a *App) Favorites(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	return a.favorites.List(userID)
}

func (a *App) AddFavorite(ctx context.Context, userID, dish string, ingredients []menu.Ingredient) error {
	return a.favorites.Add(userID, dish, ingredients)
}

func (a *App) RemoveFavorite(ctx context.Context, userID, dish string) error {
	return a.favorites.Remove(userID, dish)
}

func (a *App) History(ctx context.Context, userID string) ([]history.Record, error) {
	return a.history.ListByUser(userID)
}

// HistoryRange backs the calendar view.
func (a *App) HistoryRange(ctx context.Context, userID string, from, to time.Time) ([]history.Record, error) {
	return a.history.ListRange(userID, from, to)
}

func (a *App) DeleteHistory(ctx context.Context, userID, id string) error {
	if err := a.history.Delete(userID, id); err != nil {
		if errors.Is(err, history.ErrRecordNotFound) {
			return fmt.Errorf("%v: %w", err, ErrNotFound)
		}
		return err
	}
	return nil
}

// GenerationStats returns the daily generation-run audit for the last N days.
func (a *App) GenerationStats(days int) ([]metrics.DailyRuns, error) {
	return a.metrics.GetDailyRuns(days)
}
