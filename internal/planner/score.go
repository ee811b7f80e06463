// Package planner scores and selects recipes for a date range and carries
// the weighted single-day reselection used by the reshuffle action.
package planner

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"kondate/internal/catalog"
	"kondate/internal/household"
)

// ErrNoEligibleRecipe is returned when every catalog entry is vetoed by a
// family member's dislikes. Callers must abort generation without writing.
var ErrNoEligibleRecipe = errors.New("no recipe satisfies the current preferences")

// Score rates a recipe against the household's preferred cuisine tags and
// each member's free-text likes/dislikes. +10 for a preferred-tag match,
// +5 per member whose likes match, -100 per member whose dislikes match.
func Score(r catalog.Recipe, preferredTags []string, members []household.FamilyMember) int {
	score := 0

	if len(preferredTags) > 0 {
		for _, t := range preferredTags {
			if r.HasTag(t) {
				score += 10
				break
			}
		}
	}

	nameLower := strings.ToLower(r.Name)
	for _, m := range members {
		likes := strings.ToLower(strings.TrimSpace(m.Likes))
		dislikes := strings.ToLower(strings.TrimSpace(m.Dislikes))

		if likes != "" && matchesPreference(r, nameLower, likes) {
			score += 5
		}
		if dislikes != "" && matchesPreference(r, nameLower, dislikes) {
			score -= 100
		}
	}

	return score
}

// Vetoed reports whether any member's dislikes match the recipe. A veto is
// absolute: it excludes the recipe no matter how many likes or tag bonuses
// it collects.
func Vetoed(r catalog.Recipe, members []household.FamilyMember) bool {
	nameLower := strings.ToLower(r.Name)
	for _, m := range members {
		dislikes := strings.ToLower(strings.TrimSpace(m.Dislikes))
		if dislikes != "" && matchesPreference(r, nameLower, dislikes) {
			return true
		}
	}
	return false
}

// matchesPreference reports whether the free-text field mentions one of the
// recipe's principal ingredients, or the recipe name contains the field.
func matchesPreference(r catalog.Recipe, nameLower, field string) bool {
	for _, ing := range r.MainIngredients {
		if strings.Contains(field, strings.ToLower(ing)) {
			return true
		}
	}
	return strings.Contains(nameLower, field)
}

// Scored pairs a recipe with its preference score.
type Scored struct {
	Recipe catalog.Recipe
	Score  int
}

// Rank scores every recipe in the pool, drops vetoed entries, and returns
// the survivors sorted by score descending. The sort is stable so ties keep
// catalog order and the ranking is deterministic for deterministic inputs.
func Rank(pool []catalog.Recipe, preferredTags []string, members []household.FamilyMember) ([]Scored, error) {
	var ranked []Scored
	for _, r := range pool {
		if Vetoed(r, members) {
			continue
		}
		ranked = append(ranked, Scored{Recipe: r, Score: Score(r, preferredTags, members)})
	}
	if len(ranked) == 0 {
		return nil, ErrNoEligibleRecipe
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, nil
}

// SelectForDays picks one recipe per day. The ranked list is cycled once
// before any repeat is possible, so the top-D distinct recipes fill days
// 1..min(D, len) in score order; days beyond that draw uniformly from the
// top five to keep variety while favoring high scorers.
func SelectForDays(ranked []Scored, days int, rng *rand.Rand) []catalog.Recipe {
	out := make([]catalog.Recipe, 0, days)
	for i := 0; i < days; i++ {
		var idx int
		if i < len(ranked) {
			idx = i % len(ranked)
		} else {
			top := len(ranked)
			if top > 5 {
				top = 5
			}
			idx = rng.Intn(top)
		}
		out = append(out, ranked[idx].Recipe)
	}
	return out
}
