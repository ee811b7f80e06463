// Package catalog holds the compiled-in recipe table and the three dietary
// pools a household can plan from. Entries are immutable at runtime; pool
// membership is curated by name, validated once at startup.
package catalog

import (
	"fmt"
	"math"

	"kondate/internal/menu"
)

// Mode selects which recipe pool a household plans from.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeDiet   Mode = "diet"
	ModeMuscle Mode = "muscle"
)

// Item is one ingredient line of a recipe, parameterized by household size.
// Per is the per-person amount; Ceil rounds the scaled quantity up so
// fractional per-person items (half an onion for two people) never collapse
// to zero.
type Item struct {
	Name string
	Per  float64
	Unit string
	Ceil bool
}

// Qty evaluates the line's quantity for a household of the given size.
func (it Item) Qty(size int) float64 {
	q := float64(size) * it.Per
	if it.Ceil {
		return math.Ceil(q)
	}
	return q
}

// Recipe is a single catalog entry. Name is the unique key.
// MainIngredients are the principal ingredient names used for preference
// matching; Items carry the full scaled ingredient list.
type Recipe struct {
	Name            string
	Tags            []string
	MainIngredients []string
	Items           []Item
}

// IngredientsFor evaluates the recipe's ingredient list for a household size.
func (r Recipe) IngredientsFor(size int) []menu.Ingredient {
	out := make([]menu.Ingredient, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, menu.Ingredient{Name: it.Name, Qty: it.Qty(size), Unit: it.Unit})
	}
	return out
}

// HasTag reports whether the recipe carries the given cuisine tag.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Recipes returns the pool for the given mode in catalog order. Unknown
// modes fall back to the normal pool.
func Recipes(mode Mode) []Recipe {
	names, ok := pools[mode]
	if !ok {
		names = pools[ModeNormal]
	}
	out := make([]Recipe, 0, len(names))
	for _, n := range names {
		out = append(out, byName[n])
	}
	return out
}

// Lookup returns the catalog entry for a dish name.
func Lookup(name string) (Recipe, bool) {
	r, ok := byName[name]
	return r, ok
}

var byName = map[string]Recipe{}

func init() {
	register(normalRecipes)
	register(dietRecipes)
	register(muscleRecipes)
	if err := validatePools(); err != nil {
		panic(err)
	}
}

func register(recipes []Recipe) {
	for _, r := range recipes {
		if _, dup := byName[r.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate recipe name %q", r.Name))
		}
		byName[r.Name] = r
	}
}

// validatePools checks referential integrity of the pool tables: every name
// resolves to a registered recipe, no name appears twice in a pool, and a
// normal-pool dish may only appear in the diet pool when tagged "healthy" or
// in the muscle pool when explicitly allow-listed.
func validatePools() error {
	for mode, names := range pools {
		seen := map[string]bool{}
		for _, n := range names {
			r, ok := byName[n]
			if !ok {
				return fmt.Errorf("catalog: pool %q references unknown recipe %q", mode, n)
			}
			if seen[n] {
				return fmt.Errorf("catalog: pool %q lists %q twice", mode, n)
			}
			seen[n] = true

			if mode == ModeDiet && inPool(ModeNormal, n) && !r.HasTag("healthy") {
				return fmt.Errorf("catalog: diet pool borrows %q from normal without healthy tag", n)
			}
			if mode == ModeMuscle && inPool(ModeNormal, n) && !muscleBorrow[n] {
				return fmt.Errorf("catalog: muscle pool borrows %q from normal without allow-list entry", n)
			}
		}
	}
	return nil
}

func inPool(mode Mode, name string) bool {
	for _, n := range pools[mode] {
		if n == name {
			return true
		}
	}
	return false
}
