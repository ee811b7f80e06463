package planner

import (
	"math/rand"
	"time"

	"kondate/internal/history"
)

// repeatDesireWeights and rankWeights translate the latest rating into a
// multiplicative selection bias. Repeat desire wins over the letter rank
// when both are present.
var repeatDesireWeights = map[int]float64{5: 3.5, 4: 2.0, 3: 1.2, 2: 0.5, 1: 0.2}

var rankWeights = map[string]float64{"A": 3.0, "B": 1.5, "C": 1.0, "D": 0.3}

// DishWeight computes the selection weight for a dish from its cooking
// history and favorite status. Never-cooked dishes get a mild novelty boost;
// recently cooked dishes are suppressed, dishes untouched for over a month
// are encouraged.
func DishWeight(dish string, records []history.Record, isFavorite bool, now time.Time) float64 {
	weight := 1.0

	if latest, ok := history.Latest(records, dish); ok {
		if w, ok := repeatDesireWeights[latest.RepeatDesire]; ok {
			weight *= w
		} else if w, ok := rankWeights[latest.Rank]; ok {
			weight *= w
		}

		daysSince := int(now.Sub(latest.CookedDate).Hours() / 24)
		switch {
		case daysSince < 7:
			weight *= 0.3
		case daysSince < 14:
			weight *= 0.6
		case daysSince > 30:
			weight *= 1.3
		}
	} else {
		weight *= 1.1
	}

	if isFavorite {
		weight *= 2.0
	}

	return weight
}

// Candidate is a dish name with its selection weight.
type Candidate struct {
	Name   string
	Weight float64
}

// SelectWeighted draws one candidate by cumulative-weight roulette, skipping
// excluded names. If exclusion empties the list the draw falls back to a
// uniform pick over the unfiltered candidates so a reshuffle never fails.
func SelectWeighted(candidates []Candidate, exclude []string, rng *rand.Rand) string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	available := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !excluded[c.Name] {
			available = append(available, c)
		}
	}

	if len(available) == 0 {
		return candidates[rng.Intn(len(candidates))].Name
	}

	total := 0.0
	for _, c := range available {
		total += c.Weight
	}

	r := rng.Float64() * total
	for _, c := range available {
		r -= c.Weight
		if r <= 0 {
			return c.Name
		}
	}
	// Rounding can leave a sliver of r; the last entry takes it.
	return available[len(available)-1].Name
}
