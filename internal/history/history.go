// Package history tracks cooked dishes and their ratings. Records are
// append-only, keyed by (dish name, cooked date); the planner always reads
// the latest record per dish.
package history

import (
	"math"
	"time"
)

// Record is one cooked-dish entry. Rating fields are 1-5; zero means unset.
type Record struct {
	ID                string    `json:"id"`
	UserID            string    `json:"-"`
	DishName          string    `json:"dish_name"`
	CookedDate        time.Time `json:"cooked_date"`
	TasteRating       int       `json:"taste_rating,omitempty"`
	CookingTimeRating int       `json:"cooking_time_rating,omitempty"`
	RepeatDesire      int       `json:"repeat_desire,omitempty"`
	OverallScore      float64   `json:"overall_score,omitempty"`
	Rank              string    `json:"rank,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// Rating is the user-submitted evaluation of a cooked dish.
type Rating struct {
	Taste        int    `json:"taste_rating"`
	CookingTime  int    `json:"cooking_time_rating"`
	RepeatDesire int    `json:"repeat_desire"`
	Notes        string `json:"notes"`
}

// Valid reports whether every rating axis is within 1-5.
func (r Rating) Valid() bool {
	for _, v := range []int{r.Taste, r.CookingTime, r.RepeatDesire} {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}

// OverallScore weighs taste 40%, cooking time 30% and repeat desire 30%,
// rounded to two decimals.
func (r Rating) OverallScore() float64 {
	s := float64(r.Taste)*0.4 + float64(r.CookingTime)*0.3 + float64(r.RepeatDesire)*0.3
	return math.Round(s*100) / 100
}

// RankFor grades an overall score: A >= 4.5, B >= 3.5, C >= 2.5, else D.
func RankFor(score float64) string {
	switch {
	case score >= 4.5:
		return "A"
	case score >= 3.5:
		return "B"
	case score >= 2.5:
		return "C"
	default:
		return "D"
	}
}

// Latest returns the most recent record for the dish, or false if the dish
// has never been cooked.
func Latest(records []Record, dish string) (Record, bool) {
	var latest Record
	found := false
	for _, rec := range records {
		if rec.DishName != dish {
			continue
		}
		if !found || rec.CookedDate.After(latest.CookedDate) {
			latest = rec
			found = true
		}
	}
	return latest, found
}
