// Package inventory tracks pantry stock on hand, keyed by (name, unit).
package inventory

// Item is one pantry line. Qty is never negative; a line whose quantity
// reaches zero is removed entirely rather than kept at zero.
type Item struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}
