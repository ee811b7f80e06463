// Package household owns the per-user settings and family member roster.
package household

import "time"

// Gender of a family member.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FamilyMember is one person in the household. Likes and Dislikes are
// free-text preference fields matched against recipe ingredients by the
// planner; a member influences scoring only while present in the roster.
type FamilyMember struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Name          string    `json:"name"`
	BirthDate     string    `json:"birth_date"`
	Gender        Gender    `json:"gender"`
	AppetiteLevel int       `json:"appetite_level"`
	Likes         string    `json:"likes"`
	Dislikes      string    `json:"dislikes"`
	CreatedAt     time.Time `json:"created_at"`
}

// Settings are the household-level planning preferences.
type Settings struct {
	FamilySize     string   `json:"family_size"`
	Likes          string   `json:"likes"`
	Dislikes       string   `json:"dislikes"`
	PreferredTypes []string `json:"preferred_types"`
	FamilyMode     string   `json:"family_mode"`
}
