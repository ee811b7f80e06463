package planner

import (
	"fmt"
	"time"
)

const (
	minFamilySize = 1
	maxFamilySize = 6
	maxPlanDays   = 30
)

// ValidationError reports invalid user input. It is returned before any
// generation or persistence happens, so no partial state exists.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidationError reports whether err is a user-input validation failure.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// ValidateRequest checks the household size and planning range and returns
// the inclusive number of days to plan.
func ValidateRequest(size int, start, end time.Time) (int, error) {
	if size < minFamilySize || size > maxFamilySize {
		return 0, &ValidationError{Reason: fmt.Sprintf("family size must be between %d and %d", minFamilySize, maxFamilySize)}
	}
	if start.IsZero() || end.IsZero() {
		return 0, &ValidationError{Reason: "start and end dates are required"}
	}

	start = truncateDay(start)
	end = truncateDay(end)
	if start.After(end) {
		return 0, &ValidationError{Reason: "start date must not be after end date"}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxPlanDays {
		return 0, &ValidationError{Reason: fmt.Sprintf("planning range must not exceed %d days", maxPlanDays)}
	}
	return days, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
