package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when the addressed entry does not exist.
var ErrRecordNotFound = errors.New("history record not found")

const dateLayout = "2006-01-02"

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Append records that a dish was cooked on a date. Recording the same
// (dish, date) pair again replaces the earlier entry, so rating a dish after
// marking it cooked updates in place.
func (r *Repository) Append(rec Record) error {
	_, err := r.db.Exec(`
		INSERT INTO cooking_history
			(id, user_id, dish_name, cooked_date, taste_rating, cooking_time_rating,
			 repeat_desire, overall_score, rank, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, dish_name, cooked_date) DO UPDATE SET
			taste_rating = excluded.taste_rating,
			cooking_time_rating = excluded.cooking_time_rating,
			repeat_desire = excluded.repeat_desire,
			overall_score = excluded.overall_score,
			rank = excluded.rank,
			notes = excluded.notes
	`, uuid.NewString(), rec.UserID, rec.DishName, rec.CookedDate.Format(dateLayout),
		nullableInt(rec.TasteRating), nullableInt(rec.CookingTimeRating),
		nullableInt(rec.RepeatDesire), nullableFloat(rec.OverallScore),
		nullableString(rec.Rank), nullableString(rec.Notes))
	if err != nil {
		return fmt.Errorf("failed to append cooking history: %w", err)
	}
	return nil
}

// ListByUser returns all history for the user, newest first.
func (r *Repository) ListByUser(userID string) ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, dish_name, cooked_date, taste_rating, cooking_time_rating,
		       repeat_desire, overall_score, rank, notes
		FROM cooking_history WHERE user_id = ? ORDER BY cooked_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cooking history: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListRange returns history within [from, to], newest first.
func (r *Repository) ListRange(userID string, from, to time.Time) ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, dish_name, cooked_date, taste_rating, cooking_time_rating,
		       repeat_desire, overall_score, rank, notes
		FROM cooking_history
		WHERE user_id = ? AND cooked_date >= ? AND cooked_date <= ?
		ORDER BY cooked_date DESC
	`, userID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list cooking history: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Delete removes one history entry by id.
func (r *Repository) Delete(userID, id string) error {
	res, err := r.db.Exec(`
		DELETE FROM cooking_history WHERE user_id = ? AND id = ?
	`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("history entry %s: %w", id, ErrRecordNotFound)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		var rec Record
		var dateStr string
		var taste, cookTime, repeat sql.NullInt64
		var score sql.NullFloat64
		var rank, notes sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.DishName, &dateStr,
			&taste, &cookTime, &repeat, &score, &rank, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cooked date %q: %w", dateStr, err)
		}
		rec.CookedDate = date
		rec.TasteRating = int(taste.Int64)
		rec.CookingTimeRating = int(cookTime.Int64)
		rec.RepeatDesire = int(repeat.Int64)
		rec.OverallScore = score.Float64
		rec.Rank = rank.String
		rec.Notes = notes.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cooking history: %w", err)
	}
	return out, nil
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
