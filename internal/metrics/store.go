package metrics

import (
	"database/sql"
	"fmt"
	"time"
)

// GenerationRun records metadata for a single plan generation.
type GenerationRun struct {
	UserID        string
	Days          int
	EligibleCount int
	Duration      time.Duration
	Timestamp     time.Time
}

// Store handles persistence of generation metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a run to the database.
func (s *Store) Record(run GenerationRun) error {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO generation_runs (user_id, days, eligible_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.UserID, run.Days, run.EligibleCount, run.Duration.Milliseconds(),
		ts.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to record generation run: %w", err)
	}
	return nil
}

// DailyRuns represents generation totals for a single day.
type DailyRuns struct {
	Date      string
	Runs      int
	AvgMs     float64
	TotalDays int
}

// GetDailyRuns retrieves run counts for the last N days.
func (s *Store) GetDailyRuns(days int) ([]DailyRuns, error) {
	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02 15:04:05")
	rows, err := s.db.Query(`
		SELECT date(created_at) AS day, COUNT(*), AVG(duration_ms), SUM(days)
		FROM generation_runs
		WHERE created_at >= ?
		GROUP BY day ORDER BY day DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation runs: %w", err)
	}
	defer rows.Close()

	var results []DailyRuns
	for rows.Next() {
		var d DailyRuns
		var avg sql.NullFloat64
		var total sql.NullInt64
		if err := rows.Scan(&d.Date, &d.Runs, &avg, &total); err != nil {
			return nil, fmt.Errorf("failed to scan generation stats: %w", err)
		}
		d.AvgMs = avg.Float64
		d.TotalDays = int(total.Int64)
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generation stats: %w", err)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(olderThanDays int) (int64, error) {
	threshold := time.Now().AddDate(0, 0, -olderThanDays).Format("2006-01-02 15:04:05")
	res, err := s.db.Exec(`DELETE FROM generation_runs WHERE created_at < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up generation runs: %w", err)
	}
	return res.RowsAffected()
}
