package household

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrMemberNotFound is returned when the addressed member does not exist.
var ErrMemberNotFound = errors.New("family member not found")

// Repository persists household settings and family members.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new household repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// SaveSettings upserts the household settings row for a user.
func (r *Repository) SaveSettings(ctx context.Context, userID string, s Settings) error {
	types, err := json.Marshal(s.PreferredTypes)
	if err != nil {
		return fmt.Errorf("failed to marshal preferred types: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, family_size, likes, dislikes, preferred_types, family_mode, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			family_size = excluded.family_size,
			likes = excluded.likes,
			dislikes = excluded.dislikes,
			preferred_types = excluded.preferred_types,
			family_mode = excluded.family_mode,
			updated_at = excluded.updated_at`,
		userID, s.FamilySize, s.Likes, s.Dislikes, string(types), s.FamilyMode, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings loads the settings for a user, or (nil, nil) when none exist.
func (r *Repository) GetSettings(ctx context.Context, userID string) (*Settings, error) {
	var s Settings
	var types string
	err := r.db.QueryRowContext(ctx, `
		SELECT family_size, likes, dislikes, preferred_types, family_mode
		FROM user_settings WHERE user_id = ?`, userID).
		Scan(&s.FamilySize, &s.Likes, &s.Dislikes, &types, &s.FamilyMode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := json.Unmarshal([]byte(types), &s.PreferredTypes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferred types: %w", err)
	}
	return &s, nil
}

// ListMembers returns the family roster in creation order.
func (r *Repository) ListMembers(ctx context.Context, userID string) ([]FamilyMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, birth_date, gender, appetite_level, likes, dislikes, created_at
		FROM family_members WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	defer rows.Close()

	var members []FamilyMember
	for rows.Next() {
		var m FamilyMember
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.BirthDate, &m.Gender, &m.AppetiteLevel, &m.Likes, &m.Dislikes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CreateMember inserts a new family member and returns it with its ID set.
func (r *Repository) CreateMember(ctx context.Context, m FamilyMember) (FamilyMember, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO family_members (id, user_id, name, birth_date, gender, appetite_level, likes, dislikes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Name, m.BirthDate, m.Gender, m.AppetiteLevel, m.Likes, m.Dislikes, m.CreatedAt)
	if err != nil {
		return FamilyMember{}, fmt.Errorf("failed to create family member: %w", err)
	}
	return m, nil
}

// UpdateMember rewrites an existing member's editable fields.
func (r *Repository) UpdateMember(ctx context.Context, m FamilyMember) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE family_members
		SET name = ?, birth_date = ?, gender = ?, appetite_level = ?, likes = ?, dislikes = ?
		WHERE id = ? AND user_id = ?`,
		m.Name, m.BirthDate, m.Gender, m.AppetiteLevel, m.Likes, m.Dislikes, m.ID, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to update family member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("family member %s: %w", m.ID, ErrMemberNotFound)
	}
	return nil
}

// DeleteMember removes a member from the roster.
func (r *Repository) DeleteMember(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM family_members WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete family member: %w", err)
	}
	return nil
}
