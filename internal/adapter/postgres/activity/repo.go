// Package activity implements the activity log repository using PostgreSQL.
// It provides append-only operations for account activity records.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity and returns the persisted domain.Activity.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	info := a.Info
	if info == nil {
		info = map[string]any{}
	}
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity marshal info: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO activities (id, user_id, subject_id, action, info, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, subject_id, action, info, created_at`,
		a.ID, a.UserID, a.SubjectID, string(a.Action), infoJSON, a.CreatedAt,
	)

	created, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.ID)
	}

	return created, nil
}

// Log creates an activity without returning it.
// Satisfies the account service's activityLog.
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	_, err := r.Create(ctx, a)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetBySubject returns the activity history for an account, newest first,
// limited to `limit` records.
func (r *Repo) GetBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]domain.Activity, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, subject_id, action, info, created_at FROM activities
		 WHERE subject_id = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2`, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("get activities by subject: %w", err)
	}

	return collectActivities(rows)
}

// GetByUser returns the user's activity records, newest first, with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, subject_id, action, info, created_at FROM activities
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get activities by user: %w", err)
	}

	return collectActivities(rows)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanActivity(row pgx.Row) (domain.Activity, error) {
	var (
		a        domain.Activity
		action   string
		infoJSON []byte
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.SubjectID, &action, &infoJSON, &a.CreatedAt); err != nil {
		return domain.Activity{}, err
	}
	a.Action = domain.ActivityAction(action)

	if len(infoJSON) > 0 {
		info := make(map[string]any)
		if err := json.Unmarshal(infoJSON, &info); err != nil {
			return domain.Activity{}, fmt.Errorf("activity %s unmarshal info: %w", a.ID, err)
		}
		a.Info = info
	}

	return a, nil
}

func collectActivities(rows pgx.Rows) ([]domain.Activity, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Activity, error) {
		return scanActivity(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect activities: %w", err)
	}
	return out, nil
}
