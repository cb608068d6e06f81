// Package user implements the User repository using PostgreSQL.
// It also stores per-user preferences as (user_id, name, value) rows.
package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const userColumns = `id, username, email, first_name, last_name, admin, suspended_at, created_at, updated_at`

// Repo provides user and preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key with preferences loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u.Preferences, err = r.GetPreferences(ctx, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetByIDs returns the users with the given ids in unspecified order.
// Missing ids are skipped. Preferences are not loaded.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	return users, nil
}

// ListActiveExcept returns every non-suspended user other than exceptID,
// ordered by first name, last name and username.
func (r *Repo) ListActiveExcept(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE suspended_at IS NULL AND id <> $1
		 ORDER BY first_name NULLS LAST, last_name NULLS LAST, username`, exceptID)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO users (id, username, email, first_name, last_name, admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Admin, u.CreatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}

// ---------------------------------------------------------------------------
// Preference operations
// ---------------------------------------------------------------------------

// GetPreferences loads the user's listing preferences. Unknown names and
// unparsable values are ignored so that defaults apply.
func (r *Repo) GetPreferences(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT name, value FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("user %s preferences: %w", userID, err)
	}
	defer rows.Close()

	var prefs domain.UserPreferences
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return domain.UserPreferences{}, fmt.Errorf("user %s preferences: %w", userID, err)
		}
		applyPreference(&prefs, name, value)
	}
	if err := rows.Err(); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("user %s preferences: %w", userID, err)
	}

	return prefs, nil
}

// SetPreference upserts a single preference value.
func (r *Repo) SetPreference(ctx context.Context, userID uuid.UUID, name, value string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO user_preferences (user_id, name, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		userID, name, value)
	if err != nil {
		return postgres.MapError(err, "user_preference", userID)
	}

	return nil
}

func applyPreference(p *domain.UserPreferences, name, value string) {
	switch name {
	case domain.PrefAccountsPerPage:
		if n, err := strconv.Atoi(value); err == nil {
			p.AccountsPerPage = &n
		}
	case domain.PrefAccountsOutline:
		o := domain.Outline(value)
		if o.IsValid() {
			p.AccountsOutline = &o
		}
	case domain.PrefAccountsSortBy:
		s := domain.SortField(value)
		if s.IsValid() {
			p.AccountsSortBy = &s
		}
	}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Admin, &u.SuspendedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
}
