// Package tag implements tag and tagging persistence using PostgreSQL.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByAccount returns the account's tag names in alphabetical order.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT t.name FROM taggings tg JOIN tags t ON t.id = tg.tag_id
		 WHERE tg.account_id = $1
		 ORDER BY t.name`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list tags for account %s: %w", accountID, err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list tags for account %s: %w", accountID, err)
	}

	return names, nil
}

// GetByAccountIDs returns tag names grouped by account id. Accounts without
// tags are absent from the map.
func (r *Repo) GetByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT tg.account_id, t.name FROM taggings tg JOIN tags t ON t.id = tg.tag_id
		 WHERE tg.account_id = ANY($1)
		 ORDER BY tg.account_id, t.name`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("tags by account ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			accountID uuid.UUID
			name      string
		)
		if err := rows.Scan(&accountID, &name); err != nil {
			return nil, fmt.Errorf("tags by account ids: %w", err)
		}
		out[accountID] = append(out[accountID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tags by account ids: %w", err)
	}

	return out, nil
}

// AutoComplete returns up to limit tag names starting with prefix that are
// attached to at least one live account.
func (r *Repo) AutoComplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT t.name FROM tags t
		 WHERE t.name ILIKE $1 || '%' ESCAPE '\'
		   AND EXISTS (
		       SELECT 1 FROM taggings tg JOIN accounts a ON a.id = tg.account_id
		       WHERE tg.tag_id = t.id AND a.deleted_at IS NULL)
		 ORDER BY t.name
		 LIMIT $2`, postgres.EscapeLike(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("auto complete tags: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("auto complete tags: %w", err)
	}

	return names, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Add attaches names to the account, creating missing tags.
// Names must already be normalized; attaching an existing tag is a no-op.
func (r *Repo) Add(ctx context.Context, accountID uuid.UUID, names []string) error {
	if len(names) == 0 {
		return nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`INSERT INTO tags (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, uuid.New(), name)
	}
	batch.Queue(
		`INSERT INTO taggings (tag_id, account_id)
		 SELECT t.id, $1 FROM tags t WHERE t.name = ANY($2)
		 ON CONFLICT DO NOTHING`, accountID, names)

	br := querier.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "tagging", accountID)
		}
	}

	return br.Close()
}

// Remove detaches name from the account. Removing a tag the account does not
// carry is a no-op.
func (r *Repo) Remove(ctx context.Context, accountID uuid.UUID, name string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM taggings tg USING tags t
		 WHERE tg.tag_id = t.id AND tg.account_id = $1 AND t.name = $2`, accountID, name)
	if err != nil {
		return postgres.MapError(err, "tagging", accountID)
	}

	return nil
}
