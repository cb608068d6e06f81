// Package account implements the Account repository using PostgreSQL.
// Listing queries are composed with squirrel; ownership scoping, text search
// and tag filtering live in filter.go.
package account

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const accountColumns = `a.id, a.user_id, a.assigned_to, a.name, a.access, a.website,
	a.toll_free_phone, a.phone, a.fax, a.email, a.background_info,
	a.created_at, a.updated_at, a.deleted_at`

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns one page of accounts visible to q.UserID, filtered by q.Search
// and q.Tags and ordered by q.SortBy, plus the total number of matches.
func (r *Repo) Find(ctx context.Context, q domain.AccountQuery) (domain.AccountPage, error) {
	where := sq.And{visibleTo(q.UserID)}
	if p := matchesText(q.Search); p != nil {
		where = append(where, p)
	}
	if p := taggedWithAny(q.Tags); p != nil {
		where = append(where, p)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("accounts a").
		Where(where).
		ToSql()
	if err != nil {
		return domain.AccountPage{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.AccountPage{}, fmt.Errorf("count accounts: %w", err)
	}

	sel := postgres.Builder.
		Select(accountColumns).
		From("accounts a").
		Where(where).
		OrderBy(orderBy(q.SortBy)...)
	if q.PerPage > 0 {
		sel = sel.Limit(uint64(q.PerPage)).Offset(uint64(q.Offset()))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return domain.AccountPage{}, fmt.Errorf("build find query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return domain.AccountPage{}, fmt.Errorf("find accounts: %w", err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return domain.AccountPage{}, fmt.Errorf("find accounts: %w", err)
	}

	return domain.AccountPage{Accounts: accounts, TotalCount: total}, nil
}

// GetVisible returns the account if userID may see it, with its permission list.
// An account that exists but is not visible is reported as domain.ErrNotFound.
func (r *Repo) GetVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Select(accountColumns).
		From("accounts a").
		Where(visibleTo(userID)).
		Where(sq.Expr("a.id = ?", id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	a, err := scanAccount(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	a.PermittedUserIDs, err = r.permissions(ctx, querier, id)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// AutoComplete returns up to limit visible accounts whose name contains query,
// ordered by name.
func (r *Repo) AutoComplete(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.AccountSummary, error) {
	sel := postgres.Builder.
		Select("a.id", "a.name").
		From("accounts a").
		Where(visibleTo(userID)).
		Where(sq.ILike{"a.name": "%" + postgres.EscapeLike(query) + "%"}).
		OrderBy("a.name ASC", "a.id ASC").
		Limit(uint64(limit))

	return r.summaries(ctx, sel)
}

// GetSummaries returns id/name pairs for the given ids that userID may still
// see. Order is unspecified; deleted or hidden accounts are omitted.
func (r *Repo) GetSummaries(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.AccountSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sel := postgres.Builder.
		Select("a.id", "a.name").
		From("accounts a").
		Where(visibleTo(userID)).
		Where(sq.Expr("a.id = ANY(?)", ids))

	return r.summaries(ctx, sel)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account and its permission rows.
// Call inside RunInTx to keep both in one transaction.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx,
		`INSERT INTO accounts AS a (id, user_id, assigned_to, name, access, website,
			toll_free_phone, phone, fax, email, background_info, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		 RETURNING `+accountColumns,
		a.ID, a.UserID, a.AssignedTo, a.Name, string(a.Access), a.Website,
		a.TollFreePhone, a.Phone, a.Fax, a.Email, a.BackgroundInfo, a.CreatedAt,
	)

	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}

	if err := insertPermissions(ctx, querier, a.ID, a.PermittedUserIDs); err != nil {
		return nil, err
	}
	created.PermittedUserIDs = a.PermittedUserIDs

	return &created, nil
}

// Update overwrites the editable fields of a live account and bumps updated_at.
func (r *Repo) Update(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx,
		`UPDATE accounts a
		 SET assigned_to = $2, name = $3, access = $4, website = $5, toll_free_phone = $6,
		     phone = $7, fax = $8, email = $9, background_info = $10, updated_at = now()
		 WHERE a.id = $1 AND a.deleted_at IS NULL
		 RETURNING `+accountColumns,
		a.ID, a.AssignedTo, a.Name, string(a.Access), a.Website, a.TollFreePhone,
		a.Phone, a.Fax, a.Email, a.BackgroundInfo,
	)

	updated, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}
	updated.PermittedUserIDs = a.PermittedUserIDs

	return &updated, nil
}

// ReplacePermissions swaps the account's permission rows for userIDs.
func (r *Repo) ReplacePermissions(ctx context.Context, accountID uuid.UUID, userIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM account_permissions WHERE account_id = $1`, accountID); err != nil {
		return postgres.MapError(err, "account_permission", accountID)
	}

	return insertPermissions(ctx, querier, accountID, userIDs)
}

// SoftDelete marks a live account as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE accounts SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HardDeleteOld permanently removes accounts soft-deleted before threshold.
// Permissions and taggings cascade. Returns the number of removed accounts.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`DELETE FROM accounts WHERE deleted_at IS NOT NULL AND deleted_at < $1`, threshold)
	if err != nil {
		return 0, fmt.Errorf("hard delete accounts: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) permissions(ctx context.Context, querier postgres.Querier, accountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := querier.Query(ctx,
		`SELECT user_id FROM account_permissions WHERE account_id = $1 ORDER BY user_id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %s permissions: %w", accountID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("account %s permissions: %w", accountID, err)
	}

	return ids, nil
}

func (r *Repo) summaries(ctx context.Context, sel sq.SelectBuilder) ([]domain.AccountSummary, error) {
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("account summaries: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountSummary, error) {
		var s domain.AccountSummary
		err := row.Scan(&s.ID, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("account summaries: %w", err)
	}

	return out, nil
}

func insertPermissions(ctx context.Context, querier postgres.Querier, accountID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, uid := range userIDs {
		batch.Queue(
			`INSERT INTO account_permissions (account_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			accountID, uid,
		)
	}

	br := querier.SendBatch(ctx, batch)
	for range userIDs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "account_permission", accountID)
		}
	}

	return br.Close()
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (domain.Account, error) {
	var (
		a      domain.Account
		access string
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.AssignedTo, &a.Name, &access, &a.Website,
		&a.TollFreePhone, &a.Phone, &a.Fax, &a.Email, &a.BackgroundInfo,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	a.Access = domain.Access(access)
	return a, nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		return scanAccount(row)
	})
}
