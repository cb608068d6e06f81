package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	first := "Test"
	last := "User " + suffix
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		FirstName: &first,
		LastName:  &last,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// AccountOption customizes an account before SeedAccount inserts it.
type AccountOption func(*domain.Account)

// WithAccess sets the account access level.
func WithAccess(access domain.Access) AccountOption {
	return func(a *domain.Account) { a.Access = access }
}

// WithAssignee assigns the account to another user.
func WithAssignee(id uuid.UUID) AccountOption {
	return func(a *domain.Account) { a.AssignedTo = &id }
}

// WithName overrides the generated account name.
func WithName(name string) AccountOption {
	return func(a *domain.Account) { a.Name = name }
}

// WithCreatedAt overrides created_at and updated_at.
func WithCreatedAt(ts time.Time) AccountOption {
	return func(a *domain.Account) {
		a.CreatedAt = ts.UTC().Truncate(time.Microsecond)
		a.UpdatedAt = a.CreatedAt
	}
}

// WithPermittedUsers shares the account with the given users.
func WithPermittedUsers(ids ...uuid.UUID) AccountOption {
	return func(a *domain.Account) { a.PermittedUserIDs = ids }
}

// WithTags attaches tags to the account.
func WithTags(tags ...string) AccountOption {
	return func(a *domain.Account) { a.Tags = tags }
}

// SeedAccount creates an account owned by ownerID. Defaults to Private access
// so tests only see what they explicitly make visible.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...AccountOption) domain.Account {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	account := domain.Account{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      "Account " + uniqueSuffix(),
		Access:    domain.AccessPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&account)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, user_id, assigned_to, name, access, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID, account.UserID, account.AssignedTo, account.Name, string(account.Access),
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	for _, uid := range account.PermittedUserIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO account_permissions (account_id, user_id) VALUES ($1, $2)`,
			account.ID, uid,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedAccount permission: %v", err)
		}
	}

	for _, tag := range account.Tags {
		SeedTagging(t, pool, account.ID, tag)
	}

	return account
}

// SeedTagging tags an account, creating the tag if needed.
func SeedTagging(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, tag string) {
	t.Helper()
	ctx := context.Background()

	var tagID uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO tags (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		uuid.New(), tag,
	).Scan(&tagID)
	if err != nil {
		t.Fatalf("testhelper: SeedTagging tag: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO taggings (tag_id, account_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tagID, accountID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTagging tagging: %v", err)
	}
}

// UniqueTag returns a tag name no other test uses.
func UniqueTag(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}
