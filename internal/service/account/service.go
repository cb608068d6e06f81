// Package account implements the account listing pipeline and the account
// operations built on top of it.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

type accountRepo interface {
	Find(ctx context.Context, q domain.AccountQuery) (domain.AccountPage, error)
	GetVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Account, error)
	AutoComplete(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.AccountSummary, error)
	GetSummaries(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.AccountSummary, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) (*domain.Account, error)
	ReplacePermissions(ctx context.Context, accountID uuid.UUID, userIDs []uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type tagRepo interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]string, error)
	AutoComplete(ctx context.Context, prefix string, limit int) ([]string, error)
	Add(ctx context.Context, accountID uuid.UUID, names []string) error
	Remove(ctx context.Context, accountID uuid.UUID, name string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	ListActiveExcept(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error)
	SetPreference(ctx context.Context, userID uuid.UUID, name, value string) error
}

type activityLog interface {
	Log(ctx context.Context, a domain.Activity) error
}

type recentStore interface {
	Touch(ctx context.Context, userID, accountID uuid.UUID) error
	Remove(ctx context.Context, userID, accountID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config carries the system-wide defaults the service falls back to.
type Config struct {
	Defaults          domain.ListingDefaults
	DefaultAccess     domain.Access
	AutoCompleteLimit int
}

// Service provides account listing and management operations.
type Service struct {
	accounts   accountRepo
	tags       tagRepo
	users      userRepo
	activities activityLog
	recent     recentStore
	tx         txManager
	cfg        Config
	overrides  []ListingOverride
	log        *slog.Logger
}

// NewService creates a new Account service.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	tags tagRepo,
	users userRepo,
	activities activityLog,
	recent recentStore,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		accounts:   accounts,
		tags:       tags,
		users:      users,
		activities: activities,
		recent:     recent,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "account"),
	}
}

// RegisterListingOverride appends o to the override chain.
// Must be called during startup, before the service handles requests.
func (s *Service) RegisterListingOverride(o ListingOverride) {
	s.overrides = append(s.overrides, o)
}

// currentUser loads the user from the context together with their preferences.
// Missing, unknown and suspended users are all unauthorized.
func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.IsSuspended() {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// loadAccount returns the visible account with its tags attached.
func (s *Service) loadAccount(ctx context.Context, userID, id uuid.UUID) (*domain.Account, error) {
	acc, err := s.accounts.GetVisible(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	acc.Tags, err = s.tags.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return acc, nil
}

func (s *Service) logActivity(ctx context.Context, userID, accountID uuid.UUID, action domain.ActivityAction, name string) error {
	return s.activities.Log(ctx, domain.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		SubjectID: accountID,
		Action:    action,
		Info:      map[string]any{"name": name},
		CreatedAt: time.Now().UTC(),
	})
}
