// Package dataloader provides per-request DataLoaders that batch the tag and
// user lookups needed to present account lists into single SQL calls.
// Loaders call repositories directly; the accounts they are asked about have
// already passed ownership scoping in the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type tagRepo interface {
	GetByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	Tag  tagRepo
	User userRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	TagsByAccountID *dataloader.Loader[uuid.UUID, []string]
	UserByID        *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TagsByAccountID: newLoader(newTagsBatchFn(repos.Tag)),
		UserByID:        newLoader(newUsersBatchFn(repos.User)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
