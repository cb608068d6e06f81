package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[uuid.UUID, []string] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]string] {
		grouped, err := repo.GetByAccountIDs(ctx, keys)
		if err != nil {
			return errorResults[[]string](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[string])
	}
}

// newUsersBatchFn resolves users by id; unknown ids load as nil.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, func() *domain.User { return nil })
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
