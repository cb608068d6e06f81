package account

import (
	"context"
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ListingOverride may replace the default account listing.
// Returning an empty slice leaves the decision to later overrides or the
// default query.
type ListingOverride interface {
	ListAccounts(ctx context.Context, q domain.AccountQuery) ([]domain.Account, error)
}

// ListingOverrideFunc adapts a plain function to ListingOverride.
type ListingOverrideFunc func(ctx context.Context, q domain.AccountQuery) ([]domain.Account, error)

// ListAccounts calls f.
func (f ListingOverrideFunc) ListAccounts(ctx context.Context, q domain.AccountQuery) ([]domain.Account, error) {
	return f(ctx, q)
}

// runOverrides invokes every override in registration order. The last
// non-empty result wins; ok is false when none produced one.
func (s *Service) runOverrides(ctx context.Context, q domain.AccountQuery) (accounts []domain.Account, ok bool, err error) {
	for i, o := range s.overrides {
		res, err := o.ListAccounts(ctx, q)
		if err != nil {
			return nil, false, fmt.Errorf("listing override %d: %w", i, err)
		}
		if len(res) > 0 {
			accounts, ok = res, true
		}
	}
	return accounts, ok, nil
}
