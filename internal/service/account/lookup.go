package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// AutoCompleteAccounts returns visible accounts whose name contains query.
func (s *Service) AutoCompleteAccounts(ctx context.Context, query string) ([]domain.AccountSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.AccountSummary{}, nil
	}

	out, err := s.accounts.AutoComplete(ctx, userID, query, s.cfg.AutoCompleteLimit)
	if err != nil {
		return nil, fmt.Errorf("auto-complete accounts: %w", err)
	}

	return out, nil
}

// RecentlyViewed returns the accounts the current user viewed last, newest
// first. Accounts deleted or hidden since are skipped.
func (s *Service) RecentlyViewed(ctx context.Context) ([]domain.AccountSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ids, err := s.recent.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recently viewed: %w", err)
	}
	if len(ids) == 0 {
		return []domain.AccountSummary{}, nil
	}

	summaries, err := s.accounts.GetSummaries(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get summaries: %w", err)
	}

	byID := make(map[uuid.UUID]domain.AccountSummary, len(summaries))
	for _, sm := range summaries {
		byID[sm.ID] = sm
	}

	out := make([]domain.AccountSummary, 0, len(ids))
	for _, id := range ids {
		if sm, ok := byID[id]; ok {
			out = append(out, sm)
		}
	}

	return out, nil
}
