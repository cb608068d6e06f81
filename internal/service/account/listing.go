package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ListAccounts returns one page of the accounts visible to the current user.
//
// The page and query come from in when supplied and are written back to
// state; otherwise the values remembered in state are used. The tag filter
// always comes from state.
func (s *Service) ListAccounts(ctx context.Context, state *domain.SessionState, in ListInput) (*ListResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	applyListInput(state, in)

	return s.list(ctx, user, state)
}

// SearchAccounts lists the first page of accounts matching query and
// remembers query for later listings.
func (s *Service) SearchAccounts(ctx context.Context, state *domain.SessionState, query string) (*ListResult, error) {
	page := 1
	return s.ListAccounts(ctx, state, ListInput{Page: &page, Query: &query})
}

// FilterAccounts stores tags as the session's tag filter, when supplied, and
// lists the first page. A nil tags keeps the current filter; an empty slice
// clears it.
func (s *Service) FilterAccounts(ctx context.Context, state *domain.SessionState, tags *[]string) (*ListResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if tags != nil {
		state.FilterByTags = domain.NormalizeTags(*tags)
	}
	state.CurrentPage = 1

	return s.list(ctx, user, state)
}

func applyListInput(state *domain.SessionState, in ListInput) {
	state.CurrentPage = state.Page()
	if in.Page != nil {
		state.CurrentPage = *in.Page
	}
	if in.Query != nil {
		state.CurrentQuery = strings.TrimSpace(*in.Query)
	}
}

// list runs the listing for the page, query and tags held in state.
func (s *Service) list(ctx context.Context, user *domain.User, state *domain.SessionState) (*ListResult, error) {
	perPage, outline, sortBy := user.Preferences.Resolve(s.cfg.Defaults)

	q := domain.AccountQuery{
		UserID:  user.ID,
		SortBy:  sortBy,
		Page:    state.Page(),
		PerPage: perPage,
		Search:  state.CurrentQuery,
		Tags:    state.FilterByTags,
	}

	accounts, overridden, err := s.runOverrides(ctx, q)
	if err != nil {
		return nil, err
	}
	if overridden {
		s.log.DebugContext(ctx, "account listing overridden",
			slog.String("user_id", user.ID.String()),
			slog.Int("count", len(accounts)),
		)
		return &ListResult{
			Accounts:   accounts,
			Page:       q.Page,
			PerPage:    perPage,
			TotalCount: len(accounts),
			TotalPages: 1,
			Outline:    outline,
			Overridden: true,
		}, nil
	}

	page, err := s.accounts.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}

	return &ListResult{
		Accounts:   page.Accounts,
		Page:       q.Page,
		PerPage:    perPage,
		TotalCount: page.TotalCount,
		TotalPages: domain.TotalPages(page.TotalCount, perPage),
		Outline:    outline,
	}, nil
}
