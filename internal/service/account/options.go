package account

import (
	"context"
	"fmt"
	"strconv"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// GetOptions returns the effective listing preferences of the current user.
func (s *Service) GetOptions(ctx context.Context) (*DisplayOptions, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	perPage, outline, sortBy := user.Preferences.Resolve(s.cfg.Defaults)
	return &DisplayOptions{PerPage: perPage, Outline: outline, SortBy: sortBy}, nil
}

// Redraw stores the supplied listing preferences and lists the first page
// with them applied.
func (s *Service) Redraw(ctx context.Context, state *domain.SessionState, input RedrawInput) (*ListResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.PerPage != nil {
		if err := s.users.SetPreference(ctx, user.ID, domain.PrefAccountsPerPage, strconv.Itoa(*input.PerPage)); err != nil {
			return nil, fmt.Errorf("set per_page: %w", err)
		}
		perPage := *input.PerPage
		user.Preferences.AccountsPerPage = &perPage
	}
	if input.Outline != nil {
		if err := s.users.SetPreference(ctx, user.ID, domain.PrefAccountsOutline, *input.Outline); err != nil {
			return nil, fmt.Errorf("set outline: %w", err)
		}
		outline := domain.Outline(*input.Outline)
		user.Preferences.AccountsOutline = &outline
	}
	if input.SortBy != nil {
		if err := s.users.SetPreference(ctx, user.ID, domain.PrefAccountsSortBy, *input.SortBy); err != nil {
			return nil, fmt.Errorf("set sort_by: %w", err)
		}
		sortBy := domain.SortField(*input.SortBy)
		user.Preferences.AccountsSortBy = &sortBy
	}

	state.CurrentPage = 1
	return s.list(ctx, user, state)
}
