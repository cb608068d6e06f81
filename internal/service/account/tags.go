package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// AddTags attaches the tags of a comma-separated list to a visible account
// and returns the account with its full tag list.
func (s *Service) AddTags(ctx context.Context, id uuid.UUID, tagList string) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tags := domain.ParseTagList(tagList)
	if len(tags) == 0 {
		return nil, domain.NewValidationError("tag_list", "required")
	}

	if _, err := s.accounts.GetVisible(ctx, userID, id); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := s.tags.Add(ctx, id, tags); err != nil {
		return nil, fmt.Errorf("add tags: %w", err)
	}

	s.log.InfoContext(ctx, "account tagged",
		slog.String("account_id", id.String()),
		slog.String("tags", strings.Join(tags, ",")),
	)

	return s.loadAccount(ctx, userID, id)
}

// DeleteTag detaches one tag from a visible account and returns the account
// with its remaining tags. Removing a tag the account does not carry is a no-op.
func (s *Service) DeleteTag(ctx context.Context, id uuid.UUID, tag string) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name := domain.NormalizeTag(tag)
	if name == "" {
		return nil, domain.NewValidationError("tag", "required")
	}

	if _, err := s.accounts.GetVisible(ctx, userID, id); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := s.tags.Remove(ctx, id, name); err != nil {
		return nil, fmt.Errorf("remove tag: %w", err)
	}

	return s.loadAccount(ctx, userID, id)
}

// AutoCompleteTags returns tag names starting with prefix.
func (s *Service) AutoCompleteTags(ctx context.Context, prefix string) ([]string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	prefix = domain.NormalizeTag(prefix)
	if prefix == "" {
		return []string{}, nil
	}

	names, err := s.tags.AutoComplete(ctx, prefix, s.cfg.AutoCompleteLimit)
	if err != nil {
		return nil, fmt.Errorf("auto-complete tags: %w", err)
	}

	return names, nil
}
