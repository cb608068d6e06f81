package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// DeleteAccount soft-deletes a visible account.
//
// With relist set, the page remembered in state is listed again; when the
// deletion emptied that page and it is not the first one, the previous page
// is listed instead. Without relist, the remembered page is reset to 1 and
// the returned result is nil.
func (s *Service) DeleteAccount(ctx context.Context, state *domain.SessionState, id uuid.UUID, relist bool) (*ListResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetVisible(ctx, user.ID, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.accounts.SoftDelete(ctx, id); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		return s.logActivity(ctx, user.ID, id, domain.ActivityDeleted, acc.Name)
	})
	if err != nil {
		return nil, err
	}

	if err := s.recent.Remove(ctx, user.ID, id); err != nil {
		s.log.WarnContext(ctx, "remove recently viewed", slog.String("account_id", id.String()), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("account_id", id.String()),
	)

	if !relist {
		state.CurrentPage = 1
		return nil, nil
	}

	state.CurrentPage = state.Page()
	res, err := s.list(ctx, user, state)
	if err != nil {
		return nil, err
	}
	if len(res.Accounts) == 0 && state.CurrentPage > 1 {
		state.CurrentPage--
		return s.list(ctx, user, state)
	}

	return res, nil
}
