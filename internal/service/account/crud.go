package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// GetAccount returns a visible account with its tags and records the view.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	acc, err := s.loadAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Best-effort: the account is already loaded.
	if err := s.logActivity(ctx, userID, id, domain.ActivityViewed, acc.Name); err != nil {
		s.log.WarnContext(ctx, "log view activity", slog.String("account_id", id.String()), slog.String("error", err.Error()))
	}
	if err := s.recent.Touch(ctx, userID, id); err != nil {
		s.log.WarnContext(ctx, "touch recently viewed", slog.String("account_id", id.String()), slog.String("error", err.Error()))
	}

	return acc, nil
}

// NewAccountForm returns a blank account owned by the current user with the
// default access level, plus the users it may be shared with.
func (s *Service) NewAccountForm(ctx context.Context) (*FormResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.users.ListActiveExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &FormResult{
		Account: &domain.Account{UserID: userID, Access: s.cfg.DefaultAccess},
		Users:   users,
	}, nil
}

// EditAccountForm returns a visible account plus the users it may be shared
// with. When previousID is set, the previously edited account is returned too,
// or PreviousMissing is set when it is no longer visible.
func (s *Service) EditAccountForm(ctx context.Context, id uuid.UUID, previousID *uuid.UUID) (*FormResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	acc, err := s.loadAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListActiveExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := &FormResult{Account: acc, Users: users}

	if previousID != nil {
		prev, err := s.accounts.GetVisible(ctx, userID, *previousID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			res.PreviousMissing = true
		case err != nil:
			return nil, fmt.Errorf("get previous account: %w", err)
		default:
			res.Previous = prev
		}
	}

	return res, nil
}

// CreateAccount creates an account with its permissions and tags, then
// relists the page remembered in state.
func (s *Service) CreateAccount(ctx context.Context, state *domain.SessionState, input CreateInput) (*CreateResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	access := s.cfg.DefaultAccess
	if input.Access != nil {
		access = *input.Access
	}
	if access == domain.AccessShared && len(input.PermittedUserIDs) == 0 {
		return nil, domain.NewValidationError("permissions", "shared accounts need at least one user")
	}
	if err := s.checkUsers(ctx, input.AssignedTo, input.PermittedUserIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	acc := &domain.Account{
		ID:             uuid.New(),
		UserID:         user.ID,
		AssignedTo:     input.AssignedTo,
		Name:           strings.TrimSpace(input.Name),
		Access:         access,
		Website:        trimOrNil(input.Website),
		TollFreePhone:  trimOrNil(input.TollFreePhone),
		Phone:          trimOrNil(input.Phone),
		Fax:            trimOrNil(input.Fax),
		Email:          trimOrNil(input.Email),
		BackgroundInfo: trimOrNil(input.BackgroundInfo),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if access == domain.AccessShared {
		acc.PermittedUserIDs = input.PermittedUserIDs
	}
	tags := domain.ParseTagList(input.TagList)

	var created *domain.Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.accounts.Create(ctx, acc)
		if txErr != nil {
			return fmt.Errorf("create account: %w", txErr)
		}
		if len(tags) > 0 {
			if txErr = s.tags.Add(ctx, created.ID, tags); txErr != nil {
				return fmt.Errorf("add tags: %w", txErr)
			}
		}
		return s.logActivity(ctx, user.ID, created.ID, domain.ActivityCreated, created.Name)
	})
	if err != nil {
		return nil, nameTaken(err)
	}
	created.Tags = tags

	s.log.InfoContext(ctx, "account created",
		slog.String("user_id", user.ID.String()),
		slog.String("account_id", created.ID.String()),
		slog.String("access", created.Access.String()),
	)

	list, err := s.list(ctx, user, state)
	if err != nil {
		return nil, err
	}

	return &CreateResult{Account: created, List: list}, nil
}

// UpdateAccount applies a partial update to a visible account.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateInput) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetVisible(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var assignee *uuid.UUID
	if !input.ClearAssignee {
		assignee = input.AssignedTo
	}
	var permitted []uuid.UUID
	if input.PermittedUserIDs != nil {
		permitted = *input.PermittedUserIDs
	}
	if err := s.checkUsers(ctx, assignee, permitted); err != nil {
		return nil, err
	}

	applyUpdate(acc, input)

	if acc.Access == domain.AccessShared && len(acc.PermittedUserIDs) == 0 {
		return nil, domain.NewValidationError("permissions", "shared accounts need at least one user")
	}
	replacePermissions := input.PermittedUserIDs != nil || acc.Access != domain.AccessShared
	if acc.Access != domain.AccessShared {
		acc.PermittedUserIDs = nil
	}

	var updated *domain.Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.accounts.Update(ctx, acc)
		if txErr != nil {
			return fmt.Errorf("update account: %w", txErr)
		}
		if replacePermissions {
			if txErr = s.accounts.ReplacePermissions(ctx, acc.ID, acc.PermittedUserIDs); txErr != nil {
				return fmt.Errorf("replace permissions: %w", txErr)
			}
		}
		return s.logActivity(ctx, userID, acc.ID, domain.ActivityUpdated, updated.Name)
	})
	if err != nil {
		return nil, nameTaken(err)
	}

	updated.Tags, err = s.tags.ListByAccount(ctx, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	s.log.InfoContext(ctx, "account updated",
		slog.String("user_id", userID.String()),
		slog.String("account_id", updated.ID.String()),
	)

	return updated, nil
}

// nameTaken turns a unique violation on the account name into a field error.
func nameTaken(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewValidationError("name", "has already been taken")
	}
	return err
}

// checkUsers reports an assignee or permitted user that does not exist
// as a field error.
func (s *Service) checkUsers(ctx context.Context, assignee *uuid.UUID, permitted []uuid.UUID) error {
	ids := slices.Clone(permitted)
	if assignee != nil {
		ids = append(ids, *assignee)
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get users: %w", err)
	}
	known := make(map[uuid.UUID]bool, len(users))
	for _, u := range users {
		known[u.ID] = true
	}

	var errs []domain.FieldError
	if assignee != nil && !known[*assignee] {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "unknown user"})
	}
	for _, id := range permitted {
		if !known[id] {
			errs = append(errs, domain.FieldError{Field: "users", Message: "unknown user " + id.String()})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func applyUpdate(acc *domain.Account, input UpdateInput) {
	if input.Name != nil {
		acc.Name = strings.TrimSpace(*input.Name)
	}
	if input.Access != nil {
		acc.Access = *input.Access
	}
	if input.ClearAssignee {
		acc.AssignedTo = nil
	} else if input.AssignedTo != nil {
		acc.AssignedTo = input.AssignedTo
	}
	if input.Website != nil {
		acc.Website = trimOrNil(input.Website)
	}
	if input.TollFreePhone != nil {
		acc.TollFreePhone = trimOrNil(input.TollFreePhone)
	}
	if input.Phone != nil {
		acc.Phone = trimOrNil(input.Phone)
	}
	if input.Fax != nil {
		acc.Fax = trimOrNil(input.Fax)
	}
	if input.Email != nil {
		acc.Email = trimOrNil(input.Email)
	}
	if input.BackgroundInfo != nil {
		acc.BackgroundInfo = trimOrNil(input.BackgroundInfo)
	}
	if input.PermittedUserIDs != nil {
		acc.PermittedUserIDs = *input.PermittedUserIDs
	}
}
