package account

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxNameLength  = 64
	maxFieldLength = 255
	maxQueryLength = 256
)

// ListInput holds the optional overrides of a listing call.
// Nil fields fall back to the session state.
type ListInput struct {
	Page  *int
	Query *string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Page != nil && *i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Query != nil && len(*i.Query) > maxQueryLength {
		errs = append(errs, domain.FieldError{Field: "query", Message: "max 256 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for creating an account.
type CreateInput struct {
	Name           string
	Access         *domain.Access
	AssignedTo     *uuid.UUID
	Website        *string
	TollFreePhone  *string
	Phone          *string
	Fax            *string
	Email          *string
	BackgroundInfo *string
	// PermittedUserIDs is required when Access is Shared.
	PermittedUserIDs []uuid.UUID
	// TagList is a comma-separated list of tag names.
	TagList string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateContacts(errs, i.Website, i.TollFreePhone, i.Phone, i.Fax, i.Email)
	if i.Access != nil {
		errs = validateAccess(errs, *i.Access, i.PermittedUserIDs)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial account update.
// Nil fields are left unchanged. A non-nil PermittedUserIDs replaces the
// permission list.
type UpdateInput struct {
	ID               uuid.UUID
	Name             *string
	Access           *domain.Access
	AssignedTo       *uuid.UUID
	ClearAssignee    bool
	Website          *string
	TollFreePhone    *string
	Phone            *string
	Fax              *string
	Email            *string
	BackgroundInfo   *string
	PermittedUserIDs *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
// Access rules that depend on the stored account are checked by the service.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateContacts(errs, i.Website, i.TollFreePhone, i.Phone, i.Fax, i.Email)
	if i.Access != nil && !i.Access.IsValid() {
		errs = append(errs, domain.FieldError{Field: "access", Message: "must be Public, Private or Shared"})
	}
	if i.ClearAssignee && i.AssignedTo != nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "cannot set and clear at the same time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RedrawInput holds the display preferences to persist before relisting.
// Nil fields are left unchanged.
type RedrawInput struct {
	PerPage *int
	Outline *string
	SortBy  *string
}

// Validate checks all fields and collects all errors.
func (i RedrawInput) Validate() error {
	var errs []domain.FieldError
	if i.PerPage != nil && (*i.PerPage < 1 || *i.PerPage > config.MaxPerPage) {
		errs = append(errs, domain.FieldError{Field: "per_page", Message: "must be between 1 and 100"})
	}
	if i.Outline != nil && !domain.Outline(*i.Outline).IsValid() {
		errs = append(errs, domain.FieldError{Field: "outline", Message: "must be brief or long"})
	}
	if i.SortBy != nil && !domain.SortField(*i.SortBy).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "unknown sort field"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len([]rune(name)) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 64 characters"})
	}
	return errs
}

func validateContacts(errs []domain.FieldError, website, tollFree, phone, fax, email *string) []domain.FieldError {
	fields := []struct {
		name  string
		value *string
	}{
		{"website", website},
		{"toll_free_phone", tollFree},
		{"phone", phone},
		{"fax", fax},
		{"email", email},
	}
	for _, f := range fields {
		if f.value != nil && len(strings.TrimSpace(*f.value)) > maxFieldLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 255 characters"})
		}
	}

	if email != nil {
		if e := strings.TrimSpace(*email); e != "" {
			if _, err := mail.ParseAddress(e); err != nil {
				errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
			}
		}
	}
	return errs
}

func validateAccess(errs []domain.FieldError, access domain.Access, permitted []uuid.UUID) []domain.FieldError {
	if !access.IsValid() {
		return append(errs, domain.FieldError{Field: "access", Message: "must be Public, Private or Shared"})
	}
	if access == domain.AccessShared && len(permitted) == 0 {
		return append(errs, domain.FieldError{Field: "permissions", Message: "shared accounts need at least one user"})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
