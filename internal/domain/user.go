package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated CRM user.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	FirstName   *string
	LastName    *string
	Admin       bool
	SuspendedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Preferences UserPreferences
}

// FullName returns "First Last" when either part is set, else the username.
func (u *User) FullName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return u.Username
	}
	return strings.Join(parts, " ")
}

// IsSuspended returns true if the user has been suspended.
func (u *User) IsSuspended() bool {
	return u.SuspendedAt != nil
}

// Preference names as stored in user_preferences.name.
const (
	PrefAccountsPerPage = "accounts_per_page"
	PrefAccountsOutline = "accounts_outline"
	PrefAccountsSortBy  = "accounts_sort_by"
)

// UserPreferences holds per-user listing preferences.
// A nil field means "use the system default".
type UserPreferences struct {
	AccountsPerPage *int
	AccountsOutline *Outline
	AccountsSortBy  *SortField
}

// ListingDefaults are the system-wide fallbacks for UserPreferences.
type ListingDefaults struct {
	PerPage int
	Outline Outline
	SortBy  SortField
}

// Resolve fills nil preferences from defaults.
func (p UserPreferences) Resolve(d ListingDefaults) (perPage int, outline Outline, sortBy SortField) {
	perPage, outline, sortBy = d.PerPage, d.Outline, d.SortBy
	if p.AccountsPerPage != nil && *p.AccountsPerPage > 0 {
		perPage = *p.AccountsPerPage
	}
	if p.AccountsOutline != nil && p.AccountsOutline.IsValid() {
		outline = *p.AccountsOutline
	}
	if p.AccountsSortBy != nil && p.AccountsSortBy.IsValid() {
		sortBy = *p.AccountsSortBy
	}
	return perPage, outline, sortBy
}
