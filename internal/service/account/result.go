package account

import "github.com/heartmarshall/crm-backend/internal/domain"

// ListResult is one page of the account listing.
type ListResult struct {
	Accounts   []domain.Account
	Page       int
	PerPage    int
	TotalCount int
	TotalPages int
	Outline    domain.Outline
	// Overridden is set when a listing override supplied Accounts.
	Overridden bool
}

// FormResult carries the data needed to render a new/edit account form.
type FormResult struct {
	Account *domain.Account
	// Users are the other active users the account may be assigned or shared to.
	Users []domain.User
	// Previous is the account whose form was open before, when still visible.
	Previous *domain.Account
	// PreviousMissing is set when a previous account was requested but is
	// no longer visible.
	PreviousMissing bool
}

// CreateResult is the created account plus the refreshed listing.
type CreateResult struct {
	Account *domain.Account
	List    *ListResult
}

// DisplayOptions are the effective listing preferences of a user.
type DisplayOptions struct {
	PerPage int
	Outline domain.Outline
	SortBy  domain.SortField
}
