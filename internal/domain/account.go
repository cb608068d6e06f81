package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a company or organization tracked in the CRM.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AssignedTo     *uuid.UUID
	Name           string
	Access         Access
	Website        *string
	TollFreePhone  *string
	Phone          *string
	Fax            *string
	Email          *string
	BackgroundInfo *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time

	// PermittedUserIDs lists the users a Shared account is shared with.
	PermittedUserIDs []uuid.UUID
	Tags             []string
}

// IsDeleted returns true if the account has been soft-deleted.
func (a *Account) IsDeleted() bool {
	return a.DeletedAt != nil
}

// VisibleTo reports whether userID may see the account.
// It mirrors the ownership scoping applied by the listing query.
func (a *Account) VisibleTo(userID uuid.UUID) bool {
	if a.IsDeleted() {
		return false
	}
	if a.UserID == userID || (a.AssignedTo != nil && *a.AssignedTo == userID) {
		return true
	}
	switch a.Access {
	case AccessPublic:
		return true
	case AccessShared:
		for _, id := range a.PermittedUserIDs {
			if id == userID {
				return true
			}
		}
	}
	return false
}

// HasTag reports whether the account carries the given tag.
func (a *Account) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AccountSummary is the id/name pair used by auto-complete and the
// recently-viewed list.
type AccountSummary struct {
	ID   uuid.UUID
	Name string
}
