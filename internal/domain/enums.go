package domain

// Access controls who besides the owner and assignee can see an account.
type Access string

const (
	AccessPublic  Access = "Public"
	AccessPrivate Access = "Private"
	AccessShared  Access = "Shared"
)

func (a Access) String() string { return string(a) }

func (a Access) IsValid() bool {
	switch a {
	case AccessPublic, AccessPrivate, AccessShared:
		return true
	}
	return false
}

// SortField names a column an account listing may be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
	SortByUpdatedAt SortField = "updated_at"
)

func (s SortField) String() string { return string(s) }

func (s SortField) IsValid() bool {
	switch s {
	case SortByName, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}

// Outline is the listing layout a user prefers.
type Outline string

const (
	OutlineBrief Outline = "brief"
	OutlineLong  Outline = "long"
)

func (o Outline) String() string { return string(o) }

func (o Outline) IsValid() bool {
	switch o {
	case OutlineBrief, OutlineLong:
		return true
	}
	return false
}

// ActivityAction represents the kind of event recorded in the activity log.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
	ActivityViewed  ActivityAction = "viewed"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityDeleted, ActivityViewed:
		return true
	}
	return false
}
