package account

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// visibleTo restricts a query on "accounts a" to rows userID may see:
// alive AND (owned OR assigned OR Public OR Shared with a permission row).
// uuid.UUID is an array, which sq.Eq would expand into an IN list, so ids
// go through sq.Expr.
func visibleTo(userID uuid.UUID) sq.Sqlizer {
	return sq.And{
		sq.Eq{"a.deleted_at": nil},
		sq.Or{
			sq.Expr("a.user_id = ?", userID),
			sq.Expr("a.assigned_to = ?", userID),
			sq.Eq{"a.access": string(domain.AccessPublic)},
			sq.And{
				sq.Eq{"a.access": string(domain.AccessShared)},
				sq.Expr(`EXISTS (SELECT 1 FROM account_permissions p WHERE p.account_id = a.id AND p.user_id = ?)`, userID),
			},
		},
	}
}

// matchesText performs ILIKE '%...%' over the searchable columns.
// An empty query matches everything.
func matchesText(query string) sq.Sqlizer {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	pattern := "%" + postgres.EscapeLike(query) + "%"
	return sq.Or{
		sq.ILike{"a.name": pattern},
		sq.ILike{"a.email": pattern},
		sq.ILike{"a.website": pattern},
		sq.ILike{"a.phone": pattern},
	}
}

// taggedWithAny keeps accounts carrying at least one of tags.
// An empty tag list matches everything.
func taggedWithAny(tags []string) sq.Sqlizer {
	tags = domain.NormalizeTags(tags)
	if len(tags) == 0 {
		return nil
	}
	return sq.Expr(
		`EXISTS (SELECT 1 FROM taggings tg JOIN tags t ON t.id = tg.tag_id WHERE tg.account_id = a.id AND t.name = ANY(?))`,
		tags,
	)
}

// orderBy returns the ORDER BY terms for a sort field. Every order ends with
// id ASC so rows with equal sort keys keep a fixed relative position.
func orderBy(field domain.SortField) []string {
	switch field {
	case domain.SortByName:
		return []string{"a.name ASC", "a.id ASC"}
	case domain.SortByUpdatedAt:
		return []string{"a.updated_at DESC", "a.id ASC"}
	default:
		return []string{"a.created_at DESC", "a.id ASC"}
	}
}
