package rest

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/account"
)

// accountRequest is the body of POST /accounts and PUT /accounts/{id}.
// On update, absent fields are left unchanged and an empty assigned_to
// clears the assignee.
type accountRequest struct {
	Name           *string   `json:"name"`
	Access         *string   `json:"access"`
	AssignedTo     *string   `json:"assigned_to"`
	Website        *string   `json:"website"`
	TollFreePhone  *string   `json:"toll_free_phone"`
	Phone          *string   `json:"phone"`
	Fax            *string   `json:"fax"`
	Email          *string   `json:"email"`
	BackgroundInfo *string   `json:"background_info"`
	Users          *[]string `json:"users"`
	TagList        *string   `json:"tag_list"`
}

func (req accountRequest) createInput() (account.CreateInput, error) {
	var errs []domain.FieldError

	in := account.CreateInput{
		Website:        req.Website,
		TollFreePhone:  req.TollFreePhone,
		Phone:          req.Phone,
		Fax:            req.Fax,
		Email:          req.Email,
		BackgroundInfo: req.BackgroundInfo,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.TagList != nil {
		in.TagList = *req.TagList
	}
	if req.Access != nil {
		a := domain.Access(*req.Access)
		in.Access = &a
	}
	if req.AssignedTo != nil && strings.TrimSpace(*req.AssignedTo) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.AssignedTo))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid id"})
		} else {
			in.AssignedTo = &id
		}
	}
	if req.Users != nil {
		ids, fe := parseUserIDs(*req.Users)
		errs = append(errs, fe...)
		in.PermittedUserIDs = ids
	}

	if len(errs) > 0 {
		return account.CreateInput{}, domain.NewValidationErrors(errs)
	}
	return in, nil
}

func (req accountRequest) updateInput(id uuid.UUID) (account.UpdateInput, error) {
	var errs []domain.FieldError

	in := account.UpdateInput{
		ID:             id,
		Name:           req.Name,
		Website:        req.Website,
		TollFreePhone:  req.TollFreePhone,
		Phone:          req.Phone,
		Fax:            req.Fax,
		Email:          req.Email,
		BackgroundInfo: req.BackgroundInfo,
	}
	if req.Access != nil {
		a := domain.Access(*req.Access)
		in.Access = &a
	}
	if req.AssignedTo != nil {
		raw := strings.TrimSpace(*req.AssignedTo)
		if raw == "" {
			in.ClearAssignee = true
		} else if uid, err := uuid.Parse(raw); err != nil {
			errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid id"})
		} else {
			in.AssignedTo = &uid
		}
	}
	if req.Users != nil {
		ids, fe := parseUserIDs(*req.Users)
		errs = append(errs, fe...)
		in.PermittedUserIDs = &ids
	}

	if len(errs) > 0 {
		return account.UpdateInput{}, domain.NewValidationErrors(errs)
	}
	return in, nil
}

func parseUserIDs(raw []string) ([]uuid.UUID, []domain.FieldError) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, []domain.FieldError{{Field: "users", Message: "invalid id"}}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// filterRequest is the body of POST /accounts/filter.
type filterRequest struct {
	Tags json.RawMessage `json:"tags"`
}

// tags returns nil when the key is absent or null, otherwise the list given
// as an array or a comma-separated string.
func (req filterRequest) tags() (*[]string, error) {
	if len(req.Tags) == 0 || string(req.Tags) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(req.Tags, &list); err == nil {
		return &list, nil
	}

	var joined string
	if err := json.Unmarshal(req.Tags, &joined); err == nil {
		list = domain.ParseTagList(joined)
		return &list, nil
	}

	return nil, domain.NewValidationError("tags", "must be a list or a comma-separated string")
}

// redrawRequest is the body of POST /accounts/redraw.
type redrawRequest struct {
	PerPage *int    `json:"per_page"`
	Outline *string `json:"outline"`
	SortBy  *string `json:"sort_by"`
}

// addTagRequest is the body of PUT /accounts/{id}/add_tag.
type addTagRequest struct {
	TagList string `json:"tag_list"`
}
