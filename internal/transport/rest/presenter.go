package rest

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/account"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

type userRef struct {
	ID   string `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

// accountResponse is one account as rendered to clients. XMLName is only
// set on top-level documents so nested accounts take their field's name.
type accountResponse struct {
	XMLName          xml.Name   `json:"-"`
	ID               string     `json:"id" xml:"id"`
	Name             string     `json:"name" xml:"name"`
	Access           string     `json:"access" xml:"access"`
	UserID           string     `json:"user_id" xml:"user-id"`
	AssignedTo       *string    `json:"assigned_to" xml:"assigned-to,omitempty"`
	Owner            *userRef   `json:"owner,omitempty" xml:"owner,omitempty"`
	Assignee         *userRef   `json:"assignee,omitempty" xml:"assignee,omitempty"`
	Website          *string    `json:"website" xml:"website,omitempty"`
	TollFreePhone    *string    `json:"toll_free_phone" xml:"toll-free-phone,omitempty"`
	Phone            *string    `json:"phone" xml:"phone,omitempty"`
	Fax              *string    `json:"fax" xml:"fax,omitempty"`
	Email            *string    `json:"email" xml:"email,omitempty"`
	BackgroundInfo   *string    `json:"background_info" xml:"background-info,omitempty"`
	PermittedUserIDs []string   `json:"permitted_user_ids,omitempty" xml:"permissions>user-id,omitempty"`
	Tags             []string   `json:"tags" xml:"tags>tag"`
	CreatedAt        *time.Time `json:"created_at,omitempty" xml:"created-at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty" xml:"updated-at,omitempty"`
}

type listResponse struct {
	XMLName    xml.Name          `json:"-" xml:"accounts"`
	Accounts   []accountResponse `json:"accounts" xml:"account"`
	Page       int               `json:"page" xml:"page,attr"`
	PerPage    int               `json:"per_page" xml:"per-page,attr"`
	TotalCount int               `json:"total_count" xml:"total-count,attr"`
	TotalPages int               `json:"total_pages" xml:"total-pages,attr"`
	Outline    string            `json:"outline" xml:"outline,attr"`
	Overridden bool              `json:"overridden,omitempty" xml:"overridden,attr,omitempty"`
}

type createResponse struct {
	Account accountResponse `json:"account"`
	List    *listResponse   `json:"list"`
}

type formResponse struct {
	XMLName         xml.Name         `json:"-" xml:"form"`
	Account         accountResponse  `json:"account" xml:"account"`
	Users           []userRef        `json:"users" xml:"users>user"`
	Previous        *accountResponse `json:"previous,omitempty" xml:"previous,omitempty"`
	PreviousMissing bool             `json:"previous_missing,omitempty" xml:"previous-missing,omitempty"`
}

type optionsResponse struct {
	XMLName xml.Name `json:"-" xml:"options"`
	PerPage int      `json:"per_page" xml:"per-page"`
	Outline string   `json:"outline" xml:"outline"`
	SortBy  string   `json:"sort_by" xml:"sort-by"`
}

type summaryResponse struct {
	ID   string `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

// summaryList renders as a bare JSON array and as <accounts> in XML.
type summaryList struct {
	XMLName xml.Name          `xml:"accounts"`
	Items   []summaryResponse `xml:"account"`
}

func (l summaryList) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// tagList renders as a bare JSON array and as <tags> in XML.
type tagList struct {
	XMLName xml.Name `xml:"tags"`
	Items   []string `xml:"tag"`
}

func (l tagList) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func toAccountResponse(a *domain.Account) accountResponse {
	resp := accountResponse{
		ID:             idString(a.ID),
		Name:           a.Name,
		Access:         a.Access.String(),
		UserID:         idString(a.UserID),
		Website:        a.Website,
		TollFreePhone:  a.TollFreePhone,
		Phone:          a.Phone,
		Fax:            a.Fax,
		Email:          a.Email,
		BackgroundInfo: a.BackgroundInfo,
		Tags:           a.Tags,
		CreatedAt:      timeOrNil(a.CreatedAt),
		UpdatedAt:      timeOrNil(a.UpdatedAt),
	}
	if a.AssignedTo != nil {
		s := a.AssignedTo.String()
		resp.AssignedTo = &s
	}
	for _, id := range a.PermittedUserIDs {
		resp.PermittedUserIDs = append(resp.PermittedUserIDs, id.String())
	}
	return resp
}

// timeOrNil hides zero timestamps of unsaved accounts.
func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toUserRef(u *domain.User) userRef {
	return userRef{ID: u.ID.String(), Name: u.FullName()}
}

// presentAccounts renders accounts, filling in tags that were not loaded
// with the account and the owner and assignee names through the request's
// data loaders.
func presentAccounts(ctx context.Context, accounts []domain.Account) ([]accountResponse, error) {
	out := make([]accountResponse, len(accounts))
	for i := range accounts {
		out[i] = toAccountResponse(&accounts[i])
	}

	loaders := dataloader.FromContext(ctx)
	if loaders != nil && len(accounts) > 0 {
		if err := loadTags(ctx, loaders, accounts, out); err != nil {
			return nil, err
		}
		if err := loadUsers(ctx, loaders, accounts, out); err != nil {
			return nil, err
		}
	}

	for i := range out {
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return out, nil
}

func presentAccount(ctx context.Context, a *domain.Account) (accountResponse, error) {
	out, err := presentAccounts(ctx, []domain.Account{*a})
	if err != nil {
		return accountResponse{}, err
	}
	out[0].XMLName = xml.Name{Local: "account"}
	return out[0], nil
}

func loadTags(ctx context.Context, loaders *dataloader.Loaders, accounts []domain.Account, out []accountResponse) error {
	var (
		ids []uuid.UUID
		idx []int
	)
	for i, a := range accounts {
		if a.Tags == nil && a.ID != uuid.Nil {
			ids = append(ids, a.ID)
			idx = append(idx, i)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	tags, errs := loaders.TagsByAccountID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	for j, i := range idx {
		out[i].Tags = tags[j]
	}
	return nil
}

func loadUsers(ctx context.Context, loaders *dataloader.Loaders, accounts []domain.Account, out []accountResponse) error {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if id == uuid.Nil {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, a := range accounts {
		add(a.UserID)
		if a.AssignedTo != nil {
			add(*a.AssignedTo)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	users, errs := loaders.UserByID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.User, len(ids))
	for j, id := range ids {
		if users[j] != nil {
			byID[id] = users[j]
		}
	}
	for i, a := range accounts {
		if u := byID[a.UserID]; u != nil {
			ref := toUserRef(u)
			out[i].Owner = &ref
		}
		if a.AssignedTo != nil {
			if u := byID[*a.AssignedTo]; u != nil {
				ref := toUserRef(u)
				out[i].Assignee = &ref
			}
		}
	}
	return nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func presentList(ctx context.Context, res *account.ListResult) (*listResponse, error) {
	accounts, err := presentAccounts(ctx, res.Accounts)
	if err != nil {
		return nil, err
	}
	return &listResponse{
		Accounts:   accounts,
		Page:       res.Page,
		PerPage:    res.PerPage,
		TotalCount: res.TotalCount,
		TotalPages: res.TotalPages,
		Outline:    res.Outline.String(),
		Overridden: res.Overridden,
	}, nil
}

func presentForm(ctx context.Context, res *account.FormResult) (*formResponse, error) {
	acc, err := presentAccount(ctx, res.Account)
	if err != nil {
		return nil, err
	}
	acc.XMLName = xml.Name{}

	resp := &formResponse{
		Account:         acc,
		Users:           make([]userRef, 0, len(res.Users)),
		PreviousMissing: res.PreviousMissing,
	}
	for i := range res.Users {
		resp.Users = append(resp.Users, toUserRef(&res.Users[i]))
	}
	if res.Previous != nil {
		prev, err := presentAccount(ctx, res.Previous)
		if err != nil {
			return nil, err
		}
		prev.XMLName = xml.Name{}
		resp.Previous = &prev
	}
	return resp, nil
}

func presentSummaries(items []domain.AccountSummary) summaryList {
	list := summaryList{Items: make([]summaryResponse, 0, len(items))}
	for _, s := range items {
		list.Items = append(list.Items, summaryResponse{ID: s.ID.String(), Name: s.Name})
	}
	return list
}
