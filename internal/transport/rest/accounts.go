package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/account"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type accountService interface {
	ListAccounts(ctx context.Context, state *domain.SessionState, in account.ListInput) (*account.ListResult, error)
	SearchAccounts(ctx context.Context, state *domain.SessionState, query string) (*account.ListResult, error)
	FilterAccounts(ctx context.Context, state *domain.SessionState, tags *[]string) (*account.ListResult, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	NewAccountForm(ctx context.Context) (*account.FormResult, error)
	EditAccountForm(ctx context.Context, id uuid.UUID, previousID *uuid.UUID) (*account.FormResult, error)
	CreateAccount(ctx context.Context, state *domain.SessionState, input account.CreateInput) (*account.CreateResult, error)
	UpdateAccount(ctx context.Context, input account.UpdateInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, state *domain.SessionState, id uuid.UUID, relist bool) (*account.ListResult, error)
	GetOptions(ctx context.Context) (*account.DisplayOptions, error)
	Redraw(ctx context.Context, state *domain.SessionState, input account.RedrawInput) (*account.ListResult, error)
	AddTags(ctx context.Context, id uuid.UUID, tagList string) (*domain.Account, error)
	DeleteTag(ctx context.Context, id uuid.UUID, tag string) (*domain.Account, error)
	AutoCompleteTags(ctx context.Context, prefix string) ([]string, error)
	AutoCompleteAccounts(ctx context.Context, query string) ([]domain.AccountSummary, error)
	RecentlyViewed(ctx context.Context) ([]domain.AccountSummary, error)
}

type sessionStore interface {
	Load(ctx context.Context, id string) (*domain.SessionState, error)
	Save(ctx context.Context, id string, state *domain.SessionState) error
}

// AccountHandler serves the /accounts endpoints.
type AccountHandler struct {
	accounts accountService
	sessions sessionStore
	log      *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts accountService, sessions sessionStore, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		sessions: sessions,
		log:      logger.With("handler", "account"),
	}
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// loadSession returns the browsing state of the request's session. Without a
// session id the state is a throwaway that is never saved.
func (h *AccountHandler) loadSession(ctx context.Context) (*domain.SessionState, error) {
	id, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return &domain.SessionState{}, nil
	}
	state, err := h.sessions.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return state, nil
}

func (h *AccountHandler) saveSession(ctx context.Context, state *domain.SessionState) error {
	id, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return nil
	}
	if err := h.sessions.Save(ctx, id, state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// withSession loads the session state, runs fn and saves the state back when
// fn succeeds.
func (h *AccountHandler) withSession(r *http.Request, fn func(state *domain.SessionState) error) error {
	state, err := h.loadSession(r.Context())
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	return h.saveSession(r.Context(), state)
}

// writeList presents a listing in the negotiated format.
func (h *AccountHandler) writeList(w http.ResponseWriter, r *http.Request, status int, res *account.ListResult) {
	resp, err := presentList(r.Context(), res)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, status, resp)
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

// Index handles GET /accounts.
func (h *AccountHandler) Index(w http.ResponseWriter, r *http.Request) {
	var in account.ListInput
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("page", "must be an integer"))
			return
		}
		in.Page = &page
	}

	var res *account.ListResult
	err := h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.ListAccounts(r.Context(), state, in)
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeList(w, r, http.StatusOK, res)
}

// Search handles GET /accounts/search?query=.
func (h *AccountHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	var res *account.ListResult
	err := h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.SearchAccounts(r.Context(), state, query)
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeList(w, r, http.StatusOK, res)
}

// Filter handles POST /accounts/filter. The body's "tags" is an array or a
// comma-separated string; when the key is absent the stored filter is kept.
func (h *AccountHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	tags, err := req.tags()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var res *account.ListResult
	err = h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.FilterAccounts(r.Context(), state, tags)
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeList(w, r, http.StatusOK, res)
}

// Options handles GET /accounts/options. ?cancel=true closes the options
// panel and returns no content.
func (h *AccountHandler) Options(w http.ResponseWriter, r *http.Request) {
	if cancel, _ := strconv.ParseBool(r.URL.Query().Get("cancel")); cancel {
		writeEmpty(w, http.StatusNoContent)
		return
	}

	opts, err := h.accounts.GetOptions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, optionsResponse{
		PerPage: opts.PerPage,
		Outline: opts.Outline.String(),
		SortBy:  opts.SortBy.String(),
	})
}

// Redraw handles POST /accounts/redraw.
func (h *AccountHandler) Redraw(w http.ResponseWriter, r *http.Request) {
	var req redrawRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var res *account.ListResult
	err := h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.Redraw(r.Context(), state, account.RedrawInput{
			PerPage: req.PerPage,
			Outline: req.Outline,
			SortBy:  req.SortBy,
		})
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeList(w, r, http.StatusOK, res)
}

// ---------------------------------------------------------------------------
// Single account
// ---------------------------------------------------------------------------

// Show handles GET /accounts/{id}.
func (h *AccountHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	acc, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeAccount(w, r, http.StatusOK, acc)
}

// New handles GET /accounts/new.
func (h *AccountHandler) New(w http.ResponseWriter, r *http.Request) {
	res, err := h.accounts.NewAccountForm(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeForm(w, r, res)
}

// Edit handles GET /accounts/{id}/edit?previous=.
func (h *AccountHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var previous *uuid.UUID
	if raw := r.URL.Query().Get("previous"); raw != "" {
		p, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("previous", "invalid id"))
			return
		}
		previous = &p
	}

	res, err := h.accounts.EditAccountForm(r.Context(), id, previous)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeForm(w, r, res)
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.createInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var res *account.CreateResult
	err = h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.CreateAccount(r.Context(), state, input)
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/accounts/"+res.Account.ID.String())

	if negotiate(r) == formatXML {
		h.writeAccount(w, r, http.StatusCreated, res.Account)
		return
	}

	acc, err := presentAccount(r.Context(), res.Account)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	resp := createResponse{Account: acc}
	if res.List != nil {
		list, err := presentList(r.Context(), res.List)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		resp.List = list
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Update handles PUT /accounts/{id}. XML clients get an empty 200.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req accountRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.updateInput(id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	acc, err := h.accounts.UpdateAccount(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if negotiate(r) == formatXML {
		writeEmpty(w, http.StatusOK)
		return
	}
	h.writeAccount(w, r, http.StatusOK, acc)
}

// Delete handles DELETE /accounts/{id}. By default the refreshed listing is
// returned; ?relist=false and XML clients get an empty response.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	relist := true
	if raw := r.URL.Query().Get("relist"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("relist", "must be a boolean"))
			return
		}
		relist = v
	}
	xmlOut := negotiate(r) == formatXML
	if xmlOut {
		relist = false
	}

	var res *account.ListResult
	err := h.withSession(r, func(state *domain.SessionState) error {
		var err error
		res, err = h.accounts.DeleteAccount(r.Context(), state, id, relist)
		return err
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	switch {
	case xmlOut:
		writeEmpty(w, http.StatusOK)
	case res == nil:
		writeEmpty(w, http.StatusNoContent)
	default:
		h.writeList(w, r, http.StatusOK, res)
	}
}

// ---------------------------------------------------------------------------
// Tags
// ---------------------------------------------------------------------------

// AddTag handles PUT /accounts/{id}/add_tag.
func (h *AccountHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req addTagRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	acc, err := h.accounts.AddTags(r.Context(), id, req.TagList)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeAccount(w, r, http.StatusOK, acc)
}

// DeleteTag handles PUT /accounts/{id}/delete_tag?tag=.
func (h *AccountHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	acc, err := h.accounts.DeleteTag(r.Context(), id, r.URL.Query().Get("tag"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeAccount(w, r, http.StatusOK, acc)
}

// AutoCompleteTags handles GET /tags/auto_complete?query=.
func (h *AccountHandler) AutoCompleteTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.accounts.AutoCompleteTags(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, tagList{Items: tags})
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

// AutoComplete handles GET /accounts/auto_complete?query=.
func (h *AccountHandler) AutoComplete(w http.ResponseWriter, r *http.Request) {
	items, err := h.accounts.AutoCompleteAccounts(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, presentSummaries(items))
}

// Recent handles GET /accounts/recent.
func (h *AccountHandler) Recent(w http.ResponseWriter, r *http.Request) {
	items, err := h.accounts.RecentlyViewed(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, presentSummaries(items))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *AccountHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Malformed ids cannot name a visible account.
		handleError(w, r, h.log, domain.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AccountHandler) writeAccount(w http.ResponseWriter, r *http.Request, status int, acc *domain.Account) {
	resp, err := presentAccount(r.Context(), acc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, status, resp)
}

func (h *AccountHandler) writeForm(w http.ResponseWriter, r *http.Request, res *account.FormResult) {
	resp, err := presentForm(r.Context(), res)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, resp)
}

// decodeBody decodes a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
