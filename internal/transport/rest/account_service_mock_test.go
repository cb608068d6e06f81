package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/account"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	ListAccountsFunc         func(ctx context.Context, state *domain.SessionState, in account.ListInput) (*account.ListResult, error)
	SearchAccountsFunc       func(ctx context.Context, state *domain.SessionState, query string) (*account.ListResult, error)
	FilterAccountsFunc       func(ctx context.Context, state *domain.SessionState, tags *[]string) (*account.ListResult, error)
	GetAccountFunc           func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	NewAccountFormFunc       func(ctx context.Context) (*account.FormResult, error)
	EditAccountFormFunc      func(ctx context.Context, id uuid.UUID, previousID *uuid.UUID) (*account.FormResult, error)
	CreateAccountFunc        func(ctx context.Context, state *domain.SessionState, input account.CreateInput) (*account.CreateResult, error)
	UpdateAccountFunc        func(ctx context.Context, input account.UpdateInput) (*domain.Account, error)
	DeleteAccountFunc        func(ctx context.Context, state *domain.SessionState, id uuid.UUID, relist bool) (*account.ListResult, error)
	GetOptionsFunc           func(ctx context.Context) (*account.DisplayOptions, error)
	RedrawFunc               func(ctx context.Context, state *domain.SessionState, input account.RedrawInput) (*account.ListResult, error)
	AddTagsFunc              func(ctx context.Context, id uuid.UUID, tagList string) (*domain.Account, error)
	DeleteTagFunc            func(ctx context.Context, id uuid.UUID, tag string) (*domain.Account, error)
	AutoCompleteTagsFunc     func(ctx context.Context, prefix string) ([]string, error)
	AutoCompleteAccountsFunc func(ctx context.Context, query string) ([]domain.AccountSummary, error)
	RecentlyViewedFunc       func(ctx context.Context) ([]domain.AccountSummary, error)

	calls struct {
		ListAccounts []struct {
			Ctx   context.Context
			State *domain.SessionState
			In    account.ListInput
		}
		SearchAccounts []struct {
			Ctx   context.Context
			State *domain.SessionState
			Query string
		}
		FilterAccounts []struct {
			Ctx   context.Context
			State *domain.SessionState
			Tags  *[]string
		}
		GetAccount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		NewAccountForm []struct {
			Ctx context.Context
		}
		EditAccountForm []struct {
			Ctx        context.Context
			ID         uuid.UUID
			PreviousID *uuid.UUID
		}
		CreateAccount []struct {
			Ctx   context.Context
			State *domain.SessionState
			Input account.CreateInput
		}
		UpdateAccount []struct {
			Ctx   context.Context
			Input account.UpdateInput
		}
		DeleteAccount []struct {
			Ctx    context.Context
			State  *domain.SessionState
			ID     uuid.UUID
			Relist bool
		}
		GetOptions []struct {
			Ctx context.Context
		}
		Redraw []struct {
			Ctx   context.Context
			State *domain.SessionState
			Input account.RedrawInput
		}
		AddTags []struct {
			Ctx     context.Context
			ID      uuid.UUID
			TagList string
		}
		DeleteTag []struct {
			Ctx context.Context
			ID  uuid.UUID
			Tag string
		}
		AutoCompleteTags []struct {
			Ctx    context.Context
			Prefix string
		}
		AutoCompleteAccounts []struct {
			Ctx   context.Context
			Query string
		}
		RecentlyViewed []struct {
			Ctx context.Context
		}
	}
	lockListAccounts         sync.RWMutex
	lockSearchAccounts       sync.RWMutex
	lockFilterAccounts       sync.RWMutex
	lockGetAccount           sync.RWMutex
	lockNewAccountForm       sync.RWMutex
	lockEditAccountForm      sync.RWMutex
	lockCreateAccount        sync.RWMutex
	lockUpdateAccount        sync.RWMutex
	lockDeleteAccount        sync.RWMutex
	lockGetOptions           sync.RWMutex
	lockRedraw               sync.RWMutex
	lockAddTags              sync.RWMutex
	lockDeleteTag            sync.RWMutex
	lockAutoCompleteTags     sync.RWMutex
	lockAutoCompleteAccounts sync.RWMutex
	lockRecentlyViewed       sync.RWMutex
}

func (mock *accountServiceMock) ListAccounts(ctx context.Context, state *domain.SessionState, in account.ListInput) (*account.ListResult, error) {
	if mock.ListAccountsFunc == nil {
		panic("accountServiceMock.ListAccountsFunc: method is nil but accountService.ListAccounts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State *domain.SessionState
		In    account.ListInput
	}{
		Ctx:   ctx,
		State: state,
		In:    in,
	}
	mock.lockListAccounts.Lock()
	mock.calls.ListAccounts = append(mock.calls.ListAccounts, callInfo)
	mock.lockListAccounts.Unlock()
	return mock.ListAccountsFunc(ctx, state, in)
}

func (mock *accountServiceMock) ListAccountsCalls() []struct {
	Ctx   context.Context
	State *domain.SessionState
	In    account.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		State *domain.SessionState
		In    account.ListInput
	}
	mock.lockListAccounts.RLock()
	calls = mock.calls.ListAccounts
	mock.lockListAccounts.RUnlock()
	return calls
}

func (mock *accountServiceMock) SearchAccounts(ctx context.Context, state *domain.SessionState, query string) (*account.ListResult, error) {
	if mock.SearchAccountsFunc == nil {
		panic("accountServiceMock.SearchAccountsFunc: method is nil but accountService.SearchAccounts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State *domain.SessionState
		Query string
	}{
		Ctx:   ctx,
		State: state,
		Query: query,
	}
	mock.lockSearchAccounts.Lock()
	mock.calls.SearchAccounts = append(mock.calls.SearchAccounts, callInfo)
	mock.lockSearchAccounts.Unlock()
	return mock.SearchAccountsFunc(ctx, state, query)
}

func (mock *accountServiceMock) SearchAccountsCalls() []struct {
	Ctx   context.Context
	State *domain.SessionState
	Query string
} {
	var calls []struct {
		Ctx   context.Context
		State *domain.SessionState
		Query string
	}
	mock.lockSearchAccounts.RLock()
	calls = mock.calls.SearchAccounts
	mock.lockSearchAccounts.RUnlock()
	return calls
}

func (mock *accountServiceMock) FilterAccounts(ctx context.Context, state *domain.SessionState, tags *[]string) (*account.ListResult, error) {
	if mock.FilterAccountsFunc == nil {
		panic("accountServiceMock.FilterAccountsFunc: method is nil but accountService.FilterAccounts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State *domain.SessionState
		Tags  *[]string
	}{
		Ctx:   ctx,
		State: state,
		Tags:  tags,
	}
	mock.lockFilterAccounts.Lock()
	mock.calls.FilterAccounts = append(mock.calls.FilterAccounts, callInfo)
	mock.lockFilterAccounts.Unlock()
	return mock.FilterAccountsFunc(ctx, state, tags)
}

func (mock *accountServiceMock) FilterAccountsCalls() []struct {
	Ctx   context.Context
	State *domain.SessionState
	Tags  *[]string
} {
	var calls []struct {
		Ctx   context.Context
		State *domain.SessionState
		Tags  *[]string
	}
	mock.lockFilterAccounts.RLock()
	calls = mock.calls.FilterAccounts
	mock.lockFilterAccounts.RUnlock()
	return calls
}

func (mock *accountServiceMock) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetAccountFunc == nil {
		panic("accountServiceMock.GetAccountFunc: method is nil but accountService.GetAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetAccount.Lock()
	mock.calls.GetAccount = append(mock.calls.GetAccount, callInfo)
	mock.lockGetAccount.Unlock()
	return mock.GetAccountFunc(ctx, id)
}

func (mock *accountServiceMock) GetAccountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetAccount.RLock()
	calls = mock.calls.GetAccount
	mock.lockGetAccount.RUnlock()
	return calls
}

func (mock *accountServiceMock) NewAccountForm(ctx context.Context) (*account.FormResult, error) {
	if mock.NewAccountFormFunc == nil {
		panic("accountServiceMock.NewAccountFormFunc: method is nil but accountService.NewAccountForm was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockNewAccountForm.Lock()
	mock.calls.NewAccountForm = append(mock.calls.NewAccountForm, callInfo)
	mock.lockNewAccountForm.Unlock()
	return mock.NewAccountFormFunc(ctx)
}

func (mock *accountServiceMock) NewAccountFormCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockNewAccountForm.RLock()
	calls = mock.calls.NewAccountForm
	mock.lockNewAccountForm.RUnlock()
	return calls
}

func (mock *accountServiceMock) EditAccountForm(ctx context.Context, id uuid.UUID, previousID *uuid.UUID) (*account.FormResult, error) {
	if mock.EditAccountFormFunc == nil {
		panic("accountServiceMock.EditAccountFormFunc: method is nil but accountService.EditAccountForm was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		PreviousID *uuid.UUID
	}{
		Ctx:        ctx,
		ID:         id,
		PreviousID: previousID,
	}
	mock.lockEditAccountForm.Lock()
	mock.calls.EditAccountForm = append(mock.calls.EditAccountForm, callInfo)
	mock.lockEditAccountForm.Unlock()
	return mock.EditAccountFormFunc(ctx, id, previousID)
}

func (mock *accountServiceMock) EditAccountFormCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	PreviousID *uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		ID         uuid.UUID
		PreviousID *uuid.UUID
	}
	mock.lockEditAccountForm.RLock()
	calls = mock.calls.EditAccountForm
	mock.lockEditAccountForm.RUnlock()
	return calls
}

func (mock *accountServiceMock) CreateAccount(ctx context.Context, state *domain.SessionState, input account.CreateInput) (*account.CreateResult, error) {
	if mock.CreateAccountFunc == nil {
		panic("accountServiceMock.CreateAccountFunc: method is nil but accountService.CreateAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State *domain.SessionState
		Input account.CreateInput
	}{
		Ctx:   ctx,
		State: state,
		Input: input,
	}
	mock.lockCreateAccount.Lock()
	mock.calls.CreateAccount = append(mock.calls.CreateAccount, callInfo)
	mock.lockCreateAccount.Unlock()
	return mock.CreateAccountFunc(ctx, state, input)
}

func (mock *accountServiceMock) CreateAccountCalls() []struct {
	Ctx   context.Context
	State *domain.SessionState
	Input account.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		State *domain.SessionState
		Input account.CreateInput
	}
	mock.lockCreateAccount.RLock()
	calls = mock.calls.CreateAccount
	mock.lockCreateAccount.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateAccount(ctx context.Context, input account.UpdateInput) (*domain.Account, error) {
	if mock.UpdateAccountFunc == nil {
		panic("accountServiceMock.UpdateAccountFunc: method is nil but accountService.UpdateAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateAccount.Lock()
	mock.calls.UpdateAccount = append(mock.calls.UpdateAccount, callInfo)
	mock.lockUpdateAccount.Unlock()
	return mock.UpdateAccountFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateAccountCalls() []struct {
	Ctx   context.Context
	Input account.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input account.UpdateInput
	}
	mock.lockUpdateAccount.RLock()
	calls = mock.calls.UpdateAccount
	mock.lockUpdateAccount.RUnlock()
	return calls
}

func (mock *accountServiceMock) DeleteAccount(ctx context.Context, state *domain.SessionState, id uuid.UUID, relist bool) (*account.ListResult, error) {
	if mock.DeleteAccountFunc == nil {
		panic("accountServiceMock.DeleteAccountFunc: method is nil but accountService.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		State  *domain.SessionState
		ID     uuid.UUID
		Relist bool
	}{
		Ctx:    ctx,
		State:  state,
		ID:     id,
		Relist: relist,
	}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx, state, id, relist)
}

func (mock *accountServiceMock) DeleteAccountCalls() []struct {
	Ctx    context.Context
	State  *domain.SessionState
	ID     uuid.UUID
	Relist bool
} {
	var calls []struct {
		Ctx    context.Context
		State  *domain.SessionState
		ID     uuid.UUID
		Relist bool
	}
	mock.lockDeleteAccount.RLock()
	calls = mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}

func (mock *accountServiceMock) GetOptions(ctx context.Context) (*account.DisplayOptions, error) {
	if mock.GetOptionsFunc == nil {
		panic("accountServiceMock.GetOptionsFunc: method is nil but accountService.GetOptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetOptions.Lock()
	mock.calls.GetOptions = append(mock.calls.GetOptions, callInfo)
	mock.lockGetOptions.Unlock()
	return mock.GetOptionsFunc(ctx)
}

func (mock *accountServiceMock) GetOptionsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetOptions.RLock()
	calls = mock.calls.GetOptions
	mock.lockGetOptions.RUnlock()
	return calls
}

func (mock *accountServiceMock) Redraw(ctx context.Context, state *domain.SessionState, input account.RedrawInput) (*account.ListResult, error) {
	if mock.RedrawFunc == nil {
		panic("accountServiceMock.RedrawFunc: method is nil but accountService.Redraw was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State *domain.SessionState
		Input account.RedrawInput
	}{
		Ctx:   ctx,
		State: state,
		Input: input,
	}
	mock.lockRedraw.Lock()
	mock.calls.Redraw = append(mock.calls.Redraw, callInfo)
	mock.lockRedraw.Unlock()
	return mock.RedrawFunc(ctx, state, input)
}

func (mock *accountServiceMock) RedrawCalls() []struct {
	Ctx   context.Context
	State *domain.SessionState
	Input account.RedrawInput
} {
	var calls []struct {
		Ctx   context.Context
		State *domain.SessionState
		Input account.RedrawInput
	}
	mock.lockRedraw.RLock()
	calls = mock.calls.Redraw
	mock.lockRedraw.RUnlock()
	return calls
}

func (mock *accountServiceMock) AddTags(ctx context.Context, id uuid.UUID, tagList string) (*domain.Account, error) {
	if mock.AddTagsFunc == nil {
		panic("accountServiceMock.AddTagsFunc: method is nil but accountService.AddTags was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		TagList string
	}{
		Ctx:     ctx,
		ID:      id,
		TagList: tagList,
	}
	mock.lockAddTags.Lock()
	mock.calls.AddTags = append(mock.calls.AddTags, callInfo)
	mock.lockAddTags.Unlock()
	return mock.AddTagsFunc(ctx, id, tagList)
}

func (mock *accountServiceMock) AddTagsCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	TagList string
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		TagList string
	}
	mock.lockAddTags.RLock()
	calls = mock.calls.AddTags
	mock.lockAddTags.RUnlock()
	return calls
}

func (mock *accountServiceMock) DeleteTag(ctx context.Context, id uuid.UUID, tag string) (*domain.Account, error) {
	if mock.DeleteTagFunc == nil {
		panic("accountServiceMock.DeleteTagFunc: method is nil but accountService.DeleteTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Tag string
	}{
		Ctx: ctx,
		ID:  id,
		Tag: tag,
	}
	mock.lockDeleteTag.Lock()
	mock.calls.DeleteTag = append(mock.calls.DeleteTag, callInfo)
	mock.lockDeleteTag.Unlock()
	return mock.DeleteTagFunc(ctx, id, tag)
}

func (mock *accountServiceMock) DeleteTagCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Tag string
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Tag string
	}
	mock.lockDeleteTag.RLock()
	calls = mock.calls.DeleteTag
	mock.lockDeleteTag.RUnlock()
	return calls
}

func (mock *accountServiceMock) AutoCompleteTags(ctx context.Context, prefix string) ([]string, error) {
	if mock.AutoCompleteTagsFunc == nil {
		panic("accountServiceMock.AutoCompleteTagsFunc: method is nil but accountService.AutoCompleteTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{
		Ctx:    ctx,
		Prefix: prefix,
	}
	mock.lockAutoCompleteTags.Lock()
	mock.calls.AutoCompleteTags = append(mock.calls.AutoCompleteTags, callInfo)
	mock.lockAutoCompleteTags.Unlock()
	return mock.AutoCompleteTagsFunc(ctx, prefix)
}

func (mock *accountServiceMock) AutoCompleteTagsCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	var calls []struct {
		Ctx    context.Context
		Prefix string
	}
	mock.lockAutoCompleteTags.RLock()
	calls = mock.calls.AutoCompleteTags
	mock.lockAutoCompleteTags.RUnlock()
	return calls
}

func (mock *accountServiceMock) AutoCompleteAccounts(ctx context.Context, query string) ([]domain.AccountSummary, error) {
	if mock.AutoCompleteAccountsFunc == nil {
		panic("accountServiceMock.AutoCompleteAccountsFunc: method is nil but accountService.AutoCompleteAccounts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{
		Ctx:   ctx,
		Query: query,
	}
	mock.lockAutoCompleteAccounts.Lock()
	mock.calls.AutoCompleteAccounts = append(mock.calls.AutoCompleteAccounts, callInfo)
	mock.lockAutoCompleteAccounts.Unlock()
	return mock.AutoCompleteAccountsFunc(ctx, query)
}

func (mock *accountServiceMock) AutoCompleteAccountsCalls() []struct {
	Ctx   context.Context
	Query string
} {
	var calls []struct {
		Ctx   context.Context
		Query string
	}
	mock.lockAutoCompleteAccounts.RLock()
	calls = mock.calls.AutoCompleteAccounts
	mock.lockAutoCompleteAccounts.RUnlock()
	return calls
}

func (mock *accountServiceMock) RecentlyViewed(ctx context.Context) ([]domain.AccountSummary, error) {
	if mock.RecentlyViewedFunc == nil {
		panic("accountServiceMock.RecentlyViewedFunc: method is nil but accountService.RecentlyViewed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRecentlyViewed.Lock()
	mock.calls.RecentlyViewed = append(mock.calls.RecentlyViewed, callInfo)
	mock.lockRecentlyViewed.Unlock()
	return mock.RecentlyViewedFunc(ctx)
}

func (mock *accountServiceMock) RecentlyViewedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRecentlyViewed.RLock()
	calls = mock.calls.RecentlyViewed
	mock.lockRecentlyViewed.RUnlock()
	return calls
}
