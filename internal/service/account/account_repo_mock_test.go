package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	FindFunc               func(ctx context.Context, q domain.AccountQuery) (domain.AccountPage, error)
	GetVisibleFunc         func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Account, error)
	AutoCompleteFunc       func(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.AccountSummary, error)
	GetSummariesFunc       func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.AccountSummary, error)
	CreateFunc             func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdateFunc             func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	ReplacePermissionsFunc func(ctx context.Context, accountID uuid.UUID, userIDs []uuid.UUID) error
	SoftDeleteFunc         func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Find []struct {
			Ctx context.Context
			Q   domain.AccountQuery
		}
		GetVisible []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		AutoComplete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Query  string
			Limit  int
		}
		GetSummaries []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Ids    []uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Account
		}
		Update []struct {
			Ctx context.Context
			A   *domain.Account
		}
		ReplacePermissions []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			UserIDs   []uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockFind               sync.RWMutex
	lockGetVisible         sync.RWMutex
	lockAutoComplete       sync.RWMutex
	lockGetSummaries       sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockReplacePermissions sync.RWMutex
	lockSoftDelete         sync.RWMutex
}

func (mock *accountRepoMock) Find(ctx context.Context, q domain.AccountQuery) (domain.AccountPage, error) {
	if mock.FindFunc == nil {
		panic("accountRepoMock.FindFunc: method is nil but accountRepo.Find was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.AccountQuery
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, q)
}

func (mock *accountRepoMock) FindCalls() []struct {
	Ctx context.Context
	Q   domain.AccountQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   domain.AccountQuery
	}
	mock.lockFind.RLock()
	calls = mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetVisible(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Account, error) {
	if mock.GetVisibleFunc == nil {
		panic("accountRepoMock.GetVisibleFunc: method is nil but accountRepo.GetVisible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetVisible.Lock()
	mock.calls.GetVisible = append(mock.calls.GetVisible, callInfo)
	mock.lockGetVisible.Unlock()
	return mock.GetVisibleFunc(ctx, userID, id)
}

func (mock *accountRepoMock) GetVisibleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockGetVisible.RLock()
	calls = mock.calls.GetVisible
	mock.lockGetVisible.RUnlock()
	return calls
}

func (mock *accountRepoMock) AutoComplete(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.AccountSummary, error) {
	if mock.AutoCompleteFunc == nil {
		panic("accountRepoMock.AutoCompleteFunc: method is nil but accountRepo.AutoComplete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Query  string
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Query:  query,
		Limit:  limit,
	}
	mock.lockAutoComplete.Lock()
	mock.calls.AutoComplete = append(mock.calls.AutoComplete, callInfo)
	mock.lockAutoComplete.Unlock()
	return mock.AutoCompleteFunc(ctx, userID, query, limit)
}

func (mock *accountRepoMock) AutoCompleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Query  string
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Query  string
		Limit  int
	}
	mock.lockAutoComplete.RLock()
	calls = mock.calls.AutoComplete
	mock.lockAutoComplete.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetSummaries(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.AccountSummary, error) {
	if mock.GetSummariesFunc == nil {
		panic("accountRepoMock.GetSummariesFunc: method is nil but accountRepo.GetSummaries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Ids:    ids,
	}
	mock.lockGetSummaries.Lock()
	mock.calls.GetSummaries = append(mock.calls.GetSummaries, callInfo)
	mock.lockGetSummaries.Unlock()
	return mock.GetSummariesFunc(ctx, userID, ids)
}

func (mock *accountRepoMock) GetSummariesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Ids    []uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}
	mock.lockGetSummaries.RLock()
	calls = mock.calls.GetSummaries
	mock.lockGetSummaries.RUnlock()
	return calls
}

func (mock *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Account
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) Update(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *accountRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Account
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *accountRepoMock) ReplacePermissions(ctx context.Context, accountID uuid.UUID, userIDs []uuid.UUID) error {
	if mock.ReplacePermissionsFunc == nil {
		panic("accountRepoMock.ReplacePermissionsFunc: method is nil but accountRepo.ReplacePermissions was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		UserIDs   []uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
		UserIDs:   userIDs,
	}
	mock.lockReplacePermissions.Lock()
	mock.calls.ReplacePermissions = append(mock.calls.ReplacePermissions, callInfo)
	mock.lockReplacePermissions.Unlock()
	return mock.ReplacePermissionsFunc(ctx, accountID, userIDs)
}

func (mock *accountRepoMock) ReplacePermissionsCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	UserIDs   []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
		UserIDs   []uuid.UUID
	}
	mock.lockReplacePermissions.RLock()
	calls = mock.calls.ReplacePermissions
	mock.lockReplacePermissions.RUnlock()
	return calls
}

func (mock *accountRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("accountRepoMock.SoftDeleteFunc: method is nil but accountRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *accountRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockSoftDelete.RLock()
	calls = mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
