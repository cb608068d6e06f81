package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	ListActiveExceptFunc func(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error)
	SetPreferenceFunc    func(ctx context.Context, userID uuid.UUID, name string, value string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		ListActiveExcept []struct {
			Ctx      context.Context
			ExceptID uuid.UUID
		}
		SetPreference []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
			Value  string
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDs         sync.RWMutex
	lockListActiveExcept sync.RWMutex
	lockSetPreference    sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		IDs []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *userRepoMock) ListActiveExcept(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error) {
	if mock.ListActiveExceptFunc == nil {
		panic("userRepoMock.ListActiveExceptFunc: method is nil but userRepo.ListActiveExcept was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ExceptID uuid.UUID
	}{
		Ctx:      ctx,
		ExceptID: exceptID,
	}
	mock.lockListActiveExcept.Lock()
	mock.calls.ListActiveExcept = append(mock.calls.ListActiveExcept, callInfo)
	mock.lockListActiveExcept.Unlock()
	return mock.ListActiveExceptFunc(ctx, exceptID)
}

func (mock *userRepoMock) ListActiveExceptCalls() []struct {
	Ctx      context.Context
	ExceptID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ExceptID uuid.UUID
	}
	mock.lockListActiveExcept.RLock()
	calls = mock.calls.ListActiveExcept
	mock.lockListActiveExcept.RUnlock()
	return calls
}

func (mock *userRepoMock) SetPreference(ctx context.Context, userID uuid.UUID, name string, value string) error {
	if mock.SetPreferenceFunc == nil {
		panic("userRepoMock.SetPreferenceFunc: method is nil but userRepo.SetPreference was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
		Value  string
	}{
		Ctx:    ctx,
		UserID: userID,
		Name:   name,
		Value:  value,
	}
	mock.lockSetPreference.Lock()
	mock.calls.SetPreference = append(mock.calls.SetPreference, callInfo)
	mock.lockSetPreference.Unlock()
	return mock.SetPreferenceFunc(ctx, userID, name, value)
}

func (mock *userRepoMock) SetPreferenceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
	Value  string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
		Value  string
	}
	mock.lockSetPreference.RLock()
	calls = mock.calls.SetPreference
	mock.lockSetPreference.RUnlock()
	return calls
}
