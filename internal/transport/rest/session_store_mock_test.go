package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	LoadFunc func(ctx context.Context, id string) (*domain.SessionState, error)
	SaveFunc func(ctx context.Context, id string, state *domain.SessionState) error

	calls struct {
		Load []struct {
			Ctx context.Context
			ID  string
		}
		Save []struct {
			Ctx   context.Context
			ID    string
			State *domain.SessionState
		}
	}
	lockLoad sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *sessionStoreMock) Load(ctx context.Context, id string) (*domain.SessionState, error) {
	if mock.LoadFunc == nil {
		panic("sessionStoreMock.LoadFunc: method is nil but sessionStore.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, id)
}

func (mock *sessionStoreMock) LoadCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockLoad.RLock()
	calls = mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Save(ctx context.Context, id string, state *domain.SessionState) error {
	if mock.SaveFunc == nil {
		panic("sessionStoreMock.SaveFunc: method is nil but sessionStore.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		State *domain.SessionState
	}{
		Ctx:   ctx,
		ID:    id,
		State: state,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, id, state)
}

func (mock *sessionStoreMock) SaveCalls() []struct {
	Ctx   context.Context
	ID    string
	State *domain.SessionState
} {
	var calls []struct {
		Ctx   context.Context
		ID    string
		State *domain.SessionState
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
