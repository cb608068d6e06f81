package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

var _ activityLog = &activityLogMock{}

type activityLogMock struct {
	LogFunc func(ctx context.Context, a domain.Activity) error

	calls struct {
		Log []struct {
			Ctx context.Context
			A   domain.Activity
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLogMock) Log(ctx context.Context, a domain.Activity) error {
	if mock.LogFunc == nil {
		panic("activityLogMock.LogFunc: method is nil but activityLog.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Activity
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, a)
}

func (mock *activityLogMock) LogCalls() []struct {
	Ctx context.Context
	A   domain.Activity
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Activity
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
