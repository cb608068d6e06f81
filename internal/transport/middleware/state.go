package middleware

import "context"

// requestState lets inner middleware report identifiers back to Logger,
// which only sees the outer request context.
type requestState struct {
	userID    string
	sessionID string
}

type stateKey struct{}

func withRequestState(ctx context.Context, st *requestState) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

func stateFromCtx(ctx context.Context) *requestState {
	st, _ := ctx.Value(stateKey{}).(*requestState)
	return st
}
