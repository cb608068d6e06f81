package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one, first argument outermost.
// Nil entries are skipped, which lets callers switch stages off with When.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// When returns mw if on is true and nil otherwise.
func When(on bool, mw Middleware) Middleware {
	if !on {
		return nil
	}
	return mw
}
