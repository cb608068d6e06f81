package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// SessionHeader lets non-browser clients carry the session id explicitly.
const SessionHeader = "X-Session-Id"

// Session attaches a browsing-session id to the request context.
// The id is taken from the X-Session-Id header, then the session cookie;
// a missing or malformed id is replaced by a fresh one. The id is echoed
// back in both the header and the cookie.
func Session(cfg config.SessionConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionIDFromRequest(r, cfg.CookieName)
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, id)

			if st := stateFromCtx(r.Context()); st != nil {
				st.sessionID = id
			}
			ctx := ctxutil.WithSessionID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionIDFromRequest returns the first well-formed id found, or "".
func sessionIDFromRequest(r *http.Request, cookieName string) string {
	if id := r.Header.Get(SessionHeader); isSessionID(id) {
		return id
	}
	if c, err := r.Cookie(cookieName); err == nil && isSessionID(c.Value) {
		return c.Value
	}
	return ""
}

func isSessionID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
