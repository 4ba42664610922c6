package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/auth"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// SessionContextKey is the key used to store the resolved session in the
// request context.
const SessionContextKey ContextKey = "session"

// SessionLoader resolves the session cookie on every request and, when it
// names a live session, attaches that session to the request context.
// Handlers decide whether a missing session is fatal, so this middleware
// never rejects a request itself.
func SessionLoader(store auth.Store, codec *auth.CookieCodec, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
				if token, ok := codec.Decode(cookie.Value); ok {
					session, err := store.Get(token)
					if err != nil {
						log.Errorf("session lookup failed: %v", err)
					} else if session != nil {
						ctx := context.WithValue(r.Context(), SessionContextKey, session)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext returns the request's session capability, or nil when
// the request is unauthenticated.
func SessionFromContext(r *http.Request) *auth.Session {
	session, _ := r.Context().Value(SessionContextKey).(*auth.Session)
	return session
}
