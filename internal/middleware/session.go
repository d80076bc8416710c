package middleware

import (
	"context"
	"net/http"

	"interviewdeck/internal/session"
)

// SessionHeader carries the session id in both directions.
const SessionHeader = "X-Session-ID"

const sessionKey contextKey = "session"

type SessionProvider interface {
	GetOrCreate(id string) (*session.Session, bool)
}

// Session resolves the caller's session, creating one when the header is
// missing or stale, and echoes the id back.
func Session(store SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := store.GetOrCreate(r.Header.Get(SessionHeader))
			w.Header().Set(SessionHeader, sess.ID)

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session stored by Session, or nil.
func GetSession(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey).(*session.Session)
	return sess
}
