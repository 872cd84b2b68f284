package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"mytodo/adapters/session"
	"mytodo/core"
	"mytodo/pkg/res"
)

type ctxKey int

const sessionKey ctxKey = iota

// Gate resolves the session cookie to an identity and guards protected
// routes. API routes answer 401 JSON when anonymous; page routes redirect
// to the login page.
type Gate struct {
	log      *slog.Logger
	sessions *session.Manager
}

func NewGate(log *slog.Logger, sessions *session.Manager) *Gate {
	return &Gate{log: log, sessions: sessions}
}

func (g *Gate) sessionFrom(r *http.Request) (core.Session, bool) {
	c, err := r.Cookie(session.CookieName)
	if err != nil {
		return core.Session{}, false
	}
	sess, err := g.sessions.Parse(c.Value)
	if err != nil {
		return core.Session{}, false
	}
	return sess, true
}

func (g *Gate) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := g.sessionFrom(r)
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

func (g *Gate) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := g.sessionFrom(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

func withSession(ctx context.Context, sess core.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the identity the gate attached to the request.
func SessionFromContext(ctx context.Context) (core.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(core.Session)
	return sess, ok
}
