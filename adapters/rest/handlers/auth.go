package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mytodo/adapters/rest"
	"mytodo/adapters/session"
	"mytodo/core"
	"mytodo/pkg/res"
)

// Auth endpoints answer {success, error?} rather than the bare {error}
// shape the task API uses.
func writeAuthFailure(w http.ResponseWriter, msg string, statusCode int) {
	res.JSON(w, map[string]any{"success": false, "error": msg}, statusCode)
}

func writeAuthErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrMissingCredentials),
		errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrUsernameTaken):
		writeAuthFailure(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidCredentials):
		writeAuthFailure(w, err.Error(), http.StatusUnauthorized)
	default:
		writeAuthFailure(w, "internal error", http.StatusInternalServerError)
	}
}

func NewLoginHandler(log *slog.Logger, svc *core.Service, sessions *session.Manager, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CredentialsIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeAuthFailure(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := svc.Login(ctx, in.Username, in.Password)
		if err != nil {
			writeAuthErr(w, err)
			return
		}

		token, err := sessions.Issue(u)
		if err != nil {
			log.Error("issue session", "error", err)
			writeAuthFailure(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, sessions.Cookie(token))
		res.JSON(w, map[string]any{"success": true}, http.StatusOK)
	}
}

func NewSignupHandler(log *slog.Logger, svc *core.Service, sessions *session.Manager, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CredentialsIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeAuthFailure(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := svc.SignUp(ctx, in.Username, in.Password)
		if err != nil {
			writeAuthErr(w, err)
			return
		}

		// auto-login
		token, err := sessions.Issue(u)
		if err != nil {
			log.Error("issue session", "error", err)
			writeAuthFailure(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, sessions.Cookie(token))
		res.JSON(w, map[string]any{"success": true}, http.StatusOK)
	}
}

func NewLogoutHandler(_ *slog.Logger, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessions.ClearCookie())
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
