package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mytodo/adapters/session"
	"mytodo/core"
)

func Register(r *mux.Router, log *slog.Logger, svc *core.Service, gate *Gate, sessions *session.Manager, timeout time.Duration) {
	// pages
	r.Handle("/", gate.RequirePage(NewIndexPageHandler(log))).Methods(http.MethodGet)
	r.Handle("/login", NewLoginPageHandler(log, gate)).Methods(http.MethodGet)
	r.Handle("/signup", NewSignupPageHandler(log, gate)).Methods(http.MethodGet)
	r.Handle("/logout", gate.RequirePage(NewLogoutHandler(log, sessions))).Methods(http.MethodGet)

	// auth
	r.Handle("/login", NewLoginHandler(log, svc, sessions, timeout)).Methods(http.MethodPost)
	r.Handle("/signup", NewSignupHandler(log, svc, sessions, timeout)).Methods(http.MethodPost)

	// tasks
	api := r.PathPrefix("/api").Subrouter()
	api.Use(gate.RequireAPI)
	api.Handle("/tasks", NewListTasksHandler(log, svc, timeout)).Methods(http.MethodGet)
	api.Handle("/tasks", NewCreateTaskHandler(log, svc, timeout)).Methods(http.MethodPost)
	api.Handle("/tasks/{id:[0-9]+}/toggle", NewToggleTaskHandler(log, svc, timeout)).Methods(http.MethodPost)
	api.Handle("/tasks/{id:[0-9]+}", NewDeleteTaskHandler(log, svc, timeout)).Methods(http.MethodDelete)

	// export
	export := r.PathPrefix("/export").Subrouter()
	export.Use(gate.RequireAPI)
	export.Handle("/{which}", NewExportHandler(log, svc, timeout)).Methods(http.MethodGet)
}
