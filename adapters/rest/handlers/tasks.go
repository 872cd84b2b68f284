package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"mytodo/adapters/rest"
	"mytodo/core"
	"mytodo/pkg/res"
)

func NewListTasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.ListTasks(ctx, sess.UserID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		if tasks == nil {
			tasks = []core.Task{}
		}
		res.JSON(w, tasks, http.StatusOK)
	}
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.CreateTask(ctx, sess.UserID, in.Text, in.Important, in.Urgent, in.Deadline)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, t, http.StatusCreated)
	}
}

func NewToggleTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil || id <= 0 {
			res.Error(w, core.ErrTaskNotFound.Error(), http.StatusNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.ToggleTask(ctx, sess.UserID, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, t, http.StatusOK)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil || id <= 0 {
			res.Error(w, core.ErrTaskNotFound.Error(), http.StatusNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTask(ctx, sess.UserID, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, map[string]any{"status": "deleted"}, http.StatusOK)
	}
}
