package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mytodo/adapters/rest"
	"mytodo/adapters/xlsx"
	"mytodo/core"
	"mytodo/pkg/res"
)

func NewExportHandler(log *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			res.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, ok := core.ParseExportFilter(mux.Vars(r)["which"])
		if !ok {
			res.Error(w, core.ErrInvalidFilter.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.ExportTasks(ctx, sess.UserID, filter)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		data, err := xlsx.Render(tasks)
		if err != nil {
			log.Error("render export", "filter", filter, "error", err)
			rest.WriteErr(w, err)
			return
		}

		filename := xlsx.Filename(filter, time.Now())
		w.Header().Set("Content-Type", xlsx.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
