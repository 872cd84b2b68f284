package rest

import (
	"errors"
	"net/http"

	"mytodo/core"
	"mytodo/pkg/res"
)

func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgs),
		errors.Is(err, core.ErrMissingCredentials),
		errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrUsernameTaken),
		errors.Is(err, core.ErrEmptyTask),
		errors.Is(err, core.ErrInvalidFilter):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidCredentials):
		res.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrExportUnavailable):
		res.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
