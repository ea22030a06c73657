package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeStoreError maps domain errors onto the HTTP taxonomy: not-found to
// 404, validation and conflict errors to 400, everything else to 500.
func writeStoreError(ctx context.Context, w http.ResponseWriter, err error) {
	var inUse *core.CategoryInUseError
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, core.ErrDuplicateName):
		writeError(w, http.StatusBadRequest, "Category already exists")
	case errors.Is(err, core.ErrCategoryNotCustom):
		writeError(w, http.StatusNotFound, "Custom category not found")
	case errors.As(err, &inUse):
		writeError(w, http.StatusBadRequest, inUse.Error())
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrEmptyCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(ctx, "Unexpected storage error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
