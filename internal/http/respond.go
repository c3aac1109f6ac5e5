package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ledgerd/internal/core"
)

// errorBody is the JSON error envelope returned on every failure path.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(ctx, "Failed encoding response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// ValidationError 400, NotFoundError 404, everything else 500 with the
// message echoed in the body.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var verr *core.ValidationError
	var nferr *core.NotFoundError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.As(err, &nferr):
		status = http.StatusNotFound
	}

	if status >= 500 {
		slog.ErrorContext(ctx, "Request failed", "error", err, "status", status)
	}
	writeJSON(ctx, w, status, errorBody{Error: err.Error()})
}
