package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sagarc03/drills"
)

// WriteText writes a plain-text response
func WriteText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := io.WriteString(w, body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// WriteError writes a plain-text error message.
// Clients read the body as-is, so message must not carry internal detail.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteText(w, code, message)
}

// HandleError writes appropriate error response based on error type
func HandleError(w http.ResponseWriter, err error) {
	var vErr *drills.ValidationError
	if errors.As(err, &vErr) {
		slog.Debug("validation failed", "field", vErr.Field, "error", vErr.Message)
		WriteError(w, http.StatusBadRequest, vErr.Message)
		return
	}

	if errors.Is(err, drills.ErrInvalidInput) {
		slog.Debug("invalid input", "error", err)
		WriteError(w, http.StatusBadRequest, "invalid input")
		return
	}

	slog.Error("request error", "error", err)

	// Default internal error
	WriteError(w, http.StatusInternalServerError, "internal server error")
}

// WriteJSON writes a JSON response. The body is encoded before any header
// is sent, so on error nothing has been written and the caller can still
// answer with HandleError.
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode json response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("failed to write response", "error", err)
	}
	return nil
}
