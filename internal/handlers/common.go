package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/recipebox/web/internal/models"
	"github.com/recipebox/web/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// errorStatus maps service errors to an HTTP status and a user-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrRecipeUnavailable):
		return http.StatusNotFound, "no recipe found!"
	case errors.Is(err, services.ErrFavoriteBadInput):
		return http.StatusBadRequest, "Recipe identifier required"
	case errors.Is(err, services.ErrFavoritesCorrupt):
		return http.StatusInternalServerError, "Stored favorites are unreadable"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), op+" failed", "error", err)
	}
	writeJSON(w, status, models.NewErrorResponse(msg))
}

func writeHTMLError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), op+" failed", "error", err)
	}
	http.Error(w, msg, status)
}
