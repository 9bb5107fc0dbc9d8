package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteDetail writes a {"detail": ...} error body.
func (h *BaseHandler) WriteDetail(w http.ResponseWriter, status int, detail string) {
	h.WriteJSON(w, status, map[string]string{"detail": detail})
}

// WriteMessage writes a {"message": ...} body, used by the resource and
// profile endpoints for both failures and acknowledgements.
func (h *BaseHandler) WriteMessage(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, map[string]string{"message": message})
}

// HandleServiceError renders a service error with its own envelope, falling
// back to a generic 500 detail for anything that is not an AppError. Raw
// internal errors never reach the client.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		if appErr.StatusCode >= 500 {
			h.Logger.Error("internal error", "error", appErr.Error())
			h.WriteDetail(w, appErr.StatusCode, "Internal server error")
			return
		}
		status, body := appErr.Envelope()
		h.WriteJSON(w, status, body)
		return
	}

	h.Logger.Error("unhandled service error", "error", err)
	h.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
