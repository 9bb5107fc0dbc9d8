package auth

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/transport"
	"github.com/budgetwise/expense-tracker/pkg/logger"
	"github.com/google/uuid"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Register(dto)
	if err != nil {
		h.Logger.Warn("signup rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "email", dto.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var dto RefreshDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	access, err := h.Service.RefreshAccessToken(dto.Refresh)
	if err != nil {
		h.Logger.Warn("token refresh rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"access": access})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var dto LogoutDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.Logout(dto.RefreshToken); err != nil {
		h.Logger.Warn("logout rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "User logged out successfully")
}

// AuthMiddleware authenticates the bearer access token and loads the user
// into the request context for downstream handlers.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			status, body := apperrors.ErrInvalidAccessToken.Envelope()
			h.WriteJSON(w, status, body)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			status, body := apperrors.ErrInvalidAccessToken.Envelope()
			h.WriteJSON(w, status, body)
			return
		}

		user, err := h.Service.GetUser(userID)
		if err != nil {
			h.Logger.Warn("auth middleware: token user not found", "user_id", claims.UserID)
			h.WriteDetail(w, http.StatusUnauthorized, "User not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}
