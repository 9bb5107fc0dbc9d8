package user

import (
	"encoding/json"
	"net/http"

	"github.com/budgetwise/expense-tracker/internal/transport"
	"github.com/budgetwise/expense-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetProfile(userID string) (*Profile, error)
	UpdateProfile(userID string, dto UpdateProfileDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(chi.URLParam(r, "userID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	if err := h.Service.UpdateProfile(chi.URLParam(r, "userID"), dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "User details updated successfully!")
}
