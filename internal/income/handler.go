package income

import (
	"encoding/json"
	"net/http"

	"github.com/budgetwise/expense-tracker/internal/auth"
	"github.com/budgetwise/expense-tracker/internal/transport"
	"github.com/budgetwise/expense-tracker/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	List(ownerID uuid.UUID) ([]*Income, error)
	Create(ownerID uuid.UUID, dto CreateIncomeDTO) (*Income, error)
	Get(ownerID uuid.UUID, id string) (*Income, error)
	Update(ownerID uuid.UUID, id string, dto UpdateIncomeDTO) (*UpdateIncomeResponse, error)
	Delete(ownerID uuid.UUID, id string) error
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	incomes, err := h.Service.List(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, incomes)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var dto CreateIncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	income, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, income)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	income, err := h.Service.Get(user.ID, chi.URLParam(r, "incomeID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, income)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var dto UpdateIncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteMessage(w, http.StatusBadRequest, "Invalid income data")
		return
	}

	resp, err := h.Service.Update(user.ID, chi.URLParam(r, "incomeID"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	if err := h.Service.Delete(user.ID, chi.URLParam(r, "incomeID")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Income deleted successfully!")
}
