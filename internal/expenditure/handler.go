package expenditure

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
	List(ownerID uuid.UUID) ([]*Expenditure, error)
	Create(ownerID uuid.UUID, dto CreateExpenditureDTO) (*Expenditure, error)
	Get(ownerID uuid.UUID, id string) (*Expenditure, error)
	Update(ownerID uuid.UUID, id string, dto UpdateExpenditureDTO) (*UpdateExpenditureResponse, error)
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

	expenditures, err := h.Service.List(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenditures)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var dto CreateExpenditureDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expenditure, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, expenditure)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	expenditure, err := h.Service.Get(user.ID, chi.URLParam(r, "expenditureID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenditure)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var dto UpdateExpenditureDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteMessage(w, http.StatusBadRequest, "Invalid expenditure data")
		return
	}

	resp, err := h.Service.Update(user.ID, chi.URLParam(r, "expenditureID"), dto)
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

	if err := h.Service.Delete(user.ID, chi.URLParam(r, "expenditureID")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Expenditure deleted successfully!")
}
