package income

import (
	"net/http"
	"time"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	incomeDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/income"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is the API view of an income record. The owner never appears on the
// wire; it is implied by the authenticated caller.
type Income struct {
	ID            uuid.UUID       `json:"id"`
	NameOfRevenue string          `json:"nameOfRevenue"`
	Amount        decimal.Decimal `json:"amount"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Repository queries are owner-scoped at the data layer: a row belonging to
// another user is indistinguishable from a missing one.
type Repository interface {
	Create(rec *incomeDatamodel.Income) error
	GetByID(ownerID, id uuid.UUID) (*incomeDatamodel.Income, error)
	ListByOwner(ownerID uuid.UUID) ([]*incomeDatamodel.Income, error)
	Update(rec *incomeDatamodel.Income) error
	Delete(ownerID, id uuid.UUID) error
}

var (
	ErrIncomeNotFound = apperrors.NewMessageError(http.StatusNotFound, "Income not found", apperrors.ErrCodeNotFound)
	ErrInvalidID      = apperrors.NewMessageError(http.StatusBadRequest, "Invalid income ID", apperrors.ErrCodeInvalidID)
	ErrDeleteFailed   = apperrors.NewMessageError(http.StatusBadRequest, "Error deleting income!", apperrors.ErrCodeDeleteFailed)
	ErrInvalidData    = apperrors.NewMessageError(http.StatusBadRequest, "Invalid income data", apperrors.ErrCodeValidationFailed)
)

func fromDataModel(rec *incomeDatamodel.Income) *Income {
	return &Income{
		ID:            rec.ID,
		NameOfRevenue: rec.NameOfRevenue,
		Amount:        rec.Amount,
		UpdatedAt:     rec.UpdatedAt,
		CreatedAt:     rec.CreatedAt,
	}
}

func fromDataModelSlice(recs []*incomeDatamodel.Income) []*Income {
	result := make([]*Income, len(recs))
	for i, rec := range recs {
		result[i] = fromDataModel(rec)
	}
	return result
}
