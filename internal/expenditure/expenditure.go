package expenditure

import (
	"net/http"
	"time"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	expenditureDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/expenditure"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expenditure is the API view of an expenditure record.
type Expenditure struct {
	ID              uuid.UUID       `json:"id"`
	Category        string          `json:"category"`
	NameOfItem      string          `json:"nameOfItem"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Repository interface {
	Create(rec *expenditureDatamodel.Expenditure) error
	GetByID(ownerID, id uuid.UUID) (*expenditureDatamodel.Expenditure, error)
	ListByOwner(ownerID uuid.UUID) ([]*expenditureDatamodel.Expenditure, error)
	Update(rec *expenditureDatamodel.Expenditure) error
	Delete(ownerID, id uuid.UUID) error
}

var (
	ErrExpenditureNotFound = apperrors.NewMessageError(http.StatusNotFound, "Expenditure not found", apperrors.ErrCodeNotFound)
	ErrInvalidID           = apperrors.NewMessageError(http.StatusBadRequest, "Invalid expenditure ID", apperrors.ErrCodeInvalidID)
	ErrDeleteFailed        = apperrors.NewMessageError(http.StatusBadRequest, "Error deleting expenditure!", apperrors.ErrCodeDeleteFailed)
	ErrInvalidData         = apperrors.NewMessageError(http.StatusBadRequest, "Invalid expenditure data", apperrors.ErrCodeValidationFailed)
)

func fromDataModel(rec *expenditureDatamodel.Expenditure) *Expenditure {
	return &Expenditure{
		ID:              rec.ID,
		Category:        rec.Category,
		NameOfItem:      rec.NameOfItem,
		EstimatedAmount: rec.EstimatedAmount,
		UpdatedAt:       rec.UpdatedAt,
		CreatedAt:       rec.CreatedAt,
	}
}

func fromDataModelSlice(recs []*expenditureDatamodel.Expenditure) []*Expenditure {
	result := make([]*Expenditure, len(recs))
	for i, rec := range recs {
		result[i] = fromDataModel(rec)
	}
	return result
}
