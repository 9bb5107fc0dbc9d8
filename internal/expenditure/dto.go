package expenditure

import (
	apperrors "github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

// CreateExpenditureDTO is the create payload. EstimatedAmount must be
// present and non-negative.
type CreateExpenditureDTO struct {
	Category        string           `json:"category"`
	NameOfItem      string           `json:"nameOfItem"`
	EstimatedAmount *decimal.Decimal `json:"estimatedAmount"`
}

func (d CreateExpenditureDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("category", d.Category).Required().MaxLength(100)
	v.Field("nameOfItem", d.NameOfItem).Required().MaxLength(100)
	v.Field("estimatedAmount", d.EstimatedAmount).Required().DecimalMin(decimal.Zero).DecimalDigits(10, 2)
	return v.Validate()
}

// UpdateExpenditureDTO is the partial-update payload. All own fields may be
// changed; id, owner and timestamps never.
type UpdateExpenditureDTO struct {
	Category        *string          `json:"category"`
	NameOfItem      *string          `json:"nameOfItem"`
	EstimatedAmount *decimal.Decimal `json:"estimatedAmount"`
}

func (d UpdateExpenditureDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.Category != nil {
		v.Field("category", *d.Category).Required().MaxLength(100)
	}
	if d.NameOfItem != nil {
		v.Field("nameOfItem", *d.NameOfItem).Required().MaxLength(100)
	}
	if d.EstimatedAmount != nil {
		v.Field("estimatedAmount", d.EstimatedAmount).DecimalMin(decimal.Zero).DecimalDigits(10, 2)
	}
	return v.Validate()
}

// UpdateExpenditureResponse echoes the updatable fields after a successful PUT.
type UpdateExpenditureResponse struct {
	Category        string          `json:"category"`
	NameOfItem      string          `json:"nameOfItem"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
}
