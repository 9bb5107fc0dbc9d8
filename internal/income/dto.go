package income

import (
	apperrors "github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

// CreateIncomeDTO is the create payload. Amount is a pointer so a missing
// field is distinguishable from zero.
type CreateIncomeDTO struct {
	NameOfRevenue string           `json:"nameOfRevenue"`
	Amount        *decimal.Decimal `json:"amount"`
}

func (d CreateIncomeDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("nameOfRevenue", d.NameOfRevenue).Required().MaxLength(100)
	v.Field("amount", d.Amount).Required().DecimalDigits(10, 2)
	return v.Validate()
}

// UpdateIncomeDTO is the partial-update payload. Absent fields stay
// untouched; unknown fields are ignored by the decoder.
type UpdateIncomeDTO struct {
	NameOfRevenue *string          `json:"nameOfRevenue"`
	Amount        *decimal.Decimal `json:"amount"`
}

func (d UpdateIncomeDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.NameOfRevenue != nil {
		v.Field("nameOfRevenue", *d.NameOfRevenue).Required().MaxLength(100)
	}
	if d.Amount != nil {
		v.Field("amount", d.Amount).DecimalDigits(10, 2)
	}
	return v.Validate()
}

// UpdateIncomeResponse echoes the updatable fields after a successful PUT.
type UpdateIncomeResponse struct {
	NameOfRevenue string          `json:"nameOfRevenue"`
	Amount        decimal.Decimal `json:"amount"`
}
