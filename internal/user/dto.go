package user

import (
	apperrors "github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/core/common/validation"
)

// UpdateProfileDTO is the partial profile update payload. Email, phone
// number, and password are not changeable through this endpoint.
type UpdateProfileDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
}

func (d UpdateProfileDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.FirstName != nil {
		v.Field("first_name", *d.FirstName).Required().MaxLength(150)
	}
	if d.LastName != nil {
		v.Field("last_name", *d.LastName).Required().MaxLength(150)
	}
	if d.Username != nil {
		v.Field("username", *d.Username).Required().MaxLength(150).NoSpaces().Lowercase()
	}
	return v.Validate()
}
