package auth

import (
	apperrors "github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/core/common/validation"
)

// RegisterDTO is the signup request payload.
type RegisterDTO struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Validate checks field shapes and the password policy. Uniqueness is the
// service's job; this only covers what can be decided from the payload alone.
func (d RegisterDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().MaxLength(254).Email()
	v.Field("username", d.Username).Required().MaxLength(150).NoSpaces().Lowercase()
	v.Field("first_name", d.FirstName).Required().MaxLength(150)
	v.Field("last_name", d.LastName).Required().MaxLength(150)
	v.Field("phone_number", d.PhoneNumber).Required().MaxLength(20).Phone()
	v.Field("password", d.Password).Required().Custom(d.passwordPolicy)

	return v.Validate()
}

func (d RegisterDTO) passwordPolicy(value interface{}) string {
	password, ok := value.(string)
	if !ok || password == "" {
		return ""
	}
	msgs := validation.ValidatePassword(password, d.Email, d.Username, d.FirstName, d.LastName)
	if len(msgs) == 0 {
		return ""
	}
	joined := msgs[0]
	for _, m := range msgs[1:] {
		joined += " " + m
	}
	return joined
}

// LoginDTO is the login request payload.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() *apperrors.AppError {
	if d.Email == "" {
		return apperrors.NewValidationError("email", "Invalid username")
	}
	if d.Password == "" {
		return apperrors.NewValidationError("password", "Invalid password")
	}
	return nil
}

// RefreshDTO carries the refresh token presented to /auth/refresh/.
type RefreshDTO struct {
	Refresh string `json:"refresh"`
}

func (d RefreshDTO) Validate() *apperrors.AppError {
	if d.Refresh == "" {
		return apperrors.NewValidationError("refresh", "This field is required.")
	}
	return nil
}

// LogoutDTO carries the refresh token to blacklist.
type LogoutDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d LogoutDTO) Validate() *apperrors.AppError {
	if d.RefreshToken == "" {
		return apperrors.NewValidationError("refresh_token", "This field is required")
	}
	return nil
}
