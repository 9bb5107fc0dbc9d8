package user

import (
	"net/http"
	"time"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/google/uuid"
)

// Profile is the public view of a user record. The password hash and the
// active flag never leave the service.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	GetByID(id uuid.UUID) (*userDatamodel.User, error)
	Update(u *userDatamodel.User) error
	UsernameTakenByOther(username string, selfID uuid.UUID) (bool, error)
}

var (
	ErrUserNotFound   = apperrors.NewMessageError(http.StatusNotFound, "User not found", apperrors.ErrCodeNotFound)
	ErrInvalidPayload = apperrors.NewDetailError(http.StatusBadRequest, "Invalid user data", apperrors.ErrCodeValidationFailed)
)

func fromDataModel(u *userDatamodel.User) *Profile {
	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
