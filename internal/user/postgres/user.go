package postgres

import (
	"errors"
	"time"

	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/budgetwise/expense-tracker/internal/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

// UserRepository implements the user.Repository interface using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id uuid.UUID) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *userDatamodel.User) error {
	u.UpdatedAt = time.Now()
	return r.db.Save(u).Error
}

func (r *UserRepository) UsernameTakenByOther(username string, selfID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("username = ? AND id <> ?", username, selfID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
