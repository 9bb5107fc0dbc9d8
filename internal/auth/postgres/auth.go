package postgres

import (
	"errors"
	"time"

	"github.com/budgetwise/expense-tracker/internal/auth"
	tokenDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/token"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements auth.RepositoryAPI using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUserByID(id uuid.UUID) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	return r.exists("email = ?", email)
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	return r.exists("username = ?", username)
}

func (r *UserRepository) PhoneNumberExists(phone string) (bool, error) {
	return r.exists("phone_number = ?", phone)
}

func (r *UserRepository) exists(query string, arg any) (bool, error) {
	var count int64
	if err := r.db.Model(&userDatamodel.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RevocationRepository implements auth.RevocationAPI using GORM.
type RevocationRepository struct {
	db *gorm.DB
}

func NewRevocationRepository(db *gorm.DB) auth.RevocationAPI {
	return &RevocationRepository{db: db}
}

func (r *RevocationRepository) Revoke(entry *tokenDatamodel.RevokedToken) error {
	return r.db.Create(entry).Error
}

func (r *RevocationRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&tokenDatamodel.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PruneExpired deletes blacklist rows whose tokens expired before now.
func (r *RevocationRepository) PruneExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&tokenDatamodel.RevokedToken{})
	return result.RowsAffected, result.Error
}
