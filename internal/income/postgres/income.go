package postgres

import (
	"errors"
	"time"

	incomeDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/income"
	"github.com/budgetwise/expense-tracker/internal/income"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncomeRepository implements the income.Repository interface using GORM.
// Every query filters on user_id first, so rows owned by other users surface
// as not-found.
type IncomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) income.Repository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Create(rec *incomeDatamodel.Income) error {
	return r.db.Create(rec).Error
}

func (r *IncomeRepository) GetByID(ownerID, id uuid.UUID) (*incomeDatamodel.Income, error) {
	var rec incomeDatamodel.Income
	err := r.db.Where("user_id = ? AND id = ?", ownerID, id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, income.ErrIncomeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *IncomeRepository) ListByOwner(ownerID uuid.UUID) ([]*incomeDatamodel.Income, error) {
	var recs []*incomeDatamodel.Income
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *IncomeRepository) Update(rec *incomeDatamodel.Income) error {
	rec.UpdatedAt = time.Now()
	return r.db.Save(rec).Error
}

func (r *IncomeRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("user_id = ? AND id = ?", ownerID, id).Delete(&incomeDatamodel.Income{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return income.ErrIncomeNotFound
	}
	return nil
}
