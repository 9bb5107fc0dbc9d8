package postgres

import (
	"errors"
	"time"

	expenditureDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/expenditure"
	"github.com/budgetwise/expense-tracker/internal/expenditure"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenditureRepository implements the expenditure.Repository interface
// using GORM, with owner scoping applied to every query.
type ExpenditureRepository struct {
	db *gorm.DB
}

func NewExpenditureRepository(db *gorm.DB) expenditure.Repository {
	return &ExpenditureRepository{db: db}
}

func (r *ExpenditureRepository) Create(rec *expenditureDatamodel.Expenditure) error {
	return r.db.Create(rec).Error
}

func (r *ExpenditureRepository) GetByID(ownerID, id uuid.UUID) (*expenditureDatamodel.Expenditure, error) {
	var rec expenditureDatamodel.Expenditure
	err := r.db.Where("user_id = ? AND id = ?", ownerID, id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expenditure.ErrExpenditureNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *ExpenditureRepository) ListByOwner(ownerID uuid.UUID) ([]*expenditureDatamodel.Expenditure, error) {
	var recs []*expenditureDatamodel.Expenditure
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *ExpenditureRepository) Update(rec *expenditureDatamodel.Expenditure) error {
	rec.UpdatedAt = time.Now()
	return r.db.Save(rec).Error
}

func (r *ExpenditureRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("user_id = ? AND id = ?", ownerID, id).Delete(&expenditureDatamodel.Expenditure{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return expenditure.ErrExpenditureNotFound
	}
	return nil
}
