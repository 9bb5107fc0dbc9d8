package expenditure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expenditure struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Category        string          `gorm:"column:category;not null"`
	NameOfItem      string          `gorm:"column:name_of_item;not null"`
	EstimatedAmount decimal.Decimal `gorm:"column:estimated_amount;type:decimal(10,2);not null"`
	UserID          uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (Expenditure) TableName() string {
	return "expenditures"
}
