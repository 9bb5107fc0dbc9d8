package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Income struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	NameOfRevenue string          `gorm:"column:name_of_revenue;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null"`
	UserID        uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (Income) TableName() string {
	return "incomes"
}
