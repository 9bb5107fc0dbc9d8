package token

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken is one blacklisted refresh token, keyed by its jti claim.
// Rows become dead weight once ExpiresAt passes; the pruner removes them.
type RevokedToken struct {
	JTI       string    `gorm:"column:jti;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	RevokedAt time.Time `gorm:"column:revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
