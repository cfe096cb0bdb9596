package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken authorizes exactly one password change. A token is
// valid while used=false and expires_at is in the future; expired tokens
// are kept around but never honored.
type PasswordResetToken struct {
	Base
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
