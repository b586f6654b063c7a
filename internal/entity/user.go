package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Phone        *string   `gorm:"type:varchar(32)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Points       int       `gorm:"not null;default:0"`

	EmailVerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Sessions []Session
	Orders   []Order
}
