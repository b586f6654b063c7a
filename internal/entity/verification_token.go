package entity

import "time"

type VerificationPurpose string

const (
	PurposeVerify VerificationPurpose = "verify"
	PurposeReset  VerificationPurpose = "reset"
)

// VerificationToken is a one-time email code. Identifier is the normalised
// email address and is unique, so a new code always replaces the previous one.
type VerificationToken struct {
	Identifier string    `gorm:"type:varchar(255);primaryKey"`
	Token      string    `gorm:"type:varchar(6);not null"`
	Expires    time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (t VerificationToken) Expired(now time.Time) bool {
	return now.After(t.Expires)
}
