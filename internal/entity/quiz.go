package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Question      string                      `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correctAnswer"`
	IsActive      bool                        `gorm:"not null;default:false" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
