package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryService marks the "stage message" product, which is sold like any
// other product but is not a concession item.
const CategoryService = "service"

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(120);not null;uniqueIndex:idx_products_name_category" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_name_category" json:"category"`
	Image       string          `gorm:"type:text" json:"image"`
	Available   bool            `gorm:"not null" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
