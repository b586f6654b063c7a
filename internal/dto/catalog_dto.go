package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required,max=64"`
	Image       string          `json:"image"`
	Available   *bool           `json:"available"`
}

// UpdateProductRequest is a partial update; absent fields stay nil.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=120"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" validate:"omitempty,max=64"`
	Image       *string          `json:"image"`
	Available   *bool            `json:"available"`
}

type CreateOrderRequest struct {
	UserID     *uuid.UUID       `json:"userId"`
	ProductID  *uuid.UUID       `json:"productId"`
	MovieID    string           `json:"movieId" validate:"required,max=64"`
	MovieTitle string           `json:"movieTitle" validate:"required,max=255"`
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string           `json:"time" validate:"required,datetime=15:04"`
	Slot       string           `json:"slot" validate:"required,max=16"`
	Vehicle    string           `json:"vehicle" validate:"omitempty,max=64"`
	Price      *decimal.Decimal `json:"price"`
	CardNumber string           `json:"cardNumber" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AddPointsRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Points int       `json:"points"`
}

type AddPointsResponse struct {
	Success   bool `json:"success"`
	NewPoints int  `json:"newPoints"`
}
