package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderFulfilled OrderStatus = "fulfilled"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderFulfilled, OrderCancelled},
}

// ParseOrderStatus returns the status named by value, or false if it is not
// one of the known states.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch status := OrderStatus(value); status {
	case OrderPending, OrderConfirmed, OrderFulfilled, OrderCancelled:
		return status, true
	}
	return "", false
}

// CanTransition reports whether an order in status s may move to next.
// Fulfilled and cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is one ticket purchase for a movie slot.
type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	ProductID  *uuid.UUID      `gorm:"type:uuid" json:"productId,omitempty"`
	MovieID    string          `gorm:"type:varchar(64);not null" json:"movieId"`
	MovieTitle string          `gorm:"type:varchar(255);not null" json:"movieTitle"`
	Date       string          `gorm:"type:varchar(10);not null" json:"date"`
	Time       string          `gorm:"type:varchar(5);not null" json:"time"`
	Slot       string          `gorm:"type:varchar(16);not null" json:"slot"`
	Vehicle    string          `gorm:"type:varchar(64)" json:"vehicle"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Status     OrderStatus     `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
