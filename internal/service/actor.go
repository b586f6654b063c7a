package service

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID    uuid.UUID
	IsAdmin   bool
	IPAddress *string
}
