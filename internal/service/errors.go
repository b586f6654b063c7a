package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrInvalidCode            = errors.New("invalid code")
	ErrCodeExpired            = errors.New("code expired")
	ErrTooManyRequests        = errors.New("too many requests")
	ErrUserNotFound           = errors.New("user not found")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrInvalidCard            = errors.New("invalid card number")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidTransition      = errors.New("status transition not allowed")
	ErrProductUnavailable     = errors.New("product unavailable")
	ErrForbidden              = errors.New("forbidden")
	ErrNotConfigured          = errors.New("not configured")
	ErrUpstream               = errors.New("upstream request failed")
)
