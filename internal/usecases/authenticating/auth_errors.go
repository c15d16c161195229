package authenticating

import "errors"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingSecret = errors.New("AUTH_SECRET is not configured")
	ErrMissingData   = errors.New("subject is required")
)
