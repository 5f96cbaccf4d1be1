package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these onto
// the error-code taxonomy.
var (
	ErrNotFound           = errors.New("record not found")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrAdminAlreadyExists = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("role must be admin or processor")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrTokenInvalid       = errors.New("reset token is invalid or has expired")
)
