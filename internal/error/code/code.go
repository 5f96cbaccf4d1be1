package code

// HTTP status codes used by the error mapping.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: internal server error.
	ErrUnknown
	// ErrBind - 400: malformed request body or parameters.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
)

// Auth error codes (101xxx).
const (
	// ErrAdminNotFound - 404: admin user does not exist.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExists - 409: username or email already registered.
	ErrAdminAlreadyExists
	// ErrInvalidCredentials - 401: wrong username or password.
	ErrInvalidCredentials
	// ErrInvalidRole - 400: role outside the supported set.
	ErrInvalidRole
)

// Submission error codes (102xxx).
const (
	// ErrSubmissionNotFound - 404: submission record does not exist.
	ErrSubmissionNotFound int = iota + 102000
	// ErrInvalidStatus - 400: status outside the entity's enum.
	ErrInvalidStatus
)

// Reset token error codes (103xxx).
const (
	// ErrResetTokenInvalid - 400: unknown or expired reset token.
	ErrResetTokenInvalid int = iota + 103000
)

// Localization error codes (104xxx).
const (
	// ErrLanguageNotFound - 404: unsupported language code.
	ErrLanguageNotFound int = iota + 104000
	// ErrCategoryNotFound - 404: unknown product category.
	ErrCategoryNotFound
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: storage failure.
	ErrDatabase int = iota + 105000
)
