package code

// Default message per error code
var codeMessageMap = map[int]string{
	ErrSuccess:    "success",
	ErrUnknown:    "internal server error",
	ErrBind:       "invalid request parameters",
	ErrValidation: "request validation failed",

	ErrAdminNotFound:      "admin user not found",
	ErrAdminAlreadyExists: "username or email already exists",
	ErrInvalidCredentials: "invalid username or password",
	ErrInvalidRole:        "role must be admin or processor",

	ErrSubmissionNotFound: "record not found",
	ErrInvalidStatus:      "invalid status value",

	ErrResetTokenInvalid: "reset token is invalid or has expired",

	ErrLanguageNotFound: "unsupported language",
	ErrCategoryNotFound: "category not found",

	ErrDatabase: "database error",
}

// HTTP status per error code
var codeStatusMap = map[int]int{
	ErrSuccess:    StatusOK,
	ErrUnknown:    StatusInternalServerError,
	ErrBind:       StatusBadRequest,
	ErrValidation: StatusBadRequest,

	ErrAdminNotFound:      StatusNotFound,
	ErrAdminAlreadyExists: StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrInvalidRole:        StatusBadRequest,

	ErrSubmissionNotFound: StatusNotFound,
	ErrInvalidStatus:      StatusBadRequest,

	ErrResetTokenInvalid: StatusBadRequest,

	ErrLanguageNotFound: StatusNotFound,
	ErrCategoryNotFound: StatusNotFound,

	ErrDatabase: StatusInternalServerError,
}

// GetMessage returns the default message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
