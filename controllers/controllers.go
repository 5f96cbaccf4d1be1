// Package controllers holds the Gin HTTP handlers. Each resource gets a
// controller struct bound to one request plus a HandleXFunc dispatcher that
// routes register against.
package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/code"
	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/services"
)

// failFromService maps service layer errors onto the error-code taxonomy.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(c, code.ErrSubmissionNotFound, nil)
	case errors.Is(err, services.ErrAdminNotFound):
		response.Fail(c, code.ErrAdminNotFound, nil)
	case errors.Is(err, services.ErrAdminAlreadyExists):
		response.Fail(c, code.ErrAdminAlreadyExists, nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(c, code.ErrInvalidCredentials, nil)
	case errors.Is(err, services.ErrInvalidRole):
		response.Fail(c, code.ErrInvalidRole, nil)
	case errors.Is(err, services.ErrInvalidStatus):
		response.Fail(c, code.ErrInvalidStatus, nil)
	case errors.Is(err, services.ErrTokenInvalid):
		response.Fail(c, code.ErrResetTokenInvalid, nil)
	default:
		response.Fail(c, code.ErrDatabase, nil)
	}
}

// pathID reads the positive integer id path parameter. It returns 0 and
// writes the failure response when the parameter is malformed.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
