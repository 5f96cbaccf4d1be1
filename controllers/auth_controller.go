package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/services"
	"github.com/appfrabric/roilux/services/container"
	"github.com/appfrabric/roilux/translations"
)

// InterfaceAuthController defines the staff authentication controller
type InterfaceAuthController interface {
	Login()
	Register()
	ChangePassword()
	GetAdminUsers()
	RequestPasswordReset()
	ValidateResetToken()
	ConfirmPasswordReset()
}

// AuthController handles staff authentication requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"roilux2024"`
}

// RegisterRequest is the staff registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"processor2"`
	Email    string `json:"email" binding:"required,email" example:"processor2@roilux.com"`
	Password string `json:"password" binding:"required,min=8" example:"processor456"`
	Role     string `json:"role" binding:"required" example:"processor"`
}

// ChangePasswordRequest is the password change payload
type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required" example:"admin"`
	NewPassword string `json:"newPassword" binding:"required,min=8" example:"roilux2025"`
}

// ResetRequestRequest is the password reset request payload
type ResetRequestRequest struct {
	Email string `json:"email" binding:"required,email" example:"roilux.woods@gmail.com"`
}

// ResetValidateRequest carries a reset token to check
type ResetValidateRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResetConfirmRequest consumes a reset token
type ResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// HandleAuthFunc returns a Gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "changePassword":
			controller.ChangePassword()
		case "getAdminUsers":
			controller.GetAdminUsers()
		case "requestPasswordReset":
			controller.RequestPasswordReset()
		case "validateResetToken":
			controller.ValidateResetToken()
		case "confirmPasswordReset":
			controller.ConfirmPasswordReset()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// Login authenticates a staff account
// @Summary      Staff login
// @Description  Check credentials and return the account's public fields. No session token is issued.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	user, err := adminService.Login(req.Username, req.Password)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Register creates a staff account
// @Summary      Register a staff account
// @Description  Create an admin or processor account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	user, err := adminService.Register(req.Username, req.Email, req.Password, models.AdminRole(req.Role))
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// ChangePassword overwrites an account's password
// @Summary      Change a staff password
// @Description  Overwrite the password hash; the old password is not checked
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Username and new password"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /auth/change-password [post]
func (c *AuthController) ChangePassword() {
	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.ChangePassword(req.Username, req.NewPassword); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

// GetAdminUsers lists staff accounts
// @Summary      List staff accounts
// @Description  Public fields of every admin user
// @Tags         Auth
// @Produce      json
// @Success      200  {array}  models.PublicAdminUser
// @Failure      500  {object}  response.Response
// @Router       /auth/users [get]
func (c *AuthController) GetAdminUsers() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	users, err := adminService.ListAdminUsers()
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, users)
}

// RequestPasswordReset starts the password reset flow
// @Summary      Request a password reset
// @Description  Always reports success so account existence cannot be probed
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetRequestRequest true "Account email"
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/password-reset/request [post]
func (c *AuthController) RequestPasswordReset() {
	var req ResetRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.RequestPasswordReset(req.Email); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": translations.T("password_reset_sent", translations.DefaultLanguage),
	})
}

// ValidateResetToken checks a reset token
// @Summary      Validate a reset token
// @Description  A token is valid until it expires or is consumed
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetValidateRequest true "Reset token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /auth/password-reset/validate [post]
func (c *AuthController) ValidateResetToken() {
	var req ResetValidateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.ValidateResetToken(req.Token); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"valid":   true,
	})
}

// ConfirmPasswordReset consumes a reset token and sets the new password
// @Summary      Confirm a password reset
// @Description  Single use: the token is deleted once the password is set
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetConfirmRequest true "Token and new password"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /auth/password-reset/confirm [post]
func (c *AuthController) ConfirmPasswordReset() {
	var req ResetConfirmRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.ConfirmPasswordReset(req.Token, req.NewPassword); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": translations.T("password_reset_successful", translations.DefaultLanguage),
	})
}
