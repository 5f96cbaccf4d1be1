package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/utils"
)

// resetTokenTTL is how long a password reset link stays valid.
const resetTokenTTL = 30 * time.Minute

// InterfaceAdminService defines the staff authentication service
type InterfaceAdminService interface {
	Login(username, password string) (*models.PublicAdminUser, error)
	Register(username, email, password string, role models.AdminRole) (*models.PublicAdminUser, error)
	ChangePassword(username, newPassword string) error
	ListAdminUsers() ([]models.PublicAdminUser, error)
	RequestPasswordReset(email string) error
	ValidateResetToken(token string) error
	ConfirmPasswordReset(token, newPassword string) error
}

// AdminService provides staff authentication and the password reset flow
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
	Tokens InterfaceTokenStore
	Mail   InterfaceMailService
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config, tokens InterfaceTokenStore, mail InterfaceMailService) *AdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
		Tokens: tokens,
		Mail:   mail,
	}
}

// Login checks the credentials against the stored hash. Every call
// re-authenticates: no session token is issued. On success the account's
// last_login is updated and only public fields are returned.
func (s *AdminService) Login(username, password string) (*models.PublicAdminUser, error) {
	var admin models.AdminUser
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.DB.Model(&admin).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	admin.LastLogin = &now

	pub := admin.Public()
	return &pub, nil
}

// Register creates a staff account. Username and email must both be unused
// and the role must be admin or processor.
func (s *AdminService) Register(username, email, password string, role models.AdminRole) (*models.PublicAdminUser, error) {
	if !models.ValidAdminRole(role) {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.DB.Model(&models.AdminUser{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminAlreadyExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := models.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, err
	}

	pub := admin.Public()
	return &pub, nil
}

// ChangePassword overwrites the account's password hash unconditionally.
// The old password is not required.
func (s *AdminService) ChangePassword(username, newPassword string) error {
	var admin models.AdminUser
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(&admin).Update("password_hash", hash).Error
}

// ListAdminUsers returns the public projection of every staff account.
func (s *AdminService) ListAdminUsers() ([]models.PublicAdminUser, error) {
	var admins []models.AdminUser
	if err := s.DB.Order("id").Find(&admins).Error; err != nil {
		return nil, err
	}

	out := make([]models.PublicAdminUser, 0, len(admins))
	for i := range admins {
		out = append(out, admins[i].Public())
	}
	return out, nil
}

// RequestPasswordReset mints a reset token for the account matching email and
// hands the reset link to the mail channel. It reports success whether or not
// the email matched so account existence cannot be probed.
func (s *AdminService) RequestPasswordReset(email string) error {
	var admin models.AdminUser
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := utils.RandomToken(32)
	if err := s.Tokens.Put(token, ResetTokenData{UserID: admin.ID, Email: admin.Email}, resetTokenTTL); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/admin/password-reset?token=%s", s.Config.SiteBaseURL, token)
	if err := s.Mail.SendPasswordReset(admin.Email, link, s.Config.DefaultLanguage); err != nil {
		// Delivery failures stay internal: surfacing them would leak which
		// emails have accounts.
		log.Printf("password reset mail to %s failed: %v", admin.Email, err)
	}
	return nil
}

// ValidateResetToken reports whether token is known and unexpired.
func (s *AdminService) ValidateResetToken(token string) error {
	_, err := s.Tokens.Get(token)
	return err
}

// ConfirmPasswordReset consumes token and overwrites the account's password
// hash. Tokens are single use: a confirmed token fails validation afterwards.
func (s *AdminService) ConfirmPasswordReset(token, newPassword string) error {
	data, err := s.Tokens.Get(token)
	if err != nil {
		return err
	}

	var admin models.AdminUser
	if err := s.DB.First(&admin, data.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.DB.Model(&admin).Update("password_hash", hash).Error; err != nil {
		return err
	}

	return s.Tokens.Delete(token)
}
