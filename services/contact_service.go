package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/translations"
)

// InterfaceContactService defines the contact message service
type InterfaceContactService interface {
	SubmitContact(input ContactSubmission) (*models.ContactMessage, string, error)
	ListContactMessages(page, limit int) ([]models.ContactMessage, int64, error)
	ArchiveContactMessage(id uint) error
	UpdateContactStatus(id uint, status models.ContactStatus) error
	DeleteContactMessage(id uint) error
}

// ContactService handles contact form submissions
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService creates a new contact message service
func NewContactService(db *gorm.DB, cfg *config.Config) *ContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// ContactSubmission is the payload of a contact form submission
type ContactSubmission struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	Subject  string
	Message  string
	Language string
	Country  string
}

// SubmitContact stores a contact message, resolving its owning User by email
// inside a single transaction. It returns the stored record and a confirmation
// message translated into the submission's language.
func (s *ContactService) SubmitContact(input ContactSubmission) (*models.ContactMessage, string, error) {
	lang := input.Language
	if !translations.Supported(lang) {
		lang = s.Config.DefaultLanguage
	}

	msg := models.ContactMessage{
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		Phone:    input.Phone,
		Subject:  input.Subject,
		Message:  input.Message,
		Language: lang,
		Status:   models.ContactStatusUnread,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findOrCreateUser(tx, input.Name, input.Email, input.Company, input.Phone, lang, input.Country)
		if err != nil {
			return err
		}
		msg.UserID = &user.ID
		return tx.Create(&msg).Error
	})
	if err != nil {
		return nil, "", err
	}

	return &msg, translations.T("message_sent", lang), nil
}

// ListContactMessages returns one page of contact messages, archived last and
// newest first, along with the total unfiltered count.
func (s *ContactService) ListContactMessages(page, limit int) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	if err := s.DB.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.DB.Order(archivedLastOrder).Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// ArchiveContactMessage sets the message status to archived. Archiving an
// already archived message is a no-op success.
func (s *ContactService) ArchiveContactMessage(id uint) error {
	return s.setContactStatus(id, models.ContactStatusArchived)
}

// UpdateContactStatus transitions the message to any status within the
// contact status set.
func (s *ContactService) UpdateContactStatus(id uint, status models.ContactStatus) error {
	if !models.ValidContactStatus(status) {
		return ErrInvalidStatus
	}
	return s.setContactStatus(id, status)
}

func (s *ContactService) setContactStatus(id uint, status models.ContactStatus) error {
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Model(&msg).Update("status", status).Error
}

// DeleteContactMessage removes the message permanently.
func (s *ContactService) DeleteContactMessage(id uint) error {
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Delete(&msg).Error
}
