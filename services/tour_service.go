package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/translations"
)

// InterfaceTourService defines the virtual tour service
type InterfaceTourService interface {
	SubmitTour(input TourSubmission) (*models.VirtualTour, string, error)
	ListTours(page, limit int) ([]models.VirtualTour, int64, error)
	ArchiveTour(id uint) error
	UpdateTourStatus(id uint, status models.TourStatus) error
	DeleteTour(id uint) error
}

// TourService handles virtual tour bookings
type TourService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTourService creates a new virtual tour service
func NewTourService(db *gorm.DB, cfg *config.Config) *TourService {
	return &TourService{
		DB:     db,
		Config: cfg,
	}
}

// TourSubmission is the payload of a virtual tour booking
type TourSubmission struct {
	Name          string
	Email         string
	Company       string
	Phone         string
	PreferredDate string
	PreferredTime string
	Message       string
	Language      string
	Country       string
}

// SubmitTour stores a virtual tour booking with status pending, resolving its
// owning User by email inside a single transaction.
func (s *TourService) SubmitTour(input TourSubmission) (*models.VirtualTour, string, error) {
	lang := input.Language
	if !translations.Supported(lang) {
		lang = s.Config.DefaultLanguage
	}

	tour := models.VirtualTour{
		Name:          input.Name,
		Email:         input.Email,
		Company:       input.Company,
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Message:       input.Message,
		Language:      lang,
		Status:        models.TourStatusPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findOrCreateUser(tx, input.Name, input.Email, input.Company, input.Phone, lang, input.Country)
		if err != nil {
			return err
		}
		tour.UserID = &user.ID
		return tx.Create(&tour).Error
	})
	if err != nil {
		return nil, "", err
	}

	return &tour, translations.T("tour_booked", lang), nil
}

// ListTours returns one page of tour bookings, archived last and newest
// first, along with the total unfiltered count.
func (s *TourService) ListTours(page, limit int) ([]models.VirtualTour, int64, error) {
	var tours []models.VirtualTour
	var total int64

	if err := s.DB.Model(&models.VirtualTour{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.DB.Order(archivedLastOrder).Limit(limit).Offset(offset).Find(&tours).Error; err != nil {
		return nil, 0, err
	}

	return tours, total, nil
}

// ArchiveTour sets the tour status to archived regardless of its current
// state. Archiving twice is a no-op success.
func (s *TourService) ArchiveTour(id uint) error {
	return s.setTourStatus(id, models.TourStatusArchived)
}

// UpdateTourStatus transitions the tour to any status within the tour status
// set.
func (s *TourService) UpdateTourStatus(id uint, status models.TourStatus) error {
	if !models.ValidTourStatus(status) {
		return ErrInvalidStatus
	}
	return s.setTourStatus(id, status)
}

func (s *TourService) setTourStatus(id uint, status models.TourStatus) error {
	var tour models.VirtualTour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Model(&tour).Update("status", status).Error
}

// DeleteTour removes the tour permanently.
func (s *TourService) DeleteTour(id uint) error {
	var tour models.VirtualTour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Delete(&tour).Error
}
