package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/translations"
)

// InterfaceOrderService defines the order inquiry service
type InterfaceOrderService interface {
	SubmitOrder(input OrderSubmission) (*models.Order, string, error)
	ListOrders(page, limit int) ([]models.Order, int64, error)
	ArchiveOrder(id uint) error
	UpdateOrderStatus(id uint, status models.OrderStatus) error
	DeleteOrder(id uint) error
}

// OrderService handles product order inquiries
type OrderService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOrderService creates a new order service
func NewOrderService(db *gorm.DB, cfg *config.Config) *OrderService {
	return &OrderService{
		DB:     db,
		Config: cfg,
	}
}

// OrderProduct is one line of an order inquiry
type OrderProduct struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// OrderSubmission is the payload of an order inquiry
type OrderSubmission struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	Products    []OrderProduct
	TotalAmount string
	Currency    string
	Notes       string
	Language    string
	Country     string
}

// SubmitOrder stores an order inquiry with a freshly minted order number,
// resolving its owning User by email inside a single transaction.
func (s *OrderService) SubmitOrder(input OrderSubmission) (*models.Order, string, error) {
	lang := input.Language
	if !translations.Supported(lang) {
		lang = s.Config.DefaultLanguage
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	productsJSON, err := json.Marshal(input.Products)
	if err != nil {
		return nil, "", err
	}

	order := models.Order{
		OrderNumber:     GenerateOrderNumber(),
		CustomerName:    input.Name,
		CustomerEmail:   input.Email,
		CustomerCompany: input.Company,
		CustomerPhone:   input.Phone,
		Products:        string(productsJSON),
		TotalAmount:     input.TotalAmount,
		Currency:        currency,
		Language:        lang,
		Status:          models.OrderStatusInquiry,
		Notes:           input.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findOrCreateUser(tx, input.Name, input.Email, input.Company, input.Phone, lang, input.Country)
		if err != nil {
			return err
		}
		order.UserID = &user.ID
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, "", err
	}

	return &order, translations.T("order_submitted", lang), nil
}

// GenerateOrderNumber mints a unique order number of the form
// TW-20060102-8HEXCHAR. The random suffix keeps numbers unguessable; the
// unique index on order_number backs the global uniqueness invariant.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TW-%s-%s", time.Now().Format("20060102"), suffix)
}

// ListOrders returns one page of order inquiries, archived last and newest
// first, along with the total unfiltered count.
func (s *OrderService) ListOrders(page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := s.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.DB.Order(archivedLastOrder).Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ArchiveOrder sets the order status to archived regardless of its current
// state. Archiving twice is a no-op success.
func (s *OrderService) ArchiveOrder(id uint) error {
	return s.setOrderStatus(id, models.OrderStatusArchived)
}

// UpdateOrderStatus transitions the order to any status within the order
// status set.
func (s *OrderService) UpdateOrderStatus(id uint, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	return s.setOrderStatus(id, status)
}

func (s *OrderService) setOrderStatus(id uint, status models.OrderStatus) error {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Model(&order).Update("status", status).Error
}

// DeleteOrder removes the order permanently.
func (s *OrderService) DeleteOrder(id uint) error {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Delete(&order).Error
}
