package models

import (
	"time"
)

// OrderStatus represents the lifecycle state of an order inquiry.
type OrderStatus string

const (
	OrderStatusInquiry      OrderStatus = "inquiry"
	OrderStatusQuoteSent    OrderStatus = "quote_sent"
	OrderStatusConfirmed    OrderStatus = "confirmed"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
	OrderStatusArchived     OrderStatus = "archived"
)

// OrderStatuses lists every state an order may hold.
var OrderStatuses = []OrderStatus{
	OrderStatusInquiry,
	OrderStatusQuoteSent,
	OrderStatusConfirmed,
	OrderStatusInProduction,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusArchived,
}

// ValidOrderStatus reports whether s belongs to the order status set.
func ValidOrderStatus(s OrderStatus) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order represents a product order inquiry. OrderNumber is assigned once at
// creation and never changes. Products is the serialized product list as
// submitted.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          *uint       `json:"user_id"`
	OrderNumber     string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	CustomerName    string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerCompany string      `gorm:"type:varchar(255)" json:"customer_company"`
	CustomerPhone   string      `gorm:"type:varchar(50)" json:"customer_phone"`
	Products        string      `gorm:"type:text;not null" json:"products"` // JSON encoded product list
	TotalAmount     string      `gorm:"type:varchar(50)" json:"total_amount"`
	Currency        string      `gorm:"type:varchar(10);default:'USD'" json:"currency"`
	Language        string      `gorm:"type:varchar(5);default:'en';not null" json:"language"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'inquiry'" json:"status"`
	Notes           string      `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
