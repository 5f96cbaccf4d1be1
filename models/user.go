package models

import (
	"time"
)

// User represents a website visitor identified by email. A row is created
// lazily the first time an email appears in any submission and is never
// deleted by the submission flow.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Language  string    `gorm:"type:varchar(5);default:'en';not null" json:"language"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
