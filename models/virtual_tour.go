package models

import (
	"time"
)

// TourStatus represents the lifecycle state of a virtual tour booking.
type TourStatus string

const (
	TourStatusPending   TourStatus = "pending"
	TourStatusConfirmed TourStatus = "confirmed"
	TourStatusCompleted TourStatus = "completed"
	TourStatusCancelled TourStatus = "cancelled"
	TourStatusArchived  TourStatus = "archived"
)

// TourStatuses lists every state a virtual tour may hold.
var TourStatuses = []TourStatus{
	TourStatusPending,
	TourStatusConfirmed,
	TourStatusCompleted,
	TourStatusCancelled,
	TourStatusArchived,
}

// ValidTourStatus reports whether s belongs to the tour status set.
func ValidTourStatus(s TourStatus) bool {
	for _, v := range TourStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// VirtualTour represents a request for a guided virtual tour of the
// production facilities.
type VirtualTour struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        *uint      `json:"user_id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Email         string     `gorm:"type:varchar(255);not null" json:"email"`
	Company       string     `gorm:"type:varchar(255)" json:"company"`
	Phone         string     `gorm:"type:varchar(50)" json:"phone"`
	PreferredDate string     `gorm:"type:varchar(50);not null" json:"preferred_date"`
	PreferredTime string     `gorm:"type:varchar(50);not null" json:"preferred_time"`
	Message       string     `gorm:"type:text" json:"message"`
	Language      string     `gorm:"type:varchar(5);default:'en';not null" json:"language"`
	Status        TourStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
