package models

import (
	"time"
)

// ContactStatus represents the lifecycle state of a contact message.
type ContactStatus string

const (
	ContactStatusUnread   ContactStatus = "unread"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ContactStatuses lists every state a contact message may hold.
var ContactStatuses = []ContactStatus{
	ContactStatusUnread,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
}

// ValidContactStatus reports whether s belongs to the contact status set.
func ValidContactStatus(s ContactStatus) bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ContactMessage represents a contact form submission. Name/email/company/
// phone are snapshots taken at submission time and stay independent of later
// edits to the owning User.
type ContactMessage struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    *uint         `json:"user_id"`
	Name      string        `gorm:"type:varchar(100);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Company   string        `gorm:"type:varchar(255)" json:"company"`
	Phone     string        `gorm:"type:varchar(50)" json:"phone"`
	Subject   string        `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Language  string        `gorm:"type:varchar(5);default:'en';not null" json:"language"`
	Status    ContactStatus `gorm:"type:varchar(20);default:'unread'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
