package models

import (
	"time"
)

// AdminRole restricts staff accounts to the two supported roles.
type AdminRole string

const (
	RoleAdmin     AdminRole = "admin"
	RoleProcessor AdminRole = "processor"
)

// ValidAdminRole reports whether role is one of the supported roles.
func ValidAdminRole(role AdminRole) bool {
	return role == RoleAdmin || role == RoleProcessor
}

// AdminUser represents a staff account able to review submissions.
type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"` // Hash not exposed in JSON
	Role         AdminRole  `gorm:"type:varchar(20);not null" json:"role"`
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PublicAdminUser is the safe projection of AdminUser returned by the auth
// endpoints. It never carries the password hash.
type PublicAdminUser struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      AdminRole  `json:"role"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

// Public returns the projection of the account without credentials.
func (a *AdminUser) Public() PublicAdminUser {
	return PublicAdminUser{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}
