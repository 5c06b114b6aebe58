package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the credential holder for admin/trustee access.
// RefreshToken holds the single active refresh token: a new login or a
// refresh overwrites it, invalidating the previous session.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string         `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'user'" json:"role"`
	RefreshToken *string        `gorm:"size:500" json:"-"`
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt  *time.Time     `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Roles accepted by the user model.
const (
	RoleAdmin     = "admin"
	RoleTrustee   = "trustee"
	RoleVolunteer = "volunteer"
	RoleUser      = "user"
)
