package entity

import (
	"time"

	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a staff account that can issue receipts
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Role      enum.UserRole  `gorm:"size:20;not null;default:'bill_maker'" json:"role"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	Password  string         `gorm:"size:255" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may manage users, settings and receipts
func (u *User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}
