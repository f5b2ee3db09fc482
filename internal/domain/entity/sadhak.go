package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sadhak is a donor. Names are unique ignoring case.
type Sadhak struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null;index" json:"name"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	DefaultAmount *int64         `json:"default_amount,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sadhak
func (s *Sadhak) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sadhak model
func (Sadhak) TableName() string {
	return "sadhaks"
}
