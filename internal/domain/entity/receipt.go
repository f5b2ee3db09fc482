package entity

import (
	"time"

	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/google/uuid"
)

// Receipt is an issued donation receipt. ReceiptNo comes from the table's
// sequence and is never reused.
type Receipt struct {
	ReceiptNo   int64            `gorm:"primaryKey;autoIncrement" json:"receipt_no"`
	SadhakID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"sadhak_id"`
	Amount      int64            `gorm:"not null" json:"amount"`
	Date        time.Time        `gorm:"type:date;not null;index" json:"date"`
	PaymentMode enum.PaymentMode `gorm:"size:30;not null;default:'Cash'" json:"payment_mode"`
	Remarks     *string          `gorm:"type:text" json:"remarks,omitempty"`
	CreatedBy   string           `gorm:"size:255;not null" json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Sadhak Sadhak `gorm:"foreignKey:SadhakID" json:"sadhak,omitempty"`
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// DonorName returns the joined sadhak's name
func (r *Receipt) DonorName() string {
	return r.Sadhak.Name
}

// RemarksText returns the remarks or an empty string
func (r *Receipt) RemarksText() string {
	if r.Remarks == nil {
		return ""
	}
	return *r.Remarks
}
