package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey records the response to a POST made with an
// Idempotency-Key header. A key is scoped to the user who sent it, so two
// staff members picking the same key never see each other's receipts.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idempotency_user_key,priority:1"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:idx_idempotency_user_key,priority:2"`
	Endpoint     string    `gorm:"size:255;not null"` // e.g. "POST /api/v1/receipts"
	RequestHash  string    `gorm:"size:64;not null"`  // hex SHA-256 of the request body
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired reports whether the key may be reused for a new request.
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// Matches reports whether a retry carries the same body as the stored request.
func (i *IdempotencyKey) Matches(requestHash string) bool {
	return i.RequestHash == requestHash
}
