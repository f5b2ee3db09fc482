package entity

import (
	"time"
)

// SettingsID is the primary key of the single settings row
const SettingsID = 1

// Settings holds the organization letterhead printed on every receipt and
// the WhatsApp group receipts are shared to.
type Settings struct {
	ID                uint      `gorm:"primary_key" json:"id"`
	OrgName           string    `gorm:"size:255;not null" json:"org_name"`
	OrgAddress        string    `gorm:"type:text" json:"org_address"`
	OrgPhone          string    `gorm:"size:50" json:"org_phone"`
	OrgEmail          string    `gorm:"size:255" json:"org_email"`
	OrgWebsite        string    `gorm:"size:255" json:"org_website"`
	WhatsAppGroupLink *string   `gorm:"size:255;column:whatsapp_group_link" json:"whatsapp_group_link,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
