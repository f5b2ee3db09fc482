package request

// UpdateSettingsRequest represents the organization details printed on receipts
type UpdateSettingsRequest struct {
	OrgName           string `json:"org_name" binding:"required,max=255"`
	OrgAddress        string `json:"org_address" binding:"max=500"`
	OrgPhone          string `json:"org_phone" binding:"max=50"`
	OrgEmail          string `json:"org_email" binding:"omitempty,email"`
	OrgWebsite        string `json:"org_website" binding:"max=255"`
	WhatsAppGroupLink string `json:"whatsapp_group_link" binding:"omitempty,url"`
}
