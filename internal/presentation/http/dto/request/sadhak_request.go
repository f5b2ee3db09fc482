package request

// SadhakRequest represents the body of sadhak create and update requests
type SadhakRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"omitempty,max=20"`
	DefaultAmount *int64 `json:"default_amount" binding:"omitempty,min=0"`
}
