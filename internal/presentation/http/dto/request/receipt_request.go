package request

// CreateReceiptRequest represents a request to issue a receipt. Date is
// YYYY-MM-DD and defaults to today.
type CreateReceiptRequest struct {
	SadhakID    string `json:"sadhak_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Date        string `json:"date"`
	PaymentMode string `json:"payment_mode"`
	Remarks     string `json:"remarks" binding:"max=500"`
}

// UpdateReceiptRequest represents an admin correction of a receipt
type UpdateReceiptRequest struct {
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	PaymentMode *string `json:"payment_mode"`
	Remarks     *string `json:"remarks" binding:"omitempty,max=500"`
}

// ReceiptFilterRequest represents receipt list query parameters
type ReceiptFilterRequest struct {
	From    string `form:"from"`
	To      string `form:"to"`
	Name    string `form:"name"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// ShareReceiptRequest represents a request to send a receipt image
type ShareReceiptRequest struct {
	Channel string `json:"channel" binding:"required"`
	To      string `json:"to" binding:"required"`
}
