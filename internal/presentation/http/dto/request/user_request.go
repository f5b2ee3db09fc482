package request

// CreateUserRequest represents an admin request to add a staff account
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=4"`
	Role     string `json:"role" binding:"omitempty,oneof=admin bill_maker"`
}

// UpdateUserRequest represents an admin update of a staff account.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin bill_maker"`
	IsActive *bool   `json:"is_active"`
}

// ResetUserPasswordRequest sets a new password for a staff account
type ResetUserPasswordRequest struct {
	Password string `json:"password" binding:"required,min=4"`
}
