package dto

type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInput is a patch: nil fields are left unchanged.
type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}
