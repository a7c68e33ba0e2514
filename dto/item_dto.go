package dto

// CreateItemInput deliberately has no owner field; the owner is always the
// resolved identity.
type CreateItemInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
}

// UpdateItemInput is a patch: nil fields are left unchanged.
type UpdateItemInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}
