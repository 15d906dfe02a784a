package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=120"`
	Phone   string `json:"phone"   validate:"max=20"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateCustomerRequest is a typed patch: nil fields are left untouched.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=120"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}
