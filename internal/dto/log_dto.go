package dto

// CreateLogRequest records one inventory movement. CustomerID and
// PaymentStatus apply to OUT movements only; PaymentStatus defaults to
// PENDING when omitted.
type CreateLogRequest struct {
	ProductID     string `json:"productId"     validate:"required"`
	Quantity      int    `json:"quantity"      validate:"required,gt=0"`
	Type          string `json:"type"          validate:"required,oneof=IN OUT"`
	CustomerID    string `json:"customerId"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=PAID PENDING"`
}
