package request

import "pede_ai/internal/domain/entities"

// PixGatewayCustomerRequest mirrors the storefront checkout customer
// payload. Field-level validation lives in the use case so the route can
// answer the contract's single "Missing required fields" error.

type PixGatewayCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// PixGatewayRequest is the inbound payload for POST /pix-gateway.
type PixGatewayRequest struct {
	OrderID     string                    `json:"orderId"`
	Amount      float64                   `json:"amount"`
	Customer    PixGatewayCustomerRequest `json:"customer"`
	Description string                    `json:"description"`
}

func (r PixGatewayRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:     r.Customer.Name,
		Email:    r.Customer.Email,
		Phone:    r.Customer.Phone,
		Document: r.Customer.Document,
	}
}
