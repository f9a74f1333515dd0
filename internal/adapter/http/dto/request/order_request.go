package request

import "pede_ai/internal/domain/entities"

// PlaceOrderRequest is the payload for POST /orders, sent by the
// storefront checkout before the PIX flow starts.

type PlaceOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Customer struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email"`
		Phone    string `json:"phone" binding:"required"`
		Document string `json:"document"`
	} `json:"customer" binding:"required"`
}

func (r PlaceOrderRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:     r.Customer.Name,
		Email:    r.Customer.Email,
		Phone:    r.Customer.Phone,
		Document: r.Customer.Document,
	}
}
