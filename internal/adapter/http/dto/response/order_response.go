package response

import (
	"time"

	"pede_ai/internal/domain/entities"
)

type OrderResponse struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Customer struct {
		Name     string `json:"name"`
		Email    string `json:"email,omitempty"`
		Phone    string `json:"phone"`
		Document string `json:"document,omitempty"`
	} `json:"customer"`

	PaymentGateway        string     `json:"payment_gateway,omitempty"`
	ProviderTransactionID string     `json:"provider_transaction_id,omitempty"`
	PixQRCode             string     `json:"pix_qrcode,omitempty"`
	PixExpiration         *time.Time `json:"pix_expiration,omitempty"`

	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:                    o.ID,
		Amount:                o.Amount,
		PaymentGateway:        string(o.PaymentGateway),
		ProviderTransactionID: o.ProviderTransactionID,
		PixQRCode:             o.PixQRCode,
		PixExpiration:         o.PixExpiration,
		PaymentStatus:         string(o.PaymentStatus),
		Status:                string(o.Status),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	res.Customer.Name = o.Customer.Name
	res.Customer.Email = o.Customer.Email
	res.Customer.Phone = o.Customer.Phone
	res.Customer.Document = o.Customer.Document
	return res
}
