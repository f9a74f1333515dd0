package entities

import "time"

// PaymentGateway identifies which PIX provider owns the payment intent
// recorded on an order. The value is part of the public API contract and
// of the orders storage schema, so it is a closed enum.

type PaymentGateway string

const (
	GatewayProviderA   PaymentGateway = "providerA"
	GatewayProviderB   PaymentGateway = "providerB"
	GatewayMercadoPago PaymentGateway = "mercadopago"
)

// PaymentStatus tracks the asynchronous payment lifecycle driven by
// provider webhooks. The orchestrator only ever leaves an order pending;
// later transitions belong to the webhook flow.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Document string `json:"document,omitempty"`
}

// Order is the storefront order persisted by the payments service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_transaction_id-index): provider_transaction_id
//
// PIX payment fields:
//   - PaymentGateway and ProviderTransactionID are written together by the
//     orchestrator on the first successful provider attempt and always refer
//     to the same provider.
//   - PixQRCode holds the copy-paste payload; PixExpiration is the absolute
//     instant after which the code is no longer payable.

type Order struct {
	ID       string   `json:"id"`
	Amount   float64  `json:"amount"`
	Customer Customer `json:"customer"`

	PaymentGateway        PaymentGateway `json:"payment_gateway,omitempty"`
	ProviderTransactionID string         `json:"provider_transaction_id,omitempty"`
	PixQRCode             string         `json:"pix_qrcode,omitempty"`
	PixExpiration         *time.Time     `json:"pix_expiration,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
