package response

import (
	"time"

	"pede_ai/internal/usecase"
)

// PixGatewayResponse is the normalized success body of POST /pix-gateway.
// The shape is identical no matter which provider created the charge.

type PixGatewayResponse struct {
	TransactionID  string    `json:"transactionId"`
	QRCode         string    `json:"qrcode"`
	ExpirationDate time.Time `json:"expirationDate"`
	Gateway        string    `json:"gateway"`
}

func FromPixPaymentResult(r usecase.PixPaymentResult) PixGatewayResponse {
	return PixGatewayResponse{
		TransactionID:  r.TransactionID,
		QRCode:         r.QRCode,
		ExpirationDate: r.ExpiresAt,
		Gateway:        string(r.Gateway),
	}
}
