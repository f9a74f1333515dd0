package entities

import "time"

// PixChargeRequest is the normalized, provider-agnostic payment-intent
// request handed to every gateway adapter. Monetary amount stays in
// decimal currency units here; each adapter converts to integer minor
// units at its own wire boundary, exactly once.

type PixChargeRequest struct {
	OrderID         string
	Amount          float64
	Customer        Customer
	Description     string
	NotificationURL string
}

// PixCharge is the normalized result of a successful payment-intent
// creation, regardless of which provider produced it.

type PixCharge struct {
	TransactionID string
	QRCode        string
	ExpiresAt     time.Time
	Gateway       PaymentGateway
}
