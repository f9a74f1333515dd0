package gateways

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// mercadoPagoExpirationLayout is the timestamp format the Payments API
// expects for date_of_expiration.
const mercadoPagoExpirationLayout = "2006-01-02T15:04:05.000-07:00"

// MercadoPagoGateway creates PIX charges through the official Mercado Pago
// SDK. It participates in the fallthrough chain like any other adapter and
// is skipped unless the store configured an access token.

type MercadoPagoGateway struct{}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{}
}

func (g *MercadoPagoGateway) Name() entities.PaymentGateway {
	return entities.GatewayMercadoPago
}

func (g *MercadoPagoGateway) Configured(settings entities.GatewaySettings) bool {
	return settings.MercadoPagoAccessToken != ""
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, settings entities.GatewaySettings, req entities.PixChargeRequest) (entities.PixCharge, error) {
	cfg, err := config.New(settings.MercadoPagoAccessToken)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("mercadopago: sdk config: %w", err)
	}
	client := payment.NewClient(cfg)

	// The SDK takes decimal currency units; derive them from the minor
	// units so every adapter rounds on the same cents boundary.
	cents := MinorUnits(req.Amount)
	expiresAt := time.Now().UTC().Add(DefaultExpiration)

	firstName, lastName := splitName(req.Customer.Name)
	payer := &payment.PayerRequest{
		Email:     req.Customer.Email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if req.Customer.Document != "" {
		payer.Identification = &payment.IdentificationRequest{Type: "CPF", Number: req.Customer.Document}
	}

	mpReq := payment.Request{
		TransactionAmount: float64(cents) / 100,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.OrderID,
		NotificationURL:   req.NotificationURL,
		DateOfExpiration:  &expiresAt,
		Payer:             payer,
	}

	resp, err := client.Create(ctx, mpReq)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("mercadopago: create payment: %w", err)
	}

	qrCode := resp.PointOfInteraction.TransactionData.QRCode
	if resp.ID == 0 || qrCode == "" {
		return entities.PixCharge{}, errors.New("mercadopago: response missing transaction id or pix code")
	}

	return entities.PixCharge{
		TransactionID: strconv.Itoa(resp.ID),
		QRCode:        qrCode,
		ExpiresAt:     expiresAt,
		Gateway:       entities.GatewayMercadoPago,
	}, nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
