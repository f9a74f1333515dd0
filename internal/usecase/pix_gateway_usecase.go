package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"
)

var (
	ErrMissingRequiredFields      = errors.New("missing required fields")
	ErrGatewaySettingsUnavailable = errors.New("failed to fetch gateway settings")
	ErrNoGatewayAvailable         = errors.New("no gateway available")
	// ErrPixPaymentNotPersisted means a provider accepted the charge but the
	// order update failed: the provider now holds a live payment intent the
	// store has no record of. It must never be conflated with
	// ErrNoGatewayAvailable.
	ErrPixPaymentNotPersisted = errors.New("payment intent created but order update failed")
)

// CreatePixPaymentInput is the normalized inbound request for one
// orchestration run.

type CreatePixPaymentInput struct {
	OrderID     string
	Amount      float64
	Customer    entities.Customer
	Description string
}

// PixPaymentResult is the normalized outcome returned to the caller
// regardless of which provider produced the charge.

type PixPaymentResult struct {
	TransactionID string
	QRCode        string
	ExpiresAt     time.Time
	Gateway       entities.PaymentGateway
}

// IPixGatewayUseCase orchestrates PIX payment-intent creation across the
// configured providers.

type IPixGatewayUseCase interface {
	CreatePixPayment(ctx context.Context, in CreatePixPaymentInput) (PixPaymentResult, error)
}

// PixGatewayUseCase tries each registered gateway in priority order until
// one creates a charge, then records the result on the order in a single
// write. Attempts are strictly sequential; parallel attempts could leave
// two live payment intents for one order.
//
// Calls are not deduplicated per order: invoking this twice for the same
// order simply overwrites the PIX fields with the newest charge. Callers
// regenerate codes on purpose; anything stronger must be serialized
// upstream.

type PixGatewayUseCase struct {
	orders          interfaces.IOrderRepository
	settings        interfaces.IGatewaySettingsRepository
	gateways        []interfaces.IPixGateway
	notificationURL string
}

var _ IPixGatewayUseCase = (*PixGatewayUseCase)(nil)

func NewPixGatewayUseCase(
	orders interfaces.IOrderRepository,
	settings interfaces.IGatewaySettingsRepository,
	notificationURL string,
	gateways ...interfaces.IPixGateway,
) *PixGatewayUseCase {
	return &PixGatewayUseCase{
		orders:          orders,
		settings:        settings,
		gateways:        gateways,
		notificationURL: notificationURL,
	}
}

func (u *PixGatewayUseCase) CreatePixPayment(ctx context.Context, in CreatePixPaymentInput) (PixPaymentResult, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Phone = digitsOnly(in.Customer.Phone)

	if in.OrderID == "" || in.Amount <= 0 || in.Customer.Name == "" || in.Customer.Phone == "" {
		log.Printf("[pix][usecase] invalid input order_id=%q amount=%.2f", in.OrderID, in.Amount)
		return PixPaymentResult{}, ErrMissingRequiredFields
	}
	if strings.TrimSpace(in.Description) == "" {
		in.Description = "Pedido " + in.OrderID
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		log.Printf("[pix][usecase] settings load failed order_id=%s err=%v", in.OrderID, err)
		return PixPaymentResult{}, fmt.Errorf("%w: %v", ErrGatewaySettingsUnavailable, err)
	}

	chargeReq := entities.PixChargeRequest{
		OrderID:         in.OrderID,
		Amount:          in.Amount,
		Customer:        in.Customer,
		Description:     in.Description,
		NotificationURL: u.notificationURL,
	}

	for _, gw := range orderedGateways(u.gateways, settings.PrimaryGateway) {
		name := gw.Name()
		if !gw.Configured(settings) {
			log.Printf("[pix][usecase] gateway skipped (not configured) gateway=%s order_id=%s", name, in.OrderID)
			continue
		}

		log.Printf("[pix][usecase] gateway attempt gateway=%s order_id=%s amount=%.2f", name, in.OrderID, in.Amount)
		charge, err := gw.CreateCharge(ctx, settings, chargeReq)
		if err != nil {
			log.Printf("[pix][usecase] gateway attempt failed gateway=%s order_id=%s err=%v", name, in.OrderID, err)
			continue
		}

		log.Printf("[pix][usecase] gateway success gateway=%s order_id=%s transaction_id=%s", name, in.OrderID, charge.TransactionID)

		updated, err := u.orders.UpdatePixPayment(ctx, in.OrderID, charge)
		if err != nil {
			log.Printf("[pix][usecase] order update failed order_id=%s gateway=%s transaction_id=%s err=%v", in.OrderID, name, charge.TransactionID, err)
			return PixPaymentResult{}, fmt.Errorf("%w: %v", ErrPixPaymentNotPersisted, err)
		}
		if updated.ID == "" {
			log.Printf("[pix][usecase] order update failed (order not found) order_id=%s gateway=%s transaction_id=%s", in.OrderID, name, charge.TransactionID)
			return PixPaymentResult{}, fmt.Errorf("%w: order %s not found", ErrPixPaymentNotPersisted, in.OrderID)
		}

		return PixPaymentResult{
			TransactionID: charge.TransactionID,
			QRCode:        charge.QRCode,
			ExpiresAt:     charge.ExpiresAt,
			Gateway:       charge.Gateway,
		}, nil
	}

	log.Printf("[pix][usecase] all gateways skipped or failed order_id=%s", in.OrderID)
	return PixPaymentResult{}, ErrNoGatewayAvailable
}

// orderedGateways puts the primary gateway first and keeps registration
// order for the rest. Unrecognized or empty primary values leave the
// registration order untouched.
func orderedGateways(gateways []interfaces.IPixGateway, primary entities.PaymentGateway) []interfaces.IPixGateway {
	ordered := make([]interfaces.IPixGateway, 0, len(gateways))
	for _, gw := range gateways {
		if gw.Name() == primary {
			ordered = append(ordered, gw)
		}
	}
	for _, gw := range gateways {
		if gw.Name() != primary {
			ordered = append(ordered, gw)
		}
	}
	return ordered
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
