package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"
)

var ErrInvalidTransactionID = errors.New("invalid transaction id")

// webhookStatusMapping translates the provider status vocabulary into the
// internal payment/order status pair. An empty order status means the
// order status is left unchanged.
type webhookStatusMapping struct {
	payment entities.PaymentStatus
	order   entities.OrderStatus
}

var webhookStatusTable = map[string]webhookStatusMapping{
	"paid":            {payment: entities.PaymentStatusPaid, order: entities.OrderStatusConfirmed},
	"refused":         {payment: entities.PaymentStatusFailed, order: entities.OrderStatusCancelled},
	"canceled":        {payment: entities.PaymentStatusFailed, order: entities.OrderStatusCancelled},
	"waiting_payment": {payment: entities.PaymentStatusPending},
}

// IWebhookUseCase applies asynchronous provider status notifications to
// orders. It is deliberately separate from the orchestrator: the
// orchestrator only creates intents, this flow owns every later status
// transition, keyed by the provider transaction id recorded at creation.

type IWebhookUseCase interface {
	ProcessStatusUpdate(ctx context.Context, transactionID, providerStatus string) (entities.Order, error)
}

type WebhookUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(orders interfaces.IOrderRepository) *WebhookUseCase {
	return &WebhookUseCase{orders: orders}
}

func (u *WebhookUseCase) ProcessStatusUpdate(ctx context.Context, transactionID, providerStatus string) (entities.Order, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Order{}, ErrInvalidTransactionID
	}

	order, err := u.orders.GetByProviderTransactionID(ctx, transactionID)
	if err != nil {
		log.Printf("[pix][webhook] order lookup failed transaction_id=%s err=%v", transactionID, err)
		return entities.Order{}, err
	}
	if order.ID == "" {
		log.Printf("[pix][webhook] no order for transaction_id=%s", transactionID)
		return entities.Order{}, ErrOrderNotFound
	}

	mapping, ok := webhookStatusTable[strings.ToLower(strings.TrimSpace(providerStatus))]
	if !ok {
		// Providers send more statuses than we act on; unknown ones are
		// acknowledged without touching the order so they stop retrying.
		log.Printf("[pix][webhook] ignoring status=%q transaction_id=%s order_id=%s", providerStatus, transactionID, order.ID)
		return order, nil
	}
	if mapping.payment == order.PaymentStatus && (mapping.order == "" || mapping.order == order.Status) {
		log.Printf("[pix][webhook] status already applied transaction_id=%s order_id=%s payment_status=%s", transactionID, order.ID, order.PaymentStatus)
		return order, nil
	}

	updated, err := u.orders.UpdatePaymentStatus(ctx, order.ID, mapping.payment, mapping.order)
	if err != nil {
		log.Printf("[pix][webhook] order update failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	log.Printf("[pix][webhook] status applied order_id=%s transaction_id=%s payment_status=%s order_status=%s", updated.ID, transactionID, updated.PaymentStatus, updated.Status)
	return updated, nil
}
