package interfaces

import (
	"context"
	"pede_ai/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdatePixPayment must write the four PIX fields in a single update so
// the order never ends up with a partially recorded payment intent.
// A zero-value Order with nil error means the order does not exist.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByProviderTransactionID(ctx context.Context, transactionID string) (entities.Order, error)
	UpdatePixPayment(ctx context.Context, orderID string, charge entities.PixCharge) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, payment entities.PaymentStatus, status entities.OrderStatus) (entities.Order, error)
}
