package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderInput = errors.New("invalid order input")
)

// PlaceOrderInput carries the checkout data needed to open an order before
// any payment is attempted.

type PlaceOrderInput struct {
	Amount   float64
	Customer entities.Customer
}

// IOrderUseCase exposes the order-placement operations the storefront
// checkout calls before handing off to the PIX orchestrator.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Phone = digitsOnly(in.Customer.Phone)
	if in.Amount <= 0 || in.Customer.Name == "" || in.Customer.Phone == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		Amount:        in.Amount,
		Customer:      in.Customer,
		PaymentStatus: entities.PaymentStatusPending,
		Status:        entities.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
