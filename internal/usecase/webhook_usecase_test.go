package usecase

import (
	"context"
	"errors"
	"testing"

	"pede_ai/internal/domain/entities"
	mock_interfaces "pede_ai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_ProcessStatusUpdate_Validations(t *testing.T) {
	t.Run("empty transaction id", func(t *testing.T) {
		uc := NewWebhookUseCase(nil)
		_, err := uc.ProcessStatusUpdate(context.Background(), "  ", "paid")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(entities.Order{}, errors.New("db"))

		uc := NewWebhookUseCase(orders)
		_, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", "paid")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-unknown").Return(entities.Order{}, nil)

		uc := NewWebhookUseCase(orders)
		_, err := uc.ProcessStatusUpdate(context.Background(), "tx-unknown", "paid")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestWebhookUseCase_ProcessStatusUpdate_Mapping(t *testing.T) {
	cases := []struct {
		name        string
		status      string
		wantPayment entities.PaymentStatus
		wantOrder   entities.OrderStatus
	}{
		{name: "paid confirms the order", status: "paid", wantPayment: entities.PaymentStatusPaid, wantOrder: entities.OrderStatusConfirmed},
		{name: "refused cancels the order", status: "refused", wantPayment: entities.PaymentStatusFailed, wantOrder: entities.OrderStatusCancelled},
		{name: "canceled cancels the order", status: "canceled", wantPayment: entities.PaymentStatusFailed, wantOrder: entities.OrderStatusCancelled},
		{name: "status is case insensitive", status: " PAID ", wantPayment: entities.PaymentStatusPaid, wantOrder: entities.OrderStatusConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			existing := entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusPending, Status: entities.OrderStatusPending}
			orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(existing, nil)
			orders.EXPECT().UpdatePaymentStatus(gomock.Any(), "ord_1", tc.wantPayment, tc.wantOrder).Return(
				entities.Order{ID: "ord_1", PaymentStatus: tc.wantPayment, Status: tc.wantOrder}, nil)

			uc := NewWebhookUseCase(orders)
			updated, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", tc.status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.PaymentStatus != tc.wantPayment || updated.Status != tc.wantOrder {
				t.Fatalf("unexpected order: %+v", updated)
			}
		})
	}

	t.Run("waiting_payment keeps order status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		existing := entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusFailed, Status: entities.OrderStatusCancelled}
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(existing, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), "ord_1", entities.PaymentStatusPending, entities.OrderStatus("")).Return(
			entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusPending, Status: entities.OrderStatusCancelled}, nil)

		uc := NewWebhookUseCase(orders)
		updated, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", "waiting_payment")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusCancelled {
			t.Fatalf("order status must be untouched, got %s", updated.Status)
		}
	})

	t.Run("unknown status is acknowledged without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		existing := entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusPending, Status: entities.OrderStatusPending}
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(existing, nil)

		uc := NewWebhookUseCase(orders)
		got, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", "chargeback_dispute")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ord_1" || got.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("order must be returned unchanged, got %+v", got)
		}
	})

	t.Run("already applied status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		existing := entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusPaid, Status: entities.OrderStatusConfirmed}
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(existing, nil)

		uc := NewWebhookUseCase(orders)
		got, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", "paid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("update error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		existing := entities.Order{ID: "ord_1", PaymentStatus: entities.PaymentStatusPending, Status: entities.OrderStatusPending}
		orders.EXPECT().GetByProviderTransactionID(gomock.Any(), "tx-1").Return(existing, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), "ord_1", entities.PaymentStatusPaid, entities.OrderStatusConfirmed).Return(entities.Order{}, errors.New("db-update"))

		uc := NewWebhookUseCase(orders)
		_, err := uc.ProcessStatusUpdate(context.Background(), "tx-1", "paid")
		if err == nil || err.Error() != "db-update" {
			t.Fatalf("expected db-update error, got %v", err)
		}
	})
}
