package interfaces

import (
	"context"
	"pede_ai/internal/domain/entities"
)

// IPixGateway is the per-provider adapter capability: translate the
// normalized charge request into one provider-specific transaction-creation
// call and normalize the result back.
//
// CreateCharge performs exactly one attempt; any failure (network error,
// rejecting response, success response missing mandatory fields) comes back
// as a normal error return carrying the diagnostic detail, never a panic.
// Adding a provider means implementing this interface and appending it to
// the orchestrator's list.

type IPixGateway interface {
	Name() entities.PaymentGateway
	Configured(settings entities.GatewaySettings) bool
	CreateCharge(ctx context.Context, settings entities.GatewaySettings, req entities.PixChargeRequest) (entities.PixCharge, error)
}
