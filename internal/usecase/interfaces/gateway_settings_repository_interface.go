package interfaces

import (
	"context"
	"pede_ai/internal/domain/entities"
)

// IGatewaySettingsRepository reads the store's gateway configuration.
//
// The orchestrator loads settings on every run through this interface so
// tests and callers can substitute fixtures; there is no process-wide
// settings singleton. An error means the configuration store itself was
// unreachable, which is distinct from "no provider configured".

type IGatewaySettingsRepository interface {
	Get(ctx context.Context) (entities.GatewaySettings, error)
}
