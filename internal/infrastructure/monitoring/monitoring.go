package monitoring

import (
	"context"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GatewayAttempts counts provider attempt outcomes. Together with the
// orchestrator logs this is the primary operational signal for payment
// issues: which providers were tried and how each attempt ended.
var GatewayAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pix_gateway_attempts_total",
		Help: "PIX charge creation attempts per gateway and outcome.",
	},
	[]string{"gateway", "outcome"},
)

// Handler exposes the Prometheus registry for the /metrics route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// instrumentedGateway wraps a gateway adapter and records the outcome of
// every charge attempt without the use case knowing about metrics.
type instrumentedGateway struct {
	interfaces.IPixGateway
}

// Instrument decorates a gateway with attempt counters.
func Instrument(gw interfaces.IPixGateway) interfaces.IPixGateway {
	return instrumentedGateway{IPixGateway: gw}
}

func (g instrumentedGateway) CreateCharge(ctx context.Context, settings entities.GatewaySettings, req entities.PixChargeRequest) (entities.PixCharge, error) {
	charge, err := g.IPixGateway.CreateCharge(ctx, settings, req)
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	GatewayAttempts.WithLabelValues(string(g.Name()), outcome).Inc()
	return charge, err
}
