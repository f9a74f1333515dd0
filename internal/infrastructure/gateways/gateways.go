package gateways

import (
	"math"
	"net/http"
	"os"
	"strconv"
	"time"
)

// DefaultExpiration is the validity window requested for generated PIX
// codes when the store has no specific policy. Providers that echo their
// own expiration back take precedence over this value.
const DefaultExpiration = 5 * time.Minute

const defaultHTTPTimeoutSeconds = 10

// MinorUnits converts a decimal currency amount to integer minor units
// (centavos). Rounding happens on the cents boundary so values like 19.9
// become exactly 1990 instead of truncating to 1989.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// newHTTPClient builds the client used for provider calls. The per-attempt
// timeout is explicit configuration (GATEWAY_HTTP_TIMEOUT_SECONDS) rather
// than an unbounded default; a hung provider call would otherwise stall the
// whole orchestration run.
func newHTTPClient() *http.Client {
	timeout := defaultHTTPTimeoutSeconds
	if v := os.Getenv("GATEWAY_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &http.Client{Timeout: time.Duration(timeout) * time.Second}
}
