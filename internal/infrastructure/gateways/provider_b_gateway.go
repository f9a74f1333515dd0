package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"
)

const defaultProviderBBaseURL = "https://api.providerb.com.br"

// ProviderBGateway creates PIX charges on provider B's charge API.
//
// Wire format: a single API key sent in the x-api-key header and a flat
// JSON payload. Amounts go out in integer centavos, expiration as a
// relative expiresIn in seconds.

type ProviderBGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPixGateway = (*ProviderBGateway)(nil)

func NewProviderBGateway(baseURL string) *ProviderBGateway {
	if baseURL == "" {
		baseURL = defaultProviderBBaseURL
	}
	return &ProviderBGateway{baseURL: baseURL, client: newHTTPClient()}
}

type providerBCreateRequest struct {
	Reference        string `json:"reference"`
	Amount           int64  `json:"amount"`
	Description      string `json:"description"`
	ExpiresIn        int    `json:"expiresIn"`
	CallbackURL      string `json:"callbackUrl,omitempty"`
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerDocument string `json:"customerDocument,omitempty"`
}

type providerBCreateResponse struct {
	TransactionID string `json:"transactionId"`
	PixCode       string `json:"pixCode"`
	ExpiresAt     string `json:"expiresAt"`
}

func (g *ProviderBGateway) Name() entities.PaymentGateway {
	return entities.GatewayProviderB
}

func (g *ProviderBGateway) Configured(settings entities.GatewaySettings) bool {
	return settings.ProviderBAPIKey != ""
}

func (g *ProviderBGateway) CreateCharge(ctx context.Context, settings entities.GatewaySettings, req entities.PixChargeRequest) (entities.PixCharge, error) {
	body := providerBCreateRequest{
		Reference:        req.OrderID,
		Amount:           MinorUnits(req.Amount),
		Description:      req.Description,
		ExpiresIn:        int(DefaultExpiration.Seconds()),
		CallbackURL:      req.NotificationURL,
		CustomerName:     req.Customer.Name,
		CustomerEmail:    req.Customer.Email,
		CustomerPhone:    req.Customer.Phone,
		CustomerDocument: req.Customer.Document,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerB: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/pix/charges", bytes.NewReader(payload))
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerB: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", settings.ProviderBAPIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerB: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerB: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.PixCharge{}, fmt.Errorf("providerB: charge rejected: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var out providerBCreateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerB: decode response: %w", err)
	}
	if out.TransactionID == "" || out.PixCode == "" {
		return entities.PixCharge{}, fmt.Errorf("providerB: response missing transaction id or pix code: body=%s", string(raw))
	}

	expiresAt := time.Now().UTC().Add(DefaultExpiration)
	if out.ExpiresAt != "" {
		if parsed, err := time.Parse(time.RFC3339, out.ExpiresAt); err == nil {
			expiresAt = parsed.UTC()
		} else {
			log.Printf("[pix][providerB] unparseable expiresAt=%q, using local window", out.ExpiresAt)
		}
	}

	return entities.PixCharge{
		TransactionID: out.TransactionID,
		QRCode:        out.PixCode,
		ExpiresAt:     expiresAt,
		Gateway:       entities.GatewayProviderB,
	}, nil
}
