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

const defaultProviderABaseURL = "https://api.providera.com.br"

// ProviderAGateway creates PIX charges on provider A's transaction API.
//
// Wire format: basic auth with the store's public/secret key pair and a
// nested payload (pix block, customer block, single-item list). Amounts go
// out in integer centavos.

type ProviderAGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPixGateway = (*ProviderAGateway)(nil)

func NewProviderAGateway(baseURL string) *ProviderAGateway {
	if baseURL == "" {
		baseURL = defaultProviderABaseURL
	}
	return &ProviderAGateway{baseURL: baseURL, client: newHTTPClient()}
}

type providerADocument struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type providerACustomer struct {
	Name     string             `json:"name"`
	Email    string             `json:"email,omitempty"`
	Phone    string             `json:"phone"`
	Document *providerADocument `json:"document,omitempty"`
}

type providerAItem struct {
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type providerACreateRequest struct {
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	ExternalRef   string `json:"externalRef"`
	PostbackURL   string `json:"postbackUrl,omitempty"`
	Pix           struct {
		ExpiresInSeconds int `json:"expiresInSeconds"`
	} `json:"pix"`
	Customer providerACustomer `json:"customer"`
	Items    []providerAItem   `json:"items"`
}

type providerACreateResponse struct {
	ID     json.Number `json:"id"`
	Status string      `json:"status"`
	Pix    struct {
		QRCode         string `json:"qrcode"`
		ExpirationDate string `json:"expirationDate"`
	} `json:"pix"`
}

func (g *ProviderAGateway) Name() entities.PaymentGateway {
	return entities.GatewayProviderA
}

func (g *ProviderAGateway) Configured(settings entities.GatewaySettings) bool {
	return settings.ProviderAPublicKey != "" && settings.ProviderASecretKey != ""
}

func (g *ProviderAGateway) CreateCharge(ctx context.Context, settings entities.GatewaySettings, req entities.PixChargeRequest) (entities.PixCharge, error) {
	cents := MinorUnits(req.Amount)

	body := providerACreateRequest{
		Amount:        cents,
		PaymentMethod: "pix",
		ExternalRef:   req.OrderID,
		PostbackURL:   req.NotificationURL,
		Customer: providerACustomer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Items: []providerAItem{
			{Title: req.Description, UnitPrice: cents, Quantity: 1, Tangible: false},
		},
	}
	body.Pix.ExpiresInSeconds = int(DefaultExpiration.Seconds())
	if req.Customer.Document != "" {
		body.Customer.Document = &providerADocument{Number: req.Customer.Document, Type: "cpf"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerA: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/transactions", bytes.NewReader(payload))
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerA: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(settings.ProviderAPublicKey, settings.ProviderASecretKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerA: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerA: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.PixCharge{}, fmt.Errorf("providerA: charge rejected: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var out providerACreateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.PixCharge{}, fmt.Errorf("providerA: decode response: %w", err)
	}
	if out.ID.String() == "" || out.Pix.QRCode == "" {
		return entities.PixCharge{}, fmt.Errorf("providerA: response missing transaction id or pix code: body=%s", string(raw))
	}

	expiresAt := time.Now().UTC().Add(DefaultExpiration)
	if out.Pix.ExpirationDate != "" {
		if parsed, err := time.Parse(time.RFC3339, out.Pix.ExpirationDate); err == nil {
			expiresAt = parsed.UTC()
		} else {
			log.Printf("[pix][providerA] unparseable expirationDate=%q, using local window", out.Pix.ExpirationDate)
		}
	}

	return entities.PixCharge{
		TransactionID: out.ID.String(),
		QRCode:        out.Pix.QRCode,
		ExpiresAt:     expiresAt,
		Gateway:       entities.GatewayProviderA,
	}, nil
}
