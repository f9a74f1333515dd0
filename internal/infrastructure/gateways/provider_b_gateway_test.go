package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pede_ai/internal/domain/entities"
)

var providerBTestSettings = entities.GatewaySettings{ProviderBAPIKey: "key_test"}

func providerBTestRequest() entities.PixChargeRequest {
	return entities.PixChargeRequest{
		OrderID:         "ord_1",
		Amount:          0.05,
		Description:     "Pedido ord_1",
		NotificationURL: "https://store.example/pix-webhook",
		Customer: entities.Customer{
			Name:  "Maria Silva",
			Phone: "11999998888",
		},
	}
}

func TestProviderBGateway_Configured(t *testing.T) {
	gw := NewProviderBGateway("")
	if gw.Name() != entities.GatewayProviderB {
		t.Fatalf("unexpected name: %s", gw.Name())
	}
	if gw.Configured(entities.GatewaySettings{}) {
		t.Fatalf("expected not configured without api key")
	}
	if !gw.Configured(providerBTestSettings) {
		t.Fatalf("expected configured with api key")
	}
}

func TestProviderBGateway_CreateCharge(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/v1/pix/charges" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("x-api-key"); got != "key_test" {
				t.Fatalf("unexpected api key header: %q", got)
			}

			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("invalid request body: %v", err)
			}
			if body["reference"] != "ord_1" || body["amount"] != float64(5) {
				t.Fatalf("unexpected payload: %v", body)
			}
			if body["expiresIn"] != float64(300) {
				t.Fatalf("expected 300s expiration, got %v", body["expiresIn"])
			}
			if body["customerName"] != "Maria Silva" || body["customerPhone"] != "11999998888" {
				t.Fatalf("unexpected customer fields: %v", body)
			}
			if _, ok := body["customerEmail"]; ok {
				t.Fatalf("empty email must be omitted")
			}

			w.Write([]byte(`{"transactionId":"txB_1","pixCode":"00020101pixB","expiresAt":"2025-01-01T12:05:00Z"}`))
		}))
		defer srv.Close()

		gw := NewProviderBGateway(srv.URL)
		charge, err := gw.CreateCharge(context.Background(), providerBTestSettings, providerBTestRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.TransactionID != "txB_1" || charge.QRCode != "00020101pixB" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
		if charge.Gateway != entities.GatewayProviderB {
			t.Fatalf("unexpected gateway: %s", charge.Gateway)
		}
		want := time.Date(2025, 1, 1, 12, 5, 0, 0, time.UTC)
		if !charge.ExpiresAt.Equal(want) {
			t.Fatalf("unexpected expiration: %v", charge.ExpiresAt)
		}
	})

	t.Run("unparseable expiration falls back to local window", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"transactionId":"txB_2","pixCode":"qq","expiresAt":"in 5 minutes"}`))
		}))
		defer srv.Close()

		before := time.Now().UTC()
		gw := NewProviderBGateway(srv.URL)
		charge, err := gw.CreateCharge(context.Background(), providerBTestSettings, providerBTestRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.ExpiresAt.Before(before.Add(DefaultExpiration-time.Minute)) || charge.ExpiresAt.After(time.Now().UTC().Add(DefaultExpiration+time.Minute)) {
			t.Fatalf("expiration should be ~5min out, got %v", charge.ExpiresAt)
		}
	})

	t.Run("non-2xx is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream down`))
		}))
		defer srv.Close()

		gw := NewProviderBGateway(srv.URL)
		_, err := gw.CreateCharge(context.Background(), providerBTestSettings, providerBTestRequest())
		if err == nil || !strings.Contains(err.Error(), "status=502") {
			t.Fatalf("expected rejection error, got %v", err)
		}
	})

	t.Run("response missing transaction id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"pixCode":"qq"}`))
		}))
		defer srv.Close()

		gw := NewProviderBGateway(srv.URL)
		_, err := gw.CreateCharge(context.Background(), providerBTestSettings, providerBTestRequest())
		if err == nil || !strings.Contains(err.Error(), "missing transaction id or pix code") {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		}))
		defer srv.Close()

		gw := NewProviderBGateway(srv.URL)
		_, err := gw.CreateCharge(context.Background(), providerBTestSettings, providerBTestRequest())
		if err == nil || !strings.Contains(err.Error(), "decode response") {
			t.Fatalf("expected decode error, got %v", err)
		}
	})
}
