package entities

// GatewaySettings holds the store-level PIX gateway configuration: one
// opaque credential set per provider plus the provider that should be
// attempted first. It is owned by the back-office configuration flow and
// read-only for the payments service.
//
// A provider whose credential fields are empty is considered unconfigured
// and must be skipped by the orchestrator without being attempted.

type GatewaySettings struct {
	ProviderAPublicKey string `json:"provider_a_public_key"`
	ProviderASecretKey string `json:"provider_a_secret_key"`

	ProviderBAPIKey string `json:"provider_b_api_key"`

	MercadoPagoAccessToken string `json:"mercadopago_access_token"`

	// PrimaryGateway selects the provider attempted first. Empty or
	// unrecognized values fall back to the default registration order.
	PrimaryGateway PaymentGateway `json:"primary_gateway"`
}
