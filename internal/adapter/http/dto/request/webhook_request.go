package request

// PixWebhookRequest is the asynchronous status notification a provider
// posts back after charge creation. Status vocabulary is the provider's
// own; mapping to internal statuses happens in the webhook use case.

type PixWebhookRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}
