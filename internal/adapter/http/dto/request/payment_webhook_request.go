package request

const PaymentEventSucceeded = "payment.succeeded"

// PaymentWebhookRequest is the payment provider's event envelope. The provider
// delivers at-least-once; unrecognized event types are acknowledged and ignored.
type PaymentWebhookRequest struct {
	Type string             `json:"type" binding:"required"`
	Data PaymentWebhookData `json:"data"`
}

type PaymentWebhookData struct {
	QuoteID          string `json:"quote_id"`
	TenantID         string `json:"tenant_id"`
	PaymentReference string `json:"payment_reference"`
}

func (r PaymentWebhookRequest) IsSuccessEvent() bool {
	return r.Type == PaymentEventSucceeded
}
