package request

import "strings"

// CreateQuoteRequest creates a draft quote. Pricing/line items live in the
// quoting service; this service only needs the flow-relevant fields.
type CreateQuoteRequest struct {
	Number          string `json:"number"`
	CustomerEmail   string `json:"customer_email"`
	ContractorEmail string `json:"contractor_email"`
}

// QuoteTransitionRequest asks the engine for one status transition.
type QuoteTransitionRequest struct {
	ToStatus         string `json:"to_status" binding:"required"`
	Reason           string `json:"reason"`
	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference"`
}

func (r QuoteTransitionRequest) ResolveToStatus() string {
	return strings.TrimSpace(strings.ToLower(r.ToStatus))
}

// ManualDepositRequest is the admin-driven deposit confirmation payload.
type ManualDepositRequest struct {
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// ReopenQuoteRequest reopens a terminal quote back to sent.
type ReopenQuoteRequest struct {
	Reason string `json:"reason"`
}
