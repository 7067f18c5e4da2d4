package entities

import "time"

// QuoteStatus represents the lifecycle of a customer quote.
//
// Domain notes:
//   - quoteflow is the source of truth for quote/job status; nothing else writes it.
//   - Transitions are validated by the statusflow tables before any write.
//   - rejected/declined/expired only leave via an admin reopen back to sent.
//   - deposit_paid is terminal for the quote; the derived job takes over from there.

type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusSent        QuoteStatus = "sent"
	QuoteStatusViewed      QuoteStatus = "viewed"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusDeclined    QuoteStatus = "declined"
	QuoteStatusExpired     QuoteStatus = "expired"
	QuoteStatusDepositPaid QuoteStatus = "deposit_paid"
)

// Quote is a priced proposal sent to a customer, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Lifecycle timestamps are set at most once, by the transition that reaches the
// matching status. PortalClosedAt doubles as a pre-set deadline while the portal is
// still open; the expiry sweeper compares it against now and must not overwrite it.
type Quote struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Number   string `json:"number"`

	Status QuoteStatus `json:"status"`

	CustomerEmail   string `json:"customer_email"`
	ContractorEmail string `json:"contractor_email"`

	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	// ApprovedAt mirrors AcceptedAt for consumers of the legacy field name.
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	DeclinedAt    *time.Time `json:"declined_at,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`

	DepositVerified      bool       `json:"deposit_verified"`
	DepositVerifiedAt    *time.Time `json:"deposit_verified_at,omitempty"`
	DepositPaymentMethod string     `json:"deposit_payment_method,omitempty"`
	DepositTransactionID string     `json:"deposit_transaction_id,omitempty"`

	PortalOpen     bool       `json:"portal_open"`
	PortalOpenedAt *time.Time `json:"portal_opened_at,omitempty"`
	PortalClosedAt *time.Time `json:"portal_closed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
