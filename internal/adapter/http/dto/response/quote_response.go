package response

import (
	"time"

	"quoteflow/internal/domain/entities"
)

type QuoteResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Number   string `json:"number"`
	Status   string `json:"status"`

	CustomerEmail   string `json:"customer_email,omitempty"`
	ContractorEmail string `json:"contractor_email,omitempty"`

	SentAt        *time.Time `json:"sent_at,omitempty"`
	ViewedAt      *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
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

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                   q.ID,
		TenantID:             q.TenantID,
		Number:               q.Number,
		Status:               string(q.Status),
		CustomerEmail:        q.CustomerEmail,
		ContractorEmail:      q.ContractorEmail,
		SentAt:               q.SentAt,
		ViewedAt:             q.ViewedAt,
		AcceptedAt:           q.AcceptedAt,
		ApprovedAt:           q.ApprovedAt,
		DeclinedAt:           q.DeclinedAt,
		DeclineReason:        q.DeclineReason,
		DepositVerified:      q.DepositVerified,
		DepositVerifiedAt:    q.DepositVerifiedAt,
		DepositPaymentMethod: q.DepositPaymentMethod,
		DepositTransactionID: q.DepositTransactionID,
		PortalOpen:           q.PortalOpen,
		PortalOpenedAt:       q.PortalOpenedAt,
		PortalClosedAt:       q.PortalClosedAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}
