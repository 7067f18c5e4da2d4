package entities

import "time"

// JobStatus represents the lifecycle of a job spawned from a paid quote.
//
// closed and canceled are terminal except under an explicit admin override.
// invoiced exists in the status set but no declared edge reaches it; the transition
// tables preserve that as-is.

type JobStatus string

const (
	JobStatusAccepted           JobStatus = "accepted"
	JobStatusPendingDeposit     JobStatus = "pending_deposit"
	JobStatusDepositPaid        JobStatus = "deposit_paid"
	JobStatusSelectionsPending  JobStatus = "selections_pending"
	JobStatusSelectionsComplete JobStatus = "selections_complete"
	JobStatusScheduled          JobStatus = "scheduled"
	JobStatusInProgress         JobStatus = "in_progress"
	JobStatusPaused             JobStatus = "paused"
	JobStatusCompleted          JobStatus = "completed"
	JobStatusInvoiced           JobStatus = "invoiced"
	JobStatusPaid               JobStatus = "paid"
	JobStatusClosed             JobStatus = "closed"
	JobStatusCanceled           JobStatus = "canceled"
	JobStatusOnHold             JobStatus = "on_hold"
)

// Job is the post-sale work entity, 1:1 child of a Quote.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//   - quote lookups resolve via the quote_id attribute (one job per quote)
//
// Scheduling fields are written only by admin-authorized transitions.
// CustomerSelectionsComplete is read by the expiry sweeper, never written here.
type Job struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	QuoteID  string `json:"quote_id"`

	Status JobStatus `json:"status"`

	ScheduledStartDate *time.Time `json:"scheduled_start_date,omitempty"`
	ScheduledEndDate   *time.Time `json:"scheduled_end_date,omitempty"`
	ActualStartDate    *time.Time `json:"actual_start_date,omitempty"`
	ActualEndDate      *time.Time `json:"actual_end_date,omitempty"`

	DepositPaid   bool       `json:"deposit_paid"`
	DepositPaidAt *time.Time `json:"deposit_paid_at,omitempty"`

	CustomerSelectionsComplete bool   `json:"customer_selections_complete"`
	ContractorNotes            string `json:"contractor_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
