package entities

import "time"

// Entity type discriminators used on transition records and the status-flow API.
const (
	EntityTypeQuote = "quote"
	EntityTypeJob   = "job"
)

// Audit actions emitted by the status-flow engine and the portal sweeper.
// Job transitions use "job_<new status>".
const (
	ActionQuoteSent           = "quote_sent"
	ActionQuoteViewed         = "quote_viewed"
	ActionQuoteViewedMultiple = "quote_viewed_multiple"
	ActionQuoteAccepted       = "quote_accepted"
	ActionQuoteDeclined       = "quote_declined"
	ActionQuoteRejected       = "quote_rejected"
	ActionQuoteExpired        = "quote_expired"
	ActionQuoteDepositPaid    = "quote_deposit_paid"
	ActionQuoteReopened       = "quote_reopened"
	ActionPortalLocked        = "portal_locked"
)

// TransitionRecord is the immutable audit entry produced for every accepted
// transition. A nil ActorUserID denotes an automated (system-triggered) transition.
//
// Storage model (DynamoDB):
//   - PK: entity_id
//   - SK: id
type TransitionRecord struct {
	ID          string         `json:"id"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	TenantID    string         `json:"tenant_id"`
	ActorUserID *string        `json:"actor_user_id,omitempty"`
	Action      string         `json:"action"`
	OldStatus   string         `json:"old_status"`
	NewStatus   string         `json:"new_status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}
