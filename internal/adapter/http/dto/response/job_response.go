package response

import (
	"time"

	"quoteflow/internal/domain/entities"
)

type JobResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	QuoteID  string `json:"quote_id"`
	Status   string `json:"status"`

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

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                         j.ID,
		TenantID:                   j.TenantID,
		QuoteID:                    j.QuoteID,
		Status:                     string(j.Status),
		ScheduledStartDate:         j.ScheduledStartDate,
		ScheduledEndDate:           j.ScheduledEndDate,
		ActualStartDate:            j.ActualStartDate,
		ActualEndDate:              j.ActualEndDate,
		DepositPaid:                j.DepositPaid,
		DepositPaidAt:              j.DepositPaidAt,
		CustomerSelectionsComplete: j.CustomerSelectionsComplete,
		ContractorNotes:            j.ContractorNotes,
		CreatedAt:                  j.CreatedAt,
		UpdatedAt:                  j.UpdatedAt,
	}
}

// AllowedStatusesResponse answers "what can this entity do next".
type AllowedStatusesResponse struct {
	EntityType string   `json:"entity_type"`
	Status     string   `json:"status"`
	Admin      bool     `json:"admin"`
	Allowed    []string `json:"allowed"`
}
