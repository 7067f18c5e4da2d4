package response

import (
	"time"

	"quoteflow/internal/domain/entities"
)

type TransitionRecordResponse struct {
	ID          string         `json:"id"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	ActorUserID *string        `json:"actor_user_id,omitempty"`
	Action      string         `json:"action"`
	OldStatus   string         `json:"old_status"`
	NewStatus   string         `json:"new_status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// FromTransitionRecords preserves the order it is given (oldest first) and
// always yields a non-nil slice so an empty trail renders as [].
func FromTransitionRecords(records []entities.TransitionRecord) []TransitionRecordResponse {
	out := make([]TransitionRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, TransitionRecordResponse{
			ID:          rec.ID,
			EntityType:  rec.EntityType,
			EntityID:    rec.EntityID,
			ActorUserID: rec.ActorUserID,
			Action:      rec.Action,
			OldStatus:   rec.OldStatus,
			NewStatus:   rec.NewStatus,
			Metadata:    rec.Metadata,
			Timestamp:   rec.Timestamp,
		})
	}
	return out
}
