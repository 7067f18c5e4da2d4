package interfaces

import (
	"context"

	"quoteflow/internal/domain/entities"
)

// IAuditRecorder appends and reads immutable transition records.
//
// Transition commits carry their records inside the repository transaction; this
// standalone port exists for audit-only appends that have no entity write (e.g.
// the idempotent repeat-view entry) and for reading an entity's trail back.
type IAuditRecorder interface {
	Record(ctx context.Context, rec entities.TransitionRecord) error
	ListByEntityID(ctx context.Context, entityID string) ([]entities.TransitionRecord, error)
}
