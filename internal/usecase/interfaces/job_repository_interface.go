package interfaces

import (
	"context"

	"quoteflow/internal/domain/entities"
)

// JobTransitionWrite is one atomic job transition commit, conditioned on the
// status the engine validated against.
type JobTransitionWrite struct {
	Job            entities.Job
	ExpectedStatus entities.JobStatus
	Records        []entities.TransitionRecord
}

// IJobRepository abstracts durable storage for jobs. A job is the 1:1 child of a
// quote, so GetByQuoteID resolves at most one record.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Job, error)
	GetByQuoteID(ctx context.Context, tenantID, quoteID string) (entities.Job, error)
	CommitTransition(ctx context.Context, w JobTransitionWrite) (entities.Job, error)
}
