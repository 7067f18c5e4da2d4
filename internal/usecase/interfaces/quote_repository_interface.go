package interfaces

import (
	"context"
	"errors"
	"time"

	"quoteflow/internal/domain/entities"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mock_interfaces quoteflow/internal/usecase/interfaces IQuoteRepository,IJobRepository,IAuditRecorder,INotificationSender

// ErrStaleStatus is returned by transition commits when the entity's persisted
// status no longer matches the status the caller validated against. The engine
// re-reads and re-decides; it never surfaces this error to HTTP callers directly.
var ErrStaleStatus = errors.New("entity status changed since read")

// QuoteTransitionWrite is one atomic transition commit: the fully updated quote,
// the status the update is conditioned on, and the audit record(s) that must land
// in the same transaction.
type QuoteTransitionWrite struct {
	Quote          entities.Quote
	ExpectedStatus entities.QuoteStatus
	Records        []entities.TransitionRecord
}

// PortalLockWrite is the sweeper's per-quote transaction: the quote with its
// portal closed (conditioned on portal_open still being true), an optional
// dependent-job hold conditioned on the job status the sweeper read, and the
// audit records for the whole unit.
type PortalLockWrite struct {
	Quote             entities.Quote
	Job               *entities.Job
	JobExpectedStatus entities.JobStatus
	Records           []entities.TransitionRecord
}

// IQuoteRepository abstracts durable storage for quotes.
//
// Lookups follow the zero-value-means-absent convention: GetByID returns an empty
// Quote and a nil error when nothing matches. Commit methods must write the entity
// fields and the audit records atomically and return ErrStaleStatus when the
// optimistic condition fails.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	CommitTransition(ctx context.Context, w QuoteTransitionWrite) (entities.Quote, error)
	ListExpiredPortals(ctx context.Context, now time.Time) ([]entities.Quote, error)
	CommitPortalLock(ctx context.Context, w PortalLockWrite) error
}
