package statusflow

import (
	"time"

	"quoteflow/internal/domain/entities"
)

// QuoteParams carries the optional inputs a quote transition may consume.
type QuoteParams struct {
	Reason        string
	PaymentMethod string
	TransactionID string
}

// JobParams carries the optional inputs a job transition may consume.
type JobParams struct {
	Reason             string
	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time
	// Note is appended to the job's contractor notes (used by the portal sweeper's
	// on_hold transition).
	Note string
}

type quoteEffect func(q *entities.Quote, p QuoteParams, now time.Time)
type jobEffect func(j *entities.Job, p JobParams, now time.Time)

// quoteEffects maps a target status to its side-effect writes. Co-indexed with
// quoteTransitions but kept separate so legality and effects test independently.
// Lifecycle timestamps are written at most once.
var quoteEffects = map[entities.QuoteStatus]quoteEffect{
	entities.QuoteStatusSent: func(q *entities.Quote, _ QuoteParams, now time.Time) {
		if q.SentAt == nil {
			q.SentAt = &now
		}
	},
	entities.QuoteStatusViewed: func(q *entities.Quote, _ QuoteParams, now time.Time) {
		if q.ViewedAt == nil {
			q.ViewedAt = &now
		}
	},
	entities.QuoteStatusAccepted: func(q *entities.Quote, _ QuoteParams, now time.Time) {
		if q.AcceptedAt == nil {
			q.AcceptedAt = &now
		}
		// ApprovedAt duplicates AcceptedAt for legacy consumers.
		if q.ApprovedAt == nil {
			q.ApprovedAt = &now
		}
	},
	entities.QuoteStatusDeclined: declineQuote,
	entities.QuoteStatusRejected: declineQuote,
	entities.QuoteStatusDepositPaid: func(q *entities.Quote, p QuoteParams, now time.Time) {
		q.DepositVerified = true
		q.DepositVerifiedAt = &now
		if p.PaymentMethod != "" {
			q.DepositPaymentMethod = p.PaymentMethod
		}
		if p.TransactionID != "" {
			q.DepositTransactionID = p.TransactionID
		}
	},
	// expired: status write only.
}

func declineQuote(q *entities.Quote, p QuoteParams, now time.Time) {
	if q.DeclinedAt == nil {
		q.DeclinedAt = &now
	}
	if p.Reason != "" {
		q.DeclineReason = p.Reason
	}
}

// jobEffects maps a target job status to its side-effect writes.
var jobEffects = map[entities.JobStatus]jobEffect{
	entities.JobStatusDepositPaid: func(j *entities.Job, _ JobParams, now time.Time) {
		j.DepositPaid = true
		if j.DepositPaidAt == nil {
			j.DepositPaidAt = &now
		}
	},
	entities.JobStatusScheduled: func(j *entities.Job, p JobParams, _ time.Time) {
		if p.ScheduledStartDate != nil {
			j.ScheduledStartDate = p.ScheduledStartDate
		}
		if p.ScheduledEndDate != nil {
			j.ScheduledEndDate = p.ScheduledEndDate
		}
	},
	entities.JobStatusInProgress: func(j *entities.Job, _ JobParams, now time.Time) {
		if j.ActualStartDate == nil {
			j.ActualStartDate = &now
		}
	},
	entities.JobStatusCompleted: func(j *entities.Job, _ JobParams, now time.Time) {
		if j.ActualEndDate == nil {
			j.ActualEndDate = &now
		}
	},
	entities.JobStatusOnHold: func(j *entities.Job, p JobParams, _ time.Time) {
		if p.Note != "" {
			j.ContractorNotes = AppendNote(j.ContractorNotes, p.Note)
		}
	},
	// paused: status write only; the reason travels on the audit record.
}

// ApplyQuoteEffects returns a copy of q with the status written and the target
// status's side effects applied.
func ApplyQuoteEffects(q entities.Quote, to entities.QuoteStatus, p QuoteParams, now time.Time) entities.Quote {
	q.Status = to
	q.UpdatedAt = now
	if fn := quoteEffects[to]; fn != nil {
		fn(&q, p, now)
	}
	return q
}

// ApplyJobEffects returns a copy of j with the status written and the target
// status's side effects applied.
func ApplyJobEffects(j entities.Job, to entities.JobStatus, p JobParams, now time.Time) entities.Job {
	j.Status = to
	j.UpdatedAt = now
	if fn := jobEffects[to]; fn != nil {
		fn(&j, p, now)
	}
	return j
}

// AppendNote appends a line to an existing notes blob.
func AppendNote(notes, note string) string {
	if notes == "" {
		return note
	}
	return notes + "\n" + note
}

// QuoteAction returns the audit action name for a quote transition target.
func QuoteAction(to entities.QuoteStatus) string {
	switch to {
	case entities.QuoteStatusSent:
		return entities.ActionQuoteSent
	case entities.QuoteStatusViewed:
		return entities.ActionQuoteViewed
	case entities.QuoteStatusAccepted:
		return entities.ActionQuoteAccepted
	case entities.QuoteStatusDeclined:
		return entities.ActionQuoteDeclined
	case entities.QuoteStatusRejected:
		return entities.ActionQuoteRejected
	case entities.QuoteStatusExpired:
		return entities.ActionQuoteExpired
	case entities.QuoteStatusDepositPaid:
		return entities.ActionQuoteDepositPaid
	default:
		return "quote_" + string(to)
	}
}

// JobAction returns the audit action name for a job transition target.
func JobAction(to entities.JobStatus) string {
	return "job_" + string(to)
}
