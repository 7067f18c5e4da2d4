// Package statusflow contains the pure status-flow rules for quotes and jobs:
// the transition tables, the authority model, and the per-status side effects.
// Nothing here touches storage; validation takes a current status and an authority
// and returns a taxonomy error or nil.
package statusflow

import (
	"quoteflow/internal/domain/entities"
)

// quoteTransitions is the directed edge set for the quote machine. rejected,
// declined and expired are listed with no targets; leaving them is the admin-only
// reopen exception below, not a table edge.
var quoteTransitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusDraft:       {entities.QuoteStatusSent},
	entities.QuoteStatusSent:        {entities.QuoteStatusViewed, entities.QuoteStatusDeclined, entities.QuoteStatusExpired},
	entities.QuoteStatusViewed:      {entities.QuoteStatusAccepted, entities.QuoteStatusDeclined, entities.QuoteStatusExpired},
	entities.QuoteStatusAccepted:    {entities.QuoteStatusDepositPaid, entities.QuoteStatusDeclined},
	entities.QuoteStatusRejected:    {},
	entities.QuoteStatusDeclined:    {},
	entities.QuoteStatusExpired:     {},
	entities.QuoteStatusDepositPaid: {},
}

// quoteReopenSources are the quote statuses an admin may reopen back to sent.
var quoteReopenSources = map[entities.QuoteStatus]bool{
	entities.QuoteStatusRejected: true,
	entities.QuoteStatusDeclined: true,
	entities.QuoteStatusExpired:  true,
}

// jobTransitions is the directed edge set for the job machine. No declared edge
// targets invoiced; that gap is preserved as-is from the product rules.
var jobTransitions = map[entities.JobStatus][]entities.JobStatus{
	entities.JobStatusAccepted:           {entities.JobStatusDepositPaid},
	entities.JobStatusPendingDeposit:     {entities.JobStatusDepositPaid},
	entities.JobStatusDepositPaid:        {entities.JobStatusScheduled, entities.JobStatusSelectionsPending},
	entities.JobStatusSelectionsPending:  {entities.JobStatusSelectionsComplete, entities.JobStatusScheduled},
	entities.JobStatusSelectionsComplete: {entities.JobStatusScheduled},
	entities.JobStatusScheduled:          {entities.JobStatusInProgress},
	entities.JobStatusInProgress:         {entities.JobStatusCompleted, entities.JobStatusPaused},
	entities.JobStatusPaused:             {entities.JobStatusInProgress},
	entities.JobStatusCompleted:          {entities.JobStatusClosed, entities.JobStatusPaid},
	entities.JobStatusInvoiced:           {entities.JobStatusPaid, entities.JobStatusClosed},
	entities.JobStatusPaid:               {entities.JobStatusClosed},
	entities.JobStatusClosed:             {},
	entities.JobStatusCanceled:           {},
	entities.JobStatusOnHold:             {entities.JobStatusScheduled, entities.JobStatusDepositPaid},
}

// jobAdminOverrideSources are terminal job statuses an admin may force out of,
// to any target.
var jobAdminOverrideSources = map[entities.JobStatus]bool{
	entities.JobStatusClosed:   true,
	entities.JobStatusCanceled: true,
}

// adminOnlyJobTargets require admin authority even when the table permits the edge.
var adminOnlyJobTargets = map[entities.JobStatus]bool{
	entities.JobStatusScheduled:  true,
	entities.JobStatusInProgress: true,
	entities.JobStatusCompleted:  true,
	entities.JobStatusClosed:     true,
}

// allJobStatuses enumerates every job status, used for the admin override's
// allowed set.
var allJobStatuses = []entities.JobStatus{
	entities.JobStatusAccepted,
	entities.JobStatusPendingDeposit,
	entities.JobStatusDepositPaid,
	entities.JobStatusSelectionsPending,
	entities.JobStatusSelectionsComplete,
	entities.JobStatusScheduled,
	entities.JobStatusInProgress,
	entities.JobStatusPaused,
	entities.JobStatusCompleted,
	entities.JobStatusInvoiced,
	entities.JobStatusPaid,
	entities.JobStatusClosed,
	entities.JobStatusCanceled,
	entities.JobStatusOnHold,
}

// ValidateQuoteTransition decides whether from -> to is legal for the caller.
// Returns nil, *InvalidTransitionError or *RequiresAdminError.
func ValidateQuoteTransition(from, to entities.QuoteStatus, auth Authority) error {
	if quoteReopenSources[from] {
		if to == entities.QuoteStatusSent && auth.IsAdmin() {
			return nil
		}
		if to == entities.QuoteStatusSent {
			return &RequiresAdminError{EntityType: entities.EntityTypeQuote, From: string(from), To: string(to)}
		}
		return &InvalidTransitionError{
			EntityType: entities.EntityTypeQuote,
			From:       string(from),
			To:         string(to),
			Allowed:    quoteStatusStrings(AllowedQuoteStatuses(from, auth)),
		}
	}

	for _, allowed := range quoteTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{
		EntityType: entities.EntityTypeQuote,
		From:       string(from),
		To:         string(to),
		Allowed:    quoteStatusStrings(AllowedQuoteStatuses(from, auth)),
	}
}

// ValidateJobTransition decides whether from -> to is legal for the caller.
func ValidateJobTransition(from, to entities.JobStatus, auth Authority) error {
	if jobAdminOverrideSources[from] {
		if auth.IsAdmin() {
			return nil
		}
		return &InvalidTransitionError{
			EntityType: entities.EntityTypeJob,
			From:       string(from),
			To:         string(to),
			Allowed:    nil,
		}
	}

	inTable := false
	for _, allowed := range jobTransitions[from] {
		if allowed == to {
			inTable = true
			break
		}
	}
	if !inTable {
		return &InvalidTransitionError{
			EntityType: entities.EntityTypeJob,
			From:       string(from),
			To:         string(to),
			Allowed:    jobStatusStrings(AllowedJobStatuses(from, auth)),
		}
	}
	if adminOnlyJobTargets[to] && !auth.IsAdmin() {
		return &RequiresAdminError{EntityType: entities.EntityTypeJob, From: string(from), To: string(to)}
	}
	return nil
}

// AllowedQuoteStatuses returns the legal next statuses for the caller's authority,
// including the reopen exception.
func AllowedQuoteStatuses(from entities.QuoteStatus, auth Authority) []entities.QuoteStatus {
	if quoteReopenSources[from] {
		if auth.IsAdmin() {
			return []entities.QuoteStatus{entities.QuoteStatusSent}
		}
		return nil
	}
	table := quoteTransitions[from]
	out := make([]entities.QuoteStatus, len(table))
	copy(out, table)
	return out
}

// AllowedJobStatuses returns the legal next statuses for the caller's authority,
// including the terminal admin override and admin-only target filtering.
func AllowedJobStatuses(from entities.JobStatus, auth Authority) []entities.JobStatus {
	if jobAdminOverrideSources[from] {
		if !auth.IsAdmin() {
			return nil
		}
		out := make([]entities.JobStatus, 0, len(allJobStatuses)-1)
		for _, s := range allJobStatuses {
			if s != from {
				out = append(out, s)
			}
		}
		return out
	}
	var out []entities.JobStatus
	for _, s := range jobTransitions[from] {
		if adminOnlyJobTargets[s] && !auth.IsAdmin() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AllowedNextStatuses is the entity-type generic helper backing the status-flow
// query endpoint. Unknown entity types yield nil.
func AllowedNextStatuses(entityType, status string, auth Authority) []string {
	switch entityType {
	case entities.EntityTypeQuote:
		return quoteStatusStrings(AllowedQuoteStatuses(entities.QuoteStatus(status), auth))
	case entities.EntityTypeJob:
		return jobStatusStrings(AllowedJobStatuses(entities.JobStatus(status), auth))
	default:
		return nil
	}
}

func quoteStatusStrings(in []entities.QuoteStatus) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func jobStatusStrings(in []entities.JobStatus) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
