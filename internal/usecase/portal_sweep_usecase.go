package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/statusflow"
	"quoteflow/internal/usecase/interfaces"
)

// SweepOptions controls one sweep run. DryRun performs every read and decision
// but suppresses all writes and notifications.
type SweepOptions struct {
	DryRun bool
}

// SweepError is one quote's failure inside a batch.
type SweepError struct {
	QuoteID string `json:"quote_id"`
	Reason  string `json:"reason"`
}

// SweepSummary reports one sweep run.
type SweepSummary struct {
	Checked     int          `json:"checked"`
	Locked      int          `json:"locked"`
	JobsFlagged int          `json:"jobs_flagged"`
	DryRun      bool         `json:"dry_run"`
	Errors      []SweepError `json:"errors"`
}

// IPortalSweepUseCase is the scheduled portal-expiry sweep.
type IPortalSweepUseCase interface {
	SweepExpiredPortals(ctx context.Context, opts SweepOptions) (SweepSummary, error)
}

// sweepActionableJobStatuses are the job statuses still waiting on customer
// input; only these are forced to on_hold when the portal expires.
var sweepActionableJobStatuses = map[entities.JobStatus]bool{
	entities.JobStatusDepositPaid:       true,
	entities.JobStatusSelectionsPending: true,
}

type PortalSweepUseCase struct {
	quoteRepo interfaces.IQuoteRepository
	jobRepo   interfaces.IJobRepository
	notifier  interfaces.INotificationSender
}

var _ IPortalSweepUseCase = (*PortalSweepUseCase)(nil)

func NewPortalSweepUseCase(quoteRepo interfaces.IQuoteRepository, jobRepo interfaces.IJobRepository, notifier interfaces.INotificationSender) *PortalSweepUseCase {
	return &PortalSweepUseCase{quoteRepo: quoteRepo, jobRepo: jobRepo, notifier: notifier}
}

// SweepExpiredPortals locks every passively-expired portal (portal still open,
// pre-set closing deadline in the past) and holds the dependent job when it is
// still waiting on customer selections. Each quote is its own transaction; one
// quote's failure is recorded and the batch continues.
func (u *PortalSweepUseCase) SweepExpiredPortals(ctx context.Context, opts SweepOptions) (SweepSummary, error) {
	now := time.Now().UTC()
	summary := SweepSummary{DryRun: opts.DryRun}

	quotes, err := u.quoteRepo.ListExpiredPortals(ctx, now)
	if err != nil {
		log.Printf("[sweep][usecase] expired-portal query failed err=%v", err)
		return summary, err
	}
	log.Printf("[sweep][usecase] sweep start candidates=%d dry_run=%v", len(quotes), opts.DryRun)

	for _, q := range quotes {
		summary.Checked++
		locked, flagged, err := u.sweepQuote(ctx, q, now, opts.DryRun)
		if err != nil {
			log.Printf("[sweep][usecase] quote sweep failed quote_id=%s err=%v", q.ID, err)
			summary.Errors = append(summary.Errors, SweepError{QuoteID: q.ID, Reason: err.Error()})
			continue
		}
		if locked {
			summary.Locked++
		}
		if flagged {
			summary.JobsFlagged++
		}
	}

	log.Printf("[sweep][usecase] sweep done checked=%d locked=%d jobs_flagged=%d errors=%d dry_run=%v",
		summary.Checked, summary.Locked, summary.JobsFlagged, len(summary.Errors), opts.DryRun)
	return summary, nil
}

func (u *PortalSweepUseCase) sweepQuote(ctx context.Context, q entities.Quote, now time.Time, dryRun bool) (locked, flagged bool, err error) {
	job, err := u.jobRepo.GetByQuoteID(ctx, q.TenantID, q.ID)
	if err != nil {
		return false, false, err
	}

	// Lock the portal but keep the recorded deadline: PortalClosedAt was pre-set
	// and must not be overwritten with the sweep time.
	updatedQuote := q
	updatedQuote.PortalOpen = false
	updatedQuote.UpdatedAt = now

	w := interfaces.PortalLockWrite{Quote: updatedQuote}

	deadline := ""
	if q.PortalClosedAt != nil {
		deadline = q.PortalClosedAt.UTC().Format(time.RFC3339)
	}
	w.Records = append(w.Records, newTransitionRecord(entities.EntityTypeQuote, q.ID, q.TenantID,
		statusflow.Automated(), entities.ActionPortalLocked, string(q.Status), string(q.Status),
		map[string]any{"portal_closed_at": deadline}, now))

	if job.ID != "" && !job.CustomerSelectionsComplete && sweepActionableJobStatuses[job.Status] {
		note := fmt.Sprintf("Customer portal expired %s; job placed on hold pending selections.", deadline)
		held := statusflow.ApplyJobEffects(job, entities.JobStatusOnHold, statusflow.JobParams{Note: note}, now)
		w.Job = &held
		w.JobExpectedStatus = job.Status
		w.Records = append(w.Records, newTransitionRecord(entities.EntityTypeJob, job.ID, job.TenantID,
			statusflow.Automated(), statusflow.JobAction(entities.JobStatusOnHold), string(job.Status),
			string(entities.JobStatusOnHold), map[string]any{"reason": "portal_expired"}, now))
	}

	if dryRun {
		return true, w.Job != nil, nil
	}

	if err := u.quoteRepo.CommitPortalLock(ctx, w); err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			// The portal was closed or the job moved on while we were deciding;
			// nothing was written, nothing to report.
			log.Printf("[sweep][usecase] quote changed mid-sweep, skipping quote_id=%s", q.ID)
			return false, false, nil
		}
		return false, false, err
	}
	log.Printf("[sweep][usecase] portal locked quote_id=%s job_flagged=%v", q.ID, w.Job != nil)

	if u.notifier != nil && q.ContractorEmail != "" {
		if nerr := u.notifier.Notify(ctx, q.ContractorEmail, "portal_locked", map[string]any{
			"quote_number": q.Number,
			"job_held":     w.Job != nil,
		}); nerr != nil {
			log.Printf("[sweep][usecase] contractor notification failed quote_id=%s err=%v", q.ID, nerr)
		}
	}
	return true, w.Job != nil, nil
}
