package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/statusflow"
	"quoteflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidJobEntry   = errors.New("invalid job entry status")
	ErrInvalidJobQuoteID = errors.New("invalid job quote id")
	ErrJobAlreadyExists  = errors.New("job already exists for this quote")
)

// JobTransitionInput carries one requested job transition.
type JobTransitionInput struct {
	ToStatus           entities.JobStatus
	Authority          statusflow.Authority
	Reason             string
	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time
}

// IJobFlowUseCase is the job half of the status-flow engine.
type IJobFlowUseCase interface {
	CreateJob(ctx context.Context, j entities.Job) (entities.Job, error)
	GetJob(ctx context.Context, tenantID, jobID string) (entities.Job, error)
	TransitionJob(ctx context.Context, tenantID, jobID string, in JobTransitionInput) (entities.Job, error)
	ListJobTransitions(ctx context.Context, tenantID, jobID string) ([]entities.TransitionRecord, error)
}

type JobFlowUseCase struct {
	jobRepo interfaces.IJobRepository
	audit   interfaces.IAuditRecorder
}

var _ IJobFlowUseCase = (*JobFlowUseCase)(nil)

func NewJobFlowUseCase(jobRepo interfaces.IJobRepository, audit interfaces.IAuditRecorder) *JobFlowUseCase {
	return &JobFlowUseCase{jobRepo: jobRepo, audit: audit}
}

// CreateJob spawns the 1:1 child job for a paid quote. accepted and
// pending_deposit are the two equivalent entry statuses; pending_deposit is the
// default.
func (u *JobFlowUseCase) CreateJob(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.TenantID = strings.TrimSpace(j.TenantID)
	if j.TenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	j.QuoteID = strings.TrimSpace(j.QuoteID)
	if j.QuoteID == "" {
		return entities.Job{}, ErrInvalidJobQuoteID
	}
	switch j.Status {
	case "":
		j.Status = entities.JobStatusPendingDeposit
	case entities.JobStatusAccepted, entities.JobStatusPendingDeposit:
	default:
		return entities.Job{}, ErrInvalidJobEntry
	}

	// Enforce: one job per quote.
	if existing, err := u.jobRepo.GetByQuoteID(ctx, j.TenantID, j.QuoteID); err != nil {
		return entities.Job{}, err
	} else if existing.ID != "" {
		return entities.Job{}, ErrJobAlreadyExists
	}

	now := time.Now().UTC()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	j.CreatedAt = now
	j.UpdatedAt = now
	return u.jobRepo.Create(ctx, j)
}

func (u *JobFlowUseCase) GetJob(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	return u.loadJob(ctx, tenantID, jobID)
}

// TransitionJob validates and applies one job transition. Admin-only targets
// (scheduled, in_progress, completed, closed) and the terminal override are
// enforced by the statusflow tables before any write.
func (u *JobFlowUseCase) TransitionJob(ctx context.Context, tenantID, jobID string, in JobTransitionInput) (entities.Job, error) {
	j, err := u.loadJob(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	return u.applyJobTransition(ctx, j, in, true)
}

func (u *JobFlowUseCase) applyJobTransition(ctx context.Context, j entities.Job, in JobTransitionInput, retryOnStale bool) (entities.Job, error) {
	if err := statusflow.ValidateJobTransition(j.Status, in.ToStatus, in.Authority); err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	updated := statusflow.ApplyJobEffects(j, in.ToStatus, statusflow.JobParams{
		Reason:             in.Reason,
		ScheduledStartDate: in.ScheduledStartDate,
		ScheduledEndDate:   in.ScheduledEndDate,
	}, now)

	meta := map[string]any{}
	if in.Reason != "" {
		meta["reason"] = in.Reason
	}
	if in.ScheduledStartDate != nil {
		meta["scheduled_start_date"] = in.ScheduledStartDate.Format(time.RFC3339)
	}
	if in.ScheduledEndDate != nil {
		meta["scheduled_end_date"] = in.ScheduledEndDate.Format(time.RFC3339)
	}
	rec := newTransitionRecord(entities.EntityTypeJob, j.ID, j.TenantID, in.Authority,
		statusflow.JobAction(in.ToStatus), string(j.Status), string(in.ToStatus), meta, now)

	committed, err := u.jobRepo.CommitTransition(ctx, interfaces.JobTransitionWrite{
		Job:            updated,
		ExpectedStatus: j.Status,
		Records:        []entities.TransitionRecord{rec},
	})
	if errors.Is(err, interfaces.ErrStaleStatus) && retryOnStale {
		log.Printf("[flow][usecase] stale status on commit job_id=%s from=%s to=%s, re-reading", j.ID, j.Status, in.ToStatus)
		fresh, lerr := u.loadJob(ctx, j.TenantID, j.ID)
		if lerr != nil {
			return entities.Job{}, lerr
		}
		return u.applyJobTransition(ctx, fresh, in, false)
	}
	if err != nil {
		log.Printf("[flow][usecase] transition commit failed job_id=%s from=%s to=%s err=%v", j.ID, j.Status, in.ToStatus, err)
		return entities.Job{}, err
	}
	log.Printf("[flow][usecase] transition applied job_id=%s from=%s to=%s", j.ID, j.Status, in.ToStatus)
	return committed, nil
}

// ListJobTransitions returns the job's audit trail, oldest first.
func (u *JobFlowUseCase) ListJobTransitions(ctx context.Context, tenantID, jobID string) ([]entities.TransitionRecord, error) {
	j, err := u.loadJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	return u.audit.ListByEntityID(ctx, j.ID)
}

func (u *JobFlowUseCase) loadJob(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.jobRepo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}
