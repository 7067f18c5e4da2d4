package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/usecase/interfaces"
	mock_interfaces "quoteflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSweepMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockINotificationSender) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIQuoteRepository(ctrl),
		mock_interfaces.NewMockIJobRepository(ctrl),
		mock_interfaces.NewMockINotificationSender(ctrl)
}

func expiredQuote(id string, closedAt time.Time) entities.Quote {
	return entities.Quote{
		ID:             id,
		TenantID:       "t-1",
		Number:         "Q-" + id,
		Status:         entities.QuoteStatusDepositPaid,
		PortalOpen:     true,
		PortalClosedAt: &closedAt,
	}
}

func TestPortalSweepUseCase_SweepExpiredPortals(t *testing.T) {
	closedAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("locks portal and holds job waiting on selections", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		q := expiredQuote("q-1", closedAt)
		q.ContractorEmail = "pro@example.com"
		job := entities.Job{ID: "j-1", TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusDepositPaid, ContractorNotes: "gate code 4411"}

		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return([]entities.Quote{q}, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(job, nil)
		quoteRepo.EXPECT().CommitPortalLock(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.PortalLockWrite) error {
				if w.Quote.PortalOpen {
					t.Fatal("portal must be closed")
				}
				if !w.Quote.PortalClosedAt.Equal(closedAt) {
					t.Fatalf("pre-set deadline must survive the sweep, got %v", w.Quote.PortalClosedAt)
				}
				if w.Job == nil || w.Job.Status != entities.JobStatusOnHold {
					t.Fatalf("expected job held, got %+v", w.Job)
				}
				if w.JobExpectedStatus != entities.JobStatusDepositPaid {
					t.Fatalf("unexpected job condition: %s", w.JobExpectedStatus)
				}
				if !strings.HasPrefix(w.Job.ContractorNotes, "gate code 4411\n") {
					t.Fatalf("hold note must append, not replace: %q", w.Job.ContractorNotes)
				}
				if len(w.Records) != 2 {
					t.Fatalf("expected portal and job records, got %d", len(w.Records))
				}
				if w.Records[0].Action != entities.ActionPortalLocked || w.Records[1].Action != "job_on_hold" {
					t.Fatalf("unexpected actions: %s, %s", w.Records[0].Action, w.Records[1].Action)
				}
				if w.Records[1].Metadata["reason"] != "portal_expired" {
					t.Fatalf("unexpected job metadata: %+v", w.Records[1].Metadata)
				}
				if w.Records[0].ActorUserID != nil {
					t.Fatalf("sweep records must have nil actor, got %v", w.Records[0].ActorUserID)
				}
				return nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), "pro@example.com", "portal_locked", gomock.Any()).Return(nil)

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Checked != 1 || summary.Locked != 1 || summary.JobsFlagged != 1 || len(summary.Errors) != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("job with selections complete keeps its status", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		q := expiredQuote("q-1", closedAt)
		job := entities.Job{ID: "j-1", TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusDepositPaid, CustomerSelectionsComplete: true}

		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return([]entities.Quote{q}, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(job, nil)
		quoteRepo.EXPECT().CommitPortalLock(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.PortalLockWrite) error {
				if w.Job != nil {
					t.Fatalf("job must not be touched, got %+v", w.Job)
				}
				if len(w.Records) != 1 {
					t.Fatalf("expected only the portal record, got %d", len(w.Records))
				}
				return nil
			},
		)

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Locked != 1 || summary.JobsFlagged != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("job already past selections keeps its status", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		q := expiredQuote("q-1", closedAt)
		job := entities.Job{ID: "j-1", TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusInProgress}

		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return([]entities.Quote{q}, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(job, nil)
		quoteRepo.EXPECT().CommitPortalLock(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.PortalLockWrite) error {
				if w.Job != nil {
					t.Fatalf("in_progress job must not be held, got %+v", w.Job)
				}
				return nil
			},
		)

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.JobsFlagged != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("one failing quote does not stop the batch", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		quotes := []entities.Quote{
			expiredQuote("q-1", closedAt),
			expiredQuote("q-2", closedAt),
			expiredQuote("q-3", closedAt),
		}
		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return(quotes, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", gomock.Any()).Return(entities.Job{}, nil).Times(3)
		quoteRepo.EXPECT().CommitPortalLock(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.PortalLockWrite) error {
				if w.Quote.ID == "q-2" {
					return errors.New("provisioned throughput exceeded")
				}
				return nil
			},
		).Times(3)

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err != nil {
			t.Fatalf("batch must not fail as a whole: %v", err)
		}
		if summary.Checked != 3 || summary.Locked != 2 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if len(summary.Errors) != 1 || summary.Errors[0].QuoteID != "q-2" {
			t.Fatalf("unexpected errors: %+v", summary.Errors)
		}
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		q := expiredQuote("q-1", closedAt)
		job := entities.Job{ID: "j-1", TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusSelectionsPending}

		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return([]entities.Quote{q}, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(job, nil)
		// No CommitPortalLock, no Notify: any write fails the test.

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{DryRun: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.DryRun || summary.Locked != 1 || summary.JobsFlagged != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("stale quote is skipped without an error entry", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		q := expiredQuote("q-1", closedAt)
		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return([]entities.Quote{q}, nil)
		jobRepo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(entities.Job{}, nil)
		quoteRepo.EXPECT().CommitPortalLock(gomock.Any(), gomock.Any()).Return(interfaces.ErrStaleStatus)

		summary, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Checked != 1 || summary.Locked != 0 || len(summary.Errors) != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("query failure aborts the run", func(t *testing.T) {
		ctrl, quoteRepo, jobRepo, notifier := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

		quoteRepo.EXPECT().ListExpiredPortals(gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := uc.SweepExpiredPortals(context.Background(), SweepOptions{})
		if err == nil {
			t.Fatal("expected query error to propagate")
		}
	})
}
