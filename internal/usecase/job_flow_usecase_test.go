package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/statusflow"
	"quoteflow/internal/usecase/interfaces"
	mock_interfaces "quoteflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobFlowUseCase_CreateJob(t *testing.T) {
	t.Run("defaults to pending_deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(entities.Job{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusPendingDeposit {
					t.Fatalf("unexpected entry status: %s", j.Status)
				}
				if j.ID == "" {
					t.Fatal("expected generated id")
				}
				return j, nil
			},
		)

		res, err := uc.CreateJob(context.Background(), entities.Job{TenantID: "t-1", QuoteID: "q-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusPendingDeposit {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("accepted is an equivalent entry status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(entities.Job{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		res, err := uc.CreateJob(context.Background(), entities.Job{TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusAccepted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusAccepted {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("rejects non-entry statuses", func(t *testing.T) {
		uc := NewJobFlowUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), entities.Job{TenantID: "t-1", QuoteID: "q-1", Status: entities.JobStatusInProgress})
		if !errors.Is(err, ErrInvalidJobEntry) {
			t.Fatalf("expected ErrInvalidJobEntry, got %v", err)
		}
	})

	t.Run("one job per quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByQuoteID(gomock.Any(), "t-1", "q-1").Return(entities.Job{ID: "j-1"}, nil)

		_, err := uc.CreateJob(context.Background(), entities.Job{TenantID: "t-1", QuoteID: "q-1"})
		if !errors.Is(err, ErrJobAlreadyExists) {
			t.Fatalf("expected ErrJobAlreadyExists, got %v", err)
		}
	})

	t.Run("missing quote id", func(t *testing.T) {
		uc := NewJobFlowUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), entities.Job{TenantID: "t-1"})
		if !errors.Is(err, ErrInvalidJobQuoteID) {
			t.Fatalf("expected ErrInvalidJobQuoteID, got %v", err)
		}
	})
}

func TestJobFlowUseCase_TransitionJob(t *testing.T) {
	t.Run("non-admin cannot schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusDepositPaid}, nil)

		_, err := uc.TransitionJob(context.Background(), "t-1", "j-1",
			JobTransitionInput{ToStatus: entities.JobStatusScheduled, Authority: statusflow.User("u-1")})
		var admErr *statusflow.RequiresAdminError
		if !errors.As(err, &admErr) {
			t.Fatalf("expected RequiresAdminError, got %v", err)
		}
	})

	t.Run("admin schedules with supplied dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusSelectionsComplete}, nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.JobTransitionWrite) (entities.Job, error) {
				if w.ExpectedStatus != entities.JobStatusSelectionsComplete {
					t.Fatalf("expected condition on selections_complete, got %s", w.ExpectedStatus)
				}
				if w.Job.ScheduledStartDate == nil || !w.Job.ScheduledStartDate.Equal(start) {
					t.Fatalf("unexpected scheduled start: %v", w.Job.ScheduledStartDate)
				}
				if len(w.Records) != 1 || w.Records[0].Action != "job_scheduled" {
					t.Fatalf("unexpected records: %+v", w.Records)
				}
				if w.Records[0].Metadata["scheduled_start_date"] != start.Format(time.RFC3339) {
					t.Fatalf("unexpected metadata: %+v", w.Records[0].Metadata)
				}
				return w.Job, nil
			},
		)

		res, err := uc.TransitionJob(context.Background(), "t-1", "j-1", JobTransitionInput{
			ToStatus:           entities.JobStatusScheduled,
			Authority:          statusflow.Admin("a-1"),
			ScheduledStartDate: &start,
			ScheduledEndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusScheduled {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("any actor can pause an in-progress job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusInProgress}, nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.JobTransitionWrite) (entities.Job, error) {
				if w.Records[0].Metadata["reason"] != "materials delayed" {
					t.Fatalf("unexpected metadata: %+v", w.Records[0].Metadata)
				}
				return w.Job, nil
			},
		)

		res, err := uc.TransitionJob(context.Background(), "t-1", "j-1",
			JobTransitionInput{ToStatus: entities.JobStatusPaused, Authority: statusflow.User("u-1"), Reason: "materials delayed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusPaused {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("closed is terminal for non-admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusClosed}, nil)

		_, err := uc.TransitionJob(context.Background(), "t-1", "j-1",
			JobTransitionInput{ToStatus: entities.JobStatusInProgress, Authority: statusflow.User("u-1")})
		var invErr *statusflow.InvalidTransitionError
		if !errors.As(err, &invErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if len(invErr.Allowed) != 0 {
			t.Fatalf("terminal status must expose no allowed targets, got %v", invErr.Allowed)
		}
	})

	t.Run("admin override reopens a closed job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusClosed}, nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w interfaces.JobTransitionWrite) (entities.Job, error) {
				if w.Records[0].ActorUserID == nil || *w.Records[0].ActorUserID != "a-1" {
					t.Fatalf("expected admin actor on override, got %v", w.Records[0].ActorUserID)
				}
				return w.Job, nil
			},
		)

		res, err := uc.TransitionJob(context.Background(), "t-1", "j-1",
			JobTransitionInput{ToStatus: entities.JobStatusInProgress, Authority: statusflow.Admin("a-1"), Reason: "warranty callback"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusInProgress {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("stale commit re-reads and re-validates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusInProgress}, nil)
		repo.EXPECT().CommitTransition(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrStaleStatus)
		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusCanceled}, nil)

		_, err := uc.TransitionJob(context.Background(), "t-1", "j-1",
			JobTransitionInput{ToStatus: entities.JobStatusPaused, Authority: statusflow.User("u-1")})
		var invErr *statusflow.InvalidTransitionError
		if !errors.As(err, &invErr) {
			t.Fatalf("expected InvalidTransitionError against fresh status, got %v", err)
		}
		if invErr.From != "canceled" {
			t.Fatalf("expected fresh from=canceled, got %s", invErr.From)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "missing").Return(entities.Job{}, nil)

		_, err := uc.TransitionJob(context.Background(), "t-1", "missing",
			JobTransitionInput{ToStatus: entities.JobStatusPaused, Authority: statusflow.User("u-1")})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobFlowUseCase_ListJobTransitions(t *testing.T) {
	t.Run("returns the trail for an owned job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRecorder(ctrl)
		uc := NewJobFlowUseCase(repo, audit)

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "j-1").
			Return(entities.Job{ID: "j-1", TenantID: "t-1", Status: entities.JobStatusInProgress}, nil)
		audit.EXPECT().ListByEntityID(gomock.Any(), "j-1").Return([]entities.TransitionRecord{
			{ID: "r-1", EntityID: "j-1", Action: "job_in_progress"},
		}, nil)

		recs, err := uc.ListJobTransitions(context.Background(), "t-1", "j-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 1 || recs[0].Action != "job_in_progress" {
			t.Fatalf("unexpected records: %+v", recs)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobFlowUseCase(repo, mock_interfaces.NewMockIAuditRecorder(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "t-1", "missing").Return(entities.Job{}, nil)

		_, err := uc.ListJobTransitions(context.Background(), "t-1", "missing")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}
