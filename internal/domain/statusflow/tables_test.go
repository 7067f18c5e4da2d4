package statusflow

import (
	"errors"
	"testing"

	"quoteflow/internal/domain/entities"
)

var allQuoteStatuses = []entities.QuoteStatus{
	entities.QuoteStatusDraft,
	entities.QuoteStatusSent,
	entities.QuoteStatusViewed,
	entities.QuoteStatusAccepted,
	entities.QuoteStatusRejected,
	entities.QuoteStatusDeclined,
	entities.QuoteStatusExpired,
	entities.QuoteStatusDepositPaid,
}

func TestValidateQuoteTransition_TableFidelity(t *testing.T) {
	declared := map[entities.QuoteStatus]map[entities.QuoteStatus]bool{
		entities.QuoteStatusDraft:    {entities.QuoteStatusSent: true},
		entities.QuoteStatusSent:     {entities.QuoteStatusViewed: true, entities.QuoteStatusDeclined: true, entities.QuoteStatusExpired: true},
		entities.QuoteStatusViewed:   {entities.QuoteStatusAccepted: true, entities.QuoteStatusDeclined: true, entities.QuoteStatusExpired: true},
		entities.QuoteStatusAccepted: {entities.QuoteStatusDepositPaid: true, entities.QuoteStatusDeclined: true},
	}
	reopenSources := map[entities.QuoteStatus]bool{
		entities.QuoteStatusRejected: true,
		entities.QuoteStatusDeclined: true,
		entities.QuoteStatusExpired:  true,
	}

	for _, from := range allQuoteStatuses {
		for _, to := range allQuoteStatuses {
			wantUser := declared[from][to]
			wantAdmin := wantUser || (reopenSources[from] && to == entities.QuoteStatusSent)

			gotUser := ValidateQuoteTransition(from, to, User("u-1")) == nil
			if gotUser != wantUser {
				t.Errorf("user %s -> %s: allowed=%v, want %v", from, to, gotUser, wantUser)
			}
			gotAdmin := ValidateQuoteTransition(from, to, Admin("a-1")) == nil
			if gotAdmin != wantAdmin {
				t.Errorf("admin %s -> %s: allowed=%v, want %v", from, to, gotAdmin, wantAdmin)
			}
		}
	}
}

func TestValidateQuoteTransition_TerminalLock(t *testing.T) {
	// expired rejects everything but an admin reopen to sent.
	for _, to := range allQuoteStatuses {
		err := ValidateQuoteTransition(entities.QuoteStatusExpired, to, User("u-1"))
		if err == nil {
			t.Fatalf("expected non-admin %s target to be rejected from expired", to)
		}
		if to == entities.QuoteStatusSent {
			var adminErr *RequiresAdminError
			if !errors.As(err, &adminErr) {
				t.Fatalf("expected RequiresAdminError for non-admin reopen, got %v", err)
			}
		} else {
			var invErr *InvalidTransitionError
			if !errors.As(err, &invErr) {
				t.Fatalf("expected InvalidTransitionError for expired -> %s, got %v", to, err)
			}
			if len(invErr.Allowed) != 0 {
				t.Fatalf("expected empty allowed set for non-admin, got %v", invErr.Allowed)
			}
		}
	}

	if err := ValidateQuoteTransition(entities.QuoteStatusExpired, entities.QuoteStatusSent, Admin("a-1")); err != nil {
		t.Fatalf("expected admin reopen to be legal, got %v", err)
	}
}

func TestValidateQuoteTransition_RejectedUnreachable(t *testing.T) {
	// No declared edge targets rejected; the status only exists as a reopen source.
	for _, from := range allQuoteStatuses {
		if ValidateQuoteTransition(from, entities.QuoteStatusRejected, Admin("a-1")) == nil {
			t.Errorf("rejected should be unreachable, but %s -> rejected validated", from)
		}
	}
}

func TestValidateJobTransition_TableFidelity(t *testing.T) {
	declared := map[entities.JobStatus]map[entities.JobStatus]bool{
		entities.JobStatusAccepted:           {entities.JobStatusDepositPaid: true},
		entities.JobStatusPendingDeposit:     {entities.JobStatusDepositPaid: true},
		entities.JobStatusDepositPaid:        {entities.JobStatusScheduled: true, entities.JobStatusSelectionsPending: true},
		entities.JobStatusSelectionsPending:  {entities.JobStatusSelectionsComplete: true, entities.JobStatusScheduled: true},
		entities.JobStatusSelectionsComplete: {entities.JobStatusScheduled: true},
		entities.JobStatusScheduled:          {entities.JobStatusInProgress: true},
		entities.JobStatusInProgress:         {entities.JobStatusCompleted: true, entities.JobStatusPaused: true},
		entities.JobStatusPaused:             {entities.JobStatusInProgress: true},
		entities.JobStatusCompleted:          {entities.JobStatusClosed: true, entities.JobStatusPaid: true},
		entities.JobStatusInvoiced:           {entities.JobStatusPaid: true, entities.JobStatusClosed: true},
		entities.JobStatusPaid:               {entities.JobStatusClosed: true},
		entities.JobStatusOnHold:             {entities.JobStatusScheduled: true, entities.JobStatusDepositPaid: true},
	}
	overrideSources := map[entities.JobStatus]bool{
		entities.JobStatusClosed:   true,
		entities.JobStatusCanceled: true,
	}
	adminTargets := map[entities.JobStatus]bool{
		entities.JobStatusScheduled:  true,
		entities.JobStatusInProgress: true,
		entities.JobStatusCompleted:  true,
		entities.JobStatusClosed:     true,
	}

	for _, from := range allJobStatuses {
		for _, to := range allJobStatuses {
			wantAdmin := declared[from][to] || overrideSources[from]
			wantUser := declared[from][to] && !adminTargets[to] && !overrideSources[from]

			gotAdmin := ValidateJobTransition(from, to, Admin("a-1")) == nil
			if gotAdmin != wantAdmin {
				t.Errorf("admin %s -> %s: allowed=%v, want %v", from, to, gotAdmin, wantAdmin)
			}
			gotUser := ValidateJobTransition(from, to, User("u-1")) == nil
			if gotUser != wantUser {
				t.Errorf("user %s -> %s: allowed=%v, want %v", from, to, gotUser, wantUser)
			}
		}
	}
}

func TestValidateJobTransition_AdminGating(t *testing.T) {
	// Table-valid edges into the admin-only targets must fail with
	// RequiresAdminError for non-admin callers, not InvalidTransitionError.
	cases := []struct {
		from entities.JobStatus
		to   entities.JobStatus
	}{
		{entities.JobStatusDepositPaid, entities.JobStatusScheduled},
		{entities.JobStatusSelectionsComplete, entities.JobStatusScheduled},
		{entities.JobStatusScheduled, entities.JobStatusInProgress},
		{entities.JobStatusPaused, entities.JobStatusInProgress},
		{entities.JobStatusInProgress, entities.JobStatusCompleted},
		{entities.JobStatusCompleted, entities.JobStatusClosed},
		{entities.JobStatusPaid, entities.JobStatusClosed},
	}

	for _, tc := range cases {
		err := ValidateJobTransition(tc.from, tc.to, User("u-1"))
		var adminErr *RequiresAdminError
		if !errors.As(err, &adminErr) {
			t.Errorf("%s -> %s: expected RequiresAdminError for non-admin, got %v", tc.from, tc.to, err)
		}
		if err := ValidateJobTransition(tc.from, tc.to, Admin("a-1")); err != nil {
			t.Errorf("%s -> %s: expected admin to pass, got %v", tc.from, tc.to, err)
		}
		// Automated callers are not admin either.
		err = ValidateJobTransition(tc.from, tc.to, Automated())
		if !errors.As(err, &adminErr) {
			t.Errorf("%s -> %s: expected RequiresAdminError for automated, got %v", tc.from, tc.to, err)
		}
	}
}

func TestValidateJobTransition_TerminalOverride(t *testing.T) {
	for _, from := range []entities.JobStatus{entities.JobStatusClosed, entities.JobStatusCanceled} {
		for _, to := range allJobStatuses {
			if err := ValidateJobTransition(from, to, Admin("a-1")); err != nil {
				t.Errorf("admin override %s -> %s should be legal, got %v", from, to, err)
			}
			err := ValidateJobTransition(from, to, User("u-1"))
			var invErr *InvalidTransitionError
			if !errors.As(err, &invErr) {
				t.Errorf("non-admin %s -> %s should be InvalidTransitionError, got %v", from, to, err)
			}
		}
	}
}

func TestValidateJobTransition_InvoicedUnreachable(t *testing.T) {
	// invoiced has outbound edges but nothing targets it except the terminal
	// admin override. Pinned here so a table edit shows up as a test change.
	for _, from := range allJobStatuses {
		if jobAdminOverrideSources[from] {
			continue
		}
		if ValidateJobTransition(from, entities.JobStatusInvoiced, Admin("a-1")) == nil {
			t.Errorf("invoiced should be unreachable, but %s -> invoiced validated", from)
		}
	}
}

func TestAllowedQuoteStatuses(t *testing.T) {
	tests := []struct {
		name string
		from entities.QuoteStatus
		auth Authority
		want []entities.QuoteStatus
	}{
		{
			name: "draft for user",
			from: entities.QuoteStatusDraft,
			auth: User("u-1"),
			want: []entities.QuoteStatus{entities.QuoteStatusSent},
		},
		{
			name: "declined for user is empty",
			from: entities.QuoteStatusDeclined,
			auth: User("u-1"),
			want: nil,
		},
		{
			name: "declined for admin offers reopen",
			from: entities.QuoteStatusDeclined,
			auth: Admin("a-1"),
			want: []entities.QuoteStatus{entities.QuoteStatusSent},
		},
		{
			name: "deposit_paid is terminal",
			from: entities.QuoteStatusDepositPaid,
			auth: Admin("a-1"),
			want: []entities.QuoteStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowedQuoteStatuses(tt.from, tt.auth)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAllowedJobStatuses(t *testing.T) {
	t.Run("non-admin sees admin-only targets filtered", func(t *testing.T) {
		got := AllowedJobStatuses(entities.JobStatusDepositPaid, User("u-1"))
		if len(got) != 1 || got[0] != entities.JobStatusSelectionsPending {
			t.Fatalf("expected [selections_pending], got %v", got)
		}
	})

	t.Run("admin sees full table edge set", func(t *testing.T) {
		got := AllowedJobStatuses(entities.JobStatusDepositPaid, Admin("a-1"))
		if len(got) != 2 {
			t.Fatalf("expected two targets, got %v", got)
		}
	})

	t.Run("closed offers everything but itself to admin", func(t *testing.T) {
		got := AllowedJobStatuses(entities.JobStatusClosed, Admin("a-1"))
		if len(got) != len(allJobStatuses)-1 {
			t.Fatalf("expected %d targets, got %v", len(allJobStatuses)-1, got)
		}
		for _, s := range got {
			if s == entities.JobStatusClosed {
				t.Fatalf("closed should not offer itself: %v", got)
			}
		}
	})

	t.Run("closed offers nothing to non-admin", func(t *testing.T) {
		if got := AllowedJobStatuses(entities.JobStatusClosed, User("u-1")); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}

func TestAllowedNextStatuses_EntityDispatch(t *testing.T) {
	if got := AllowedNextStatuses(entities.EntityTypeQuote, "draft", User("u-1")); len(got) != 1 || got[0] != "sent" {
		t.Fatalf("quote dispatch: got %v", got)
	}
	if got := AllowedNextStatuses(entities.EntityTypeJob, "paid", Admin("a-1")); len(got) != 1 || got[0] != "closed" {
		t.Fatalf("job dispatch: got %v", got)
	}
	if got := AllowedNextStatuses("invoice", "draft", Admin("a-1")); got != nil {
		t.Fatalf("unknown entity type should yield nil, got %v", got)
	}
}

func TestAuthority(t *testing.T) {
	if Automated().IsAdmin() || User("u-1").IsAdmin() {
		t.Fatal("only admin authority should report admin")
	}
	if !Admin("a-1").IsAdmin() {
		t.Fatal("admin authority should report admin")
	}
	if Automated().ActorRef() != nil {
		t.Fatal("automated authority must have a nil actor ref")
	}
	if ref := Admin("a-1").ActorRef(); ref == nil || *ref != "a-1" {
		t.Fatalf("expected actor ref a-1, got %v", ref)
	}
}
