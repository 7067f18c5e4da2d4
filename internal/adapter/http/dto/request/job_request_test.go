package request

import (
	"errors"
	"testing"
	"time"
)

func TestJobTransitionRequest_ResolveToStatus(t *testing.T) {
	r := JobTransitionRequest{ToStatus: "  Scheduled "}
	if got := r.ResolveToStatus(); got != "scheduled" {
		t.Fatalf("expected scheduled, got %q", got)
	}
}

func TestJobTransitionRequest_ResolveDates(t *testing.T) {
	t.Run("absent dates resolve to nil", func(t *testing.T) {
		r := JobTransitionRequest{ToStatus: "paused"}
		start, err := r.ResolveScheduledStart()
		if err != nil || start != nil {
			t.Fatalf("expected nil,nil got %v,%v", start, err)
		}
	})

	t.Run("valid rfc3339", func(t *testing.T) {
		r := JobTransitionRequest{ScheduledStartDate: "2026-03-02T08:00:00Z"}
		start, err := r.ResolveScheduledStart()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Fatalf("unexpected date: %v", start)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r := JobTransitionRequest{ScheduledEndDate: "03/02/2026"}
		_, err := r.ResolveScheduledEnd()
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
