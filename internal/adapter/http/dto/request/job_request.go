package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected RFC3339")

// CreateJobRequest spawns the job for a paid quote.
type CreateJobRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	Status  string `json:"status"`
}

// JobTransitionRequest asks the engine for one job status transition.
// Scheduling dates ride along on admin scheduling transitions.
type JobTransitionRequest struct {
	ToStatus           string `json:"to_status" binding:"required"`
	Reason             string `json:"reason"`
	ScheduledStartDate string `json:"scheduled_start_date"`
	ScheduledEndDate   string `json:"scheduled_end_date"`
}

func (r JobTransitionRequest) ResolveToStatus() string {
	return strings.TrimSpace(strings.ToLower(r.ToStatus))
}

func (r JobTransitionRequest) ResolveScheduledStart() (*time.Time, error) {
	return parseOptionalDate(r.ScheduledStartDate)
}

func (r JobTransitionRequest) ResolveScheduledEnd() (*time.Time, error) {
	return parseOptionalDate(r.ScheduledEndDate)
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
