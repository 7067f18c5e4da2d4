package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quoteflow/internal/adapter/http/dto/request"
	response "quoteflow/internal/adapter/http/dto/response"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/statusflow"
	"quoteflow/internal/usecase"
	"quoteflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobFlowHandler handles HTTP requests for job lifecycle transitions.

type JobFlowHandler struct {
	usecase usecase.IJobFlowUseCase
}

func NewJobFlowHandler(uc usecase.IJobFlowUseCase) *JobFlowHandler {
	return &JobFlowHandler{usecase: uc}
}

func (h *JobFlowHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateJob(c.Request.Context(), entities.Job{
		TenantID: tenantFrom(c),
		QuoteID:  payload.QuoteID,
		Status:   entities.JobStatus(payload.Status),
	})
	if err != nil {
		appErr := mapJobFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(created))
}

func (h *JobFlowHandler) GetJob(c *gin.Context) {
	j, err := h.usecase.GetJob(c.Request.Context(), tenantFrom(c), c.Param("job_id"))
	if err != nil {
		appErr := mapJobFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

// TransitionJob applies one requested job transition through the engine.
// Scheduling dates are only meaningful on the scheduled target; the effect
// table ignores them elsewhere.
func (h *JobFlowHandler) TransitionJob(c *gin.Context) {
	jobID := c.Param("job_id")
	var payload request.JobTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	start, err := payload.ResolveScheduledStart()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	end, err := payload.ResolveScheduledEnd()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	log.Printf("[flow][handler] job transition start job_id=%s to=%s", jobID, payload.ResolveToStatus())
	j, err := h.usecase.TransitionJob(c.Request.Context(), tenantFrom(c), jobID, usecase.JobTransitionInput{
		ToStatus:           entities.JobStatus(payload.ResolveToStatus()),
		Authority:          authorityFrom(c),
		Reason:             payload.Reason,
		ScheduledStartDate: start,
		ScheduledEndDate:   end,
	})
	if err != nil {
		log.Printf("[flow][handler] job transition failed job_id=%s to=%s err=%v", jobID, payload.ResolveToStatus(), err)
		appErr := mapJobFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

// ListTransitions returns the job's audit trail, oldest first.
func (h *JobFlowHandler) ListTransitions(c *gin.Context) {
	records, err := h.usecase.ListJobTransitions(c.Request.Context(), tenantFrom(c), c.Param("job_id"))
	if err != nil {
		appErr := mapJobFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionRecords(records))
}

func mapJobFlowError(err error) *pkg.AppError {
	var invErr *statusflow.InvalidTransitionError
	var admErr *statusflow.RequiresAdminError
	var stateErr *statusflow.InvalidStateError
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidJobQuoteID), errors.Is(err, usecase.ErrInvalidJobEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, statusflow.ErrMissingActor):
		return pkg.NewDomainErrorSimple("MISSING_ACTOR", "A user-attributed transition requires an actor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobAlreadyExists):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_EXISTS", "Job already exists for this quote", http.StatusConflict)
	case errors.As(err, &invErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict).
			WithDetails(map[string]any{"from": invErr.From, "to": invErr.To, "allowed": invErr.Allowed})
	case errors.As(err, &admErr):
		return pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Transition requires admin authority", http.StatusForbidden).
			WithDetails(map[string]any{"from": admErr.From, "to": admErr.To})
	case errors.As(err, &stateErr):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not valid in the current status", http.StatusConflict).
			WithDetails(map[string]any{"status": stateErr.Status, "required": stateErr.Required})
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
