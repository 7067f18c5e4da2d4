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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteFlowHandler handles HTTP requests for quote lifecycle transitions,
// including the payment provider webhook.

type QuoteFlowHandler struct {
	usecase usecase.IQuoteFlowUseCase
}

func NewQuoteFlowHandler(uc usecase.IQuoteFlowUseCase) *QuoteFlowHandler {
	return &QuoteFlowHandler{usecase: uc}
}

func (h *QuoteFlowHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), entities.Quote{
		TenantID:        tenantFrom(c),
		Number:          payload.Number,
		CustomerEmail:   payload.CustomerEmail,
		ContractorEmail: payload.ContractorEmail,
	})
	if err != nil {
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteFlowHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), tenantFrom(c), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// TransitionQuote applies one requested status transition through the engine.
func (h *QuoteFlowHandler) TransitionQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	var payload request.QuoteTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	log.Printf("[flow][handler] quote transition start quote_id=%s to=%s", quoteID, payload.ResolveToStatus())
	q, err := h.usecase.TransitionQuote(c.Request.Context(), tenantFrom(c), quoteID, usecase.QuoteTransitionInput{
		ToStatus:         entities.QuoteStatus(payload.ResolveToStatus()),
		Authority:        authorityFrom(c),
		Reason:           payload.Reason,
		PaymentMethod:    payload.PaymentMethod,
		PaymentReference: payload.PaymentReference,
	})
	if err != nil {
		log.Printf("[flow][handler] quote transition failed quote_id=%s to=%s err=%v", quoteID, payload.ResolveToStatus(), err)
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ReopenQuote moves a rejected/declined/expired quote back to sent (admin only).
func (h *QuoteFlowHandler) ReopenQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	var payload request.ReopenQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if !isAdminCaller(c) {
		appErr := pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Reopening a quote requires admin authority", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.ReopenQuote(c.Request.Context(), tenantFrom(c), quoteID, usecase.ReopenInput{
		ActorID: actorFrom(c),
		Reason:  payload.Reason,
	})
	if err != nil {
		log.Printf("[flow][handler] quote reopen failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// MarkDepositPaid is the admin-driven deposit confirmation for out-of-band
// payments (check, cash, bank transfer).
func (h *QuoteFlowHandler) MarkDepositPaid(c *gin.Context) {
	quoteID := c.Param("quote_id")
	var payload request.ManualDepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.MarkDepositPaidManual(c.Request.Context(), tenantFrom(c), quoteID, usecase.ManualDepositInput{
		ActorID:       actorFrom(c),
		PaymentMethod: payload.PaymentMethod,
		Notes:         payload.Notes,
	})
	if err != nil {
		log.Printf("[flow][handler] manual deposit failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// HandlePaymentWebhook receives payment provider events. The provider delivers
// at-least-once and sends event types we do not consume; anything unrecognized
// is acknowledged with 200 so the provider stops retrying.
func (h *QuoteFlowHandler) HandlePaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !payload.IsSuccessEvent() {
		log.Printf("[webhook][handler] ignoring event type=%s", payload.Type)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if payload.Data.QuoteID == "" || payload.Data.TenantID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Missing quote_id or tenant_id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] payment succeeded quote_id=%s reference=%s", payload.Data.QuoteID, payload.Data.PaymentReference)
	q, err := h.usecase.HandlePaymentSuccess(c.Request.Context(), payload.Data.TenantID, payload.Data.QuoteID, payload.Data.PaymentReference)
	if err != nil {
		log.Printf("[webhook][handler] payment handling failed quote_id=%s err=%v", payload.Data.QuoteID, err)
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListTransitions returns the quote's audit trail, oldest first.
func (h *QuoteFlowHandler) ListTransitions(c *gin.Context) {
	records, err := h.usecase.ListQuoteTransitions(c.Request.Context(), tenantFrom(c), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionRecords(records))
}

func mapQuoteFlowError(err error) *pkg.AppError {
	var invErr *statusflow.InvalidTransitionError
	var admErr *statusflow.RequiresAdminError
	var stateErr *statusflow.InvalidStateError
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, statusflow.ErrMissingActor):
		return pkg.NewDomainErrorSimple("MISSING_ACTOR", "A user-attributed transition requires an actor", http.StatusBadRequest)
	case errors.As(err, &invErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict).
			WithDetails(map[string]any{"from": invErr.From, "to": invErr.To, "allowed": invErr.Allowed})
	case errors.As(err, &admErr):
		return pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Transition requires admin authority", http.StatusForbidden).
			WithDetails(map[string]any{"from": admErr.From, "to": admErr.To})
	case errors.As(err, &stateErr):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not valid in the current status", http.StatusConflict).
			WithDetails(map[string]any{"status": stateErr.Status, "required": stateErr.Required})
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
