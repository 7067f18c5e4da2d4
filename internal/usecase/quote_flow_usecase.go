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
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidTenantID      = errors.New("invalid tenant id")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// QuoteTransitionInput carries one requested quote transition.
type QuoteTransitionInput struct {
	ToStatus         entities.QuoteStatus
	Authority        statusflow.Authority
	Reason           string
	PaymentMethod    string
	PaymentReference string
}

// ManualDepositInput is the admin-driven deposit confirmation.
type ManualDepositInput struct {
	ActorID       string
	PaymentMethod string
	Notes         string
}

// ReopenInput reopens a rejected/declined/expired quote back to sent.
type ReopenInput struct {
	ActorID string
	Reason  string
}

// IQuoteFlowUseCase is the quote half of the status-flow engine. It is the only
// writer of quote status; HTTP handlers and the payment webhook are its callers.
type IQuoteFlowUseCase interface {
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetQuote(ctx context.Context, tenantID, quoteID string) (entities.Quote, error)
	TransitionQuote(ctx context.Context, tenantID, quoteID string, in QuoteTransitionInput) (entities.Quote, error)
	HandlePaymentSuccess(ctx context.Context, tenantID, quoteID, paymentReference string) (entities.Quote, error)
	MarkDepositPaidManual(ctx context.Context, tenantID, quoteID string, in ManualDepositInput) (entities.Quote, error)
	ReopenQuote(ctx context.Context, tenantID, quoteID string, in ReopenInput) (entities.Quote, error)
	ListQuoteTransitions(ctx context.Context, tenantID, quoteID string) ([]entities.TransitionRecord, error)
}

type QuoteFlowUseCase struct {
	quoteRepo interfaces.IQuoteRepository
	audit     interfaces.IAuditRecorder
	notifier  interfaces.INotificationSender
}

var _ IQuoteFlowUseCase = (*QuoteFlowUseCase)(nil)

func NewQuoteFlowUseCase(quoteRepo interfaces.IQuoteRepository, audit interfaces.IAuditRecorder, notifier interfaces.INotificationSender) *QuoteFlowUseCase {
	return &QuoteFlowUseCase{quoteRepo: quoteRepo, audit: audit, notifier: notifier}
}

func (u *QuoteFlowUseCase) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.TenantID = strings.TrimSpace(q.TenantID)
	if q.TenantID == "" {
		return entities.Quote{}, ErrInvalidTenantID
	}

	now := time.Now().UTC()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Number == "" {
		q.Number = "Q-" + q.ID[:8]
	}
	q.Status = entities.QuoteStatusDraft
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.quoteRepo.Create(ctx, q)
}

func (u *QuoteFlowUseCase) GetQuote(ctx context.Context, tenantID, quoteID string) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// TransitionQuote validates and applies one transition, committing the status
// write, its side-effect fields and the audit record as a unit.
func (u *QuoteFlowUseCase) TransitionQuote(ctx context.Context, tenantID, quoteID string, in QuoteTransitionInput) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	return u.applyQuoteTransition(ctx, q, in, true)
}

// applyQuoteTransition is the single apply path. The commit is conditioned on the
// status q was read with; when that turns stale (a concurrent transition won) the
// quote is re-read and re-validated once so the caller gets an answer that matches
// the persisted state.
func (u *QuoteFlowUseCase) applyQuoteTransition(ctx context.Context, q entities.Quote, in QuoteTransitionInput, retryOnStale bool) (entities.Quote, error) {
	now := time.Now().UTC()

	// Repeat views are a no-op that still leaves an audit trail.
	if in.ToStatus == entities.QuoteStatusViewed && q.Status == entities.QuoteStatusViewed && q.ViewedAt != nil {
		rec := newTransitionRecord(entities.EntityTypeQuote, q.ID, q.TenantID, in.Authority,
			entities.ActionQuoteViewedMultiple, string(q.Status), string(q.Status), nil, now)
		if err := u.audit.Record(ctx, rec); err != nil {
			log.Printf("[flow][usecase] repeat-view audit failed quote_id=%s err=%v", q.ID, err)
			return entities.Quote{}, err
		}
		log.Printf("[flow][usecase] repeat view quote_id=%s", q.ID)
		return q, nil
	}

	if err := statusflow.ValidateQuoteTransition(q.Status, in.ToStatus, in.Authority); err != nil {
		return entities.Quote{}, err
	}

	updated := statusflow.ApplyQuoteEffects(q, in.ToStatus, statusflow.QuoteParams{
		Reason:        in.Reason,
		PaymentMethod: in.PaymentMethod,
		TransactionID: in.PaymentReference,
	}, now)

	meta := map[string]any{}
	if in.Reason != "" {
		meta["reason"] = in.Reason
	}
	if in.PaymentMethod != "" {
		meta["payment_method"] = in.PaymentMethod
	}
	if in.PaymentReference != "" {
		meta["payment_reference"] = in.PaymentReference
	}
	rec := newTransitionRecord(entities.EntityTypeQuote, q.ID, q.TenantID, in.Authority,
		statusflow.QuoteAction(in.ToStatus), string(q.Status), string(in.ToStatus), meta, now)

	committed, err := u.quoteRepo.CommitTransition(ctx, interfaces.QuoteTransitionWrite{
		Quote:          updated,
		ExpectedStatus: q.Status,
		Records:        []entities.TransitionRecord{rec},
	})
	if errors.Is(err, interfaces.ErrStaleStatus) && retryOnStale {
		log.Printf("[flow][usecase] stale status on commit quote_id=%s from=%s to=%s, re-reading", q.ID, q.Status, in.ToStatus)
		fresh, lerr := u.loadQuote(ctx, q.TenantID, q.ID)
		if lerr != nil {
			return entities.Quote{}, lerr
		}
		return u.applyQuoteTransition(ctx, fresh, in, false)
	}
	if err != nil {
		log.Printf("[flow][usecase] transition commit failed quote_id=%s from=%s to=%s err=%v", q.ID, q.Status, in.ToStatus, err)
		return entities.Quote{}, err
	}
	log.Printf("[flow][usecase] transition applied quote_id=%s from=%s to=%s", q.ID, q.Status, in.ToStatus)

	u.notifyQuote(ctx, committed, in.ToStatus)
	return committed, nil
}

// HandlePaymentSuccess is the automated deposit-confirmation entry point driven
// by the payment webhook. Duplicate deliveries are expected; a quote that already
// reached deposit_paid reports success without a second write.
func (u *QuoteFlowUseCase) HandlePaymentSuccess(ctx context.Context, tenantID, quoteID, paymentReference string) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusDepositPaid {
		log.Printf("[flow][usecase] payment already handled quote_id=%s reference=%s", q.ID, paymentReference)
		return q, nil
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Quote{}, &statusflow.InvalidStateError{
			EntityType: entities.EntityTypeQuote,
			EntityID:   q.ID,
			Status:     string(q.Status),
			Required:   string(entities.QuoteStatusAccepted),
		}
	}

	committed, err := u.applyQuoteTransition(ctx, q, QuoteTransitionInput{
		ToStatus:         entities.QuoteStatusDepositPaid,
		Authority:        statusflow.Automated(),
		PaymentMethod:    "stripe",
		PaymentReference: paymentReference,
	}, false)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		// Lost a race with the manual path; whoever committed first wins.
		fresh, lerr := u.loadQuote(ctx, tenantID, quoteID)
		if lerr != nil {
			return entities.Quote{}, lerr
		}
		if fresh.Status == entities.QuoteStatusDepositPaid {
			log.Printf("[flow][usecase] payment race lost, already handled quote_id=%s reference=%s", q.ID, paymentReference)
			return fresh, nil
		}
		return entities.Quote{}, &statusflow.InvalidStateError{
			EntityType: entities.EntityTypeQuote,
			EntityID:   fresh.ID,
			Status:     string(fresh.Status),
			Required:   string(entities.QuoteStatusAccepted),
		}
	}
	return committed, err
}

// MarkDepositPaidManual is the admin-driven deposit confirmation. Same
// precondition as the automated path, but it demands a human actor and a
// non-Stripe payment method.
func (u *QuoteFlowUseCase) MarkDepositPaidManual(ctx context.Context, tenantID, quoteID string, in ManualDepositInput) (entities.Quote, error) {
	in.ActorID = strings.TrimSpace(in.ActorID)
	if in.ActorID == "" {
		return entities.Quote{}, statusflow.ErrMissingActor
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = "manual"
	}
	if strings.EqualFold(method, "stripe") {
		return entities.Quote{}, ErrInvalidPaymentMethod
	}

	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusDepositPaid {
		log.Printf("[flow][usecase] manual deposit already handled quote_id=%s", q.ID)
		return q, nil
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Quote{}, &statusflow.InvalidStateError{
			EntityType: entities.EntityTypeQuote,
			EntityID:   q.ID,
			Status:     string(q.Status),
			Required:   string(entities.QuoteStatusAccepted),
		}
	}

	committed, err := u.applyQuoteTransition(ctx, q, QuoteTransitionInput{
		ToStatus:      entities.QuoteStatusDepositPaid,
		Authority:     statusflow.Admin(in.ActorID),
		Reason:        in.Notes,
		PaymentMethod: method,
	}, false)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		fresh, lerr := u.loadQuote(ctx, tenantID, quoteID)
		if lerr != nil {
			return entities.Quote{}, lerr
		}
		if fresh.Status == entities.QuoteStatusDepositPaid {
			log.Printf("[flow][usecase] manual deposit race lost, already handled quote_id=%s", q.ID)
			return fresh, nil
		}
		return entities.Quote{}, &statusflow.InvalidStateError{
			EntityType: entities.EntityTypeQuote,
			EntityID:   fresh.ID,
			Status:     string(fresh.Status),
			Required:   string(entities.QuoteStatusAccepted),
		}
	}
	return committed, err
}

// ReopenQuote moves a rejected/declined/expired quote back to sent. The commit
// carries the standard transition record plus a distinguishing quote_reopened
// record in the same transaction.
func (u *QuoteFlowUseCase) ReopenQuote(ctx context.Context, tenantID, quoteID string, in ReopenInput) (entities.Quote, error) {
	in.ActorID = strings.TrimSpace(in.ActorID)
	if in.ActorID == "" {
		return entities.Quote{}, statusflow.ErrMissingActor
	}

	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	auth := statusflow.Admin(in.ActorID)
	if err := statusflow.ValidateQuoteTransition(q.Status, entities.QuoteStatusSent, auth); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	updated := statusflow.ApplyQuoteEffects(q, entities.QuoteStatusSent, statusflow.QuoteParams{}, now)

	var meta map[string]any
	if in.Reason != "" {
		meta = map[string]any{"reason": in.Reason}
	}
	records := []entities.TransitionRecord{
		newTransitionRecord(entities.EntityTypeQuote, q.ID, q.TenantID, auth,
			statusflow.QuoteAction(entities.QuoteStatusSent), string(q.Status), string(entities.QuoteStatusSent), nil, now),
		newTransitionRecord(entities.EntityTypeQuote, q.ID, q.TenantID, auth,
			entities.ActionQuoteReopened, string(q.Status), string(entities.QuoteStatusSent), meta, now),
	}

	committed, err := u.quoteRepo.CommitTransition(ctx, interfaces.QuoteTransitionWrite{
		Quote:          updated,
		ExpectedStatus: q.Status,
		Records:        records,
	})
	if err != nil {
		log.Printf("[flow][usecase] reopen failed quote_id=%s from=%s err=%v", q.ID, q.Status, err)
		return entities.Quote{}, err
	}
	log.Printf("[flow][usecase] quote reopened quote_id=%s from=%s actor=%s", q.ID, q.Status, in.ActorID)
	return committed, nil
}

// ListQuoteTransitions returns the quote's audit trail, oldest first. The quote
// is loaded first so tenant ownership and existence are checked before the trail
// is exposed.
func (u *QuoteFlowUseCase) ListQuoteTransitions(ctx context.Context, tenantID, quoteID string) ([]entities.TransitionRecord, error) {
	q, err := u.loadQuote(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}
	return u.audit.ListByEntityID(ctx, q.ID)
}

func (u *QuoteFlowUseCase) loadQuote(ctx context.Context, tenantID, quoteID string) (entities.Quote, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Quote{}, ErrInvalidTenantID
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// notifyQuote fires the best-effort customer notifications tied to a transition.
func (u *QuoteFlowUseCase) notifyQuote(ctx context.Context, q entities.Quote, to entities.QuoteStatus) {
	if u.notifier == nil || q.CustomerEmail == "" {
		return
	}

	var templateKey string
	switch to {
	case entities.QuoteStatusSent:
		templateKey = "quote_sent"
	case entities.QuoteStatusDepositPaid:
		templateKey = "deposit_receipt"
	default:
		return
	}

	if err := u.notifier.Notify(ctx, q.CustomerEmail, templateKey, map[string]any{
		"quote_number": q.Number,
		"status":       string(q.Status),
	}); err != nil {
		log.Printf("[flow][usecase] notification failed quote_id=%s template=%s err=%v", q.ID, templateKey, err)
	}
}

func newTransitionRecord(entityType, entityID, tenantID string, auth statusflow.Authority, action, oldStatus, newStatus string, meta map[string]any, now time.Time) entities.TransitionRecord {
	return entities.TransitionRecord{
		ID:          uuid.NewString(),
		EntityType:  entityType,
		EntityID:    entityID,
		TenantID:    tenantID,
		ActorUserID: auth.ActorRef(),
		Action:      action,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		Metadata:    meta,
		Timestamp:   now,
	}
}
