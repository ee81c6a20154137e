package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"
	"serviexpress/pkg"

	"github.com/google/uuid"
)

const quotationTTL = 7 * 24 * time.Hour

var (
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidQuotationValue = errors.New("invalid quotation amount")
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrNotQuotationOwner     = errors.New("actor does not own this quotation")
)

// quoteRejections maps each non-acceptable request status to its specific
// rejection reason. Callers rely on these texts to decide next actions, so
// they are part of the contract, not cosmetic.
var quoteRejections = map[entities.RequestStatus]string{
	entities.RequestStatusPending:   "You cannot quote a pending request. It must be accepted first.",
	entities.RequestStatusQuoted:    "This request has already been quoted.",
	entities.RequestStatusInvoiced:  "You cannot quote a request that has already been invoiced.",
	entities.RequestStatusPayed:     "You cannot quote a request that has already been paid.",
	entities.RequestStatusRejected:  "You cannot quote a rejected request.",
	entities.RequestStatusCompleted: "You cannot quote a completed request.",
	entities.RequestStatusExpired:   "You cannot quote an expired request.",
	entities.RequestStatusCancelled: "You cannot quote a cancelled request.",
}

// IQuotationUseCase owns creation, acceptance, rejection and re-issue of the
// priced proposal tied to one request.

type IQuotationUseCase interface {
	Create(ctx context.Context, handymanID, requestID string, in QuotationInput) (entities.Quotation, error)
	Accept(ctx context.Context, clientID, quotationID string) (entities.Quotation, error)
	Reject(ctx context.Context, clientID, quotationID string) error
	Update(ctx context.Context, handymanID, quotationID string, in QuotationInput) (entities.Quotation, error)
	GetByRequestID(ctx context.Context, clientID, requestID string) (entities.Quotation, error)
}

type QuotationInput struct {
	Amount      float64
	Description string
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	requests interfaces.IRequestRepository
	chat     interfaces.IChatGateway
	adminID  string
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	requests interfaces.IRequestRepository,
	chat interfaces.IChatGateway,
	adminID string,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, requests: requests, chat: chat, adminID: adminID}
}

// Create issues a pending quotation against an accepted request and advances
// the request to quoted. Every other request status yields its own specific
// rejection reason.
func (u *QuotationUseCase) Create(ctx context.Context, handymanID, requestID string, in QuotationInput) (entities.Quotation, error) {
	handymanID = strings.TrimSpace(handymanID)
	if handymanID == "" {
		return entities.Quotation{}, ErrInvalidActorID
	}
	if in.Amount <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationValue
	}

	r, err := u.requests.GetByID(ctx, strings.TrimSpace(requestID))
	if err != nil {
		return entities.Quotation{}, err
	}
	if r.ID == "" {
		return entities.Quotation{}, ErrRequestNotFound
	}
	if r.HandymanID != handymanID {
		return entities.Quotation{}, pkg.NewForbidden("You are not authorized to respond to this request")
	}
	if r.Status != entities.RequestStatusAccepted {
		msg, ok := quoteRejections[r.Status]
		if !ok {
			msg = "You cannot quote this request."
		}
		return entities.Quotation{}, pkg.NewConflict(msg)
	}
	if existing, err := u.repo.GetByRequestID(ctx, r.ID); err != nil {
		return entities.Quotation{}, err
	} else if existing.ID != "" {
		return entities.Quotation{}, pkg.NewConflict("This request has already been quoted.")
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:          uuid.NewString(),
		RequestID:   r.ID,
		HandymanID:  handymanID,
		ClientID:    r.ClientID,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      entities.QuotationStatusPending,
		ExpiresAt:   now.Add(quotationTTL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	saved, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	updated, err := u.requests.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusAccepted}, entities.RequestStatusQuoted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		// The request moved under us; drop the orphan quotation.
		if derr := u.repo.Delete(ctx, saved.ID); derr != nil {
			log.Printf("[quotation][usecase] orphan cleanup failed quotation_id=%s err=%v", saved.ID, derr)
		}
		return entities.Quotation{}, pkg.NewConflict("This request has already been processed")
	}
	log.Printf("[quotation][usecase] created quotation_id=%s request_id=%s amount=%.2f", saved.ID, r.ID, saved.Amount)

	if err := mirrorChannelMetadata(ctx, u.chat, r.ChannelID, interfaces.ChannelMetadata{
		"requestStatus":   string(entities.RequestStatusQuoted),
		"quotationStatus": string(saved.Status),
	}, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}
	text := fmt.Sprintf("Detalles de la factura: \n Costo: C$%.2f \n Descripción: %s", saved.Amount, saved.Description)
	if err := notifyChannel(ctx, u.chat, r.ChannelID, handymanID, text, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}
	return saved, nil
}

// Accept moves the quotation to accepted and the request to invoiced, the
// hand-off point to payment. The channel message is part of the operation's
// success criterion: a messaging failure aborts before any state changes.
func (u *QuotationUseCase) Accept(ctx context.Context, clientID, quotationID string) (entities.Quotation, error) {
	q, r, err := u.loadForClient(ctx, clientID, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusPending {
		return entities.Quotation{}, pkg.NewConflict("This quotation has already been processed")
	}

	text := fmt.Sprintf("**Cotización aceptada**\n\nLa cotización de: _%.2f_ ha sido aceptada por el cliente.", q.Amount)
	if err := notifyChannel(ctx, u.chat, r.ChannelID, u.adminID, text, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}

	accepted, err := u.repo.UpdateStatus(ctx, q.ID,
		[]entities.QuotationStatus{entities.QuotationStatusPending}, entities.QuotationStatusAccepted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if accepted.ID == "" {
		return entities.Quotation{}, pkg.NewConflict("This quotation has already been processed")
	}

	invoiced, err := u.requests.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusQuoted}, entities.RequestStatusInvoiced)
	if err != nil {
		return entities.Quotation{}, err
	}
	if invoiced.ID == "" {
		return entities.Quotation{}, pkg.NewConflict("This request has already been processed")
	}
	log.Printf("[quotation][usecase] accepted quotation_id=%s request_id=%s", accepted.ID, r.ID)

	if err := mirrorChannelMetadata(ctx, u.chat, r.ChannelID, interfaces.ChannelMetadata{
		"requestStatus":   string(entities.RequestStatusInvoiced),
		"quotationStatus": string(entities.QuotationStatusAccepted),
	}, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}
	return accepted, nil
}

// Reject deletes the quotation and reopens the request to accepted so the
// handyman can re-quote. The delete-and-reopen behavior is deliberate: there
// is no rejection audit trail.
func (u *QuotationUseCase) Reject(ctx context.Context, clientID, quotationID string) error {
	q, r, err := u.loadForClient(ctx, clientID, quotationID)
	if err != nil {
		return err
	}
	if q.Status != entities.QuotationStatusPending {
		return pkg.NewConflict("This quotation has already been processed")
	}

	text := fmt.Sprintf("**Cotización rechazada**\n\nLa cotización de: _%.2f_ ha sido rechazada por el cliente.", q.Amount)
	if err := notifyChannel(ctx, u.chat, r.ChannelID, u.adminID, text, NotifyPropagate); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, q.ID); err != nil {
		return err
	}
	reopened, err := u.requests.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusQuoted}, entities.RequestStatusAccepted)
	if err != nil {
		return err
	}
	if reopened.ID == "" {
		return pkg.NewConflict("This request has already been processed")
	}
	log.Printf("[quotation][usecase] rejected and deleted quotation_id=%s request_id=%s", q.ID, r.ID)

	if err := mirrorChannelMetadata(ctx, u.chat, r.ChannelID, interfaces.ChannelMetadata{
		"requestStatus":   string(entities.RequestStatusAccepted),
		"quotationStatus": "",
	}, NotifyPropagate); err != nil {
		return err
	}
	return nil
}

// Update re-issues a quotation after a rejection: it is only permitted while
// the quotation is marked rejected and the request sits back at accepted.
// This path only applies to rows persisted by the historical
// mark-as-rejected behavior; the delete-and-reopen flow re-quotes through
// Create instead.
func (u *QuotationUseCase) Update(ctx context.Context, handymanID, quotationID string, in QuotationInput) (entities.Quotation, error) {
	handymanID = strings.TrimSpace(handymanID)
	if handymanID == "" {
		return entities.Quotation{}, ErrInvalidActorID
	}
	if in.Amount <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationValue
	}

	q, err := u.loadQuotation(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.HandymanID != handymanID {
		return entities.Quotation{}, ErrNotQuotationOwner
	}
	if q.Status != entities.QuotationStatusRejected {
		return entities.Quotation{}, pkg.NewConflict("Only rejected quotations can be re-issued")
	}

	r, err := u.requests.GetByID(ctx, q.RequestID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if r.ID == "" {
		return entities.Quotation{}, ErrRequestNotFound
	}
	if r.Status != entities.RequestStatusAccepted {
		return entities.Quotation{}, pkg.NewConflict("The request is not open for a new quotation")
	}

	reissued, err := u.repo.Reissue(ctx, q.ID, in.Amount, in.Description, time.Now().UTC().Add(quotationTTL))
	if err != nil {
		return entities.Quotation{}, err
	}
	if reissued.ID == "" {
		return entities.Quotation{}, pkg.NewConflict("This quotation has already been processed")
	}

	updated, err := u.requests.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusAccepted}, entities.RequestStatusQuoted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, pkg.NewConflict("This request has already been processed")
	}
	log.Printf("[quotation][usecase] re-issued quotation_id=%s request_id=%s amount=%.2f", reissued.ID, r.ID, reissued.Amount)

	if err := mirrorChannelMetadata(ctx, u.chat, r.ChannelID, interfaces.ChannelMetadata{
		"requestStatus":   string(entities.RequestStatusQuoted),
		"quotationStatus": string(entities.QuotationStatusPending),
	}, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}
	text := fmt.Sprintf("Detalles de la factura: \n Costo: C$%.2f \n Descripción: %s", reissued.Amount, reissued.Description)
	if err := notifyChannel(ctx, u.chat, r.ChannelID, handymanID, text, NotifyPropagate); err != nil {
		return entities.Quotation{}, err
	}
	return reissued, nil
}

func (u *QuotationUseCase) GetByRequestID(ctx context.Context, clientID, requestID string) (entities.Quotation, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Quotation{}, ErrInvalidRequestID
	}
	q, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.ClientID != strings.TrimSpace(clientID) {
		return entities.Quotation{}, pkg.NewForbidden("You are not authorized to view this quotation")
	}
	return q, nil
}

func (u *QuotationUseCase) loadQuotation(ctx context.Context, quotationID string) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) loadForClient(ctx context.Context, clientID, quotationID string) (entities.Quotation, entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Quotation{}, entities.Request{}, ErrInvalidActorID
	}
	q, err := u.loadQuotation(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, entities.Request{}, err
	}
	if q.ClientID != clientID {
		return entities.Quotation{}, entities.Request{}, ErrNotQuotationOwner
	}
	r, err := u.requests.GetByID(ctx, q.RequestID)
	if err != nil {
		return entities.Quotation{}, entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Quotation{}, entities.Request{}, ErrRequestNotFound
	}
	return q, r, nil
}
