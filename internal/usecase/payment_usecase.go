package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCaptureEvent = errors.New("invalid capture event payload")
	ErrCaptureNotCompleted = errors.New("payment capture not completed")
	// ErrCaptureDependencyMissing marks a data-integrity fault: the payment
	// row exists but its quotation or request does not. It must be surfaced
	// loudly, never swallowed.
	ErrCaptureDependencyMissing = errors.New("capture dependency missing")
)

// captureEvent mirrors the provider's capture-completed webhook body, scoped
// to the fields the engine consumes.
type captureEvent struct {
	ID       string `json:"id"`
	Resource struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		CustomID string `json:"custom_id"`
		Breakdown struct {
			GrossAmount providerMoney `json:"gross_amount"`
			ProviderFee providerMoney `json:"paypal_fee"`
			NetAmount   providerMoney `json:"net_amount"`
		} `json:"seller_receivable_breakdown"`
	} `json:"resource"`
}

type providerMoney struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

func (m providerMoney) Amount() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(m.Value), 64)
}

// payoutItemEvent mirrors the provider's payout-item status webhooks
// (unclaimed, succeeded).
type payoutItemEvent struct {
	Resource struct {
		SenderBatchID     string          `json:"sender_batch_id"`
		PayoutItemID      string          `json:"payout_item_id"`
		TransactionID     string          `json:"transaction_id"`
		TransactionStatus string          `json:"transaction_status"`
		PayoutItemFee     providerMoney   `json:"payout_item_fee"`
		Errors            json.RawMessage `json:"errors"`
		PayoutItem        struct {
			Receiver string `json:"receiver"`
		} `json:"payout_item"`
	} `json:"resource"`
}

// CaptureResult reports what ApplyCapture did, so the worker can decide
// whether to run settlement.
type CaptureResult struct {
	Applied   bool
	Payment   entities.Payment
	Quotation entities.Quotation
	Request   entities.Request
}

// IPaymentUseCase applies verified provider events pulled from the durable
// queue. Application is idempotent: the Payment uniqueness invariant turns
// replays and retries into no-op successes.

type IPaymentUseCase interface {
	ApplyCapture(ctx context.Context, eventID string, payload json.RawMessage) (CaptureResult, error)
	ApplyPayoutItem(ctx context.Context, payload json.RawMessage) error
}

type PaymentUseCase struct {
	payments   interfaces.IPaymentRepository
	quotations interfaces.IQuotationRepository
	requests   interfaces.IRequestRepository
	payouts    IPayoutUseCase
	chat       interfaces.IChatGateway
	adminID    string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	quotations interfaces.IQuotationRepository,
	requests interfaces.IRequestRepository,
	payouts IPayoutUseCase,
	chat interfaces.IChatGateway,
	adminID string,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:   payments,
		quotations: quotations,
		requests:   requests,
		payouts:    payouts,
		chat:       chat,
		adminID:    adminID,
	}
}

// ApplyCapture persists the capture and advances the quotation and request
// to payed. A delivery whose event id or quotation already has a payment is
// a no-op success. Notification failures after the payment row is committed
// are logged but never unwind it; the uniqueness invariant keeps queue
// retries from double-applying.
func (u *PaymentUseCase) ApplyCapture(ctx context.Context, eventID string, payload json.RawMessage) (CaptureResult, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return CaptureResult{}, ErrInvalidCaptureEvent
	}

	var event captureEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return CaptureResult{}, ErrInvalidCaptureEvent
	}
	capture := event.Resource
	quotationID := strings.TrimSpace(capture.CustomID)
	if quotationID == "" || capture.ID == "" {
		return CaptureResult{}, ErrInvalidCaptureEvent
	}
	if capture.Status != "COMPLETED" {
		return CaptureResult{}, ErrCaptureNotCompleted
	}
	netAmount, err := capture.Breakdown.NetAmount.Amount()
	if err != nil {
		return CaptureResult{}, ErrInvalidCaptureEvent
	}
	providerFee, err := capture.Breakdown.ProviderFee.Amount()
	if err != nil {
		providerFee = 0
	}
	currency := capture.Breakdown.GrossAmount.CurrencyCode

	existing, err := u.payments.FindByEventOrQuotation(ctx, eventID, quotationID)
	if err != nil {
		return CaptureResult{}, err
	}
	if existing.ID != "" {
		log.Printf("[payment][usecase] capture already applied event_id=%s quotation_id=%s", eventID, quotationID)
		return CaptureResult{Applied: false, Payment: existing}, nil
	}

	p := entities.Payment{
		ID:                uuid.NewString(),
		QuotationID:       quotationID,
		Amount:            netAmount,
		Currency:          currency,
		ProviderFee:       providerFee,
		TransactionID:     capture.ID,
		TransactionStatus: capture.Status,
		WebhookEventID:    eventID,
		PaymentMethod:     "PayPal",
		CreatedAt:         time.Now().UTC(),
	}
	saved, err := u.payments.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrPaymentExists) {
			// Another worker won the conditional put for the same event.
			log.Printf("[payment][usecase] concurrent capture apply event_id=%s quotation_id=%s", eventID, quotationID)
			return CaptureResult{Applied: false}, nil
		}
		return CaptureResult{}, err
	}
	log.Printf("[payment][usecase] payment recorded payment_id=%s quotation_id=%s amount=%.2f %s",
		saved.ID, quotationID, saved.Amount, saved.Currency)

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return CaptureResult{}, err
	}
	if q.ID == "" {
		log.Printf("[payment][usecase] integrity fault: quotation missing quotation_id=%s event_id=%s", quotationID, eventID)
		return CaptureResult{}, fmt.Errorf("%w: quotation %s", ErrCaptureDependencyMissing, quotationID)
	}
	r, err := u.requests.GetByID(ctx, q.RequestID)
	if err != nil {
		return CaptureResult{}, err
	}
	if r.ID == "" {
		log.Printf("[payment][usecase] integrity fault: request missing request_id=%s event_id=%s", q.RequestID, eventID)
		return CaptureResult{}, fmt.Errorf("%w: request %s", ErrCaptureDependencyMissing, q.RequestID)
	}

	paidQuotation, err := u.quotations.UpdateStatus(ctx, q.ID,
		[]entities.QuotationStatus{entities.QuotationStatusAccepted}, entities.QuotationStatusPayed)
	if err != nil {
		return CaptureResult{}, err
	}
	if paidQuotation.ID == "" {
		log.Printf("[payment][usecase] quotation not advanced (status=%s) quotation_id=%s", q.Status, q.ID)
		paidQuotation = q
	}
	paidRequest, err := u.requests.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusInvoiced}, entities.RequestStatusPayed)
	if err != nil {
		return CaptureResult{}, err
	}
	if paidRequest.ID == "" {
		log.Printf("[payment][usecase] request not advanced (status=%s) request_id=%s", r.Status, r.ID)
		paidRequest = r
	}

	// Post-commit notifications: observable on failure, never unwound.
	channelID := entities.ChannelIDFor(paidRequest.ID)
	if err := mirrorChannelMetadata(ctx, u.chat, channelID,
		interfaces.ChannelMetadata{"requestStatus": string(entities.RequestStatusPayed)}, NotifyBestEffort); err != nil {
		log.Printf("[payment][usecase] metadata mirror failed request_id=%s err=%v", paidRequest.ID, err)
	}
	text := fmt.Sprintf("El pago de la solicitud: %s ha sido confirmado. El monto es de: %.2f %s.",
		paidRequest.Title, saved.Amount, saved.Currency)
	if err := notifyChannel(ctx, u.chat, channelID, u.adminID, text, NotifyBestEffort); err != nil {
		log.Printf("[payment][usecase] confirmation message failed request_id=%s err=%v", paidRequest.ID, err)
	}

	return CaptureResult{Applied: true, Payment: saved, Quotation: paidQuotation, Request: paidRequest}, nil
}

// ApplyPayoutItem patches the payout ledger row addressed by the sender
// batch id. An unknown batch id is logged and reported as handled so the
// queue does not retry what it cannot resolve.
func (u *PaymentUseCase) ApplyPayoutItem(ctx context.Context, payload json.RawMessage) error {
	var event payoutItemEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return ErrInvalidCaptureEvent
	}
	res := event.Resource
	if strings.TrimSpace(res.SenderBatchID) == "" {
		return ErrInvalidCaptureEvent
	}

	fee, err := res.PayoutItemFee.Amount()
	if err != nil {
		fee = 0
	}
	result, err := u.payouts.UpdateBySenderBatchID(ctx, res.SenderBatchID, entities.PayoutPatch{
		ProviderFeeOnPayout: fee,
		PayoutItemID:        res.PayoutItemID,
		TransactionID:       res.TransactionID,
		Status:              res.TransactionStatus,
		TransactionErrors:   res.Errors,
	})
	if err != nil {
		return err
	}
	if !result.Found {
		log.Printf("[payment][usecase] payout patch skipped: unknown sender_batch_id=%s receiver=%s",
			res.SenderBatchID, res.PayoutItem.Receiver)
		return nil
	}
	log.Printf("[payment][usecase] payout patched sender_batch_id=%s status=%s", res.SenderBatchID, res.TransactionStatus)
	return nil
}
