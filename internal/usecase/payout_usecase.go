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

var (
	ErrPayoutNotFound     = errors.New("payout not found")
	ErrInvalidPayoutBatch = errors.New("invalid sender batch id")
)

// PayoutUpdateResult is a structured outcome for webhook-driven patches: the
// caller (a webhook flow) must be able to react to a missing row without an
// error unwinding its own handling.
type PayoutUpdateResult struct {
	Found  bool
	Payout entities.Payout
}

// HandymanPayoutView is the denormalized settlement view shown to the
// handyman.
type HandymanPayoutView struct {
	ClientName                 string    `json:"client_name"`
	ClientLastName             string    `json:"client_last_name"`
	RequestTitle               string    `json:"request_title"`
	RequestDescription         string    `json:"request_description"`
	CreatedAt                  time.Time `json:"created_at"`
	CompletedAt                time.Time `json:"completed_at"`
	ClientPaymentAmount        float64   `json:"client_payment_amount"`
	ProviderFeeOnClientPayment float64   `json:"provider_fee_on_client_payment"`
	AppCommission              float64   `json:"app_commission"`
	HandymanNetAmount          float64   `json:"handyman_net_amount"`
}

// ClientInvoiceView is the invoice projection shown to the client.
type ClientInvoiceView struct {
	HandymanName        string    `json:"handyman_name"`
	HandymanLastName    string    `json:"handyman_last_name"`
	RequestTitle        string    `json:"request_title"`
	RequestDescription  string    `json:"request_description"`
	CreatedAt           time.Time `json:"created_at"`
	CompletedAt         time.Time `json:"completed_at"`
	ClientPaymentAmount float64   `json:"client_payment_amount"`
}

// IPayoutUseCase owns the ledger of outbound transfers and the read views
// derived from it. Rows are created by settlement and only ever patched by
// provider status callbacks afterwards.

type IPayoutUseCase interface {
	Settle(ctx context.Context, r entities.Request, q entities.Quotation, p entities.Payment) (entities.Payout, error)
	UpdateBySenderBatchID(ctx context.Context, senderBatchID string, patch entities.PayoutPatch) (PayoutUpdateResult, error)
	FindHandymanPayoutByRequest(ctx context.Context, handymanID, requestID string) (HandymanPayoutView, error)
	FindClientInvoiceByRequestID(ctx context.Context, clientID, requestID string) (ClientInvoiceView, error)
}

type PayoutUseCase struct {
	repo           interfaces.IPayoutRepository
	requests       interfaces.IRequestRepository
	quotations     interfaces.IQuotationRepository
	users          interfaces.IUserRepository
	provider       interfaces.IPaymentProvider
	commissionRate float64
	platformEmail  string
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(
	repo interfaces.IPayoutRepository,
	requests interfaces.IRequestRepository,
	quotations interfaces.IQuotationRepository,
	users interfaces.IUserRepository,
	provider interfaces.IPaymentProvider,
	commissionRate float64,
	platformEmail string,
) *PayoutUseCase {
	return &PayoutUseCase{
		repo:           repo,
		requests:       requests,
		quotations:     quotations,
		users:          users,
		provider:       provider,
		commissionRate: commissionRate,
		platformEmail:  platformEmail,
	}
}

// Settle creates the ledger row and issues the provider payout for one
// applied capture. The row is keyed by request id, so a second settlement
// attempt for the same request is rejected by the conditional insert before
// any provider call is made.
func (u *PayoutUseCase) Settle(ctx context.Context, r entities.Request, q entities.Quotation, p entities.Payment) (entities.Payout, error) {
	handyman, err := u.users.GetByID(ctx, r.HandymanID)
	if err != nil {
		return entities.Payout{}, err
	}
	if handyman.ID == "" {
		return entities.Payout{}, ErrHandymanNotFound
	}

	commission := round2(p.Amount * u.commissionRate)
	handymanAmount := round2(p.Amount - commission)
	senderBatchID := fmt.Sprintf("batch_%s", uuid.NewString())

	now := time.Now().UTC()
	payout := entities.Payout{
		ID:                         uuid.NewString(),
		HandymanID:                 r.HandymanID,
		RequestID:                  r.ID,
		QuotationID:                q.ID,
		RequestTitle:               r.Title,
		ClientPaymentAmount:        q.Amount,
		ProviderFeeOnClientPayment: p.ProviderFee,
		AppCommission:              commission,
		AmountSentToHandyman:       handymanAmount,
		HandymanNetAmount:          handymanAmount,
		Currency:                   p.Currency,
		SenderBatchID:              senderBatchID,
		Status:                     "PENDING",
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	saved, err := u.repo.Create(ctx, payout)
	if err != nil {
		return entities.Payout{}, err
	}

	items := []interfaces.PayoutItem{
		{
			Receiver:     handyman.Email,
			Note:         "Handyman Payment",
			SenderItemID: uuid.NewString(),
			Currency:     p.Currency,
			Amount:       handymanAmount,
		},
	}
	if u.platformEmail != "" {
		items = append(items, interfaces.PayoutItem{
			Receiver:     u.platformEmail,
			Note:         "Platform Fee",
			SenderItemID: uuid.NewString(),
			Currency:     p.Currency,
			Amount:       commission,
		})
	}
	batchID, err := u.provider.CreatePayout(ctx, senderBatchID, items)
	if err != nil {
		// The ledger row stays as the settlement intent; status callbacks or
		// a manual retry reconcile it.
		log.Printf("[payout][usecase] provider payout failed sender_batch_id=%s err=%v", senderBatchID, err)
		return saved, pkg.NewDependencyFailure("Failed to create provider payout", err)
	}

	patched, err := u.repo.UpdateBySenderBatchID(ctx, senderBatchID, entities.PayoutPatch{Status: "SENT"})
	if err != nil {
		return saved, err
	}
	if patched.ID != "" {
		saved = patched
	}
	saved.PayoutBatchID = batchID
	log.Printf("[payout][usecase] settled request_id=%s sender_batch_id=%s batch_id=%s net=%.2f %s",
		r.ID, senderBatchID, batchID, handymanAmount, p.Currency)
	return saved, nil
}

func (u *PayoutUseCase) UpdateBySenderBatchID(ctx context.Context, senderBatchID string, patch entities.PayoutPatch) (PayoutUpdateResult, error) {
	senderBatchID = strings.TrimSpace(senderBatchID)
	if senderBatchID == "" {
		return PayoutUpdateResult{}, ErrInvalidPayoutBatch
	}
	updated, err := u.repo.UpdateBySenderBatchID(ctx, senderBatchID, patch)
	if err != nil {
		return PayoutUpdateResult{}, err
	}
	if updated.ID == "" {
		return PayoutUpdateResult{Found: false}, nil
	}
	return PayoutUpdateResult{Found: true, Payout: updated}, nil
}

func (u *PayoutUseCase) FindHandymanPayoutByRequest(ctx context.Context, handymanID, requestID string) (HandymanPayoutView, error) {
	handymanID = strings.TrimSpace(handymanID)
	requestID = strings.TrimSpace(requestID)
	if handymanID == "" || requestID == "" {
		return HandymanPayoutView{}, ErrInvalidRequestID
	}

	payout, err := u.repo.FindByHandymanAndRequest(ctx, handymanID, requestID)
	if err != nil {
		return HandymanPayoutView{}, err
	}
	if payout.ID == "" {
		return HandymanPayoutView{}, ErrPayoutNotFound
	}
	r, err := u.requests.GetByID(ctx, payout.RequestID)
	if err != nil {
		return HandymanPayoutView{}, err
	}
	if r.ID == "" {
		return HandymanPayoutView{}, ErrRequestNotFound
	}
	client, err := u.users.GetByID(ctx, r.ClientID)
	if err != nil {
		return HandymanPayoutView{}, err
	}
	if client.ID == "" {
		return HandymanPayoutView{}, ErrClientNotFound
	}

	return HandymanPayoutView{
		ClientName:                 client.Name,
		ClientLastName:             client.LastName,
		RequestTitle:               r.Title,
		RequestDescription:         r.Description,
		CreatedAt:                  r.CreatedAt,
		CompletedAt:                r.UpdatedAt,
		ClientPaymentAmount:        payout.ClientPaymentAmount,
		ProviderFeeOnClientPayment: payout.ProviderFeeOnClientPayment,
		AppCommission:              payout.AppCommission,
		HandymanNetAmount:          payout.HandymanNetAmount,
	}, nil
}

func (u *PayoutUseCase) FindClientInvoiceByRequestID(ctx context.Context, clientID, requestID string) (ClientInvoiceView, error) {
	clientID = strings.TrimSpace(clientID)
	requestID = strings.TrimSpace(requestID)
	if clientID == "" || requestID == "" {
		return ClientInvoiceView{}, ErrInvalidRequestID
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return ClientInvoiceView{}, err
	}
	if r.ID == "" {
		return ClientInvoiceView{}, ErrRequestNotFound
	}
	if r.ClientID != clientID {
		return ClientInvoiceView{}, pkg.NewForbidden("You are not authorized to view this invoice")
	}
	q, err := u.quotations.GetByRequestID(ctx, r.ID)
	if err != nil {
		return ClientInvoiceView{}, err
	}
	if q.ID == "" {
		return ClientInvoiceView{}, ErrQuotationNotFound
	}
	handyman, err := u.users.GetByID(ctx, r.HandymanID)
	if err != nil {
		return ClientInvoiceView{}, err
	}

	return ClientInvoiceView{
		HandymanName:        handyman.Name,
		HandymanLastName:    handyman.LastName,
		RequestTitle:        r.Title,
		RequestDescription:  r.Description,
		CreatedAt:           r.CreatedAt,
		CompletedAt:         r.UpdatedAt,
		ClientPaymentAmount: q.Amount,
	}, nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
