package interfaces

import (
	"context"
	"time"

	"serviexpress/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for Request.
//
// Mutations are conditional on the current status, so concurrent writers
// racing on the same request lose harmlessly: a failed precondition returns
// the zero entity, never an error.

type IRequestRepository interface {
	// Create inserts the request and its pair-lock item in one transaction.
	// ErrPairLocked is returned when an active request already holds the
	// client/handyman pair.
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	FindActiveByPair(ctx context.Context, clientID, handymanID string) (entities.Request, error)
	// UpdateStatus transitions the request only when its current status is in
	// from. Terminal target statuses release the pair lock. Returns the zero
	// entity when the precondition fails.
	UpdateStatus(ctx context.Context, r entities.Request, from []entities.RequestStatus, to entities.RequestStatus) (entities.Request, error)
	// SetCompletionFlag flips the role's completion flag, conditional on
	// status == payed.
	SetCompletionFlag(ctx context.Context, id string, role entities.Role) (entities.Request, error)
	// PromoteCompleted moves payed -> completed only when both completion
	// flags are set, releasing the pair lock. Zero entity when the
	// precondition no longer holds (including duplicate promotions).
	PromoteCompleted(ctx context.Context, r entities.Request) (entities.Request, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Request, error)
	ListByHandyman(ctx context.Context, handymanID string) ([]entities.Request, error)
	ListExpiredPending(ctx context.Context, now time.Time) ([]entities.Request, error)
}

// IQuotationRepository abstracts DynamoDB persistence for Quotation.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Quotation, error)
	// UpdateStatus is conditional on the current status being in from; zero
	// entity on a failed precondition.
	UpdateStatus(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.Quotation, error)
	// Reissue resets a rejected quotation to pending with new terms and a
	// fresh expiry; zero entity when the quotation is not rejected.
	Reissue(ctx context.Context, id string, amount float64, description string, expiresAt time.Time) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

// IPaymentRepository abstracts DynamoDB persistence for Payment rows.
//
// Rows are write-once; Create must fail with ErrPaymentExists when a payment
// already holds the quotation.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	FindByEventOrQuotation(ctx context.Context, webhookEventID, quotationID string) (entities.Payment, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Payment, error)
}

// IPayoutRepository abstracts DynamoDB persistence for the payout ledger.

type IPayoutRepository interface {
	Create(ctx context.Context, p entities.Payout) (entities.Payout, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Payout, error)
	// UpdateBySenderBatchID patches the matching row; zero entity when the
	// batch id is unknown.
	UpdateBySenderBatchID(ctx context.Context, senderBatchID string, patch entities.PayoutPatch) (entities.Payout, error)
	FindByHandymanAndRequest(ctx context.Context, handymanID, requestID string) (entities.Payout, error)
}

// IUserRepository is the read-only surface the engine needs from the user
// store; profile CRUD is out of scope.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role entities.Role) (entities.User, error)
}

// ISkillRepository resolves category names to skill records.

type ISkillRepository interface {
	GetByName(ctx context.Context, skillName string) (entities.Skill, error)
}
