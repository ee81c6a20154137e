package entities

import "time"

// QuotationStatus tracks the priced proposal tied to one request.
//
// Rejection deletes the quotation row (the request reopens to accepted), so
// "rejected" only appears on rows persisted before the delete-and-reopen
// behavior; re-issuing such a row resets it to pending.

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusPayed    QuotationStatus = "payed"
)

// Quotation is a handyman's priced proposal against one Request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// At most one quotation is outstanding per request; the request status guard
// (only `accepted` requests can be quoted) enforces it across retries.
type Quotation struct {
	ID          string          `json:"id"`
	RequestID   string          `json:"request_id"`
	HandymanID  string          `json:"handyman_id"`
	ClientID    string          `json:"client_id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Status      QuotationStatus `json:"status"`
	ExpiresAt   time.Time       `json:"expires_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
