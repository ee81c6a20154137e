package entities

import "time"

// Payment is an immutable record of one successful capture reported by the
// payment provider, one-to-one with a quotation.
//
// Storage model (DynamoDB):
//   - PK: quotation_id
//   - GSI1 (webhook_event_id-index): webhook_event_id
//
// We purposely use the quotation id as PK to guarantee at most one payment
// per quotation; the conditional put makes replayed webhook deliveries
// no-ops even when two workers race on the same event.
type Payment struct {
	ID                string    `json:"id"`
	QuotationID       string    `json:"quotation_id"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	ProviderFee       float64   `json:"provider_fee"`
	TransactionID     string    `json:"transaction_id"`
	TransactionStatus string    `json:"transaction_status"`
	WebhookEventID    string    `json:"webhook_event_id"`
	PaymentMethod     string    `json:"payment_method"`
	CreatedAt         time.Time `json:"created_at"`
}
