package entities

import (
	"encoding/json"
	"time"
)

// Payout records one outbound transfer of net funds to a handyman, and backs
// the client-facing invoice view.
//
// Storage model (DynamoDB):
//   - PK: request_id (one settlement per request)
//   - GSI1 (sender_batch_id-index): sender_batch_id
//   - GSI2 (handyman_id-index): handyman_id
//
// Provider payout-item webhooks only carry the sender batch id, so async
// status callbacks patch the row through that index and never insert.
type Payout struct {
	ID         string `json:"id"`
	HandymanID string `json:"handyman_id"`
	RequestID  string `json:"request_id"`
	QuotationID string `json:"quotation_id"`

	RequestTitle string `json:"request_title"`

	ClientPaymentAmount        float64 `json:"client_payment_amount"`
	ProviderFeeOnClientPayment float64 `json:"provider_fee_on_client_payment"`
	AppCommission              float64 `json:"app_commission"`
	AmountSentToHandyman       float64 `json:"amount_sent_to_handyman"`
	ProviderFeeOnPayout        float64 `json:"provider_fee_on_payout"`
	HandymanNetAmount          float64 `json:"handyman_net_amount"`
	Currency                   string  `json:"currency"`

	PayoutBatchID string `json:"payout_batch_id"`
	PayoutItemID  string `json:"payout_item_id"`
	TransactionID string `json:"transaction_id"`
	SenderBatchID string `json:"sender_batch_id"`

	Status            string          `json:"status"`
	TransactionErrors json.RawMessage `json:"transaction_errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PayoutPatch is the partial update applied by provider status callbacks.
type PayoutPatch struct {
	ProviderFeeOnPayout float64
	PayoutItemID        string
	TransactionID       string
	Status              string
	TransactionErrors   json.RawMessage
}
