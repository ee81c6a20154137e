package response

import (
	"time"

	"serviexpress/internal/domain/entities"
)

type QuotationResponse struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	HandymanID  string    `json:"handyman_id"`
	ClientID    string    `json:"client_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:          q.ID,
		RequestID:   q.RequestID,
		HandymanID:  q.HandymanID,
		ClientID:    q.ClientID,
		Amount:      q.Amount,
		Description: q.Description,
		Status:      string(q.Status),
		ExpiresAt:   q.ExpiresAt,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
