package request

// QuotationPayload is the handyman-facing payload for issuing or re-issuing
// a quotation.
type QuotationPayload struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
}
