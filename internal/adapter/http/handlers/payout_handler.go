package handlers

import (
	"errors"
	"net/http"

	"serviexpress/internal/usecase"
	"serviexpress/pkg"

	"github.com/gin-gonic/gin"
)

// PayoutHandler exposes the settlement ledger's read views.

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// GetHandymanPayout returns the caller's settlement breakdown for one
// completed request.
func (h *PayoutHandler) GetHandymanPayout(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	view, err := h.usecase.FindHandymanPayoutByRequest(c.Request.Context(), actorID, c.Param("request_id"))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetClientInvoice returns the invoice projection for the caller's request.
func (h *PayoutHandler) GetClientInvoice(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	view, err := h.usecase.FindClientInvoiceByRequestID(c.Request.Context(), actorID, c.Param("request_id"))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func mapPayoutError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound), errors.Is(err, usecase.ErrHandymanNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
