package handlers

import (
	"errors"
	"net/http"

	request "serviexpress/internal/adapter/http/dto/request"
	response "serviexpress/internal/adapter/http/dto/response"
	"serviexpress/internal/usecase"
	"serviexpress/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation issues the handyman's quotation for an accepted request.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.QuotationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actorID, c.Param("request_id"), usecase.QuotationInput{
		Amount:      payload.Amount,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Accept(c.Request.Context(), actorID, c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

// RejectQuotation removes the quotation and reopens the request for a new
// one. 204 because there is nothing left to return.
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Reject(c.Request.Context(), actorID, c.Param("quotation_id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.QuotationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actorID, c.Param("quotation_id"), usecase.QuotationInput{
		Amount:      payload.Amount,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

func (h *QuotationHandler) GetQuotationByRequest(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	q, err := h.usecase.GetByRequestID(c.Request.Context(), actorID, c.Param("request_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidActorID), errors.Is(err, usecase.ErrInvalidQuotationValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotQuotationOwner), errors.Is(err, usecase.ErrNotRequestOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to act on this quotation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
