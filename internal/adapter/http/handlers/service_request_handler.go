package handlers

import (
	"context"
	"errors"
	"net/http"

	request "serviexpress/internal/adapter/http/dto/request"
	response "serviexpress/internal/adapter/http/dto/response"
	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase"
	"serviexpress/pkg"

	"github.com/gin-gonic/gin"
)

// Actor identity comes from the gateway in front of this service; it
// resolves the JWT and forwards the subject in these headers.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingActor          = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Missing user identity header", http.StatusUnauthorized)
)

// ServiceRequestHandler handles HTTP requests for the service request
// lifecycle.

type ServiceRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// CreateRequest opens a request against a handyman addressed by email.
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.ServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actorID, usecase.CreateRequestInput{
		HandymanEmail: payload.HandymanEmail,
		Title:         payload.Title,
		Description:   payload.Description,
		Location: entities.Location{
			Municipality: payload.Location.Municipality,
			Neighborhood: payload.Location.Neighborhood,
			Address:      payload.Location.Address,
		},
		Categories: payload.NormalizedCategories(),
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *ServiceRequestHandler) AcceptRequest(c *gin.Context) {
	h.patchStatusByHandyman(c, h.usecase.Accept)
}

func (h *ServiceRequestHandler) RejectRequest(c *gin.Context) {
	h.patchStatusByHandyman(c, h.usecase.Reject)
}

func (h *ServiceRequestHandler) CancelRequest(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Cancel(c.Request.Context(), actorID, c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

// CompleteRequest flips the caller's completion flag. The request moves to
// completed asynchronously once both sides have confirmed.
func (h *ServiceRequestHandler) CompleteRequest(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	role, ok := roleFrom(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Complete(c.Request.Context(), actorID, c.Param("request_id"), role)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// ListRequests lists the caller's requests, on whichever side of the
// engagement they are.
func (h *ServiceRequestHandler) ListRequests(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	role, ok := roleFrom(c)
	if !ok {
		return
	}

	var (
		items []entities.Request
		err   error
	)
	if role == entities.RoleHandyman {
		items, err = h.usecase.ListByHandyman(c.Request.Context(), actorID)
	} else {
		items, err = h.usecase.ListByClient(c.Request.Context(), actorID)
	}
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(items))
}

// GetActiveWithHandyman returns the caller's active request against one
// handyman, if any. 404 means the pair is free.
func (h *ServiceRequestHandler) GetActiveWithHandyman(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	r, err := h.usecase.FindActiveByPair(c.Request.Context(), actorID, c.Param("handyman_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

func (h *ServiceRequestHandler) patchStatusByHandyman(
	c *gin.Context,
	updater func(ctx context.Context, handymanID, requestID string) (entities.Request, error),
) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	updated, err := updater(c.Request.Context(), actorID, c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func actorFrom(c *gin.Context) (string, bool) {
	actorID := c.GetHeader(HeaderUserID)
	if actorID == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return "", false
	}
	return actorID, true
}

func roleFrom(c *gin.Context) (entities.Role, bool) {
	switch role := entities.Role(c.GetHeader(HeaderUserRole)); role {
	case entities.RoleClient, entities.RoleHandyman:
		return role, true
	default:
		badRole := pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid or missing user role header", http.StatusBadRequest)
		c.JSON(badRole.HTTPStatus, badRole.ToHTTPError())
		return "", false
	}
}

func mapRequestError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHandymanNotFound):
		return pkg.NewDomainErrorSimple("HANDYMAN_NOT_FOUND", "Handyman not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to act on this request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCoverageAreaMismatch):
		return pkg.NewDomainErrorSimple("COVERAGE_AREA_MISMATCH", "Handyman does not cover this municipality", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
