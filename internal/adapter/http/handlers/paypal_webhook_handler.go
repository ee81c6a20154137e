package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"serviexpress/internal/usecase/interfaces"
	"serviexpress/pkg"

	"github.com/gin-gonic/gin"
)

const (
	eventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
	eventPayoutItemPrefix = "PAYMENT.PAYOUTS-ITEM."
)

// The response never explains why a webhook was rejected; the provider call
// logs carry the detail.
var errInvalidWebhook = pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook", http.StatusBadRequest)

// PayPalWebhookHandler receives provider event notifications, verifies their
// signature and hands them to the durable queue. No business logic runs on
// the webhook request path.

type PayPalWebhookHandler struct {
	provider interfaces.IPaymentProvider
	queue    interfaces.IPaymentQueue
}

func NewPayPalWebhookHandler(provider interfaces.IPaymentProvider, queue interfaces.IPaymentQueue) *PayPalWebhookHandler {
	return &PayPalWebhookHandler{provider: provider, queue: queue}
}

func (h *PayPalWebhookHandler) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil || len(rawBody) == 0 {
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	sig := interfaces.WebhookSignature{
		TransmissionID:   c.GetHeader("Paypal-Transmission-Id"),
		TransmissionTime: c.GetHeader("Paypal-Transmission-Time"),
		CertURL:          c.GetHeader("Paypal-Cert-Url"),
		AuthAlgo:         c.GetHeader("Paypal-Auth-Algo"),
		TransmissionSig:  c.GetHeader("Paypal-Transmission-Sig"),
	}

	ok, err := h.provider.VerifyWebhookSignature(c.Request.Context(), sig, rawBody)
	if err != nil {
		log.Printf("[webhook][handler] verification call failed transmission_id=%s err=%v", sig.TransmissionID, err)
		appErr := pkg.NewDependencyFailure("Webhook verification unavailable", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !ok {
		log.Printf("[webhook][handler] signature rejected transmission_id=%s", sig.TransmissionID)
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	var event struct {
		ID        string `json:"id"`
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(rawBody, &event); err != nil || event.ID == "" || event.EventType == "" {
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	kind, handled := jobKindFor(event.EventType)
	if !handled {
		// Acknowledge unhandled event types so the provider stops resending
		// them.
		log.Printf("[webhook][handler] ignoring event_type=%s event_id=%s", event.EventType, event.ID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	job := interfaces.WebhookJob{
		Kind:       kind,
		EventID:    event.ID,
		Payload:    json.RawMessage(rawBody),
		EnqueuedAt: time.Now().UTC(),
	}
	if err := h.queue.Enqueue(c.Request.Context(), job); err != nil {
		log.Printf("[webhook][handler] enqueue failed event_id=%s err=%v", event.ID, err)
		appErr := pkg.NewDomainError("QUEUE_UNAVAILABLE", "Failed to accept webhook", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "queued"})
}

func jobKindFor(eventType string) (string, bool) {
	switch {
	case eventType == eventCaptureCompleted:
		return interfaces.JobKindCaptureCompleted, true
	case strings.HasPrefix(eventType, eventPayoutItemPrefix):
		return interfaces.JobKindPayoutItem, true
	default:
		return "", false
	}
}
