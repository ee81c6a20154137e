package payments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"serviexpress/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
var ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")

// PayPalGateway verifies inbound webhooks and sends payouts through the
// PayPal REST API.
type PayPalGateway struct {
	client    *paypal.Client
	webhookID string
	mockMode  bool
}

var _ interfaces.IPaymentProvider = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, secret, webhookID string, live bool) (*PayPalGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayPalGateway{mockMode: true}, nil
	}

	if clientID == "" || secret == "" {
		log.Printf("[payment][gateway] missing PayPal credentials")
		return nil, ErrMissingPayPalCredentials
	}

	apiBase := paypal.APIBaseSandBox
	if live {
		apiBase = paypal.APIBaseLive
	}
	client, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk client err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] PayPal client initialized live=%v", live)

	return &PayPalGateway{client: client, webhookID: webhookID}, nil
}

// VerifyWebhookSignature replays the transmission headers and raw body
// against PayPal's verify-webhook-signature endpoint. false with a nil error
// means the call succeeded and the signature is bad.
func (g *PayPalGateway) VerifyWebhookSignature(ctx context.Context, sig interfaces.WebhookSignature, rawBody []byte) (bool, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify transmission_id=%s", sig.TransmissionID)
		return true, nil
	}
	if g == nil || g.client == nil {
		return false, ErrPayPalGatewayNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", bytes.NewReader(rawBody))
	if err != nil {
		return false, err
	}
	req.Header.Set("Paypal-Transmission-Id", sig.TransmissionID)
	req.Header.Set("Paypal-Transmission-Time", sig.TransmissionTime)
	req.Header.Set("Paypal-Cert-Url", sig.CertURL)
	req.Header.Set("Paypal-Auth-Algo", sig.AuthAlgo)
	req.Header.Set("Paypal-Transmission-Sig", sig.TransmissionSig)

	resp, err := g.client.VerifyWebhookSignature(ctx, req, g.webhookID)
	if err != nil {
		log.Printf("[payment][gateway] verify call failed transmission_id=%s err=%v", sig.TransmissionID, err)
		return false, err
	}
	return strings.EqualFold(resp.VerificationStatus, "SUCCESS"), nil
}

func (g *PayPalGateway) CreatePayout(ctx context.Context, senderBatchID string, items []interfaces.PayoutItem) (string, error) {
	if g != nil && g.mockMode {
		batchID := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock payout sender_batch_id=%s items=%d batch_id=%s", senderBatchID, len(items), batchID)
		return batchID, nil
	}
	if g == nil || g.client == nil {
		return "", ErrPayPalGatewayNotConfigured
	}

	payout := paypal.Payout{
		SenderBatchHeader: &paypal.SenderBatchHeader{
			SenderBatchID: senderBatchID,
			EmailSubject:  "You have a payment from ServiExpress",
		},
	}
	for _, item := range items {
		payout.Items = append(payout.Items, paypal.PayoutItem{
			RecipientType: "EMAIL",
			Receiver:      item.Receiver,
			Note:          item.Note,
			SenderItemID:  item.SenderItemID,
			Amount: &paypal.AmountPayout{
				Currency: item.Currency,
				Value:    strconv.FormatFloat(item.Amount, 'f', 2, 64),
			},
		})
	}

	resp, err := g.client.CreatePayout(ctx, payout)
	if err != nil {
		log.Printf("[payment][gateway] payout create failed sender_batch_id=%s err=%v", senderBatchID, err)
		return "", err
	}
	if resp.BatchHeader == nil {
		return "", fmt.Errorf("payout response missing batch header sender_batch_id=%s", senderBatchID)
	}
	log.Printf("[payment][gateway] payout created sender_batch_id=%s batch_id=%s status=%s",
		senderBatchID, resp.BatchHeader.PayoutBatchID, resp.BatchHeader.BatchStatus)
	return resp.BatchHeader.PayoutBatchID, nil
}

func (g *PayPalGateway) GetPayoutStatus(ctx context.Context, batchID string) (string, error) {
	if g != nil && g.mockMode {
		return "SUCCESS", nil
	}
	if g == nil || g.client == nil {
		return "", ErrPayPalGatewayNotConfigured
	}

	resp, err := g.client.GetPayout(ctx, batchID)
	if err != nil {
		return "", err
	}
	if resp.BatchHeader == nil {
		return "", fmt.Errorf("payout response missing batch header batch_id=%s", batchID)
	}
	return resp.BatchHeader.BatchStatus, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}
