package interfaces

import "context"

// ChannelMetadata is the partial metadata mirrored into a chat channel. The
// engine writes it and never reads it back as a source of truth.
type ChannelMetadata map[string]interface{}

// IChatGateway abstracts the external real-time messaging provider
// (e.g. Stream Chat). Whether a failure is fatal is the caller's decision,
// expressed through the usecases' notify policy.
type IChatGateway interface {
	CreateChannel(ctx context.Context, channelID string, memberIDs []string, createdByID string, metadata ChannelMetadata) error
	SendMessage(ctx context.Context, channelID, userID, text string) error
	UpdateChannelMetadata(ctx context.Context, channelID string, metadata ChannelMetadata) error
}

// WebhookSignature carries the provider transmission headers needed to
// verify an inbound webhook call against the provider.
type WebhookSignature struct {
	TransmissionID   string
	TransmissionTime string
	CertURL          string
	AuthAlgo         string
	TransmissionSig  string
}

// PayoutItem is one receiver line of an outbound payout batch.
type PayoutItem struct {
	Receiver     string
	Note         string
	SenderItemID string
	Currency     string
	Amount       float64
}

// IPaymentProvider abstracts the external payment processor (e.g. PayPal).
// The engine only needs webhook authenticity checks and payout operations;
// inbound money movement arrives through webhooks.
type IPaymentProvider interface {
	VerifyWebhookSignature(ctx context.Context, sig WebhookSignature, rawBody []byte) (bool, error)
	CreatePayout(ctx context.Context, senderBatchID string, items []PayoutItem) (batchID string, err error)
	GetPayoutStatus(ctx context.Context, batchID string) (status string, err error)
}

// ICompletionNotifier receives a signal after a completion flag is
// persisted. The observer consuming the signals promotes the request when
// both parties have confirmed; duplicate signals are harmless.
type ICompletionNotifier interface {
	Signal(requestID string)
}
