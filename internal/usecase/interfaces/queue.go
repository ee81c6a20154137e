package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

const (
	JobKindCaptureCompleted = "capture-completed"
	JobKindPayoutItem       = "payout-item"
)

// WebhookJob is one verified provider event waiting to be applied.
type WebhookJob struct {
	Kind       string          `json:"kind"`
	EventID    string          `json:"event_id"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// IPaymentQueue is a durable at-least-once job queue. The webhook handler
// enqueues after signature verification; a worker drains it. Receipt is an
// opaque handle used to settle the in-flight job.
type IPaymentQueue interface {
	Enqueue(ctx context.Context, job WebhookJob) error
	// Dequeue blocks up to the queue's poll timeout. An empty receipt means
	// no job was available.
	Dequeue(ctx context.Context) (WebhookJob, string, error)
	Ack(ctx context.Context, receipt string) error
	// Nack settles the in-flight job and re-enqueues it with the attempt
	// count bumped.
	Nack(ctx context.Context, job WebhookJob, receipt string) error
}
