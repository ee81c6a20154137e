package worker

import (
	"context"
	"errors"
	"log"

	"serviexpress/internal/usecase"
	"serviexpress/internal/usecase/interfaces"
)

// CaptureWorker drains the verified-webhook queue and applies each event
// through the payment usecase. Events are at-least-once: a failed apply is
// re-enqueued with its attempt count bumped until maxAttempts, then dropped
// with a loud log line.
type CaptureWorker struct {
	queue       interfaces.IPaymentQueue
	payments    usecase.IPaymentUseCase
	payouts     usecase.IPayoutUseCase
	maxAttempts int
}

func NewCaptureWorker(
	queue interfaces.IPaymentQueue,
	payments usecase.IPaymentUseCase,
	payouts usecase.IPayoutUseCase,
	maxAttempts int,
) *CaptureWorker {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &CaptureWorker{
		queue:       queue,
		payments:    payments,
		payouts:     payouts,
		maxAttempts: maxAttempts,
	}
}

func (w *CaptureWorker) Run(ctx context.Context) {
	log.Printf("[capture][worker] started max_attempts=%d", w.maxAttempts)
	for {
		if ctx.Err() != nil {
			log.Printf("[capture][worker] stopped")
			return
		}

		job, receipt, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			log.Printf("[capture][worker] dequeue failed err=%v", err)
			continue
		}
		if receipt == "" {
			continue
		}

		if err := w.handle(ctx, job); err != nil {
			w.settleFailed(ctx, job, receipt, err)
			continue
		}
		if err := w.queue.Ack(ctx, receipt); err != nil {
			log.Printf("[capture][worker] ack failed kind=%s event_id=%s err=%v", job.Kind, job.EventID, err)
		}
	}
}

func (w *CaptureWorker) handle(ctx context.Context, job interfaces.WebhookJob) error {
	switch job.Kind {
	case interfaces.JobKindCaptureCompleted:
		res, err := w.payments.ApplyCapture(ctx, job.EventID, job.Payload)
		if err != nil {
			return err
		}
		if !res.Applied {
			return nil
		}
		// Settlement failures are not retried through the queue: the ledger
		// row created by Settle survives and reconciliation catches up via
		// payout-item callbacks or operator action.
		if _, err := w.payouts.Settle(ctx, res.Request, res.Quotation, res.Payment); err != nil {
			log.Printf("[capture][worker] settlement failed request_id=%s quotation_id=%s err=%v",
				res.Request.ID, res.Quotation.ID, err)
		}
		return nil
	case interfaces.JobKindPayoutItem:
		return w.payments.ApplyPayoutItem(ctx, job.Payload)
	default:
		log.Printf("[capture][worker] unknown job kind=%s event_id=%s, dropping", job.Kind, job.EventID)
		return nil
	}
}

func (w *CaptureWorker) settleFailed(ctx context.Context, job interfaces.WebhookJob, receipt string, cause error) {
	if job.Attempts+1 >= w.maxAttempts {
		log.Printf("[capture][worker] dropping job after %d attempts kind=%s event_id=%s err=%v",
			job.Attempts+1, job.Kind, job.EventID, cause)
		if err := w.queue.Ack(ctx, receipt); err != nil {
			log.Printf("[capture][worker] drop ack failed event_id=%s err=%v", job.EventID, err)
		}
		return
	}
	log.Printf("[capture][worker] apply failed, retrying kind=%s event_id=%s attempts=%d err=%v",
		job.Kind, job.EventID, job.Attempts+1, cause)
	if err := w.queue.Nack(ctx, job, receipt); err != nil {
		log.Printf("[capture][worker] nack failed event_id=%s err=%v", job.EventID, err)
	}
}
