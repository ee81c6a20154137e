package worker

import (
	"context"
	"log"

	"serviexpress/internal/usecase"
	"serviexpress/internal/usecase/interfaces"
)

// CompletionObserver watches for completion-flag writes and promotes a
// request to completed once both parties have confirmed. Signals are
// at-most-once hints; the promotion itself is a conditional write, so a
// dropped or duplicated signal never corrupts state. A request whose signal
// is lost is promoted on the next Complete call for the other role.
type CompletionObserver struct {
	signals chan string
}

var _ interfaces.ICompletionNotifier = (*CompletionObserver)(nil)

// NewCompletionObserver takes no dependencies so it can be handed to the
// request usecase before the consumer side starts; Run receives the usecase.
func NewCompletionObserver() *CompletionObserver {
	return &CompletionObserver{signals: make(chan string, 64)}
}

// Signal never blocks the caller; completion flows must not stall on the
// observer.
func (o *CompletionObserver) Signal(requestID string) {
	select {
	case o.signals <- requestID:
	default:
		log.Printf("[completion][worker] signal buffer full, dropping request_id=%s", requestID)
	}
}

func (o *CompletionObserver) Run(ctx context.Context, requests usecase.IRequestUseCase) {
	log.Printf("[completion][worker] started")
	for {
		select {
		case <-ctx.Done():
			log.Printf("[completion][worker] stopped")
			return
		case requestID := <-o.signals:
			if err := requests.PromoteCompleted(ctx, requestID); err != nil {
				log.Printf("[completion][worker] promote failed request_id=%s err=%v", requestID, err)
			}
		}
	}
}
