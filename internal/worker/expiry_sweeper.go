package worker

import (
	"context"
	"log"
	"time"

	"serviexpress/internal/usecase"
)

// ExpirySweeper periodically expires pending requests whose acceptance
// window has passed.
type ExpirySweeper struct {
	requests usecase.IRequestUseCase
	interval time.Duration
}

func NewExpirySweeper(requests usecase.IRequestUseCase, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpirySweeper{requests: requests, interval: interval}
}

func (s *ExpirySweeper) Run(ctx context.Context) {
	log.Printf("[expiry][worker] started interval=%s", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[expiry][worker] stopped")
			return
		case <-ticker.C:
			count, err := s.requests.SweepExpired(ctx)
			if err != nil {
				log.Printf("[expiry][worker] sweep failed err=%v", err)
				continue
			}
			if count > 0 {
				log.Printf("[expiry][worker] expired count=%d", count)
			}
		}
	}
}
