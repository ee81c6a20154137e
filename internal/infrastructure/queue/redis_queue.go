package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"serviexpress/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	defaultQueueKey      = "serviexpress:webhooks"
	defaultProcessingKey = "serviexpress:webhooks:processing"
)

// RedisQueue is a reliable-queue over a Redis list pair. BLMOVE parks the
// job on a processing list while it is in flight; the raw moved payload is
// the receipt, so Ack and Nack settle it with a single LREM.
//
// Jobs survive process crashes on the processing list. Sweeping those back is
// an operational concern (redis-cli LMOVE), not the worker's.
type RedisQueue struct {
	rdb           *redis.Client
	queueKey      string
	processingKey string
	pollTimeout   time.Duration
}

var _ interfaces.IPaymentQueue = (*RedisQueue)(nil)

func NewRedisQueue(rdb *redis.Client, pollTimeout time.Duration) *RedisQueue {
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &RedisQueue{
		rdb:           rdb,
		queueKey:      defaultQueueKey,
		processingKey: defaultProcessingKey,
		pollTimeout:   pollTimeout,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job interfaces.WebhookJob) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := q.rdb.LPush(ctx, q.queueKey, raw).Err(); err != nil {
		return err
	}
	log.Printf("[queue][redis] enqueued kind=%s event_id=%s attempts=%d", job.Kind, job.EventID, job.Attempts)
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (interfaces.WebhookJob, string, error) {
	raw, err := q.rdb.BLMove(ctx, q.queueKey, q.processingKey, "RIGHT", "LEFT", q.pollTimeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return interfaces.WebhookJob{}, "", nil
		}
		return interfaces.WebhookJob{}, "", err
	}

	var job interfaces.WebhookJob
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		// A malformed entry would wedge the queue if left in flight. Drop it.
		log.Printf("[queue][redis] dropping malformed job err=%v", err)
		q.rdb.LRem(ctx, q.processingKey, 1, raw)
		return interfaces.WebhookJob{}, "", nil
	}
	return job, raw, nil
}

func (q *RedisQueue) Ack(ctx context.Context, receipt string) error {
	return q.rdb.LRem(ctx, q.processingKey, 1, receipt).Err()
}

func (q *RedisQueue) Nack(ctx context.Context, job interfaces.WebhookJob, receipt string) error {
	job.Attempts++
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	pipe := q.rdb.TxPipeline()
	pipe.LRem(ctx, q.processingKey, 1, receipt)
	pipe.LPush(ctx, q.queueKey, raw)
	_, err = pipe.Exec(ctx)
	return err
}
