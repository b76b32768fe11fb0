package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

const taskTimeout = 30 * time.Second

// Client ставит задачи подтверждения бронирований в очередь asynq
type Client struct {
	queue     TaskEnqueuer
	queueName string
	maxRetry  int
	metrics   Metrics
	log       Logger
}

// NewClient создает новый экземпляр клиента очереди подтверждений
func NewClient(queue TaskEnqueuer, queueName string, maxRetry int, metrics Metrics, log Logger) *Client {
	return &Client{
		queue:     queue,
		queueName: queueName,
		maxRetry:  maxRetry,
		metrics:   metrics,
		log:       log,
	}
}

// NewTask создает задачу asynq для бронирования
func NewTask(b *domain.Booking) (*asynq.Task, error) {
	payload, err := json.Marshal(PayloadFromBooking(b))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInvalidPayload, err)
	}
	return asynq.NewTask(TypeBookingConfirmation, payload), nil
}

// SendConfirmation ставит отправку подтверждения в очередь
// Повторная постановка для того же бронирования не считается ошибкой
func (c *Client) SendConfirmation(ctx context.Context, b *domain.Booking) error {
	task, err := NewTask(b)
	if err != nil {
		c.metrics.IncConfirmationEnqueued(err)
		return err
	}

	info, err := c.queue.EnqueueContext(ctx, task,
		asynq.Queue(c.queueName),
		asynq.MaxRetry(c.maxRetry),
		asynq.Timeout(taskTimeout),
		asynq.TaskID("confirmation:"+b.ID),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		c.log.Info("SendConfirmation: task for booking id=%s already enqueued", b.ID)
		c.metrics.IncConfirmationEnqueued(nil)
		return nil
	}
	if err != nil {
		c.metrics.IncConfirmationEnqueued(err)
		return fmt.Errorf("%w: booking id=%s: %v", ErrEnqueue, b.ID, err)
	}

	c.metrics.IncConfirmationEnqueued(nil)
	c.log.Info("SendConfirmation: enqueued task id=%s queue=%s for booking id=%s", info.ID, info.Queue, b.ID)
	return nil
}
