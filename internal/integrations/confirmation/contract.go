package confirmation

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/integrations/email"
)

// TaskEnqueuer интерфейс очереди (реализуется *asynq.Client)
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Sender интерфейс отправителя писем
type Sender interface {
	Send(ctx context.Context, msg email.Message) error
}

// Metrics интерфейс метрик доставки
type Metrics interface {
	IncConfirmationEnqueued(err error)
	IncConfirmationDelivery(err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
