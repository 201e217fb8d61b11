package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/service"
)

// ErrQueueFull is returned to the publisher when an event is dropped.
var ErrQueueFull = errors.New("notification queue full")

// NotificationWorker moves notification delivery off the request path.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
	queue         chan events.Event
	wg            sync.WaitGroup
}

// NewNotificationWorker creates a worker with a bounded queue.
func NewNotificationWorker(notifications *service.NotificationService, logger *zap.Logger, queueSize int) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	return &NotificationWorker{
		notifications: notifications,
		logger:        logger,
		queue:         make(chan events.Event, queueSize),
	}
}

// Subscribe enqueues every notification event published on dispatcher.
func (w *NotificationWorker) Subscribe(dispatcher events.Dispatcher) {
	for _, t := range service.NotificationEvents {
		dispatcher.Subscribe(t, w.enqueue)
	}
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
		return nil
	default:
		w.logger.Warn("dropping notification", zap.String("event_type", string(event.Type)), zap.String("subject_id", event.SubjectID))
		return ErrQueueFull
	}
}

// Start runs concurrency consumers until ctx is cancelled.
func (w *NotificationWorker) Start(ctx context.Context, concurrency int) {
	if concurrency <= 0 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case event := <-w.queue:
					if err := w.notifications.Handle(ctx, event); err != nil {
						w.logger.Error("notification failed", zap.String("event_id", event.ID), zap.Error(err))
					}
				}
			}
		}()
	}
}

// Wait blocks until every consumer has returned.
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

// StartNotificationWorker subscribes a worker to dispatcher and starts it.
func StartNotificationWorker(ctx context.Context, dispatcher events.Dispatcher, notifications *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	w := NewNotificationWorker(notifications, logger, 0)
	w.Subscribe(dispatcher)
	w.Start(ctx, 2)
	return w
}
