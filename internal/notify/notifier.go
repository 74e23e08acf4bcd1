package notify

import (
	"context"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/messaging"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// Notifier delivers notifications without blocking the caller
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Notify schedules delivery of a notification. Failures are logged and never returned.
	Notify(ctx context.Context, notification domain.Notification)
	// Close waits for queued deliveries to finish
	Close()
}

// Config holds the configuration for the notification dispatcher
type Config struct {
	PoolSize  int
	QueueSize int
}

type dispatcher struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	metrics   *metrics.Metrics
	pool      pond.Pool
	closed    atomic.Bool
}

// NewNotifier creates a dispatcher that stores every notification in the user's inbox and,
// when a publisher is given, also publishes it to the message broker
func NewNotifier(cfg Config, st store.Store, publisher messaging.Publisher, clock adapter.Clock, m *metrics.Metrics) Notifier {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	return &dispatcher{
		store:     st,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		pool: pond.NewPool(
			cfg.PoolSize,
			pond.WithQueueSize(cfg.QueueSize),
		),
	}
}

// Notify schedules delivery of a notification
func (d *dispatcher) Notify(ctx context.Context, notification domain.Notification) {
	if d.closed.Load() {
		logger.WarnCtx(ctx, "Notifier closed, dropping notification", zap.String("user_id", notification.UserID))
		return
	}

	if notification.ID == "" {
		notification.ID = ulid.Make().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = d.clock.Now()
	}

	// Delivery outlives the request that triggered it
	deliveryCtx := context.WithoutCancel(ctx)

	_, ok := d.pool.TrySubmit(func() {
		d.deliver(deliveryCtx, notification)
	})
	if !ok {
		d.metrics.NotificationFailed("queue")
		logger.WarnCtx(ctx, "Notification queue full, dropping notification",
			zap.String("user_id", notification.UserID),
			zap.String("type", string(notification.Type)),
		)
	}
}

func (d *dispatcher) deliver(ctx context.Context, notification domain.Notification) {
	err := d.store.CreateNotification(ctx, &schema.Notification{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		ProductID: notification.ProductID,
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		d.metrics.NotificationFailed("store")
		logger.ErrorCtx(ctx, err,
			zap.String("notification_id", notification.ID),
			zap.String("user_id", notification.UserID),
		)
	}

	if d.publisher == nil {
		return
	}

	if err := d.publisher.PublishNotification(ctx, notification); err != nil {
		d.metrics.NotificationFailed("broker")
		logger.ErrorCtx(ctx, err,
			zap.String("notification_id", notification.ID),
			zap.String("user_id", notification.UserID),
		)
	}
}

// Close waits for queued deliveries to finish
func (d *dispatcher) Close() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}
	d.pool.StopAndWait()
}
