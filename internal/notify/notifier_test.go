package notify_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

type testNotifierMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	registry  *prometheus.Registry
}

func setupTestNotifier(t *testing.T) *testNotifierMocks {
	ctrl := gomock.NewController(t)
	return &testNotifierMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		registry:  prometheus.NewRegistry(),
	}
}

func (m *testNotifierMocks) failedCount(sink string) int {
	families, err := m.registry.Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() != "farmtrace_notifications_failed_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "sink" && label.GetValue() == sink {
					return int(metric.GetCounter().GetValue())
				}
			}
		}
	}
	return 0
}

func TestNotifier_DeliversToStoreAndBroker(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tm := setupTestNotifier(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	productID := "prod-1"

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n *schema.Notification) error {
			assert.NotEmpty(t, n.ID)
			assert.Equal(t, "user-b", n.UserID)
			assert.Equal(t, domain.NotificationTypeTransferRequested, n.Type)
			assert.Equal(t, now, n.CreatedAt)
			require.NotNil(t, n.ProductID)
			assert.Equal(t, productID, *n.ProductID)
			return nil
		})
	tm.publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n domain.Notification) error {
			assert.NotEmpty(t, n.ID)
			assert.NoError(t, ctx.Err())
			return nil
		})

	n := notify.NewNotifier(notify.Config{PoolSize: 2, QueueSize: 10}, tm.store, tm.publisher, tm.clock, metrics.New(tm.registry))

	// Delivery must survive the cancellation of the triggering request
	ctx, cancel := context.WithCancel(context.Background())
	n.Notify(ctx, domain.Notification{
		UserID:    "user-b",
		Title:     "Transfer requested",
		Message:   "alice wants to transfer tomatoes to you",
		Type:      domain.NotificationTypeTransferRequested,
		ProductID: &productID,
	})
	cancel()

	n.Close()
}

func TestNotifier_KeepsIDAndTimestamp(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tm := setupTestNotifier(t)
	defer tm.ctrl.Finish()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tm.store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n *schema.Notification) error {
			assert.Equal(t, "01HZZZZZZZZZZZZZZZZZZZZZZZ", n.ID)
			assert.Equal(t, createdAt, n.CreatedAt)
			return nil
		})

	// Without a publisher notifications only go to the inbox
	n := notify.NewNotifier(notify.Config{}, tm.store, nil, tm.clock, nil)
	n.Notify(context.Background(), domain.Notification{
		ID:        "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		UserID:    "user-a",
		Type:      domain.NotificationTypeTransferAccepted,
		CreatedAt: createdAt,
	})
	n.Close()
}

func TestNotifier_FailuresAreSwallowed(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tm := setupTestNotifier(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Now()).Times(3)
	tm.store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(3)
	tm.publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(3)

	n := notify.NewNotifier(notify.Config{PoolSize: 1, QueueSize: 10}, tm.store, tm.publisher, tm.clock, metrics.New(tm.registry))
	for i := 0; i < 3; i++ {
		n.Notify(context.Background(), domain.Notification{UserID: "user-a", Type: domain.NotificationTypeTransferRejected})
	}
	n.Close()

	assert.Equal(t, 3, tm.failedCount("store"))
	assert.Equal(t, 3, tm.failedCount("broker"))
}

func TestNotifier_DropsWhenQueueFull(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tm := setupTestNotifier(t)
	defer tm.ctrl.Finish()

	release := make(chan struct{})
	var delivered atomic.Int32

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n *schema.Notification) error {
			<-release
			delivered.Add(1)
			return nil
		}).AnyTimes()

	n := notify.NewNotifier(notify.Config{PoolSize: 1, QueueSize: 1}, tm.store, nil, tm.clock, metrics.New(tm.registry))

	// The single worker is stuck on the first delivery, so the queue overflows
	const total = 5
	for i := 0; i < total; i++ {
		n.Notify(context.Background(), domain.Notification{UserID: "user-a", Type: domain.NotificationTypeProductRegistered})
		if i == 0 {
			time.Sleep(20 * time.Millisecond)
		}
	}
	close(release)
	n.Close()

	dropped := tm.failedCount("queue")
	assert.GreaterOrEqual(t, dropped, 1)
	assert.Equal(t, total, dropped+int(delivered.Load()))
	assert.Equal(t, 0, tm.failedCount("store"))
}

func TestNotifier_NotifyAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tm := setupTestNotifier(t)
	defer tm.ctrl.Finish()

	n := notify.NewNotifier(notify.Config{}, tm.store, tm.publisher, tm.clock, nil)
	n.Close()
	n.Close()

	// No store or publisher calls are expected
	n.Notify(context.Background(), domain.Notification{UserID: "user-a"})
}
