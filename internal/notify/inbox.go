package notify

import (
	"context"
	"fmt"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// Inbox reads and acknowledges stored notifications
//
//go:generate mockgen -source=inbox.go -destination=../mocks/inbox.go -package=mocks -mock_names=Inbox=MockInbox
type Inbox interface {
	// List returns the notifications of a user, newest first
	List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*schema.Notification, error)
	// MarkRead marks a notification of the user as read
	MarkRead(ctx context.Context, id string, userID string) error
}

type inbox struct {
	store store.Store
}

// NewInbox creates a new inbox
func NewInbox(st store.Store) Inbox {
	return &inbox{store: st}
}

func (i *inbox) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*schema.Notification, error) {
	user, err := i.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	notifications, err := i.store.ListNotifications(ctx, store.NotificationQueryFilter{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []*schema.Notification{}
	}
	return notifications, nil
}

func (i *inbox) MarkRead(ctx context.Context, id string, userID string) error {
	ok, err := i.store.MarkNotificationRead(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !ok {
		return domain.ErrNotificationNotFound
	}
	return nil
}
