package messaging

import (
	"context"

	"github.com/feral-file/farmtrace/internal/domain"
)

// Publisher defines the interface for publishing notifications to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes a notification to the message broker
	PublishNotification(ctx context.Context, notification domain.Notification) error
	// Close closes the connection
	Close()
}
