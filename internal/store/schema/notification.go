package schema

import (
	"time"

	"github.com/feral-file/farmtrace/internal/domain"
)

// Notification represents the notifications table - per-user inbox entries
type Notification struct {
	// ID is a ULID so notifications sort by creation time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// UserID is the addressee
	UserID string `gorm:"column:user_id;not null;type:varchar(36);index:idx_notifications_user_read,priority:1"`
	// Title is the short headline
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the notification body
	Message string `gorm:"column:message;not null;type:text"`
	// Type identifies the kind of notification
	Type domain.NotificationType `gorm:"column:type;not null;type:varchar(32)"`
	// ProductID references the related product, if any
	ProductID *string `gorm:"column:product_id;type:varchar(36)"`
	// Read indicates the user has acknowledged the notification
	Read bool `gorm:"column:read;not null;default:false;index:idx_notifications_user_read,priority:2"`
	// CreatedAt is the timestamp when the notification was created
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
