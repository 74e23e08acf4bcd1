package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ProductEventType represents the type of a product history event
type ProductEventType string

const (
	// ProductEventTypeRegistration indicates the product and its genesis block were created
	ProductEventTypeRegistration ProductEventType = "ownership_registration"
	// ProductEventTypeTransfer indicates custody moved through an accepted transfer
	ProductEventTypeTransfer ProductEventType = "ownership_transfer"
	// ProductEventTypeAttributesUpdated indicates the owner changed product attributes
	ProductEventTypeAttributesUpdated ProductEventType = "attributes_updated"
	// ProductEventTypeReconciled indicates the reconciler rolled the owner projection forward
	ProductEventTypeReconciled ProductEventType = "ownership_reconciled"
	// ProductEventTypeQualityCheck indicates an inspector recorded a quality check
	ProductEventTypeQualityCheck ProductEventType = "quality_check"
)

// ProductEvent represents the product_events table - human readable product history
type ProductEvent struct {
	// ID is a ULID so events sort by creation time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// ProductID references the product this event relates to
	ProductID string `gorm:"column:product_id;not null;type:varchar(36);index"`
	// EventType identifies the kind of event
	EventType ProductEventType `gorm:"column:event_type;not null;type:varchar(32)"`
	// UserID is the user who caused the event
	UserID string `gorm:"column:user_id;not null;type:varchar(36)"`
	// Message is a short description of the event
	Message string `gorm:"column:message;not null;type:text"`
	// Extra carries event specific details (names, roles, changed fields)
	Extra datatypes.JSONMap `gorm:"column:extra"`
	// CreatedAt is the timestamp of the event
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the ProductEvent model
func (ProductEvent) TableName() string {
	return "product_events"
}
