package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/farmtrace/internal/domain"
)

// ProductStatus represents the lifecycle status of a product batch
type ProductStatus string

const (
	// ProductStatusRegistered indicates the batch is held by its original producer
	ProductStatusRegistered ProductStatus = "registered"
	// ProductStatusInTransit indicates the batch is held somewhere along the supply chain
	ProductStatusInTransit ProductStatus = "in_transit"
	// ProductStatusDelivered indicates the batch reached a retailer or a consumer
	ProductStatusDelivered ProductStatus = "delivered"
)

// ProductStatusForOwner returns the status of a batch once custody moved to a holder with role
func ProductStatusForOwner(role domain.Role) ProductStatus {
	switch role {
	case domain.RoleRetailer, domain.RoleConsumer:
		return ProductStatusDelivered
	default:
		return ProductStatusInTransit
	}
}

// Product represents the products table - one traced batch of produce
type Product struct {
	// ID is the product's UUID and the key of its ownership chain
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Name is the product name given at registration
	Name string `gorm:"column:name;not null;type:text"`
	// Category is the produce category given at registration
	Category string `gorm:"column:category;not null;type:varchar(64);index"`
	// BatchID is the human readable, unique batch identifier encoded in the QR code
	BatchID string `gorm:"column:batch_id;not null;uniqueIndex;type:varchar(64)"`
	// QRCode is the payload rendered into the batch QR code
	QRCode string `gorm:"column:qr_code;not null;type:text"`
	// OwnerID is the projection of the owner of the latest ownership block
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(36);index"`
	// Status is the lifecycle status of the batch
	Status ProductStatus `gorm:"column:status;not null;type:varchar(32)"`
	// Attributes holds the role specific product fields (quantity, location, price, ...)
	Attributes datatypes.JSONMap `gorm:"column:attributes"`
	// CreatedAt is the timestamp when the product was registered
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when the product was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
