package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Scan represents the scans table - one read of a batch QR code
type Scan struct {
	// ID is a ULID so scans sort by creation time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// ProductID references the scanned product
	ProductID string `gorm:"column:product_id;not null;type:varchar(36);index"`
	// Product is loaded when listing recent scans
	Product *Product `gorm:"foreignKey:ProductID;references:ID"`
	// UserID is the scanning user, nil for anonymous scans
	UserID *string `gorm:"column:user_id;type:varchar(36);index"`
	// Location is a free form description of where the scan happened
	Location string `gorm:"column:location;type:text"`
	// Coordinates holds the reported position, typically lat and lng
	Coordinates datatypes.JSONMap `gorm:"column:coordinates"`
	CreatedAt   time.Time         `gorm:"column:created_at;not null;index"`
}

// TableName specifies the table name for the Scan model
func (Scan) TableName() string {
	return "scans"
}
