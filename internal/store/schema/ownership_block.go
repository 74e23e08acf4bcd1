package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/farmtrace/internal/domain"
)

// OwnershipBlock represents the ownership_blocks table - the append-only custody chain.
// Rows are inserted once and never updated or deleted.
type OwnershipBlock struct {
	// ID is the block's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// ProductID identifies the chain this block belongs to
	ProductID string `gorm:"column:product_id;not null;type:varchar(36);uniqueIndex:uq_ownership_blocks_product_block,priority:1"`
	// BlockNumber is 1-based and unique within a product; the unique index doubles as the append compare-and-swap
	BlockNumber int64 `gorm:"column:block_number;not null;uniqueIndex:uq_ownership_blocks_product_block,priority:2"`
	// OwnerID is the user holding custody at this block
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(36);index"`
	// Role is the owner's role at the time of the block
	Role domain.Role `gorm:"column:role;not null;type:varchar(32)"`
	// Username is the owner's username at the time of the block
	Username string `gorm:"column:username;not null;type:varchar(64)"`
	// Name is the owner's display name at the time of the block
	Name string `gorm:"column:name;not null;type:text"`
	// AddedBy is the user who authorized this block (previous owner, or the owner itself for genesis)
	AddedBy string `gorm:"column:added_by;not null;type:varchar(36)"`
	// CanEditFields is the capability set of product attributes this owner may mutate
	CanEditFields datatypes.JSONSlice[string] `gorm:"column:can_edit_fields"`
	// TransferType tags the kind of custody change
	TransferType domain.TransferType `gorm:"column:transfer_type;not null;type:varchar(32)"`
	// PreviousOwnerHash is the ownership hash of the preceding block (nil for genesis)
	PreviousOwnerHash *string `gorm:"column:previous_owner_hash;type:varchar(64)"`
	// OwnershipHash is the digest committing this block to its identity fields and predecessor
	OwnershipHash string `gorm:"column:ownership_hash;not null;type:varchar(64)"`
	// CreatedAt is the block timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the OwnershipBlock model
func (OwnershipBlock) TableName() string {
	return "ownership_blocks"
}
