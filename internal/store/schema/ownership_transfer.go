package schema

import (
	"time"

	"github.com/feral-file/farmtrace/internal/domain"
)

// TransferStatus represents the state of an ownership transfer
type TransferStatus string

const (
	// TransferStatusPending indicates the transfer awaits the recipient's decision
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusCompleted indicates the transfer was accepted and a block was appended
	TransferStatusCompleted TransferStatus = "completed"
	// TransferStatusRejected indicates the recipient declined the transfer
	TransferStatusRejected TransferStatus = "rejected"
)

// IsTerminal reports whether no further transition is possible from this status
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusRejected
}

// OwnershipTransfer represents the ownership_transfers table - the workflow record that gates block appends.
// Status is the only column mutated after creation.
type OwnershipTransfer struct {
	// ID is the transfer's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// ProductID references the product being transferred
	ProductID string `gorm:"column:product_id;not null;type:varchar(36);index;uniqueIndex:uq_ownership_transfers_pending_recipient,priority:1,where:status = 'pending'"`
	// FromUserID is the owner at request time
	FromUserID string `gorm:"column:from_user_id;not null;type:varchar(36);index"`
	// ToUserID is the proposed new owner
	ToUserID string `gorm:"column:to_user_id;not null;type:varchar(36);index;uniqueIndex:uq_ownership_transfers_pending_recipient,priority:2,where:status = 'pending'"`
	// TransferType is copied onto the block appended when the transfer completes
	TransferType domain.TransferType `gorm:"column:transfer_type;not null;type:varchar(32)"`
	// Status is the workflow state (pending, completed, rejected)
	Status TransferStatus `gorm:"column:status;not null;type:varchar(16);index"`
	// Notes is free text supplied by the requester
	Notes string `gorm:"column:notes;type:text"`
	// BlockNumber is the block appended on completion
	BlockNumber *int64 `gorm:"column:block_number"`
	// ResolvedAt is the timestamp of the completed or rejected transition
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
	// CreatedAt is the timestamp when the transfer was requested
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp of the last status change
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the OwnershipTransfer model
func (OwnershipTransfer) TableName() string {
	return "ownership_transfers"
}
