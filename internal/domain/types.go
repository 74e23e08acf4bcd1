package domain

import (
	"slices"
	"time"
)

// Role represents the supply-chain role of a user
type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleDistributor Role = "distributor"
	RoleRetailer    Role = "retailer"
	RoleConsumer    Role = "consumer"
)

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	return role == RoleFarmer ||
		role == RoleDistributor ||
		role == RoleRetailer ||
		role == RoleConsumer
}

// editableFields maps each role to the product attributes its owner may mutate while holding custody
var editableFields = map[Role][]string{
	RoleFarmer: {
		"name", "category", "description", "quantity", "unit", "farmName", "location", "harvestDate", "certifications",
	},
	RoleDistributor: {
		"quantity", "unit", "distributorName", "warehouseLocation", "dispatchDate", "price", "paymentProofUrl", "certifications",
	},
	RoleRetailer: {
		"quantity", "unit", "storeName", "storeLocation", "arrivalDate", "price",
	},
	RoleConsumer: {},
}

// EditableFields returns the capability set granted to an owner with the given role.
// The returned slice is a copy and may be modified by the caller.
func EditableFields(role Role) []string {
	return slices.Clone(editableFields[role])
}

// TransferType tags the kind of custody change recorded by a block
type TransferType string

const (
	TransferTypeInitial      TransferType = "initial"
	TransferTypeTransfer     TransferType = "transfer"
	TransferTypeSale         TransferType = "sale"
	TransferTypeDistribution TransferType = "distribution"
	TransferTypeReturn       TransferType = "return"
	TransferTypeRequest      TransferType = "request"
)

// IsValidTransferType checks if a transfer type is valid
func IsValidTransferType(t TransferType) bool {
	switch t {
	case TransferTypeInitial,
		TransferTypeTransfer,
		TransferTypeSale,
		TransferTypeDistribution,
		TransferTypeReturn,
		TransferTypeRequest:
		return true
	}
	return false
}

// IsRequestableTransferType reports whether a transfer of this type can be proposed
// through the transfer workflow. Initial blocks are only written at registration.
func IsRequestableTransferType(t TransferType) bool {
	return IsValidTransferType(t) && t != TransferTypeInitial
}

// ViolationReason is the reason code reported by chain verification
type ViolationReason string

const (
	// ViolationHashMismatch means the stored ownership hash does not match the recomputed one
	ViolationHashMismatch ViolationReason = "hash-mismatch"
	// ViolationBrokenLink means the block does not chain to a trusted predecessor
	ViolationBrokenLink ViolationReason = "broken-link"
	// ViolationSequenceGap means a block number is out of place or its predecessor is missing
	ViolationSequenceGap ViolationReason = "sequence-gap"
	// ViolationMissingGenesis means the product has no blocks at all
	ViolationMissingGenesis ViolationReason = "missing-genesis"
)

// ChainViolation describes a single invalid block found during verification
type ChainViolation struct {
	BlockNumber int64           `json:"blockNumber"`
	Reason      ViolationReason `json:"reason"`
}

// NotificationType represents the kind of notification delivered to a user
type NotificationType string

const (
	NotificationTypeTransferRequested NotificationType = "transfer_requested"
	NotificationTypeTransferAccepted  NotificationType = "transfer_accepted"
	NotificationTypeTransferRejected  NotificationType = "transfer_rejected"
	NotificationTypeProductRegistered NotificationType = "product_registered"
	NotificationTypeQualityCheck      NotificationType = "quality_check"
)

// Notification is a fire-and-forget message addressed to a single user
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	ProductID *string          `json:"productId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
