package store

import (
	"context"
	"time"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// Transaction runs fn inside a database transaction. The Store passed to fn is bound to the
	// transaction; fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// =============================================================================
	// Users
	// =============================================================================

	// CreateUser registers a new user
	CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error)
	// GetUserByID retrieves a user by ID
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// ListUsers retrieves users, optionally filtered by role
	ListUsers(ctx context.Context, filter UserQueryFilter) ([]*schema.User, error)

	// =============================================================================
	// Products
	// =============================================================================

	// CreateProduct creates a new product
	CreateProduct(ctx context.Context, input CreateProductInput) (*schema.Product, error)
	// GetProductByID retrieves a product by ID
	GetProductByID(ctx context.Context, id string) (*schema.Product, error)
	// GetProductByBatchID retrieves a product by its batch ID
	GetProductByBatchID(ctx context.Context, batchID string) (*schema.Product, error)
	// LockProductByID retrieves a product and locks its row until the surrounding transaction ends
	LockProductByID(ctx context.Context, id string) (*schema.Product, error)
	// ListProducts retrieves products matching the filter and the total count
	ListProducts(ctx context.Context, filter ProductQueryFilter) ([]*schema.Product, int64, error)
	// UpdateProductOwner moves the product owner from expectedOwnerID to newOwnerID.
	// It reports false when the product is not currently owned by expectedOwnerID.
	UpdateProductOwner(ctx context.Context, input UpdateProductOwnerInput) (bool, error)
	// UpdateProductAttributes merges attributes into the product attributes
	UpdateProductAttributes(ctx context.Context, id string, attributes map[string]any, at time.Time) (*schema.Product, error)

	// =============================================================================
	// Ownership blocks
	// =============================================================================

	// GetLatestBlock retrieves the block with the highest block number for a product
	GetLatestBlock(ctx context.Context, productID string) (*schema.OwnershipBlock, error)
	// GetBlocksByProductID retrieves all blocks of a product ordered by block number
	GetBlocksByProductID(ctx context.Context, productID string) ([]*schema.OwnershipBlock, error)
	// InsertBlock inserts a new block. Inserting an existing (product, block number) fails
	// with an error wrapping gorm.ErrDuplicatedKey.
	InsertBlock(ctx context.Context, block *schema.OwnershipBlock) error
	// GetOwnerDrifts finds products whose owner differs from the owner of their latest block
	GetOwnerDrifts(ctx context.Context, limit int) ([]OwnerDrift, error)

	// =============================================================================
	// Ownership transfers
	// =============================================================================

	// CreateTransfer creates a pending transfer. It returns domain.ErrTransferAlreadyPending when
	// a pending transfer already exists for the same product and recipient.
	CreateTransfer(ctx context.Context, input CreateTransferInput) (*schema.OwnershipTransfer, error)
	// GetTransferByID retrieves a transfer by ID
	GetTransferByID(ctx context.Context, id string) (*schema.OwnershipTransfer, error)
	// GetPendingTransfer retrieves the pending transfer for a product and recipient
	GetPendingTransfer(ctx context.Context, productID, toUserID string) (*schema.OwnershipTransfer, error)
	// ListTransfers retrieves transfers matching the filter, newest first
	ListTransfers(ctx context.Context, filter TransferQueryFilter) ([]*schema.OwnershipTransfer, error)
	// TransitionTransfer moves a transfer from input.From to input.To.
	// It reports false when the transfer is not in input.From.
	TransitionTransfer(ctx context.Context, input TransitionTransferInput) (bool, error)
	// SetTransferBlockNumber records the block appended for a completed transfer
	SetTransferBlockNumber(ctx context.Context, id string, blockNumber int64) error

	// =============================================================================
	// Product events
	// =============================================================================

	// CreateProductEvent records a product history event
	CreateProductEvent(ctx context.Context, input CreateProductEventInput) (*schema.ProductEvent, error)
	// GetProductEvents retrieves the history of a product in chronological order
	GetProductEvents(ctx context.Context, productID string) ([]*schema.ProductEvent, error)

	// =============================================================================
	// Quality checks and scans
	// =============================================================================

	// CreateQualityCheck records a quality check
	CreateQualityCheck(ctx context.Context, input CreateQualityCheckInput) (*schema.QualityCheck, error)
	// GetQualityChecksByProductID retrieves the quality checks of a product, newest first
	GetQualityChecksByProductID(ctx context.Context, productID string) ([]*schema.QualityCheck, error)
	// CreateScan records a scan of a product QR code
	CreateScan(ctx context.Context, input CreateScanInput) (*schema.Scan, error)
	// ListRecentScans retrieves scans with their product, newest first
	ListRecentScans(ctx context.Context, filter ScanQueryFilter) ([]*schema.Scan, error)
	// GetStats computes the dashboard counters
	GetStats(ctx context.Context) (*Stats, error)

	// =============================================================================
	// Notifications
	// =============================================================================

	// CreateNotification stores a notification
	CreateNotification(ctx context.Context, notification *schema.Notification) error
	// ListNotifications retrieves notifications for a user, newest first
	ListNotifications(ctx context.Context, filter NotificationQueryFilter) ([]*schema.Notification, error)
	// MarkNotificationRead marks a notification as read.
	// It reports false when the notification does not exist for the user.
	MarkNotificationRead(ctx context.Context, id string, userID string) (bool, error)
}

// CreateUserInput represents the input for creating a user
type CreateUserInput struct {
	ID        string
	Username  string
	Name      string
	Email     string
	Role      domain.Role
	CreatedAt time.Time
}

// UserQueryFilter represents the filter for listing users
type UserQueryFilter struct {
	Role  *domain.Role
	Limit int
}

// CreateProductInput represents the input for creating a product
type CreateProductInput struct {
	ID         string
	Name       string
	Category   string
	BatchID    string
	QRCode     string
	OwnerID    string
	Attributes map[string]any
	CreatedAt  time.Time
}

// ProductQueryFilter represents the filter for listing products
type ProductQueryFilter struct {
	OwnerID  *string
	Category *string
	Limit    int
	Offset   int
}

// UpdateProductOwnerInput represents the compare-and-swap of a product owner
type UpdateProductOwnerInput struct {
	ProductID       string
	ExpectedOwnerID string
	NewOwnerID      string
	// NewOwnerRole decides the product status after the swap
	NewOwnerRole domain.Role
	At           time.Time
}

// OwnerDrift is a product whose owner projection disagrees with its chain
type OwnerDrift struct {
	ProductID      string
	ProductOwnerID string
	ChainOwnerID   string
	BlockNumber    int64
}

// CreateTransferInput represents the input for creating a pending transfer
type CreateTransferInput struct {
	ID           string
	ProductID    string
	FromUserID   string
	ToUserID     string
	TransferType domain.TransferType
	Notes        string
	CreatedAt    time.Time
}

// TransferDirection selects transfers relative to a user
type TransferDirection string

const (
	TransferDirectionIncoming TransferDirection = "incoming"
	TransferDirectionOutgoing TransferDirection = "outgoing"
	TransferDirectionAll      TransferDirection = "all"
)

// IsValidTransferDirection checks if a transfer direction is valid
func IsValidTransferDirection(d TransferDirection) bool {
	return d == TransferDirectionIncoming || d == TransferDirectionOutgoing || d == TransferDirectionAll
}

// TransferQueryFilter represents the filter for listing transfers
type TransferQueryFilter struct {
	ProductID *string
	UserID    *string
	// Direction applies to UserID; empty means all
	Direction TransferDirection
	Status    *schema.TransferStatus
	Limit     int
	Offset    int
}

// TransitionTransferInput represents a conditional transfer status change
type TransitionTransferInput struct {
	ID   string
	From schema.TransferStatus
	To   schema.TransferStatus
	At   time.Time
}

// CreateProductEventInput represents the input for recording a product event
type CreateProductEventInput struct {
	ProductID string
	EventType schema.ProductEventType
	UserID    string
	Message   string
	Extra     map[string]any
	CreatedAt time.Time
}

// NotificationQueryFilter represents the filter for listing notifications
type NotificationQueryFilter struct {
	UserID     string
	UnreadOnly bool
	Limit      int
}

// CreateQualityCheckInput represents the input for recording a quality check
type CreateQualityCheckInput struct {
	ProductID        string
	InspectorID      string
	CheckType        string
	Score            float64
	Notes            string
	CertificationURL string
	Verified         bool
	CreatedAt        time.Time
}

// CreateScanInput represents the input for recording a scan
type CreateScanInput struct {
	ProductID   string
	UserID      *string
	Location    string
	Coordinates map[string]any
	CreatedAt   time.Time
}

// ScanQueryFilter represents the filter for listing recent scans
type ScanQueryFilter struct {
	UserID *string
	Limit  int
}

// Stats holds the dashboard counters
type Stats struct {
	TotalProducts int64
	// VerifiedBatches counts products that have a genesis block
	VerifiedBatches int64
	// ActiveShipments counts pending transfers
	ActiveShipments     int64
	AverageQualityScore float64
}
