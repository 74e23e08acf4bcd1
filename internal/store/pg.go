package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new store on top of a GORM connection.
// PostgreSQL is the production dialect; SQLite is accepted for local runs and tests.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// normalizeLimit clamps a page size into (0, maxListLimit]
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// Transaction runs fn inside a database transaction
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// CreateUser registers a new user
func (s *pgStore) CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error) {
	user := schema.User{
		ID:        input.ID,
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: nowOr(input.CreatedAt),
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves users, optionally filtered by role
func (s *pgStore) ListUsers(ctx context.Context, filter UserQueryFilter) ([]*schema.User, error) {
	query := s.db.WithContext(ctx).Model(&schema.User{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var users []*schema.User
	if err := query.Order("username ASC").Limit(normalizeLimit(filter.Limit)).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateProduct creates a new product
func (s *pgStore) CreateProduct(ctx context.Context, input CreateProductInput) (*schema.Product, error) {
	createdAt := nowOr(input.CreatedAt)
	product := schema.Product{
		ID:         input.ID,
		Name:       input.Name,
		Category:   input.Category,
		BatchID:    input.BatchID,
		QRCode:     input.QRCode,
		OwnerID:    input.OwnerID,
		Status:     schema.ProductStatusRegistered,
		Attributes: datatypes.JSONMap(input.Attributes),
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.Attributes == nil {
		product.Attributes = datatypes.JSONMap{}
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// GetProductByID retrieves a product by ID
func (s *pgStore) GetProductByID(ctx context.Context, id string) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetProductByBatchID retrieves a product by its batch ID
func (s *pgStore) GetProductByBatchID(ctx context.Context, batchID string) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).Where("batch_id = ?", batchID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by batch id: %w", err)
	}
	return &product, nil
}

// LockProductByID retrieves a product with SELECT ... FOR UPDATE.
// SQLite has no row locks; its single writer already serializes the transaction.
func (s *pgStore) LockProductByID(ctx context.Context, id string) (*schema.Product, error) {
	query := s.db.WithContext(ctx)
	if s.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var product schema.Product
	err := query.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock product: %w", err)
	}
	return &product, nil
}

// ListProducts retrieves products matching the filter and the total count
func (s *pgStore) ListProducts(ctx context.Context, filter ProductQueryFilter) ([]*schema.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Product{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []*schema.Product
	err := query.
		Order("created_at DESC").
		Order("id ASC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// UpdateProductOwner moves the product owner with a compare-and-swap on the current owner
func (s *pgStore) UpdateProductOwner(ctx context.Context, input UpdateProductOwnerInput) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Product{}).
		Where("id = ? AND owner_id = ?", input.ProductID, input.ExpectedOwnerID).
		Updates(map[string]any{
			"owner_id":   input.NewOwnerID,
			"status":     schema.ProductStatusForOwner(input.NewOwnerRole),
			"updated_at": nowOr(input.At),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update product owner: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// UpdateProductAttributes merges attributes into the product attributes
func (s *pgStore) UpdateProductAttributes(ctx context.Context, id string, attributes map[string]any, at time.Time) (*schema.Product, error) {
	var updated *schema.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var product schema.Product
		if err := query.Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("failed to get product: %w", err)
		}

		merged := datatypes.JSONMap{}
		for k, v := range product.Attributes {
			merged[k] = v
		}
		for k, v := range attributes {
			merged[k] = v
		}

		err := tx.Model(&schema.Product{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"attributes": merged,
				"updated_at": nowOr(at),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update product attributes: %w", err)
		}

		product.Attributes = merged
		product.UpdatedAt = nowOr(at)
		updated = &product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetLatestBlock retrieves the block with the highest block number for a product
func (s *pgStore) GetLatestBlock(ctx context.Context, productID string) (*schema.OwnershipBlock, error) {
	var block schema.OwnershipBlock
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("block_number DESC").
		First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}
	return &block, nil
}

// GetBlocksByProductID retrieves all blocks of a product ordered by block number
func (s *pgStore) GetBlocksByProductID(ctx context.Context, productID string) ([]*schema.OwnershipBlock, error) {
	var blocks []*schema.OwnershipBlock
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("block_number ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get blocks: %w", err)
	}
	return blocks, nil
}

// InsertBlock inserts a new block
func (s *pgStore) InsertBlock(ctx context.Context, block *schema.OwnershipBlock) error {
	if block.ID == "" {
		block.ID = uuid.NewString()
	}
	block.CreatedAt = nowOr(block.CreatedAt)
	if block.CanEditFields == nil {
		block.CanEditFields = datatypes.JSONSlice[string]{}
	}

	if err := s.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("failed to insert block %d for product %s: %w", block.BlockNumber, block.ProductID, err)
	}
	return nil
}

// GetOwnerDrifts finds products whose owner differs from the owner of their latest block
func (s *pgStore) GetOwnerDrifts(ctx context.Context, limit int) ([]OwnerDrift, error) {
	var drifts []OwnerDrift
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.id AS product_id,
		       p.owner_id AS product_owner_id,
		       b.owner_id AS chain_owner_id,
		       b.block_number AS block_number
		FROM products p
		JOIN ownership_blocks b ON b.product_id = p.id
		WHERE b.block_number = (
			SELECT MAX(b2.block_number) FROM ownership_blocks b2 WHERE b2.product_id = p.id
		)
		AND p.owner_id <> b.owner_id
		ORDER BY p.id ASC
		LIMIT ?`, normalizeLimit(limit)).
		Scan(&drifts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get owner drifts: %w", err)
	}
	return drifts, nil
}

// CreateTransfer creates a pending transfer
func (s *pgStore) CreateTransfer(ctx context.Context, input CreateTransferInput) (*schema.OwnershipTransfer, error) {
	createdAt := nowOr(input.CreatedAt)
	transfer := schema.OwnershipTransfer{
		ID:           input.ID,
		ProductID:    input.ProductID,
		FromUserID:   input.FromUserID,
		ToUserID:     input.ToUserID,
		TransferType: input.TransferType,
		Status:       schema.TransferStatusPending,
		Notes:        input.Notes,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if transfer.ID == "" {
		transfer.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTransferAlreadyPending
		}
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return &transfer, nil
}

// GetTransferByID retrieves a transfer by ID
func (s *pgStore) GetTransferByID(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
	var transfer schema.OwnershipTransfer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

// GetPendingTransfer retrieves the pending transfer for a product and recipient
func (s *pgStore) GetPendingTransfer(ctx context.Context, productID, toUserID string) (*schema.OwnershipTransfer, error) {
	var transfer schema.OwnershipTransfer
	err := s.db.WithContext(ctx).
		Where("product_id = ? AND to_user_id = ? AND status = ?", productID, toUserID, schema.TransferStatusPending).
		First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending transfer: %w", err)
	}
	return &transfer, nil
}

// ListTransfers retrieves transfers matching the filter, newest first
func (s *pgStore) ListTransfers(ctx context.Context, filter TransferQueryFilter) ([]*schema.OwnershipTransfer, error) {
	query := s.db.WithContext(ctx).Model(&schema.OwnershipTransfer{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.UserID != nil {
		switch filter.Direction {
		case TransferDirectionIncoming:
			query = query.Where("to_user_id = ?", *filter.UserID)
		case TransferDirectionOutgoing:
			query = query.Where("from_user_id = ?", *filter.UserID)
		default:
			query = query.Where("to_user_id = ? OR from_user_id = ?", *filter.UserID, *filter.UserID)
		}
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var transfers []*schema.OwnershipTransfer
	err := query.
		Order("created_at DESC").
		Order("id ASC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

// TransitionTransfer moves a transfer between statuses with a conditional update
func (s *pgStore) TransitionTransfer(ctx context.Context, input TransitionTransferInput) (bool, error) {
	at := nowOr(input.At)
	updates := map[string]any{
		"status":     input.To,
		"updated_at": at,
	}
	if input.To.IsTerminal() {
		updates["resolved_at"] = at
	}

	result := s.db.WithContext(ctx).
		Model(&schema.OwnershipTransfer{}).
		Where("id = ? AND status = ?", input.ID, input.From).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to transition transfer: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// SetTransferBlockNumber records the block appended for a completed transfer
func (s *pgStore) SetTransferBlockNumber(ctx context.Context, id string, blockNumber int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.OwnershipTransfer{}).
		Where("id = ?", id).
		Update("block_number", blockNumber).Error
	if err != nil {
		return fmt.Errorf("failed to set transfer block number: %w", err)
	}
	return nil
}

// CreateProductEvent records a product history event
func (s *pgStore) CreateProductEvent(ctx context.Context, input CreateProductEventInput) (*schema.ProductEvent, error) {
	event := schema.ProductEvent{
		ID:        ulid.Make().String(),
		ProductID: input.ProductID,
		EventType: input.EventType,
		UserID:    input.UserID,
		Message:   input.Message,
		Extra:     datatypes.JSONMap(input.Extra),
		CreatedAt: nowOr(input.CreatedAt),
	}
	if event.Extra == nil {
		event.Extra = datatypes.JSONMap{}
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create product event: %w", err)
	}
	return &event, nil
}

// GetProductEvents retrieves the history of a product in chronological order
func (s *pgStore) GetProductEvents(ctx context.Context, productID string) ([]*schema.ProductEvent, error) {
	var events []*schema.ProductEvent
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product events: %w", err)
	}
	return events, nil
}

// CreateQualityCheck records a quality check
func (s *pgStore) CreateQualityCheck(ctx context.Context, input CreateQualityCheckInput) (*schema.QualityCheck, error) {
	check := schema.QualityCheck{
		ID:               ulid.Make().String(),
		ProductID:        input.ProductID,
		InspectorID:      input.InspectorID,
		CheckType:        input.CheckType,
		Score:            input.Score,
		Notes:            input.Notes,
		CertificationURL: input.CertificationURL,
		Verified:         input.Verified,
		CreatedAt:        nowOr(input.CreatedAt),
	}

	if err := s.db.WithContext(ctx).Create(&check).Error; err != nil {
		return nil, fmt.Errorf("failed to create quality check: %w", err)
	}
	return &check, nil
}

// GetQualityChecksByProductID retrieves the quality checks of a product, newest first
func (s *pgStore) GetQualityChecksByProductID(ctx context.Context, productID string) ([]*schema.QualityCheck, error) {
	var checks []*schema.QualityCheck
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id DESC").
		Find(&checks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get quality checks: %w", err)
	}
	return checks, nil
}

// CreateScan records a scan of a product QR code
func (s *pgStore) CreateScan(ctx context.Context, input CreateScanInput) (*schema.Scan, error) {
	scan := schema.Scan{
		ID:          ulid.Make().String(),
		ProductID:   input.ProductID,
		UserID:      input.UserID,
		Location:    input.Location,
		Coordinates: datatypes.JSONMap(input.Coordinates),
		CreatedAt:   nowOr(input.CreatedAt),
	}

	if err := s.db.WithContext(ctx).Omit("Product").Create(&scan).Error; err != nil {
		return nil, fmt.Errorf("failed to create scan: %w", err)
	}
	return &scan, nil
}

// ListRecentScans retrieves scans with their product, newest first.
// Scans whose product no longer exists are skipped.
func (s *pgStore) ListRecentScans(ctx context.Context, filter ScanQueryFilter) ([]*schema.Scan, error) {
	query := s.db.WithContext(ctx).
		Joins("Product").
		Where("\"Product\".\"id\" IS NOT NULL")
	if filter.UserID != nil {
		query = query.Where("scans.user_id = ?", *filter.UserID)
	}

	var scans []*schema.Scan
	err := query.
		Order("scans.id DESC").
		Limit(normalizeLimit(filter.Limit)).
		Find(&scans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scans: %w", err)
	}
	return scans, nil
}

// GetStats computes the dashboard counters
func (s *pgStore) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := s.db.WithContext(ctx)

	if err := db.Model(&schema.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	err := db.Model(&schema.OwnershipBlock{}).
		Where("block_number = ?", 1).
		Distinct("product_id").
		Count(&stats.VerifiedBatches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count verified batches: %w", err)
	}

	err = db.Model(&schema.OwnershipTransfer{}).
		Where("status = ?", schema.TransferStatusPending).
		Count(&stats.ActiveShipments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active shipments: %w", err)
	}

	var score struct {
		Avg *float64
	}
	err = db.Model(&schema.QualityCheck{}).
		Select("AVG(score) AS avg").
		Scan(&score).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average quality scores: %w", err)
	}
	if score.Avg != nil {
		stats.AverageQualityScore = *score.Avg
	}

	return &stats, nil
}

// CreateNotification stores a notification
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) error {
	if notification.ID == "" {
		notification.ID = ulid.Make().String()
	}
	notification.CreatedAt = nowOr(notification.CreatedAt)

	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotifications retrieves notifications for a user, newest first
func (s *pgStore) ListNotifications(ctx context.Context, filter NotificationQueryFilter) ([]*schema.Notification, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []*schema.Notification
	err := query.
		Order("id DESC").
		Limit(normalizeLimit(filter.Limit)).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks a notification as read
func (s *pgStore) MarkNotificationRead(ctx context.Context, id string, userID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
