package product

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// RegisterProductInput represents the input for registering a product batch
type RegisterProductInput struct {
	OwnerID    string
	Name       string
	Category   string
	Attributes map[string]any
}

// RegisteredProduct is a new product together with its genesis block
type RegisteredProduct struct {
	Product *schema.Product        `json:"product"`
	Genesis *schema.OwnershipBlock `json:"genesis"`
}

// UpdateAttributesInput represents an owner's change to product attributes
type UpdateAttributesInput struct {
	ProductID    string
	ActingUserID string
	Attributes   map[string]any
}

// Owner is a custody holder derived from the ownership chain
type Owner struct {
	UserID       string              `json:"userId"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Role         domain.Role         `json:"role"`
	BlockNumber  int64               `json:"blockNumber"`
	TransferType domain.TransferType `json:"transferType"`
	AcquiredAt   time.Time           `json:"acquiredAt"`
}

// Service manages product batches and their history
//
//go:generate mockgen -source=service.go -destination=../mocks/product_service.go -package=mocks -mock_names=Service=MockProductService
type Service interface {
	// RegisterProduct creates a product and its genesis block atomically
	RegisterProduct(ctx context.Context, input RegisterProductInput) (*RegisteredProduct, error)
	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, id string) (*schema.Product, error)
	// GetProductByBatchID retrieves a product by its batch ID
	GetProductByBatchID(ctx context.Context, batchID string) (*schema.Product, error)
	// ListProducts retrieves products and the total count
	ListProducts(ctx context.Context, filter store.ProductQueryFilter) ([]*schema.Product, int64, error)
	// GetOwners returns the distinct custody holders of a product in chain order
	GetOwners(ctx context.Context, id string) ([]Owner, error)
	// GetEvents returns the history of a product
	GetEvents(ctx context.Context, id string) ([]*schema.ProductEvent, error)
	// UpdateAttributes lets the current owner change the attributes its capability set allows
	UpdateAttributes(ctx context.Context, input UpdateAttributesInput) (*schema.Product, error)

	// RecordQualityCheck stores an inspection result and adds it to the product history
	RecordQualityCheck(ctx context.Context, input RecordQualityCheckInput) (*schema.QualityCheck, error)
	// GetQualityChecks returns the quality checks of a product, newest first
	GetQualityChecks(ctx context.Context, id string) ([]*schema.QualityCheck, error)
	// RecordScan stores a read of a product QR code
	RecordScan(ctx context.Context, input RecordScanInput) (*schema.Scan, error)
	// RecentScans returns the latest scans with their product
	RecentScans(ctx context.Context, filter store.ScanQueryFilter) ([]*schema.Scan, error)
	// GetStats returns the dashboard counters
	GetStats(ctx context.Context) (*store.Stats, error)
}

type service struct {
	store    store.Store
	ledger   ledger.Ledger
	notifier notify.Notifier
	clock    adapter.Clock
}

// NewService creates a new product service
func NewService(st store.Store, l ledger.Ledger, notifier notify.Notifier, clock adapter.Clock) Service {
	return &service{
		store:    st,
		ledger:   l,
		notifier: notifier,
		clock:    clock,
	}
}

// RegisterProduct creates a product and its genesis block atomically
func (s *service) RegisterProduct(ctx context.Context, input RegisterProductInput) (*RegisteredProduct, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.OwnerID == "" || input.Name == "" || input.Category == "" {
		return nil, domain.InvalidInput("owner, name and category are required")
	}

	owner, err := s.store.GetUserByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	if owner.Role == domain.RoleConsumer {
		return nil, domain.InvalidInput("consumers cannot register products")
	}

	now := s.clock.Now()
	batchID := NewBatchID(input.Category, now)

	var result RegisteredProduct
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.CreateProduct(ctx, store.CreateProductInput{
			Name:       input.Name,
			Category:   input.Category,
			BatchID:    batchID,
			QRCode:     QRPayload(batchID),
			OwnerID:    owner.ID,
			Attributes: input.Attributes,
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}

		genesis, err := s.ledger.WithStore(tx).AppendBlock(ctx, ledger.AppendBlockInput{
			ProductID:     product.ID,
			OwnerID:       owner.ID,
			Role:          owner.Role,
			Username:      owner.Username,
			Name:          owner.Name,
			AddedBy:       owner.ID,
			TransferType:  domain.TransferTypeInitial,
			CanEditFields: domain.EditableFields(owner.Role),
		})
		if err != nil {
			return err
		}

		_, err = tx.CreateProductEvent(ctx, store.CreateProductEventInput{
			ProductID: product.ID,
			EventType: schema.ProductEventTypeRegistration,
			UserID:    owner.ID,
			Message:   fmt.Sprintf("%s registered %s", owner.Name, product.Name),
			Extra: map[string]any{
				"blockNumber":   genesis.BlockNumber,
				"ownershipHash": genesis.OwnershipHash,
				"ownerName":     owner.Name,
				"role":          string(owner.Role),
				"batchId":       product.BatchID,
			},
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		result = RegisteredProduct{Product: product, Genesis: genesis}
		return nil
	})
	if err != nil {
		var writeErr *domain.ChainWriteError
		if errors.As(err, &writeErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register product: %w", err)
	}

	logger.InfoCtx(ctx, "Registered product",
		zap.String("product_id", result.Product.ID),
		zap.String("batch_id", result.Product.BatchID),
		zap.String("owner_id", owner.ID),
	)

	productID := result.Product.ID
	s.notifier.Notify(ctx, domain.Notification{
		UserID:    owner.ID,
		Title:     "Product registered",
		Message:   fmt.Sprintf("%s was registered with batch %s", result.Product.Name, result.Product.BatchID),
		Type:      domain.NotificationTypeProductRegistered,
		ProductID: &productID,
	})

	return &result, nil
}

// GetProduct retrieves a product by ID
func (s *service) GetProduct(ctx context.Context, id string) (*schema.Product, error) {
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetProductByBatchID retrieves a product by its batch ID
func (s *service) GetProductByBatchID(ctx context.Context, batchID string) (*schema.Product, error) {
	product, err := s.store.GetProductByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProducts retrieves products and the total count
func (s *service) ListProducts(ctx context.Context, filter store.ProductQueryFilter) ([]*schema.Product, int64, error) {
	products, total, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []*schema.Product{}
	}
	return products, total, nil
}

// GetOwners returns the distinct custody holders of a product in chain order
func (s *service) GetOwners(ctx context.Context, id string) ([]Owner, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	chain, err := s.ledger.GetChain(ctx, id)
	if err != nil {
		return nil, err
	}

	owners := []Owner{}
	seen := make(map[string]struct{}, len(chain))
	for _, block := range chain {
		if _, ok := seen[block.OwnerID]; ok {
			continue
		}
		seen[block.OwnerID] = struct{}{}
		owners = append(owners, Owner{
			UserID:       block.OwnerID,
			Username:     block.Username,
			Name:         block.Name,
			Role:         block.Role,
			BlockNumber:  block.BlockNumber,
			TransferType: block.TransferType,
			AcquiredAt:   block.CreatedAt,
		})
	}

	return owners, nil
}

// GetEvents returns the history of a product
func (s *service) GetEvents(ctx context.Context, id string) ([]*schema.ProductEvent, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	events, err := s.store.GetProductEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product events: %w", err)
	}
	if events == nil {
		events = []*schema.ProductEvent{}
	}
	return events, nil
}

// UpdateAttributes lets the current owner change the attributes its capability set allows
func (s *service) UpdateAttributes(ctx context.Context, input UpdateAttributesInput) (*schema.Product, error) {
	if len(input.Attributes) == 0 {
		return nil, domain.InvalidInput("attributes must not be empty")
	}

	var updated *schema.Product
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.LockProductByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.OwnerID != input.ActingUserID {
			return domain.ErrNotOwner
		}

		latest, err := tx.GetLatestBlock(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if latest == nil || latest.OwnerID != product.OwnerID {
			// The owner projection is ahead of or behind the chain; let the reconciler fix it first
			return fmt.Errorf("%w: owner of product %s does not match its chain", domain.ErrInvalidTransferState, input.ProductID)
		}

		fields := make([]string, 0, len(input.Attributes))
		for field := range input.Attributes {
			if !slices.Contains(latest.CanEditFields, field) {
				return fmt.Errorf("%w: %s", domain.ErrFieldNotEditable, field)
			}
			fields = append(fields, field)
		}
		slices.Sort(fields)

		now := s.clock.Now()
		updated, err = tx.UpdateProductAttributes(ctx, input.ProductID, input.Attributes, now)
		if err != nil {
			return err
		}

		_, err = tx.CreateProductEvent(ctx, store.CreateProductEventInput{
			ProductID: input.ProductID,
			EventType: schema.ProductEventTypeAttributesUpdated,
			UserID:    input.ActingUserID,
			Message:   fmt.Sprintf("%s updated %s", latest.Name, strings.Join(fields, ", ")),
			Extra: map[string]any{
				"fields":     fields,
				"attributes": input.Attributes,
			},
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
