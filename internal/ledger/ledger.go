package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// AppendBlockInput describes the new custody holder of a product
type AppendBlockInput struct {
	ProductID     string
	OwnerID       string
	Role          domain.Role
	Username      string
	Name          string
	AddedBy       string
	TransferType  domain.TransferType
	CanEditFields []string
}

// Ledger defines the interface for the per-product ownership hash chain
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// AppendBlock appends the next block to a product chain. It does not touch the product owner.
	// Callers serialize appends per product; a lost race on the block number is a ChainWriteError.
	AppendBlock(ctx context.Context, input AppendBlockInput) (*schema.OwnershipBlock, error)
	// GetChain returns every block of a product in ascending order
	GetChain(ctx context.Context, productID string) ([]*schema.OwnershipBlock, error)
	// VerifyChain scans the whole chain of a product. It never repairs anything.
	VerifyChain(ctx context.Context, productID string) (*VerificationResult, error)
	// WithStore returns a ledger bound to the given store, typically a transaction
	WithStore(st store.Store) Ledger
}

type ledger struct {
	store   store.Store
	hasher  *Hasher
	clock   adapter.Clock
	metrics *metrics.Metrics
}

// NewLedger creates a new ledger
func NewLedger(st store.Store, hasher *Hasher, clock adapter.Clock, m *metrics.Metrics) Ledger {
	return &ledger{
		store:   st,
		hasher:  hasher,
		clock:   clock,
		metrics: m,
	}
}

func (l *ledger) WithStore(st store.Store) Ledger {
	return &ledger{
		store:   st,
		hasher:  l.hasher,
		clock:   l.clock,
		metrics: l.metrics,
	}
}

// AppendBlock appends the next block to a product chain
func (l *ledger) AppendBlock(ctx context.Context, input AppendBlockInput) (*schema.OwnershipBlock, error) {
	if input.ProductID == "" || input.OwnerID == "" {
		return nil, domain.InvalidInput("product id and owner id are required")
	}
	if !domain.IsValidTransferType(input.TransferType) {
		return nil, domain.InvalidInput("unknown transfer type %q", input.TransferType)
	}

	latest, err := l.store.GetLatestBlock(ctx, input.ProductID)
	if err != nil {
		return nil, &domain.ChainWriteError{ProductID: input.ProductID, Err: err}
	}

	blockNumber := int64(1)
	var previousOwnerHash *string
	if latest != nil {
		blockNumber = latest.BlockNumber + 1
		prev := latest.OwnershipHash
		previousOwnerHash = &prev
	}

	hash, err := l.hasher.OwnershipHash(input.ProductID, input.OwnerID, blockNumber, previousOwnerHash)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ownership hash: %w", err)
	}

	canEditFields := input.CanEditFields
	if canEditFields == nil {
		canEditFields = []string{}
	}

	block := &schema.OwnershipBlock{
		ProductID:         input.ProductID,
		BlockNumber:       blockNumber,
		OwnerID:           input.OwnerID,
		Role:              input.Role,
		Username:          input.Username,
		Name:              input.Name,
		AddedBy:           input.AddedBy,
		CanEditFields:     canEditFields,
		TransferType:      input.TransferType,
		PreviousOwnerHash: previousOwnerHash,
		OwnershipHash:     hash,
		CreatedAt:         l.clock.Now(),
	}

	if err := l.store.InsertBlock(ctx, block); err != nil {
		return nil, &domain.ChainWriteError{ProductID: input.ProductID, BlockNumber: blockNumber, Err: err}
	}

	l.metrics.BlockAppended(string(input.TransferType))
	logger.DebugCtx(ctx, "Appended ownership block",
		zap.String("product_id", input.ProductID),
		zap.Int64("block_number", blockNumber),
		zap.String("owner_id", input.OwnerID),
	)

	return block, nil
}

// GetChain returns every block of a product in ascending order
func (l *ledger) GetChain(ctx context.Context, productID string) ([]*schema.OwnershipBlock, error) {
	blocks, err := l.store.GetBlocksByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain: %w", err)
	}
	if blocks == nil {
		blocks = []*schema.OwnershipBlock{}
	}
	return blocks, nil
}

// VerifyChain scans the whole chain of a product
func (l *ledger) VerifyChain(ctx context.Context, productID string) (*VerificationResult, error) {
	blocks, err := l.GetChain(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := l.hasher.VerifyBlocks(productID, blocks)
	l.metrics.ChainVerified(result.Valid)

	return &result, nil
}
