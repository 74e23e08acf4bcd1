package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// RequestTransferInput represents a proposal to move custody of a product
type RequestTransferInput struct {
	ProductID    string
	FromUserID   string
	ToUserID     string
	TransferType domain.TransferType
	Notes        string
}

// AcceptResult describes the block appended by an accepted transfer
type AcceptResult struct {
	BlockNumber       int64   `json:"blockNumber"`
	OwnershipHash     string  `json:"ownershipHash"`
	PreviousOwnerHash *string `json:"previousOwnerHash"`
}

// Config holds the configuration for the transfer workflow
type Config struct {
	// AcceptMaxRetries bounds how many times an accept is retried after a chain write failure
	AcceptMaxRetries uint64
	// RetryInitialInterval is the first backoff delay between accept attempts
	RetryInitialInterval time.Duration
	// RetryMaxInterval caps the backoff delay between accept attempts
	RetryMaxInterval time.Duration
}

// Workflow drives ownership transfers through pending -> completed | rejected.
// It is the only component that appends non-genesis blocks.
//
//go:generate mockgen -source=workflow.go -destination=../mocks/workflow.go -package=mocks -mock_names=Workflow=MockWorkflow
type Workflow interface {
	// RequestTransfer creates a pending transfer and notifies the recipient
	RequestTransfer(ctx context.Context, input RequestTransferInput) (*schema.OwnershipTransfer, error)
	// AcceptTransfer completes a pending transfer, appending exactly one block
	AcceptTransfer(ctx context.Context, transferID, acceptingUserID string) (*AcceptResult, error)
	// RejectTransfer rejects a pending transfer without touching the chain
	RejectTransfer(ctx context.Context, transferID, rejectingUserID string) (*schema.OwnershipTransfer, error)
	// GetTransfer retrieves a transfer by ID
	GetTransfer(ctx context.Context, transferID string) (*schema.OwnershipTransfer, error)
	// ListTransfers retrieves the transfers of a user
	ListTransfers(ctx context.Context, filter store.TransferQueryFilter) ([]*schema.OwnershipTransfer, error)
}

type workflow struct {
	config   Config
	store    store.Store
	ledger   ledger.Ledger
	locker   lock.Locker
	notifier notify.Notifier
	clock    adapter.Clock
	metrics  *metrics.Metrics
}

// NewWorkflow creates a new transfer workflow
func NewWorkflow(
	cfg Config,
	st store.Store,
	l ledger.Ledger,
	locker lock.Locker,
	notifier notify.Notifier,
	clock adapter.Clock,
	m *metrics.Metrics,
) Workflow {
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 50 * time.Millisecond
	}
	if cfg.RetryMaxInterval <= 0 {
		cfg.RetryMaxInterval = time.Second
	}

	return &workflow{
		config:   cfg,
		store:    st,
		ledger:   l,
		locker:   locker,
		notifier: notifier,
		clock:    clock,
		metrics:  m,
	}
}

// RequestTransfer creates a pending transfer and notifies the recipient
func (w *workflow) RequestTransfer(ctx context.Context, input RequestTransferInput) (*schema.OwnershipTransfer, error) {
	if input.ProductID == "" || input.FromUserID == "" || input.ToUserID == "" {
		return nil, domain.InvalidInput("product, sender and recipient are required")
	}
	if !domain.IsRequestableTransferType(input.TransferType) {
		return nil, domain.InvalidInput("transfer type %q cannot be requested", input.TransferType)
	}

	product, err := w.store.GetProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	// every type, request included, is opened by the current owner
	if product.OwnerID != input.FromUserID {
		return nil, domain.ErrNotOwner
	}

	sender, err := w.store.GetUserByID(ctx, input.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender: %w", err)
	}
	recipient, err := w.store.GetUserByID(ctx, input.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	if recipient == nil {
		return nil, domain.ErrUnknownRecipient
	}
	if input.FromUserID == input.ToUserID {
		return nil, domain.InvalidInput("cannot transfer a product to its current owner")
	}

	pending, err := w.store.GetPendingTransfer(ctx, input.ProductID, input.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending transfers: %w", err)
	}
	if pending != nil {
		return nil, domain.ErrTransferAlreadyPending
	}

	transfer, err := w.store.CreateTransfer(ctx, store.CreateTransferInput{
		ProductID:    input.ProductID,
		FromUserID:   input.FromUserID,
		ToUserID:     input.ToUserID,
		TransferType: input.TransferType,
		Notes:        strings.TrimSpace(input.Notes),
		CreatedAt:    w.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransferAlreadyPending) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	w.metrics.TransferTransitioned(string(schema.TransferStatusPending))
	logger.InfoCtx(ctx, "Transfer requested",
		zap.String("transfer_id", transfer.ID),
		zap.String("product_id", transfer.ProductID),
		zap.String("from_user_id", transfer.FromUserID),
		zap.String("to_user_id", transfer.ToUserID),
	)

	senderName := input.FromUserID
	if sender != nil {
		senderName = sender.Name
	}
	w.notify(ctx, transfer.ToUserID, product,
		domain.NotificationTypeTransferRequested,
		"Transfer requested",
		fmt.Sprintf("%s wants to transfer %s (%s) to you", senderName, product.Name, product.BatchID),
	)

	return transfer, nil
}

// AcceptTransfer completes a pending transfer, appending exactly one block
func (w *workflow) AcceptTransfer(ctx context.Context, transferID, acceptingUserID string) (*AcceptResult, error) {
	var (
		result   *AcceptResult
		transfer *schema.OwnershipTransfer
		attempt  int
		// set once a transaction failed in a way that may still have committed
		uncertain bool
	)

	operation := func() error {
		attempt++
		if uncertain {
			var err error
			transfer, result, err = w.committedAccept(ctx, transferID, acceptingUserID)
			if err != nil {
				return err
			}
			if result != nil {
				logger.InfoCtx(ctx, "Accept had already committed",
					zap.String("transfer_id", transferID),
					zap.Int("attempt", attempt),
				)
				return nil
			}
		}

		var (
			committing bool
			err        error
		)
		transfer, result, err = w.acceptOnce(ctx, transferID, acceptingUserID, &committing)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrChainWrite) {
			uncertain = uncertain || committing
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.config.RetryInitialInterval
	b.MaxInterval = w.config.RetryMaxInterval
	b.MaxElapsedTime = 0

	notifyOnError := func(err error, next time.Duration) {
		w.metrics.AcceptRetried()
		logger.WarnCtx(ctx, "Accept failed to write the chain, retrying",
			zap.Error(err),
			zap.String("transfer_id", transferID),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, w.config.AcceptMaxRetries), ctx), notifyOnError)
	if err != nil {
		if errors.Is(err, domain.ErrChainWrite) {
			logger.ErrorCtx(ctx, err, zap.String("transfer_id", transferID), zap.Int("attempts", attempt))
		}
		return nil, err
	}

	w.metrics.TransferTransitioned(string(schema.TransferStatusCompleted))
	logger.InfoCtx(ctx, "Transfer accepted",
		zap.String("transfer_id", transfer.ID),
		zap.String("product_id", transfer.ProductID),
		zap.Int64("block_number", result.BlockNumber),
	)

	product, err := w.store.GetProductByID(ctx, transfer.ProductID)
	if err != nil || product == nil {
		product = &schema.Product{ID: transfer.ProductID, Name: "the product"}
	}
	w.notify(ctx, transfer.FromUserID, product,
		domain.NotificationTypeTransferAccepted,
		"Transfer accepted",
		fmt.Sprintf("Your transfer of %s was accepted", product.Name),
	)

	return result, nil
}

// acceptOnce runs a single accept attempt.
// Validation happens outside the lock, the state change and the append inside one transaction.
// committing is set when the transaction was started.
func (w *workflow) acceptOnce(ctx context.Context, transferID, acceptingUserID string, committing *bool) (*schema.OwnershipTransfer, *AcceptResult, error) {
	transfer, err := w.getResolvableTransfer(ctx, transferID, acceptingUserID)
	if err != nil {
		return nil, nil, err
	}

	recipient, err := w.store.GetUserByID(ctx, transfer.ToUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	if recipient == nil {
		return nil, nil, domain.ErrUnknownRecipient
	}

	release, err := w.locker.Acquire(ctx, lock.ProductKey(transfer.ProductID))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return nil, nil, &domain.ChainWriteError{ProductID: transfer.ProductID, Err: err}
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.WarnCtx(ctx, "Failed to release product lock", zap.Error(err), zap.String("product_id", transfer.ProductID))
		}
	}()

	verification, err := w.ledger.VerifyChain(ctx, transfer.ProductID)
	if err != nil {
		return nil, nil, &domain.ChainWriteError{ProductID: transfer.ProductID, Err: err}
	}
	if !verification.Valid {
		integrityErr := &domain.ChainIntegrityError{ProductID: transfer.ProductID, Violations: verification.Errors}
		w.metrics.IntegrityFailure()
		logger.ErrorCtx(ctx, integrityErr,
			zap.String("transfer_id", transfer.ID),
			zap.String("product_id", transfer.ProductID),
			zap.Any("violations", verification.Errors),
		)
		return nil, nil, integrityErr
	}

	var result *AcceptResult
	*committing = true
	err = w.store.Transaction(ctx, func(tx store.Store) error {
		now := w.clock.Now()

		ok, err := tx.TransitionTransfer(ctx, store.TransitionTransferInput{
			ID:   transfer.ID,
			From: schema.TransferStatusPending,
			To:   schema.TransferStatusCompleted,
			At:   now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidTransferState
		}

		product, err := tx.LockProductByID(ctx, transfer.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.OwnerID != transfer.FromUserID {
			return fmt.Errorf("%w: product %s is no longer owned by the sender", domain.ErrInvalidTransferState, product.ID)
		}

		block, err := w.ledger.WithStore(tx).AppendBlock(ctx, ledger.AppendBlockInput{
			ProductID:     transfer.ProductID,
			OwnerID:       recipient.ID,
			Role:          recipient.Role,
			Username:      recipient.Username,
			Name:          recipient.Name,
			AddedBy:       transfer.FromUserID,
			TransferType:  transfer.TransferType,
			CanEditFields: domain.EditableFields(recipient.Role),
		})
		if err != nil {
			return err
		}

		swapped, err := tx.UpdateProductOwner(ctx, store.UpdateProductOwnerInput{
			ProductID:       transfer.ProductID,
			ExpectedOwnerID: transfer.FromUserID,
			NewOwnerID:      recipient.ID,
			NewOwnerRole:    recipient.Role,
			At:              now,
		})
		if err != nil {
			return err
		}
		if !swapped {
			return fmt.Errorf("%w: owner of product %s changed during accept", domain.ErrInvalidTransferState, product.ID)
		}

		if err := tx.SetTransferBlockNumber(ctx, transfer.ID, block.BlockNumber); err != nil {
			return err
		}

		_, err = tx.CreateProductEvent(ctx, store.CreateProductEventInput{
			ProductID: transfer.ProductID,
			EventType: schema.ProductEventTypeTransfer,
			UserID:    recipient.ID,
			Message:   fmt.Sprintf("Ownership transferred to %s", recipient.Name),
			Extra: map[string]any{
				"transferId":    transfer.ID,
				"fromUserId":    transfer.FromUserID,
				"toUserId":      recipient.ID,
				"transferType":  string(transfer.TransferType),
				"blockNumber":   block.BlockNumber,
				"ownershipHash": block.OwnershipHash,
				"role":          string(recipient.Role),
			},
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		result = &AcceptResult{
			BlockNumber:       block.BlockNumber,
			OwnershipHash:     block.OwnershipHash,
			PreviousOwnerHash: block.PreviousOwnerHash,
		}
		return nil
	})
	if err != nil {
		return nil, nil, classifyTxError(transfer.ProductID, err)
	}

	return transfer, result, nil
}

// committedAccept returns the block of a transfer that acceptingUserID already completed.
// It returns a nil result when the transfer was not completed by that user.
func (w *workflow) committedAccept(ctx context.Context, transferID, acceptingUserID string) (*schema.OwnershipTransfer, *AcceptResult, error) {
	transfer, err := w.store.GetTransferByID(ctx, transferID)
	if err != nil {
		return nil, nil, &domain.ChainWriteError{Err: fmt.Errorf("failed to get transfer: %w", err)}
	}
	if transfer == nil ||
		transfer.Status != schema.TransferStatusCompleted ||
		transfer.ToUserID != acceptingUserID ||
		transfer.BlockNumber == nil {
		return nil, nil, nil
	}

	chain, err := w.ledger.GetChain(ctx, transfer.ProductID)
	if err != nil {
		return nil, nil, &domain.ChainWriteError{ProductID: transfer.ProductID, Err: err}
	}
	for _, block := range chain {
		if block.BlockNumber == *transfer.BlockNumber && block.OwnerID == acceptingUserID {
			return transfer, &AcceptResult{
				BlockNumber:       block.BlockNumber,
				OwnershipHash:     block.OwnershipHash,
				PreviousOwnerHash: block.PreviousOwnerHash,
			}, nil
		}
	}
	return nil, nil, nil
}

// RejectTransfer rejects a pending transfer without touching the chain
func (w *workflow) RejectTransfer(ctx context.Context, transferID, rejectingUserID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.getResolvableTransfer(ctx, transferID, rejectingUserID)
	if err != nil {
		return nil, err
	}

	now := w.clock.Now()
	ok, err := w.store.TransitionTransfer(ctx, store.TransitionTransferInput{
		ID:   transfer.ID,
		From: schema.TransferStatusPending,
		To:   schema.TransferStatusRejected,
		At:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject transfer: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidTransferState
	}

	transfer.Status = schema.TransferStatusRejected
	transfer.ResolvedAt = &now
	transfer.UpdatedAt = now

	w.metrics.TransferTransitioned(string(schema.TransferStatusRejected))
	logger.InfoCtx(ctx, "Transfer rejected",
		zap.String("transfer_id", transfer.ID),
		zap.String("product_id", transfer.ProductID),
	)

	product, err := w.store.GetProductByID(ctx, transfer.ProductID)
	if err != nil || product == nil {
		product = &schema.Product{ID: transfer.ProductID, Name: "the product"}
	}
	w.notify(ctx, transfer.FromUserID, product,
		domain.NotificationTypeTransferRejected,
		"Transfer rejected",
		fmt.Sprintf("Your transfer of %s was rejected", product.Name),
	)

	return transfer, nil
}

// GetTransfer retrieves a transfer by ID
func (w *workflow) GetTransfer(ctx context.Context, transferID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.store.GetTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	if transfer == nil {
		return nil, domain.ErrTransferNotFound
	}
	return transfer, nil
}

// ListTransfers retrieves the transfers of a user
func (w *workflow) ListTransfers(ctx context.Context, filter store.TransferQueryFilter) ([]*schema.OwnershipTransfer, error) {
	if filter.Direction != "" && !store.IsValidTransferDirection(filter.Direction) {
		return nil, domain.InvalidInput("unknown direction %q", filter.Direction)
	}
	if filter.UserID != nil {
		user, err := w.store.GetUserByID(ctx, *filter.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
	}

	transfers, err := w.store.ListTransfers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	if transfers == nil {
		transfers = []*schema.OwnershipTransfer{}
	}
	return transfers, nil
}

// getResolvableTransfer loads a transfer and checks it can be resolved by actingUserID
func (w *workflow) getResolvableTransfer(ctx context.Context, transferID, actingUserID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.store.GetTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	if transfer == nil {
		return nil, domain.ErrTransferNotFound
	}
	if transfer.Status != schema.TransferStatusPending {
		return nil, fmt.Errorf("%w: transfer is %s", domain.ErrInvalidTransferState, transfer.Status)
	}
	if transfer.ToUserID != actingUserID {
		return nil, domain.ErrNotRecipient
	}
	return transfer, nil
}

func (w *workflow) notify(ctx context.Context, userID string, product *schema.Product, t domain.NotificationType, title, message string) {
	productID := product.ID
	w.notifier.Notify(ctx, domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      t,
		ProductID: &productID,
	})
}

// classifyTxError keeps workflow errors as they are and turns storage failures into retryable chain write errors
func classifyTxError(productID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrChainWrite),
		errors.Is(err, domain.ErrChainIntegrity),
		errors.Is(err, domain.ErrInvalidTransferState),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return &domain.ChainWriteError{ProductID: productID, Err: err}
	}
}
