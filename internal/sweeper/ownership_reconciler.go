package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

const (
	DEFAULT_RECONCILE_INTERVAL = 5 * time.Minute
	DEFAULT_RECONCILE_BATCH    = 100
)

// Outcome is the result of reconciling a single product
type Outcome string

const (
	// OutcomeRepaired means the product owner was rolled forward to the chain owner
	OutcomeRepaired Outcome = "repaired"
	// OutcomeCorrupt means the chain failed verification and nothing was changed
	OutcomeCorrupt Outcome = "corrupt"
	// OutcomeSkipped means the drift was resolved by someone else before the repair
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the repair kept failing after retries
	OutcomeFailed Outcome = "failed"
)

// OwnershipReconcilerConfig holds configuration for the ownership reconciler
type OwnershipReconcilerConfig struct {
	Interval         time.Duration // Time to sleep between passes
	BatchSize        int           // Drifted products handled per pass
	WorkerPoolSize   int           // Concurrent repairs
	RepairMaxElapsed time.Duration // Retry budget for a single repair
}

// Report summarizes a reconciliation pass
type Report struct {
	Scanned  int `json:"scanned"`
	Repaired int `json:"repaired"`
	Corrupt  int `json:"corrupt"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// OwnershipReconciler rolls product owners forward to the owner of their latest block.
// Chains that fail verification are reported and left untouched.
type OwnershipReconciler interface {
	Sweeper

	// RunOnce performs a single pass
	RunOnce(ctx context.Context) (*Report, error)
}

type ownershipReconciler struct {
	config    OwnershipReconcilerConfig
	store     store.Store
	ledger    ledger.Ledger
	locker    lock.Locker
	clock     adapter.Clock
	metrics   *metrics.Metrics
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewOwnershipReconciler creates a new ownership reconciler
func NewOwnershipReconciler(
	config OwnershipReconcilerConfig,
	st store.Store,
	l ledger.Ledger,
	locker lock.Locker,
	clock adapter.Clock,
	m *metrics.Metrics,
) OwnershipReconciler {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_RECONCILE_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_RECONCILE_BATCH
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 4
	}
	if config.RepairMaxElapsed <= 0 {
		config.RepairMaxElapsed = time.Minute
	}

	return &ownershipReconciler{
		config:    config,
		store:     st,
		ledger:    l,
		locker:    locker,
		clock:     clock,
		metrics:   m,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (r *ownershipReconciler) Name() string {
	return "ownership-reconciler"
}

// Start runs reconciliation passes until the context is canceled or Stop is called
func (r *ownershipReconciler) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("reconciler already running")
	}
	defer close(r.stoppedCh)

	logger.InfoCtx(ctx, "Starting ownership reconciler",
		zap.Duration("interval", r.config.Interval),
		zap.Int("batch_size", r.config.BatchSize),
		zap.Int("worker_pool_size", r.config.WorkerPoolSize),
	)

	for {
		if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Ownership reconciler stopping due to context cancellation")
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "Ownership reconciler stop requested")
			return nil
		case <-r.clock.After(r.config.Interval):
		}
	}
}

// Stop signals the loop to exit and waits for the in-flight pass
func (r *ownershipReconciler) Stop(ctx context.Context) error {
	if !r.running.Load() {
		return nil
	}

	r.stopOnce.Do(func() {
		close(r.stopChan)
	})

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Ownership reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Ownership reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce finds drifted products and repairs them concurrently
func (r *ownershipReconciler) RunOnce(ctx context.Context) (*Report, error) {
	startTime := r.clock.Now()

	drifts, err := r.store.GetOwnerDrifts(ctx, r.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner drifts: %w", err)
	}

	report := &Report{Scanned: len(drifts)}
	if len(drifts) == 0 {
		logger.DebugCtx(ctx, "No ownership drift found")
		return report, nil
	}

	logger.InfoCtx(ctx, "Found products with ownership drift", zap.Int("count", len(drifts)))

	pool := pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(len(drifts)),
		pond.WithContext(ctx),
	)

	var mu sync.Mutex
	for _, drift := range drifts {
		pool.Submit(func() {
			outcome := r.reconcileWithRetry(ctx, drift)
			r.metrics.ReconcilerOutcome(string(outcome))

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case OutcomeRepaired:
				report.Repaired++
			case OutcomeCorrupt:
				report.Corrupt++
			case OutcomeSkipped:
				report.Skipped++
			default:
				report.Failed++
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Reconciliation pass completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Int("scanned", report.Scanned),
		zap.Int("repaired", report.Repaired),
		zap.Int("corrupt", report.Corrupt),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	return report, ctx.Err()
}

// reconcileWithRetry retries transient repair failures with exponential backoff
func (r *ownershipReconciler) reconcileWithRetry(ctx context.Context, drift store.OwnerDrift) Outcome {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = r.config.RepairMaxElapsed

	var outcome Outcome
	operation := func() error {
		var err error
		outcome, err = r.reconcileProduct(ctx, drift)
		if err != nil && errors.Is(err, domain.ErrChainIntegrity) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, next time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Ownership repair failed, retrying",
			zap.Error(err),
			zap.String("product_id", drift.ProductID),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", next),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError)
	switch {
	case err == nil:
		return outcome
	case errors.Is(err, domain.ErrChainIntegrity):
		r.metrics.IntegrityFailure()
		logger.ErrorCtx(ctx, err,
			zap.String("product_id", drift.ProductID),
			zap.String("product_owner_id", drift.ProductOwnerID),
			zap.String("chain_owner_id", drift.ChainOwnerID),
		)
		return OutcomeCorrupt
	default:
		logger.ErrorCtx(ctx, fmt.Errorf("failed to repair ownership after %d retries: %w", attemptCount, err),
			zap.String("product_id", drift.ProductID),
		)
		return OutcomeFailed
	}
}

// reconcileProduct repairs a single product under its chain lock
func (r *ownershipReconciler) reconcileProduct(ctx context.Context, drift store.OwnerDrift) (Outcome, error) {
	release, err := r.locker.Acquire(ctx, lock.ProductKey(drift.ProductID))
	if err != nil {
		return OutcomeFailed, fmt.Errorf("failed to lock product: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.WarnCtx(ctx, "Failed to release product lock", zap.Error(err), zap.String("product_id", drift.ProductID))
		}
	}()

	verification, err := r.ledger.VerifyChain(ctx, drift.ProductID)
	if err != nil {
		return OutcomeFailed, err
	}
	if !verification.Valid {
		return OutcomeCorrupt, &domain.ChainIntegrityError{ProductID: drift.ProductID, Violations: verification.Errors}
	}

	outcome := OutcomeSkipped
	err = r.store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.LockProductByID(ctx, drift.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}

		latest, err := tx.GetLatestBlock(ctx, drift.ProductID)
		if err != nil {
			return err
		}
		if latest == nil || latest.OwnerID == product.OwnerID {
			return nil
		}

		now := r.clock.Now()
		swapped, err := tx.UpdateProductOwner(ctx, store.UpdateProductOwnerInput{
			ProductID:       product.ID,
			ExpectedOwnerID: product.OwnerID,
			NewOwnerID:      latest.OwnerID,
			NewOwnerRole:    latest.Role,
			At:              now,
		})
		if err != nil {
			return err
		}
		if !swapped {
			return nil
		}

		extra := map[string]any{
			"previousOwnerId": product.OwnerID,
			"chainOwnerId":    latest.OwnerID,
			"blockNumber":     latest.BlockNumber,
		}

		// The transfer that produced the latest block may still be pending if the accept crashed mid-way
		pending, err := tx.GetPendingTransfer(ctx, product.ID, latest.OwnerID)
		if err != nil {
			return err
		}
		if pending != nil && pending.FromUserID == latest.AddedBy {
			ok, err := tx.TransitionTransfer(ctx, store.TransitionTransferInput{
				ID:   pending.ID,
				From: schema.TransferStatusPending,
				To:   schema.TransferStatusCompleted,
				At:   now,
			})
			if err != nil {
				return err
			}
			if ok {
				if err := tx.SetTransferBlockNumber(ctx, pending.ID, latest.BlockNumber); err != nil {
					return err
				}
				extra["transferId"] = pending.ID
			}
		}

		if _, err := tx.CreateProductEvent(ctx, store.CreateProductEventInput{
			ProductID: product.ID,
			EventType: schema.ProductEventTypeReconciled,
			UserID:    latest.OwnerID,
			Message:   fmt.Sprintf("Owner reconciled to %s from block %d", latest.Name, latest.BlockNumber),
			Extra:     extra,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		outcome = OutcomeRepaired
		return nil
	})
	if err != nil {
		return OutcomeFailed, fmt.Errorf("failed to repair product %s: %w", drift.ProductID, err)
	}

	if outcome == OutcomeRepaired {
		logger.InfoCtx(ctx, "Reconciled product owner",
			zap.String("product_id", drift.ProductID),
			zap.String("previous_owner_id", drift.ProductOwnerID),
			zap.String("owner_id", drift.ChainOwnerID),
			zap.Int64("block_number", drift.BlockNumber),
		)
	}

	return outcome, nil
}
