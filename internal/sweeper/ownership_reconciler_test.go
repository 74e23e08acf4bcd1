package sweeper_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
	"github.com/feral-file/farmtrace/internal/sweeper"
)

type testReconciler struct {
	db         *gorm.DB
	store      store.Store
	ledger     ledger.Ledger
	reconciler sweeper.OwnershipReconciler
}

func setupTestReconciler(t *testing.T, clock adapter.Clock) *testReconciler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := store.Open(store.DriverSQLite, dsn, false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() {
		_ = store.Close(db)
	})

	if clock == nil {
		clock = adapter.NewClock()
	}
	st := store.NewPGStore(db)
	m := metrics.New(prometheus.NewRegistry())
	l := ledger.NewLedger(st, ledger.NewHasher(adapter.NewJSON(), adapter.NewJCS()), adapter.NewClock(), m)

	return &testReconciler{
		db:     db,
		store:  st,
		ledger: l,
		reconciler: sweeper.NewOwnershipReconciler(sweeper.OwnershipReconcilerConfig{
			Interval:         time.Hour,
			BatchSize:        10,
			WorkerPoolSize:   2,
			RepairMaxElapsed: 200 * time.Millisecond,
		}, st, l, lock.NewLocalLocker(), clock, m),
	}
}

func (tr *testReconciler) createUser(t *testing.T, username string, role domain.Role) *schema.User {
	t.Helper()

	user, err := tr.store.CreateUser(context.Background(), store.CreateUserInput{
		Username: username,
		Name:     "User " + username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// createProductWithChain creates a product owned by owners[0] whose chain passes through every owner.
// The product owner is left at owners[0], which leaves it behind its chain when more than one owner is given.
func (tr *testReconciler) createProductWithChain(t *testing.T, owners ...*schema.User) *schema.Product {
	t.Helper()
	ctx := context.Background()

	p, err := tr.store.CreateProduct(ctx, store.CreateProductInput{
		Name:     "Apples",
		Category: "fruit",
		BatchID:  "FRU-2026-" + uuid.NewString()[:6],
		OwnerID:  owners[0].ID,
	})
	require.NoError(t, err)

	addedBy := owners[0].ID
	for i, owner := range owners {
		transferType := domain.TransferTypeTransfer
		if i == 0 {
			transferType = domain.TransferTypeInitial
		}
		_, err := tr.ledger.AppendBlock(ctx, ledger.AppendBlockInput{
			ProductID:    p.ID,
			OwnerID:      owner.ID,
			Role:         owner.Role,
			Username:     owner.Username,
			Name:         owner.Name,
			AddedBy:      addedBy,
			TransferType: transferType,
		})
		require.NoError(t, err)
		addedBy = owner.ID
	}

	return p
}

func TestOwnershipReconciler_RepairsDrift(t *testing.T) {
	tr := setupTestReconciler(t, nil)
	ctx := context.Background()

	farmer := tr.createUser(t, "alice", domain.RoleFarmer)
	distributor := tr.createUser(t, "bob", domain.RoleDistributor)

	p := tr.createProductWithChain(t, farmer)

	// The accept crashed after appending the block: transfer still pending, owner not moved
	pending, err := tr.store.CreateTransfer(ctx, store.CreateTransferInput{
		ProductID:    p.ID,
		FromUserID:   farmer.ID,
		ToUserID:     distributor.ID,
		TransferType: domain.TransferTypeTransfer,
	})
	require.NoError(t, err)
	_, err = tr.ledger.AppendBlock(ctx, ledger.AppendBlockInput{
		ProductID:    p.ID,
		OwnerID:      distributor.ID,
		Role:         distributor.Role,
		Username:     distributor.Username,
		Name:         distributor.Name,
		AddedBy:      farmer.ID,
		TransferType: domain.TransferTypeTransfer,
	})
	require.NoError(t, err)

	inSync := tr.createProductWithChain(t, farmer)

	report, err := tr.reconciler.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &sweeper.Report{Scanned: 1, Repaired: 1}, report)

	repaired, err := tr.store.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, distributor.ID, repaired.OwnerID)

	completed, err := tr.store.GetTransferByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.TransferStatusCompleted, completed.Status)
	require.NotNil(t, completed.BlockNumber)
	assert.Equal(t, int64(2), *completed.BlockNumber)

	events, err := tr.store.GetProductEvents(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schema.ProductEventTypeReconciled, events[0].EventType)

	untouched, err := tr.store.GetProductByID(ctx, inSync.ID)
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, untouched.OwnerID)

	// A second pass has nothing left to do
	report, err = tr.reconciler.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &sweeper.Report{}, report)
}

func TestOwnershipReconciler_RefusesCorruptChain(t *testing.T) {
	tr := setupTestReconciler(t, nil)
	ctx := context.Background()

	farmer := tr.createUser(t, "alice", domain.RoleFarmer)
	distributor := tr.createUser(t, "bob", domain.RoleDistributor)
	retailer := tr.createUser(t, "carol", domain.RoleRetailer)

	p := tr.createProductWithChain(t, farmer, distributor, retailer)
	require.NoError(t, tr.db.Model(&schema.OwnershipBlock{}).
		Where("product_id = ? AND block_number = ?", p.ID, 2).
		Update("owner_id", "mallory").Error)

	report, err := tr.reconciler.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Corrupt)
	assert.Equal(t, 0, report.Repaired)

	unchanged, err := tr.store.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, unchanged.OwnerID)

	chain, err := tr.ledger.GetChain(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, chain, 3)
}

func TestOwnershipReconciler_MultipleProducts(t *testing.T) {
	tr := setupTestReconciler(t, nil)
	ctx := context.Background()

	farmer := tr.createUser(t, "alice", domain.RoleFarmer)
	distributor := tr.createUser(t, "bob", domain.RoleDistributor)

	const n = 5
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, tr.createProductWithChain(t, farmer, distributor).ID)
	}

	report, err := tr.reconciler.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, report.Scanned)
	assert.Equal(t, n, report.Repaired)

	for _, id := range ids {
		p, err := tr.store.GetProductByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, distributor.ID, p.OwnerID)
	}
}

func TestOwnershipReconciler_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetOwnerDrifts(gomock.Any(), 10).Return(nil, errors.New("connection refused"))

	r := sweeper.NewOwnershipReconciler(sweeper.OwnershipReconcilerConfig{BatchSize: 10}, st, mocks.NewMockLedger(ctrl), mocks.NewMockLocker(ctrl), adapter.NewClock(), nil)
	_, err := r.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get owner drifts")
}

func TestOwnershipReconciler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()

	passes := make(chan struct{}, 10)
	clock.EXPECT().After(time.Hour).DoAndReturn(func(d time.Duration) <-chan time.Time {
		passes <- struct{}{}
		return make(chan time.Time)
	}).AnyTimes()

	tr := setupTestReconciler(t, clock)
	assert.Equal(t, "ownership-reconciler", tr.reconciler.Name())

	done := make(chan error, 1)
	go func() {
		done <- tr.reconciler.Start(context.Background())
	}()

	select {
	case <-passes:
	case <-time.After(5 * time.Second):
		t.Fatal("reconciler never completed a pass")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tr.reconciler.Stop(stopCtx))
	require.NoError(t, <-done)

	// Stopping twice is harmless
	assert.NoError(t, tr.reconciler.Stop(stopCtx))
}

func TestOwnershipReconciler_StartCanceled(t *testing.T) {
	tr := setupTestReconciler(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, tr.reconciler.Start(ctx))
	assert.Error(t, tr.reconciler.Start(context.Background()))
}
