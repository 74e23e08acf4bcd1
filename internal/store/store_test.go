package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// createTestUser creates a user with a unique username and email
func createTestUser(t *testing.T, store Store, role domain.Role) *schema.User {
	t.Helper()
	id := uuid.NewString()
	user, err := store.CreateUser(context.Background(), CreateUserInput{
		ID:       id,
		Username: "user-" + id[:8],
		Name:     "Test " + string(role),
		Email:    id[:8] + "@farmtrace.test",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// createTestProduct creates a product owned by ownerID
func createTestProduct(t *testing.T, store Store, ownerID string) *schema.Product {
	t.Helper()
	id := uuid.NewString()
	product, err := store.CreateProduct(context.Background(), CreateProductInput{
		ID:       id,
		Name:     "Tomatoes",
		Category: "vegetables",
		BatchID:  "VEG-2026-" + id[:8],
		QRCode:   "farmtrace://VEG-2026-" + id[:8],
		OwnerID:  ownerID,
		Attributes: map[string]any{
			"quantity": "100",
			"unit":     "kg",
		},
	})
	require.NoError(t, err)
	return product
}

// buildTestBlock creates an unsaved block for a product
func buildTestBlock(productID, ownerID string, number int64, prev *string) *schema.OwnershipBlock {
	return &schema.OwnershipBlock{
		ProductID:         productID,
		BlockNumber:       number,
		OwnerID:           ownerID,
		Role:              domain.RoleFarmer,
		Username:          "owner",
		Name:              "Owner",
		AddedBy:           ownerID,
		CanEditFields:     datatypes.JSONSlice[string]{"quantity"},
		TransferType:      domain.TransferTypeTransfer,
		PreviousOwnerHash: prev,
		OwnershipHash:     fmt.Sprintf("%064d", number),
	}
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get user", func(t *testing.T) {
		user := createTestUser(t, store, domain.RoleFarmer)

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, domain.RoleFarmer, got.Role)
	})

	t.Run("get missing user returns nil", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		user := createTestUser(t, store, domain.RoleRetailer)

		err := store.Transaction(ctx, func(tx Store) error {
			_, err := tx.CreateUser(ctx, CreateUserInput{
				Username: user.Username,
				Name:     "Someone else",
				Email:    "other-" + user.Email,
				Role:     domain.RoleRetailer,
			})
			return err
		})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("list users by role", func(t *testing.T) {
		distributor := createTestUser(t, store, domain.RoleDistributor)

		role := domain.RoleDistributor
		users, err := store.ListUsers(ctx, UserQueryFilter{Role: &role})
		require.NoError(t, err)

		var found bool
		for _, u := range users {
			assert.Equal(t, domain.RoleDistributor, u.Role)
			if u.ID == distributor.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
}

// =============================================================================
// Test: Products
// =============================================================================

func testProducts(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)
	distributor := createTestUser(t, store, domain.RoleDistributor)

	t.Run("create and get product", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		got, err := store.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, farmer.ID, got.OwnerID)
		assert.Equal(t, schema.ProductStatusRegistered, got.Status)
		assert.Equal(t, "kg", got.Attributes["unit"])

		byBatch, err := store.GetProductByBatchID(ctx, product.BatchID)
		require.NoError(t, err)
		require.NotNil(t, byBatch)
		assert.Equal(t, product.ID, byBatch.ID)
	})

	t.Run("get missing product returns nil", func(t *testing.T) {
		got, err := store.GetProductByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetProductByBatchID(ctx, "NOPE-2026-000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update owner is a compare-and-swap", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		ok, err := store.UpdateProductOwner(ctx, UpdateProductOwnerInput{
			ProductID:       product.ID,
			ExpectedOwnerID: distributor.ID,
			NewOwnerID:      farmer.ID,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.UpdateProductOwner(ctx, UpdateProductOwnerInput{
			ProductID:       product.ID,
			ExpectedOwnerID: farmer.ID,
			NewOwnerID:      distributor.ID,
			NewOwnerRole:    domain.RoleDistributor,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, distributor.ID, got.OwnerID)
		assert.Equal(t, schema.ProductStatusInTransit, got.Status)

		ok, err = store.UpdateProductOwner(ctx, UpdateProductOwnerInput{
			ProductID:       product.ID,
			ExpectedOwnerID: distributor.ID,
			NewOwnerID:      farmer.ID,
			NewOwnerRole:    domain.RoleRetailer,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err = store.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.ProductStatusDelivered, got.Status)
	})

	t.Run("update attributes merges keys", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		updated, err := store.UpdateProductAttributes(ctx, product.ID, map[string]any{"quantity": "80", "location": "Field 7"}, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "80", updated.Attributes["quantity"])
		assert.Equal(t, "Field 7", updated.Attributes["location"])
		assert.Equal(t, "kg", updated.Attributes["unit"])

		got, err := store.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "80", got.Attributes["quantity"])
	})

	t.Run("update attributes of missing product", func(t *testing.T) {
		_, err := store.UpdateProductAttributes(ctx, uuid.NewString(), map[string]any{"quantity": "1"}, time.Now())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("lock product inside transaction", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		err := store.Transaction(ctx, func(tx Store) error {
			locked, err := tx.LockProductByID(ctx, product.ID)
			if err != nil {
				return err
			}
			if locked == nil || locked.ID != product.ID {
				return errors.New("product not locked")
			}
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("list products by owner with total", func(t *testing.T) {
		owner := createTestUser(t, store, domain.RoleFarmer)
		for range 3 {
			createTestProduct(t, store, owner.ID)
		}

		products, total, err := store.ListProducts(ctx, ProductQueryFilter{OwnerID: &owner.ID, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, products, 2)

		products, _, err = store.ListProducts(ctx, ProductQueryFilter{OwnerID: &owner.ID, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

// =============================================================================
// Test: Ownership blocks
// =============================================================================

func testOwnershipBlocks(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)

	t.Run("insert and read blocks in order", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		genesis := buildTestBlock(product.ID, farmer.ID, 1, nil)
		require.NoError(t, store.InsertBlock(ctx, genesis))
		assert.NotEmpty(t, genesis.ID)

		second := buildTestBlock(product.ID, farmer.ID, 2, &genesis.OwnershipHash)
		require.NoError(t, store.InsertBlock(ctx, second))

		blocks, err := store.GetBlocksByProductID(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, int64(1), blocks[0].BlockNumber)
		assert.Nil(t, blocks[0].PreviousOwnerHash)
		assert.Equal(t, int64(2), blocks[1].BlockNumber)
		require.NotNil(t, blocks[1].PreviousOwnerHash)
		assert.Equal(t, genesis.OwnershipHash, *blocks[1].PreviousOwnerHash)
		assert.Equal(t, []string{"quantity"}, []string(blocks[1].CanEditFields))

		latest, err := store.GetLatestBlock(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, int64(2), latest.BlockNumber)
	})

	t.Run("latest block of empty chain is nil", func(t *testing.T) {
		latest, err := store.GetLatestBlock(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("duplicate block number is rejected", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)
		require.NoError(t, store.InsertBlock(ctx, buildTestBlock(product.ID, farmer.ID, 1, nil)))

		err := store.Transaction(ctx, func(tx Store) error {
			return tx.InsertBlock(ctx, buildTestBlock(product.ID, farmer.ID, 1, nil))
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		blocks, err := store.GetBlocksByProductID(ctx, product.ID)
		require.NoError(t, err)
		assert.Len(t, blocks, 1)
	})

	t.Run("owner drift is detected", func(t *testing.T) {
		buyer := createTestUser(t, store, domain.RoleDistributor)
		product := createTestProduct(t, store, farmer.ID)

		genesis := buildTestBlock(product.ID, farmer.ID, 1, nil)
		require.NoError(t, store.InsertBlock(ctx, genesis))
		require.NoError(t, store.InsertBlock(ctx, buildTestBlock(product.ID, buyer.ID, 2, &genesis.OwnershipHash)))

		drifts, err := store.GetOwnerDrifts(ctx, 100)
		require.NoError(t, err)

		var drift *OwnerDrift
		for i := range drifts {
			if drifts[i].ProductID == product.ID {
				drift = &drifts[i]
			}
		}
		require.NotNil(t, drift)
		assert.Equal(t, farmer.ID, drift.ProductOwnerID)
		assert.Equal(t, buyer.ID, drift.ChainOwnerID)
		assert.Equal(t, int64(2), drift.BlockNumber)

		ok, err := store.UpdateProductOwner(ctx, UpdateProductOwnerInput{
			ProductID:       product.ID,
			ExpectedOwnerID: farmer.ID,
			NewOwnerID:      buyer.ID,
		})
		require.NoError(t, err)
		require.True(t, ok)

		drifts, err = store.GetOwnerDrifts(ctx, 100)
		require.NoError(t, err)
		for _, d := range drifts {
			assert.NotEqual(t, product.ID, d.ProductID)
		}
	})
}

// =============================================================================
// Test: Ownership transfers
// =============================================================================

func testOwnershipTransfers(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)
	distributor := createTestUser(t, store, domain.RoleDistributor)

	newTransfer := func(productID string) CreateTransferInput {
		return CreateTransferInput{
			ProductID:    productID,
			FromUserID:   farmer.ID,
			ToUserID:     distributor.ID,
			TransferType: domain.TransferTypeDistribution,
			Notes:        "pallet 4",
		}
	}

	t.Run("create and get transfer", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)

		transfer, err := store.CreateTransfer(ctx, newTransfer(product.ID))
		require.NoError(t, err)
		assert.Equal(t, schema.TransferStatusPending, transfer.Status)

		got, err := store.GetTransferByID(ctx, transfer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "pallet 4", got.Notes)
		assert.Nil(t, got.BlockNumber)
		assert.Nil(t, got.ResolvedAt)

		pending, err := store.GetPendingTransfer(ctx, product.ID, distributor.ID)
		require.NoError(t, err)
		require.NotNil(t, pending)
		assert.Equal(t, transfer.ID, pending.ID)
	})

	t.Run("get missing transfer returns nil", func(t *testing.T) {
		got, err := store.GetTransferByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("second pending transfer to same recipient is rejected", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)
		_, err := store.CreateTransfer(ctx, newTransfer(product.ID))
		require.NoError(t, err)

		err = store.Transaction(ctx, func(tx Store) error {
			_, err := tx.CreateTransfer(ctx, newTransfer(product.ID))
			return err
		})
		assert.ErrorIs(t, err, domain.ErrTransferAlreadyPending)
	})

	t.Run("resolved transfer frees the recipient slot", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)
		first, err := store.CreateTransfer(ctx, newTransfer(product.ID))
		require.NoError(t, err)

		ok, err := store.TransitionTransfer(ctx, TransitionTransferInput{
			ID:   first.ID,
			From: schema.TransferStatusPending,
			To:   schema.TransferStatusRejected,
		})
		require.NoError(t, err)
		require.True(t, ok)

		second, err := store.CreateTransfer(ctx, newTransfer(product.ID))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("transition is conditional on current status", func(t *testing.T) {
		product := createTestProduct(t, store, farmer.ID)
		transfer, err := store.CreateTransfer(ctx, newTransfer(product.ID))
		require.NoError(t, err)

		ok, err := store.TransitionTransfer(ctx, TransitionTransferInput{
			ID:   transfer.ID,
			From: schema.TransferStatusPending,
			To:   schema.TransferStatusCompleted,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.TransitionTransfer(ctx, TransitionTransferInput{
			ID:   transfer.ID,
			From: schema.TransferStatusPending,
			To:   schema.TransferStatusRejected,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.SetTransferBlockNumber(ctx, transfer.ID, 2))

		got, err := store.GetTransferByID(ctx, transfer.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.TransferStatusCompleted, got.Status)
		require.NotNil(t, got.BlockNumber)
		assert.Equal(t, int64(2), *got.BlockNumber)
		assert.NotNil(t, got.ResolvedAt)
	})

	t.Run("list transfers by direction and status", func(t *testing.T) {
		sender := createTestUser(t, store, domain.RoleFarmer)
		receiver := createTestUser(t, store, domain.RoleRetailer)
		product := createTestProduct(t, store, sender.ID)

		_, err := store.CreateTransfer(ctx, CreateTransferInput{
			ProductID:    product.ID,
			FromUserID:   sender.ID,
			ToUserID:     receiver.ID,
			TransferType: domain.TransferTypeSale,
		})
		require.NoError(t, err)

		incoming, err := store.ListTransfers(ctx, TransferQueryFilter{UserID: &receiver.ID, Direction: TransferDirectionIncoming})
		require.NoError(t, err)
		assert.Len(t, incoming, 1)

		outgoing, err := store.ListTransfers(ctx, TransferQueryFilter{UserID: &receiver.ID, Direction: TransferDirectionOutgoing})
		require.NoError(t, err)
		assert.Empty(t, outgoing)

		all, err := store.ListTransfers(ctx, TransferQueryFilter{UserID: &sender.ID})
		require.NoError(t, err)
		assert.Len(t, all, 1)

		completed := schema.TransferStatusCompleted
		none, err := store.ListTransfers(ctx, TransferQueryFilter{UserID: &sender.ID, Status: &completed})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

// =============================================================================
// Test: Product events
// =============================================================================

func testProductEvents(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)
	product := createTestProduct(t, store, farmer.ID)

	_, err := store.CreateProductEvent(ctx, CreateProductEventInput{
		ProductID: product.ID,
		EventType: schema.ProductEventTypeRegistration,
		UserID:    farmer.ID,
		Message:   "registered",
		Extra:     map[string]any{"blockNumber": 1},
	})
	require.NoError(t, err)

	_, err = store.CreateProductEvent(ctx, CreateProductEventInput{
		ProductID: product.ID,
		EventType: schema.ProductEventTypeAttributesUpdated,
		UserID:    farmer.ID,
		Message:   "updated",
	})
	require.NoError(t, err)

	events, err := store.GetProductEvents(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, schema.ProductEventTypeRegistration, events[0].EventType)
	assert.Equal(t, schema.ProductEventTypeAttributesUpdated, events[1].EventType)
	assert.EqualValues(t, 1, events[0].Extra["blockNumber"])
}

// =============================================================================
// Test: Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()
	user := createTestUser(t, store, domain.RoleDistributor)
	other := createTestUser(t, store, domain.RoleRetailer)

	first := &schema.Notification{
		UserID:  user.ID,
		Title:   "Transfer requested",
		Message: "You have a new transfer",
		Type:    domain.NotificationTypeTransferRequested,
	}
	require.NoError(t, store.CreateNotification(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &schema.Notification{
		UserID:  user.ID,
		Title:   "Transfer accepted",
		Message: "Your transfer was accepted",
		Type:    domain.NotificationTypeTransferAccepted,
	}
	require.NoError(t, store.CreateNotification(ctx, second))

	all, err := store.ListNotifications(ctx, NotificationQueryFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	ok, err := store.MarkNotificationRead(ctx, first.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.MarkNotificationRead(ctx, first.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err := store.ListNotifications(ctx, NotificationQueryFilter{UserID: user.ID, UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)
}

// =============================================================================
// Test: Quality checks, scans and stats
// =============================================================================

func testQualityChecksAndScans(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)
	consumer := createTestUser(t, store, domain.RoleConsumer)
	product := createTestProduct(t, store, farmer.ID)
	other := createTestProduct(t, store, farmer.ID)
	require.NoError(t, store.InsertBlock(ctx, buildTestBlock(product.ID, farmer.ID, 1, nil)))

	t.Run("quality checks are listed newest first", func(t *testing.T) {
		first, err := store.CreateQualityCheck(ctx, CreateQualityCheckInput{
			ProductID:   product.ID,
			InspectorID: farmer.ID,
			CheckType:   "visual",
			Score:       80,
			Verified:    true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)

		second, err := store.CreateQualityCheck(ctx, CreateQualityCheckInput{
			ProductID:        product.ID,
			InspectorID:      farmer.ID,
			CheckType:        "lab",
			Score:            90,
			CertificationURL: "https://certs.farmtrace.test/lab-1",
		})
		require.NoError(t, err)

		checks, err := store.GetQualityChecksByProductID(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, checks, 2)
		assert.Equal(t, second.ID, checks[0].ID)
		assert.InDelta(t, 90, checks[0].Score, 0.001)
		assert.Equal(t, "https://certs.farmtrace.test/lab-1", checks[0].CertificationURL)
		assert.True(t, checks[1].Verified)

		none, err := store.GetQualityChecksByProductID(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("recent scans carry their product", func(t *testing.T) {
		_, err := store.CreateScan(ctx, CreateScanInput{ProductID: product.ID})
		require.NoError(t, err)
		scanned, err := store.CreateScan(ctx, CreateScanInput{
			ProductID:   other.ID,
			UserID:      &consumer.ID,
			Location:    "Market Street",
			Coordinates: map[string]any{"lat": 10.5, "lng": 106.7},
		})
		require.NoError(t, err)

		scans, err := store.ListRecentScans(ctx, ScanQueryFilter{})
		require.NoError(t, err)
		require.Len(t, scans, 2)
		assert.Equal(t, scanned.ID, scans[0].ID)
		require.NotNil(t, scans[0].Product)
		assert.Equal(t, other.BatchID, scans[0].Product.BatchID)
		assert.Equal(t, "Market Street", scans[0].Location)

		mine, err := store.ListRecentScans(ctx, ScanQueryFilter{UserID: &consumer.ID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, other.ID, mine[0].ProductID)

		limited, err := store.ListRecentScans(ctx, ScanQueryFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("stats", func(t *testing.T) {
		_, err := store.CreateTransfer(ctx, CreateTransferInput{
			ProductID:    product.ID,
			FromUserID:   farmer.ID,
			ToUserID:     consumer.ID,
			TransferType: domain.TransferTypeSale,
		})
		require.NoError(t, err)

		stats, err := store.GetStats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats.TotalProducts)
		assert.EqualValues(t, 1, stats.VerifiedBatches)
		assert.EqualValues(t, 1, stats.ActiveShipments)
		assert.InDelta(t, 85, stats.AverageQualityScore, 0.001)
	})
}

func testEmptyStats(t *testing.T, store Store) {
	stats, err := store.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()
	farmer := createTestUser(t, store, domain.RoleFarmer)

	var productID string
	errRollback := errors.New("rollback")
	err := store.Transaction(ctx, func(tx Store) error {
		product := createTestProduct(t, tx, farmer.ID)
		productID = product.ID
		if err := tx.InsertBlock(ctx, buildTestBlock(product.ID, farmer.ID, 1, nil)); err != nil {
			return err
		}
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)

	product, err := store.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Nil(t, product)

	blocks, err := store.GetBlocksByProductID(ctx, productID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

// RunStoreTests runs all store tests against the provided store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"Products", testProducts},
		{"OwnershipBlocks", testOwnershipBlocks},
		{"OwnershipTransfers", testOwnershipTransfers},
		{"ProductEvents", testProductEvents},
		{"Notifications", testNotifications},
		{"QualityChecksAndScans", testQualityChecksAndScans},
		{"EmptyStats", testEmptyStats},
		{"Transaction", testTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name         string
		open         int
		idle         int
		life         time.Duration
		idleTime     time.Duration
		wantOpen     int
		wantIdle     int
		wantLife     time.Duration
		wantIdleTime time.Duration
	}{
		{
			name:         "defaults",
			wantOpen:     20,
			wantIdle:     5,
			wantLife:     5 * time.Minute,
			wantIdleTime: 10 * time.Minute,
		},
		{
			name:         "idle clamped to open",
			open:         3,
			idle:         10,
			life:         time.Minute,
			idleTime:     time.Minute,
			wantOpen:     3,
			wantIdle:     3,
			wantLife:     time.Minute,
			wantIdleTime: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, life, idleTime := NormalizeConnectionPoolSettings(tt.open, tt.idle, tt.life, tt.idleTime)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLife, life)
			assert.Equal(t, tt.wantIdleTime, idleTime)
		})
	}
}
