package product_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/product"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

type testService struct {
	db       *gorm.DB
	store    store.Store
	ledger   ledger.Ledger
	notifier *mocks.MockNotifier
	service  product.Service
}

func setupTestService(t *testing.T) *testService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := store.Open(store.DriverSQLite, dsn, false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() {
		_ = store.Close(db)
	})

	ctrl := gomock.NewController(t)
	st := store.NewPGStore(db)
	clock := adapter.NewClock()
	l := ledger.NewLedger(st, ledger.NewHasher(adapter.NewJSON(), adapter.NewJCS()), clock, nil)
	notifier := mocks.NewMockNotifier(ctrl)

	return &testService{
		db:       db,
		store:    st,
		ledger:   l,
		notifier: notifier,
		service:  product.NewService(st, l, notifier, clock),
	}
}

func (ts *testService) createUser(t *testing.T, username string, role domain.Role) *schema.User {
	t.Helper()

	user, err := ts.store.CreateUser(context.Background(), store.CreateUserInput{
		Username: username,
		Name:     "User " + username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestService_RegisterProduct(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, n domain.Notification) {
		assert.Equal(t, farmer.ID, n.UserID)
		assert.Equal(t, domain.NotificationTypeProductRegistered, n.Type)
	})

	registered, err := ts.service.RegisterProduct(ctx, product.RegisterProductInput{
		OwnerID:    farmer.ID,
		Name:       "  Heirloom Tomatoes ",
		Category:   "Tomatoes",
		Attributes: map[string]any{"quantity": 120.0, "unit": "kg"},
	})
	require.NoError(t, err)

	p := registered.Product
	assert.Equal(t, "Heirloom Tomatoes", p.Name)
	assert.Equal(t, farmer.ID, p.OwnerID)
	assert.Equal(t, schema.ProductStatusRegistered, p.Status)
	assert.Regexp(t, `^TOM-\d{4}-[0-9A-Z]{6}$`, p.BatchID)
	assert.Equal(t, product.QRPayload(p.BatchID), p.QRCode)

	genesis := registered.Genesis
	assert.Equal(t, int64(1), genesis.BlockNumber)
	assert.Nil(t, genesis.PreviousOwnerHash)
	assert.Equal(t, farmer.ID, genesis.AddedBy)
	assert.Equal(t, domain.TransferTypeInitial, genesis.TransferType)
	assert.Equal(t, domain.EditableFields(domain.RoleFarmer), []string(genesis.CanEditFields))

	byBatch, err := ts.service.GetProductByBatchID(ctx, p.BatchID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byBatch.ID)

	events, err := ts.service.GetEvents(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schema.ProductEventTypeRegistration, events[0].EventType)
	assert.Equal(t, genesis.OwnershipHash, events[0].Extra["ownershipHash"])

	owners, err := ts.service.GetOwners(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, farmer.ID, owners[0].UserID)
	assert.Equal(t, int64(1), owners[0].BlockNumber)

	verification, err := ts.ledger.VerifyChain(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, verification.Valid)
}

func TestService_RegisterProduct_Validation(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	consumer := ts.createUser(t, "dave", domain.RoleConsumer)
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)

	tests := []struct {
		name     string
		input    product.RegisterProductInput
		expected error
	}{
		{
			name:     "missing name",
			input:    product.RegisterProductInput{OwnerID: farmer.ID, Name: " ", Category: "fruit"},
			expected: domain.ErrInvalidInput,
		},
		{
			name:     "missing category",
			input:    product.RegisterProductInput{OwnerID: farmer.ID, Name: "Apples"},
			expected: domain.ErrInvalidInput,
		},
		{
			name:     "unknown owner",
			input:    product.RegisterProductInput{OwnerID: uuid.NewString(), Name: "Apples", Category: "fruit"},
			expected: domain.ErrUserNotFound,
		},
		{
			name:     "consumer cannot register",
			input:    product.RegisterProductInput{OwnerID: consumer.ID, Name: "Apples", Category: "fruit"},
			expected: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.service.RegisterProduct(ctx, tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	products, total, err := ts.service.ListProducts(ctx, store.ProductQueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, int64(0), total)
}

func TestService_RegisterProduct_RollsBackOnChainFailure(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockLedger(ctrl)
	failing.EXPECT().WithStore(gomock.Any()).Return(failing)
	failing.EXPECT().AppendBlock(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ChainWriteError{ProductID: "p", Err: errors.New("disk full")})

	svc := product.NewService(ts.store, failing, ts.notifier, adapter.NewClock())
	_, err := svc.RegisterProduct(ctx, product.RegisterProductInput{OwnerID: farmer.ID, Name: "Apples", Category: "fruit"})
	assert.ErrorIs(t, err, domain.ErrChainWrite)

	// No product without a genesis block
	products, total, err := ts.service.ListProducts(ctx, store.ProductQueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, int64(0), total)
}

func TestService_UpdateAttributes(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)
	retailer := ts.createUser(t, "carol", domain.RoleRetailer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	registered, err := ts.service.RegisterProduct(ctx, product.RegisterProductInput{
		OwnerID:    farmer.ID,
		Name:       "Apples",
		Category:   "fruit",
		Attributes: map[string]any{"quantity": 10.0, "unit": "kg"},
	})
	require.NoError(t, err)
	productID := registered.Product.ID

	updated, err := ts.service.UpdateAttributes(ctx, product.UpdateAttributesInput{
		ProductID:    productID,
		ActingUserID: farmer.ID,
		Attributes:   map[string]any{"quantity": 8.0, "harvestDate": "2026-09-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, updated.Attributes["quantity"])
	assert.Equal(t, "2026-09-01", updated.Attributes["harvestDate"])
	assert.Equal(t, "kg", updated.Attributes["unit"])

	tests := []struct {
		name     string
		input    product.UpdateAttributesInput
		expected error
	}{
		{
			name:     "field outside capability set",
			input:    product.UpdateAttributesInput{ProductID: productID, ActingUserID: farmer.ID, Attributes: map[string]any{"price": 3.5}},
			expected: domain.ErrFieldNotEditable,
		},
		{
			name:     "not the owner",
			input:    product.UpdateAttributesInput{ProductID: productID, ActingUserID: retailer.ID, Attributes: map[string]any{"quantity": 1.0}},
			expected: domain.ErrNotOwner,
		},
		{
			name:     "unknown product",
			input:    product.UpdateAttributesInput{ProductID: uuid.NewString(), ActingUserID: farmer.ID, Attributes: map[string]any{"quantity": 1.0}},
			expected: domain.ErrProductNotFound,
		},
		{
			name:     "empty update",
			input:    product.UpdateAttributesInput{ProductID: productID, ActingUserID: farmer.ID},
			expected: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.service.UpdateAttributes(ctx, tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	events, err := ts.service.GetEvents(ctx, productID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, schema.ProductEventTypeAttributesUpdated, events[1].EventType)
}

func TestService_Lookups_NotFound(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	_, err := ts.service.GetProduct(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = ts.service.GetProductByBatchID(ctx, "TOM-2026-XXXXXX")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = ts.service.GetOwners(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = ts.service.GetEvents(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
