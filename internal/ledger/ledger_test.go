package ledger_test

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
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

func openTestDB(t *testing.T) (*gorm.DB, store.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := store.Open(store.DriverSQLite, dsn, false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() {
		_ = store.Close(db)
	})

	return db, store.NewPGStore(db)
}

func newTestLedger(st store.Store) ledger.Ledger {
	return ledger.NewLedger(st, ledger.NewHasher(adapter.NewJSON(), adapter.NewJCS()), adapter.NewClock(), nil)
}

func appendOwner(t *testing.T, l ledger.Ledger, productID, ownerID, addedBy string, transferType domain.TransferType) *schema.OwnershipBlock {
	t.Helper()

	block, err := l.AppendBlock(context.Background(), ledger.AppendBlockInput{
		ProductID:     productID,
		OwnerID:       ownerID,
		Role:          domain.RoleDistributor,
		Username:      ownerID,
		Name:          "Owner " + ownerID,
		AddedBy:       addedBy,
		TransferType:  transferType,
		CanEditFields: domain.EditableFields(domain.RoleDistributor),
	})
	require.NoError(t, err)
	return block
}

func TestLedger_AppendBlock_GenesisAndLinks(t *testing.T) {
	_, st := openTestDB(t)
	l := newTestLedger(st)
	ctx := context.Background()

	genesis := appendOwner(t, l, "prod-1", "farmer-1", "farmer-1", domain.TransferTypeInitial)
	assert.Equal(t, int64(1), genesis.BlockNumber)
	assert.Nil(t, genesis.PreviousOwnerHash)

	expected, err := ledger.ComputeOwnershipHash("prod-1", "farmer-1", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, genesis.OwnershipHash)

	second := appendOwner(t, l, "prod-1", "dist-1", "farmer-1", domain.TransferTypeDistribution)
	third := appendOwner(t, l, "prod-1", "retail-1", "dist-1", domain.TransferTypeSale)

	assert.Equal(t, int64(2), second.BlockNumber)
	assert.Equal(t, int64(3), third.BlockNumber)
	require.NotNil(t, second.PreviousOwnerHash)
	require.NotNil(t, third.PreviousOwnerHash)
	assert.Equal(t, genesis.OwnershipHash, *second.PreviousOwnerHash)
	assert.Equal(t, second.OwnershipHash, *third.PreviousOwnerHash)

	// A second product starts its own chain
	other := appendOwner(t, l, "prod-2", "farmer-1", "farmer-1", domain.TransferTypeInitial)
	assert.Equal(t, int64(1), other.BlockNumber)

	chain, err := l.GetChain(ctx, "prod-1")
	require.NoError(t, err)
	require.Len(t, chain, 3)
	for i, block := range chain {
		assert.Equal(t, int64(i+1), block.BlockNumber)
	}
	assert.Equal(t, []string(domain.EditableFields(domain.RoleDistributor)), []string(chain[1].CanEditFields))

	result, err := l.VerifyChain(ctx, "prod-1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestLedger_AppendBlock_InvalidInput(t *testing.T) {
	_, st := openTestDB(t)
	l := newTestLedger(st)

	_, err := l.AppendBlock(context.Background(), ledger.AppendBlockInput{ProductID: "prod-1", TransferType: domain.TransferTypeInitial})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = l.AppendBlock(context.Background(), ledger.AppendBlockInput{ProductID: "prod-1", OwnerID: "u", TransferType: "gift"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_GetChain_Empty(t *testing.T) {
	_, st := openTestDB(t)
	l := newTestLedger(st)

	chain, err := l.GetChain(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, chain)
	assert.Empty(t, chain)

	result, err := l.VerifyChain(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, domain.ViolationMissingGenesis, result.Errors[0].Reason)
}

func TestLedger_VerifyChain_DetectsTampering(t *testing.T) {
	db, st := openTestDB(t)
	l := newTestLedger(st)
	ctx := context.Background()

	appendOwner(t, l, "prod-1", "farmer-1", "farmer-1", domain.TransferTypeInitial)
	appendOwner(t, l, "prod-1", "dist-1", "farmer-1", domain.TransferTypeTransfer)
	appendOwner(t, l, "prod-1", "retail-1", "dist-1", domain.TransferTypeSale)

	require.NoError(t, db.Model(&schema.OwnershipBlock{}).
		Where("product_id = ? AND block_number = ?", "prod-1", 2).
		Update("owner_id", "mallory").Error)

	result, err := l.VerifyChain(ctx, "prod-1")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []domain.ChainViolation{
		{BlockNumber: 2, Reason: domain.ViolationHashMismatch},
		{BlockNumber: 3, Reason: domain.ViolationBrokenLink},
	}, result.Errors)

	// Verification never repairs
	again, err := l.VerifyChain(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestLedger_AppendBlock_LostRaceIsChainWriteError(t *testing.T) {
	_, st := openTestDB(t)
	l := newTestLedger(st)
	ctx := context.Background()

	genesis := appendOwner(t, l, "prod-1", "farmer-1", "farmer-1", domain.TransferTypeInitial)

	// Another writer already took block 2 between our read and our insert
	hash, err := ledger.ComputeOwnershipHash("prod-1", "dist-1", 2, &genesis.OwnershipHash)
	require.NoError(t, err)
	prev := genesis.OwnershipHash
	raced := &schema.OwnershipBlock{
		ProductID:         "prod-1",
		BlockNumber:       2,
		OwnerID:           "dist-1",
		Role:              domain.RoleDistributor,
		Username:          "dist-1",
		Name:              "Dist",
		AddedBy:           "farmer-1",
		TransferType:      domain.TransferTypeTransfer,
		PreviousOwnerHash: &prev,
		OwnershipHash:     hash,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().GetLatestBlock(gomock.Any(), "prod-1").Return(genesis, nil)
	mockStore.EXPECT().InsertBlock(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, block *schema.OwnershipBlock) error {
			require.NoError(t, st.InsertBlock(ctx, raced))
			return st.InsertBlock(ctx, block)
		})

	_, err = l.WithStore(mockStore).AppendBlock(ctx, ledger.AppendBlockInput{
		ProductID:    "prod-1",
		OwnerID:      "retail-1",
		AddedBy:      "farmer-1",
		TransferType: domain.TransferTypeSale,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChainWrite)

	var writeErr *domain.ChainWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, int64(2), writeErr.BlockNumber)

	chain, err := l.GetChain(ctx, "prod-1")
	require.NoError(t, err)
	assert.Len(t, chain, 2)
}

func TestLedger_AppendBlock_StoreReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().GetLatestBlock(gomock.Any(), "prod-1").Return(nil, errors.New("connection reset"))

	l := newTestLedger(mockStore)
	_, err := l.AppendBlock(context.Background(), ledger.AppendBlockInput{
		ProductID:    "prod-1",
		OwnerID:      "farmer-1",
		TransferType: domain.TransferTypeInitial,
	})
	assert.ErrorIs(t, err, domain.ErrChainWrite)
}
