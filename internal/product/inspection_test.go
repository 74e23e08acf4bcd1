package product_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/product"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

func (ts *testService) registerProduct(t *testing.T, owner *schema.User) *schema.Product {
	t.Helper()

	registered, err := ts.service.RegisterProduct(context.Background(), product.RegisterProductInput{
		OwnerID:  owner.ID,
		Name:     "Apples",
		Category: "fruit",
	})
	require.NoError(t, err)
	return registered.Product
}

func TestService_RecordQualityCheck(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)
	inspector := ts.createUser(t, "ivan", domain.RoleDistributor)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1)
	p := ts.registerProduct(t, farmer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, n domain.Notification) {
		assert.Equal(t, farmer.ID, n.UserID)
		assert.Equal(t, domain.NotificationTypeQualityCheck, n.Type)
		require.NotNil(t, n.ProductID)
		assert.Equal(t, p.ID, *n.ProductID)
	})

	check, err := ts.service.RecordQualityCheck(ctx, product.RecordQualityCheckInput{
		ProductID:        p.ID,
		InspectorID:      inspector.ID,
		CheckType:        "  visual ",
		Score:            92.5,
		Notes:            "firm, no bruising",
		CertificationURL: "https://certs.farmtrace.test/123",
	})
	require.NoError(t, err)
	assert.Equal(t, "visual", check.CheckType)
	assert.True(t, check.Verified)

	// The owner inspecting its own batch is not notified
	_, err = ts.service.RecordQualityCheck(ctx, product.RecordQualityCheckInput{
		ProductID:   p.ID,
		InspectorID: farmer.ID,
		CheckType:   "temperature",
		Score:       70,
	})
	require.NoError(t, err)

	checks, err := ts.service.GetQualityChecks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "temperature", checks[0].CheckType)

	events, err := ts.service.GetEvents(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, schema.ProductEventTypeQualityCheck, events[1].EventType)
	assert.Equal(t, inspector.ID, events[1].UserID)

	stats, err := ts.service.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.VerifiedBatches)
	assert.InDelta(t, 81.25, stats.AverageQualityScore, 0.001)
}

func TestService_RecordQualityCheck_CorruptChainIsUnverified(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	p := ts.registerProduct(t, farmer)

	err := ts.db.Model(&schema.OwnershipBlock{}).
		Where("product_id = ? AND block_number = ?", p.ID, 1).
		Update("owner_id", uuid.NewString()).Error
	require.NoError(t, err)

	check, err := ts.service.RecordQualityCheck(ctx, product.RecordQualityCheckInput{
		ProductID:   p.ID,
		InspectorID: farmer.ID,
		CheckType:   "lab",
		Score:       50,
	})
	require.NoError(t, err)
	assert.False(t, check.Verified)
}

func TestService_RecordQualityCheck_Validation(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	p := ts.registerProduct(t, farmer)

	valid := func() product.RecordQualityCheckInput {
		return product.RecordQualityCheckInput{ProductID: p.ID, InspectorID: farmer.ID, CheckType: "visual", Score: 50}
	}

	tests := []struct {
		name     string
		mutate   func(in *product.RecordQualityCheckInput)
		expected error
	}{
		{"missing check type", func(in *product.RecordQualityCheckInput) { in.CheckType = " " }, domain.ErrInvalidInput},
		{"score above range", func(in *product.RecordQualityCheckInput) { in.Score = 100.5 }, domain.ErrInvalidInput},
		{"negative score", func(in *product.RecordQualityCheckInput) { in.Score = -1 }, domain.ErrInvalidInput},
		{"bad certification url", func(in *product.RecordQualityCheckInput) { in.CertificationURL = "ftp://certs" }, domain.ErrInvalidInput},
		{"unknown product", func(in *product.RecordQualityCheckInput) { in.ProductID = uuid.NewString() }, domain.ErrProductNotFound},
		{"unknown inspector", func(in *product.RecordQualityCheckInput) { in.InspectorID = uuid.NewString() }, domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			_, err := ts.service.RecordQualityCheck(ctx, in)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	checks, err := ts.service.GetQualityChecks(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, checks)

	_, err = ts.service.GetQualityChecks(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_Scans(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()
	farmer := ts.createUser(t, "alice", domain.RoleFarmer)
	consumer := ts.createUser(t, "dave", domain.RoleConsumer)

	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	p := ts.registerProduct(t, farmer)

	anonymous, err := ts.service.RecordScan(ctx, product.RecordScanInput{ProductID: p.ID, Location: " Farmers Market "})
	require.NoError(t, err)
	assert.Nil(t, anonymous.UserID)
	assert.Equal(t, "Farmers Market", anonymous.Location)

	_, err = ts.service.RecordScan(ctx, product.RecordScanInput{
		ProductID:   p.ID,
		UserID:      &consumer.ID,
		Coordinates: map[string]any{"lat": 52.37, "lng": 4.89},
	})
	require.NoError(t, err)

	recent, err := ts.service.RecentScans(ctx, store.ScanQueryFilter{})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.NotNil(t, recent[0].Product)
	assert.Equal(t, p.BatchID, recent[0].Product.BatchID)

	mine, err := ts.service.RecentScans(ctx, store.ScanQueryFilter{UserID: &consumer.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.InDelta(t, 52.37, mine[0].Coordinates["lat"], 0.001)

	_, err = ts.service.RecordScan(ctx, product.RecordScanInput{ProductID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	stranger := uuid.NewString()
	_, err = ts.service.RecordScan(ctx, product.RecordScanInput{ProductID: p.ID, UserID: &stranger})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = ts.service.RecordScan(ctx, product.RecordScanInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
