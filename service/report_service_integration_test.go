package service_test

import (
	"context"
	"testing"
	"time"

	"opsmetrics/models"
	"opsmetrics/repository"
	"opsmetrics/repository/testutil"
	"opsmetrics/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	featureRepo := repository.NewFeatureRepository(testDB.DB)
	userRepo := repository.NewUserRepository(testDB.DB)
	txnRepo := repository.NewTransactionRepository(testDB.DB)
	costRepo := repository.NewMonthlyCostRepository(testDB.DB)
	targetRepo := repository.NewTargetRepository(testDB.DB)

	require.NoError(t, featureRepo.Create(ctx, testutil.CreateTestFeatureInModule("F-PAY", "payments")))
	require.NoError(t, featureRepo.Create(ctx, testutil.CreateTestFeatureInModule("F-REPORT", "reporting")))
	require.NoError(t, userRepo.Create(ctx, testutil.CreateTestUserIn("u-01", "EMEA", "Operations")))
	require.NoError(t, userRepo.Create(ctx, testutil.CreateTestUserIn("u-02", "AMER", "Finance")))

	jan := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

	_, err := txnRepo.CreateBatch(ctx, []*models.Transaction{
		testutil.CreateTestTransactionWithCycle("u-01", "F-PAY", jan, 2.0),
		testutil.CreateTestTransactionWithCycle("u-02", "F-PAY", jan, 4.0),
		testutil.CreateTestTransactionWithStatus("u-01", "F-REPORT", jan, models.StatusFailed),
		testutil.CreateTestTransactionWithCycle("u-02", "F-PAY", feb, 3.0),
	})
	require.NoError(t, err)

	require.NoError(t, costRepo.Create(ctx, &models.MonthlyCost{Month: "2024-01", InfraCost: 200, SupportCost: 50, DevCost: 40, OtherCost: 10}))
	require.NoError(t, targetRepo.Create(ctx, testutil.CreateTestTarget("2024-01")))

	svc := service.NewReportService(repository.NewUnitOfWorkFactory(testDB.DB))

	t.Run("monthly volume", func(t *testing.T) {
		rows, err := svc.MonthlyVolume(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-01", rows[0].Month)
		assert.Equal(t, int64(3), rows[0].TxnCount)
		assert.Equal(t, "2024-02", rows[1].Month)
		assert.Equal(t, int64(1), rows[1].TxnCount)
	})

	t.Run("feature utilization shares sum to 100", func(t *testing.T) {
		rows, err := svc.FeatureUtilization(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		var sum float64
		for _, row := range rows {
			sum += row.SharePct
		}
		assert.InDelta(t, 100.0, sum, 1e-6)
		assert.Equal(t, "F-PAY", rows[0].FeatureCode, "highest volume first")
	})

	t.Run("monthly vs targets only covers fully present months", func(t *testing.T) {
		rows, err := svc.MonthlyVsTargets(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "2024-01", row.Month)
		assert.InDelta(t, 3.0, row.ActualAvgCycleHours, 1e-9)
		assert.InDelta(t, 100.0/3.0, row.ActualErrorRatePct, 1e-6)
		require.NotNil(t, row.ActualCostPerTxn)
		assert.InDelta(t, 100.0, *row.ActualCostPerTxn, 1e-6)
	})

	t.Run("monthly overview merges the three monthly reports", func(t *testing.T) {
		rows, err := svc.MonthlyOverview(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "2024-01", rows[0].Month)
		assert.Equal(t, int64(3), rows[0].TxnCount)
		require.NotNil(t, rows[0].AvgCycleHours)
		assert.InDelta(t, 3.0, *rows[0].AvgCycleHours, 1e-9)
		assert.InDelta(t, 100.0/3.0, rows[0].ErrorRatePct, 1e-6)

		assert.Equal(t, "2024-02", rows[1].Month)
		assert.Equal(t, int64(1), rows[1].TxnCount)
		require.NotNil(t, rows[1].AvgCycleHours)
		assert.InDelta(t, 3.0, *rows[1].AvgCycleHours, 1e-9)
		assert.InDelta(t, 0.0, rows[1].ErrorRatePct, 1e-9)
	})

	t.Run("region department snapshot", func(t *testing.T) {
		rows, err := svc.RegionDepartmentSnapshot(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "AMER", rows[0].Region)
		assert.Equal(t, int64(2), rows[0].TxnCount)
		assert.Equal(t, "EMEA", rows[1].Region)
		assert.Equal(t, int64(2), rows[1].TxnCount)
	})
}
