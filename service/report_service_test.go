package service

import (
	"context"
	"errors"
	"testing"

	"opsmetrics/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedReportService() (ReportService, *MockUnitOfWorkFactory, *MockUnitOfWork, *MockReportRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockReportRepo := new(MockReportRepository)

	mockUoW.SetRepositories(
		new(MockFeatureRepository),
		new(MockUserRepository),
		new(MockTransactionRepository),
		new(MockMonthlyCostRepository),
		new(MockTargetRepository),
		mockReportRepo,
	)

	return NewReportService(mockFactory), mockFactory, mockUoW, mockReportRepo
}

func TestReportService_MonthlyVolume(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	expected := []*models.MonthlyVolumeRow{
		{Month: "2024-01", TxnCount: 42},
		{Month: "2024-02", TxnCount: 17},
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockReportRepo.On("MonthlyVolume", ctx).Return(expected, nil)

	rows, err := svc.MonthlyVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, rows)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockReportRepo.AssertExpectations(t)
}

func TestReportService_MonthlyVolume_BeginError(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(errors.New("connection refused"))

	rows, err := svc.MonthlyVolume(ctx)
	assert.Error(t, err)
	assert.Nil(t, rows)

	mockReportRepo.AssertNotCalled(t, "MonthlyVolume", ctx)
	mockUoW.AssertNotCalled(t, "Rollback")
}

func TestReportService_MonthlyVolume_QueryError(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockReportRepo.On("MonthlyVolume", ctx).Return(nil, errors.New("query failed"))

	rows, err := svc.MonthlyVolume(ctx)
	assert.Error(t, err)
	assert.Nil(t, rows)

	// The unit of work must still be released on failure
	mockUoW.AssertCalled(t, "Rollback")
}

func TestReportService_MonthlyVsTargets(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	costPerTxn := 12.5
	expected := []*models.TargetComparisonRow{
		{
			Month:               "2024-03",
			ActualAvgCycleHours: 3.2,
			TargetAvgCycleHours: 3.0,
			ActualErrorRatePct:  4.5,
			TargetErrorRatePct:  5.0,
			ActualCostPerTxn:    &costPerTxn,
			TargetCostPerTxn:    11.0,
		},
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockReportRepo.On("MonthlyVsTargets", ctx).Return(expected, nil)

	rows, err := svc.MonthlyVsTargets(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestReportService_MonthlyOverview(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	volume := []*models.MonthlyVolumeRow{
		{Month: "2024-01", TxnCount: 3},
		{Month: "2024-02", TxnCount: 2},
	}
	cycles := []*models.MonthlyCycleRow{
		{Month: "2024-01", AvgCycleHours: 2.5},
		// 2024-02 had only Failed transactions, so no cycle row
	}
	errorRates := []*models.MonthlyErrorRateRow{
		{Month: "2024-01", ErrorRatePct: 33.5},
		{Month: "2024-02", ErrorRatePct: 100.0},
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockReportRepo.On("MonthlyVolume", ctx).Return(volume, nil)
	mockReportRepo.On("MonthlyAvgCycleHours", ctx).Return(cycles, nil)
	mockReportRepo.On("MonthlyErrorRatePct", ctx).Return(errorRates, nil)

	rows, err := svc.MonthlyOverview(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, int64(3), rows[0].TxnCount)
	require.NotNil(t, rows[0].AvgCycleHours)
	assert.Equal(t, 2.5, *rows[0].AvgCycleHours)
	assert.Equal(t, 33.5, rows[0].ErrorRatePct)

	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, int64(2), rows[1].TxnCount)
	assert.Nil(t, rows[1].AvgCycleHours)
	assert.Equal(t, 100.0, rows[1].ErrorRatePct)

	mockReportRepo.AssertExpectations(t)
}

func TestReportService_MonthlyOverview_PartialFailure(t *testing.T) {
	ctx := context.Background()
	svc, mockFactory, mockUoW, mockReportRepo := newMockedReportService()

	volume := []*models.MonthlyVolumeRow{{Month: "2024-01", TxnCount: 3}}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("BeginReadOnly", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockReportRepo.On("MonthlyVolume", ctx).Return(volume, nil)
	mockReportRepo.On("MonthlyAvgCycleHours", ctx).Return(nil, errors.New("query failed"))

	rows, err := svc.MonthlyOverview(ctx)
	assert.Error(t, err)
	assert.Nil(t, rows)

	mockReportRepo.AssertNotCalled(t, "MonthlyErrorRatePct", ctx)
}
