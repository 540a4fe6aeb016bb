package service

import (
	"context"

	"opsmetrics/models"

	"github.com/stretchr/testify/mock"
)

// MockFeatureRepository is a mock implementation of FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) Create(ctx context.Context, feature *models.Feature) error {
	args := m.Called(ctx, feature)
	return args.Error(0)
}

func (m *MockFeatureRepository) GetByCode(ctx context.Context, code string) (*models.Feature, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feature), args.Error(1)
}

func (m *MockFeatureRepository) GetAll(ctx context.Context) ([]*models.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Feature), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetActive(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) CreateBatch(ctx context.Context, txns []*models.Transaction) (int64, error) {
	args := m.Called(ctx, txns)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetAll(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMonthlyCostRepository is a mock implementation of MonthlyCostRepository
type MockMonthlyCostRepository struct {
	mock.Mock
}

func (m *MockMonthlyCostRepository) Create(ctx context.Context, cost *models.MonthlyCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockMonthlyCostRepository) GetByMonth(ctx context.Context, month string) (*models.MonthlyCost, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlyCost), args.Error(1)
}

func (m *MockMonthlyCostRepository) GetAll(ctx context.Context) ([]*models.MonthlyCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyCost), args.Error(1)
}

// MockTargetRepository is a mock implementation of TargetRepository
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) Create(ctx context.Context, target *models.Target) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockTargetRepository) GetByMonth(ctx context.Context, month string) (*models.Target, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Target), args.Error(1)
}

func (m *MockTargetRepository) GetAll(ctx context.Context) ([]*models.Target, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Target), args.Error(1)
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) MonthlyVolume(ctx context.Context) ([]*models.MonthlyVolumeRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyVolumeRow), args.Error(1)
}

func (m *MockReportRepository) MonthlyAvgCycleHours(ctx context.Context) ([]*models.MonthlyCycleRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyCycleRow), args.Error(1)
}

func (m *MockReportRepository) MonthlyErrorRatePct(ctx context.Context) ([]*models.MonthlyErrorRateRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyErrorRateRow), args.Error(1)
}

func (m *MockReportRepository) FeatureUtilization(ctx context.Context) ([]*models.FeatureUtilizationRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeatureUtilizationRow), args.Error(1)
}

func (m *MockReportRepository) MonthlyCostPerTxn(ctx context.Context) ([]*models.MonthlyCostRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyCostRow), args.Error(1)
}

func (m *MockReportRepository) MonthlyVsTargets(ctx context.Context) ([]*models.TargetComparisonRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TargetComparisonRow), args.Error(1)
}

func (m *MockReportRepository) RegionDepartmentSnapshot(ctx context.Context) ([]*models.RegionDepartmentRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RegionDepartmentRow), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	featureRepo     FeatureRepository
	userRepo        UserRepository
	transactionRepo TransactionRepository
	monthlyCostRepo MonthlyCostRepository
	targetRepo      TargetRepository
	reportRepo      ReportRepository
}

// SetRepositories wires the mock repositories this unit of work hands out
func (m *MockUnitOfWork) SetRepositories(
	featureRepo FeatureRepository,
	userRepo UserRepository,
	transactionRepo TransactionRepository,
	monthlyCostRepo MonthlyCostRepository,
	targetRepo TargetRepository,
	reportRepo ReportRepository,
) {
	m.featureRepo = featureRepo
	m.userRepo = userRepo
	m.transactionRepo = transactionRepo
	m.monthlyCostRepo = monthlyCostRepo
	m.targetRepo = targetRepo
	m.reportRepo = reportRepo
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) BeginReadOnly(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) FeatureRepository() FeatureRepository {
	return m.featureRepo
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) TransactionRepository() TransactionRepository {
	return m.transactionRepo
}

func (m *MockUnitOfWork) MonthlyCostRepository() MonthlyCostRepository {
	return m.monthlyCostRepo
}

func (m *MockUnitOfWork) TargetRepository() TargetRepository {
	return m.targetRepo
}

func (m *MockUnitOfWork) ReportRepository() ReportRepository {
	return m.reportRepo
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
