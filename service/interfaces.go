package service

import (
	"context"

	"opsmetrics/models"
)

// FeatureRepository defines the interface for feature catalog access
type FeatureRepository interface {
	// Create inserts a new feature into the catalog
	Create(ctx context.Context, feature *models.Feature) error

	// GetByCode retrieves a feature by its unique code
	GetByCode(ctx context.Context, code string) (*models.Feature, error)

	// GetAll returns all features ordered by code
	GetAll(ctx context.Context) ([]*models.Feature, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetAll returns all users ordered by ID
	GetAll(ctx context.Context) ([]*models.User, error)

	// GetActive returns all active users ordered by ID
	GetActive(ctx context.Context) ([]*models.User, error)
}

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	// Create inserts a single transaction
	Create(ctx context.Context, txn *models.Transaction) error

	// CreateBatch bulk-loads transactions
	CreateBatch(ctx context.Context, txns []*models.Transaction) (int64, error)

	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id string) (*models.Transaction, error)

	// GetByUser returns transactions executed by a specific user, most recent first
	GetByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)

	// GetAll returns all transactions ordered by start time then ID
	GetAll(ctx context.Context) ([]*models.Transaction, error)

	// Count returns the total number of transactions
	Count(ctx context.Context) (int64, error)
}

// MonthlyCostRepository defines the interface for monthly cost access
type MonthlyCostRepository interface {
	// Create inserts the cost breakdown for one month
	Create(ctx context.Context, cost *models.MonthlyCost) error

	// GetByMonth retrieves the cost row for a month ("YYYY-MM")
	GetByMonth(ctx context.Context, month string) (*models.MonthlyCost, error)

	// GetAll returns all monthly cost rows in ascending month order
	GetAll(ctx context.Context) ([]*models.MonthlyCost, error)
}

// TargetRepository defines the interface for monthly KPI target access
type TargetRepository interface {
	// Create inserts the KPI targets for one month
	Create(ctx context.Context, target *models.Target) error

	// GetByMonth retrieves the target row for a month ("YYYY-MM")
	GetByMonth(ctx context.Context, month string) (*models.Target, error)

	// GetAll returns all target rows in ascending month order
	GetAll(ctx context.Context) ([]*models.Target, error)
}

// ReportRepository defines the interface for the KPI report queries.
// All operations are pure reads over the current data.
type ReportRepository interface {
	// MonthlyVolume returns the transaction count per month
	MonthlyVolume(ctx context.Context) ([]*models.MonthlyVolumeRow, error)

	// MonthlyAvgCycleHours returns the mean cycle time per month over
	// Completed and Reprocessed transactions
	MonthlyAvgCycleHours(ctx context.Context) ([]*models.MonthlyCycleRow, error)

	// MonthlyErrorRatePct returns the Failed percentage per month
	MonthlyErrorRatePct(ctx context.Context) ([]*models.MonthlyErrorRateRow, error)

	// FeatureUtilization returns per-feature counts and volume shares
	FeatureUtilization(ctx context.Context) ([]*models.FeatureUtilizationRow, error)

	// MonthlyCostPerTxn returns cost-per-transaction per cost month
	MonthlyCostPerTxn(ctx context.Context) ([]*models.MonthlyCostRow, error)

	// MonthlyVsTargets pairs monthly actuals with their targets
	MonthlyVsTargets(ctx context.Context) ([]*models.TargetComparisonRow, error)

	// RegionDepartmentSnapshot returns per region/department performance
	RegionDepartmentSnapshot(ctx context.Context) ([]*models.RegionDepartmentRow, error)
}

// UnitOfWork provides transactional access to all repositories
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// BeginReadOnly starts a repeatable-read, read-only transaction so
	// every query inside it sees the same snapshot
	BeginReadOnly(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// FeatureRepository returns the feature repository for this unit of work
	FeatureRepository() FeatureRepository

	// UserRepository returns the user repository for this unit of work
	UserRepository() UserRepository

	// TransactionRepository returns the transaction repository for this unit of work
	TransactionRepository() TransactionRepository

	// MonthlyCostRepository returns the monthly cost repository for this unit of work
	MonthlyCostRepository() MonthlyCostRepository

	// TargetRepository returns the target repository for this unit of work
	TargetRepository() TargetRepository

	// ReportRepository returns the report repository for this unit of work
	ReportRepository() ReportRepository
}

// UnitOfWorkFactory creates new units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// ReportService defines the interface for report computation. Each
// call runs inside a single read-only snapshot.
type ReportService interface {
	MonthlyVolume(ctx context.Context) ([]*models.MonthlyVolumeRow, error)
	MonthlyAvgCycleHours(ctx context.Context) ([]*models.MonthlyCycleRow, error)
	MonthlyErrorRatePct(ctx context.Context) ([]*models.MonthlyErrorRateRow, error)
	FeatureUtilization(ctx context.Context) ([]*models.FeatureUtilizationRow, error)
	MonthlyCostPerTxn(ctx context.Context) ([]*models.MonthlyCostRow, error)
	MonthlyVsTargets(ctx context.Context) ([]*models.TargetComparisonRow, error)
	RegionDepartmentSnapshot(ctx context.Context) ([]*models.RegionDepartmentRow, error)

	// MonthlyOverview merges volume, cycle time, and error rate into
	// one row per month with at least one transaction
	MonthlyOverview(ctx context.Context) ([]*models.MonthlyOverviewRow, error)
}
