package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the service.UnitOfWork interface
type unitOfWork struct {
	db              *database.DB
	tx              pgx.Tx
	ctx             context.Context
	featureRepo     service.FeatureRepository
	userRepo        service.UserRepository
	transactionRepo service.TransactionRepository
	monthlyCostRepo service.MonthlyCostRepository
	targetRepo      service.TargetRepository
	reportRepo      service.ReportRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

type unitOfWorkFactory struct {
	db *database.DB
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	return u.begin(ctx, pgx.TxOptions{})
}

// BeginReadOnly starts a repeatable-read, read-only transaction. The
// report queries run inside one of these so multi-query reports see a
// single snapshot of the store.
func (u *unitOfWork) BeginReadOnly(ctx context.Context) error {
	return u.begin(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
}

func (u *unitOfWork) begin(ctx context.Context, opts pgx.TxOptions) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.featureRepo = newFeatureRepositoryWithTx(tx)
	u.userRepo = newUserRepositoryWithTx(tx)
	u.transactionRepo = newTransactionRepositoryWithTx(tx)
	u.monthlyCostRepo = newMonthlyCostRepositoryWithTx(tx)
	u.targetRepo = newTargetRepositoryWithTx(tx)
	u.reportRepo = newReportRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// FeatureRepository returns the feature repository for this unit of work
func (u *unitOfWork) FeatureRepository() service.FeatureRepository {
	if u.featureRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.featureRepo
}

// UserRepository returns the user repository for this unit of work
func (u *unitOfWork) UserRepository() service.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

// TransactionRepository returns the transaction repository for this unit of work
func (u *unitOfWork) TransactionRepository() service.TransactionRepository {
	if u.transactionRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionRepo
}

// MonthlyCostRepository returns the monthly cost repository for this unit of work
func (u *unitOfWork) MonthlyCostRepository() service.MonthlyCostRepository {
	if u.monthlyCostRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.monthlyCostRepo
}

// TargetRepository returns the target repository for this unit of work
func (u *unitOfWork) TargetRepository() service.TargetRepository {
	if u.targetRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.targetRepo
}

// ReportRepository returns the report repository for this unit of work
func (u *unitOfWork) ReportRepository() service.ReportRepository {
	if u.reportRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.reportRepo
}
