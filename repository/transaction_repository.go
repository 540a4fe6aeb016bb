package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"

	"github.com/jackc/pgx/v5"
)

// TransactionRepository implements transaction data access
type TransactionRepository struct {
	q queryable
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{q: db.Pool}
}

// newTransactionRepositoryWithTx creates a new transaction repository with a transaction
func newTransactionRepositoryWithTx(tx queryable) *TransactionRepository {
	return &TransactionRepository{q: tx}
}

// Create inserts a single transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions
		(id, user_id, region, feature_code, start_time, end_time, cycle_hours, status, error_code, amount_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.Exec(ctx, query,
		txn.ID,
		txn.UserID,
		txn.Region,
		txn.FeatureCode,
		txn.StartTime,
		txn.EndTime,
		txn.CycleHours,
		txn.Status,
		txn.ErrorCode,
		txn.AmountUSD,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction %s: %w", txn.ID, err)
	}

	return nil
}

// CreateBatch bulk-loads transactions using the Postgres COPY protocol
func (r *TransactionRepository) CreateBatch(ctx context.Context, txns []*models.Transaction) (int64, error) {
	if len(txns) == 0 {
		return 0, nil
	}

	columns := []string{
		"id", "user_id", "region", "feature_code", "start_time",
		"end_time", "cycle_hours", "status", "error_code", "amount_usd",
	}

	copied, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		columns,
		pgx.CopyFromSlice(len(txns), func(i int) ([]any, error) {
			txn := txns[i]
			return []any{
				txn.ID,
				txn.UserID,
				txn.Region,
				txn.FeatureCode,
				txn.StartTime,
				txn.EndTime,
				txn.CycleHours,
				txn.Status,
				txn.ErrorCode,
				txn.AmountUSD,
			}, nil
		}),
	)
	if err != nil {
		return copied, fmt.Errorf("failed to batch load %d transactions: %w", len(txns), err)
	}

	return copied, nil
}

// GetByID retrieves a transaction by ID, returning nil when no such
// transaction exists
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, region, feature_code, start_time, end_time,
		       cycle_hours, status, error_code, amount_usd
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&txn.ID,
		&txn.UserID,
		&txn.Region,
		&txn.FeatureCode,
		&txn.StartTime,
		&txn.EndTime,
		&txn.CycleHours,
		&txn.Status,
		&txn.ErrorCode,
		&txn.AmountUSD,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID %s: %w", id, err)
	}

	return &txn, nil
}

// GetByUser returns transactions executed by a specific user, most recent first
func (r *TransactionRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, region, feature_code, start_time, end_time,
		       cycle_hours, status, error_code, amount_usd
		FROM transactions
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetAll returns all transactions ordered by start time then ID
func (r *TransactionRepository) GetAll(ctx context.Context) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, region, feature_code, start_time, end_time,
		       cycle_hours, status, error_code, amount_usd
		FROM transactions
		ORDER BY start_time, id
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Count returns the total number of transactions
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	for rows.Next() {
		var txn models.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.UserID,
			&txn.Region,
			&txn.FeatureCode,
			&txn.StartTime,
			&txn.EndTime,
			&txn.CycleHours,
			&txn.Status,
			&txn.ErrorCode,
			&txn.AmountUSD,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
