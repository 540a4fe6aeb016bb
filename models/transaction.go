package models

import (
	"time"
)

// TransactionStatus represents the terminal status of a transaction
type TransactionStatus string

const (
	StatusCompleted   TransactionStatus = "Completed"
	StatusFailed      TransactionStatus = "Failed"
	StatusReprocessed TransactionStatus = "Reprocessed"
)

// Transaction represents a single processed operations transaction
type Transaction struct {
	ID          string            `db:"id"`
	UserID      string            `db:"user_id"`
	Region      string            `db:"region"`
	FeatureCode string            `db:"feature_code"`
	StartTime   time.Time         `db:"start_time"`
	EndTime     *time.Time        `db:"end_time"`
	CycleHours  *float64          `db:"cycle_hours"`
	Status      TransactionStatus `db:"status"`
	ErrorCode   *string           `db:"error_code"`
	AmountUSD   float64           `db:"amount_usd"`
}
