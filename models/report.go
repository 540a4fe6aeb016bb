package models

// MonthlyVolumeRow represents the transaction volume for one month
type MonthlyVolumeRow struct {
	Month    string
	TxnCount int64
}

// MonthlyCycleRow represents the average cycle time for one month,
// computed over Completed and Reprocessed transactions only
type MonthlyCycleRow struct {
	Month         string
	AvgCycleHours float64
}

// MonthlyErrorRateRow represents the failure rate for one month.
// ErrorRatePct is on a 0-100 scale.
type MonthlyErrorRateRow struct {
	Month        string
	ErrorRatePct float64
}

// FeatureUtilizationRow represents one feature's share of total volume.
// SharePct is on a 0-100 scale; shares across all rows sum to 100.
type FeatureUtilizationRow struct {
	FeatureCode string
	FeatureName string
	Module      string
	TxnCount    int64
	SharePct    float64
}

// MonthlyCostRow represents cost-per-transaction for one month.
// CostPerTxn is nil when the month had no transactions.
type MonthlyCostRow struct {
	Month      string
	TotalCost  float64
	TxnCount   int64
	CostPerTxn *float64
}

// TargetComparisonRow pairs actual monthly KPIs with their targets.
// Only months present in all three actual reports and the targets
// table produce a row. ActualCostPerTxn is nil for a month whose cost
// row exists but whose transaction count is zero.
type TargetComparisonRow struct {
	Month               string
	ActualAvgCycleHours float64
	TargetAvgCycleHours float64
	ActualErrorRatePct  float64
	TargetErrorRatePct  float64
	ActualCostPerTxn    *float64
	TargetCostPerTxn    float64
}

// RegionDepartmentRow represents a performance snapshot for one
// (region, department) cell, keyed by the executing user's region and
// department. AvgCycleHours is nil when the cell has no Completed or
// Reprocessed transactions.
type RegionDepartmentRow struct {
	Region        string
	Department    string
	TxnCount      int64
	AvgCycleHours *float64
	ErrorRatePct  float64
}

// MonthlyOverviewRow merges volume, cycle time, and error rate for one
// month into a single dashboard row. AvgCycleHours is nil when the
// month has no Completed or Reprocessed transactions.
type MonthlyOverviewRow struct {
	Month         string
	TxnCount      int64
	AvgCycleHours *float64
	ErrorRatePct  float64
}
