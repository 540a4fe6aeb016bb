package models

// Target represents the KPI targets set for one calendar month.
// Month is keyed as "YYYY-MM".
type Target struct {
	Month               string  `db:"month"`
	TargetAvgCycleHours float64 `db:"target_avg_cycle_hours"`
	TargetErrorRatePct  float64 `db:"target_error_rate_pct"`
	TargetCostPerTxn    float64 `db:"target_cost_per_txn"`
}
