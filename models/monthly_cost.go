package models

// MonthlyCost represents the cost breakdown for one calendar month.
// Month is keyed as "YYYY-MM".
type MonthlyCost struct {
	Month       string  `db:"month"`
	InfraCost   float64 `db:"infra_cost"`
	SupportCost float64 `db:"support_cost"`
	DevCost     float64 `db:"dev_cost"`
	OtherCost   float64 `db:"other_cost"`
}

// TotalCost returns the sum of all cost components for the month
func (c *MonthlyCost) TotalCost() float64 {
	return c.InfraCost + c.SupportCost + c.DevCost + c.OtherCost
}
