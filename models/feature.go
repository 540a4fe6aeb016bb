package models

// Feature represents an entry in the feature catalog
type Feature struct {
	Code           string  `db:"code"`
	Name           string  `db:"name"`
	Module         string  `db:"module"`
	TargetSLAHours float64 `db:"target_sla_hours"`
}
