package models

// User represents an operations user who executes transactions
type User struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Department string `db:"department"`
	Role       string `db:"role"`
	Region     string `db:"region"`
	Active     bool   `db:"active"`
}
