package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements user data access
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, department, role, region, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Department,
		user.Role,
		user.Region,
		user.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}

	return nil
}

// GetByID retrieves a user by ID, returning nil when no such user exists
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, department, role, region, active
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Department,
		&user.Role,
		&user.Region,
		&user.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return &user, nil
}

// GetAll returns all users ordered by ID
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.getUsers(ctx, `
		SELECT id, name, department, role, region, active
		FROM users
		ORDER BY id
	`)
}

// GetActive returns all active users ordered by ID
func (r *UserRepository) GetActive(ctx context.Context) ([]*models.User, error) {
	return r.getUsers(ctx, `
		SELECT id, name, department, role, region, active
		FROM users
		WHERE active
		ORDER BY id
	`)
}

func (r *UserRepository) getUsers(ctx context.Context, query string) ([]*models.User, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Department,
			&user.Role,
			&user.Region,
			&user.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
