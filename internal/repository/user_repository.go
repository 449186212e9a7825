package repository

import (
	"database/sql"
	"fmt"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in its ID
func (r *UserRepository) Create(user *models.User) error {
	result, err := r.db.Exec(`
		INSERT INTO users (username, password_hash, fullname, carrier, home_address, office_address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Fullname,
		user.Carrier, user.HomeAddress, user.OfficeAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by username, nil when absent
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getOne("SELECT id, username, password_hash, fullname, carrier, home_address, office_address, created_at FROM users WHERE username = ?", username)
}

// GetByID retrieves a user by ID, nil when absent
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	return r.getOne("SELECT id, username, password_hash, fullname, carrier, home_address, office_address, created_at FROM users WHERE id = ?", id)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Fullname,
		&u.Carrier, &u.HomeAddress, &u.OfficeAddress, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
