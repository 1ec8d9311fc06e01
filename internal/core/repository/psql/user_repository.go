package psql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	database "github.com/praneeth-grandhi/Hostel-Management/internal/core"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

const userColumns = `id, first_name, last_name, email, phone, password_hash,
	country_code, address, city, state, country, pincode`

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	db database.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash,
		&u.CountryCode, &u.Address, &u.City, &u.State, &u.Country, &u.Pincode,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every user ordered by id
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get user %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get user by email: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return u, nil
}

// CreateUser inserts u and sets its ID
func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, phone, password_hash,
		country_code, address, city, state, country, pincode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash,
		u.CountryCode, u.Address, u.City, u.State, u.Country, u.Pincode,
	).Scan(&u.ID)
	if err != nil {
		return mapWriteError("user", "insert user", err)
	}
	return nil
}

// UpdateUser overwrites every stored column of u
func (r *UserRepository) UpdateUser(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, email = $3, phone = $4,
		password_hash = $5, country_code = $6, address = $7, city = $8, state = $9,
		country = $10, pincode = $11
		WHERE id = $12`

	result, err := r.db.Exec(ctx, query,
		u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash,
		u.CountryCode, u.Address, u.City, u.State, u.Country, u.Pincode, u.ID,
	)
	if err != nil {
		return mapWriteError("user", "update user", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update user %d: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteUser removes a user by ID
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
