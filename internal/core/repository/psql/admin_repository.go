package psql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	database "github.com/praneeth-grandhi/Hostel-Management/internal/core"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

const adminColumns = `id, first_name, last_name, email, phone, secondary_phone,
	display_name, bio, password_hash, role,
	country_code, address, city, state, country, pincode,
	aadhar_number, pan_number, gst_number, fssai_number`

// AdminRepository implements domain.AdminRepository using PostgreSQL
type AdminRepository struct {
	db database.DB
}

// NewAdminRepository creates a new PostgreSQL admin repository
func NewAdminRepository(db database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.SecondaryPhone,
		&a.DisplayName, &a.Bio, &a.PasswordHash, &a.Role,
		&a.CountryCode, &a.Address, &a.City, &a.State, &a.Country, &a.Pincode,
		&a.AadharNumber, &a.PANNumber, &a.GSTNumber, &a.FSSAINumber,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAdmins returns every admin ordered by id
func (r *AdminRepository) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query admins: %w", err)
	}
	defer rows.Close()

	admins := []domain.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admins: %w", err)
	}
	return admins, nil
}

// GetAdmin retrieves an admin by ID
func (r *AdminRepository) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get admin %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query admin %d: %w", id, err)
	}
	return a, nil
}

// CreateAdmin inserts a and sets its ID
func (r *AdminRepository) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (first_name, last_name, email, phone, secondary_phone,
		display_name, bio, password_hash, role,
		country_code, address, city, state, country, pincode,
		aadhar_number, pan_number, gst_number, fssai_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.SecondaryPhone,
		a.DisplayName, a.Bio, a.PasswordHash, string(a.Role),
		a.CountryCode, a.Address, a.City, a.State, a.Country, a.Pincode,
		a.AadharNumber, a.PANNumber, a.GSTNumber, a.FSSAINumber,
	).Scan(&a.ID)
	if err != nil {
		return mapWriteError("admin", "insert admin", err)
	}
	return nil
}

// UpdateAdmin overwrites every stored column of a. The row is locked first so a
// concurrent hostel write cannot pick this admin as owner while it is demoted.
func (r *AdminRepository) UpdateAdmin(ctx context.Context, a *domain.Admin) error {
	return database.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var current domain.Role
		err := tx.QueryRow(ctx, `SELECT role FROM admins WHERE id = $1 FOR UPDATE`, a.ID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("update admin %d: %w", a.ID, domain.ErrNotFound)
			}
			return fmt.Errorf("lock admin %d: %w", a.ID, err)
		}

		if current == domain.RoleSuperAdmin && a.Role != domain.RoleSuperAdmin {
			owned, err := countOwnedHostels(ctx, tx, a.ID)
			if err != nil {
				return err
			}
			if owned > 0 {
				return domain.NewValidationError("role",
					fmt.Sprintf("admin still owns %d hostel(s); only a superadmin may own hostels", owned))
			}
		}

		query := `UPDATE admins SET first_name = $1, last_name = $2, email = $3, phone = $4,
			secondary_phone = $5, display_name = $6, bio = $7, password_hash = $8, role = $9,
			country_code = $10, address = $11, city = $12, state = $13, country = $14, pincode = $15,
			aadhar_number = $16, pan_number = $17, gst_number = $18, fssai_number = $19
			WHERE id = $20`

		_, err = tx.Exec(ctx, query,
			a.FirstName, a.LastName, a.Email, a.Phone, a.SecondaryPhone,
			a.DisplayName, a.Bio, a.PasswordHash, string(a.Role),
			a.CountryCode, a.Address, a.City, a.State, a.Country, a.Pincode,
			a.AadharNumber, a.PANNumber, a.GSTNumber, a.FSSAINumber, a.ID,
		)
		if err != nil {
			return mapWriteError("admin", "update admin", err)
		}
		return nil
	})
}

// DeleteAdmin removes an admin; the foreign key cascades to its hostels.
func (r *AdminRepository) DeleteAdmin(ctx context.Context, id int64) (int64, error) {
	var removed int64
	err := database.InTx(ctx, r.db, func(tx pgx.Tx) error {
		owned, err := countOwnedHostels(ctx, tx, id)
		if err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete admin %d: %w", id, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("delete admin %d: %w", id, domain.ErrNotFound)
		}
		removed = owned
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func countOwnedHostels(ctx context.Context, tx pgx.Tx, adminID int64) (int64, error) {
	var n int64
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM hostels WHERE owner_id = $1`, adminID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count hostels of admin %d: %w", adminID, err)
	}
	return n, nil
}
