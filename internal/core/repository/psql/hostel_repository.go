package psql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	database "github.com/praneeth-grandhi/Hostel-Management/internal/core"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

const hostelColumns = `id, name, address, city, state, country, pincode,
	contact_phone, contact_email, hostel_type, total_rooms, floors,
	business_hours, description, amenities, is_active, owner_id,
	created_at, updated_at`

// HostelRepository implements domain.HostelRepository using PostgreSQL
type HostelRepository struct {
	db database.DB
}

// NewHostelRepository creates a new PostgreSQL hostel repository
func NewHostelRepository(db database.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

func scanHostel(row pgx.Row) (*domain.Hostel, error) {
	var h domain.Hostel
	err := row.Scan(
		&h.ID, &h.Name, &h.Address, &h.City, &h.State, &h.Country, &h.Pincode,
		&h.ContactPhone, &h.ContactEmail, &h.Type, &h.TotalRooms, &h.Floors,
		&h.BusinessHours, &h.Description, &h.Amenities, &h.IsActive, &h.OwnerID,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HostelRepository) list(ctx context.Context, query string, args ...any) ([]domain.Hostel, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hostels: %w", err)
	}
	defer rows.Close()

	hostels := []domain.Hostel{}
	for rows.Next() {
		h, err := scanHostel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hostel: %w", err)
		}
		hostels = append(hostels, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hostels: %w", err)
	}
	return hostels, nil
}

// ListHostels returns every hostel ordered by id
func (r *HostelRepository) ListHostels(ctx context.Context) ([]domain.Hostel, error) {
	return r.list(ctx, `SELECT `+hostelColumns+` FROM hostels ORDER BY id`)
}

// ListHostelsByOwner returns the hostels owned by one admin
func (r *HostelRepository) ListHostelsByOwner(ctx context.Context, ownerID int64) ([]domain.Hostel, error) {
	return r.list(ctx, `SELECT `+hostelColumns+` FROM hostels WHERE owner_id = $1 ORDER BY id`, ownerID)
}

// GetHostel retrieves a hostel by ID
func (r *HostelRepository) GetHostel(ctx context.Context, id int64) (*domain.Hostel, error) {
	h, err := scanHostel(r.db.QueryRow(ctx, `SELECT `+hostelColumns+` FROM hostels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get hostel %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query hostel %d: %w", id, err)
	}
	return h, nil
}

// CreateHostel inserts h after checking its owner under a shared lock
func (r *HostelRepository) CreateHostel(ctx context.Context, h *domain.Hostel) error {
	return database.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkOwner(ctx, tx, h); err != nil {
			return err
		}

		query := `INSERT INTO hostels (name, address, city, state, country, pincode,
			contact_phone, contact_email, hostel_type, total_rooms, floors,
			business_hours, description, amenities, is_active, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			h.Name, h.Address, h.City, h.State, h.Country, h.Pincode,
			h.ContactPhone, h.ContactEmail, string(h.Type), h.TotalRooms, h.Floors,
			h.BusinessHours, h.Description, h.Amenities, h.IsActive, h.OwnerID,
		).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return mapWriteError("hostel", "insert hostel", err)
		}
		return nil
	})
}

// UpdateHostel overwrites every stored column of h and refreshes updated_at
func (r *HostelRepository) UpdateHostel(ctx context.Context, h *domain.Hostel) error {
	return database.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkOwner(ctx, tx, h); err != nil {
			return err
		}

		query := `UPDATE hostels SET name = $1, address = $2, city = $3, state = $4,
			country = $5, pincode = $6, contact_phone = $7, contact_email = $8,
			hostel_type = $9, total_rooms = $10, floors = $11, business_hours = $12,
			description = $13, amenities = $14, is_active = $15, owner_id = $16,
			updated_at = now()
			WHERE id = $17
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			h.Name, h.Address, h.City, h.State, h.Country, h.Pincode,
			h.ContactPhone, h.ContactEmail, string(h.Type), h.TotalRooms, h.Floors,
			h.BusinessHours, h.Description, h.Amenities, h.IsActive, h.OwnerID, h.ID,
		).Scan(&h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("update hostel %d: %w", h.ID, domain.ErrNotFound)
			}
			return mapWriteError("hostel", "update hostel", err)
		}
		return nil
	})
}

// DeleteHostel removes a hostel by ID
func (r *HostelRepository) DeleteHostel(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hostel %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete hostel %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// checkOwner reads the owner's role with FOR SHARE, which blocks a concurrent
// demotion or delete of that admin until this transaction ends.
func checkOwner(ctx context.Context, tx pgx.Tx, h *domain.Hostel) error {
	var role domain.Role
	err := tx.QueryRow(ctx, `SELECT role FROM admins WHERE id = $1 FOR SHARE`, h.OwnerID).Scan(&role)
	found := true
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lock owner %d: %w", h.OwnerID, err)
		}
		found = false
	}
	return h.CheckOwner(role, found)
}
