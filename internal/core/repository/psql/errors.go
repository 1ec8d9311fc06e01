package psql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// uniqueFields maps unique constraint and index names from schema.sql to the
// field they guard.
var uniqueFields = map[string]string{
	"users_email_key":          "email",
	"users_phone_key":          "phone",
	"admins_email_key":         "email",
	"admins_phone_key":         "phone",
	"admins_aadhar_number_key": "aadhar_number",
	"admins_pan_number_key":    "pan_number",
	"admins_gst_number_key":    "gst_number",
	"admins_fssai_number_key":  "fssai_number",
}

// mapWriteError converts store constraint failures into domain errors and wraps
// everything else with op.
func mapWriteError(entity, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			field, ok := uniqueFields[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ConstraintName
			}
			return &domain.ConstraintViolation{Entity: entity, Field: field}
		case foreignKeyViolation:
			if pgErr.ConstraintName == "hostels_owner_id_fkey" {
				return domain.NewValidationError("owner", "admin does not exist")
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
