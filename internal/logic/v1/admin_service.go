package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/credential"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// AdminService implements admin management
type AdminService struct {
	repo    domain.AdminRepository
	hostels domain.HostelRepository
	hasher  credential.Hasher
}

// NewAdminService creates a new admin service
func NewAdminService(repo domain.AdminRepository, hostels domain.HostelRepository, hasher credential.Hasher) *AdminService {
	return &AdminService{repo: repo, hostels: hostels, hasher: hasher}
}

// ListAdmins returns every admin
func (s *AdminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// GetAdmin retrieves an admin by ID
func (s *AdminService) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.get", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("admin.id", id),
	))
	defer span.End()

	return s.repo.GetAdmin(ctx, id)
}

// CreateAdmin registers an admin; role defaults to superadmin.
func (s *AdminService) CreateAdmin(ctx context.Context, in domain.AdminPatch) (*domain.Admin, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	admin := domain.NewAdmin()
	in.Apply(admin)

	if err := checkRecord(admin.Validate(), in.Password); err != nil {
		return nil, err
	}

	hash, err := hashSecret(s.hasher, "", in.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	admin.PasswordHash = hash

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	middleware.RecordWrite("admin", "create")
	span.SetAttributes(
		attribute.Int64("admin.id", admin.ID),
		attribute.String("admin.role", string(admin.Role)),
	)
	return admin, nil
}

// UpdateAdmin applies in to the stored admin
func (s *AdminService) UpdateAdmin(ctx context.Context, id int64, in domain.AdminPatch) (*domain.Admin, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("admin.id", id),
		attribute.Bool("admin.password_changed", in.Password != nil),
	))
	defer span.End()

	admin, err := s.repo.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(admin)

	if err := checkRecord(admin.Validate(), in.Password); err != nil {
		return nil, err
	}

	admin.PasswordHash, err = hashSecret(s.hasher, admin.PasswordHash, in.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := s.repo.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	middleware.RecordWrite("admin", "update")
	return admin, nil
}

// DeleteAdmin removes an admin together with every hostel it owns and returns
// how many hostels were removed.
func (s *AdminService) DeleteAdmin(ctx context.Context, id int64) (int64, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("admin.id", id),
	))
	defer span.End()

	removed, err := s.repo.DeleteAdmin(ctx, id)
	if err != nil {
		return 0, err
	}

	middleware.RecordWrite("admin", "delete")
	span.SetAttributes(attribute.Int64("hostels.cascaded", removed))
	return removed, nil
}

// ListAdminHostels returns the hostels owned by admin id
func (s *AdminService) ListAdminHostels(ctx context.Context, id int64) ([]domain.Hostel, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.hostels", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("admin.id", id),
	))
	defer span.End()

	if _, err := s.repo.GetAdmin(ctx, id); err != nil {
		return nil, err
	}
	return s.hostels.ListHostelsByOwner(ctx, id)
}
