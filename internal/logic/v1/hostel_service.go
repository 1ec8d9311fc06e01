package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// HostelService implements hostel management
type HostelService struct {
	repo domain.HostelRepository
}

// NewHostelService creates a new hostel service
func NewHostelService(repo domain.HostelRepository) *HostelService {
	return &HostelService{repo: repo}
}

// ListHostels returns every hostel
func (s *HostelService) ListHostels(ctx context.Context) ([]domain.Hostel, error) {
	ctx, span := middleware.StartSpan(ctx, "hostel.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	hostels, err := s.repo.ListHostels(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list hostels: %w", err)
	}
	return hostels, nil
}

// GetHostel retrieves a hostel by ID
func (s *HostelService) GetHostel(ctx context.Context, id int64) (*domain.Hostel, error) {
	ctx, span := middleware.StartSpan(ctx, "hostel.get", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("hostel.id", id),
	))
	defer span.End()

	return s.repo.GetHostel(ctx, id)
}

// CreateHostel validates and stores a new hostel. The owner is checked by the
// repository inside the insert transaction.
func (s *HostelService) CreateHostel(ctx context.Context, in domain.HostelPatch) (*domain.Hostel, error) {
	ctx, span := middleware.StartSpan(ctx, "hostel.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	hostel := domain.NewHostel()
	in.Apply(hostel)

	if err := hostel.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateHostel(ctx, hostel); err != nil {
		return nil, err
	}

	middleware.RecordWrite("hostel", "create")
	span.SetAttributes(
		attribute.Int64("hostel.id", hostel.ID),
		attribute.Int64("hostel.owner", hostel.OwnerID),
	)
	return hostel, nil
}

// UpdateHostel applies in to the stored hostel
func (s *HostelService) UpdateHostel(ctx context.Context, id int64, in domain.HostelPatch) (*domain.Hostel, error) {
	ctx, span := middleware.StartSpan(ctx, "hostel.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("hostel.id", id),
	))
	defer span.End()

	hostel, err := s.repo.GetHostel(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(hostel)

	if err := hostel.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateHostel(ctx, hostel); err != nil {
		return nil, err
	}

	middleware.RecordWrite("hostel", "update")
	return hostel, nil
}

// DeleteHostel removes a hostel by ID
func (s *HostelService) DeleteHostel(ctx context.Context, id int64) error {
	ctx, span := middleware.StartSpan(ctx, "hostel.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("hostel.id", id),
	))
	defer span.End()

	if err := s.repo.DeleteHostel(ctx, id); err != nil {
		return err
	}

	middleware.RecordWrite("hostel", "delete")
	return nil
}
