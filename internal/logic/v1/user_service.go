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

// UserService implements user management and the self-profile operations
type UserService struct {
	repo            domain.UserRepository
	hasher          credential.Hasher
	profileSelfOnly bool
}

// NewUserService creates a new user service. With profileSelfOnly set, a caller
// may only read and change its own profile.
func NewUserService(repo domain.UserRepository, hasher credential.Hasher, profileSelfOnly bool) *UserService {
	return &UserService{
		repo:            repo,
		hasher:          hasher,
		profileSelfOnly: profileSelfOnly,
	}
}

// ListUsers returns every user
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	span.SetAttributes(attribute.Int("user.count", len(users)))
	return users, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.get", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
	))
	defer span.End()

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		span.SetAttributes(attribute.Bool("user.found", false))
		return nil, err
	}
	span.SetAttributes(attribute.Bool("user.found", true))
	return user, nil
}

// CreateUser registers a user. The plaintext password is hashed exactly once.
func (s *UserService) CreateUser(ctx context.Context, in domain.UserPatch) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	user := &domain.User{}
	in.Apply(user)

	if err := checkRecord(user.Validate(), in.Password); err != nil {
		span.SetAttributes(attribute.Bool("user.created", false))
		return nil, err
	}

	hash, err := hashSecret(s.hasher, "", in.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.repo.CreateUser(ctx, user); err != nil {
		span.SetAttributes(attribute.Bool("user.created", false))
		return nil, err
	}

	middleware.RecordWrite("user", "create")
	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("user.created", true),
	)
	span.AddEvent("user.created")
	return user, nil
}

// UpdateUser applies in to the stored user. The stored hash is only replaced
// when in carries a new password.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in domain.UserPatch) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
		attribute.Bool("user.password_changed", in.Password != nil),
	))
	defer span.End()

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(user)

	if err := checkRecord(user.Validate(), in.Password); err != nil {
		return nil, err
	}

	user.PasswordHash, err = hashSecret(s.hasher, user.PasswordHash, in.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	middleware.RecordWrite("user", "update")
	return user, nil
}

// DeleteUser removes a user by ID
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := middleware.StartSpan(ctx, "user.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
	))
	defer span.End()

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	middleware.RecordWrite("user", "delete")
	return nil
}

// GetProfile returns the profile of user id on behalf of callerID
func (s *UserService) GetProfile(ctx context.Context, callerID, id int64) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.profile", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
		attribute.Int64("caller.id", callerID),
	))
	defer span.End()

	if err := s.authorizeProfile(callerID, id); err != nil {
		return nil, err
	}
	return s.repo.GetUser(ctx, id)
}

// UpdateProfile changes the profile fields of user id on behalf of callerID.
// The profile representation carries no credentials, so the stored hash never
// changes here.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, id int64, in domain.UserPatch) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "user.update_profile", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
		attribute.Int64("caller.id", callerID),
	))
	defer span.End()

	if err := s.authorizeProfile(callerID, id); err != nil {
		return nil, err
	}

	user, err := s.UpdateUser(ctx, id, in.WithoutCredentials())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("profile.updated", true))
	return user, nil
}

func (s *UserService) authorizeProfile(callerID, id int64) error {
	if s.profileSelfOnly && callerID != id {
		return fmt.Errorf("caller %d on profile %d: %w", callerID, id, domain.ErrForbidden)
	}
	return nil
}
