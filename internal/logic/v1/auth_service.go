package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/credential"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/token"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// LoginResult is the issued access token for a user
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	UserID      int64
}

// AuthService exchanges user credentials for access tokens
type AuthService struct {
	users   domain.UserRepository
	hasher  credential.Hasher
	tokens  *token.Manager
	revoked token.RevocationStore
}

// NewAuthService creates a new auth service
func NewAuthService(users domain.UserRepository, hasher credential.Hasher, tokens *token.Manager, revoked token.RevocationStore) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoked: revoked,
	}
}

// Login verifies email and password and issues an access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			span.SetAttributes(attribute.Bool("auth.success", false))
			return nil, domain.ErrInvalidCredentials
		}
		span.RecordError(err)
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, domain.ErrInvalidCredentials
	}

	raw, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token for user %d: %w", user.ID, err)
	}

	span.SetAttributes(
		attribute.Bool("auth.success", true),
		attribute.Int64("user.id", user.ID),
	)
	return &LoginResult{AccessToken: raw, ExpiresIn: s.tokens.TTL(), UserID: user.ID}, nil
}

// Logout revokes the token described by claims until it expires
func (s *AuthService) Logout(ctx context.Context, claims *token.Claims) error {
	ctx, span := middleware.StartSpan(ctx, "auth.logout", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", claims.UserID),
	))
	defer span.End()

	if claims.ExpiresAt == nil {
		return domain.ErrUnauthorized
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
