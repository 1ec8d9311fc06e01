package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

// Authenticator resolves a raw bearer token into the caller's claims.
type Authenticator struct {
	manager *Manager
	revoked RevocationStore
}

// NewAuthenticator combines signature checks with the revocation list.
func NewAuthenticator(manager *Manager, revoked RevocationStore) *Authenticator {
	return &Authenticator{manager: manager, revoked: revoked}
}

// Authenticate returns domain.ErrUnauthorized for any token that is malformed,
// expired, signed with another key or revoked. Store failures are returned as-is.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (*Claims, error) {
	if raw == "" {
		return nil, domain.ErrUnauthorized
	}

	claims, err := a.manager.Parse(raw)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
		}
		return nil, err
	}

	revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
	}
	return claims, nil
}
