package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-tracker/internal/domain/session"
	idgen "github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
	"github.com/riskibarqy/club-tracker/internal/platform/sessionstore"
)

// AuthService exchanges the shared admin PIN for an opaque session token and
// resolves tokens back to principals for the HTTP middleware.
type AuthService struct {
	pin      string
	sessions *sessionstore.Store
	idgen    idgen.Generator
	logger   *logging.Logger
}

func NewAuthService(pin string, sessions *sessionstore.Store, generator idgen.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		pin:      strings.TrimSpace(pin),
		sessions: sessions,
		idgen:    generator,
		logger:   logger,
	}
}

// Unlock verifies the PIN and issues a new admin session.
func (s *AuthService) Unlock(ctx context.Context, pin string) (session.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Unlock")
	defer span.End()

	pin = strings.TrimSpace(pin)
	if pin == "" {
		return session.Principal{}, fmt.Errorf("%w: pin is required", ErrInvalidInput)
	}
	if s.pin == "" {
		s.logger.WarnContext(ctx, "admin pin not configured, rejecting unlock")
		return session.Principal{}, fmt.Errorf("%w: admin pin is not configured", ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		return session.Principal{}, fmt.Errorf("%w: wrong pin", ErrUnauthorized)
	}

	token, err := s.idgen.NewID()
	if err != nil {
		return session.Principal{}, fmt.Errorf("generate session token: %w", err)
	}

	principal := s.sessions.Issue(token)
	s.logger.InfoContext(ctx, "admin session unlocked", "expires_at", principal.ExpiresAt)

	return principal, nil
}

// Verify resolves a bearer token to its principal.
func (s *AuthService) Verify(ctx context.Context, token string) (session.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.Verify")
	defer span.End()

	principal, ok := s.sessions.Get(strings.TrimSpace(token))
	if !ok {
		return session.Principal{}, fmt.Errorf("%w: unknown or expired session", ErrUnauthorized)
	}

	return principal, nil
}

// Logout revokes the session behind the token. Revoking an unknown token is
// not an error; the end state is the same.
func (s *AuthService) Logout(ctx context.Context, token string) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	s.sessions.Delete(strings.TrimSpace(token))
	s.logger.InfoContext(ctx, "admin session revoked")
}
