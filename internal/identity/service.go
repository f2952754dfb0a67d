package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Service resolves signin requests: a known email is authenticated, an
// unseen email is registered on the spot. There is no separate signup step.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SignIn authenticates an existing account or provisions a new one.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (User, Outcome, error) {
	if creds.Email == "" {
		return User{}, 0, apperr.Validation("email is required")
	}
	if creds.Password == "" {
		return User{}, 0, apperr.Validation("password is required")
	}

	user, err := s.repo.FindByEmail(ctx, creds.Email)
	if err == nil {
		if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)) != nil {
			return User{}, 0, apperr.Unauthorized("Password did not match")
		}
		return user, OutcomeAuthenticated, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return User{}, 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, 0, err
	}

	user = User{
		ID:           uuid.New().String(),
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// The store's unique email index decides races between concurrent
	// first-time signins; the loser gets a conflict, not a second identity.
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, 0, err
	}

	return user, OutcomeRegistered, nil
}
