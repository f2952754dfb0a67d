package art

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Service implements the create-or-update lifecycle for pixel-art canvases.
type Service struct {
	repo Repository
}

// NewService builds an art service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertInput captures a save request. A zero ID requests creation; a set ID
// requests an owner-scoped in-place update.
type UpsertInput struct {
	ID      string
	OwnerID string
	Name    string
	Pixels  json.RawMessage
	Width   int
	Height  int
}

func (in UpsertInput) validate() error {
	if in.OwnerID == "" {
		return apperr.Validation("userId is required")
	}
	if in.Name == "" {
		return apperr.Validation("artName is required")
	}
	if len(in.Pixels) == 0 {
		return apperr.Validation("pixels is required")
	}
	if in.Width <= 0 || in.Height <= 0 {
		return apperr.Validation("width and height must be positive")
	}
	return nil
}

// Upsert creates a canvas when no id is supplied and replaces the fields of an
// existing owned canvas otherwise. The returned flag reports creation.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (Art, bool, error) {
	if err := input.validate(); err != nil {
		return Art{}, false, err
	}

	a := Art{
		ID:      input.ID,
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Pixels:  input.Pixels,
		Width:   input.Width,
		Height:  input.Height,
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
		a.CreatedAt = time.Now().UTC()
		a.UpdatedAt = a.CreatedAt
		if err := s.repo.Insert(ctx, a); err != nil {
			return Art{}, false, err
		}
		return a, true, nil
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Art{}, false, err
	}
	return a, false, nil
}

// Get fetches a canvas by id.
func (s *Service) Get(ctx context.Context, id string) (Art, error) {
	if id == "" {
		return Art{}, apperr.Validation("artId is required")
	}
	return s.repo.Get(ctx, id)
}

// ListByOwner returns every canvas owned by the given user.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Art, error) {
	if ownerID == "" {
		return nil, apperr.Validation("userId is required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes a canvas by id. Unknown ids report not-found.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.Validation("artId is required")
	}
	return s.repo.Delete(ctx, id)
}
