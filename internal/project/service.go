package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Service implements the create-or-update lifecycle for projects.
type Service struct {
	repo Repository
}

// NewService builds a project service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertInput captures a create-or-update request. A zero ID requests
// creation; a set ID requests an owner-scoped in-place update.
type UpsertInput struct {
	ID      string
	OwnerID string
	Content string
}

// Upsert creates a project when no id is supplied and replaces the content of
// an existing owned project otherwise. The returned flag reports creation.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (Project, bool, error) {
	if input.OwnerID == "" {
		return Project{}, false, apperr.Validation("owner is required")
	}
	if input.Content == "" {
		return Project{}, false, apperr.Validation("content is required")
	}

	if input.ID == "" {
		p := Project{
			ID:        uuid.New().String(),
			OwnerID:   input.OwnerID,
			Content:   input.Content,
			CreatedAt: time.Now().UTC(),
		}
		p.UpdatedAt = p.CreatedAt
		if err := s.repo.Insert(ctx, p); err != nil {
			return Project{}, false, err
		}
		return p, true, nil
	}

	if err := s.repo.Update(ctx, input.ID, input.OwnerID, input.Content); err != nil {
		return Project{}, false, err
	}
	return Project{ID: input.ID, OwnerID: input.OwnerID, Content: input.Content}, false, nil
}

// Get retrieves an owned project.
func (s *Service) Get(ctx context.Context, id, ownerID string) (Project, error) {
	if ownerID == "" {
		return Project{}, apperr.Validation("owner is required")
	}
	return s.repo.Get(ctx, id, ownerID)
}
