package project

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Project
}

// NewMemoryRepository constructs an in-memory repository for tests and
// database-less development runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Project)}
}

func (r *memoryRepository) Insert(_ context.Context, p Project) error {
	if _, err := uuid.Parse(p.ID); err != nil {
		return apperr.Validation("invalid project id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[p.ID] = p
	return nil
}

func (r *memoryRepository) Update(_ context.Context, id, ownerID, content string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("invalid project id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.storage[id]
	if !ok || p.OwnerID != ownerID {
		return apperr.NotFound("Project not found")
	}
	p.Content = content
	p.UpdatedAt = time.Now().UTC()
	r.storage[id] = p
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id, ownerID string) (Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Project{}, apperr.Validation("invalid project id")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.storage[id]
	if !ok || p.OwnerID != ownerID {
		return Project{}, apperr.NotFound("Project not found")
	}
	return p, nil
}
