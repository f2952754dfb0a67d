package art

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Art
}

// NewMemoryRepository constructs an in-memory repository for tests and
// database-less development runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Art)}
}

func (r *memoryRepository) Insert(_ context.Context, a Art) error {
	if _, err := uuid.Parse(a.ID); err != nil {
		return apperr.Validation("invalid art id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[a.ID] = a
	return nil
}

func (r *memoryRepository) Update(_ context.Context, a Art) error {
	if _, err := uuid.Parse(a.ID); err != nil {
		return apperr.Validation("invalid art id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.storage[a.ID]
	if !ok || existing.OwnerID != a.OwnerID {
		return apperr.NotFound("Pixel art not found")
	}
	existing.Name = a.Name
	existing.Pixels = a.Pixels
	existing.Width = a.Width
	existing.Height = a.Height
	existing.UpdatedAt = time.Now().UTC()
	r.storage[a.ID] = existing
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Art, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Art{}, apperr.Validation("invalid art id")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.storage[id]
	if !ok {
		return Art{}, apperr.NotFound("Pixel art not found")
	}
	return a, nil
}

func (r *memoryRepository) ListByOwner(_ context.Context, ownerID string) ([]Art, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var arts []Art
	for _, a := range r.storage {
		if a.OwnerID == ownerID {
			arts = append(arts, a)
		}
	}
	sort.Slice(arts, func(i, j int) bool { return arts[i].CreatedAt.Before(arts[j].CreatedAt) })
	return arts, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("invalid art id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return apperr.NotFound("Pixel art not found")
	}
	delete(r.storage, id)
	return nil
}
