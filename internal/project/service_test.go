package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

func TestUpsertCreatesWithFreshID(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, created, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Content: "a"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Fatal("expected creation")
	}

	second, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Content: "b"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %s", first.ID)
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Content: "v1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, created, err := svc.Upsert(ctx, UpsertInput{ID: p.ID, OwnerID: "u1", Content: "v2"}); err != nil || created {
			t.Fatalf("update %d: created=%v err=%v", i, created, err)
		}
	}

	got, err := svc.Get(ctx, p.ID, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != p.ID || got.Content != "v2" {
		t.Fatalf("expected id %s content v2, got %s %q", p.ID, got.ID, got.Content)
	}
}

func TestUpsertUnknownIDReportsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, _, err := svc.Upsert(context.Background(), UpsertInput{ID: uuid.NewString(), OwnerID: "u1", Content: "x"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetIsOwnerScoped(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Content: "secret"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, p.ID, "u2"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for foreign owner, got %v", err)
	}
	if _, _, err := svc.Upsert(ctx, UpsertInput{ID: p.ID, OwnerID: "u2", Content: "x"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found updating foreign project, got %v", err)
	}
}

func TestUpsertRejectsMalformedID(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, _, err := svc.Upsert(context.Background(), UpsertInput{ID: "not-a-uuid", OwnerID: "u1", Content: "x"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
