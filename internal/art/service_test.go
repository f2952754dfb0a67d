package art

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

func pixels(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal pixels: %v", err)
	}
	return raw
}

func TestUpsertCreateThenUpdate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, isNew, err := svc.Upsert(ctx, UpsertInput{
		OwnerID: "u1", Name: "n", Pixels: pixels(t, []string{"#fff"}), Width: 10, Height: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !isNew || created.ID == "" {
		t.Fatalf("expected fresh canvas, isNew=%v id=%q", isNew, created.ID)
	}

	_, isNew, err = svc.Upsert(ctx, UpsertInput{
		ID: created.ID, OwnerID: "u1", Name: "n2", Pixels: pixels(t, []string{"#000"}), Width: 10, Height: 10,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if isNew {
		t.Fatal("update reported creation")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "n2" {
		t.Fatalf("expected updated name n2, got %q", got.Name)
	}
	if got.ID != created.ID {
		t.Fatalf("id changed on update: %s != %s", got.ID, created.ID)
	}
}

func TestUpsertUnknownIDReportsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, _, err := svc.Upsert(context.Background(), UpsertInput{
		ID: uuid.NewString(), OwnerID: "u1", Name: "n", Pixels: pixels(t, []int{1}), Width: 1, Height: 1,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpsertValidatesFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := []UpsertInput{
		{Name: "n", Pixels: pixels(t, []int{1}), Width: 1, Height: 1},
		{OwnerID: "u1", Pixels: pixels(t, []int{1}), Width: 1, Height: 1},
		{OwnerID: "u1", Name: "n", Width: 1, Height: 1},
		{OwnerID: "u1", Name: "n", Pixels: pixels(t, []int{1}), Width: 0, Height: 1},
	}
	for i, in := range cases {
		if _, _, err := svc.Upsert(ctx, in); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestListByOwnerReturnsExactlyOwnedSet(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	want := map[string]bool{}
	for i := 0; i < 3; i++ {
		a, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Name: "n", Pixels: pixels(t, []int{i}), Width: 1, Height: 1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		want[a.ID] = true
	}
	if _, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u2", Name: "other", Pixels: pixels(t, []int{9}), Width: 1, Height: 1}); err != nil {
		t.Fatalf("create foreign: %v", err)
	}

	arts, err := svc.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(arts) != len(want) {
		t.Fatalf("expected %d canvases, got %d", len(want), len(arts))
	}
	for _, a := range arts {
		if !want[a.ID] {
			t.Fatalf("unexpected canvas %s in list", a.ID)
		}
	}
}

func TestDeleteRemovesAndSecondDeleteFails(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	a, _, err := svc.Upsert(ctx, UpsertInput{OwnerID: "u1", Name: "n", Pixels: pixels(t, []int{1}), Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, a.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
