package pregnancy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestProfileRepoMemory_CRUD(t *testing.T) {
	repo := NewProfileRepoMemory()
	ctx := context.Background()

	email := "amara@example.com"
	p := &Profile{FirstName: "Amara", LastName: "Okafor", Email: &email}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected ID to be assigned")
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("unexpected timestamps %v / %v", p.CreatedAt, p.UpdatedAt)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FirstName != "Amara" || *got.Email != email {
		t.Errorf("unexpected profile %+v", got)
	}

	got.LastName = "Eze"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetByID(ctx, p.ID)
	if again.LastName != "Eze" {
		t.Errorf("expected Eze, got %s", again.LastName)
	}
	if !again.CreatedAt.Equal(p.CreatedAt) {
		t.Error("update must keep created_at")
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileRepoMemory_NotFound(t *testing.T) {
	repo := NewProfileRepoMemory()
	ctx := context.Background()

	if err := repo.Update(ctx, &Profile{ID: uuid.New()}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("update: expected ErrProfileNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("delete: expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileRepoMemory_ReturnsCopies(t *testing.T) {
	repo := NewProfileRepoMemory()
	ctx := context.Background()

	lmp := date(2026, 1, 4)
	p := &Profile{FirstName: "Amara", LastName: "Okafor", LastMenstrualPeriod: &lmp}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	p.FirstName = "changed"
	*p.LastMenstrualPeriod = date(2020, 1, 1)

	got, _ := repo.GetByID(ctx, p.ID)
	if got.FirstName != "Amara" {
		t.Errorf("stored profile changed through caller pointer: %s", got.FirstName)
	}
	if !got.LastMenstrualPeriod.Equal(date(2026, 1, 4)) {
		t.Errorf("stored LMP changed through caller pointer: %v", got.LastMenstrualPeriod)
	}
}

func TestProfileRepoMemory_ListNewestFirst(t *testing.T) {
	repo := NewProfileRepoMemory()
	ctx := context.Background()

	var ids []uuid.UUID
	for _, name := range []string{"a", "b", "c", "d"} {
		p := &Profile{FirstName: name, LastName: "x"}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, p.ID)
	}
	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, total, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(items) != 2 || items[0].FirstName != "d" || items[1].FirstName != "c" {
		t.Errorf("unexpected first page %v", names(items))
	}

	items, _, _ = repo.List(ctx, 2, 2)
	if len(items) != 1 || items[0].FirstName != "a" {
		t.Errorf("unexpected second page %v", names(items))
	}

	items, _, _ = repo.List(ctx, 2, 10)
	if len(items) != 0 {
		t.Errorf("expected empty page past the end, got %v", names(items))
	}
}

func TestProfileRepoMemory_ConcurrentCreate(t *testing.T) {
	repo := NewProfileRepoMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &Profile{FirstName: "a", LastName: "b"})
		}()
	}
	wg.Wait()

	_, total, _ := repo.List(ctx, 100, 0)
	if total != 50 {
		t.Errorf("expected 50 profiles, got %d", total)
	}
}

func names(items []*Profile) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.FirstName)
	}
	return out
}
