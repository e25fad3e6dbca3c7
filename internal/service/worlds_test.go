package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/model"
	"github.com/avolkhin/worldforge/internal/repository"
)

type fakeWorlds struct {
	worlds map[int64]*model.World
	nextID int64

	countErr error
	takenErr error
}

var _ repository.WorldRepository = (*fakeWorlds)(nil)

func newFakeWorlds() *fakeWorlds {
	return &fakeWorlds{worlds: map[int64]*model.World{}}
}

func (f *fakeWorlds) Create(_ context.Context, w *model.World) error {
	for _, ex := range f.worlds {
		if ex.UserID == w.UserID && ex.Name == w.Name {
			return errs.ErrAlreadyExists
		}
	}
	f.nextID++
	w.ID = f.nextID
	cpy := *w
	f.worlds[w.ID] = &cpy
	return nil
}

func (f *fakeWorlds) ListByOwner(_ context.Context, ownerID int64) ([]model.World, error) {
	var out []model.World
	for id := int64(1); id <= f.nextID; id++ {
		if w, ok := f.worlds[id]; ok && w.UserID == ownerID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorlds) GetOwned(_ context.Context, ownerID, worldID int64) (*model.World, error) {
	w, ok := f.worlds[worldID]
	if !ok || w.UserID != ownerID {
		return nil, errs.ErrNotFound
	}
	c := *w
	return &c, nil
}

func (f *fakeWorlds) DeleteOwned(_ context.Context, ownerID, worldID int64) error {
	w, ok := f.worlds[worldID]
	if !ok || w.UserID != ownerID {
		return errs.ErrNotFound
	}
	delete(f.worlds, worldID)
	return nil
}

func (f *fakeWorlds) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, w := range f.worlds {
		if w.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWorlds) NameTaken(_ context.Context, ownerID int64, name string) (bool, error) {
	if f.takenErr != nil {
		return false, f.takenErr
	}
	for _, w := range f.worlds {
		if w.UserID == ownerID && w.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestWorlds_Create_NameValidation(t *testing.T) {
	t.Parallel()
	s := NewWorldService(newFakeWorlds(), 0)
	ctx := context.Background()

	if _, err := s.Create(ctx, 1, ""); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput on empty name, got %v", err)
	}
	if _, err := s.Create(ctx, 1, strings.Repeat("x", 26)); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput on 26-char name, got %v", err)
	}
	if _, err := s.Create(ctx, 1, strings.Repeat("x", 25)); err != nil {
		t.Fatalf("25-char name should be accepted: %v", err)
	}
}

func TestWorlds_Create_Quota(t *testing.T) {
	t.Parallel()
	s := NewWorldService(newFakeWorlds(), 5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.Create(ctx, 1, fmt.Sprintf("world-%d", i)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if _, err := s.Create(ctx, 1, "one-too-many"); !errors.Is(err, errs.ErrQuotaExceeded) {
		t.Fatalf("want ErrQuotaExceeded on 6th world, got %v", err)
	}

	// another owner is unaffected by the first owner's quota
	if _, err := s.Create(ctx, 2, "fresh start"); err != nil {
		t.Fatalf("other owner should not hit quota: %v", err)
	}
}

func TestWorlds_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	s := NewWorldService(newFakeWorlds(), 5)
	ctx := context.Background()

	if _, err := s.Create(ctx, 1, "Overworld"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, 1, "Overworld"); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on duplicate name, got %v", err)
	}
	// same name for a different owner is fine
	if _, err := s.Create(ctx, 2, "Overworld"); err != nil {
		t.Fatalf("other owner may reuse the name: %v", err)
	}
}

func TestWorlds_List_Idempotent(t *testing.T) {
	t.Parallel()
	s := NewWorldService(newFakeWorlds(), 5)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.Create(ctx, 1, name); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	first, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List(2): %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("len=%d/%d, want 3/3", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("lists differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestWorlds_GetDelete_OwnershipIsolation(t *testing.T) {
	t.Parallel()
	s := NewWorldService(newFakeWorlds(), 5)
	ctx := context.Background()

	w, err := s.Create(ctx, 1, "private")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Get(ctx, 2, w.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("cross-owner get must look like not-found, got %v", err)
	}
	if err := s.Delete(ctx, 2, w.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("cross-owner delete must look like not-found, got %v", err)
	}

	got, err := s.Get(ctx, 1, w.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "private" {
		t.Fatalf("got %+v", got)
	}

	if err := s.Delete(ctx, 1, w.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := s.Get(ctx, 1, w.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("deleted world should be gone, got %v", err)
	}
}

func TestWorlds_Create_RepoErrorsPropagate(t *testing.T) {
	t.Parallel()
	f := newFakeWorlds()
	s := NewWorldService(f, 5)
	ctx := context.Background()

	f.countErr = errors.New("count boom")
	if _, err := s.Create(ctx, 1, "w"); err == nil {
		t.Fatalf("want count error propagated")
	}
	f.countErr = nil

	f.takenErr = errors.New("taken boom")
	if _, err := s.Create(ctx, 1, "w"); err == nil {
		t.Fatalf("want name-check error propagated")
	}
}
