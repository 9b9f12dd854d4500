package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/isamardev/graphify/internal/content"
)

func TestCreateThenGetByID(t *testing.T) {
	s := New("")

	created, err := s.Create("services", content.Raw{"name": "Mural painting", "price": "from $250"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	id := created.ID("id")
	if id == "" {
		t.Fatalf("expected assigned id, got empty")
	}

	got, err := s.GetByID("services", id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Str("name") != "Mural painting" || got.Str("price") != "from $250" {
		t.Fatalf("unexpected record: %#v", got)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := New("")

	created, err := s.Create("teams", content.Raw{"name": "Maya", "role": "Lead Artist"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := s.Update("teams", created.ID("id"), content.Raw{"role": "Art Director", "id": "hijack"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Str("role") != "Art Director" {
		t.Fatalf("role = %q", updated.Str("role"))
	}
	if updated.Str("name") != "Maya" {
		t.Fatalf("untouched field lost: %#v", updated)
	}
	if updated.ID("id") != created.ID("id") {
		t.Fatalf("id must not be reassignable")
	}
}

func TestDeleteThenGetByID(t *testing.T) {
	s := New("")

	created, err := s.Create("blogs", content.Raw{"title": "Choosing Wall Art"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := s.Delete("blogs", created.ID("id")); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.GetByID("blogs", created.ID("id")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete("blogs", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New("")

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Create("categories", content.Raw{"name": name}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	all, err := s.GetAll("categories")
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(all) != 3 || all[0].Str("name") != "first" || all[2].Str("name") != "third" {
		t.Fatalf("unexpected order: %#v", all)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "store.db")

	s := New(file)
	created, err := s.Create("authors", content.Raw{"name": "John Doe"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	reopened := New(file)
	got, err := reopened.GetByID("authors", created.ID("id"))
	if err != nil {
		t.Fatalf("GetByID after reopen: %v", err)
	}
	if got.Str("name") != "John Doe" {
		t.Fatalf("unexpected record after reopen: %#v", got)
	}
}

func TestSeedSampleDataIsIdempotentish(t *testing.T) {
	s := New("")
	if err := s.SeedSampleData(); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if err := s.SeedSampleData(); err != nil {
		t.Fatalf("second seed error: %v", err)
	}
	categories, err := s.GetAll("categories")
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 seeded categories, got %d", len(categories))
	}
}
