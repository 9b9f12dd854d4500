package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/isamardev/graphify/internal/store"
)

type fakeRepo struct {
	contacts []Contact
	quotes   []Quote
}

func (f *fakeRepo) CreateContact(_ context.Context, contact Contact) (Contact, error) {
	f.contacts = append(f.contacts, contact)
	return contact, nil
}

func (f *fakeRepo) ListContacts(_ context.Context, _, _ int64) ([]Contact, error) {
	return append([]Contact(nil), f.contacts...), nil
}

func (f *fakeRepo) CountContacts(_ context.Context) (int64, error) {
	return int64(len(f.contacts)), nil
}

func (f *fakeRepo) GetContactByID(_ context.Context, id string) (Contact, error) {
	for _, c := range f.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return Contact{}, store.ErrNotFound
}

func (f *fakeRepo) CreateQuote(_ context.Context, quote Quote) (Quote, error) {
	f.quotes = append(f.quotes, quote)
	return quote, nil
}

func (f *fakeRepo) ListQuotes(_ context.Context, _, _ int64) ([]Quote, error) {
	return append([]Quote(nil), f.quotes...), nil
}

func (f *fakeRepo) CountQuotes(_ context.Context) (int64, error) {
	return int64(len(f.quotes)), nil
}

func (f *fakeRepo) GetQuoteByID(_ context.Context, id string) (Quote, error) {
	for _, q := range f.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quote{}, store.ErrNotFound
}

func newTestService(repo Repository) *Service {
	resolve := func(path string) string { return "https://cdn.example.com/" + path }
	return NewService(repo, time.UTC, nil, resolve)
}

func TestCreateContactTrimsAndStamps(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	contact, err := svc.CreateContact(context.Background(), CreateContactRequest{
		Name:  "  Asha Mehta ",
		Email: " asha@example.com ",
	})
	if err != nil {
		t.Fatalf("CreateContact error: %v", err)
	}
	if contact.Name != "Asha Mehta" || contact.Email != "asha@example.com" {
		t.Fatalf("fields not trimmed: %+v", contact)
	}
	if contact.ID == "" {
		t.Fatalf("expected generated id")
	}
	if contact.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestCreateQuoteExtractsReferenceImage(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"array first truthy", []interface{}{"", "storage/a.jpg", "storage/b.jpg"}, "storage/a.jpg"},
		{"csv first", "storage/x.jpg, storage/y.jpg", "storage/x.jpg"},
		{"object url", map[string]interface{}{"url": "storage/z.jpg"}, "storage/z.jpg"},
		{"absent", nil, ""},
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := newTestService(repo)
		quote, err := svc.CreateQuote(context.Background(), CreateQuoteRequest{
			Name:           "Ravi",
			Email:          "ravi@example.com",
			ReferenceImage: tc.in,
		})
		if err != nil {
			t.Fatalf("%s: CreateQuote error: %v", tc.name, err)
		}
		if quote.ReferenceImage != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, quote.ReferenceImage)
		}
	}
}

func TestGetContactByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	_, err := svc.GetContactByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListQuotesResolvesImagePaths(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	if _, err := svc.CreateQuote(context.Background(), CreateQuoteRequest{
		Name:           "Ravi",
		Email:          "ravi@example.com",
		ReferenceImage: "storage/wall.jpg",
	}); err != nil {
		t.Fatalf("CreateQuote error: %v", err)
	}

	items, total, err := svc.ListQuotes(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("ListQuotes error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one quote, got %d (total %d)", len(items), total)
	}
	if items[0].ReferenceImage != "https://cdn.example.com/storage/wall.jpg" {
		t.Fatalf("image not resolved: %q", items[0].ReferenceImage)
	}
}
