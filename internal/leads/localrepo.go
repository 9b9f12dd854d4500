package leads

import (
	"context"
	"encoding/json"

	"github.com/isamardev/graphify/internal/store"
)

// LocalRepository keeps leads in the demo store so the intake forms work
// without Mongo. Listing reverses insertion order to match the
// newest-first contract of the Mongo repository.
type LocalRepository struct {
	store *store.Store
}

func NewLocalRepository(s *store.Store) *LocalRepository {
	return &LocalRepository{store: s}
}

func (r *LocalRepository) CreateContact(_ context.Context, contact Contact) (Contact, error) {
	stored, err := r.create("contacts", contact)
	if err != nil {
		return Contact{}, err
	}
	var out Contact
	if err := remarshal(stored, &out); err != nil {
		return Contact{}, err
	}
	return out, nil
}

func (r *LocalRepository) ListContacts(_ context.Context, limit, offset int64) ([]Contact, error) {
	records, err := r.page("contacts", limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]Contact, 0, len(records))
	for _, record := range records {
		var contact Contact
		if err := remarshal(record, &contact); err != nil {
			return nil, err
		}
		items = append(items, contact)
	}
	return items, nil
}

func (r *LocalRepository) CountContacts(_ context.Context) (int64, error) {
	return r.count("contacts")
}

func (r *LocalRepository) GetContactByID(_ context.Context, id string) (Contact, error) {
	record, err := r.store.GetByID("contacts", id)
	if err != nil {
		return Contact{}, err
	}
	var contact Contact
	if err := remarshal(record, &contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (r *LocalRepository) CreateQuote(_ context.Context, quote Quote) (Quote, error) {
	stored, err := r.create("quotes", quote)
	if err != nil {
		return Quote{}, err
	}
	var out Quote
	if err := remarshal(stored, &out); err != nil {
		return Quote{}, err
	}
	return out, nil
}

func (r *LocalRepository) ListQuotes(_ context.Context, limit, offset int64) ([]Quote, error) {
	records, err := r.page("quotes", limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]Quote, 0, len(records))
	for _, record := range records {
		var quote Quote
		if err := remarshal(record, &quote); err != nil {
			return nil, err
		}
		items = append(items, quote)
	}
	return items, nil
}

func (r *LocalRepository) CountQuotes(_ context.Context) (int64, error) {
	return r.count("quotes")
}

func (r *LocalRepository) GetQuoteByID(_ context.Context, id string) (Quote, error) {
	record, err := r.store.GetByID("quotes", id)
	if err != nil {
		return Quote{}, err
	}
	var quote Quote
	if err := remarshal(record, &quote); err != nil {
		return Quote{}, err
	}
	return quote, nil
}

func (r *LocalRepository) create(entity string, lead interface{}) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := remarshal(lead, &record); err != nil {
		return nil, err
	}
	delete(record, "id")
	return r.store.Create(entity, record)
}

func (r *LocalRepository) page(entity string, limit, offset int64) ([]map[string]interface{}, error) {
	records, err := r.store.GetAll(entity)
	if err != nil {
		return nil, err
	}
	// newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if offset >= int64(len(records)) {
		return nil, nil
	}
	records = records[offset:]
	if limit > 0 && limit < int64(len(records)) {
		records = records[:limit]
	}
	out := make([]map[string]interface{}, len(records))
	for i, record := range records {
		out[i] = record
	}
	return out, nil
}

func (r *LocalRepository) count(entity string) (int64, error) {
	records, err := r.store.GetAll(entity)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func remarshal(src, dst interface{}) error {
	buf, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}
