// Package store is a keyed CRUD layer over a local key-value cache, one
// JSON-serialized list per entity name. Production traffic goes to Mongo;
// this is the dev-mode/demo data source.
package store

import (
	"crypto/rand"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/isamardev/graphify/internal/content"
)

var ErrNotFound = errors.New("record not found")

func init() {
	// SaveFile gob-encodes interface-typed cache values.
	gob.Register([]byte(nil))
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type Store struct {
	mu    sync.Mutex
	cache *gocache.Cache
	// file is the persistence path; empty means memory-only.
	file string
}

func New(file string) *Store {
	c := gocache.New(gocache.NoExpiration, 0)
	s := &Store{cache: c, file: file}
	if file != "" {
		// best effort; a missing file just means a fresh store
		_ = c.LoadFile(file)
	}
	return s
}

func key(entity string) string {
	return "admin_" + entity
}

// GetAll returns the stored records for entity in insertion order.
func (s *Store) GetAll(entity string) ([]content.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(entity)
}

func (s *Store) GetByID(entity, id string) (content.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(entity)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID("id") == id {
			return record, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends the record under a fresh timestamp+random id and returns
// the stored copy.
func (s *Store) Create(entity string, record content.Raw) (content.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(entity)
	if err != nil {
		return nil, err
	}

	stored := clone(record)
	stored["id"] = generateID()
	records = append(records, stored)

	if err := s.save(entity, records); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update merges updates into the matching record, leaving other fields
// untouched. The id field itself cannot be reassigned.
func (s *Store) Update(entity, id string, updates content.Raw) (content.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(entity)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if record.ID("id") != id {
			continue
		}
		merged := clone(record)
		for k, v := range updates {
			if k == "id" {
				continue
			}
			merged[k] = v
		}
		records[i] = merged
		if err := s.save(entity, records); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, ErrNotFound
}

func (s *Store) Delete(entity, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(entity)
	if err != nil {
		return err
	}
	for i, record := range records {
		if record.ID("id") == id {
			records = append(records[:i], records[i+1:]...)
			return s.save(entity, records)
		}
	}
	return ErrNotFound
}

func (s *Store) load(entity string) ([]content.Raw, error) {
	v, ok := s.cache.Get(key(entity))
	if !ok {
		return []content.Raw{}, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("store: corrupt value for %q", entity)
	}
	var records []content.Raw
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", entity, err)
	}
	return records, nil
}

func (s *Store) save(entity string, records []content.Raw) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", entity, err)
	}
	s.cache.Set(key(entity), raw, gocache.NoExpiration)
	if s.file != "" {
		if err := s.cache.SaveFile(s.file); err != nil {
			return fmt.Errorf("store: persist: %w", err)
		}
	}
	return nil
}

func clone(record content.Raw) content.Raw {
	out := make(content.Raw, len(record)+1)
	for k, v := range record {
		out[k] = v
	}
	return out
}

// generateID follows the original admin panel's scheme: current timestamp
// plus a short random suffix. Not collision-free in theory, negligible in
// single-admin practice.
func generateID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idSuffixAlphabet))))
		if err != nil {
			suffix[i] = idSuffixAlphabet[0]
			continue
		}
		suffix[i] = idSuffixAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
