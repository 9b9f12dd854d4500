package store

import "github.com/isamardev/graphify/internal/content"

// SeedSampleData populates empty entity collections with the demo records
// the admin panel expects on a fresh install. Existing data is left alone.
func (s *Store) SeedSampleData() error {
	categories, err := s.GetAll("categories")
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		samples := []content.Raw{
			{"name": "Minimalist", "description": "Clean and simple designs"},
			{"name": "Abstract", "description": "Creative abstract artwork"},
		}
		for _, sample := range samples {
			if _, err := s.Create("categories", sample); err != nil {
				return err
			}
		}
	}

	authors, err := s.GetAll("authors")
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		sample := content.Raw{
			"name":  "John Doe",
			"image": "/placeholder.svg",
			"bio":   "Creative director and design expert",
		}
		if _, err := s.Create("authors", sample); err != nil {
			return err
		}
	}
	return nil
}
