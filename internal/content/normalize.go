package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Raw is a loosely-typed document as it comes off the wire or out of the
// database: BSON decoded into a map, a parsed JSON object, or a flattened
// multipart form. Normalizers turn it into a fully-shaped entity, never
// erroring; missing and null fields become defaults.
type Raw map[string]interface{}

// Str returns the first non-empty string-coercible value among keys.
func (r Raw) Str(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// ID behaves like Str but also stringifies numeric ids.
func (r Raw) ID(keys ...string) string {
	return r.Str(keys...)
}

// List accepts the three wire shapes for sequence fields: a true array, a
// comma-separated string, or absent. Entries are trimmed, empties dropped,
// order preserved.
func (r Raw) List(key string) []string {
	v, ok := r[key]
	if !ok || v == nil {
		return []string{}
	}
	switch val := v.(type) {
	case []string:
		return cleanList(val)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, entry := range val {
			items = append(items, coerceString(entry))
		}
		return cleanList(items)
	case string:
		return cleanList(strings.Split(val, ","))
	default:
		return []string{}
	}
}

// Int coerces numeric wire shapes, falling back to def.
func (r Raw) Int(key string, def int) int {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return def
}

func coerceString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		return ""
	case float64:
		// JSON numbers; ids like 7 must not render as "7.000000"
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int, int32, int64:
		return fmt.Sprintf("%d", val)
	default:
		return ""
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FirstReferenceImage extracts a single image path from a quote's
// reference_image field, which may arrive as an array, a comma-joined
// string, or an object carrying a url/path member.
func FirstReferenceImage(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []string:
		for _, entry := range val {
			if s := strings.TrimSpace(entry); s != "" {
				return s
			}
		}
		return ""
	case []interface{}:
		for _, entry := range val {
			if s := coerceString(entry); s != "" {
				return s
			}
		}
		return ""
	case string:
		for _, part := range strings.Split(val, ",") {
			if s := strings.TrimSpace(part); s != "" {
				return s
			}
		}
		return val
	case map[string]interface{}:
		if s, ok := val["url"].(string); ok {
			return s
		}
		if s, ok := val["path"].(string); ok {
			return s
		}
		return ""
	default:
		return ""
	}
}

func NormalizeCategory(raw Raw) Category {
	return Category{
		ID:          raw.ID("id", "_id"),
		Name:        raw.Str("name"),
		Description: raw.Str("description"),
	}
}

func NormalizeCollection(raw Raw) Collection {
	return Collection{
		ID:          raw.ID("id", "_id"),
		Image:       raw.Str("image"),
		Title:       raw.Str("title"),
		Description: raw.Str("description"),
		CategoryID:  raw.ID("category_id"),
		Tags:        raw.List("tags"),
	}
}

func NormalizeProject(raw Raw) Project {
	return Project{
		ID:           raw.ID("id", "_id"),
		Title:        raw.Str("title"),
		Description:  raw.Str("description"),
		Image:        raw.Str("image"),
		CollectionID: raw.ID("collection_id"),
		MaterialUsed: raw.List("material_used"),
		PerfectFor:   raw.List("perfect_for"),
		Features:     raw.List("features"),
	}
}

func NormalizeService(raw Raw) Service {
	return Service{
		ID:          raw.ID("id", "_id"),
		Name:        raw.Str("name"),
		Image:       raw.Str("image"),
		Description: raw.Str("description"),
		Price:       raw.Str("price"),
	}
}

func NormalizeAuthor(raw Raw) Author {
	return Author{
		ID:    raw.ID("id", "_id"),
		Name:  raw.Str("name"),
		Image: raw.Str("image"),
		Bio:   raw.Str("bio"),
	}
}

// NormalizeBlog tolerates the legacy auther_id spelling some backends used.
func NormalizeBlog(raw Raw) Blog {
	return Blog{
		ID:       raw.ID("id", "_id"),
		Tag:      raw.Str("tag"),
		AuthorID: raw.ID("author_id", "auther_id"),
		Title:    raw.Str("title"),
		Content:  raw.Str("content"),
		Image:    raw.Str("image"),
		Tags:     raw.List("tags"),
	}
}

func NormalizeTeam(raw Raw) Team {
	return Team{
		ID:          raw.ID("id", "_id"),
		Name:        raw.Str("name"),
		Role:        raw.Str("role"),
		Description: raw.Str("description"),
		Image:       raw.Str("image"),
	}
}

// NormalizeReview checks the client_* spellings first, then the plain ones.
func NormalizeReview(raw Raw) Review {
	return Review{
		ID:      raw.ID("id", "_id"),
		Name:    raw.Str("client_name", "name"),
		Role:    raw.Str("client_role", "role"),
		Project: raw.Str("client_address", "project"),
		Rating:  raw.Int("rating", 5),
		Text:    raw.Str("review", "text"),
		Image:   raw.Str("client_image", "image"),
	}
}
