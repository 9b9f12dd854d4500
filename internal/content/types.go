package content

// Type describes one content resource: its route segments, collection
// name, sort order, write requirements and decode boundary. The handler
// layer is generic over this table; everything entity-specific lives here.
type Type struct {
	// Name is the singular noun used in log and error messages.
	Name string
	// Plural doubles as route segment, Mongo collection and cache key.
	Plural string
	// Aliases are legacy route segments still answered for compatibility.
	Aliases []string
	// Sort is the list-order field.
	Sort string
	// HasDetail exposes GET /{slug} with recompute-and-compare resolution.
	HasDetail bool
	// Required lists alias groups; at least one key per group must be
	// non-empty on admin writes.
	Required [][]string
	// FileKeys maps multipart file parts to document fields.
	FileKeys map[string]string
	Normalize func(Raw) Entity
}

func Types() []Type {
	return []Type{
		{
			Name:      "category",
			Plural:    "categories",
			Sort:      "name",
			Required:  [][]string{{"name"}},
			Normalize: func(raw Raw) Entity { e := NormalizeCategory(raw); return &e },
		},
		{
			Name:      "collection",
			Plural:    "collections",
			Sort:      "title",
			HasDetail: true,
			Required:  [][]string{{"title"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeCollection(raw); return &e },
		},
		{
			Name:      "project",
			Plural:    "projects",
			Sort:      "title",
			Required:  [][]string{{"title"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeProject(raw); return &e },
		},
		{
			Name:      "service",
			Plural:    "services",
			Sort:      "name",
			HasDetail: true,
			Required:  [][]string{{"name"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeService(raw); return &e },
		},
		{
			Name:      "author",
			Plural:    "authors",
			Aliases:   []string{"author", "authers"},
			Sort:      "name",
			Required:  [][]string{{"name"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeAuthor(raw); return &e },
		},
		{
			Name:      "blog",
			Plural:    "blogs",
			Sort:      "title",
			HasDetail: true,
			Required:  [][]string{{"title"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeBlog(raw); return &e },
		},
		{
			Name:      "team member",
			Plural:    "teams",
			Sort:      "name",
			Required:  [][]string{{"name"}},
			FileKeys:  map[string]string{"image": "image"},
			Normalize: func(raw Raw) Entity { e := NormalizeTeam(raw); return &e },
		},
		{
			Name:     "review",
			Plural:   "reviews",
			Sort:     "client_name",
			Required: [][]string{{"client_name", "name"}, {"review", "text"}},
			FileKeys: map[string]string{"client_image": "client_image", "image": "client_image"},
			Normalize: func(raw Raw) Entity { e := NormalizeReview(raw); return &e },
		},
	}
}

// MissingRequired reports which required alias groups have no value,
// keyed by the group's primary spelling.
func (t Type) MissingRequired(raw Raw) map[string]string {
	var details map[string]string
	for _, group := range t.Required {
		if raw.Str(group...) == "" {
			if details == nil {
				details = make(map[string]string)
			}
			details[group[0]] = "required"
		}
	}
	return details
}
