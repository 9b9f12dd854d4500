package content

import (
	"reflect"
	"testing"
)

func TestListCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  Raw
		want []string
	}{
		{"comma string", Raw{"tags": "a, b ,c"}, []string{"a", "b", "c"}},
		{"array", Raw{"tags": []interface{}{"a", "b"}}, []string{"a", "b"}},
		{"string slice", Raw{"tags": []string{"a", "b"}}, []string{"a", "b"}},
		{"absent", Raw{}, []string{}},
		{"nil", Raw{"tags": nil}, []string{}},
		{"empty entries dropped", Raw{"tags": "a,, ,b"}, []string{"a", "b"}},
		{"wrong shape", Raw{"tags": 42}, []string{}},
	}
	for _, c := range cases {
		if got := c.raw.List("tags"); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%s: List = %#v, want %#v", c.name, got, c.want)
		}
	}
}

func TestNormalizeCollectionDefaults(t *testing.T) {
	got := NormalizeCollection(Raw{})
	if got.ID != "" || got.Title != "" || got.CategoryID != "" {
		t.Fatalf("expected empty defaults, got %+v", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("expected empty tag list, got %#v", got.Tags)
	}
}

func TestNormalizeCollectionNumericIDs(t *testing.T) {
	got := NormalizeCollection(Raw{"id": float64(12), "category_id": float64(3), "title": " Murals "})
	if got.ID != "12" {
		t.Fatalf("ID = %q, want \"12\"", got.ID)
	}
	if got.CategoryID != "3" {
		t.Fatalf("CategoryID = %q, want \"3\"", got.CategoryID)
	}
	if got.Title != "Murals" {
		t.Fatalf("Title = %q, want \"Murals\"", got.Title)
	}
}

func TestNormalizeBlogAuthorAlias(t *testing.T) {
	got := NormalizeBlog(Raw{"auther_id": "7", "title": "Choosing Wall Art"})
	if got.AuthorID != "7" {
		t.Fatalf("AuthorID = %q, want \"7\"", got.AuthorID)
	}

	// primary spelling wins over the legacy one
	got = NormalizeBlog(Raw{"author_id": "1", "auther_id": "7"})
	if got.AuthorID != "1" {
		t.Fatalf("AuthorID = %q, want \"1\"", got.AuthorID)
	}
}

func TestNormalizeProjectSequences(t *testing.T) {
	got := NormalizeProject(Raw{
		"material_used": "Acrylic, Canvas",
		"perfect_for":   []interface{}{"Living Room", "Office"},
	})
	if !reflect.DeepEqual(got.MaterialUsed, []string{"Acrylic", "Canvas"}) {
		t.Fatalf("MaterialUsed = %#v", got.MaterialUsed)
	}
	if !reflect.DeepEqual(got.PerfectFor, []string{"Living Room", "Office"}) {
		t.Fatalf("PerfectFor = %#v", got.PerfectFor)
	}
	if len(got.Features) != 0 {
		t.Fatalf("Features = %#v, want empty", got.Features)
	}
}

func TestNormalizeReviewAliases(t *testing.T) {
	got := NormalizeReview(Raw{
		"client_name":  "Amina",
		"client_image": "storage/amina.jpg",
		"review":       "Stunning work.",
	})
	if got.Name != "Amina" || got.Image != "storage/amina.jpg" || got.Text != "Stunning work." {
		t.Fatalf("unexpected review: %+v", got)
	}
	if got.Rating != 5 {
		t.Fatalf("Rating = %d, want default 5", got.Rating)
	}

	got = NormalizeReview(Raw{"name": "Leo", "text": "Great.", "rating": "4"})
	if got.Name != "Leo" || got.Text != "Great." || got.Rating != 4 {
		t.Fatalf("plain spellings: %+v", got)
	}
}

func TestFirstReferenceImage(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"array", []interface{}{"", "storage/a.jpg", "storage/b.jpg"}, "storage/a.jpg"},
		{"csv", " storage/a.jpg , storage/b.jpg", "storage/a.jpg"},
		{"plain string", "storage/one.jpg", "storage/one.jpg"},
		{"object url", map[string]interface{}{"url": "storage/u.jpg"}, "storage/u.jpg"},
		{"object path", map[string]interface{}{"path": "storage/p.jpg"}, "storage/p.jpg"},
		{"object junk", map[string]interface{}{"url": 9}, ""},
		{"number", 12, ""},
	}
	for _, c := range cases {
		if got := FirstReferenceImage(c.in); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMissingRequired(t *testing.T) {
	var reviewType Type
	for _, ct := range Types() {
		if ct.Plural == "reviews" {
			reviewType = ct
		}
	}

	details := reviewType.MissingRequired(Raw{"text": "ok"})
	if _, ok := details["client_name"]; !ok {
		t.Fatalf("expected client_name flagged, got %#v", details)
	}
	if _, ok := details["review"]; ok {
		t.Fatalf("review satisfied via text alias, got %#v", details)
	}

	if details := reviewType.MissingRequired(Raw{"name": "A", "review": "B"}); details != nil {
		t.Fatalf("expected nil details, got %#v", details)
	}
}
