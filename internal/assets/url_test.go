package assets

import "testing"

const base = "https://assets.example.com"

func TestResolveImageURLRelativeStorage(t *testing.T) {
	got := ResolveImageURL("storage/photo.jpg", base)
	want := "https://assets.example.com/storage/app/public/photo.jpg"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = ResolveImageURL("/storage/photo.jpg", base)
	if got != want {
		t.Fatalf("leading slash: got %q, want %q", got, want)
	}
}

func TestResolveImageURLAbsolute(t *testing.T) {
	got := ResolveImageURL("https://cdn.example.com/storage/x.png?v=2", base)
	want := "https://cdn.example.com/storage/app/public/x.png?v=2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveImageURLIdempotent(t *testing.T) {
	inputs := []string{
		"storage/photo.jpg",
		"https://cdn.example.com/storage/x.png",
		"https://cdn.example.com/storage/app/public/x.png",
		"/local/asset.svg",
		"placeholder.svg",
	}
	for _, in := range inputs {
		once := ResolveImageURL(in, base)
		if twice := ResolveImageURL(once, base); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestResolveImageURLPassThrough(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"blob:https://example.com/abc", "blob:https://example.com/abc"},
		{"/placeholder.svg", "/placeholder.svg"},
		{"placeholder.svg", "/placeholder.svg"},
	}
	for _, c := range cases {
		if got := ResolveImageURL(c.in, base); got != c.want {
			t.Fatalf("ResolveImageURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveImageURLBackslashes(t *testing.T) {
	got := ResolveImageURL(`storage\uploads\a.jpg`, base)
	want := "https://assets.example.com/storage/app/public/uploads/a.jpg"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
