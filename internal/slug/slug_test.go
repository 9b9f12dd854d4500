package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Modern Abstract Art!", "modern-abstract-art"},
		{"  Multiple   Spaces -- here ", "multiple-spaces-here"},
		{"Geometric / Line Art", "geometric-line-art"},
		{"", ""},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Fatalf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Modern Abstract Art!", "Café Wall", "  A  B  C  ", "42 Murals & More"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestResolve(t *testing.T) {
	titles := []string{"Modern Abstract Art", "Botanical Prints", "Modern  Abstract  Art"}

	if got := Resolve(titles, "botanical-prints"); got != 1 {
		t.Fatalf("Resolve = %d, want 1", got)
	}
	// first-match-wins on collision
	if got := Resolve(titles, "modern-abstract-art"); got != 0 {
		t.Fatalf("Resolve collision = %d, want 0", got)
	}
	if got := Resolve(titles, "nonexistent"); got != -1 {
		t.Fatalf("Resolve missing = %d, want -1", got)
	}
	if got := Resolve(nil, "anything"); got != -1 {
		t.Fatalf("Resolve empty = %d, want -1", got)
	}
}
