package config

import "testing"

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://localhost:3000 , https://graphify.art ,, ")
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://graphify.art" {
		t.Fatalf("unexpected origins: %#v", got)
	}
}

func TestMongoDBFromURI(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/graphify", "graphify"},
		{"mongodb://localhost:27017/graphify/extra", "graphify"},
		{"mongodb://localhost:27017", ""},
		{"://bad", ""},
	}
	for _, c := range cases {
		if got := mongoDBFromURI(c.uri); got != c.want {
			t.Fatalf("mongoDBFromURI(%q) = %q, want %q", c.uri, got, c.want)
		}
	}
}

func TestAssetBaseFromAPIBase(t *testing.T) {
	if got := assetBaseFromAPIBase("https://data.graphify.art/api"); got != "https://data.graphify.art" {
		t.Fatalf("got %q", got)
	}
	if got := assetBaseFromAPIBase("https://data.graphify.art"); got != "https://data.graphify.art" {
		t.Fatalf("got %q", got)
	}
}
