package assets

import (
	"net/url"
	"regexp"
	"strings"
)

// The backend serves uploaded files under storage/app/public, but stored
// documents sometimes carry bare storage/ paths and sometimes the full
// public path. The rewrite tolerates both and is idempotent.
var storagePrefix = regexp.MustCompile(`(?i)^/?storage/`)
var publicPrefix = regexp.MustCompile(`(?i)^/?storage/app/public/`)

func injectPublic(p string) string {
	if publicPrefix.MatchString(p) {
		return strings.TrimPrefix(p, "/")
	}
	if storagePrefix.MatchString(p) {
		rest := storagePrefix.ReplaceAllString(p, "")
		return "storage/app/public/" + rest
	}
	return p
}

// ResolveImageURL turns a possibly relative, absolute or malformed image
// path into a fetchable URL against assetBase. Malformed absolute URLs are
// returned unchanged.
func ResolveImageURL(raw, assetBase string) string {
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "blob:") {
		return raw
	}

	cleaned := strings.ReplaceAll(raw, `\`, "/")

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(cleaned, "//") {
		u, err := url.Parse(cleaned)
		if err != nil {
			return cleaned
		}
		u.Path = "/" + injectPublic(strings.TrimPrefix(u.Path, "/"))
		return u.String()
	}

	if storagePrefix.MatchString(cleaned) {
		return strings.TrimRight(assetBase, "/") + "/" + injectPublic(strings.TrimPrefix(cleaned, "/"))
	}

	if strings.HasPrefix(cleaned, "/") {
		return cleaned
	}
	return "/" + cleaned
}
