package schema

import "strings"

// URLs builds absolute URLs for site paths.
type URLs struct {
	Base string
	// HTMLExt appends ".html" to non-root paths. When false, URLs are
	// extensionless for hosts that serve clean URLs.
	HTMLExt bool
}

// Root is the site root without a trailing slash.
func (u URLs) Root() string {
	return strings.TrimRight(u.Base, "/")
}

// Page returns the canonical URL of a page path such as "about" or
// "services/water-extraction". An empty path is the site root.
func (u URLs) Page(path string) string {
	path = strings.Trim(path, "/")
	if path == "" || path == "index" {
		return u.Root()
	}
	if u.HTMLExt {
		path += ".html"
	}
	return u.Root() + "/" + path
}

// Asset returns the absolute URL of a file such as "sitemap.xml".
func (u URLs) Asset(name string) string {
	return u.Root() + "/" + strings.TrimLeft(name, "/")
}

// Absolute resolves a possibly relative reference against the root.
func (u URLs) Absolute(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return u.Asset(ref)
}
