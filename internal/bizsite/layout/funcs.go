package layout

import (
	"html/template"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

// BuildFuncMap creates the template FuncMap used by the shell templates.
func BuildFuncMap() template.FuncMap {
	return template.FuncMap{
		"href":    Href,
		"asset":   AssetHref,
		"tel":     func(phone string) template.URL { return template.URL(section.TelHref(phone)) },
		"default": defaultVal,
	}
}

// Href links to a site path from a page whose root prefix is prefix.
// The empty path is the home page.
func Href(prefix, path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return prefix + "index.html"
	}
	return prefix + path + ".html"
}

// AssetHref resolves an asset reference relative to the page. Absolute
// URLs and root-relative paths are returned unchanged.
func AssetHref(prefix, ref string) string {
	if ref == "" || strings.Contains(ref, "://") || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return prefix + ref
}

// Prefix returns the relative path from a page path back to the site root.
func Prefix(path string) string {
	depth := strings.Count(strings.Trim(path, "/"), "/")
	return strings.Repeat("../", depth)
}

func defaultVal(def, val interface{}) interface{} {
	if val == nil {
		return def
	}
	if s, ok := val.(string); ok && s == "" {
		return def
	}
	return val
}
