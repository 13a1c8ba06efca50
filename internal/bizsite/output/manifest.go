package output

import (
	"encoding/json"
	"fmt"
)

// Manifest is the subset of the web app manifest the site uses.
type Manifest struct {
	Name            string
	ShortName       string
	Description     string
	BackgroundColor string
	ThemeColor      string
	Icon            string
}

// GenerateManifest generates a PWA manifest.json.
func GenerateManifest(m Manifest) (string, error) {
	short := m.ShortName
	if short == "" {
		short = m.Name
	}
	manifest := map[string]interface{}{
		"name":             m.Name,
		"short_name":       short,
		"start_url":        "./index.html",
		"display":          "standalone",
		"background_color": m.BackgroundColor,
		"theme_color":      m.ThemeColor,
	}
	if m.Description != "" {
		manifest["description"] = m.Description
	}
	if m.Icon != "" {
		manifest["icons"] = []map[string]string{{"src": m.Icon, "sizes": "any"}}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}
	return string(data) + "\n", nil
}
