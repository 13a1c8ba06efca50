// Package loader reads a website content model from JSON or YAML files,
// validates it and fills in derived fields.
package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// Loader is the interface for loading a website.
type Loader interface {
	Load() (*model.Website, error)
}

// Format is the encoding of a content-model file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Options configure a FileLoader.
type Options struct {
	// PostsDir optionally holds markdown posts with YAML frontmatter that
	// are merged into the website's blog posts.
	PostsDir string
	Logger   *slog.Logger
}

// New creates a loader for path, choosing the format from its extension.
func New(path string, opts Options) Loader {
	l := &FileLoader{Path: path, Format: FormatJSON, PostsDir: opts.PostsDir, Logger: opts.Logger}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		l.Format = FormatYAML
	}
	return l
}

// FileLoader loads one content-model file.
type FileLoader struct {
	Path     string
	Format   Format
	PostsDir string
	Logger   *slog.Logger
}

// Load reads, validates and normalizes the website.
func (l *FileLoader) Load() (*model.Website, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading website %s: %w", l.Path, err)
	}
	site, err := decode(data, l.Format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", l.Path, err)
	}

	if l.PostsDir != "" {
		logger := l.Logger
		if logger == nil {
			logger = slog.Default()
		}
		posts, err := LoadPosts(l.PostsDir, logger)
		if err != nil {
			return nil, err
		}
		site.BlogPosts = mergePosts(site.BlogPosts, posts)
	}

	if err := finish(site); err != nil {
		return nil, fmt.Errorf("loading %s: %w", l.Path, err)
	}
	return site, nil
}

// Parse decodes, validates and normalizes a content model.
func Parse(data []byte, format Format) (*model.Website, error) {
	site, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := finish(site); err != nil {
		return nil, err
	}
	return site, nil
}

func finish(site *model.Website) error {
	if err := Normalize(site); err != nil {
		return err
	}
	return validateStruct(site)
}

// decode parses the document and checks it against the website schema.
func decode(data []byte, format Format) (*model.Website, error) {
	var doc interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		doc = jsonCompatible(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}
	doc = expandDates(doc)

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding website: %w", err)
	}
	var site model.Website
	if err := json.Unmarshal(normalized, &site); err != nil {
		return nil, fmt.Errorf("decoding website: %w", err)
	}
	return &site, nil
}

// jsonCompatible converts YAML maps with non-string keys into
// map[string]interface{} so the document can be encoded as JSON.
func jsonCompatible(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []interface{}:
		for i := range t {
			t[i] = jsonCompatible(t[i])
		}
		return t
	}
	return v
}

var dateKeys = map[string]bool{"publishedAt": true, "createdAt": true, "updatedAt": true}

// expandDates rewrites date-only timestamps such as "2026-02-10" to
// RFC 3339 at midnight UTC.
func expandDates(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			if s, ok := val.(string); ok && dateKeys[k] && len(s) == len("2006-01-02") {
				t[k] = s + "T00:00:00Z"
				continue
			}
			t[k] = expandDates(val)
		}
	case []interface{}:
		for i := range t {
			t[i] = expandDates(t[i])
		}
	}
	return v
}

// mergePosts appends posts whose slug is not already present.
func mergePosts(existing, extra []model.BlogPost) []model.BlogPost {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[postSlug(p)] = true
	}
	for _, p := range extra {
		if !seen[postSlug(p)] {
			existing = append(existing, p)
			seen[postSlug(p)] = true
		}
	}
	return existing
}

func postSlug(p model.BlogPost) string {
	if p.Slug != "" {
		return p.Slug
	}
	return model.Slugify(p.Title)
}
