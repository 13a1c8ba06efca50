package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// postFrontmatter is the YAML header of a markdown post file.
type postFrontmatter struct {
	Title         string   `yaml:"title"`
	Slug          string   `yaml:"slug"`
	Status        string   `yaml:"status"`
	PublishedAt   string   `yaml:"publishedAt"`
	Author        string   `yaml:"author"`
	Excerpt       string   `yaml:"excerpt"`
	FeaturedImage string   `yaml:"featuredImage"`
	Tags          []string `yaml:"tags"`
	SEO           struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Keywords    []string `yaml:"keywords"`
		Image       string   `yaml:"image"`
	} `yaml:"seo"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"}

// LoadPosts reads all .md files in dir as blog posts, in filename order.
// Files that fail to parse are skipped with a warning.
func LoadPosts(dir string, logger *slog.Logger) ([]model.BlogPost, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading posts dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var posts []model.BlogPost
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		post, err := parsePostFile(path)
		if err != nil {
			logger.Warn("Skipping post", "file", entry.Name(), "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func parsePostFile(path string) (model.BlogPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.BlogPost{}, err
	}
	return ParsePost(string(data), filepath.Base(path))
}

// ParsePost parses a markdown post with optional YAML frontmatter.
// The slug comes from the frontmatter, else the title, else the filename.
func ParsePost(content, filename string) (model.BlogPost, error) {
	frontmatter, body, err := splitFrontmatter(content)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("splitting frontmatter: %w", err)
	}

	var fm postFrontmatter
	if err := yaml.Unmarshal([]byte(frontmatter), &fm); err != nil {
		return model.BlogPost{}, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	if fm.Title == "" {
		return model.BlogPost{}, errors.New("missing title")
	}

	post := model.BlogPost{
		Title:         fm.Title,
		Slug:          deriveSlug(fm, filename),
		Content:       body,
		Format:        model.FormatMarkdown,
		Excerpt:       fm.Excerpt,
		Author:        fm.Author,
		FeaturedImage: fm.FeaturedImage,
		Status:        model.PostStatus(strings.ToLower(fm.Status)),
		Tags:          fm.Tags,
		SEO: model.PageSEO{
			Title:       fm.SEO.Title,
			Description: fm.SEO.Description,
			Keywords:    fm.SEO.Keywords,
			Image:       fm.SEO.Image,
		},
	}
	switch post.Status {
	case "", model.PostDraft, model.PostPublished:
	default:
		return model.BlogPost{}, fmt.Errorf("unknown status %q", fm.Status)
	}
	if fm.PublishedAt != "" {
		t, err := parseDate(fm.PublishedAt)
		if err != nil {
			return model.BlogPost{}, err
		}
		post.PublishedAt = t
	}
	return post, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid publishedAt %q", s)
}

// splitFrontmatter separates YAML frontmatter (between --- delimiters) from the body.
func splitFrontmatter(content string) (string, string, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "---") {
		return "", content, nil
	}

	rest := content[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", content, errors.New("no closing --- found for frontmatter")
	}

	fm := strings.TrimSpace(rest[:idx])
	body := strings.TrimSpace(rest[idx+4:])
	return fm, body, nil
}

func deriveSlug(fm postFrontmatter, filename string) string {
	if fm.Slug != "" {
		return model.Slugify(fm.Slug)
	}
	if fm.Title != "" {
		return model.Slugify(fm.Title)
	}
	return model.Slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
}
