package model

import (
	"sort"
	"time"
)

// PageType tags the role a page plays in the site.
type PageType string

const (
	PageHome          PageType = "home"
	PageAbout         PageType = "about"
	PageServices      PageType = "services"
	PageServiceSingle PageType = "service-single"
	PageContact       PageType = "contact"
	PageBlog          PageType = "blog"
	PageBlogPost      PageType = "blog-post"
	PageLocation      PageType = "location"
	PageLocations     PageType = "locations"
	PageCustom        PageType = "custom"
)

// IsArchetype reports whether the page type has a dedicated rich content generator.
func (t PageType) IsArchetype() bool {
	switch t {
	case PageHome, PageAbout, PageServices, PageServiceSingle, PageContact,
		PageBlog, PageBlogPost, PageLocation, PageLocations:
		return true
	}
	return false
}

// Page is one page of the site built from an ordered list of sections.
type Page struct {
	ID        string        `json:"id"`
	Title     string        `json:"title" validate:"required"`
	Slug      string        `json:"slug"`
	Type      PageType      `json:"type"`
	Sections  []PageSection `json:"sections"`
	SEO       PageSEO       `json:"seo"`
	Order     int           `json:"order"`
	Published bool          `json:"isPublished"`
	// ServiceID binds a service-single page to its service explicitly.
	ServiceID string `json:"serviceId,omitempty"`
}

// IsHome reports whether the page is the site root.
func (p Page) IsHome() bool {
	return p.Slug == "" || p.Type == PageHome
}

// PageSEO is per-page search metadata.
type PageSEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// PostFormat is the markup language of a blog post body.
type PostFormat string

const (
	FormatHTML     PostFormat = "html"
	FormatMarkdown PostFormat = "markdown"
)

// BlogPost is a single article.
type BlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title" validate:"required"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Format        PostFormat `json:"format,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Author        string     `json:"author,omitempty"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	PublishedAt   time.Time  `json:"publishedAt,omitempty"`
	Status        PostStatus `json:"status"`
	Tags          []string   `json:"tags,omitempty"`
	SEO           PageSEO    `json:"seo"`
}

// IsPublished reports whether the post may produce output files.
func IsPublished(p BlogPost) bool {
	return p.Status == PostPublished
}

// NavPages returns published pages sorted by their navigation order.
func NavPages(pages []Page) []Page {
	var out []Page
	for _, p := range pages {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

func sortPostsNewestFirst(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}
