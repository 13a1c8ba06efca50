// Package model holds the read-only content model of a small-business website.
package model

import (
	"strings"
	"time"
)

// Website is the root aggregate describing a single business site.
type Website struct {
	ID           string      `json:"id"`
	BusinessName string      `json:"businessName" validate:"required"`
	Industry     string      `json:"industry"`
	Tagline      string      `json:"tagline,omitempty"`
	Description  string      `json:"description,omitempty"`
	Domain       string      `json:"domain,omitempty"`
	LogoURL      string      `json:"logoUrl,omitempty"`
	FaviconURL   string      `json:"faviconUrl,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Email        string      `json:"email,omitempty" validate:"omitempty,email"`
	Address      *Address    `json:"address,omitempty"`
	Hours        string      `json:"hours,omitempty"`
	MapEmbedURL  string      `json:"mapEmbedUrl,omitempty"`
	YearFounded  int         `json:"yearFounded,omitempty"`
	Colors       BrandColors `json:"colors" validate:"required"`
	SEO          SEOSettings `json:"seoSettings"`
	Services     []Service   `json:"services" validate:"dive"`
	Locations    []Location  `json:"locations" validate:"dive"`
	Pages        []Page      `json:"pages" validate:"dive"`
	BlogPosts    []BlogPost  `json:"blogPosts" validate:"dive"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitempty"`
}

// Address is the postal address used for NAP markup and LocalBusiness schema.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// OneLine formats the address on a single line, skipping empty parts.
func (a *Address) OneLine() string {
	if a == nil {
		return ""
	}
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	cityState := strings.TrimSpace(strings.Join(nonEmpty(a.City, a.State), ", "))
	if a.Zip != "" {
		cityState = strings.TrimSpace(cityState + " " + a.Zip)
	}
	if cityState != "" {
		parts = append(parts, cityState)
	}
	return strings.Join(parts, ", ")
}

// BrandColors holds the five required brand colors as hex strings.
// Hover, light and dark variants are derived, never stored.
type BrandColors struct {
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" validate:"required,hexcolor"`
	Accent     string `json:"accent" validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
	Text       string `json:"text" validate:"required,hexcolor"`
}

// DefaultColors is the palette supplied when a site has none.
func DefaultColors() BrandColors {
	return BrandColors{
		Primary:    "#1e40af",
		Secondary:  "#0f172a",
		Accent:     "#f59e0b",
		Background: "#ffffff",
		Text:       "#1f2937",
	}
}

// IsZero reports whether no color has been set.
func (c BrandColors) IsZero() bool {
	return c == BrandColors{}
}

// SEOSettings are site-wide search and social settings.
type SEOSettings struct {
	SiteName        string      `json:"siteName,omitempty"`
	SiteDescription string      `json:"siteDescription,omitempty"`
	DefaultImage    string      `json:"defaultImage,omitempty"`
	TwitterHandle   string      `json:"twitterHandle,omitempty"`
	Social          SocialLinks `json:"social,omitempty"`
}

// SocialLinks are optional profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// SocialLink is a named social profile.
type SocialLink struct {
	Network string
	URL     string
}

// List returns the configured links in a fixed order.
func (s SocialLinks) List() []SocialLink {
	var links []SocialLink
	for _, l := range []SocialLink{
		{"Facebook", s.Facebook},
		{"Instagram", s.Instagram},
		{"Twitter", s.Twitter},
		{"LinkedIn", s.LinkedIn},
		{"YouTube", s.YouTube},
	} {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

// Service is a single offering of the business.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Price       string `json:"price,omitempty"`
}

// Location is a city or area the business serves.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state,omitempty"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// DisplayName is the name shown in navigation and headings.
func (l Location) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	if l.State != "" {
		return l.City + ", " + l.State
	}
	return l.City
}

// DefaultSlug is the slug used when none is set: the name, else the city.
func (l Location) DefaultSlug() string {
	if l.Name != "" {
		return Slugify(l.Name)
	}
	return Slugify(l.City)
}

// SiteName is the SEO site name, falling back to the business name.
func (w *Website) SiteName() string {
	if w.SEO.SiteName != "" {
		return w.SEO.SiteName
	}
	return w.BusinessName
}

// SiteDescription is the SEO description, falling back to the business description.
func (w *Website) SiteDescription() string {
	if w.SEO.SiteDescription != "" {
		return w.SEO.SiteDescription
	}
	if w.Description != "" {
		return w.Description
	}
	return w.Tagline
}

// City is the primary city of the business.
func (w *Website) City() string {
	if w.Address != nil && w.Address.City != "" {
		return w.Address.City
	}
	if len(w.Locations) > 0 {
		return w.Locations[0].City
	}
	return ""
}

// State is the primary state or region of the business.
func (w *Website) State() string {
	if w.Address != nil && w.Address.State != "" {
		return w.Address.State
	}
	if len(w.Locations) > 0 {
		return w.Locations[0].State
	}
	return ""
}

// PublishedPosts returns the published blog posts, newest first.
// Posts with equal timestamps keep their input order.
func (w *Website) PublishedPosts() []BlogPost {
	var posts []BlogPost
	for _, p := range w.BlogPosts {
		if IsPublished(p) {
			posts = append(posts, p)
		}
	}
	sortPostsNewestFirst(posts)
	return posts
}

// ServiceByID finds a service by id.
func (w *Website) ServiceByID(id string) (Service, bool) {
	for _, s := range w.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// PageByType returns the first page of the given type.
func (w *Website) PageByType(t PageType) (Page, bool) {
	for _, p := range w.Pages {
		if p.Type == t {
			return p, true
		}
	}
	return Page{}, false
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
