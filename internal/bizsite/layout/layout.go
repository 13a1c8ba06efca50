// Package layout wraps page bodies in the shared document shell: head
// metadata, inline CSS, header, footer and the client script.
package layout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/schema"
	"github.com/supermodeltools/bizsite/internal/bizsite/theme"
)

//go:embed templates/*.html templates/*.js
var templateFS embed.FS

// Engine renders documents for one website.
type Engine struct {
	tmpl *template.Template
	site *model.Website
	urls schema.URLs
	lang string
	js   string
}

// OGMeta holds Open Graph and Twitter Card metadata for a page.
type OGMeta struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	Type        string // "website" for the home page, "article" for posts
	SiteName    string
	Twitter     string
}

// PageMeta describes one document.
type PageMeta struct {
	// Path is the page path without extension; "" is the home page.
	Path        string
	Title       string
	Description string
	Keywords    []string
	Image       string
	OGType      string
	Breadcrumbs []schema.BreadcrumbItem
	// JSONLD holds pre-rendered <script type="application/ld+json"> blocks.
	JSONLD string
	// CSS is page-specific CSS appended after the base stylesheet.
	CSS  string
	Year int
	// Extra is injected before </body>.
	Extra string
}

// Link is a resolved navigation link.
type Link struct {
	Label  string
	Href   string
	Active bool
}

type headerContext struct {
	Site      *model.Website
	Prefix    string
	Nav       []Link
	Services  []Link
	Locations []Link
}

type footerContext struct {
	Site       *model.Website
	Prefix     string
	Services   []Link
	Locations  []Link
	QuickLinks []Link
	Legal      []Link
	Address    string
	Social     []model.SocialLink
	Year       int
}

type documentContext struct {
	Lang        string
	Meta        PageMeta
	Canonical   string
	Keywords    string
	OG          OGMeta
	Favicon     string
	Prefix      string
	CSS         template.CSS
	JS          template.JS
	JSONLD      template.HTML
	Header      template.HTML
	Footer      template.HTML
	Body        template.HTML
	Breadcrumbs []Link
	Extra       template.HTML
}

// NewEngine parses the embedded templates.
func NewEngine(site *model.Website, urls schema.URLs, lang string) (*Engine, error) {
	tmpl, err := template.New("").Funcs(BuildFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout templates: %w", err)
	}
	js, err := templateFS.ReadFile("templates/site.js")
	if err != nil {
		return nil, fmt.Errorf("reading client script: %w", err)
	}
	if lang == "" {
		lang = "en"
	}
	return &Engine{tmpl: tmpl, site: site, urls: urls, lang: lang, js: string(js)}, nil
}

// URLs returns the URL builder used for canonical links.
func (e *Engine) URLs() schema.URLs {
	return e.urls
}

// CanonicalURL is the site root plus "/" plus the page path, or the root
// alone for the home page.
func (e *Engine) CanonicalURL(path string) string {
	return e.urls.Page(path)
}

// MetaFor fills PageMeta from a page's title and SEO fields.
func (e *Engine) MetaFor(page model.Page) PageMeta {
	title := page.SEO.Title
	if title == "" {
		if page.IsHome() {
			title = e.site.SiteName()
			if e.site.Tagline != "" {
				title += " | " + e.site.Tagline
			}
		} else {
			title = page.Title + " | " + e.site.SiteName()
		}
	}
	desc := page.SEO.Description
	if desc == "" {
		desc = e.site.SiteDescription()
	}
	return PageMeta{
		Path:        strings.Trim(page.Slug, "/"),
		Title:       title,
		Description: desc,
		Keywords:    page.SEO.Keywords,
		Image:       page.SEO.Image,
	}
}

func (e *Engine) serviceLinks(prefix string) []Link {
	var links []Link
	for _, s := range e.site.Services {
		links = append(links, Link{Label: s.Name, Href: Href(prefix, "services/"+s.Slug)})
	}
	return links
}

func (e *Engine) locationLinks(prefix string) []Link {
	var links []Link
	for _, l := range e.site.Locations {
		links = append(links, Link{Label: l.DisplayName(), Href: Href(prefix, "locations/"+l.Slug)})
	}
	return links
}

func (e *Engine) navLinks(prefix, current string) []Link {
	var links []Link
	for _, l := range e.site.NavLinks() {
		active := l.Path == current || (l.Path != "" && strings.HasPrefix(current, l.Path+"/"))
		links = append(links, Link{Label: l.Label, Href: Href(prefix, l.Path), Active: active})
	}
	return links
}

// Header renders the shared site header for a page path.
func (e *Engine) Header(path string) (string, error) {
	prefix := Prefix(path)
	return e.render("header.html", headerContext{
		Site:      e.site,
		Prefix:    prefix,
		Nav:       e.navLinks(prefix, path),
		Services:  e.serviceLinks(prefix),
		Locations: e.locationLinks(prefix),
	})
}

var legalSlugs = []struct{ slug, label string }{
	{"privacy-policy", "Privacy Policy"},
	{"privacy", "Privacy Policy"},
	{"terms", "Terms of Service"},
	{"terms-of-service", "Terms of Service"},
	{"accessibility", "Accessibility"},
}

func (e *Engine) legalLinks(prefix string) []Link {
	published := make(map[string]bool)
	for _, p := range e.site.Pages {
		if p.Published {
			published[p.Slug] = true
		}
	}
	var links []Link
	seen := make(map[string]bool)
	for _, l := range legalSlugs {
		if published[l.slug] && !seen[l.label] {
			seen[l.label] = true
			links = append(links, Link{Label: l.label, Href: Href(prefix, l.slug)})
		}
	}
	links = append(links,
		Link{Label: "Search", Href: prefix + "search.html"},
		Link{Label: "Sitemap", Href: prefix + "sitemap.xml"},
	)
	return links
}

// Footer renders the shared site footer for a page path. year is the
// copyright year.
func (e *Engine) Footer(path string, year int) (string, error) {
	prefix := Prefix(path)
	var quick []Link
	for _, l := range e.navLinks(prefix, path) {
		quick = append(quick, Link{Label: l.Label, Href: l.Href})
	}
	return e.render("footer.html", footerContext{
		Site:       e.site,
		Prefix:     prefix,
		Services:   e.serviceLinks(prefix),
		Locations:  e.locationLinks(prefix),
		QuickLinks: quick,
		Legal:      e.legalLinks(prefix),
		Address:    e.site.Address.OneLine(),
		Social:     e.site.SEO.Social.List(),
		Year:       year,
	})
}

// Wrap renders a complete HTML document around body.
func (e *Engine) Wrap(body string, meta PageMeta) (string, error) {
	header, err := e.Header(meta.Path)
	if err != nil {
		return "", err
	}
	footer, err := e.Footer(meta.Path, meta.Year)
	if err != nil {
		return "", err
	}

	prefix := Prefix(meta.Path)
	canonical := e.CanonicalURL(meta.Path)
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	image := meta.Image
	if image == "" {
		image = e.site.SEO.DefaultImage
	}

	var crumbs []Link
	if len(meta.Breadcrumbs) > 1 {
		for i, c := range meta.Breadcrumbs {
			l := Link{Label: c.Name, Active: i == len(meta.Breadcrumbs)-1}
			if !l.Active {
				l.Href = e.crumbHref(prefix, c.URL)
			}
			crumbs = append(crumbs, l)
		}
	}

	ctx := documentContext{
		Lang:      e.lang,
		Meta:      meta,
		Canonical: canonical,
		Keywords:  strings.Join(meta.Keywords, ", "),
		OG: OGMeta{
			Title:       meta.Title,
			Description: meta.Description,
			URL:         canonical,
			ImageURL:    e.urls.Absolute(image),
			Type:        ogType,
			SiteName:    e.site.SiteName(),
			Twitter:     e.site.SEO.TwitterHandle,
		},
		Favicon:     AssetHref(prefix, e.site.FaviconURL),
		Prefix:      prefix,
		CSS:         template.CSS(theme.BaseCSS(e.site.Colors) + meta.CSS),
		JS:          template.JS(e.js),
		JSONLD:      template.HTML(meta.JSONLD),
		Header:      template.HTML(header),
		Footer:      template.HTML(footer),
		Body:        template.HTML(body),
		Breadcrumbs: crumbs,
		Extra:       template.HTML(meta.Extra),
	}
	return e.render("document.html", ctx)
}

// crumbHref converts an absolute breadcrumb URL back to a relative link.
// Paths that are not top-level navigation targets get no link, since no
// document is generated for them.
func (e *Engine) crumbHref(prefix, abs string) string {
	path := strings.TrimPrefix(strings.TrimPrefix(abs, e.urls.Root()), "/")
	path = strings.TrimSuffix(path, ".html")
	for _, l := range e.site.NavLinks() {
		if l.Path == path {
			return Href(prefix, path)
		}
	}
	return ""
}

func (e *Engine) render(name string, data interface{}) (string, error) {
	t := e.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.String(), nil
}
