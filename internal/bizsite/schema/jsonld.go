// Package schema builds JSON-LD structured data from the content model.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// Generator creates JSON-LD structured data for one website.
type Generator struct {
	Site *model.Website
	URLs URLs
}

// NewGenerator creates a new JSON-LD generator.
func NewGenerator(site *model.Website, urls URLs) *Generator {
	return &Generator{
		Site: site,
		URLs: urls,
	}
}

// businessTypes maps industry ids to the most specific schema.org type.
var businessTypes = map[string]string{
	"plumbing":     "Plumber",
	"roofing":      "RoofingContractor",
	"hvac":         "HVACBusiness",
	"electrical":   "Electrician",
	"auto-repair":  "AutoRepair",
	"cleaning":     "HomeAndConstructionBusiness",
	"landscaping":  "HomeAndConstructionBusiness",
	"water-damage": "HomeAndConstructionBusiness",
}

// BusinessType returns the schema.org type for the site's industry.
func (g *Generator) BusinessType() string {
	if t, ok := businessTypes[model.Slugify(g.Site.Industry)]; ok {
		return t
	}
	return "LocalBusiness"
}

func (g *Generator) sameAs() []string {
	var urls []string
	for _, l := range g.Site.SEO.Social.List() {
		urls = append(urls, l.URL)
	}
	return urls
}

func (g *Generator) postalAddress() map[string]interface{} {
	a := g.Site.Address
	if a == nil {
		return nil
	}
	addr := map[string]interface{}{"@type": "PostalAddress"}
	if a.Street != "" {
		addr["streetAddress"] = a.Street
	}
	if a.City != "" {
		addr["addressLocality"] = a.City
	}
	if a.State != "" {
		addr["addressRegion"] = a.State
	}
	if a.Zip != "" {
		addr["postalCode"] = a.Zip
	}
	return addr
}

func (g *Generator) areaServed() []map[string]interface{} {
	var areas []map[string]interface{}
	for _, l := range g.Site.Locations {
		areas = append(areas, map[string]interface{}{
			"@type": "City",
			"name":  l.DisplayName(),
		})
	}
	return areas
}

// GenerateLocalBusinessSchema generates LocalBusiness JSON-LD.
func (g *Generator) GenerateLocalBusinessSchema() map[string]interface{} {
	site := g.Site
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    g.BusinessType(),
		"@id":      g.URLs.Root() + "/#business",
		"name":     site.BusinessName,
		"url":      g.URLs.Root(),
	}
	if d := site.SiteDescription(); d != "" {
		s["description"] = d
	}
	if site.Phone != "" {
		s["telephone"] = site.Phone
	}
	if site.Email != "" {
		s["email"] = site.Email
	}
	if addr := g.postalAddress(); addr != nil {
		s["address"] = addr
	}
	if site.LogoURL != "" {
		s["image"] = g.URLs.Absolute(site.LogoURL)
		s["logo"] = g.URLs.Absolute(site.LogoURL)
	}
	if site.Hours != "" {
		s["openingHours"] = site.Hours
	}
	if site.YearFounded > 0 {
		s["foundingDate"] = fmt.Sprintf("%d", site.YearFounded)
	}
	if areas := g.areaServed(); len(areas) > 0 {
		s["areaServed"] = areas
	}
	if same := g.sameAs(); len(same) > 0 {
		s["sameAs"] = same
	}
	return s
}

// GenerateWebSiteSchema generates WebSite JSON-LD.
func (g *Generator) GenerateWebSiteSchema() map[string]interface{} {
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     g.Site.SiteName(),
		"url":      g.URLs.Root(),
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  g.Site.BusinessName,
			"url":   g.URLs.Root(),
		},
		"potentialAction": map[string]interface{}{
			"@type":       "SearchAction",
			"target":      g.URLs.Asset("search.html") + "?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
	if d := g.Site.SiteDescription(); d != "" {
		s["description"] = d
	}
	return s
}

// GenerateOrganizationSchema generates Organization JSON-LD.
func (g *Generator) GenerateOrganizationSchema() map[string]interface{} {
	site := g.Site
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     site.BusinessName,
		"url":      g.URLs.Root(),
	}
	if site.LogoURL != "" {
		s["logo"] = g.URLs.Absolute(site.LogoURL)
	}
	if site.Phone != "" || site.Email != "" {
		cp := map[string]interface{}{
			"@type":       "ContactPoint",
			"contactType": "customer service",
		}
		if site.Phone != "" {
			cp["telephone"] = site.Phone
		}
		if site.Email != "" {
			cp["email"] = site.Email
		}
		s["contactPoint"] = cp
	}
	if same := g.sameAs(); len(same) > 0 {
		s["sameAs"] = same
	}
	return s
}

// BreadcrumbItem is a single breadcrumb entry.
type BreadcrumbItem struct {
	Name string
	URL  string
}

var titleCaser = cases.Title(language.English)

// Breadcrumbs builds the trail for a page. Home is always first; each
// slug segment becomes a crumb named from its path token, except the last
// which uses the page title.
func (g *Generator) Breadcrumbs(page model.Page) []BreadcrumbItem {
	items := []BreadcrumbItem{{Name: "Home", URL: g.URLs.Root()}}
	slug := strings.Trim(page.Slug, "/")
	if slug == "" {
		return items
	}
	segments := strings.Split(slug, "/")
	for i, seg := range segments {
		path := strings.Join(segments[:i+1], "/")
		name := titleCaser.String(strings.ReplaceAll(seg, "-", " "))
		if i == len(segments)-1 && page.Title != "" {
			name = page.Title
		}
		items = append(items, BreadcrumbItem{Name: name, URL: g.URLs.Page(path)})
	}
	return items
}

// GenerateBreadcrumbSchema generates BreadcrumbList JSON-LD.
func (g *Generator) GenerateBreadcrumbSchema(items []BreadcrumbItem) map[string]interface{} {
	var listItems []map[string]interface{}
	for i, item := range items {
		li := map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
		}
		if item.URL != "" {
			li["item"] = item.URL
		}
		listItems = append(listItems, li)
	}

	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": listItems,
	}
}

// GenerateServiceSchema generates Service JSON-LD.
func (g *Generator) GenerateServiceSchema(svc model.Service) map[string]interface{} {
	s := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Name,
		"serviceType": svc.Name,
		"url":         g.URLs.Page("services/" + svc.Slug),
		"provider": map[string]interface{}{
			"@type": g.BusinessType(),
			"@id":   g.URLs.Root() + "/#business",
			"name":  g.Site.BusinessName,
		},
	}
	if svc.Description != "" {
		s["description"] = svc.Description
	}
	if areas := g.areaServed(); len(areas) > 0 {
		s["areaServed"] = areas
	}
	if svc.Price != "" {
		s["offers"] = map[string]interface{}{
			"@type":       "Offer",
			"description": svc.Price,
		}
	}
	return s
}

// GenerateFAQSchema generates FAQPage JSON-LD. It returns nil when there
// are no questions.
func (g *Generator) GenerateFAQSchema(faqs []model.FAQItem) map[string]interface{} {
	if len(faqs) == 0 {
		return nil
	}

	var mainEntity []map[string]interface{}
	for _, faq := range faqs {
		mainEntity = append(mainEntity, map[string]interface{}{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}

	return map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": mainEntity,
	}
}

// GenerateArticleSchema generates BlogPosting JSON-LD.
func (g *Generator) GenerateArticleSchema(post model.BlogPost) map[string]interface{} {
	url := g.URLs.Page("blog/" + post.Slug)
	s := map[string]interface{}{
		"@context":         "https://schema.org",
		"@type":            "BlogPosting",
		"headline":         post.Title,
		"url":              url,
		"mainEntityOfPage": url,
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  g.Site.BusinessName,
			"url":   g.URLs.Root(),
		},
	}
	if d := nonEmpty(post.SEO.Description, post.Excerpt); d != "" {
		s["description"] = d
	}
	author := nonEmpty(post.Author, g.Site.BusinessName)
	s["author"] = map[string]interface{}{
		"@type": "Person",
		"name":  author,
	}
	if !post.PublishedAt.IsZero() {
		s["datePublished"] = post.PublishedAt.Format("2006-01-02")
	}
	if post.FeaturedImage != "" {
		s["image"] = []string{g.URLs.Absolute(post.FeaturedImage)}
	}
	if len(post.Tags) > 0 {
		s["keywords"] = strings.Join(post.Tags, ", ")
	}
	return s
}

// GenerateSiteNavigationSchema generates SiteNavigationElement JSON-LD
// for the top-level navigation.
func (g *Generator) GenerateSiteNavigationSchema() map[string]interface{} {
	var parts []map[string]interface{}
	for i, l := range g.Site.NavLinks() {
		parts = append(parts, map[string]interface{}{
			"@type":    "SiteNavigationElement",
			"position": i + 1,
			"name":     l.Label,
			"url":      g.URLs.Page(l.Path),
		})
	}
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "SiteNavigationElement",
		"name":     "Main navigation",
		"hasPart":  parts,
	}
}

// GenerateItemListSchema lists the pages of a collection, in order.
func (g *Generator) GenerateItemListSchema(name string, items []BreadcrumbItem) map[string]interface{} {
	var listItems []map[string]interface{}
	for i, item := range items {
		listItems = append(listItems, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      item.URL,
			"name":     item.Name,
		})
	}
	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(items),
		"itemListElement": listItems,
	}
}

func (g *Generator) serviceItems() []BreadcrumbItem {
	var items []BreadcrumbItem
	for _, svc := range g.Site.Services {
		items = append(items, BreadcrumbItem{Name: svc.Name, URL: g.URLs.Page("services/" + svc.Slug)})
	}
	return items
}

func (g *Generator) locationItems() []BreadcrumbItem {
	var items []BreadcrumbItem
	for _, l := range g.Site.Locations {
		items = append(items, BreadcrumbItem{Name: l.DisplayName(), URL: g.URLs.Page("locations/" + l.Slug)})
	}
	return items
}

// MatchService finds the service a service-single page describes. An
// explicit ServiceID wins; otherwise the final slug segment must equal a
// service slug, and failing that the longest service slug contained in
// the page slug is used.
func (g *Generator) MatchService(page model.Page) (model.Service, bool) {
	if page.ServiceID != "" {
		return g.Site.ServiceByID(page.ServiceID)
	}
	slug := strings.Trim(page.Slug, "/")
	last := slug[strings.LastIndex(slug, "/")+1:]
	for _, svc := range g.Site.Services {
		if svc.Slug != "" && svc.Slug == last {
			return svc, true
		}
	}
	var best model.Service
	for _, svc := range g.Site.Services {
		if svc.Slug != "" && strings.Contains(slug, svc.Slug) && len(svc.Slug) > len(best.Slug) {
			best = svc
		}
	}
	return best, best.Slug != ""
}

func (g *Generator) postFor(page model.Page) (model.BlogPost, bool) {
	slug := strings.Trim(page.Slug, "/")
	last := slug[strings.LastIndex(slug, "/")+1:]
	for _, p := range g.Site.BlogPosts {
		if model.IsPublished(p) && p.Slug == last {
			return p, true
		}
	}
	return model.BlogPost{}, false
}

// BuildSchemas returns the schemas for a page in generation order:
// LocalBusiness, WebSite and BreadcrumbList on every page, Organization and
// SiteNavigationElement on the home page, Service on service pages,
// BlogPosting on posts, an ItemList on the services and locations indexes,
// and FAQPage when the page has questions. extraFAQs
// are questions rendered outside the page's own FAQ sections.
func (g *Generator) BuildSchemas(page model.Page, extraFAQs []model.FAQItem) []map[string]interface{} {
	schemas := []map[string]interface{}{
		g.GenerateLocalBusinessSchema(),
		g.GenerateWebSiteSchema(),
		g.GenerateBreadcrumbSchema(g.Breadcrumbs(page)),
	}
	if page.IsHome() {
		schemas = append(schemas, g.GenerateOrganizationSchema(), g.GenerateSiteNavigationSchema())
	}
	switch page.Type {
	case model.PageServiceSingle:
		if svc, ok := g.MatchService(page); ok {
			schemas = append(schemas, g.GenerateServiceSchema(svc))
		}
	case model.PageBlogPost:
		if post, ok := g.postFor(page); ok {
			schemas = append(schemas, g.GenerateArticleSchema(post))
		}
	case model.PageServices:
		if items := g.serviceItems(); len(items) > 0 {
			schemas = append(schemas, g.GenerateItemListSchema(page.Title, items))
		}
	case model.PageLocations:
		if items := g.locationItems(); len(items) > 0 {
			schemas = append(schemas, g.GenerateItemListSchema(page.Title, items))
		}
	}

	faqs := pageFAQs(page)
	faqs = append(faqs, extraFAQs...)
	if faq := g.GenerateFAQSchema(faqs); faq != nil {
		schemas = append(schemas, faq)
	}
	return schemas
}

func pageFAQs(page model.Page) []model.FAQItem {
	var items []model.FAQItem
	for _, s := range page.Sections {
		if faq, ok := s.Content.(model.FAQContent); ok {
			items = append(items, faq.Items...)
		}
	}
	return items
}

// MarshalSchemas encodes schemas as JSON-LD script blocks, pretty-printed
// with two-space indentation and joined by newlines.
func MarshalSchemas(schemas ...map[string]interface{}) (string, error) {
	var parts []string
	for _, s := range schemas {
		if s == nil {
			continue
		}
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling %v schema: %w", s["@type"], err)
		}
		parts = append(parts, fmt.Sprintf("<script type=\"application/ld+json\">\n%s\n</script>", data))
	}
	return strings.Join(parts, "\n"), nil
}

func nonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
