package export

import (
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/layout"
	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/output"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
)

// plan lists the HTML documents of an export in output order.
func (a *Assembler) plan(r *run) []job {
	var jobs []job
	claimed := map[string]bool{"search": true}
	add := func(j job) {
		path := strings.TrimSuffix(j.file, ".html")
		if claimed[path] {
			a.logger.Warn("Skipping page with a reserved or duplicate slug", "title", j.page.Title, "path", j.file, "type", j.page.Type)
			return
		}
		claimed[path] = true
		jobs = append(jobs, j)
	}

	for _, arch := range coreArchetypes {
		add(a.archetypeJob(r, arch))
	}

	for _, s := range r.site.Services {
		add(a.serviceJob(r, s))
	}
	for _, l := range r.site.Locations {
		add(a.locationJob(r, l))
	}

	add(a.archetypeJob(r, blogArchetype))
	for _, p := range r.facts.Posts {
		add(a.postJob(r, p))
	}

	if page, ok := publishedPage(r.site, model.PageLocations); ok && StrategyFor(page.Type) == StrategyRichIfListed {
		j := a.archetypeJob(r, locationsArchetype)
		if !a.opts.IncludeCustomInSitemap {
			j.priority = ""
		}
		add(j)
	}

	for _, page := range model.NavPages(r.site.Pages) {
		if StrategyFor(page.Type) != StrategySections {
			continue
		}
		path := strings.Trim(page.Slug, "/")
		if path == "" {
			a.logger.Warn("Skipping page with a reserved or duplicate slug", "title", page.Title, "slug", page.Slug, "type", page.Type)
			continue
		}
		add(a.customJob(r, page, path))
	}
	return jobs
}

func publishedPage(site *model.Website, t model.PageType) (model.Page, bool) {
	for _, p := range site.Pages {
		if p.Type == t && p.Published {
			return p, true
		}
	}
	return model.Page{}, false
}

// archetypeJob builds a rich page. SEO fields come from the first listed
// page of the same type; its sections are ignored.
func (a *Assembler) archetypeJob(r *run, arch archetype) job {
	page := model.Page{Title: arch.title}
	if listed, ok := r.site.PageByType(arch.typ); ok {
		page = listed
		if page.Title == "" {
			page.Title = arch.title
		}
	}
	page.Slug = arch.path
	page.Type = arch.typ
	page.Sections = nil

	render := arch.render(a.renderers)
	f := r.facts
	j := job{
		file:     fileFor(arch.path),
		kind:     "page",
		page:     page,
		css:      arch.css(),
		body:     func() string { return render(f) },
		priority: arch.priority,
		category: arch.category,
		desc:     page.SEO.Description,
	}
	if arch.faqs {
		j.faqs = rich.FAQs(f, "")
	}
	return j
}

// listedFor finds the website.pages entry of type t whose final slug
// segment is slug, or whose ServiceID is id.
func listedFor(site *model.Website, t model.PageType, slug, id string) (model.Page, bool) {
	for _, p := range site.Pages {
		if p.Type != t {
			continue
		}
		s := strings.Trim(p.Slug, "/")
		if (id != "" && p.ServiceID == id) || s[strings.LastIndex(s, "/")+1:] == slug {
			return p, true
		}
	}
	return model.Page{}, false
}

func (a *Assembler) serviceJob(r *run, s model.Service) job {
	path := "services/" + s.Slug
	page := model.Page{Title: s.Name}
	if listed, ok := listedFor(r.site, model.PageServiceSingle, s.Slug, s.ID); ok {
		page.SEO = listed.SEO
	}
	page.Slug = path
	page.Type = model.PageServiceSingle
	page.ServiceID = s.ID
	if page.SEO.Description == "" {
		page.SEO.Description = s.Description
	}

	render := a.renderers.ServicePage
	f := r.facts
	return job{
		file:     fileFor(path),
		kind:     "service",
		page:     page,
		css:      rich.ServicePageCSS(),
		faqs:     rich.FAQs(f, strings.ToLower(s.Name)),
		body:     func() string { return render(f, s) },
		priority: output.PriorityService,
		category: "service",
		desc:     page.SEO.Description,
	}
}

func (a *Assembler) locationJob(r *run, l model.Location) job {
	path := "locations/" + l.Slug
	page := model.Page{Title: rich.Title(r.facts.Vocab.Label) + " in " + l.DisplayName()}
	if listed, ok := listedFor(r.site, model.PageLocation, l.Slug, ""); ok {
		page.SEO = listed.SEO
	}
	page.Slug = path
	page.Type = model.PageLocation
	if page.SEO.Description == "" {
		page.SEO.Description = l.Description
	}

	local := r.facts
	local.City = l.City
	local.State = l.State
	render := a.renderers.LocationPage
	f := r.facts
	return job{
		file:     fileFor(path),
		kind:     "location",
		page:     page,
		css:      rich.LocationPageCSS(),
		faqs:     rich.FAQs(local, ""),
		body:     func() string { return render(f, l) },
		priority: output.PriorityLocation,
		category: "location",
		desc:     page.SEO.Description,
	}
}

func (a *Assembler) postJob(r *run, p model.BlogPost) job {
	path := "blog/" + p.Slug
	page := model.Page{Title: p.Title, Slug: path, Type: model.PageBlogPost, SEO: p.SEO}
	if page.SEO.Description == "" {
		page.SEO.Description = p.Excerpt
	}
	if page.SEO.Image == "" {
		page.SEO.Image = p.FeaturedImage
	}
	if len(page.SEO.Keywords) == 0 {
		page.SEO.Keywords = p.Tags
	}

	render := a.renderers.BlogPost
	f := r.facts
	return job{
		file:     fileFor(path),
		kind:     "post",
		page:     page,
		ogType:   "article",
		css:      rich.BlogPostCSS(),
		body:     func() string { return render(f, p) },
		priority: output.PriorityPost,
		category: "post",
		lastmod:  p.PublishedAt,
		desc:     page.SEO.Description,
	}
}

// customJob renders a page from its own sections. The page's FAQ
// sections feed FAQPage JSON-LD through the schema generator.
func (a *Assembler) customJob(r *run, page model.Page, path string) job {
	page.Slug = path
	render := a.renderers.Sections
	site := r.site
	sections := page.Sections
	prefix := layout.Prefix(path)
	j := job{
		file:     fileFor(path),
		kind:     "custom",
		page:     page,
		body:     func() string { return render(sections, site, prefix) },
		category: "custom",
		desc:     page.SEO.Description,
	}
	if a.opts.IncludeCustomInSitemap {
		j.priority = output.PriorityCustom
	}
	return j
}
