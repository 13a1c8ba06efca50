package export

import (
	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/output"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

// Strategy selects how the document for a page type is produced.
type Strategy int

const (
	// StrategySections renders the page's own sections. Used for custom
	// pages and any page type without a rich generator.
	StrategySections Strategy = iota
	// StrategyRich always regenerates the page with its rich generator,
	// whether or not the website lists such a page.
	StrategyRich
	// StrategyRichIfListed uses the rich generator only when the website
	// lists a published page of that type.
	StrategyRichIfListed
	// StrategyCollection pages come from the services, locations and blog
	// post collections. Entries of these types in website.pages produce no
	// file of their own.
	StrategyCollection
)

func (s Strategy) String() string {
	switch s {
	case StrategyRich:
		return "rich"
	case StrategyRichIfListed:
		return "rich-if-listed"
	case StrategyCollection:
		return "collection"
	}
	return "sections"
}

// Strategies is the single rule deciding which renderer owns each page
// type. The rich path takes precedence over website.pages for the core
// archetypes: their sections are never rendered.
var Strategies = map[model.PageType]Strategy{
	model.PageHome:          StrategyRich,
	model.PageAbout:         StrategyRich,
	model.PageServices:      StrategyRich,
	model.PageContact:       StrategyRich,
	model.PageBlog:          StrategyRich,
	model.PageLocations:     StrategyRichIfListed,
	model.PageServiceSingle: StrategyCollection,
	model.PageLocation:      StrategyCollection,
	model.PageBlogPost:      StrategyCollection,
	model.PageCustom:        StrategySections,
}

// StrategyFor looks up t in Strategies. Unknown types use the section
// renderer.
func StrategyFor(t model.PageType) Strategy {
	if s, ok := Strategies[t]; ok {
		return s
	}
	return StrategySections
}

// Renderers are the body generators the assembler calls. They are passed
// in rather than imported at call time so tests and embedders can swap
// any of them.
type Renderers struct {
	// Sections renders a custom page. prefix leads internal links from the
	// page's directory back to the site root.
	Sections     func(sections []model.PageSection, site *model.Website, prefix string) string
	Home         func(rich.Facts) string
	About        func(rich.Facts) string
	Services     func(rich.Facts) string
	Contact      func(rich.Facts) string
	Locations    func(rich.Facts) string
	BlogIndex    func(rich.Facts) string
	ServicePage  func(rich.Facts, model.Service) string
	LocationPage func(rich.Facts, model.Location) string
	BlogPost     func(rich.Facts, model.BlogPost) string
}

// DefaultRenderers wires the section renderer and the rich generators.
func DefaultRenderers() Renderers {
	return Renderers{
		Sections:     section.RenderAllAt,
		Home:         rich.Home,
		About:        rich.About,
		Services:     rich.Services,
		Contact:      rich.Contact,
		Locations:    rich.Locations,
		BlogIndex:    rich.BlogIndex,
		ServicePage:  rich.ServicePage,
		LocationPage: rich.LocationPage,
		BlogPost:     rich.BlogPostPage,
	}
}

// withDefaults fills unset renderers from DefaultRenderers.
func (r Renderers) withDefaults() Renderers {
	d := DefaultRenderers()
	if r.Sections == nil {
		r.Sections = d.Sections
	}
	if r.Home == nil {
		r.Home = d.Home
	}
	if r.About == nil {
		r.About = d.About
	}
	if r.Services == nil {
		r.Services = d.Services
	}
	if r.Contact == nil {
		r.Contact = d.Contact
	}
	if r.Locations == nil {
		r.Locations = d.Locations
	}
	if r.BlogIndex == nil {
		r.BlogIndex = d.BlogIndex
	}
	if r.ServicePage == nil {
		r.ServicePage = d.ServicePage
	}
	if r.LocationPage == nil {
		r.LocationPage = d.LocationPage
	}
	if r.BlogPost == nil {
		r.BlogPost = d.BlogPost
	}
	return r
}

// archetype describes one rich page that is not backed by a collection.
type archetype struct {
	typ      model.PageType
	path     string
	title    string
	priority string
	category string
	render   func(Renderers) func(rich.Facts) string
	css      func() string
	// faqs marks pages whose body renders rich.FAQs(f, "").
	faqs bool
}

var (
	coreArchetypes = []archetype{
		{model.PageHome, "", "Home", output.PriorityHome, "home", func(r Renderers) func(rich.Facts) string { return r.Home }, rich.HomeCSS, true},
		{model.PageAbout, "about", "About Us", output.PriorityAbout, "about", func(r Renderers) func(rich.Facts) string { return r.About }, rich.AboutCSS, false},
		{model.PageServices, "services", "Our Services", output.PriorityServices, "services", func(r Renderers) func(rich.Facts) string { return r.Services }, rich.ServicesCSS, true},
		{model.PageContact, "contact", "Contact Us", output.PriorityContact, "contact", func(r Renderers) func(rich.Facts) string { return r.Contact }, rich.ContactCSS, false},
	}
	blogArchetype      = archetype{model.PageBlog, "blog", "Blog", output.PriorityBlog, "blog", func(r Renderers) func(rich.Facts) string { return r.BlogIndex }, rich.BlogIndexCSS, false}
	locationsArchetype = archetype{model.PageLocations, "locations", "Service Areas", output.PriorityCustom, "custom", func(r Renderers) func(rich.Facts) string { return r.Locations }, rich.LocationsCSS, false}
)
