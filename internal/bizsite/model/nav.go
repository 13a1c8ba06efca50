package model

// Link is a navigation entry. Path is relative to the site root without
// a file extension; the home page has an empty path.
type Link struct {
	Label string
	Path  string
}

// NavLinks returns the top-level navigation shared by the header, the
// footer quick links and the site navigation schema. Published custom
// pages follow the core pages in their navigation order.
func (w *Website) NavLinks() []Link {
	links := []Link{
		{Label: "Home", Path: ""},
		{Label: "About", Path: "about"},
		{Label: "Services", Path: "services"},
	}
	if _, ok := w.PageByType(PageLocations); ok {
		links = append(links, Link{Label: "Locations", Path: "locations"})
	}
	links = append(links, Link{Label: "Blog", Path: "blog"}, Link{Label: "Contact", Path: "contact"})

	for _, p := range NavPages(w.Pages) {
		if p.Type.IsArchetype() || p.Slug == "" {
			continue
		}
		links = append(links, Link{Label: p.Title, Path: p.Slug})
	}
	return links
}
