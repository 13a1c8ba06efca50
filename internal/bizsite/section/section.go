// Package section renders typed page sections into HTML fragments.
package section

import (
	"fmt"
	"html"
	"net/url"
	"sort"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// Render renders one section. Unknown section types render to "".
func Render(s model.PageSection, site *model.Website) string {
	return s.ContentOrEmpty().Accept(&Renderer{Site: site})
}

// Sorted returns the sections in ascending order. Equal orders keep their
// input position.
func Sorted(sections []model.PageSection) []model.PageSection {
	out := make([]model.PageSection, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// RenderAll sorts the sections, renders each and joins them with newlines.
// Empty fragments are dropped. Links are relative to the site root.
func RenderAll(sections []model.PageSection, site *model.Website) string {
	return RenderAllAt(sections, site, "")
}

// RenderAllAt is RenderAll for a page below the site root. prefix is
// prepended to generated internal links ("../" for "guides/x.html").
func RenderAllAt(sections []model.PageSection, site *model.Website, prefix string) string {
	r := &Renderer{Site: site, Prefix: prefix}
	var parts []string
	for _, s := range Sorted(sections) {
		if frag := s.ContentOrEmpty().Accept(r); frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, "\n")
}

// Renderer implements model.SectionVisitor against a site context.
type Renderer struct {
	Site *model.Website
	// Prefix leads every generated internal link. Links supplied in
	// section content are used as written.
	Prefix string
}

var _ model.SectionVisitor = (*Renderer)(nil)

var esc = html.EscapeString

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func (r *Renderer) phone() string {
	if r.Site == nil {
		return ""
	}
	return r.Site.Phone
}

// TelHref turns a display phone number into a tel: link.
func TelHref(phone string) string {
	var b strings.Builder
	for i, c := range phone {
		if (c >= '0' && c <= '9') || (c == '+' && i == 0) {
			b.WriteRune(c)
		}
	}
	return "tel:" + b.String()
}

func (r *Renderer) VisitHero(c model.HeroContent) string {
	var b strings.Builder
	style := ""
	if c.BackgroundImage != "" {
		style = fmt.Sprintf(` style="background-image: linear-gradient(rgba(0,0,0,.55), rgba(0,0,0,.55)), url('%s')"`, esc(c.BackgroundImage))
	}
	fmt.Fprintf(&b, `<section class="hero"%s>`+"\n"+`  <div class="container">`+"\n", style)
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", esc(orDefault(c.Headline, "Welcome")))
	if c.Subheadline != "" {
		fmt.Fprintf(&b, "    <p>%s</p>\n", esc(c.Subheadline))
	}

	primaryLink := c.CTALink
	if primaryLink == "" && c.CTAText != "" {
		primaryLink = r.Prefix + "contact.html"
	}
	var actions []string
	if c.CTAText != "" {
		actions = append(actions, fmt.Sprintf(`<a class="btn btn-accent" href="%s">%s</a>`, esc(primaryLink), esc(c.CTAText)))
	}
	if c.SecondaryCTAText != "" {
		link := orDefault(c.SecondaryCTALink, TelHref(r.phone()))
		actions = append(actions, fmt.Sprintf(`<a class="btn btn-outline" href="%s">%s</a>`, esc(link), esc(c.SecondaryCTAText)))
	}
	if len(actions) > 0 {
		fmt.Fprintf(&b, "    <div class=\"hero-actions\">%s</div>\n", strings.Join(actions, ""))
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitServices(c model.ServicesContent) string {
	var services []model.Service
	if r.Site != nil {
		services = r.Site.Services
	}
	if len(c.ServiceIDs) > 0 {
		wanted := make(map[string]bool, len(c.ServiceIDs))
		for _, id := range c.ServiceIDs {
			wanted[id] = true
		}
		var picked []model.Service
		for _, s := range services {
			if wanted[s.ID] {
				picked = append(picked, s)
			}
		}
		services = picked
	}
	if c.Limit > 0 && len(services) > c.Limit {
		services = services[:c.Limit]
	}

	var b strings.Builder
	b.WriteString(`<section class="section services-grid" id="services">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "Our Services")))
	if c.Subtitle != "" {
		fmt.Fprintf(&b, "    <p class=\"section-subtitle\">%s</p>\n", esc(c.Subtitle))
	}
	if len(services) == 0 {
		b.WriteString("    <p class=\"empty-state\">Services coming soon.</p>\n")
	} else {
		b.WriteString("    <div class=\"grid\">\n")
		for _, s := range services {
			b.WriteString("      <article class=\"card service-card\">")
			if s.Icon != "" {
				fmt.Fprintf(&b, `<div class="icon">%s</div>`, esc(s.Icon))
			}
			href := r.Prefix + "services/" + esc(s.Slug) + ".html"
			fmt.Fprintf(&b, `<h3><a href="%s">%s</a></h3>`, href, esc(s.Name))
			if s.Description != "" {
				fmt.Fprintf(&b, "<p>%s</p>", esc(s.Description))
			}
			fmt.Fprintf(&b, `<a class="card-link" href="%s">Learn more &rarr;</a>`, href)
			b.WriteString("</article>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitAbout(c model.AboutContent) string {
	var b strings.Builder
	b.WriteString(`<section class="section about" id="about">` + "\n" + `  <div class="container">` + "\n")
	title := c.Title
	if title == "" && r.Site != nil {
		title = "About " + r.Site.BusinessName
	}
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(title, "About Us")))
	if c.Image != "" {
		fmt.Fprintf(&b, "    <img class=\"about-image\" src=\"%s\" alt=\"%s\" loading=\"lazy\">\n", esc(c.Image), esc(title))
	}
	if c.Body != "" {
		fmt.Fprintf(&b, "    <div class=\"about-body\">%s</div>\n", c.Body)
	}
	if len(c.Highlights) > 0 {
		b.WriteString("    <ul class=\"highlights\">\n")
		for _, h := range c.Highlights {
			fmt.Fprintf(&b, "      <li>%s</li>\n", esc(h))
		}
		b.WriteString("    </ul>\n")
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

var defaultFormFields = []model.FormField{
	{Name: "name", Label: "Name", Type: "text", Required: true},
	{Name: "phone", Label: "Phone", Type: "tel", Required: true},
	{Name: "email", Label: "Email", Type: "email"},
	{Name: "message", Label: "How can we help?", Type: "textarea"},
}

func (r *Renderer) VisitContact(c model.ContactContent) string {
	fields := c.Fields
	if len(fields) == 0 {
		fields = defaultFormFields
	}
	var b strings.Builder
	b.WriteString(`<section class="section contact" id="contact">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "Contact Us")))
	if c.Subtitle != "" {
		fmt.Fprintf(&b, "    <p class=\"section-subtitle\">%s</p>\n", esc(c.Subtitle))
	}
	if p := r.phone(); p != "" {
		fmt.Fprintf(&b, "    <p class=\"section-subtitle\">Prefer to talk? Call <a href=\"%s\">%s</a></p>\n", TelHref(p), esc(p))
	}
	b.WriteString("    <form class=\"contact-form\" data-contact-form>\n")
	for _, f := range fields {
		b.WriteString(renderField(f))
	}
	fmt.Fprintf(&b, "      <button class=\"btn btn-primary\" type=\"submit\">%s</button>\n", esc(orDefault(c.SubmitText, "Send Message")))
	b.WriteString("      <p class=\"form-status\" aria-live=\"polite\"></p>\n    </form>\n")
	if c.ShowMap && r.Site != nil && r.Site.MapEmbedURL != "" {
		fmt.Fprintf(&b, "    <div class=\"footer-map\"><iframe src=\"%s\" loading=\"lazy\" title=\"Map\"></iframe></div>\n", esc(r.Site.MapEmbedURL))
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func renderField(f model.FormField) string {
	label := orDefault(f.Label, f.Name)
	req := ""
	if f.Required {
		req = " required"
	}
	typ := orDefault(f.Type, "text")
	if typ == "textarea" {
		return fmt.Sprintf("      <label>%s<textarea name=\"%s\" rows=\"5\"%s></textarea></label>\n", esc(label), esc(f.Name), req)
	}
	return fmt.Sprintf("      <label>%s<input type=\"%s\" name=\"%s\"%s></label>\n", esc(label), esc(typ), esc(f.Name), req)
}

func (r *Renderer) VisitCTA(c model.CTAContent) string {
	var b strings.Builder
	b.WriteString(`<section class="cta-band">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2>%s</h2>\n", esc(orDefault(c.Headline, "Ready to get started?")))
	if c.Body != "" {
		fmt.Fprintf(&b, "    <p>%s</p>\n", esc(c.Body))
	}
	link := c.ButtonLink
	if link == "" {
		if p := r.phone(); p != "" {
			link = TelHref(p)
		} else {
			link = r.Prefix + "contact.html"
		}
	}
	fmt.Fprintf(&b, "    <a class=\"btn btn-accent\" href=\"%s\">%s</a>\n", esc(link), esc(orDefault(c.ButtonText, "Contact Us")))
	b.WriteString("  </div>\n</section>")
	return b.String()
}

// Stars renders a 0-5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func (r *Renderer) VisitTestimonials(c model.TestimonialsContent) string {
	var b strings.Builder
	b.WriteString(`<section class="section section-alt testimonials">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "What Our Customers Say")))
	if len(c.Items) == 0 {
		b.WriteString("    <p class=\"empty-state\">Reviews coming soon.</p>\n")
	} else {
		b.WriteString("    <div class=\"grid\">\n")
		for _, t := range c.Items {
			b.WriteString("      <figure class=\"card testimonial\">")
			if s := Stars(t.Rating); s != "" {
				fmt.Fprintf(&b, `<div class="stars" aria-label="%d out of 5 stars">%s</div>`, t.Rating, s)
			}
			fmt.Fprintf(&b, "<blockquote>%s</blockquote>", esc(t.Quote))
			if t.Author != "" {
				who := esc(t.Author)
				if t.Role != "" {
					who += ", " + esc(t.Role)
				}
				fmt.Fprintf(&b, "<figcaption>&mdash; %s</figcaption>", who)
			}
			b.WriteString("</figure>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitLocations(c model.LocationsContent) string {
	var locations []model.Location
	if r.Site != nil {
		locations = r.Site.Locations
	}
	var b strings.Builder
	b.WriteString(`<section class="section locations-list" id="locations">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "Areas We Serve")))
	if c.Subtitle != "" {
		fmt.Fprintf(&b, "    <p class=\"section-subtitle\">%s</p>\n", esc(c.Subtitle))
	}
	if len(locations) == 0 {
		b.WriteString("    <p class=\"empty-state\">Service areas coming soon.</p>\n")
	} else {
		b.WriteString("    <div class=\"grid\">\n")
		for _, l := range locations {
			fmt.Fprintf(&b, "      <a class=\"card location-card\" href=\"%slocations/%s.html\"><h3>%s</h3>", r.Prefix, esc(l.Slug), esc(l.DisplayName()))
			if l.Description != "" {
				fmt.Fprintf(&b, "<p>%s</p>", esc(l.Description))
			}
			b.WriteString("</a>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitFAQ(c model.FAQContent) string {
	if len(c.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section faq" id="faq">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "Frequently Asked Questions")))
	for _, item := range c.Items {
		fmt.Fprintf(&b, "    <details class=\"faq-item\"><summary>%s</summary><p>%s</p></details>\n", esc(item.Question), esc(item.Answer))
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitFeatures(c model.FeaturesContent) string {
	if len(c.Items) == 0 && c.Title == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section features">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(orDefault(c.Title, "Why Choose Us")))
	if c.Subtitle != "" {
		fmt.Fprintf(&b, "    <p class=\"section-subtitle\">%s</p>\n", esc(c.Subtitle))
	}
	if len(c.Items) > 0 {
		b.WriteString("    <div class=\"grid\">\n")
		for _, f := range c.Items {
			b.WriteString("      <div class=\"card feature\">")
			if f.Icon != "" {
				fmt.Fprintf(&b, `<div class="icon">%s</div>`, esc(f.Icon))
			}
			fmt.Fprintf(&b, "<h3>%s</h3>", esc(f.Title))
			if f.Description != "" {
				fmt.Fprintf(&b, "<p>%s</p>", esc(f.Description))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

var defaultBadges = []model.Badge{
	{Label: "Licensed & Insured", Icon: "✓"},
	{Label: "Locally Owned", Icon: "★"},
	{Label: "Satisfaction Guaranteed", Icon: "♥"},
}

func (r *Renderer) VisitTrustBadges(c model.TrustBadgesContent) string {
	badges := c.Badges
	if len(badges) == 0 {
		badges = defaultBadges
	}
	var b strings.Builder
	b.WriteString(`<section class="section trust-badges">` + "\n" + `  <div class="container">` + "\n")
	if c.Title != "" {
		fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(c.Title))
	}
	b.WriteString("    <div class=\"badges\">\n")
	for _, badge := range badges {
		b.WriteString("      <div class=\"badge\">")
		switch {
		case badge.Image != "":
			fmt.Fprintf(&b, `<img src="%s" alt="%s" height="32">`, esc(badge.Image), esc(badge.Label))
		case badge.Icon != "":
			fmt.Fprintf(&b, `<span class="icon">%s</span>`, esc(badge.Icon))
		}
		fmt.Fprintf(&b, "<span>%s</span></div>\n", esc(badge.Label))
	}
	b.WriteString("    </div>\n  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitBlogList(c model.BlogListContent) string {
	var posts []model.BlogPost
	if r.Site != nil {
		posts = r.Site.PublishedPosts()
	}
	if c.Limit > 0 && len(posts) > c.Limit {
		posts = posts[:c.Limit]
	}
	return BlogList(orDefault(c.Title, "Latest Articles"), posts, r.Prefix)
}

// BlogList renders a list of post cards, or an empty-state message when
// there are none. prefix is prepended to post links ("../" from subdirectories).
func BlogList(title string, posts []model.BlogPost, prefix string) string {
	var b strings.Builder
	b.WriteString(`<section class="section blog-list">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(title))
	if len(posts) == 0 {
		b.WriteString("    <p class=\"empty-state\">No posts yet. Check back soon for tips and news.</p>\n")
		b.WriteString("  </div>\n</section>")
		return b.String()
	}
	b.WriteString("    <div class=\"grid\">\n")
	for _, p := range posts {
		href := fmt.Sprintf("%sblog/%s.html", prefix, esc(p.Slug))
		b.WriteString("      <article class=\"card post-card\">")
		if p.FeaturedImage != "" {
			fmt.Fprintf(&b, `<a href="%s"><img src="%s" alt="%s" loading="lazy"></a>`, href, esc(p.FeaturedImage), esc(p.Title))
		}
		fmt.Fprintf(&b, `<h3><a href="%s">%s</a></h3>`, href, esc(p.Title))
		if meta := PostMeta(p); meta != "" {
			fmt.Fprintf(&b, `<p class="post-meta">%s</p>`, meta)
		}
		if p.Excerpt != "" {
			fmt.Fprintf(&b, "<p>%s</p>", esc(p.Excerpt))
		}
		fmt.Fprintf(&b, `<a class="card-link" href="%s">Read more &rarr;</a>`, href)
		b.WriteString("</article>\n")
	}
	b.WriteString("    </div>\n  </div>\n</section>")
	return b.String()
}

// PostMeta renders the "date · author" line of a post.
func PostMeta(p model.BlogPost) string {
	var parts []string
	if !p.PublishedAt.IsZero() {
		parts = append(parts, fmt.Sprintf(`<time datetime="%s">%s</time>`, p.PublishedAt.Format("2006-01-02"), p.PublishedAt.Format("January 2, 2006")))
	}
	if p.Author != "" {
		parts = append(parts, "By "+esc(p.Author))
	}
	return strings.Join(parts, " &middot; ")
}

func (r *Renderer) VisitCustomHTML(c model.CustomHTMLContent) string {
	return c.HTML
}

func (r *Renderer) VisitImage(c model.ImageContent) string {
	if c.Src == "" {
		return ""
	}
	img := fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy">`, esc(c.Src), esc(c.Alt))
	if c.Link != "" {
		img = fmt.Sprintf(`<a href="%s">%s</a>`, esc(c.Link), img)
	}
	var b strings.Builder
	b.WriteString(`<section class="section image-section">` + "\n" + `  <div class="container">` + "\n")
	fmt.Fprintf(&b, "    <figure class=\"media\">%s", img)
	if c.Caption != "" {
		fmt.Fprintf(&b, "<figcaption>%s</figcaption>", esc(c.Caption))
	}
	b.WriteString("</figure>\n  </div>\n</section>")
	return b.String()
}

// EmbedURL converts YouTube and Vimeo watch links to their embed form.
// Other URLs are returned unchanged.
func EmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return "https://www.youtube.com/embed/" + v
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case "vimeo.com":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return raw
}

func (r *Renderer) VisitVideo(c model.VideoContent) string {
	if c.URL == "" {
		return ""
	}
	title := orDefault(c.Title, "Video")
	var b strings.Builder
	b.WriteString(`<section class="section video-section">` + "\n" + `  <div class="container">` + "\n")
	if c.Title != "" {
		fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", esc(c.Title))
	}
	fmt.Fprintf(&b, "    <figure class=\"media\"><div class=\"video-wrapper\"><iframe src=\"%s\" title=\"%s\" loading=\"lazy\" allowfullscreen></iframe></div>", esc(EmbedURL(c.URL)), esc(title))
	if c.Caption != "" {
		fmt.Fprintf(&b, "<figcaption>%s</figcaption>", esc(c.Caption))
	}
	b.WriteString("</figure>\n  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitText(c model.TextContent) string {
	if c.Title == "" && c.Body == "" {
		return ""
	}
	class := "section text-block"
	if c.Align == "center" {
		class += " align-center"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<section class=\"%s\">\n  <div class=\"container\">\n", class)
	if c.Title != "" {
		fmt.Fprintf(&b, "    <h2>%s</h2>\n", esc(c.Title))
	}
	if c.Body != "" {
		fmt.Fprintf(&b, "    %s\n", c.Body)
	}
	b.WriteString("  </div>\n</section>")
	return b.String()
}

func (r *Renderer) VisitUnknown(model.UnknownContent) string {
	return ""
}

// VisitInvalid echoes the raw payload so an operator can fix it in place.
func (r *Renderer) VisitInvalid(c model.InvalidContent) string {
	return fmt.Sprintf(`<section class="section-invalid" data-section-type="%s">
  <p><strong>Invalid</strong> %s section content: %s</p>
  <pre contenteditable="true">%s</pre>
</section>`, esc(string(c.Type)), esc(string(c.Type)), esc(c.Err), esc(c.Raw))
}
