package rich

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

var titleCaser = cases.Title(language.English)

// Title title-cases a vocabulary label for headings.
func Title(s string) string {
	return titleCaser.String(s)
}

// FAQs returns the industry FAQ with placeholders filled. service names
// the service the questions are about; empty means the industry label.
func FAQs(f Facts, service string) []model.FAQItem {
	out := make([]model.FAQItem, len(f.Vocab.FAQs))
	for i, item := range f.Vocab.FAQs {
		out[i] = model.FAQItem{
			Question: f.fill(item.Question, service),
			Answer:   f.fill(item.Answer, service),
		}
	}
	return out
}

func openSection(b *strings.Builder, class string) {
	fmt.Fprintf(b, "<section class=\"%s\">\n  <div class=\"container\">\n", class)
}

func closeSection(b *strings.Builder) {
	b.WriteString("  </div>\n</section>\n")
}

func heading(b *strings.Builder, title, subtitle string) {
	fmt.Fprintf(b, "    <h2 class=\"section-title\">%s</h2>\n", esc(title))
	if subtitle != "" {
		fmt.Fprintf(b, "    <p class=\"section-subtitle\">%s</p>\n", esc(subtitle))
	}
}

func checklist(b *strings.Builder, class, title, subtitle string, items []string) {
	if len(items) == 0 {
		return
	}
	openSection(b, "section "+class)
	heading(b, title, subtitle)
	b.WriteString("    <ul class=\"checklist\">\n")
	for _, item := range items {
		fmt.Fprintf(b, "      <li>%s</li>\n", esc(item))
	}
	b.WriteString("    </ul>\n")
	closeSection(b)
}

func badgeGrid(b *strings.Builder, f Facts) {
	openSection(b, "section section-alt why-us")
	heading(b, "Why Choose "+f.BusinessName, "")
	b.WriteString("    <div class=\"grid\">\n")
	for _, badge := range f.Vocab.Badges {
		fmt.Fprintf(b, "      <div class=\"card why-card\"><span class=\"why-icon\">✓</span><h3>%s</h3></div>\n", esc(badge))
	}
	b.WriteString("    </div>\n")
	closeSection(b)
}

func processSteps(b *strings.Builder, f Facts) {
	openSection(b, "section process")
	heading(b, "How It Works", "A simple process from first call to finished job.")
	b.WriteString("    <ol class=\"steps\">\n")
	for i, step := range f.Vocab.Process {
		fmt.Fprintf(b, "      <li class=\"step\"><span class=\"step-number\">%d</span><h3>%s</h3><p>%s</p></li>\n",
			i+1, esc(step.Title), esc(step.Description))
	}
	b.WriteString("    </ol>\n")
	closeSection(b)
}

// servicesGrid links every service. prefix is the relative path to the site root.
func servicesGrid(b *strings.Builder, f Facts, prefix, title string, skip string) {
	var services []model.Service
	for _, s := range f.Services {
		if s.Slug != skip {
			services = append(services, s)
		}
	}
	if len(services) == 0 {
		return
	}
	openSection(b, "section rich-services")
	heading(b, title, "")
	b.WriteString("    <div class=\"grid\">\n")
	for _, s := range services {
		desc := s.Description
		if desc == "" {
			desc = fmt.Sprintf("Professional %s from the team at %s.", strings.ToLower(s.Name), f.BusinessName)
		}
		b.WriteString("      <article class=\"card service-card\">")
		if s.Icon != "" {
			fmt.Fprintf(b, `<div class="icon">%s</div>`, esc(s.Icon))
		}
		fmt.Fprintf(b, `<h3><a href="%sservices/%s.html">%s</a></h3><p>%s</p>`, prefix, esc(s.Slug), esc(s.Name), esc(desc))
		if s.Price != "" {
			fmt.Fprintf(b, `<p class="price">Starting at %s</p>`, esc(s.Price))
		}
		fmt.Fprintf(b, `<a class="card-link" href="%sservices/%s.html">Learn more &rarr;</a>`, prefix, esc(s.Slug))
		b.WriteString("</article>\n")
	}
	b.WriteString("    </div>\n")
	closeSection(b)
}

func areasList(b *strings.Builder, f Facts, prefix, title string, skip string) {
	var locations []model.Location
	for _, l := range f.Locations {
		if l.Slug != skip {
			locations = append(locations, l)
		}
	}
	if len(locations) == 0 {
		return
	}
	openSection(b, "section section-alt service-areas")
	heading(b, title, "")
	b.WriteString("    <ul class=\"area-list\">\n")
	for _, l := range locations {
		fmt.Fprintf(b, "      <li><a href=\"%slocations/%s.html\">%s</a></li>\n", prefix, esc(l.Slug), esc(l.DisplayName()))
	}
	b.WriteString("    </ul>\n")
	closeSection(b)
}

func faqBlock(b *strings.Builder, title string, items []model.FAQItem) {
	if len(items) == 0 {
		return
	}
	openSection(b, "section faq")
	heading(b, title, "")
	for _, item := range items {
		fmt.Fprintf(b, "    <details class=\"faq-item\"><summary>%s</summary><p>%s</p></details>\n", esc(item.Question), esc(item.Answer))
	}
	closeSection(b)
}

func recentPosts(b *strings.Builder, f Facts, prefix string, limit int) {
	posts := f.Posts
	if len(posts) == 0 {
		return
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	b.WriteString(section.BlogList("Tips & News", posts, prefix))
	b.WriteString("\n")
}

func ctaBand(b *strings.Builder, f Facts, prefix, headline string) {
	b.WriteString("<section class=\"cta-band\">\n  <div class=\"container\">\n")
	fmt.Fprintf(b, "    <h2>%s</h2>\n", esc(headline))
	if f.Vocab.Emergency {
		fmt.Fprintf(b, "    <p>%s answers calls 24 hours a day, 7 days a week.</p>\n", esc(f.BusinessName))
	} else {
		fmt.Fprintf(b, "    <p>Get a free, no-obligation estimate from %s.</p>\n", esc(f.BusinessName))
	}
	fmt.Fprintf(b, "    <div class=\"hero-actions\">%s<a class=\"btn btn-outline\" href=\"%scontact.html\">Request an Estimate</a></div>\n",
		f.callButton("btn btn-accent", prefix), prefix)
	b.WriteString("  </div>\n</section>\n")
}

type heroOpts struct {
	eyebrow string
	title   string
	lead    string
	prefix  string
	badges  bool
}

func hero(b *strings.Builder, f Facts, o heroOpts) {
	b.WriteString("<section class=\"rich-hero\">\n  <div class=\"container\">\n")
	if o.eyebrow != "" {
		fmt.Fprintf(b, "    <span class=\"eyebrow\">%s</span>\n", esc(o.eyebrow))
	}
	fmt.Fprintf(b, "    <h1>%s</h1>\n", esc(o.title))
	if o.lead != "" {
		fmt.Fprintf(b, "    <p class=\"lead\">%s</p>\n", esc(o.lead))
	}
	fmt.Fprintf(b, "    <div class=\"hero-actions\">%s<a class=\"btn btn-outline\" href=\"%scontact.html\">Free Estimate</a></div>\n",
		f.callButton("btn btn-accent", o.prefix), o.prefix)
	if o.badges && len(f.Vocab.Badges) > 0 {
		badges := f.Vocab.Badges
		if len(badges) > 3 {
			badges = badges[:3]
		}
		b.WriteString("    <ul class=\"hero-badges\">")
		for _, badge := range badges {
			fmt.Fprintf(b, "<li>%s</li>", esc(badge))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("  </div>\n</section>\n")
}

// emergencyStrip is shown on industries with round-the-clock response.
func emergencyStrip(b *strings.Builder, f Facts) {
	if !f.Vocab.Emergency || f.Phone == "" {
		return
	}
	fmt.Fprintf(b, "<div class=\"emergency-strip\"><div class=\"container\">24/7 emergency service in %s &middot; <a href=\"%s\">%s</a></div></div>\n",
		esc(f.Area()), section.TelHref(f.Phone), esc(f.Phone))
}
