package rich

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

// BlogIndex renders blog.html. With no published posts it renders an
// empty-state message.
func BlogIndex(f Facts) string {
	var b strings.Builder
	b.WriteString("<section class=\"rich-hero rich-hero-compact\">\n  <div class=\"container\">\n")
	fmt.Fprintf(&b, "    <h1>%s Blog</h1>\n", esc(f.BusinessName))
	fmt.Fprintf(&b, "    <p class=\"lead\">%s tips, news and advice for %s.</p>\n", esc(Title(f.Vocab.Label)), esc(f.Area()))
	b.WriteString("  </div>\n</section>\n")
	b.WriteString(section.BlogList("Latest Articles", f.Posts, ""))
	b.WriteString("\n")
	return b.String()
}

// BlogPostPage renders blog/<slug>.html. The post body is trusted HTML.
func BlogPostPage(f Facts, p model.BlogPost) string {
	const prefix = "../"
	var b strings.Builder
	b.WriteString("<article class=\"post\">\n  <div class=\"container container-narrow\">\n")
	b.WriteString("    <header class=\"post-header\">\n")
	fmt.Fprintf(&b, "      <h1>%s</h1>\n", esc(p.Title))
	if meta := section.PostMeta(p); meta != "" {
		fmt.Fprintf(&b, "      <p class=\"post-meta\">%s</p>\n", meta)
	}
	b.WriteString("    </header>\n")
	if p.FeaturedImage != "" {
		fmt.Fprintf(&b, "    <img class=\"post-image\" src=\"%s\" alt=\"%s\">\n", esc(p.FeaturedImage), esc(p.Title))
	}
	fmt.Fprintf(&b, "    <div class=\"post-body\">\n%s\n    </div>\n", p.Content)
	if len(p.Tags) > 0 {
		b.WriteString("    <ul class=\"post-tags\">")
		for _, tag := range p.Tags {
			fmt.Fprintf(&b, "<li>%s</li>", esc(tag))
		}
		b.WriteString("</ul>\n")
	}
	fmt.Fprintf(&b, "    <p><a href=\"%sblog.html\">&larr; Back to all articles</a></p>\n", prefix)
	b.WriteString("  </div>\n</article>\n")

	var related []model.BlogPost
	for _, other := range f.Posts {
		if other.Slug != p.Slug && len(related) < 2 {
			related = append(related, other)
		}
	}
	if len(related) > 0 {
		b.WriteString(section.BlogList("More Articles", related, prefix))
		b.WriteString("\n")
	}
	ctaBand(&b, f, prefix, "Questions? Talk to "+f.BusinessName)
	return b.String()
}
