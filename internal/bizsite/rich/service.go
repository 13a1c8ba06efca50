package rich

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// ServicePage renders services/<slug>.html. Links are relative to the
// services/ directory.
func ServicePage(f Facts, s model.Service) string {
	const prefix = "../"
	var b strings.Builder

	lead := s.Description
	if lead == "" {
		lead = fmt.Sprintf("Professional %s for homes and businesses in %s.", strings.ToLower(s.Name), f.Area())
	}
	emergencyStrip(&b, f)
	hero(&b, f, heroOpts{
		eyebrow: Title(f.Vocab.Label),
		title:   s.Name + " in " + f.Area(),
		lead:    lead,
		prefix:  prefix,
		badges:  true,
	})

	openSection(&b, "section service-detail")
	b.WriteString("    <div class=\"detail-grid\">\n      <div class=\"detail-body\">\n")
	fmt.Fprintf(&b, "        <h2>Expert %s From %s</h2>\n", esc(s.Name), esc(f.BusinessName))
	fmt.Fprintf(&b, "        <p>%s provides %s throughout %s. Our %s arrive with the right equipment, diagnose the problem accurately and complete the work to a high standard.</p>\n",
		esc(f.BusinessName), esc(strings.ToLower(s.Name)), esc(f.Area()), esc(f.Vocab.Trade))
	fmt.Fprintf(&b, "        <p>Every %s job starts with a clear explanation of what we found and what it will cost. No surprises and no pressure.</p>\n",
		esc(strings.ToLower(s.Name)))
	b.WriteString("      </div>\n      <aside class=\"detail-aside card\">\n")
	fmt.Fprintf(&b, "        <h3>%s</h3>\n", esc(s.Name))
	if s.Price != "" {
		fmt.Fprintf(&b, "        <p class=\"price\">Starting at %s</p>\n", esc(s.Price))
	}
	b.WriteString("        <ul class=\"checklist\">")
	for _, badge := range f.Vocab.Badges {
		fmt.Fprintf(&b, "<li>%s</li>", esc(badge))
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "        %s\n", f.callButton("btn btn-primary btn-block", prefix))
	b.WriteString("      </aside>\n    </div>\n")
	closeSection(&b)

	checklist(&b, "symptoms", "Signs You Need "+s.Name, "", f.Vocab.Symptoms)
	checklist(&b, "causes section-alt", "Common Causes", "", f.Vocab.Causes)
	processSteps(&b, f)
	areasList(&b, f, prefix, s.Name+" Service Areas", "")
	faqBlock(&b, s.Name+" FAQ", FAQs(f, strings.ToLower(s.Name)))
	servicesGrid(&b, f, prefix, "Related Services", s.Slug)
	ctaBand(&b, f, prefix, "Need "+s.Name+"?")
	if stamp := f.lastUpdated(); stamp != "" {
		fmt.Fprintf(&b, "<div class=\"container\">%s</div>\n", stamp)
	}
	return b.String()
}
