package rich

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// Locations renders the locations index body.
func Locations(f Facts) string {
	var b strings.Builder
	hero(&b, f, heroOpts{
		eyebrow: "Service Areas",
		title:   "Areas We Serve",
		lead:    fmt.Sprintf("%s provides %s across the region.", f.BusinessName, f.Vocab.Label),
	})
	openSection(&b, "section locations-index")
	if len(f.Locations) == 0 {
		fmt.Fprintf(&b, "    <p class=\"empty-state\">Call %s to find out if we serve your area.</p>\n", esc(f.BusinessName))
	} else {
		b.WriteString("    <div class=\"grid\">\n")
		for _, l := range f.Locations {
			desc := l.Description
			if desc == "" {
				desc = fmt.Sprintf("%s in %s and nearby neighborhoods.", Title(f.Vocab.Label), l.City)
			}
			fmt.Fprintf(&b, "      <a class=\"card location-card\" href=\"locations/%s.html\"><h3>%s</h3><p>%s</p></a>\n",
				esc(l.Slug), esc(l.DisplayName()), esc(desc))
		}
		b.WriteString("    </div>\n")
	}
	closeSection(&b)
	ctaBand(&b, f, "", "Not Sure If We Cover You?")
	return b.String()
}

// LocationPage renders locations/<slug>.html. Links are relative to the
// locations/ directory.
func LocationPage(f Facts, l model.Location) string {
	const prefix = "../"
	local := f
	local.City = l.City
	local.State = l.State

	var b strings.Builder
	label := Title(f.Vocab.Label)
	lead := l.Description
	if lead == "" {
		lead = fmt.Sprintf("Fast, reliable %s for %s residents and businesses.", f.Vocab.Label, l.City)
	}
	emergencyStrip(&b, local)
	hero(&b, local, heroOpts{
		eyebrow: f.BusinessName,
		title:   label + " in " + l.DisplayName(),
		lead:    lead,
		prefix:  prefix,
		badges:  true,
	})

	openSection(&b, "section local-intro")
	heading(&b, fmt.Sprintf("Trusted %s in %s", label, l.City), "")
	fmt.Fprintf(&b, "    <p>%s is proud to serve %s. Our %s know the area, from local building styles to the weather that puts them to the test.</p>\n",
		esc(f.BusinessName), esc(local.Area()), esc(f.Vocab.Trade))
	fmt.Fprintf(&b, "    <p>Whether it is a quick repair or a larger project, %s homeowners and businesses rely on us for honest advice and quality work.</p>\n", esc(l.City))
	closeSection(&b)

	if len(f.Services) > 0 {
		openSection(&b, "section section-alt local-services")
		heading(&b, "Services in "+l.City, "")
		b.WriteString("    <ul class=\"area-list\">\n")
		for _, s := range f.Services {
			fmt.Fprintf(&b, "      <li><a href=\"%sservices/%s.html\">%s in %s</a></li>\n", prefix, esc(s.Slug), esc(s.Name), esc(l.City))
		}
		b.WriteString("    </ul>\n")
		closeSection(&b)
	}

	checklist(&b, "symptoms", fmt.Sprintf("Common %s Problems in %s", label, l.City), "", f.Vocab.Symptoms)
	badgeGrid(&b, local)
	faqBlock(&b, fmt.Sprintf("%s FAQ", l.City), FAQs(local, ""))
	areasList(&b, f, prefix, "Nearby Areas", l.Slug)
	ctaBand(&b, local, prefix, fmt.Sprintf("Need Help in %s?", l.City))
	if stamp := f.lastUpdated(); stamp != "" {
		fmt.Fprintf(&b, "<div class=\"container\">%s</div>\n", stamp)
	}
	return b.String()
}
