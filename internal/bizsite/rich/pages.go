package rich

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

// Home renders the home page body.
func Home(f Facts) string {
	var b strings.Builder
	label := Title(f.Vocab.Label)

	lead := f.Tagline
	if lead == "" {
		lead = fmt.Sprintf("Trusted %s for homes and businesses in %s.", f.Vocab.Label, f.Area())
	}
	emergencyStrip(&b, f)
	hero(&b, f, heroOpts{
		eyebrow: label + " in " + f.Area(),
		title:   f.BusinessName,
		lead:    lead,
		badges:  true,
	})

	openSection(&b, "section intro")
	heading(&b, fmt.Sprintf("Your Local %s Experts", label), "")
	if f.Description != "" {
		fmt.Fprintf(&b, "    <p>%s</p>\n", esc(f.Description))
	}
	fmt.Fprintf(&b, "    <p>When you need %s in %s, you want %s who show up on time, explain the work clearly and stand behind the results. That is what %s delivers on every job.</p>\n",
		esc(f.Vocab.Label), esc(f.cityOr("your community")), esc(f.Vocab.Trade), esc(f.BusinessName))
	if f.YearFounded > 0 {
		fmt.Fprintf(&b, "    <p class=\"since\">Proudly serving %s since %d.</p>\n", esc(f.Area()), f.YearFounded)
	}
	closeSection(&b)

	servicesGrid(&b, f, "", "Our Services", "")
	checklist(&b, "symptoms", "Signs You Need "+label, "If you notice any of these, it is time to call a professional.", f.Vocab.Symptoms)
	badgeGrid(&b, f)
	processSteps(&b, f)
	areasList(&b, f, "", "Areas We Serve", "")
	recentPosts(&b, f, "", 3)
	faqBlock(&b, "Frequently Asked Questions", FAQs(f, ""))
	ctaBand(&b, f, "", "Ready to Get Started?")
	return b.String()
}

// About renders the about page body.
func About(f Facts) string {
	var b strings.Builder
	hero(&b, f, heroOpts{
		eyebrow: "About Us",
		title:   "About " + f.BusinessName,
		lead:    fmt.Sprintf("Local %s you can count on in %s.", f.Vocab.Trade, f.Area()),
	})

	openSection(&b, "section story")
	heading(&b, "Our Story", "")
	if f.Description != "" {
		fmt.Fprintf(&b, "    <p>%s</p>\n", esc(f.Description))
	}
	if f.YearFounded > 0 {
		fmt.Fprintf(&b, "    <p>%s was founded in %d with a simple goal: bring honest, high-quality %s to our neighbors in %s.</p>\n",
			esc(f.BusinessName), f.YearFounded, esc(f.Vocab.Label), esc(f.cityOr("our community")))
	} else {
		fmt.Fprintf(&b, "    <p>%s was built on a simple goal: bring honest, high-quality %s to our neighbors in %s.</p>\n",
			esc(f.BusinessName), esc(f.Vocab.Label), esc(f.cityOr("our community")))
	}
	fmt.Fprintf(&b, "    <p>Our %s treat every property as if it were their own. We explain what we find, recommend only what you need and finish the job right the first time.</p>\n",
		esc(f.Vocab.Trade))
	closeSection(&b)

	openSection(&b, "section section-alt values")
	heading(&b, "What We Stand For", "")
	b.WriteString("    <div class=\"grid\">\n")
	for _, v := range []struct{ title, body string }{
		{"Honesty", "Clear communication and upfront pricing on every job."},
		{"Craftsmanship", "Trained professionals who take pride in their work."},
		{"Community", fmt.Sprintf("Locally owned and invested in %s.", f.cityOr("our community"))},
	} {
		fmt.Fprintf(&b, "      <div class=\"card value-card\"><h3>%s</h3><p>%s</p></div>\n", esc(v.title), esc(v.body))
	}
	b.WriteString("    </div>\n")
	closeSection(&b)

	badgeGrid(&b, f)
	areasList(&b, f, "", "Proudly Serving", "")
	ctaBand(&b, f, "", "Let's Work Together")
	return b.String()
}

// Services renders the services index body.
func Services(f Facts) string {
	var b strings.Builder
	hero(&b, f, heroOpts{
		eyebrow: Title(f.Vocab.Label),
		title:   "Our Services",
		lead:    fmt.Sprintf("Complete %s from %s, serving %s.", f.Vocab.Label, f.BusinessName, f.Area()),
	})
	if len(f.Services) == 0 {
		openSection(&b, "section")
		fmt.Fprintf(&b, "    <p class=\"empty-state\">Contact %s to learn about the services we offer.</p>\n", esc(f.BusinessName))
		closeSection(&b)
	} else {
		servicesGrid(&b, f, "", "What We Do", "")
	}
	checklist(&b, "causes", "Problems We Solve", "", f.Vocab.Causes)
	processSteps(&b, f)
	faqBlock(&b, "Service Questions", FAQs(f, ""))
	ctaBand(&b, f, "", "Need Help Today?")
	return b.String()
}

// Contact renders the contact page body.
func Contact(f Facts) string {
	var b strings.Builder
	hero(&b, f, heroOpts{
		eyebrow: "Contact",
		title:   "Contact " + f.BusinessName,
		lead:    "Tell us about your project and we will get back to you quickly.",
	})

	openSection(&b, "section contact-layout")
	b.WriteString("    <div class=\"contact-grid\">\n      <div class=\"contact-info\">\n")
	b.WriteString("        <h2>Get In Touch</h2>\n")
	if f.Phone != "" {
		fmt.Fprintf(&b, "        <p class=\"contact-line\"><strong>Phone:</strong> <a href=\"%s\">%s</a></p>\n", section.TelHref(f.Phone), esc(f.Phone))
	}
	if f.Email != "" {
		fmt.Fprintf(&b, "        <p class=\"contact-line\"><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>\n", esc(f.Email), esc(f.Email))
	}
	if f.Address != "" {
		fmt.Fprintf(&b, "        <p class=\"contact-line\"><strong>Address:</strong> %s</p>\n", esc(f.Address))
	}
	if f.Hours != "" {
		fmt.Fprintf(&b, "        <p class=\"contact-line\"><strong>Hours:</strong> %s</p>\n", esc(f.Hours))
	}
	if f.Vocab.Emergency {
		b.WriteString("        <p class=\"emergency-note\">Emergency? Call now. We answer 24/7.</p>\n")
	}
	b.WriteString("      </div>\n")

	b.WriteString("      <form class=\"contact-form\" data-contact-form>\n")
	b.WriteString("        <label>Name<input type=\"text\" name=\"name\" required></label>\n")
	b.WriteString("        <label>Phone<input type=\"tel\" name=\"phone\" required></label>\n")
	b.WriteString("        <label>Email<input type=\"email\" name=\"email\"></label>\n")
	if len(f.Services) > 0 {
		b.WriteString("        <label>Service<select name=\"service\"><option value=\"\">Select a service</option>")
		for _, s := range f.Services {
			fmt.Fprintf(&b, "<option value=\"%s\">%s</option>", esc(s.Slug), esc(s.Name))
		}
		b.WriteString("</select></label>\n")
	}
	b.WriteString("        <label>Message<textarea name=\"message\" rows=\"5\"></textarea></label>\n")
	b.WriteString("        <button class=\"btn btn-primary\" type=\"submit\">Send Message</button>\n")
	b.WriteString("        <p class=\"form-status\" aria-live=\"polite\"></p>\n      </form>\n    </div>\n")
	closeSection(&b)

	if f.MapEmbedURL != "" {
		openSection(&b, "section map")
		fmt.Fprintf(&b, "    <div class=\"footer-map\"><iframe src=\"%s\" loading=\"lazy\" title=\"Map to %s\"></iframe></div>\n", esc(f.MapEmbedURL), esc(f.BusinessName))
		closeSection(&b)
	}
	areasList(&b, f, "", "Areas We Serve", "")
	return b.String()
}
