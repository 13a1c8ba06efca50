// Package rich synthesizes long-form marketing page bodies for the fixed
// page archetypes directly from business facts.
//
// Every generator is deterministic. The only time-dependent output is the
// Facts.Now stamp rendered inside <time class="last-updated"> elements.
package rich

import (
	"html"
	"strings"
	"time"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/section"
)

// Facts are the business facts the generators draw on.
type Facts struct {
	BusinessName string
	Industry     string
	Tagline      string
	Description  string
	Phone        string
	Email        string
	Address      string
	Hours        string
	MapEmbedURL  string
	City         string
	State        string
	YearFounded  int
	Services     []model.Service
	Locations    []model.Location
	Posts        []model.BlogPost // published only, newest first
	Vocab        Vocabulary
	Now          time.Time
}

// FactsFrom extracts facts from a website. now is stamped into
// last-updated markers only.
func FactsFrom(site *model.Website, now time.Time) Facts {
	return Facts{
		BusinessName: site.BusinessName,
		Industry:     site.Industry,
		Tagline:      site.Tagline,
		Description:  site.Description,
		Phone:        site.Phone,
		Email:        site.Email,
		Address:      site.Address.OneLine(),
		Hours:        site.Hours,
		MapEmbedURL:  site.MapEmbedURL,
		City:         site.City(),
		State:        site.State(),
		YearFounded:  site.YearFounded,
		Services:     site.Services,
		Locations:    site.Locations,
		Posts:        site.PublishedPosts(),
		Vocab:        LookupVocabulary(site.Industry),
		Now:          now,
	}
}

// Area is the human description of where the business works.
func (f Facts) Area() string {
	switch {
	case f.City != "" && f.State != "":
		return f.City + ", " + f.State
	case f.City != "":
		return f.City
	default:
		return "your area"
	}
}

func (f Facts) cityOr(def string) string {
	if f.City != "" {
		return f.City
	}
	return def
}

// fill expands {business}, {city}, {area}, {label}, {trade}, {phone} and
// {service} placeholders in a vocabulary template.
func (f Facts) fill(tmpl, service string) string {
	if service == "" {
		service = f.Vocab.Label
	}
	phone := f.Phone
	if phone == "" {
		phone = "our office"
	}
	r := strings.NewReplacer(
		"{business}", f.BusinessName,
		"{city}", f.cityOr("the area"),
		"{area}", f.Area(),
		"{label}", f.Vocab.Label,
		"{trade}", f.Vocab.Trade,
		"{phone}", phone,
		"{service}", service,
	)
	return r.Replace(tmpl)
}

var esc = html.EscapeString

// callButton renders the phone call-to-action, or a contact link when no
// phone is known. prefix is the relative path back to the site root.
func (f Facts) callButton(class, prefix string) string {
	if f.Phone != "" {
		return `<a class="` + class + `" href="` + section.TelHref(f.Phone) + `">Call ` + esc(f.Phone) + `</a>`
	}
	return `<a class="` + class + `" href="` + prefix + `contact.html">Contact Us</a>`
}

// lastUpdated renders the time-dependent stamp.
func (f Facts) lastUpdated() string {
	if f.Now.IsZero() {
		return ""
	}
	return `<p class="last-updated">Last updated <time class="last-updated" datetime="` +
		f.Now.Format("2006-01-02") + `">` + f.Now.Format("January 2006") + `</time></p>`
}
