package section

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

func testSite() *model.Website {
	return &model.Website{
		BusinessName: "Reno Water Pros",
		Phone:        "(775) 555-0100",
		Services: []model.Service{
			{ID: "s1", Name: "Water Extraction", Slug: "water-extraction", Description: "Fast pump-out."},
			{ID: "s2", Name: "Mold Removal", Slug: "mold-removal"},
		},
		Locations: []model.Location{{ID: "l1", City: "Reno", State: "NV", Slug: "reno"}},
		BlogPosts: []model.BlogPost{
			{Title: "Leak Signs", Slug: "leak-signs", Status: model.PostPublished, PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Title: "Secret Draft", Slug: "secret-draft", Status: model.PostDraft},
		},
	}
}

func doc(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return d
}

func TestRender_EveryKnownTypeWithEmptyContent(t *testing.T) {
	site := testSite()
	for _, st := range model.SectionTypes {
		t.Run(string(st), func(t *testing.T) {
			s := model.PageSection{Type: st, Content: model.DecodeSectionContent(st, json.RawMessage(`{}`))}
			assert.NotPanics(t, func() { Render(s, site) })
		})
	}
}

func TestRender_NilContentDecodesEmpty(t *testing.T) {
	out := Render(model.PageSection{Type: model.SectionHero}, nil)
	assert.Contains(t, out, "<h1>Welcome</h1>")
}

func TestRender_HeroFallbacks(t *testing.T) {
	out := Render(model.PageSection{Type: model.SectionHero, Content: model.HeroContent{}}, testSite())
	d := doc(t, out)
	assert.Equal(t, "Welcome", d.Find("h1").Text())
	assert.Equal(t, 0, d.Find(".hero p").Length(), "absent subheadline must not render a paragraph")
	assert.Equal(t, 0, d.Find(".hero-actions").Length())
}

func TestRender_HeroActions(t *testing.T) {
	out := Render(model.PageSection{Content: model.HeroContent{
		Headline:         "Flooded?",
		CTAText:          "Get a quote",
		SecondaryCTAText: "Call now",
	}}, testSite())
	d := doc(t, out)
	links := d.Find(".hero-actions a")
	require.Equal(t, 2, links.Length())
	href, _ := links.Eq(0).Attr("href")
	assert.Equal(t, "contact.html", href)
	href, _ = links.Eq(1).Attr("href")
	assert.Equal(t, "tel:7755550100", href)
}

func TestRender_EscapesText(t *testing.T) {
	out := Render(model.PageSection{Content: model.HeroContent{Headline: "<script>x</script>"}}, nil)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_ServicesFilterAndLimit(t *testing.T) {
	site := testSite()

	out := Render(model.PageSection{Content: model.ServicesContent{ServiceIDs: []string{"s2"}}}, site)
	d := doc(t, out)
	assert.Equal(t, 1, d.Find(".service-card").Length())
	assert.Contains(t, d.Find(".service-card h3").Text(), "Mold Removal")

	out = Render(model.PageSection{Content: model.ServicesContent{Limit: 1}}, site)
	assert.Equal(t, 1, doc(t, out).Find(".service-card").Length())
	assert.Contains(t, out, `href="services/water-extraction.html"`)
}

func TestRender_BlogListSkipsDrafts(t *testing.T) {
	out := Render(model.PageSection{Content: model.BlogListContent{}}, testSite())
	assert.Contains(t, out, "blog/leak-signs.html")
	assert.NotContains(t, out, "secret-draft")
	assert.Contains(t, out, `<time datetime="2024-03-01">March 1, 2024</time>`)
}

func TestBlogList_EmptyState(t *testing.T) {
	out := BlogList("Blog", nil, "")
	assert.Contains(t, out, `class="empty-state"`)
}

func TestRender_UnknownIsEmpty(t *testing.T) {
	s := model.PageSection{Type: "carousel", Content: model.UnknownContent{Type: "carousel"}}
	assert.Equal(t, "", Render(s, testSite()))
}

func TestRender_InvalidShowsRawEditAffordance(t *testing.T) {
	s := model.PageSection{
		Type:    model.SectionFAQ,
		Content: model.DecodeSectionContent(model.SectionFAQ, json.RawMessage(`"{not json"`)),
	}
	out := Render(s, nil)
	d := doc(t, out)
	assert.Equal(t, 1, d.Find(".section-invalid").Length())
	assert.Contains(t, d.Find("strong").Text(), "Invalid")
	assert.Equal(t, "{not json", d.Find("pre").Text())
}

func TestRender_FAQOmittedWithoutItems(t *testing.T) {
	assert.Equal(t, "", Render(model.PageSection{Content: model.FAQContent{Title: "FAQ"}}, nil))

	out := Render(model.PageSection{Content: model.FAQContent{Items: []model.FAQItem{{Question: "Q?", Answer: "A."}}}}, nil)
	assert.Equal(t, "Q?", doc(t, out).Find("summary").Text())
}

func TestRender_TestimonialStars(t *testing.T) {
	out := Render(model.PageSection{Content: model.TestimonialsContent{Items: []model.Testimonial{
		{Quote: "Great", Author: "Dana", Rating: 4},
		{Quote: "Fine"},
	}}}, nil)
	d := doc(t, out)
	assert.Equal(t, 1, d.Find(".stars").Length())
	assert.Equal(t, "★★★★☆", d.Find(".stars").Text())
	assert.Equal(t, 1, d.Find("figcaption").Length())
}

func TestRender_CustomHTMLPassthrough(t *testing.T) {
	html := `<div class="promo"><b>50% off</b></div>`
	assert.Equal(t, html, Render(model.PageSection{Content: model.CustomHTMLContent{HTML: html}}, nil))
}

func TestEmbedURL(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch?v=abc123": "https://www.youtube.com/embed/abc123",
		"https://youtu.be/abc123":                "https://www.youtube.com/embed/abc123",
		"https://vimeo.com/42":                   "https://player.vimeo.com/video/42",
		"https://example.com/v.mp4":              "https://example.com/v.mp4",
	}
	for in, want := range tests {
		assert.Equal(t, want, EmbedURL(in), in)
	}
}

func TestRenderAll_SortsStably(t *testing.T) {
	sections := []model.PageSection{
		{Order: 2, Content: model.TextContent{Title: "C"}},
		{Order: 1, Content: model.TextContent{Title: "A"}},
		{Order: 1, Content: model.TextContent{Title: "B"}},
		{Order: 0, Content: model.UnknownContent{Type: "carousel"}},
	}
	out := RenderAll(sections, nil)
	var titles []string
	doc(t, out).Find("h2").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	assert.Equal(t, []string{"A", "B", "C"}, titles)
	assert.Equal(t, 2, strings.Count(out, "\n<section"))
	assert.Equal(t, out, RenderAll(sections, nil))
}

func TestTelHref(t *testing.T) {
	assert.Equal(t, "tel:+17755550100", TelHref("+1 (775) 555-0100"))
	assert.Equal(t, "tel:", TelHref(""))
}

func TestRenderAllAt_PrefixesInternalLinks(t *testing.T) {
	site := testSite()
	site.Phone = ""
	sections := []model.PageSection{
		{Type: model.SectionHero, Order: 1, Content: model.HeroContent{CTAText: "Get help"}},
		{Type: model.SectionServices, Order: 2, Content: model.ServicesContent{}},
		{Type: model.SectionLocations, Order: 3, Content: model.LocationsContent{}},
		{Type: model.SectionBlogList, Order: 4, Content: model.BlogListContent{}},
		{Type: model.SectionCTA, Order: 5, Content: model.CTAContent{}},
		{Type: model.SectionCTA, Order: 6, Content: model.CTAContent{ButtonLink: "https://book.example/"}},
	}

	d := doc(t, RenderAllAt(sections, site, "../"))
	var hrefs []string
	d.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
	})
	assert.Equal(t, []string{
		"../contact.html",
		"../services/water-extraction.html",
		"../services/water-extraction.html",
		"../services/mold-removal.html",
		"../services/mold-removal.html",
		"../locations/reno.html",
		"../blog/leak-signs.html",
		"../blog/leak-signs.html",
		"../contact.html",
		"https://book.example/",
	}, hrefs)

	root := doc(t, RenderAll(sections, site))
	href, _ := root.Find(".hero a").Attr("href")
	assert.Equal(t, "contact.html", href)
}
