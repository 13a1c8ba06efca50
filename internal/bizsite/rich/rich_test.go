package rich

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testFacts(industry string) Facts {
	site := &model.Website{
		BusinessName: "Reno Water Pros",
		Industry:     industry,
		Phone:        "(775) 555-0100",
		Address:      &model.Address{Street: "1 Main St", City: "Reno", State: "NV"},
		Services:     []model.Service{{ID: "s1", Name: "Water Extraction", Slug: "water-extraction"}, {ID: "s2", Name: "Mold Removal", Slug: "mold-removal"}},
		Locations:    []model.Location{{ID: "l1", City: "Reno", State: "NV", Slug: "reno"}, {ID: "l2", City: "Sparks", State: "NV", Slug: "sparks"}},
		BlogPosts: []model.BlogPost{
			{Title: "Leak Signs", Slug: "leak-signs", Status: model.PostPublished, Content: "<p>Body</p>"},
			{Title: "Draft", Slug: "draft", Status: model.PostDraft},
		},
	}
	return FactsFrom(site, fixedNow)
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return d
}

type generator struct {
	name string
	gen  func(Facts) string
	css  func() string
}

func generators() []generator {
	return []generator{
		{"home", Home, HomeCSS},
		{"about", About, AboutCSS},
		{"services", Services, ServicesCSS},
		{"contact", Contact, ContactCSS},
		{"locations", Locations, LocationsCSS},
		{"blog", BlogIndex, BlogIndexCSS},
		{"service", func(f Facts) string { return ServicePage(f, f.Services[0]) }, ServicePageCSS},
		{"location", func(f Facts) string { return LocationPage(f, f.Locations[0]) }, LocationPageCSS},
		{"post", func(f Facts) string { return BlogPostPage(f, f.Posts[0]) }, BlogPostCSS},
	}
}

func TestGenerators_UnknownIndustryFallsBack(t *testing.T) {
	f := testFacts("underwater-basket-weaving")
	require.Equal(t, DefaultVocabulary.Label, f.Vocab.Label)
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			out := g.gen(f)
			d := parse(t, out)
			text := strings.TrimSpace(d.Text())
			assert.NotEmpty(t, text)
			assert.NotContains(t, out, "{business}")
			assert.NotContains(t, out, "{city}")
			assert.NotEmpty(t, g.css())
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			assert.Equal(t, g.gen(testFacts("plumbing")), g.gen(testFacts("plumbing")))
		})
	}
}

func TestGenerators_TimeOnlyInLastUpdated(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			a := testFacts("roofing")
			b := testFacts("roofing")
			b.Now = fixedNow.AddDate(1, 1, 0)

			da := parse(t, g.gen(a))
			db := parse(t, g.gen(b))
			da.Find(".last-updated").Remove()
			db.Find(".last-updated").Remove()

			ha, err := da.Html()
			require.NoError(t, err)
			hb, err := db.Html()
			require.NoError(t, err)
			assert.Equal(t, ha, hb)
		})
	}
}

func TestHome_UsesVocabulary(t *testing.T) {
	f := testFacts("water-damage")
	d := parse(t, Home(f))
	assert.Equal(t, "Reno Water Pros", d.Find("h1").Text())
	assert.Contains(t, d.Find(".symptoms").Text(), "Standing water")
	assert.Equal(t, 1, d.Find(".emergency-strip").Length())
	assert.Equal(t, 2, d.Find(".service-card").Length())
	href, _ := d.Find(".service-card h3 a").First().Attr("href")
	assert.Equal(t, "services/water-extraction.html", href)
	assert.Contains(t, d.Find(".faq").Text(), "How fast can Reno Water Pros respond to water damage in Reno?")
}

func TestServicePage_RelativeLinksAndStamp(t *testing.T) {
	f := testFacts("water-damage")
	d := parse(t, ServicePage(f, f.Services[0]))
	assert.Equal(t, "Water Extraction in Reno, NV", d.Find(".rich-hero h1").Text())

	d.Find(".related-services a, .rich-services a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.True(t, strings.HasPrefix(href, "../services/"), href)
		assert.NotContains(t, href, "water-extraction")
	})
	stamp, ok := d.Find("time.last-updated").Attr("datetime")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", stamp)
}

func TestServicePage_NoClockNoStamp(t *testing.T) {
	f := testFacts("hvac")
	f.Now = time.Time{}
	assert.NotContains(t, ServicePage(f, f.Services[0]), "last-updated")
}

func TestLocationPage_UsesLocationCity(t *testing.T) {
	f := testFacts("plumbing")
	d := parse(t, LocationPage(f, f.Locations[1]))
	assert.Equal(t, "Plumbing in Sparks, NV", d.Find(".rich-hero h1").Text())
	assert.Contains(t, d.Find(".faq").Text(), "emergency plumbing in Sparks")

	var nearby []string
	d.Find(".service-areas a").Each(func(_ int, s *goquery.Selection) {
		nearby = append(nearby, s.Text())
	})
	assert.Equal(t, []string{"Reno, NV"}, nearby)
}

func TestBlogIndex_EmptyState(t *testing.T) {
	f := testFacts("cleaning")
	f.Posts = nil
	d := parse(t, BlogIndex(f))
	assert.Equal(t, 1, d.Find(".empty-state").Length())
}

func TestBlogIndex_PublishedOnly(t *testing.T) {
	out := BlogIndex(testFacts("cleaning"))
	assert.Contains(t, out, "blog/leak-signs.html")
	assert.NotContains(t, out, "blog/draft.html")
}

func TestBlogPostPage(t *testing.T) {
	f := testFacts("cleaning")
	d := parse(t, BlogPostPage(f, f.Posts[0]))
	assert.Equal(t, "Leak Signs", d.Find(".post-header h1").Text())
	assert.Equal(t, "Body", d.Find(".post-body p").Text())
	href, _ := d.Find(`a[href="../blog.html"]`).Attr("href")
	assert.Equal(t, "../blog.html", href)
}

func TestContact_ServiceOptions(t *testing.T) {
	d := parse(t, Contact(testFacts("plumbing")))
	assert.Equal(t, 3, d.Find("select[name=service] option").Length())
	assert.Equal(t, 1, d.Find("form[data-contact-form]").Length())
}

func TestLookupVocabulary(t *testing.T) {
	assert.Equal(t, "plumbing", LookupVocabulary("Plumbing").Label)
	assert.Equal(t, "plumbing", LookupVocabulary("plumber").Label)
	assert.Equal(t, "water damage restoration", LookupVocabulary("Water Damage Restoration").Label)
	assert.Equal(t, DefaultVocabulary.Label, LookupVocabulary("").Label)
}

func TestVocabularies_Complete(t *testing.T) {
	for _, id := range Industries() {
		v := LookupVocabulary(id)
		assert.NotEmpty(t, v.Label, id)
		assert.NotEmpty(t, v.Trade, id)
		assert.NotEmpty(t, v.Symptoms, id)
		assert.NotEmpty(t, v.Causes, id)
		assert.NotEmpty(t, v.Badges, id)
		assert.NotEmpty(t, v.Process, id)
		assert.NotEmpty(t, v.FAQs, id)
	}
}

func TestFAQs_FillsPlaceholders(t *testing.T) {
	f := testFacts("roofing")
	items := FAQs(f, "roof repair")
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotContains(t, item.Question+item.Answer, "{")
	}
	assert.Contains(t, items[2].Question, "roof repair")
}

func TestArea(t *testing.T) {
	assert.Equal(t, "Reno, NV", Facts{City: "Reno", State: "NV"}.Area())
	assert.Equal(t, "Reno", Facts{City: "Reno"}.Area())
	assert.Equal(t, "your area", Facts{}.Area())
}
