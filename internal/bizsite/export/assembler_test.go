package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/output"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func scenarioSite() *model.Website {
	return &model.Website{
		BusinessName: "Reno Water Pros",
		Industry:     "water-damage",
		Tagline:      "Fast help, day or night",
		Phone:        "(775) 555-0100",
		Email:        "hi@renowater.example",
		Address:      &model.Address{Street: "1 Main St", City: "Reno", State: "NV", Zip: "89501"},
		Colors:       model.DefaultColors(),
		Services:     []model.Service{{ID: "svc-1", Name: "Water Extraction", Slug: "water-extraction", Description: "Standing water removed fast."}},
		Locations:    []model.Location{{ID: "loc-1", City: "Reno", State: "NV", Slug: "reno"}},
		BlogPosts: []model.BlogPost{
			{
				ID:          "post-1",
				Title:       "Five Leak Signs",
				Slug:        "leak-signs",
				Content:     "<p>Watch for stains on the ceiling.</p>",
				Excerpt:     "Spot a leak before it spreads.",
				Status:      model.PostPublished,
				PublishedAt: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		Pages: []model.Page{
			{Title: "Home", Slug: "", Type: model.PageHome, Published: true},
			{Title: "About", Slug: "about", Type: model.PageAbout, Published: true},
			{Title: "Services", Slug: "services", Type: model.PageServices, Published: true},
			{Title: "Contact", Slug: "contact", Type: model.PageContact, Published: true},
		},
	}
}

func testAssembler(opts Options, r Renderers) *Assembler {
	opts.BaseURL = "https://renowater.example"
	opts.Now = func() time.Time { return fixedNow }
	return New(opts, r)
}

func export(t *testing.T, site *model.Website, opts Options) []File {
	t.Helper()
	files, err := testAssembler(opts, Renderers{}).Export(context.Background(), site)
	require.NoError(t, err)
	return files
}

func paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func file(t *testing.T, files []File, path string) string {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f.Content
		}
	}
	t.Fatalf("file %s not exported", path)
	return ""
}

func TestExport_ExampleScenario(t *testing.T) {
	files := export(t, scenarioSite(), Options{})

	assert.Equal(t, []string{
		"index.html",
		"about.html",
		"services.html",
		"contact.html",
		"services/water-extraction.html",
		"locations/reno.html",
		"blog.html",
		"blog/leak-signs.html",
		"sitemap.xml",
		"robots.txt",
		"search.html",
	}, paths(files))

	sitemap := file(t, files, "sitemap.xml")
	assert.Equal(t, 8, strings.Count(sitemap, "<url>"))
	assert.Contains(t, sitemap, "<loc>https://renowater.example</loc>")
	assert.Contains(t, sitemap, "<loc>https://renowater.example/services/water-extraction</loc>")
	assert.Contains(t, sitemap, "<lastmod>2026-03-01</lastmod>")
	assert.Contains(t, sitemap, "<lastmod>2026-02-10</lastmod>")
	assert.Contains(t, sitemap, "<priority>0.9</priority>")

	robots := file(t, files, "robots.txt")
	assert.Contains(t, robots, "User-agent: *\nAllow: /")
	assert.Contains(t, robots, "Sitemap: https://renowater.example/sitemap.xml")
}

func TestExport_SitemapCountMatchesCollections(t *testing.T) {
	site := scenarioSite()
	site.Services = append(site.Services, model.Service{Name: "Mold Remediation", Slug: "mold-remediation"})
	site.Locations = append(site.Locations, model.Location{City: "Sparks", State: "NV", Slug: "sparks"})
	site.BlogPosts = append(site.BlogPosts, model.BlogPost{Title: "Draft", Slug: "draft", Status: model.PostDraft})

	files := export(t, site, Options{})
	assert.Equal(t, 5+2+2+1, strings.Count(file(t, files, "sitemap.xml"), "<url>"))
}

func TestExport_DocumentsAreWrapped(t *testing.T) {
	files := export(t, scenarioSite(), Options{})
	for _, f := range files {
		if !strings.HasSuffix(f.Path, ".html") {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(f.Content))
		require.NoError(t, err, f.Path)
		assert.Equal(t, 1, doc.Find("header.site-header").Length(), f.Path)
		assert.Equal(t, 1, doc.Find("footer.site-footer").Length(), f.Path)
		assert.NotEmpty(t, doc.Find(`script[type="application/ld+json"]`).Nodes, f.Path)
		assert.NotEmpty(t, doc.Find("title").Text(), f.Path)
	}

	svc := file(t, files, "services/water-extraction.html")
	assert.Contains(t, svc, `"@type": "Service"`)
	assert.Contains(t, svc, `"@type": "FAQPage"`)
	assert.Contains(t, svc, `<link rel="canonical" href="https://renowater.example/services/water-extraction">`)

	post := file(t, files, "blog/leak-signs.html")
	assert.Contains(t, post, `"@type": "BlogPosting"`)
	assert.Contains(t, post, `<meta property="og:type" content="article">`)
}

func TestExport_Deterministic(t *testing.T) {
	first := export(t, scenarioSite(), Options{Concurrency: 1})
	second := export(t, scenarioSite(), Options{Concurrency: 16})
	assert.Equal(t, first, second)
}

func TestExport_DraftsNeverPublished(t *testing.T) {
	site := scenarioSite()
	site.BlogPosts = append(site.BlogPosts, model.BlogPost{
		Title:   "Secret Plans",
		Slug:    "secret-plans",
		Content: "<p>not yet</p>",
		Status:  model.PostDraft,
	})

	files := export(t, site, Options{Feed: true, LlmsTxt: true})
	for _, f := range files {
		assert.NotEqual(t, "blog/secret-plans.html", f.Path)
		assert.NotContains(t, f.Content, "secret-plans", f.Path)
		assert.NotContains(t, f.Content, "Secret Plans", f.Path)
	}
}

func TestExport_EmptyBlog(t *testing.T) {
	site := scenarioSite()
	site.BlogPosts = nil

	files := export(t, site, Options{})
	blog := file(t, files, "blog.html")
	assert.Contains(t, blog, `class="empty-state"`)
	assert.Equal(t, 7, strings.Count(file(t, files, "sitemap.xml"), "<url>"))
}

func TestExport_RichPathOverridesSections(t *testing.T) {
	site := scenarioSite()
	site.Pages[0].SEO.Title = "Reno Water Damage Experts"
	site.Pages[0].Sections = []model.PageSection{
		{Type: model.SectionHero, Content: model.HeroContent{Headline: "Only In Sections"}},
	}

	files := export(t, site, Options{})
	index := file(t, files, "index.html")
	assert.NotContains(t, index, "Only In Sections")
	assert.Contains(t, index, "<title>Reno Water Damage Experts</title>")
}

func TestExport_CustomPages(t *testing.T) {
	site := scenarioSite()
	site.Pages = append(site.Pages,
		model.Page{
			Title:     "Careers",
			Slug:      "careers",
			Type:      model.PageCustom,
			Published: true,
			Sections: []model.PageSection{
				{Type: model.SectionText, Order: 1, Content: model.TextContent{Title: "Join our team", Body: "We are hiring technicians."}},
			},
		},
		model.Page{Title: "Hidden", Slug: "hidden", Type: model.PageCustom},
		model.Page{Title: "Clash", Slug: "about", Type: model.PageCustom, Published: true},
	)

	files := export(t, site, Options{})
	careers := file(t, files, "careers.html")
	assert.Contains(t, careers, "Join our team")
	assert.NotContains(t, paths(files), "hidden.html")
	assert.Equal(t, 1, strings.Count(strings.Join(paths(files), ","), "about.html"))
	assert.Equal(t, 8, strings.Count(file(t, files, "sitemap.xml"), "<url>"))

	withCustom := export(t, site, Options{IncludeCustomInSitemap: true})
	sitemap := file(t, withCustom, "sitemap.xml")
	assert.Equal(t, 9, strings.Count(sitemap, "<url>"))
	assert.Contains(t, sitemap, "<loc>https://renowater.example/careers</loc>")
}

func TestExport_LocationsIndex(t *testing.T) {
	site := scenarioSite()
	files := export(t, site, Options{})
	assert.NotContains(t, paths(files), "locations.html")

	site.Pages = append(site.Pages, model.Page{Title: "Areas We Serve", Slug: "locations", Type: model.PageLocations, Published: true})
	files = export(t, site, Options{})
	assert.Contains(t, paths(files), "locations.html")
	assert.Equal(t, 8, strings.Count(file(t, files, "sitemap.xml"), "<url>"))
}

func TestExport_OptionalArtifacts(t *testing.T) {
	files := export(t, scenarioSite(), Options{Feed: true, LlmsTxt: true, Manifest: true, RobotsExtraBots: []string{"GPTBot"}})
	p := paths(files)
	assert.Equal(t, []string{"sitemap.xml", "robots.txt", "search.html", "feed.xml", "llms.txt", "manifest.json"}, p[len(p)-6:])

	feed := file(t, files, "feed.xml")
	assert.Contains(t, feed, "<link>https://renowater.example/blog/leak-signs</link>")
	assert.Contains(t, feed, "Spot a leak before it spreads.")

	llms := file(t, files, "llms.txt")
	assert.True(t, strings.HasPrefix(llms, "# Reno Water Pros\n"))
	assert.Contains(t, llms, "## Services\n- [Water Extraction](https://renowater.example/services/water-extraction): Standing water removed fast.")

	var manifest map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(file(t, files, "manifest.json")), &manifest))
	assert.Equal(t, "#1e40af", manifest["theme_color"])

	assert.Contains(t, file(t, files, "robots.txt"), "User-agent: GPTBot")
}

func TestExport_ShareImages(t *testing.T) {
	files := export(t, scenarioSite(), Options{ShareImages: true})
	p := paths(files)
	require.Len(t, p, 19)
	assert.Equal(t, []string{
		"share/index.svg",
		"share/about.svg",
		"share/services.svg",
		"share/contact.svg",
		"share/services/water-extraction.svg",
		"share/locations/reno.svg",
		"share/blog.svg",
		"share/blog/leak-signs.svg",
	}, p[11:])

	svg := file(t, files, "share/services/water-extraction.svg")
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, "Water Extraction")
	assert.Contains(t, svg, "Standing water removed fast.")

	assert.Contains(t, file(t, files, "index.html"), `<meta property="og:image" content="https://renowater.example/share/index.svg">`)

	site := scenarioSite()
	site.SEO.DefaultImage = "https://cdn.example/og.png"
	files = export(t, site, Options{ShareImages: true})
	assert.Contains(t, file(t, files, "index.html"), `content="https://cdn.example/og.png"`, "a site image wins")
}

func TestExport_SearchIndex(t *testing.T) {
	files := export(t, scenarioSite(), Options{})
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(file(t, files, "search.html")))
	require.NoError(t, err)

	var records []output.SearchRecord
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#search-index").Text()), &records))
	require.Len(t, records, 8)
	assert.Equal(t, output.SearchRecord{
		Title:       "Water Extraction",
		URL:         "services/water-extraction.html",
		Description: "Standing water removed fast.",
		Type:        "service",
	}, records[4])
	for _, r := range records {
		assert.NotEmpty(t, r.Description, r.URL)
	}
}

func TestExport_MissingSlugsAreDerived(t *testing.T) {
	site := scenarioSite()
	site.Services[0].Slug = ""
	site.Colors = model.BrandColors{}

	files := export(t, site, Options{})
	assert.Contains(t, paths(files), "services/water-extraction.html")
	assert.Empty(t, site.Services[0].Slug, "the content model is not modified")
}

func TestExport_FailureAbortsExport(t *testing.T) {
	a := testAssembler(Options{}, Renderers{
		ServicePage: func(_ rich.Facts, _ model.Service) string { panic("template exploded") },
	})
	files, err := a.Export(context.Background(), scenarioSite())
	require.Error(t, err)
	assert.Nil(t, files)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "services/water-extraction.html", fe.Path)
	assert.Contains(t, err.Error(), "template exploded")
}

func TestExport_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files, err := testAssembler(Options{}, Renderers{}).Export(ctx, scenarioSite())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, files)
}

func TestExport_NilWebsite(t *testing.T) {
	_, err := ExportWebsite(nil)
	assert.ErrorIs(t, err, ErrNoWebsite)
}

type countingRecorder struct {
	mu        sync.Mutex
	artifacts map[string]int
	outcomes  []metrics.Outcome
}

func (c *countingRecorder) ObserveArtifact(kind string, _ int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.artifacts == nil {
		c.artifacts = map[string]int{}
	}
	c.artifacts[kind]++
}

func (c *countingRecorder) ObserveExport(_ int, _ time.Duration, o metrics.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, o)
}

func (c *countingRecorder) IncAIFallback(string) {}

func TestExport_RecordsMetrics(t *testing.T) {
	rec := &countingRecorder{}
	export(t, scenarioSite(), Options{Recorder: rec})
	assert.Equal(t, []metrics.Outcome{metrics.OutcomeSuccess}, rec.outcomes)
	assert.Equal(t, 5, rec.artifacts["page"])
	assert.Equal(t, 1, rec.artifacts["service"])
	assert.Equal(t, 1, rec.artifacts["sitemap"])
	assert.Equal(t, 1, rec.artifacts["search"])
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		typ  model.PageType
		want Strategy
	}{
		{model.PageHome, StrategyRich},
		{model.PageContact, StrategyRich},
		{model.PageBlog, StrategyRich},
		{model.PageLocations, StrategyRichIfListed},
		{model.PageServiceSingle, StrategyCollection},
		{model.PageCustom, StrategySections},
		{model.PageType("landing"), StrategySections},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyFor(tt.typ))
		})
	}
}

func TestFileError(t *testing.T) {
	cause := errors.New("boom")
	err := &FileError{Path: "about.html", Message: "wrapping layout", Cause: cause}
	assert.Equal(t, "export error: about.html: wrapping layout: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "export error: x.html: generating file", (&FileError{Path: "x.html"}).Error())
}

func TestExport_NestedCustomPageLinks(t *testing.T) {
	site := scenarioSite()
	site.Phone = ""
	site.Pages = append(site.Pages, model.Page{
		Title:     "Roof Care",
		Slug:      "guides/roof-care",
		Type:      model.PageCustom,
		Published: true,
		Sections: []model.PageSection{
			{Type: model.SectionHero, Order: 1, Content: model.HeroContent{Headline: "Roof care", CTAText: "Book"}},
			{Type: model.SectionServices, Order: 2, Content: model.ServicesContent{}},
			{Type: model.SectionLocations, Order: 3, Content: model.LocationsContent{}},
			{Type: model.SectionCTA, Order: 4, Content: model.CTAContent{}},
		},
	})

	files := export(t, site, Options{})
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(file(t, files, "guides/roof-care.html")))
	require.NoError(t, err)

	links := doc.Find("main a[href]")
	require.NotZero(t, links.Length())
	links.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.True(t, strings.HasPrefix(href, "../"), href)
	})
	assert.Equal(t, 2, doc.Find(`main a[href="../services/water-extraction.html"]`).Length())
	assert.Equal(t, 1, doc.Find(`main a[href="../locations/reno.html"]`).Length())
	assert.Equal(t, 2, doc.Find(`main a[href="../contact.html"]`).Length())

	services := file(t, export(t, scenarioSite(), Options{}), "services.html")
	assert.NotContains(t, services, `href="../`, "root pages keep root-relative links")
}

func TestExport_DuplicateSlugsAreSkipped(t *testing.T) {
	site := scenarioSite()
	site.Services = append(site.Services, model.Service{ID: "svc-2", Name: "Water Extraction Plus", Slug: "water-extraction"})
	site.Locations = append(site.Locations, model.Location{ID: "loc-2", City: "Reno", Slug: "reno"})
	site.BlogPosts = append(site.BlogPosts, model.BlogPost{
		ID: "post-2", Title: "More Leak Signs", Slug: "leak-signs", Status: model.PostPublished,
		PublishedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	})

	var logs bytes.Buffer
	files := export(t, site, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	joined := strings.Join(paths(files), ",")
	assert.Equal(t, 1, strings.Count(joined, "services/water-extraction.html"))
	assert.Equal(t, 1, strings.Count(joined, "locations/reno.html"))
	assert.Equal(t, 1, strings.Count(joined, "blog/leak-signs.html"))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(file(t, files, "search.html")))
	require.NoError(t, err)
	var records []output.SearchRecord
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#search-index").Text()), &records))
	require.Len(t, records, 8)
	assert.Equal(t, "Water Extraction", records[4].Title, "the first service keeps the path")
	assert.Equal(t, 8, strings.Count(file(t, files, "sitemap.xml"), "<url>"))
	assert.Equal(t, 3, strings.Count(logs.String(), "duplicate slug"))
}
