package layout

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/schema"
)

func testSite() *model.Website {
	return &model.Website{
		BusinessName: "Reno Water Pros",
		Tagline:      "Fast help, day or night",
		Phone:        "(775) 555-0100",
		Email:        "hi@renowater.example",
		FaviconURL:   "favicon.png",
		Address:      &model.Address{Street: "1 Main St", City: "Reno", State: "NV", Zip: "89501"},
		Colors:       model.DefaultColors(),
		SEO: model.SEOSettings{
			DefaultImage:  "/img/og.jpg",
			TwitterHandle: "@renowater",
			Social:        model.SocialLinks{Facebook: "https://facebook.com/renowater"},
		},
		Services:  []model.Service{{Name: "Water Extraction", Slug: "water-extraction"}},
		Locations: []model.Location{{City: "Reno", State: "NV", Slug: "reno"}},
		Pages: []model.Page{
			{Title: "Privacy Policy", Slug: "privacy-policy", Type: model.PageCustom, Published: true},
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testSite(), schema.URLs{Base: "https://renowater.example"}, "")
	require.NoError(t, err)
	return e
}

func parse(t *testing.T, s string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return d
}

func TestCanonicalURL(t *testing.T) {
	e := testEngine(t)
	assert.Equal(t, "https://renowater.example", e.CanonicalURL(""))
	assert.Equal(t, "https://renowater.example/about", e.CanonicalURL("about"))
	assert.Equal(t, "https://renowater.example/services/water-extraction", e.CanonicalURL("services/water-extraction"))
}

func TestWrap_Head(t *testing.T) {
	e := testEngine(t)
	meta := e.MetaFor(model.Page{Title: "About", Slug: "about", SEO: model.PageSEO{Description: "Who we are", Keywords: []string{"water", "reno"}}})
	meta.JSONLD = `<script type="application/ld+json">{"@type": "WebSite"}</script>`
	meta.CSS = ".about-only { color: red; }"

	out, err := e.Wrap("<p>Body</p>", meta)
	require.NoError(t, err)
	d := parse(t, out)

	assert.Equal(t, "About | Reno Water Pros", d.Find("title").Text())
	desc, _ := d.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Who we are", desc)
	kw, _ := d.Find(`meta[name="keywords"]`).Attr("content")
	assert.Equal(t, "water, reno", kw)
	canonical, _ := d.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://renowater.example/about", canonical)
	ogImage, _ := d.Find(`meta[property="og:image"]`).Attr("content")
	assert.Equal(t, "https://renowater.example/img/og.jpg", ogImage)
	site, _ := d.Find(`meta[name="twitter:site"]`).Attr("content")
	assert.Equal(t, "@renowater", site)
	icon, _ := d.Find(`link[rel="icon"]`).Attr("href")
	assert.Equal(t, "favicon.png", icon)

	style := d.Find("style").Text()
	assert.True(t, strings.Contains(style, "--color-primary: #1e40af;"))
	assert.Contains(t, style, ".about-only")
	assert.Equal(t, 1, d.Find(`script[type="application/ld+json"]`).Length())
	assert.Contains(t, d.Find("script").Last().Text(), "menu-toggle")
	assert.Equal(t, "Body", d.Find("main p").Text())
}

func TestWrap_HeaderAndFooterIdenticalAcrossBodies(t *testing.T) {
	e := testEngine(t)
	a, err := e.Wrap("<section>rich</section>", PageMeta{Path: "about", Title: "A", Year: 2025})
	require.NoError(t, err)
	b, err := e.Wrap("<section>generic</section>", PageMeta{Path: "about", Title: "A", Year: 2025})
	require.NoError(t, err)

	da, db := parse(t, a), parse(t, b)
	ha, _ := da.Find("header.site-header").Html()
	hb, _ := db.Find("header.site-header").Html()
	assert.Equal(t, ha, hb)
	fa, _ := da.Find("footer").Html()
	fb, _ := db.Find("footer").Html()
	assert.Equal(t, fa, fb)
}

func TestHeader_RelativeLinks(t *testing.T) {
	e := testEngine(t)
	out, err := e.Header("services/water-extraction")
	require.NoError(t, err)
	d := parse(t, out)

	logo, _ := d.Find("a.logo").Attr("href")
	assert.Equal(t, "../index.html", logo)
	dropdown, _ := d.Find(".dropdown-menu a").First().Attr("href")
	assert.Equal(t, "../services/water-extraction.html", dropdown)
	active := d.Find(".main-nav a.active").First().Text()
	assert.Equal(t, "Services", active)
	cta, _ := d.Find("a.header-cta").Attr("href")
	assert.Equal(t, "tel:7755550100", cta)
	assert.Equal(t, 1, d.Find(".mobile-menu").Length())
}

func TestFooter_NAPAndLegal(t *testing.T) {
	e := testEngine(t)
	out, err := e.Footer("", 2025)
	require.NoError(t, err)
	d := parse(t, out)

	assert.Equal(t, "1 Main St, Reno, NV 89501", d.Find(`[itemprop="address"]`).Text())
	assert.Equal(t, "(775) 555-0100", d.Find(`[itemprop="telephone"]`).Text())
	assert.Equal(t, "2025", d.Find(".copyright-year").Text())

	var legal []string
	d.Find(".legal-links a").Each(func(_ int, s *goquery.Selection) {
		legal = append(legal, s.Text())
	})
	assert.Equal(t, []string{"Privacy Policy", "Search", "Sitemap"}, legal)
	fb, _ := d.Find(".social-links a").Attr("href")
	assert.Equal(t, "https://facebook.com/renowater", fb)
}

func TestWrap_Breadcrumbs(t *testing.T) {
	e := testEngine(t)
	g := schema.NewGenerator(testSite(), e.URLs())
	page := model.Page{Title: "Reno, NV", Slug: "locations/reno"}
	meta := e.MetaFor(page)
	meta.Breadcrumbs = g.Breadcrumbs(page)

	out, err := e.Wrap("", meta)
	require.NoError(t, err)
	d := parse(t, out)
	items := d.Find(".breadcrumbs li")
	require.Equal(t, 3, items.Length())
	home, _ := items.Eq(0).Find("a").Attr("href")
	assert.Equal(t, "../index.html", home)
	assert.Equal(t, 0, items.Eq(1).Find("a").Length(), "no locations index is generated for this site")
	assert.Equal(t, "Reno, NV", items.Eq(2).Text())
}

func TestMetaFor_Home(t *testing.T) {
	e := testEngine(t)
	meta := e.MetaFor(model.Page{Title: "Home", Type: model.PageHome})
	assert.Equal(t, "Reno Water Pros | Fast help, day or night", meta.Title)
	assert.Equal(t, "", meta.Path)
}

func TestHrefAndPrefix(t *testing.T) {
	assert.Equal(t, "", Prefix("about"))
	assert.Equal(t, "../", Prefix("blog/leak-signs"))
	assert.Equal(t, "index.html", Href("", ""))
	assert.Equal(t, "../contact.html", Href("../", "contact"))
	assert.Equal(t, "../img/a.png", AssetHref("../", "img/a.png"))
	assert.Equal(t, "/img/a.png", AssetHref("../", "/img/a.png"))
	assert.Equal(t, "https://x.example/a.png", AssetHref("../", "https://x.example/a.png"))
}
