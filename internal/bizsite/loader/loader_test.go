package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

const siteJSON = `{
  "businessName": "Reno Water Pros",
  "industry": "water-damage",
  "email": "help@renowater.example",
  "colors": {"primary": "#1E40AF"},
  "services": [{"name": "Water Extraction"}],
  "locations": [{"city": "Reno", "state": "NV"}],
  "pages": [
    {"title": "Home", "slug": "/", "type": "home", "isPublished": true,
     "sections": [{"type": "hero", "content": {"headline": "Dry fast"}}]},
    {"title": "Warranty", "slug": "/warranty/", "isPublished": true}
  ],
  "blogPosts": [
    {"title": "Five Signs of a Hidden Leak", "content": "<p>Check the meter.</p>", "status": "published", "publishedAt": "2026-02-10"}
  ]
}`

const siteYAML = `businessName: Reno Water Pros
industry: water-damage
services:
  - name: Water Extraction
    price: "$99"
locations:
  - city: Reno
    state: NV
blogPosts:
  - title: Five Signs of a Hidden Leak
    status: published
    publishedAt: 2026-02-10
    format: markdown
    content: |
      ## Check the meter

      Watch it for an hour.
`

func TestParse_JSON(t *testing.T) {
	site, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "Reno Water Pros", site.BusinessName)
	assert.Equal(t, "#1e40af", site.Colors.Primary, "colors are lowercased")
	assert.Equal(t, model.DefaultColors().Accent, site.Colors.Accent, "missing colors are defaulted")

	require.Len(t, site.Services, 1)
	assert.Equal(t, "water-extraction", site.Services[0].Slug)
	assert.NotEmpty(t, site.Services[0].ID)
	assert.Equal(t, "reno", site.Locations[0].Slug)

	require.Len(t, site.Pages, 2)
	assert.Equal(t, "", site.Pages[0].Slug)
	assert.Equal(t, "warranty", site.Pages[1].Slug)
	assert.Equal(t, model.PageCustom, site.Pages[1].Type)
	require.Len(t, site.Pages[0].Sections, 1)
	hero, ok := site.Pages[0].Sections[0].Content.(model.HeroContent)
	require.True(t, ok)
	assert.Equal(t, "Dry fast", hero.Headline)

	post := site.BlogPosts[0]
	assert.Equal(t, "five-signs-of-a-hidden-leak", post.Slug)
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), post.PublishedAt)
	assert.True(t, model.IsPublished(post))
}

func TestParse_YAML(t *testing.T) {
	site, err := Parse([]byte(siteYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "$99", site.Services[0].Price)
	post := site.BlogPosts[0]
	assert.Equal(t, model.FormatHTML, post.Format)
	assert.Contains(t, post.Content, `<h2 id="check-the-meter">Check the meter</h2>`)
	assert.Contains(t, post.Content, "<p>Watch it for an hour.</p>")
	assert.Equal(t, 2026, post.PublishedAt.Year())
}

func TestParse_DeterministicIDs(t *testing.T) {
	a, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)
	b, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Services[0].ID, b.Services[0].ID)
	assert.Equal(t, a.Pages[0].Sections[0].ID, b.Pages[0].Sections[0].ID)
	assert.NotEqual(t, a.Pages[0].ID, a.Pages[1].ID)
}

func TestParse_KeepsExplicitIDs(t *testing.T) {
	site, err := Parse([]byte(`{"id": "site-1", "businessName": "Acme", "services": [{"id": "svc-1", "name": "Repair"}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "site-1", site.ID)
	assert.Equal(t, "svc-1", site.Services[0].ID)
}

func TestParse_SchemaErrors(t *testing.T) {
	_, err := Parse([]byte(`{"colors": {"primary": "blue"}, "services": [{"slug": "Bad Slug"}]}`), FormatJSON)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := map[string]bool{}
	for _, fe := range ve.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["colors.primary"])
	assert.True(t, fields["services.0.slug"])
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "businessName is required")
}

func TestParse_StructErrors(t *testing.T) {
	_, err := Parse([]byte(`{"businessName": "Acme", "email": "not-an-email"}`), FormatJSON)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "Website.Email", ve.Errors[0].Field)
	assert.Equal(t, `failed "email" validation`, ve.Errors[0].Message)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"businessName": `), FormatJSON)
	assert.ErrorContains(t, err, "parsing JSON")

	_, err = Parse([]byte("businessName: [unterminated"), FormatYAML)
	assert.ErrorContains(t, err, "parsing YAML")
}

func TestNormalize_Idempotent(t *testing.T) {
	site, err := Parse([]byte(siteYAML), FormatYAML)
	require.NoError(t, err)

	before := *site
	before.BlogPosts = append([]model.BlogPost(nil), site.BlogPosts...)
	before.Services = append([]model.Service(nil), site.Services...)
	require.NoError(t, Normalize(site))
	assert.Equal(t, before.BlogPosts, site.BlogPosts)
	assert.Equal(t, before.Services, site.Services)
	assert.Equal(t, before.ID, site.ID)
}

func TestNew_PicksFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, New("site.yml", Options{}).(*FileLoader).Format)
	assert.Equal(t, FormatYAML, New("site.YAML", Options{}).(*FileLoader).Format)
	assert.Equal(t, FormatJSON, New("site.json", Options{}).(*FileLoader).Format)
}

func TestFileLoader_MergesPosts(t *testing.T) {
	dir := t.TempDir()
	sitePath := filepath.Join(dir, "site.json")
	require.NoError(t, os.WriteFile(sitePath, []byte(siteJSON), 0o644))

	postsDir := filepath.Join(dir, "posts")
	require.NoError(t, os.Mkdir(postsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "b-winter.md"), []byte("---\ntitle: Winterize Your Pipes\nstatus: published\npublishedAt: 2026-01-05\n---\nWrap them **well**.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "a-dup.md"), []byte("---\ntitle: Five Signs of a Hidden Leak\n---\nDuplicate.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "c-broken.md"), []byte("---\ntitle: Broken\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "notes.txt"), []byte("ignored"), 0o644))

	site, err := New(sitePath, Options{PostsDir: postsDir}).Load()
	require.NoError(t, err)

	require.Len(t, site.BlogPosts, 2)
	assert.Equal(t, "<p>Check the meter.</p>", site.BlogPosts[0].Content)
	winter := site.BlogPosts[1]
	assert.Equal(t, "winterize-your-pipes", winter.Slug)
	assert.Equal(t, model.FormatHTML, winter.Format)
	assert.Contains(t, winter.Content, "<strong>well</strong>")
	assert.NotEmpty(t, winter.ID)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.json"), Options{}).Load()
	assert.ErrorContains(t, err, "reading website")
}

func TestParsePost(t *testing.T) {
	post, err := ParsePost("---\ntitle: Hello\nslug: Custom Slug\nstatus: Published\ntags: [a, b]\npublishedAt: 2026-03-01 09:30\n---\nBody text", "hello.md")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
	assert.Equal(t, model.PostPublished, post.Status)
	assert.Equal(t, []string{"a", "b"}, post.Tags)
	assert.Equal(t, "Body text", post.Content)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), post.PublishedAt)

	_, err = ParsePost("no frontmatter", "x.md")
	assert.ErrorContains(t, err, "missing title")

	_, err = ParsePost("---\ntitle: X\nstatus: archived\n---\n", "x.md")
	assert.ErrorContains(t, err, "unknown status")

	_, err = ParsePost("---\ntitle: X\npublishedAt: someday\n---\n", "x.md")
	assert.ErrorContains(t, err, "invalid publishedAt")
}

func TestSchema(t *testing.T) {
	assert.Contains(t, Schema(), `"businessName"`)
}
