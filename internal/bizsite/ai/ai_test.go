package ai

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"

	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
)

func tagsOf(t *testing.T, fragment string) map[string]bool {
	t.Helper()
	tags := map[string]bool{}
	z := nethtml.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			return tags
		}
		if tt == nethtml.StartTagToken {
			name, hasAttr := z.TagName()
			assert.False(t, hasAttr, "unexpected attributes on %s", name)
			tags[string(name)] = true
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"allowed tags kept", "<h2>Title</h2><p>Body</p>", "<h2>Title</h2><p>Body</p>"},
		{"attributes stripped", `<p class="x" onclick="evil()">Hi</p>`, "<p>Hi</p>"},
		{"other tags unwrapped", "<div><p>Hi <strong>there</strong></p></div>", "<p>Hi there</p>"},
		{"script dropped", "<p>ok</p><script>alert(1)</script>", "<p>ok</p>"},
		{"code fence removed", "```html\n<p>Hi</p>\n```", "<p>Hi</p>"},
		{"unclosed tags closed", "<ul><li>one", "<ul><li>one</li></ul>"},
		{"text escaped", "<p>a &lt; b</p>", "<p>a &lt; b</p>"},
		{"links unwrapped", `<p>Call <a href="tel:1">now</a></p>`, "<p>Call now</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in, 0))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	in := `<h2>Fast "help"</h2><div><p>It's <em>quick</em> & easy</p><ul><li>a<li>b</ul></div>`
	once := Sanitize(in, 0)
	assert.Equal(t, once, Sanitize(once, 0))
}

func TestSanitize_WordLimit(t *testing.T) {
	out := Sanitize("<p>one two three</p><p>four five six</p>", 4)
	assert.Equal(t, "<p>one two three</p><p>four</p>", out)
}

func TestFallbackContent_TagVocabulary(t *testing.T) {
	allowed := map[string]bool{"h2": true, "h3": true, "p": true, "ul": true, "ol": true, "li": true}
	for _, pt := range []string{"home", "about", "services", "service-single", "location", "locations", "contact", "blog", "blog-post", "landing"} {
		t.Run(pt, func(t *testing.T) {
			p := ContentParams{BusinessName: "Reno <Water> Pros", Industry: "unknown-trade", PageType: pt, LocationCity: "Reno", LocationState: "NV"}
			out := FallbackContent(p)
			require.NotEmpty(t, out)
			for tag := range tagsOf(t, out) {
				assert.True(t, allowed[tag], "tag %s not allowed", tag)
			}
			assert.NotContains(t, out, "<Water>")
			assert.Equal(t, out, FallbackContent(p), "deterministic")
			assert.Equal(t, Sanitize(out, 0), Sanitize(Sanitize(out, 0), 0))
		})
	}
}

func TestFallbackContent_UsesVocabulary(t *testing.T) {
	out := FallbackContent(ContentParams{BusinessName: "Drip Fixers", Industry: "plumbing", PageType: "services", ServiceName: "Drain Cleaning"})
	assert.Contains(t, out, "<h2>Drain Cleaning in your area</h2>")
	assert.Contains(t, out, "Drip Fixers")
}

type stubGenerator struct {
	out string
	err error
	got ContentParams
}

func (s *stubGenerator) GenerateContent(_ context.Context, p ContentParams) (string, error) {
	s.got = p
	return s.out, s.err
}

type fallbackCounter struct {
	pageTypes []string
}

func (c *fallbackCounter) ObserveArtifact(string, int, time.Duration) {}
func (c *fallbackCounter) ObserveExport(int, time.Duration, metrics.Outcome) {}
func (c *fallbackCounter) IncAIFallback(pageType string) { c.pageTypes = append(c.pageTypes, pageType) }

func TestGenerateOrFallback(t *testing.T) {
	p := ContentParams{BusinessName: "Reno Water Pros", Industry: "water-damage", PageType: "home", TargetWords: 100}

	t.Run("model copy is sanitized", func(t *testing.T) {
		gen := &stubGenerator{out: `<h2 class="big">Hello</h2><script>x()</script>`}
		rec := &fallbackCounter{}
		out := GenerateOrFallback(context.Background(), gen, p, nil, rec)
		assert.Equal(t, "<h2>Hello</h2>", out)
		assert.Equal(t, p, gen.got)
		assert.Empty(t, rec.pageTypes)
	})

	t.Run("error falls back and logs", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		rec := &fallbackCounter{}
		out := GenerateOrFallback(context.Background(), &stubGenerator{err: errors.New("quota exceeded")}, p, logger, rec)
		assert.Equal(t, FallbackContent(p), out)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "quota exceeded")
		assert.Equal(t, []string{"home"}, rec.pageTypes)
	})

	t.Run("empty output falls back", func(t *testing.T) {
		out := GenerateOrFallback(context.Background(), &stubGenerator{out: "<div></div>"}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)
		assert.Equal(t, FallbackContent(p), out)
	})

	t.Run("nil generator", func(t *testing.T) {
		assert.Equal(t, FallbackContent(p), GenerateOrFallback(context.Background(), nil, p, nil, nil))
	})
}

func TestPrompt(t *testing.T) {
	prompt := Prompt(ContentParams{BusinessName: "Reno Water Pros", Industry: "water-damage", PageType: "service-single", ServiceName: "Water Extraction", LocationCity: "Reno", LocationState: "NV"})
	assert.Contains(t, prompt, `"Reno Water Pros", a water damage restoration business`)
	assert.Contains(t, prompt, `"Water Extraction"`)
	assert.Contains(t, prompt, "Reno, NV")
	assert.Contains(t, prompt, "about 400 words")
	assert.Contains(t, prompt, "h2, h3, p, ul, ol and li")
}

func TestContentParams_MaxWords(t *testing.T) {
	assert.Equal(t, 600, ContentParams{}.MaxWords())
	assert.Equal(t, 300, ContentParams{TargetWords: 200}.MaxWords())
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), GeminiConfig{})
	assert.Error(t, err)
}
