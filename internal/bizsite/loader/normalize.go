package loader

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// siteNamespace roots the name-based UUIDs assigned to content without ids.
var siteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://bizsite.dev/website"))

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// Normalize fills derived fields in place: ids, slugs, default colors,
// post status and HTML bodies for markdown posts. Running it twice
// changes nothing.
func Normalize(site *model.Website) error {
	site.BusinessName = strings.TrimSpace(site.BusinessName)
	if site.ID == "" {
		site.ID = uuid.NewSHA1(siteNamespace, []byte(model.Slugify(site.BusinessName))).String()
	}
	root, err := uuid.Parse(site.ID)
	if err != nil {
		root = uuid.NewSHA1(siteNamespace, []byte(site.ID))
	}
	id := func(kind string, i int, key string) string {
		return uuid.NewSHA1(root, []byte(kind+"/"+strconv.Itoa(i)+"/"+key)).String()
	}

	normalizeColors(&site.Colors)

	for i := range site.Services {
		s := &site.Services[i]
		if s.Slug == "" {
			s.Slug = model.Slugify(s.Name)
		}
		if s.ID == "" {
			s.ID = id("service", i, s.Slug)
		}
	}
	for i := range site.Locations {
		l := &site.Locations[i]
		if l.Slug == "" {
			l.Slug = l.DefaultSlug()
		}
		if l.ID == "" {
			l.ID = id("location", i, l.Slug)
		}
	}
	for i := range site.Pages {
		p := &site.Pages[i]
		p.Slug = strings.Trim(strings.TrimSpace(p.Slug), "/")
		if p.Type == "" {
			p.Type = model.PageCustom
		}
		if p.ID == "" {
			p.ID = id("page", i, p.Slug)
		}
		for j := range p.Sections {
			sec := &p.Sections[j]
			if sec.ID == "" {
				sec.ID = id("section", j, p.ID)
			}
		}
	}
	for i := range site.BlogPosts {
		p := &site.BlogPosts[i]
		if p.Slug == "" {
			p.Slug = model.Slugify(p.Title)
		}
		if p.ID == "" {
			p.ID = id("post", i, p.Slug)
		}
		if p.Status == "" {
			p.Status = model.PostDraft
		}
		if p.Format == model.FormatMarkdown {
			html, err := RenderMarkdown(p.Content)
			if err != nil {
				return fmt.Errorf("rendering post %s: %w", p.Slug, err)
			}
			p.Content = html
			p.Format = model.FormatHTML
		}
	}
	return nil
}

func normalizeColors(c *model.BrandColors) {
	def := model.DefaultColors()
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&c.Primary, def.Primary},
		{&c.Secondary, def.Secondary},
		{&c.Accent, def.Accent},
		{&c.Background, def.Background},
		{&c.Text, def.Text},
	} {
		*f.v = strings.ToLower(strings.TrimSpace(*f.v))
		if *f.v == "" {
			*f.v = f.def
		}
	}
}

// RenderMarkdown converts a markdown post body to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
