// Package export assembles the complete static file set of a website.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/supermodeltools/bizsite/internal/bizsite/layout"
	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
	"github.com/supermodeltools/bizsite/internal/bizsite/schema"
)

// File is one output file. Path is relative, forward-slash separated and
// has no leading slash.
type File struct {
	Path    string
	Content string
}

// Options configure an Assembler. The zero value is usable.
type Options struct {
	// BaseURL is the absolute site root used for canonical links, the
	// sitemap and JSON-LD. Defaults to https://<domain>, or
	// https://example.com when the site has no domain.
	BaseURL string
	// HTMLExt makes canonical URLs end in ".html".
	HTMLExt  bool
	Language string
	// Now is the export clock. Defaults to time.Now.
	Now func() time.Time
	// Concurrency bounds parallel page rendering. Zero means 8.
	Concurrency int
	Logger      *slog.Logger
	Recorder    metrics.Recorder

	// ChangeFreqs maps a sitemap category (home, about, services,
	// contact, blog, service, location, post, custom) to a changefreq.
	ChangeFreqs map[string]string
	// IncludeCustomInSitemap adds custom pages and locations.html to the
	// sitemap.
	IncludeCustomInSitemap bool
	MaxURLsPerSitemap      int
	RobotsExtraBots        []string

	Feed     bool
	LlmsTxt  bool
	Manifest bool
	// ShareImages emits a branded SVG share image per page under share/
	// and uses it as og:image when neither the page nor the site sets one.
	ShareImages bool
}

// Assembler turns a content model into files.
type Assembler struct {
	opts      Options
	renderers Renderers
	logger    *slog.Logger
	recorder  metrics.Recorder
}

// New creates an Assembler. Unset renderers fall back to DefaultRenderers.
func New(opts Options, renderers Renderers) *Assembler {
	a := &Assembler{opts: opts, renderers: renderers.withDefaults()}
	a.logger = opts.Logger
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.recorder = opts.Recorder
	if a.recorder == nil {
		a.recorder = metrics.NoopRecorder{}
	}
	if a.opts.Now == nil {
		a.opts.Now = time.Now
	}
	if a.opts.Concurrency <= 0 {
		a.opts.Concurrency = 8
	}
	return a
}

// ExportWebsite exports site with default options.
func ExportWebsite(site *model.Website) ([]File, error) {
	return New(Options{}, Renderers{}).Export(context.Background(), site)
}

// job is one HTML document to render.
type job struct {
	file     string
	kind     string
	page     model.Page
	ogType   string
	css      string
	faqs     []model.FAQItem
	body     func() string
	priority string // empty keeps the page out of the sitemap
	category string
	lastmod  time.Time
	desc     string // search description; empty derives one from the body
}

type rendered struct {
	html string
	body string
}

// run carries the per-export state shared by the render jobs. Everything
// in it is read-only once the jobs start.
type run struct {
	site   *model.Website
	facts  rich.Facts
	urls   schema.URLs
	engine *layout.Engine
	gen    *schema.Generator
	now    time.Time
}

// Export renders every file of site. Files come back in a fixed order:
// core pages, service pages, location pages, the blog, custom pages, then
// sitemap.xml, robots.txt, search.html and the optional artifacts. If any
// file fails, Export returns no files and a *FileError.
func (a *Assembler) Export(ctx context.Context, site *model.Website) ([]File, error) {
	if site == nil {
		return nil, ErrNoWebsite
	}
	start := time.Now()
	files, err := a.export(ctx, site)
	dur := time.Since(start)
	if err != nil {
		a.recorder.ObserveExport(0, dur, metrics.OutcomeFailed)
		a.logger.Error("Export failed", "error", err, "duration", dur)
		return nil, err
	}
	a.recorder.ObserveExport(len(files), dur, metrics.OutcomeSuccess)
	a.logger.Info("Exported website", "site", site.SiteName(), "files", len(files), "duration", dur)
	return files, nil
}

func (a *Assembler) export(ctx context.Context, site *model.Website) ([]File, error) {
	site = prepare(site)
	now := a.opts.Now()

	urls := schema.URLs{Base: a.baseURL(site), HTMLExt: a.opts.HTMLExt}
	engine, err := layout.NewEngine(site, urls, a.opts.Language)
	if err != nil {
		return nil, fmt.Errorf("initializing layout: %w", err)
	}
	r := &run{
		site:   site,
		facts:  rich.FactsFrom(site, now),
		urls:   urls,
		engine: engine,
		gen:    schema.NewGenerator(site, urls),
		now:    now,
	}

	jobs := a.plan(r)
	results := make([]rendered, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Concurrency)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := a.renderJob(r, jobs[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(jobs)+6)
	for i, j := range jobs {
		files = append(files, File{Path: j.file, Content: results[i].html})
	}

	extra, err := a.artifacts(r, jobs, results)
	if err != nil {
		return nil, err
	}
	return append(files, extra...), nil
}

func (a *Assembler) baseURL(site *model.Website) string {
	if a.opts.BaseURL != "" {
		return a.opts.BaseURL
	}
	if site.Domain != "" {
		d := strings.TrimRight(site.Domain, "/")
		if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
			return d
		}
		return "https://" + d
	}
	return "https://example.com"
}

// renderJob produces one wrapped document. A panicking renderer is
// reported as a FileError like any other failure.
func (a *Assembler) renderJob(r *run, j job) (res rendered, err error) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = &FileError{Path: j.file, Message: "renderer panicked", Cause: fmt.Errorf("%v", p)}
		}
	}()

	body := j.body()
	meta := r.engine.MetaFor(j.page)
	meta.CSS = j.css
	meta.OGType = j.ogType
	meta.Breadcrumbs = r.gen.Breadcrumbs(j.page)
	meta.Year = r.now.Year()
	if a.opts.ShareImages && j.kind != "search" && meta.Image == "" && r.site.SEO.DefaultImage == "" {
		meta.Image = shareImagePath(j.file)
	}
	meta.JSONLD, err = schema.MarshalSchemas(r.gen.BuildSchemas(j.page, j.faqs)...)
	if err != nil {
		return rendered{}, &FileError{Path: j.file, Message: "encoding JSON-LD", Cause: err}
	}
	doc, err := r.engine.Wrap(body, meta)
	if err != nil {
		return rendered{}, &FileError{Path: j.file, Message: "wrapping layout", Cause: err}
	}

	d := time.Since(start)
	a.recorder.ObserveArtifact(j.kind, len(doc), d)
	a.logger.Debug("Rendered page", "path", j.file, "kind", j.kind, "bytes", len(doc), "duration", d)
	return rendered{html: doc, body: body}, nil
}

// prepare returns a shallow copy of site with missing slugs and colors
// filled in, so file names and links agree.
func prepare(site *model.Website) *model.Website {
	s := *site
	if s.Colors.IsZero() {
		s.Colors = model.DefaultColors()
	}
	s.Services = append([]model.Service(nil), site.Services...)
	for i := range s.Services {
		if s.Services[i].Slug == "" {
			s.Services[i].Slug = model.Slugify(s.Services[i].Name)
		}
	}
	s.Locations = append([]model.Location(nil), site.Locations...)
	for i := range s.Locations {
		if s.Locations[i].Slug == "" {
			s.Locations[i].Slug = s.Locations[i].DefaultSlug()
		}
	}
	s.BlogPosts = append([]model.BlogPost(nil), site.BlogPosts...)
	for i := range s.BlogPosts {
		if s.BlogPosts[i].Slug == "" {
			s.BlogPosts[i].Slug = model.Slugify(s.BlogPosts[i].Title)
		}
	}
	return &s
}

func fileFor(path string) string {
	if path == "" {
		return "index.html"
	}
	return path + ".html"
}
