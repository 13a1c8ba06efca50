package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/output"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
)

const searchDescriptionRunes = 160

// artifacts renders the files that follow the page documents.
func (a *Assembler) artifacts(r *run, jobs []job, results []rendered) ([]File, error) {
	var files []File
	emit := func(path, kind string, gen func() (string, error)) error {
		start := time.Now()
		content, err := gen()
		if err != nil {
			return &FileError{Path: path, Message: "generating " + kind, Cause: err}
		}
		d := time.Since(start)
		a.recorder.ObserveArtifact(kind, len(content), d)
		a.logger.Debug("Generated artifact", "path", path, "kind", kind, "bytes", len(content), "duration", d)
		files = append(files, File{Path: path, Content: content})
		return nil
	}

	sitemaps, err := output.GenerateSitemapFiles(a.sitemapEntries(r, jobs), r.urls.Root(), a.opts.MaxURLsPerSitemap)
	if err != nil {
		return nil, &FileError{Path: "sitemap.xml", Message: "generating sitemap", Cause: err}
	}
	for _, sm := range sitemaps {
		files = append(files, File{Path: sm.Filename, Content: sm.Content})
		a.recorder.ObserveArtifact("sitemap", len(sm.Content), 0)
	}

	if err := emit("robots.txt", "robots", func() (string, error) {
		return output.GenerateRobotsTxt(output.RobotsOptions{
			SitemapURL: r.urls.Asset("sitemap.xml"),
			ExtraBots:  a.opts.RobotsExtraBots,
		}), nil
	}); err != nil {
		return nil, err
	}

	records := searchRecords(jobs, results)
	search, err := a.searchPage(r, records)
	if err != nil {
		return nil, err
	}
	files = append(files, search)

	if a.opts.Feed {
		if err := emit("feed.xml", "feed", func() (string, error) { return output.GenerateFeed(a.feed(r)) }); err != nil {
			return nil, err
		}
	}
	if a.opts.LlmsTxt {
		if err := emit("llms.txt", "llms", func() (string, error) { return a.llmsTxt(r, jobs) }); err != nil {
			return nil, err
		}
	}
	if a.opts.Manifest {
		if err := emit("manifest.json", "manifest", func() (string, error) {
			return output.GenerateManifest(output.Manifest{
				Name:            r.site.SiteName(),
				ShortName:       r.site.BusinessName,
				Description:     r.site.SiteDescription(),
				BackgroundColor: r.site.Colors.Background,
				ThemeColor:      r.site.Colors.Primary,
				Icon:            r.site.FaviconURL,
			})
		}); err != nil {
			return nil, err
		}
	}
	if a.opts.ShareImages {
		for _, j := range jobs {
			if err := emit(shareImagePath(j.file), "share", func() (string, error) {
				return output.GenerateShareSVG(a.shareImage(r, j)), nil
			}); err != nil {
				return nil, err
			}
		}
	}
	return files, nil
}

func (a *Assembler) shareImage(r *run, j job) output.ShareImage {
	subtitle := j.desc
	if subtitle == "" {
		subtitle = r.site.Tagline
	}
	return output.ShareImage{
		SiteName: r.site.SiteName(),
		Title:    j.page.Title,
		Subtitle: subtitle,
		Pills:    []string{rich.Title(r.facts.Vocab.Label), r.facts.City},
		Colors:   r.site.Colors,
	}
}

// shareImagePath maps "services/x.html" to "share/services/x.svg".
func shareImagePath(file string) string {
	return "share/" + strings.TrimSuffix(file, ".html") + ".svg"
}

func (a *Assembler) sitemapEntries(r *run, jobs []job) []output.SitemapEntry {
	today := r.now.Format("2006-01-02")
	var entries []output.SitemapEntry
	for _, j := range jobs {
		if j.priority == "" {
			continue
		}
		lastmod := today
		if !j.lastmod.IsZero() {
			lastmod = j.lastmod.Format("2006-01-02")
		}
		entries = append(entries, output.SitemapEntry{
			Loc:        r.urls.Page(j.page.Slug),
			Lastmod:    lastmod,
			Priority:   j.priority,
			ChangeFreq: a.opts.ChangeFreqs[j.category],
		})
	}
	return entries
}

func searchRecords(jobs []job, results []rendered) []output.SearchRecord {
	records := make([]output.SearchRecord, 0, len(jobs))
	for i, j := range jobs {
		desc := j.desc
		if desc == "" {
			desc = output.PlainText(results[i].body, searchDescriptionRunes)
		}
		records = append(records, output.SearchRecord{
			Title:       j.page.Title,
			URL:         j.file,
			Description: desc,
			Type:        searchType(j.page.Type),
		})
	}
	return records
}

func searchType(t model.PageType) string {
	switch t {
	case model.PageServiceSingle:
		return "service"
	case model.PageLocation:
		return "location"
	case model.PageBlogPost:
		return "post"
	}
	return "page"
}

func (a *Assembler) searchPage(r *run, records []output.SearchRecord) (File, error) {
	const path = "search.html"
	body, err := output.SearchBody(records)
	if err != nil {
		return File{}, &FileError{Path: path, Message: "building search index", Cause: err}
	}
	page := model.Page{
		Title: "Search",
		Slug:  "search",
		Type:  model.PageCustom,
		SEO:   model.PageSEO{Description: "Search " + r.site.SiteName()},
	}
	res, err := a.renderJob(r, job{
		file: path,
		kind: "search",
		page: page,
		css:  output.SearchCSS,
		body: func() string { return body },
	})
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Content: res.html}, nil
}

func (a *Assembler) feed(r *run) output.Feed {
	f := output.Feed{
		Title:       r.site.SiteName() + " Blog",
		Link:        r.urls.Page("blog"),
		Description: r.site.SiteDescription(),
		Language:    languageOr(a.opts.Language),
		BuildDate:   r.now,
	}
	for _, p := range r.facts.Posts {
		desc := p.Excerpt
		if desc == "" {
			desc = output.PlainText(p.Content, 300)
		}
		f.Items = append(f.Items, output.FeedItem{
			Title:       p.Title,
			Link:        r.urls.Page("blog/" + p.Slug),
			Description: desc,
			Author:      p.Author,
			Categories:  p.Tags,
			Published:   p.PublishedAt,
		})
	}
	return f
}

func languageOr(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}

func (a *Assembler) llmsTxt(r *run, jobs []job) (string, error) {
	site := r.site
	var details []string
	if site.Description != "" {
		details = append(details, site.Description)
	}
	if site.Phone != "" {
		details = append(details, "- Phone: "+site.Phone)
	}
	if site.Email != "" {
		details = append(details, "- Email: "+site.Email)
	}
	if addr := site.Address.OneLine(); addr != "" {
		details = append(details, "- Address: "+addr)
	}
	if site.Hours != "" {
		details = append(details, "- Hours: "+site.Hours)
	}

	sections := map[string]*output.LlmsSection{}
	order := []string{"Pages", "Services", "Service Areas", "Blog"}
	for _, title := range order {
		sections[title] = &output.LlmsSection{Title: title}
	}
	for _, j := range jobs {
		link := output.LlmsLink{Title: j.page.Title, URL: r.urls.Page(j.page.Slug), Description: j.desc}
		switch j.page.Type {
		case model.PageServiceSingle:
			sections["Services"].Links = append(sections["Services"].Links, link)
		case model.PageLocation:
			sections["Service Areas"].Links = append(sections["Service Areas"].Links, link)
		case model.PageBlogPost:
			if link.Description == "" {
				if post, ok := postBySlug(r.facts.Posts, strings.TrimPrefix(j.page.Slug, "blog/")); ok {
					summary, err := output.MarkdownSummary(post.Content, 200)
					if err != nil {
						return "", fmt.Errorf("summarizing post %s: %w", post.Slug, err)
					}
					link.Description = summary
				}
			}
			sections["Blog"].Links = append(sections["Blog"].Links, link)
		default:
			sections["Pages"].Links = append(sections["Pages"].Links, link)
		}
	}

	doc := output.LlmsDoc{
		Name:    site.SiteName(),
		Tagline: site.Tagline,
		Details: strings.Join(details, "\n"),
	}
	for _, title := range order {
		doc.Sections = append(doc.Sections, *sections[title])
	}
	return output.GenerateLlmsTxt(doc), nil
}

func postBySlug(posts []model.BlogPost, slug string) (model.BlogPost, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return model.BlogPost{}, false
}
