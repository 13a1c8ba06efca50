package ai

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
)

// FallbackContent is the deterministic copy used when the model cannot
// answer. It uses the same tag vocabulary as Sanitize output.
func FallbackContent(p ContentParams) string {
	vocab := rich.LookupVocabulary(p.Industry)
	name := html.EscapeString(p.BusinessName)
	label := html.EscapeString(vocab.Label)
	trade := html.EscapeString(vocab.Trade)
	area := html.EscapeString(p.area())
	if area == "" {
		area = "your area"
	}
	service := html.EscapeString(p.ServiceName)
	if service == "" {
		service = label
	}

	var b strings.Builder
	switch p.PageType {
	case "home":
		fmt.Fprintf(&b, "<h2>Trusted %s in %s</h2>\n", label, area)
		fmt.Fprintf(&b, "<p>%s helps homeowners and businesses in %s with dependable %s. Our %s show up on time, explain the work clearly and stand behind every job.</p>\n", name, area, label, trade)
		b.WriteString("<h3>Why customers choose us</h3>\n<ul>\n")
		for _, badge := range vocab.Badges {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(badge))
		}
		b.WriteString("</ul>\n")
	case "about":
		fmt.Fprintf(&b, "<h2>About %s</h2>\n", name)
		fmt.Fprintf(&b, "<p>%s is a local %s company serving %s. We built our reputation one job at a time by treating every property as if it were our own.</p>\n", name, label, area)
		b.WriteString("<h3>How we work</h3>\n<ol>\n")
		for _, step := range vocab.Process {
			fmt.Fprintf(&b, "<li>%s: %s</li>\n", html.EscapeString(step.Title), html.EscapeString(step.Description))
		}
		b.WriteString("</ol>\n")
	case "services", "service-single":
		fmt.Fprintf(&b, "<h2>%s in %s</h2>\n", service, area)
		fmt.Fprintf(&b, "<p>%s provides %s with trained %s and the right equipment for the job.</p>\n", name, service, trade)
		b.WriteString("<h3>Signs you need help</h3>\n<ul>\n")
		for _, s := range vocab.Symptoms {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(s))
		}
		b.WriteString("</ul>\n")
	case "location", "locations":
		fmt.Fprintf(&b, "<h2>%s Serving %s</h2>\n", html.EscapeString(rich.Title(vocab.Label)), area)
		fmt.Fprintf(&b, "<p>%s is proud to serve %s. Local %s know the area and can reach you quickly.</p>\n", name, area, trade)
		b.WriteString("<h3>Common causes we see locally</h3>\n<ul>\n")
		for _, c := range vocab.Causes {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(c))
		}
		b.WriteString("</ul>\n")
	case "contact":
		fmt.Fprintf(&b, "<h2>Contact %s</h2>\n", name)
		fmt.Fprintf(&b, "<p>Tell us about your project and a member of our team will get back to you promptly. We serve %s.</p>\n", area)
	case "blog", "blog-post":
		fmt.Fprintf(&b, "<h2>%s Tips From %s</h2>\n", html.EscapeString(rich.Title(vocab.Label)), name)
		fmt.Fprintf(&b, "<p>Practical advice from our %s to help you protect your property in %s.</p>\n", trade, area)
	default:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", name)
		fmt.Fprintf(&b, "<p>%s offers %s in %s.</p>\n", name, label, area)
	}
	return strings.TrimSpace(b.String())
}

// GenerateOrFallback returns model copy, or FallbackContent when gen is
// nil or fails. Failures are logged at Warn and never returned.
func GenerateOrFallback(ctx context.Context, gen Generator, p ContentParams, logger *slog.Logger, rec metrics.Recorder) string {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	if gen == nil {
		rec.IncAIFallback(p.PageType)
		return FallbackContent(p)
	}

	out, err := gen.GenerateContent(ctx, p)
	if err == nil {
		out = Sanitize(out, p.MaxWords())
	}
	if err != nil || out == "" {
		if err == nil {
			err = errors.New("empty content")
		}
		logger.Warn("AI content generation failed, using template copy", "page_type", p.PageType, "business", p.BusinessName, "error", err)
		rec.IncAIFallback(p.PageType)
		return FallbackContent(p)
	}
	return out
}
