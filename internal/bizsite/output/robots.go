package output

import (
	"fmt"
	"strings"
)

// RobotsOptions controls robots.txt generation.
type RobotsOptions struct {
	SitemapURL string
	// ExtraBots get their own allow-all group, e.g. AI crawlers.
	ExtraBots []string
	Disallow  []string
}

// GenerateRobotsTxt generates an allow-all robots.txt with a sitemap reference.
func GenerateRobotsTxt(opts RobotsOptions) string {
	var lines []string

	lines = append(lines, "User-agent: *", "Allow: /")
	for _, path := range opts.Disallow {
		lines = append(lines, "Disallow: "+path)
	}
	lines = append(lines, "")

	for _, bot := range opts.ExtraBots {
		lines = append(lines, fmt.Sprintf("User-agent: %s", bot), "Allow: /", "")
	}

	if opts.SitemapURL != "" {
		lines = append(lines, fmt.Sprintf("Sitemap: %s", opts.SitemapURL))
	}

	return strings.Join(lines, "\n") + "\n"
}
