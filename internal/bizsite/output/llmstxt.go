package output

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// LlmsLink is one entry of an llms.txt section.
type LlmsLink struct {
	Title       string
	URL         string
	Description string
}

// LlmsSection is a titled list of links.
type LlmsSection struct {
	Title string
	Links []LlmsLink
}

// LlmsDoc is the input to GenerateLlmsTxt.
type LlmsDoc struct {
	Name     string
	Tagline  string
	Details  string
	Sections []LlmsSection
}

// GenerateLlmsTxt generates an llms.txt file in the llmstxt.org format.
// Empty sections are skipped.
func GenerateLlmsTxt(doc LlmsDoc) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("# %s", doc.Name), "")
	if doc.Tagline != "" {
		lines = append(lines, fmt.Sprintf("> %s", doc.Tagline), "")
	}
	if doc.Details != "" {
		lines = append(lines, strings.TrimSpace(doc.Details), "")
	}

	for _, s := range doc.Sections {
		if len(s.Links) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("## %s", s.Title))
		for _, l := range s.Links {
			if l.Description != "" {
				lines = append(lines, fmt.Sprintf("- [%s](%s): %s", l.Title, l.URL, l.Description))
			} else {
				lines = append(lines, fmt.Sprintf("- [%s](%s)", l.Title, l.URL))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// MarkdownSummary converts an HTML fragment to Markdown and returns its
// first paragraph collapsed onto one line, cut at maxRunes.
func MarkdownSummary(fragment string, maxRunes int) (string, error) {
	md, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting html to markdown: %w", err)
	}
	var para string
	for _, block := range strings.Split(md, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" && !strings.HasPrefix(block, "#") {
			para = block
			break
		}
	}
	return truncate(strings.Join(strings.Fields(para), " "), maxRunes), nil
}
