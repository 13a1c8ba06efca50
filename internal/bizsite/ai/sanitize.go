package ai

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

var allowedTags = map[string]bool{
	"h2": true, "h3": true, "p": true, "ul": true, "ol": true, "li": true,
}

var droppedContent = map[string]bool{
	"script": true, "style": true, "head": true, "title": true, "iframe": true, "noscript": true,
}

// Sanitize reduces model output to the h2, h3, p, ul, ol and li tags
// without attributes. Other tags are unwrapped to their text, script and
// style content is dropped, and a surrounding code fence is removed.
// When maxWords is positive, text past that many words is cut and open
// tags are closed.
func Sanitize(s string, maxWords int) string {
	s = stripFence(s)
	z := nethtml.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	var open []string
	skip := 0
	words := 0

	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			closeAll(&b, open)
			return strings.TrimSpace(b.String())

		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if droppedContent[tag] && tt == nethtml.StartTagToken {
				skip++
				continue
			}
			if skip > 0 || !allowedTags[tag] || tt == nethtml.SelfClosingTagToken {
				continue
			}
			b.WriteString("<" + tag + ">")
			open = append(open, tag)

		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if droppedContent[tag] {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip > 0 || !allowedTags[tag] {
				continue
			}
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] == tag {
					closeAll(&b, open[i:])
					open = open[:i]
					break
				}
			}

		case nethtml.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if maxWords > 0 {
				n := len(strings.Fields(text))
				if words+n > maxWords {
					b.WriteString(html.EscapeString(firstWords(text, maxWords-words)))
					closeAll(&b, open)
					return strings.TrimSpace(b.String())
				}
				words += n
			}
			b.WriteString(html.EscapeString(text))
		}
	}
}

func closeAll(b *strings.Builder, open []string) {
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</" + open[i] + ">")
	}
}

func firstWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Join(strings.Fields(s)[:n], " ")
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```html")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
