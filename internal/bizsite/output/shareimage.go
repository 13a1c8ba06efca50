package output

import (
	"fmt"
	"html"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/theme"
)

const (
	svgWidth  = 1200
	svgHeight = 630
)

// ShareImage describes an Open Graph image for one page.
type ShareImage struct {
	SiteName string
	Title    string
	Subtitle string
	// Pills are short labels such as the industry or a city.
	Pills  []string
	Colors model.BrandColors
}

// GenerateShareSVG renders a 1200x630 SVG share image in the brand colors.
func GenerateShareSVG(img ShareImage) string {
	p := theme.Derive(img.Colors)

	var content strings.Builder
	if img.Subtitle != "" {
		fmt.Fprintf(&content, `  <text x="60" y="300" font-family="system-ui,sans-serif" font-size="26" fill="%s" opacity="0.85">%s</text>`+"\n",
			p.OnSecondary, svgEscape(truncate(img.Subtitle, 80)))
	}

	pillX, pillY := 60, 360
	for _, label := range img.Pills {
		if label == "" {
			continue
		}
		label = truncate(label, 30)
		w := len([]rune(label))*11 + 32
		if pillX+w > svgWidth-60 {
			break
		}
		fmt.Fprintf(&content, `  <rect x="%d" y="%d" width="%d" height="40" rx="20" fill="%s"/>`+"\n", pillX, pillY, w, p.Accent)
		fmt.Fprintf(&content, `  <text x="%d" y="%d" font-family="system-ui,sans-serif" font-size="18" font-weight="600" fill="%s">%s</text>`+"\n",
			pillX+16, pillY+27, p.OnAccent, svgEscape(label))
		pillX += w + 14
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <defs>
    <linearGradient id="bg-grad" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0" stop-color="%s"/>
      <stop offset="1" stop-color="%s"/>
    </linearGradient>
  </defs>
  <rect width="%d" height="%d" fill="url(#bg-grad)"/>
  <text x="60" y="96" font-family="system-ui,sans-serif" font-size="24" font-weight="600" fill="%s">%s</text>
  <text x="60" y="220" font-family="system-ui,sans-serif" font-size="60" font-weight="700" fill="%s">%s</text>
%s  <rect x="0" y="%d" width="%d" height="12" fill="%s"/>
</svg>
`,
		svgWidth, svgHeight, svgWidth, svgHeight,
		p.Secondary, p.PrimaryDark,
		svgWidth, svgHeight,
		p.AccentLight, svgEscape(img.SiteName),
		p.OnSecondary, svgEscape(truncate(img.Title, 34)),
		content.String(),
		svgHeight-12, svgWidth, p.Accent,
	)
}

func svgEscape(s string) string {
	return html.EscapeString(s)
}
