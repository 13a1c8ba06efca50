// Package theme derives the site palette and shared CSS from brand colors.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// AdjustBrightness lightens (percent > 0) or darkens (percent < 0) a hex
// color. Each channel moves by round(percent*255/100) and is clamped to
// [0,255]. Three-digit hex is expanded. Input that is not a hex color is
// returned unchanged.
func AdjustBrightness(hex string, percent float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	if percent > 100 {
		percent = 100
	} else if percent < -100 {
		percent = -100
	}
	amt := int(math.Round(percent * 255 / 100))
	return fmt.Sprintf("#%02x%02x%02x", clamp(r+amt), clamp(g+amt), clamp(b+amt))
}

// WithAlpha renders a hex color as rgba with the given opacity.
func WithAlpha(hex string, alpha float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// IsDark reports whether a color needs light foreground text.
func IsDark(hex string) bool {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return false
	}
	// ITU-R BT.601 luma
	return (299*r+587*g+114*b)/1000 < 140
}

func parseHex(hex string) (r, g, b int, ok bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Palette is the full set of theme colors derived from BrandColors.
type Palette struct {
	model.BrandColors
	PrimaryHover   string
	PrimaryLight   string
	PrimaryDark    string
	SecondaryHover string
	SecondaryLight string
	AccentHover    string
	AccentLight    string
	TextMuted      string
	Border         string
	Surface        string
	OnPrimary      string
	OnSecondary    string
	OnAccent       string
}

// Derive computes the palette. Missing brand colors are filled from
// model.DefaultColors so the result is always complete.
func Derive(c model.BrandColors) Palette {
	def := model.DefaultColors()
	pick := func(v, fallback string) string {
		if _, _, _, ok := parseHex(v); ok {
			return v
		}
		return fallback
	}
	c.Primary = pick(c.Primary, def.Primary)
	c.Secondary = pick(c.Secondary, def.Secondary)
	c.Accent = pick(c.Accent, def.Accent)
	c.Background = pick(c.Background, def.Background)
	c.Text = pick(c.Text, def.Text)

	surfaceShift := -4.0
	if IsDark(c.Background) {
		surfaceShift = 6
	}

	return Palette{
		BrandColors:    c,
		PrimaryHover:   AdjustBrightness(c.Primary, -12),
		PrimaryLight:   AdjustBrightness(c.Primary, 40),
		PrimaryDark:    AdjustBrightness(c.Primary, -25),
		SecondaryHover: AdjustBrightness(c.Secondary, -12),
		SecondaryLight: AdjustBrightness(c.Secondary, 40),
		AccentHover:    AdjustBrightness(c.Accent, -12),
		AccentLight:    AdjustBrightness(c.Accent, 35),
		TextMuted:      AdjustBrightness(c.Text, 30),
		Border:         AdjustBrightness(c.Background, -12),
		Surface:        AdjustBrightness(c.Background, surfaceShift),
		OnPrimary:      foreground(c.Primary),
		OnSecondary:    foreground(c.Secondary),
		OnAccent:       foreground(c.Accent),
	}
}

func foreground(bg string) string {
	if IsDark(bg) {
		return "#ffffff"
	}
	return "#111827"
}
