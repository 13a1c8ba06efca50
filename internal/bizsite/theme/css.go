package theme

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// CSSVariables renders the :root custom-property block for a palette.
func CSSVariables(p Palette) string {
	vars := [][2]string{
		{"--color-primary", p.Primary},
		{"--color-primary-hover", p.PrimaryHover},
		{"--color-primary-light", p.PrimaryLight},
		{"--color-primary-dark", p.PrimaryDark},
		{"--color-secondary", p.Secondary},
		{"--color-secondary-hover", p.SecondaryHover},
		{"--color-secondary-light", p.SecondaryLight},
		{"--color-accent", p.Accent},
		{"--color-accent-hover", p.AccentHover},
		{"--color-accent-light", p.AccentLight},
		{"--color-background", p.Background},
		{"--color-surface", p.Surface},
		{"--color-text", p.Text},
		{"--color-text-muted", p.TextMuted},
		{"--color-border", p.Border},
		{"--color-on-primary", p.OnPrimary},
		{"--color-on-secondary", p.OnSecondary},
		{"--color-on-accent", p.OnAccent},
		{"--shadow-card", "0 4px 14px " + WithAlpha(p.Secondary, 0.08)},
		{"--radius", "10px"},
		{"--max-width", "1200px"},
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v[0], v[1])
	}
	b.WriteString("}\n")
	return b.String()
}

// BaseCSS is the shared stylesheet: variables followed by layout, header,
// footer and section styles. Page-type CSS from the rich generators is
// appended after it.
func BaseCSS(colors model.BrandColors) string {
	return CSSVariables(Derive(colors)) + baseStyles
}

const baseStyles = `*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; color: var(--color-text); background: var(--color-background); }
img { max-width: 100%; height: auto; }
a { color: var(--color-primary); }
a:hover { color: var(--color-primary-hover); }
.container { max-width: var(--max-width); margin: 0 auto; padding: 0 1.25rem; }
.section { padding: 4rem 0; }
.section-alt { background: var(--color-surface); }
.section-title { font-size: 2rem; margin: 0 0 .5rem; text-align: center; }
.section-subtitle { color: var(--color-text-muted); text-align: center; margin: 0 auto 2.5rem; max-width: 720px; }
.btn { display: inline-block; padding: .8rem 1.6rem; border-radius: var(--radius); font-weight: 600; text-decoration: none; border: 2px solid transparent; transition: background .2s, color .2s; }
.btn-primary { background: var(--color-primary); color: var(--color-on-primary); }
.btn-primary:hover { background: var(--color-primary-hover); color: var(--color-on-primary); }
.btn-accent { background: var(--color-accent); color: var(--color-on-accent); }
.btn-accent:hover { background: var(--color-accent-hover); color: var(--color-on-accent); }
.btn-outline { border-color: currentColor; color: inherit; background: transparent; }
.grid { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.card { background: var(--color-background); border: 1px solid var(--color-border); border-radius: var(--radius); padding: 1.5rem; box-shadow: var(--shadow-card); }
.card h3 { margin-top: 0; }
.icon { font-size: 2rem; line-height: 1; }

.topbar { background: var(--color-secondary); color: var(--color-on-secondary); font-size: .875rem; }
.topbar .container { display: flex; justify-content: space-between; gap: 1rem; padding-top: .4rem; padding-bottom: .4rem; }
.topbar a { color: inherit; text-decoration: none; }
.site-header { position: sticky; top: 0; z-index: 50; background: var(--color-background); border-bottom: 1px solid var(--color-border); }
.site-header .container { display: flex; align-items: center; justify-content: space-between; min-height: 72px; gap: 1rem; }
.logo { display: flex; align-items: center; gap: .6rem; font-weight: 800; font-size: 1.25rem; color: var(--color-secondary); text-decoration: none; }
.logo img { max-height: 48px; }
.main-nav ul { list-style: none; margin: 0; padding: 0; display: flex; gap: 1.25rem; align-items: center; }
.main-nav a { color: var(--color-text); text-decoration: none; font-weight: 500; }
.main-nav a.active, .main-nav a:hover { color: var(--color-primary); }
.dropdown { position: relative; }
.dropdown-menu { display: none; position: absolute; top: 100%; left: 0; min-width: 220px; background: var(--color-background); border: 1px solid var(--color-border); border-radius: var(--radius); box-shadow: var(--shadow-card); padding: .5rem 0; flex-direction: column; gap: 0; }
.dropdown:hover .dropdown-menu, .dropdown:focus-within .dropdown-menu { display: flex; }
.dropdown-menu a { display: block; padding: .45rem 1rem; }
.header-cta { white-space: nowrap; }
.menu-toggle { display: none; background: none; border: 0; font-size: 1.75rem; cursor: pointer; color: var(--color-text); }
.mobile-menu { display: none; border-top: 1px solid var(--color-border); padding: 1rem 1.25rem; }
.mobile-menu.open { display: block; }
.mobile-menu ul { list-style: none; margin: 0; padding: 0; }
.mobile-menu li { padding: .35rem 0; }

.breadcrumbs { font-size: .875rem; color: var(--color-text-muted); padding: .75rem 0; }
.breadcrumbs ol { list-style: none; display: flex; flex-wrap: wrap; gap: .4rem; margin: 0; padding: 0; }
.breadcrumbs li + li::before { content: "/"; margin-right: .4rem; }

.site-footer { background: var(--color-secondary); color: var(--color-on-secondary); padding: 3.5rem 0 1.5rem; margin-top: 0; }
.site-footer a { color: inherit; opacity: .85; text-decoration: none; }
.site-footer a:hover { opacity: 1; }
.footer-grid { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); }
.footer-grid h4 { margin-top: 0; }
.footer-grid ul { list-style: none; margin: 0; padding: 0; }
.footer-grid li { padding: .2rem 0; }
.nap address { font-style: normal; }
.footer-map iframe { width: 100%; height: 220px; border: 0; border-radius: var(--radius); margin-top: 2rem; }
.social-links { display: flex; gap: 1rem; margin-top: 1rem; }
.footer-bottom { border-top: 1px solid rgba(255,255,255,.15); margin-top: 2.5rem; padding-top: 1.25rem; display: flex; flex-wrap: wrap; justify-content: space-between; gap: 1rem; font-size: .875rem; }
.legal-links { display: flex; gap: 1rem; }
.back-to-top { position: fixed; right: 1.25rem; bottom: 1.25rem; width: 44px; height: 44px; border-radius: 50%; border: 0; background: var(--color-primary); color: var(--color-on-primary); font-size: 1.25rem; cursor: pointer; opacity: 0; pointer-events: none; transition: opacity .2s; }
.back-to-top.visible { opacity: 1; pointer-events: auto; }

.hero { background: linear-gradient(135deg, var(--color-secondary), var(--color-primary-dark)); color: var(--color-on-secondary); padding: 6rem 0; text-align: center; background-size: cover; background-position: center; }
.hero h1 { font-size: clamp(2rem, 5vw, 3.25rem); margin: 0 0 1rem; }
.hero p { font-size: 1.2rem; max-width: 720px; margin: 0 auto 2rem; opacity: .92; }
.hero-actions { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; }
.cta-band { background: var(--color-primary); color: var(--color-on-primary); text-align: center; padding: 3.5rem 0; }
.cta-band h2 { margin-top: 0; }
.testimonial blockquote { margin: 0 0 1rem; font-style: italic; }
.stars { color: var(--color-accent); letter-spacing: 2px; }
.faq-item { border-bottom: 1px solid var(--color-border); padding: 1rem 0; }
.faq-item summary { font-weight: 600; cursor: pointer; }
.badges { display: flex; flex-wrap: wrap; gap: 1.5rem; justify-content: center; }
.badge { display: flex; align-items: center; gap: .5rem; font-weight: 600; padding: .75rem 1.25rem; border: 1px solid var(--color-border); border-radius: 999px; }
.contact-form { display: grid; gap: 1rem; max-width: 640px; margin: 0 auto; }
.contact-form label { display: grid; gap: .35rem; font-weight: 500; }
.contact-form input, .contact-form textarea, .contact-form select { font: inherit; padding: .7rem .9rem; border: 1px solid var(--color-border); border-radius: var(--radius); }
.form-status { font-weight: 600; color: var(--color-primary); }
.media { margin: 0; text-align: center; }
.media figcaption { color: var(--color-text-muted); font-size: .9rem; margin-top: .5rem; }
.video-wrapper { position: relative; padding-bottom: 56.25%; height: 0; overflow: hidden; border-radius: var(--radius); }
.video-wrapper iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
.text-block.align-center { text-align: center; }
.post-card img { border-radius: var(--radius); }
.post-meta { color: var(--color-text-muted); font-size: .875rem; }
.empty-state { text-align: center; color: var(--color-text-muted); padding: 2rem 0; }
.section-invalid { border: 2px dashed #dc2626; background: #fef2f2; padding: 1rem; margin: 1rem auto; max-width: var(--max-width); }
.section-invalid pre { white-space: pre-wrap; word-break: break-word; }
.last-updated { color: var(--color-text-muted); font-size: .85rem; }

@media (max-width: 900px) {
  .main-nav, .header-cta { display: none; }
  .menu-toggle { display: block; }
  .topbar .container { flex-direction: column; align-items: center; }
}
`
