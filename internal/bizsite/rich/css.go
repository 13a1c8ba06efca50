package rich

// Each *CSS function returns the stylesheet fragment for its generator.
// Fragments assume the shared base CSS and its variables are present.

const commonCSS = `
.rich-hero { background: linear-gradient(135deg, var(--color-secondary), var(--color-primary-dark)); color: #fff; padding: 88px 0 72px; }
.rich-hero-compact { padding: 56px 0 40px; }
.rich-hero h1 { font-size: clamp(2rem, 4vw, 3rem); margin: 8px 0 16px; }
.rich-hero .lead { font-size: 1.2rem; max-width: 720px; opacity: .92; }
.eyebrow { display: inline-block; text-transform: uppercase; letter-spacing: .08em; font-size: .8rem; font-weight: 700; color: var(--color-accent-light); }
.hero-badges { display: flex; flex-wrap: wrap; gap: 12px; list-style: none; padding: 0; margin: 28px 0 0; }
.hero-badges li { background: rgba(255,255,255,.12); border-radius: 999px; padding: 6px 14px; font-size: .9rem; }
.emergency-strip { background: var(--color-accent); color: var(--color-on-accent); text-align: center; font-weight: 700; padding: 8px 0; }
.emergency-strip a { color: inherit; }
.checklist { list-style: none; padding: 0; display: grid; gap: 10px; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.checklist li { padding-left: 28px; position: relative; }
.checklist li::before { content: "✓"; position: absolute; left: 0; color: var(--color-primary); font-weight: 700; }
.why-card { text-align: center; }
.why-icon { display: inline-flex; width: 44px; height: 44px; border-radius: 50%; align-items: center; justify-content: center; background: var(--color-primary-light); color: var(--color-primary-dark); font-weight: 700; }
.steps { list-style: none; padding: 0; display: grid; gap: 24px; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); counter-reset: step; }
.step-number { display: inline-flex; width: 36px; height: 36px; border-radius: 50%; align-items: center; justify-content: center; background: var(--color-primary); color: var(--color-on-primary); font-weight: 700; }
.area-list { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 12px; }
.area-list a { display: block; padding: 8px 16px; border: 1px solid var(--color-border); border-radius: var(--radius); background: var(--color-surface); }
.price { font-weight: 700; color: var(--color-primary); }
`

// HomeCSS styles Home.
func HomeCSS() string {
	return commonCSS + `
.intro p { max-width: 820px; font-size: 1.1rem; }
.since { font-weight: 600; color: var(--color-text-muted); }
.symptoms { background: var(--color-surface); }
`
}

// AboutCSS styles About.
func AboutCSS() string {
	return commonCSS + `
.story p { max-width: 820px; font-size: 1.1rem; }
.value-card h3 { color: var(--color-primary); }
`
}

// ServicesCSS styles Services.
func ServicesCSS() string {
	return commonCSS + `
.rich-services .service-card { display: flex; flex-direction: column; }
.rich-services .card-link { margin-top: auto; }
.causes { background: var(--color-surface); }
`
}

// ContactCSS styles Contact.
func ContactCSS() string {
	return commonCSS + `
.contact-grid { display: grid; gap: 40px; grid-template-columns: 1fr 1.4fr; }
.contact-line { margin: 8px 0; }
.emergency-note { margin-top: 16px; font-weight: 700; color: var(--color-accent); }
.contact-form select { width: 100%; padding: 10px 12px; border: 1px solid var(--color-border); border-radius: var(--radius); font: inherit; }
@media (max-width: 900px) { .contact-grid { grid-template-columns: 1fr; } }
`
}

// LocationsCSS styles Locations.
func LocationsCSS() string {
	return commonCSS + `
.locations-index .location-card p { color: var(--color-text-muted); }
`
}

// BlogIndexCSS styles BlogIndex.
func BlogIndexCSS() string {
	return commonCSS + `
.blog-list .post-card img { width: 100%; aspect-ratio: 16/9; object-fit: cover; border-radius: var(--radius); }
`
}

// ServicePageCSS styles ServicePage.
func ServicePageCSS() string {
	return commonCSS + `
.detail-grid { display: grid; gap: 40px; grid-template-columns: 2fr 1fr; align-items: start; }
.detail-body p { font-size: 1.05rem; }
.detail-aside { position: sticky; top: 96px; }
.detail-aside .checklist { grid-template-columns: 1fr; }
.btn-block { display: block; text-align: center; width: 100%; }
@media (max-width: 900px) { .detail-grid { grid-template-columns: 1fr; } .detail-aside { position: static; } }
`
}

// LocationPageCSS styles LocationPage.
func LocationPageCSS() string {
	return commonCSS + `
.local-intro p { max-width: 820px; font-size: 1.05rem; }
`
}

// BlogPostCSS styles BlogPostPage.
func BlogPostCSS() string {
	return commonCSS + `
.container-narrow { max-width: 760px; }
.post { padding: 56px 0; }
.post-header h1 { font-size: clamp(1.8rem, 3.5vw, 2.6rem); margin-bottom: 8px; }
.post-image { width: 100%; border-radius: var(--radius); margin: 24px 0; }
.post-body { font-size: 1.1rem; line-height: 1.75; }
.post-body img { max-width: 100%; }
.post-tags { list-style: none; padding: 0; display: flex; gap: 8px; flex-wrap: wrap; }
.post-tags li { background: var(--color-primary-light); color: var(--color-primary-dark); border-radius: 999px; padding: 4px 12px; font-size: .85rem; }
`
}
