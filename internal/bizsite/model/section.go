package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionType is the discriminant of a page section.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionServices     SectionType = "services"
	SectionAbout        SectionType = "about"
	SectionContact      SectionType = "contact"
	SectionCTA          SectionType = "cta"
	SectionTestimonials SectionType = "testimonials"
	SectionLocations    SectionType = "locations"
	SectionFAQ          SectionType = "faq"
	SectionFeatures     SectionType = "features"
	SectionTrustBadges  SectionType = "trust-badges"
	SectionBlogList     SectionType = "blog-list"
	SectionCustomHTML   SectionType = "custom-html"
	SectionImage        SectionType = "image"
	SectionVideo        SectionType = "video"
	SectionText         SectionType = "text"
)

// SectionTypes lists every known section kind.
var SectionTypes = []SectionType{
	SectionHero, SectionServices, SectionAbout, SectionContact, SectionCTA,
	SectionTestimonials, SectionLocations, SectionFAQ, SectionFeatures,
	SectionTrustBadges, SectionBlogList, SectionCustomHTML, SectionImage,
	SectionVideo, SectionText,
}

// Known reports whether t is one of the declared section kinds.
func (t SectionType) Known() bool {
	_, ok := decoders[t]
	return ok
}

// PageSection is one ordered, typed content block of a page.
type PageSection struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Order   int            `json:"order"`
	Content SectionContent `json:"content"`
}

// SectionContent is the sealed union of section payloads. Every variant
// dispatches to exactly one SectionVisitor method, so a renderer that
// implements SectionVisitor handles every kind or fails to compile.
type SectionContent interface {
	SectionType() SectionType
	Accept(v SectionVisitor) string
}

// SectionVisitor renders one section variant.
type SectionVisitor interface {
	VisitHero(HeroContent) string
	VisitServices(ServicesContent) string
	VisitAbout(AboutContent) string
	VisitContact(ContactContent) string
	VisitCTA(CTAContent) string
	VisitTestimonials(TestimonialsContent) string
	VisitLocations(LocationsContent) string
	VisitFAQ(FAQContent) string
	VisitFeatures(FeaturesContent) string
	VisitTrustBadges(TrustBadgesContent) string
	VisitBlogList(BlogListContent) string
	VisitCustomHTML(CustomHTMLContent) string
	VisitImage(ImageContent) string
	VisitVideo(VideoContent) string
	VisitText(TextContent) string
	VisitUnknown(UnknownContent) string
	VisitInvalid(InvalidContent) string
}

type HeroContent struct {
	Headline         string `json:"headline,omitempty"`
	Subheadline      string `json:"subheadline,omitempty"`
	CTAText          string `json:"ctaText,omitempty"`
	CTALink          string `json:"ctaLink,omitempty"`
	SecondaryCTAText string `json:"secondaryCtaText,omitempty"`
	SecondaryCTALink string `json:"secondaryCtaLink,omitempty"`
	BackgroundImage  string `json:"backgroundImage,omitempty"`
}

type ServicesContent struct {
	Title      string   `json:"title,omitempty"`
	Subtitle   string   `json:"subtitle,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

type AboutContent struct {
	Title      string   `json:"title,omitempty"`
	Body       string   `json:"body,omitempty"`
	Image      string   `json:"image,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type ContactContent struct {
	Title      string      `json:"title,omitempty"`
	Subtitle   string      `json:"subtitle,omitempty"`
	SubmitText string      `json:"submitText,omitempty"`
	Fields     []FormField `json:"fields,omitempty"`
	ShowMap    bool        `json:"showMap,omitempty"`
}

type CTAContent struct {
	Headline   string `json:"headline,omitempty"`
	Body       string `json:"body,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonLink string `json:"buttonLink,omitempty"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
	Rating int    `json:"rating,omitempty"`
}

type TestimonialsContent struct {
	Title string        `json:"title,omitempty"`
	Items []Testimonial `json:"items,omitempty"`
}

type LocationsContent struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQContent struct {
	Title string    `json:"title,omitempty"`
	Items []FAQItem `json:"items,omitempty"`
}

type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type FeaturesContent struct {
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Items    []Feature `json:"items,omitempty"`
}

type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`
}

type TrustBadgesContent struct {
	Title  string  `json:"title,omitempty"`
	Badges []Badge `json:"badges,omitempty"`
}

type BlogListContent struct {
	Title string `json:"title,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type CustomHTMLContent struct {
	HTML string `json:"html,omitempty"`
}

type ImageContent struct {
	Src     string `json:"src,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Link    string `json:"link,omitempty"`
}

type VideoContent struct {
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type TextContent struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Align string `json:"align,omitempty"`
}

// UnknownContent carries a section whose type is not recognized.
type UnknownContent struct {
	Type SectionType
	Raw  json.RawMessage
}

// InvalidContent carries a known section whose payload failed to decode.
type InvalidContent struct {
	Type SectionType
	Raw  string
	Err  string
}

func (HeroContent) SectionType() SectionType         { return SectionHero }
func (ServicesContent) SectionType() SectionType     { return SectionServices }
func (AboutContent) SectionType() SectionType        { return SectionAbout }
func (ContactContent) SectionType() SectionType      { return SectionContact }
func (CTAContent) SectionType() SectionType          { return SectionCTA }
func (TestimonialsContent) SectionType() SectionType { return SectionTestimonials }
func (LocationsContent) SectionType() SectionType    { return SectionLocations }
func (FAQContent) SectionType() SectionType          { return SectionFAQ }
func (FeaturesContent) SectionType() SectionType     { return SectionFeatures }
func (TrustBadgesContent) SectionType() SectionType  { return SectionTrustBadges }
func (BlogListContent) SectionType() SectionType     { return SectionBlogList }
func (CustomHTMLContent) SectionType() SectionType   { return SectionCustomHTML }
func (ImageContent) SectionType() SectionType        { return SectionImage }
func (VideoContent) SectionType() SectionType        { return SectionVideo }
func (TextContent) SectionType() SectionType         { return SectionText }
func (c UnknownContent) SectionType() SectionType    { return c.Type }
func (c InvalidContent) SectionType() SectionType    { return c.Type }

func (c HeroContent) Accept(v SectionVisitor) string         { return v.VisitHero(c) }
func (c ServicesContent) Accept(v SectionVisitor) string     { return v.VisitServices(c) }
func (c AboutContent) Accept(v SectionVisitor) string        { return v.VisitAbout(c) }
func (c ContactContent) Accept(v SectionVisitor) string      { return v.VisitContact(c) }
func (c CTAContent) Accept(v SectionVisitor) string          { return v.VisitCTA(c) }
func (c TestimonialsContent) Accept(v SectionVisitor) string { return v.VisitTestimonials(c) }
func (c LocationsContent) Accept(v SectionVisitor) string    { return v.VisitLocations(c) }
func (c FAQContent) Accept(v SectionVisitor) string          { return v.VisitFAQ(c) }
func (c FeaturesContent) Accept(v SectionVisitor) string     { return v.VisitFeatures(c) }
func (c TrustBadgesContent) Accept(v SectionVisitor) string  { return v.VisitTrustBadges(c) }
func (c BlogListContent) Accept(v SectionVisitor) string     { return v.VisitBlogList(c) }
func (c CustomHTMLContent) Accept(v SectionVisitor) string   { return v.VisitCustomHTML(c) }
func (c ImageContent) Accept(v SectionVisitor) string        { return v.VisitImage(c) }
func (c VideoContent) Accept(v SectionVisitor) string        { return v.VisitVideo(c) }
func (c TextContent) Accept(v SectionVisitor) string         { return v.VisitText(c) }
func (c UnknownContent) Accept(v SectionVisitor) string      { return v.VisitUnknown(c) }
func (c InvalidContent) Accept(v SectionVisitor) string      { return v.VisitInvalid(c) }

type decodeFunc func([]byte) (SectionContent, error)

func decodeAs[T SectionContent]() decodeFunc {
	return func(data []byte) (SectionContent, error) {
		var c T
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&c); err != nil {
			return nil, err
		}
		return c, nil
	}
}

var decoders = map[SectionType]decodeFunc{
	SectionHero:         decodeAs[HeroContent](),
	SectionServices:     decodeAs[ServicesContent](),
	SectionAbout:        decodeAs[AboutContent](),
	SectionContact:      decodeAs[ContactContent](),
	SectionCTA:          decodeAs[CTAContent](),
	SectionTestimonials: decodeAs[TestimonialsContent](),
	SectionLocations:    decodeAs[LocationsContent](),
	SectionFAQ:          decodeAs[FAQContent](),
	SectionFeatures:     decodeAs[FeaturesContent](),
	SectionTrustBadges:  decodeAs[TrustBadgesContent](),
	SectionBlogList:     decodeAs[BlogListContent](),
	SectionCustomHTML:   decodeAs[CustomHTMLContent](),
	SectionImage:        decodeAs[ImageContent](),
	SectionVideo:        decodeAs[VideoContent](),
	SectionText:         decodeAs[TextContent](),
}

// DecodeSectionContent decodes a raw payload for the given section type.
// It never fails: unknown types yield UnknownContent and payloads that do
// not parse or type-check yield InvalidContent. A payload given as a JSON
// string is parsed as the string's contents, which is how editors store it.
func DecodeSectionContent(t SectionType, raw json.RawMessage) SectionContent {
	dec, ok := decoders[t]
	if !ok {
		return UnknownContent{Type: t, Raw: raw}
	}

	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		data = []byte("{}")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return InvalidContent{Type: t, Raw: string(raw), Err: err.Error()}
		}
		data = []byte(s)
	}

	c, err := dec(data)
	if err != nil {
		return InvalidContent{Type: t, Raw: string(data), Err: err.Error()}
	}
	return c
}

type sectionJSON struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Order   int             `json:"order"`
	Content json.RawMessage `json:"content"`
}

// UnmarshalJSON decodes the section and its type-directed content.
func (s *PageSection) UnmarshalJSON(data []byte) error {
	var aux sectionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decoding section: %w", err)
	}
	s.ID = aux.ID
	s.Type = aux.Type
	s.Order = aux.Order
	s.Content = DecodeSectionContent(aux.Type, aux.Content)
	return nil
}

// MarshalJSON encodes the section with its content payload.
func (s PageSection) MarshalJSON() ([]byte, error) {
	aux := sectionJSON{ID: s.ID, Type: s.Type, Order: s.Order}
	switch c := s.Content.(type) {
	case nil:
		aux.Content = json.RawMessage("{}")
	case UnknownContent:
		aux.Content = c.Raw
	case InvalidContent:
		raw, err := json.Marshal(c.Raw)
		if err != nil {
			return nil, err
		}
		aux.Content = raw
	default:
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encoding %s content: %w", s.Type, err)
		}
		aux.Content = raw
	}
	if len(aux.Content) == 0 {
		aux.Content = json.RawMessage("{}")
	}
	return json.Marshal(aux)
}

// ContentOrEmpty returns the section content, decoding an empty payload
// when none was set.
func (s PageSection) ContentOrEmpty() SectionContent {
	if s.Content != nil {
		return s.Content
	}
	return DecodeSectionContent(s.Type, nil)
}
