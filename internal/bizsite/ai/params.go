// Package ai produces marketing copy with an LLM and falls back to
// deterministic template copy when the model is unavailable.
package ai

import (
	"fmt"
	"strings"

	"github.com/supermodeltools/bizsite/internal/bizsite/rich"
)

// DefaultTargetWords is used when ContentParams.TargetWords is zero.
const DefaultTargetWords = 400

// ContentParams describe the copy to write for one page.
type ContentParams struct {
	BusinessName  string `json:"businessName" validate:"required"`
	Industry      string `json:"industry"`
	ServiceName   string `json:"serviceName,omitempty"`
	LocationCity  string `json:"locationCity,omitempty"`
	LocationState string `json:"locationState,omitempty"`
	PageType      string `json:"pageType" validate:"required"`
	TargetWords   int    `json:"targetWords,omitempty" validate:"omitempty,min=50,max=3000"`
}

func (p ContentParams) targetWords() int {
	if p.TargetWords > 0 {
		return p.TargetWords
	}
	return DefaultTargetWords
}

// MaxWords is the hard cap applied to generated copy.
func (p ContentParams) MaxWords() int {
	return p.targetWords() * 3 / 2
}

func (p ContentParams) area() string {
	switch {
	case p.LocationCity != "" && p.LocationState != "":
		return p.LocationCity + ", " + p.LocationState
	case p.LocationCity != "":
		return p.LocationCity
	}
	return ""
}

// Prompt builds the instruction sent to the model.
func Prompt(p ContentParams) string {
	vocab := rich.LookupVocabulary(p.Industry)
	var b strings.Builder
	fmt.Fprintf(&b, "Write website copy for %q, a %s business.\n", p.BusinessName, vocab.Label)
	fmt.Fprintf(&b, "Page type: %s.\n", p.PageType)
	if p.ServiceName != "" {
		fmt.Fprintf(&b, "The page is about the service %q.\n", p.ServiceName)
	}
	if area := p.area(); area != "" {
		fmt.Fprintf(&b, "The business serves %s; mention it naturally.\n", area)
	}
	fmt.Fprintf(&b, "Length: about %d words.\n", p.targetWords())
	b.WriteString("Return only an HTML fragment using the tags h2, h3, p, ul, ol and li. ")
	b.WriteString("No other tags, no attributes, no markdown, no code fences.\n")
	return b.String()
}
