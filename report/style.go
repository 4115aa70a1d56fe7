package report

import (
	"strings"

	"github.com/fatih/color"
)

// Styler decorates report text. It is the only place terminal escape codes
// are produced.
type Styler interface {
	Heading(s string) string
	Emphasis(s string) string
	Rule() string
}

const ruleWidth = 47

// PlainStyler leaves text unchanged.
type PlainStyler struct{}

func (PlainStyler) Heading(s string) string  { return s }
func (PlainStyler) Emphasis(s string) string { return s }
func (PlainStyler) Rule() string             { return strings.Repeat("=", ruleWidth) }

// ANSIStyler styles text with ANSI escape sequences via fatih/color.
type ANSIStyler struct {
	heading  *color.Color
	emphasis *color.Color
	rule     *color.Color
}

// NewANSIStyler returns a styler for mode: "always" forces escapes, "never"
// suppresses them and "auto" leaves the decision to color.NoColor (terminal
// detection and the NO_COLOR environment variable).
func NewANSIStyler(mode string) *ANSIStyler {
	s := &ANSIStyler{
		heading:  color.New(color.FgHiMagenta),
		emphasis: color.New(color.Bold, color.FgHiCyan),
		rule:     color.New(color.Faint),
	}

	for _, c := range []*color.Color{s.heading, s.emphasis, s.rule} {
		switch mode {
		case "always":
			c.EnableColor()
		case "never":
			c.DisableColor()
		}
	}

	return s
}

func (s *ANSIStyler) Heading(text string) string  { return s.heading.Sprint(text) }
func (s *ANSIStyler) Emphasis(text string) string { return s.emphasis.Sprint(text) }
func (s *ANSIStyler) Rule() string                { return s.rule.Sprint(strings.Repeat("=", ruleWidth)) }
