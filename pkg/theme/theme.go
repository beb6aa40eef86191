package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps class names to lipgloss styles.
// The zero value is not usable; create themes with New, Default or FromSpecs.
type Theme struct {
	classes map[string]lipgloss.Style
}

// New creates an empty theme. Every class token resolves to an unstyled style.
func New() *Theme {
	return &Theme{classes: make(map[string]lipgloss.Style)}
}

// Define registers (or replaces) the style for a class name.
func (t *Theme) Define(class string, style lipgloss.Style) {
	t.classes[class] = style
}

// Has reports whether the class is defined.
func (t *Theme) Has(class string) bool {
	_, ok := t.classes[class]
	return ok
}

// Classes returns the defined class names in sorted order.
func (t *Theme) Classes() []string {
	names := make([]string, 0, len(t.classes))
	for name := range t.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extend copies every class of other onto t, replacing classes with the same name.
func (t *Theme) Extend(other *Theme) {
	if other == nil {
		return
	}
	for name, style := range other.classes {
		t.classes[name] = style
	}
}

// Style resolves a whitespace separated list of class tokens into one style.
//
// Tokens are applied verbatim: unknown tokens are skipped and an empty list
// yields an unstyled style. When several classes set the same property the
// last one wins. Padding and margins come from the last class only, since
// lipgloss does not inherit them.
func (t *Theme) Style(tokens string) lipgloss.Style {
	fields := strings.Fields(tokens)

	var known []lipgloss.Style
	for _, f := range fields {
		if s, ok := t.classes[f]; ok {
			known = append(known, s)
		}
	}

	if len(known) == 0 {
		return lipgloss.NewStyle()
	}

	style := known[len(known)-1]
	for i := len(known) - 2; i >= 0; i-- {
		style = style.Inherit(known[i])
	}
	return style
}

// Render renders s with the style resolved from tokens.
func (t *Theme) Render(tokens, s string) string {
	return t.Style(tokens).Render(s)
}
