package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Validation errors returned when building styles from a ClassSpec.
var (
	ErrUnknownBorder    = errors.New("unknown border")
	ErrInvalidBoxValues = errors.New("box values must have between 1 and 4 entries")
	ErrNegativeWidth    = errors.New("width cannot be negative")
)

// maxBoxValues is the maximum number of padding/margin entries lipgloss accepts.
const maxBoxValues = 4

// ClassSpec is the declarative, YAML friendly form of a class style.
type ClassSpec struct {
	Foreground       string `yaml:"foreground,omitempty"        json:"foreground,omitempty"`
	Background       string `yaml:"background,omitempty"        json:"background,omitempty"`
	BorderForeground string `yaml:"border_foreground,omitempty" json:"border_foreground,omitempty"`
	Bold             bool   `yaml:"bold,omitempty"              json:"bold,omitempty"`
	Italic           bool   `yaml:"italic,omitempty"            json:"italic,omitempty"`
	Underline        bool   `yaml:"underline,omitempty"         json:"underline,omitempty"`
	Faint            bool   `yaml:"faint,omitempty"             json:"faint,omitempty"`
	Reverse          bool   `yaml:"reverse,omitempty"           json:"reverse,omitempty"`
	Padding          []int  `yaml:"padding,omitempty"           json:"padding,omitempty"`
	Margin           []int  `yaml:"margin,omitempty"            json:"margin,omitempty"`
	Border           string `yaml:"border,omitempty"            json:"border,omitempty"`
	Width            int    `yaml:"width,omitempty"             json:"width,omitempty"`
}

// borders lists the border names a ClassSpec may reference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var borders = map[string]func() lipgloss.Border{
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
	"hidden":  lipgloss.HiddenBorder,
	"block":   lipgloss.BlockBorder,
}

// Build converts the spec into a lipgloss style.
func (c ClassSpec) Build() (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if c.Foreground != "" {
		style = style.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		style = style.Background(lipgloss.Color(c.Background))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Italic {
		style = style.Italic(true)
	}
	if c.Underline {
		style = style.Underline(true)
	}
	if c.Faint {
		style = style.Faint(true)
	}
	if c.Reverse {
		style = style.Reverse(true)
	}

	if len(c.Padding) > 0 {
		if len(c.Padding) > maxBoxValues {
			return style, fmt.Errorf("padding: %w", ErrInvalidBoxValues)
		}
		style = style.Padding(c.Padding...)
	}
	if len(c.Margin) > 0 {
		if len(c.Margin) > maxBoxValues {
			return style, fmt.Errorf("margin: %w", ErrInvalidBoxValues)
		}
		style = style.Margin(c.Margin...)
	}

	if c.Border != "" {
		border, ok := borders[strings.ToLower(c.Border)]
		if !ok {
			return style, fmt.Errorf("%w: %q", ErrUnknownBorder, c.Border)
		}
		style = style.Border(border())
		if c.BorderForeground != "" {
			style = style.BorderForeground(lipgloss.Color(c.BorderForeground))
		}
	}

	if c.Width < 0 {
		return style, ErrNegativeWidth
	}
	if c.Width > 0 {
		style = style.Width(c.Width)
	}

	return style, nil
}

// FromSpecs builds a theme from class specs.
// Classes are built in name order so the first reported error is deterministic.
func FromSpecs(specs map[string]ClassSpec) (*Theme, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	t := New()
	for _, name := range names {
		style, err := specs[name].Build()
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}
		t.Define(name, style)
	}
	return t, nil
}
