package pagination

import "github.com/rshade/tablekit/pkg/theme"

// Styles holds the class tokens applied to each part of the control.
// Tokens are resolved through the Pagination's theme and applied verbatim;
// empty or unknown tokens render unstyled.
type Styles struct {
	Container   string `yaml:"container,omitempty"    json:"container,omitempty"`
	Btn         string `yaml:"btn,omitempty"          json:"btn,omitempty"`
	BtnDisabled string `yaml:"btn_disabled,omitempty" json:"btn_disabled,omitempty"`
	Content     string `yaml:"content,omitempty"      json:"content,omitempty"`
	Input       string `yaml:"input,omitempty"        json:"input,omitempty"`
	Label       string `yaml:"label,omitempty"        json:"label,omitempty"`
}

// DefaultStyles returns styles referencing the classes of theme.Default.
func DefaultStyles() Styles {
	return Styles{
		Container:   theme.ClassPager,
		Btn:         theme.ClassPagerButton,
		BtnDisabled: theme.ClassPagerButtonOff,
		Content:     theme.ClassPagerContent,
		Input:       theme.ClassPagerInput,
		Label:       theme.ClassPagerLabel,
	}
}
