package pagination

import (
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/tablekit/pkg/theme"
)

// FirstPage is the page every Pagination starts on.
const FirstPage = 1

// digitsOnly matches page input made entirely of ASCII decimal digits.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// Pagination is a numeric page selector.
//
// It owns the current page and writes the page text through the setter
// supplied by its host. The host owns the text itself and passes it back at
// render time (see View). Every change of the current page ends with a write
// of its decimal form through the setter.
type Pagination struct {
	total   int
	label   string
	current int

	setText      func(string)
	onPageChange func(int)

	styles Styles
	theme  *theme.Theme
	logger zerolog.Logger
}

// Option configures a Pagination.
type Option func(*Pagination)

// WithStyles sets the class tokens used when rendering.
func WithStyles(s Styles) Option {
	return func(p *Pagination) {
		p.styles = s
	}
}

// WithTheme sets the theme class tokens are resolved against.
// A nil theme is ignored.
func WithTheme(t *theme.Theme) Option {
	return func(p *Pagination) {
		if t != nil {
			p.theme = t
		}
	}
}

// WithLogger sets the logger used to report recovered input failures.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pagination) {
		p.logger = l
	}
}

// WithOnPageChange registers a function called after every change of the current page.
func WithOnPageChange(fn func(page int)) Option {
	return func(p *Pagination) {
		p.onPageChange = fn
	}
}

// New creates a Pagination on page 1 with the given upper bound and label.
// setTextPage receives every update of the page text; the first call ("1")
// happens before New returns. A nil setter discards updates.
func New(total int, label string, setTextPage func(string), opts ...Option) *Pagination {
	if setTextPage == nil {
		setTextPage = func(string) {}
	}

	p := &Pagination{
		total:   total,
		label:   label,
		current: FirstPage,
		setText: setTextPage,
		theme:   theme.Default(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.sync()
	return p
}

// HandleInput processes a new raw value of the page field.
//
// Empty input clears the text. "0", zero valued digit strings and anything
// that is not all digits fall back to "1". Values above the total are
// replaced by the total. In all of those cases the current page is left
// alone, so it may disagree with the text until a valid number is entered.
// A valid number is written through verbatim and becomes the current page.
//
// Digit strings made only of zeros ("00", "000") are treated like "0" and
// never select page 0.
//
// Panics raised while handling the input, including from the host's setter
// or the page change hook, are recovered and logged. If the page had already
// moved, it is restored and its text written again.
func (p *Pagination) HandleInput(input string) {
	previous := p.current
	defer func() {
		if r := recover(); r != nil {
			if p.current != previous {
				p.current = previous
				p.resync()
			}
			p.logger.Error().
				Interface("panic", r).
				Str("input", input).
				Msg("page input handler failed")
		}
	}()

	switch {
	case input == "":
		p.setText("")
		return
	case input == "0":
		p.setText(strconv.Itoa(FirstPage))
		return
	case !digitsOnly.MatchString(input):
		p.setText(strconv.Itoa(FirstPage))
		return
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		// Only overflow is possible here; such a number is above any total.
		p.setText(strconv.Itoa(p.total))
		return
	}

	switch {
	case value == 0:
		p.setText(strconv.Itoa(FirstPage))
		return
	case value > p.total:
		p.setText(strconv.Itoa(p.total))
		return
	}

	p.setText(input)
	p.setPage(value)
}

// Prev moves to the previous page. It is a no-op on the first page.
// It reports whether the page changed.
func (p *Pagination) Prev() bool {
	if p.PrevDisabled() {
		return false
	}
	p.setPage(p.current - 1)
	return true
}

// Next moves to the next page. It is a no-op on the last page.
// It reports whether the page changed.
func (p *Pagination) Next() bool {
	if p.NextDisabled() {
		return false
	}
	p.setPage(p.current + 1)
	return true
}

// setPage changes the current page and syncs the text when the value differs.
func (p *Pagination) setPage(page int) {
	if page == p.current {
		return
	}
	p.current = page
	p.sync()

	p.logger.Debug().Int("page", page).Int("total", p.total).Msg("page changed")
	if p.onPageChange != nil {
		p.onPageChange(page)
	}
}

func (p *Pagination) sync() {
	p.setText(strconv.Itoa(p.current))
}

// resync writes the current page after a failed update. A setter that
// fails again leaves the text as it is.
func (p *Pagination) resync() {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Msg("page text resync failed")
		}
	}()
	p.sync()
}

// CurrentPage returns the current 1-based page.
func (p *Pagination) CurrentPage() int {
	return p.current
}

// Total returns the upper page bound.
func (p *Pagination) Total() int {
	return p.total
}

// Label returns the text displayed before the total.
func (p *Pagination) Label() string {
	return p.label
}

// PrevDisabled reports whether the previous button is disabled.
func (p *Pagination) PrevDisabled() bool {
	return p.current == FirstPage
}

// NextDisabled reports whether the next button is disabled.
func (p *Pagination) NextDisabled() bool {
	return p.current == p.total
}

// View renders the control with textPage shown in the page field.
func (p *Pagination) View(textPage string) string {
	return p.render(p.theme.Render(p.styles.Input, textPage))
}

// gap separates the parts of the control so it stays readable unstyled.
const gap = " "

// render lays out the buttons around an already rendered page field.
func (p *Pagination) render(field string) string {
	prevClass := p.styles.Btn
	if p.PrevDisabled() {
		prevClass = p.styles.BtnDisabled
	}
	nextClass := p.styles.Btn
	if p.NextDisabled() {
		nextClass = p.styles.BtnDisabled
	}

	prev := p.theme.Render(prevClass, "<")
	next := p.theme.Render(nextClass, ">")
	label := p.theme.Render(p.styles.Label, p.label+" "+strconv.Itoa(p.total))

	content := p.theme.Render(p.styles.Content, lipgloss.JoinHorizontal(lipgloss.Center, field, gap, label))

	return p.theme.Render(p.styles.Container, lipgloss.JoinHorizontal(lipgloss.Center, prev, gap, content, gap, next))
}
