package pagination_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tablekit/pkg/pagination"
)

// textHost plays the host that owns the page text.
type textHost struct {
	text   string
	writes []string
}

func (h *textHost) set(s string) {
	h.text = s
	h.writes = append(h.writes, s)
}

func newPager(t *testing.T, total int) (*pagination.Pagination, *textHost) {
	t.Helper()
	host := &textHost{}
	return pagination.New(total, "of", host.set), host
}

func TestNew_StartsOnFirstPage(t *testing.T) {
	for _, total := range []int{1, 2, 10, 1000} {
		p, host := newPager(t, total)

		assert.Equal(t, 1, p.CurrentPage())
		assert.Equal(t, total, p.Total())
		assert.Equal(t, "of", p.Label())
		assert.Equal(t, "1", host.text, "mount sync writes the first page")
		assert.Equal(t, []string{"1"}, host.writes)
	}
}

func TestNew_NilSetter(t *testing.T) {
	p := pagination.New(3, "of", nil)

	assert.NotPanics(t, func() {
		p.HandleInput("2")
		p.Next()
	})
	assert.Equal(t, 3, p.CurrentPage())
}

func TestHandleInput(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		input      string
		wantText   string
		wantPage   int
		wantWrites []string
	}{
		{name: "empty clears text", total: 5, input: "", wantText: "", wantPage: 1},
		{name: "zero falls back to one", total: 5, input: "0", wantText: "1", wantPage: 1},
		{name: "double zero falls back to one", total: 5, input: "00", wantText: "1", wantPage: 1},
		{name: "zero valued digits fall back to one", total: 5, input: "000", wantText: "1", wantPage: 1},
		{name: "trailing letter", total: 5, input: "3a", wantText: "1", wantPage: 1},
		{name: "negative number", total: 5, input: "-2", wantText: "1", wantPage: 1},
		{name: "decimal number", total: 5, input: "2.5", wantText: "1", wantPage: 1},
		{name: "whitespace", total: 5, input: " 2", wantText: "1", wantPage: 1},
		{name: "non ascii digits", total: 5, input: "٣", wantText: "1", wantPage: 1},
		{name: "above total", total: 5, input: "9", wantText: "5", wantPage: 1},
		{name: "overflowing int", total: 5, input: "99999999999999999999999", wantText: "5", wantPage: 1},
		{name: "valid page", total: 5, input: "4", wantText: "4", wantPage: 4},
		{name: "equal to total", total: 5, input: "5", wantText: "5", wantPage: 5},
		{
			name:       "leading zeros normalized by sync",
			total:      10,
			input:      "007",
			wantText:   "7",
			wantPage:   7,
			wantWrites: []string{"1", "007", "7"},
		},
		{
			name:       "current page keeps verbatim text",
			total:      10,
			input:      "01",
			wantText:   "01",
			wantPage:   1,
			wantWrites: []string{"1", "01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, host := newPager(t, tt.total)

			p.HandleInput(tt.input)

			assert.Equal(t, tt.wantText, host.text)
			assert.Equal(t, tt.wantPage, p.CurrentPage())
			if tt.wantWrites != nil {
				assert.Equal(t, tt.wantWrites, host.writes)
			}
		})
	}
}

func TestHandleInput_InvalidInputKeepsPage(t *testing.T) {
	p, host := newPager(t, 10)
	p.HandleInput("6")
	require.Equal(t, 6, p.CurrentPage())

	for _, input := range []string{"", "0", "x", "11"} {
		p.HandleInput(input)
		assert.Equal(t, 6, p.CurrentPage(), "input %q must not move the page", input)
	}
	assert.Equal(t, "10", host.text)
}

func TestStepping(t *testing.T) {
	p, host := newPager(t, 3)

	assert.True(t, p.PrevDisabled())
	assert.False(t, p.Prev(), "prev on first page is a no-op")
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, []string{"1"}, host.writes)

	assert.True(t, p.Next())
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, "2", host.text)

	assert.True(t, p.Next())
	assert.Equal(t, 3, p.CurrentPage())
	assert.True(t, p.NextDisabled())

	assert.False(t, p.Next(), "next on last page is a no-op")
	assert.Equal(t, 3, p.CurrentPage())

	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, []string{"1", "2", "3", "2"}, host.writes)
}

func TestStepping_SinglePage(t *testing.T) {
	p, _ := newPager(t, 1)

	assert.True(t, p.PrevDisabled())
	assert.True(t, p.NextDisabled())
	assert.False(t, p.Next())
	assert.False(t, p.Prev())
	assert.Equal(t, 1, p.CurrentPage())
}

func TestStepping_OverwritesEditedText(t *testing.T) {
	p, host := newPager(t, 10)

	p.HandleInput("")
	require.Equal(t, "", host.text)

	p.Next()
	assert.Equal(t, "2", host.text)
}

func TestScenario_StepTypeOverflowStep(t *testing.T) {
	p, host := newPager(t, 10)
	require.Equal(t, 1, p.CurrentPage())

	p.Next()
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, "2", host.text)

	p.HandleInput("7")
	assert.Equal(t, 7, p.CurrentPage())
	assert.Equal(t, "7", host.text)

	p.HandleInput("15")
	assert.Equal(t, "10", host.text)
	assert.Equal(t, 7, p.CurrentPage())

	p.Next()
	assert.Equal(t, 8, p.CurrentPage())
	assert.Equal(t, "8", host.text)
}

func TestOnPageChange(t *testing.T) {
	var pages []int
	p := pagination.New(5, "of", nil, pagination.WithOnPageChange(func(page int) {
		pages = append(pages, page)
	}))

	p.Next()
	p.HandleInput("4")
	p.HandleInput("4")
	p.HandleInput("9")
	p.Prev()

	assert.Equal(t, []int{2, 4, 3}, pages)
}

func TestHandleInput_RecoversSetterPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	p := pagination.New(10, "of", func(s string) {
		if s == "5" {
			panic("host exploded")
		}
	}, pagination.WithLogger(logger))

	assert.NotPanics(t, func() { p.HandleInput("5") })
	assert.Equal(t, 1, p.CurrentPage())
	assert.Contains(t, buf.String(), "page input handler failed")
	assert.Contains(t, buf.String(), "host exploded")
}

func TestHandleInput_RecoversSyncPanic(t *testing.T) {
	calls := 0
	p := pagination.New(10, "of", func(s string) {
		calls++
		// Third write is the sync after "3" is accepted.
		if calls == 3 {
			panic("sync failed")
		}
	}, pagination.WithLogger(zerolog.Nop()))

	assert.NotPanics(t, func() { p.HandleInput("03") })
	assert.Equal(t, 1, p.CurrentPage(), "page restored after failed sync")
}

func TestHandleInput_RecoversHookPanic(t *testing.T) {
	var buf bytes.Buffer
	host := &textHost{}
	p := pagination.New(10, "of", host.set,
		pagination.WithLogger(zerolog.New(&buf)),
		pagination.WithOnPageChange(func(page int) {
			if page == 7 {
				panic("hook failed")
			}
		}),
	)
	p.HandleInput("4")

	assert.NotPanics(t, func() { p.HandleInput("7") })
	assert.Equal(t, 4, p.CurrentPage())
	assert.Equal(t, "4", host.text, "text follows the restored page")
	assert.Equal(t, []string{"1", "4", "4", "7", "7", "4"}, host.writes)
	assert.Contains(t, buf.String(), "hook failed")
}

func TestView(t *testing.T) {
	p, _ := newPager(t, 10)

	view := p.View("3")
	assert.Equal(t, "< 3 of 10 >", view)

	styled := pagination.New(10, "Page", nil, pagination.WithStyles(pagination.DefaultStyles()))
	out := styled.View("1")
	assert.Contains(t, out, "Page 10")
	assert.Contains(t, out, "<")
	assert.Contains(t, out, ">")
}
