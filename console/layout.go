package console

import (
	"github.com/mattn/go-runewidth"

	"corefetch/config"
)

// Layout aligns lines before handing them to the next Writer.
//
// Left alignment indents every line by spacing columns. Right alignment
// indents each line so it ends spacing columns before the right edge of
// a terminal width columns wide; lines that do not fit are left as is.
type Layout struct {
	next    Writer
	align   config.Alignment
	spacing int
	width   int
}

// NewLayout returns a Layout writing to next.
func NewLayout(next Writer, align config.Alignment, spacing, width int) *Layout {
	if spacing < 0 {
		spacing = 0
	}
	return &Layout{next: next, align: align, spacing: spacing, width: width}
}

// WriteLine aligns l and passes it on. Blank lines are passed unchanged.
// The indent never exceeds the terminal width.
func (ly *Layout) WriteLine(l Line) error {
	if l.Text == "" {
		return ly.next.WriteLine(l)
	}
	pad := ly.spacing
	if ly.align == config.AlignRight {
		pad = LeftPad(l.Text, ly.width-ly.spacing)
	}
	limit := max(ly.width, 0)
	l.Indent = min(l.Indent+min(pad, limit), limit)
	return ly.next.WriteLine(l)
}

// LeftPad returns how many spaces to put before s so that it ends at
// column width. Display width is measured per rune.
//
// Example: LeftPad("Hi", 5) returns 3
func LeftPad(s string, width int) int {
	if w := runewidth.StringWidth(s); w < width {
		return width - w
	}
	return 0
}
