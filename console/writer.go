// Package console writes styled lines to the terminal and lays them out
// against the left or right edge.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Line is one line of output.
type Line struct {
	// Text is the visible content without any escape codes.
	Text string

	// Style colors Text; nil prints it plain.
	Style *color.Color

	// Indent is the number of unstyled spaces printed before Text.
	Indent int
}

// Writer prints lines in order.
type Writer interface {
	WriteLine(Line) error
}

// ColorWriter prints lines to an io.Writer, applying each line's style.
// Styles are dropped when color.NoColor is set.
type ColorWriter struct {
	out io.Writer
}

// NewColorWriter returns a ColorWriter printing to out.
func NewColorWriter(out io.Writer) *ColorWriter {
	return &ColorWriter{out: out}
}

// WriteLine prints l followed by a newline.
func (w *ColorWriter) WriteLine(l Line) error {
	text := l.Text
	if l.Style != nil && text != "" {
		text = l.Style.Sprint(text)
	}
	if l.Indent > 0 {
		text = strings.Repeat(" ", l.Indent) + text
	}
	if _, err := fmt.Fprintln(w.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
