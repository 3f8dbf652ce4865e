// Package ascii renders the block-letter banner printed at the top of the
// fetch output. Each row gets its own truecolor shade, top to bottom.
package ascii

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"corefetch/console"
)

// Title is the word spelled by Banner.
const Title = "COREFETCH"

// glyphHeight is the number of rows in every glyph.
const glyphHeight = 6

// glyphs holds the block letters needed for Title, one string per row.
var glyphs = map[rune][glyphHeight]string{
	'C': {
		" ██████╗",
		"██╔════╝",
		"██║",
		"██║",
		"╚██████╗",
		" ╚═════╝",
	},
	'O': {
		" ██████╗",
		"██╔═══██╗",
		"██║   ██║",
		"██║   ██║",
		"╚██████╔╝",
		" ╚═════╝",
	},
	'R': {
		"██████╗",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'E': {
		"███████╗",
		"██╔════╝",
		"█████╗",
		"██╔══╝",
		"███████╗",
		"╚══════╝",
	},
	'F': {
		"███████╗",
		"██╔════╝",
		"█████╗",
		"██╔══╝",
		"██║",
		"╚═╝",
	},
	'T': {
		"████████╗",
		"╚══██╔══╝",
		"   ██║",
		"   ██║",
		"   ██║",
		"   ╚═╝",
	},
	'H': {
		"██╗  ██╗",
		"██║  ██║",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	' ': {"", "", "", "", "", ""},
}

// shades colors the banner rows, top to bottom.
var shades = [glyphHeight][3]int{
	{245, 224, 220},
	{242, 205, 205},
	{245, 194, 231},
	{203, 166, 247},
	{243, 139, 168},
	{235, 160, 172},
}

// Render spells word in block letters. Letters without a glyph are
// skipped. Every glyph is padded to its widest row so letters line up.
//
// Returns:
//   - glyphHeight rows, trailing spaces trimmed
func Render(word string) []string {
	var rows [glyphHeight]strings.Builder
	for _, r := range strings.ToUpper(word) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		width := 0
		for _, row := range g {
			width = max(width, runewidth.StringWidth(row))
		}
		if r == ' ' {
			width = 2
		}
		for i, row := range g {
			rows[i].WriteString(row)
			rows[i].WriteString(strings.Repeat(" ", width-runewidth.StringWidth(row)))
		}
	}

	out := make([]string, glyphHeight)
	for i := range rows {
		out[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return out
}

// Banner returns the Title banner framed by blank lines, one bold
// truecolor shade per row.
func Banner() []console.Line {
	lines := []console.Line{{}}
	for i, row := range Render(Title) {
		c := shades[i]
		lines = append(lines, console.Line{
			Text:  row,
			Style: color.RGB(c[0], c[1], c[2]).Add(color.Bold),
		})
	}
	return append(lines, console.Line{})
}
