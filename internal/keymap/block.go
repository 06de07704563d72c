/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package keymap

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const boxGlyphs = "━┃┏┓┗┛┣┫┳┻╋"

type lineKind int

const (
	lineOther lineKind = iota // code, blank or plain comment
	lineBox                   // comment carrying box-drawing glyphs
	lineTop                   // comment opening a block: ┏━━━┳
)

// Block is a comment block found in the document lines [Start, End)
type Block struct {
	Start  int
	End    int
	Indent string
	EOL    string
	Width  int
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// FindBlock returns the first comment block fully inside lines[from:to].
// A block opens on a ┏━…┳ border, runs over consecutive box comment lines
// and must carry a closing ┛.
func FindBlock(lines []string, from, to int) (Block, bool) {
	if to > len(lines) {
		to = len(lines)
	}
	for i := from; i < to; i++ {
		if classifyLine(lines[i]) != lineTop {
			continue
		}
		j := i + 1
		for j < to && classifyLine(lines[j]) == lineBox {
			j++
		}
		if !closes(lines[i+1 : j]) {
			i = j - 1
			continue
		}

		first := lines[i]
		b := Block{
			Start:  i,
			End:    j,
			Indent: first[:strings.Index(first, "//")],
			Width:  DefaultCellWidth,
		}
		if strings.HasSuffix(first, "\r") {
			b.EOL = "\r"
		}
		body, _ := commentBody(first)
		if w := topBorderWidth(body) - 2; w > 0 {
			b.Width = w
		}
		return b, true
	}
	return Block{}, false
}

// Lines renders labels in the shape of b, ready to replace lines[b.Start:b.End]
func (b Block) Lines(labels []string) []string {
	rendered := Render(labels, b.Width)
	for i, l := range rendered {
		rendered[i] = b.Indent + l + b.EOL
	}
	return rendered
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func classifyLine(line string) lineKind {
	body, ok := commentBody(line)
	if !ok || !strings.ContainsAny(body, boxGlyphs) {
		return lineOther
	}
	if topBorderWidth(body) > 0 {
		return lineTop
	}
	return lineBox
}

func closes(lines []string) bool {
	for _, l := range lines {
		if strings.Contains(l, "┛") {
			return true
		}
	}
	return false
}

// commentBody returns the text following "//" on a line comment
func commentBody(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "//") {
		return "", false
	}
	return strings.TrimSpace(t[2:]), true
}

// topBorderWidth counts the ━ of the first cell of a ┏━━━┳ border, 0 otherwise
func topBorderWidth(body string) int {
	rest, ok := strings.CutPrefix(body, "┏")
	if !ok {
		return 0
	}
	n := 0
	for _, r := range rest {
		switch r {
		case '━':
			n++
		case '┳':
			return n
		default:
			return 0
		}
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////////////////////////
