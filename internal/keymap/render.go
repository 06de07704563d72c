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

	"github.com/mattn/go-runewidth"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Totem halves: 5-5-6-3 keys per side, top row first
var totemRows = []struct{ left, right int }{
	{5, 5},
	{5, 5},
	{6, 6},
	{3, 3},
}

const (
	// KeyCount is the number of key positions on the Totem
	KeyCount = 38

	// DefaultCellWidth is the label width inside a cell
	DefaultCellWidth = 9

	halfGap = "   "
)

// widths are measured without East Asian ambiguity, whatever the locale
var widthCond = &runewidth.Condition{EastAsianWidth: false}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Rows splits labels into the Totem rows (10, 10, 12, 6).
// Missing positions are empty; positions past KeyCount are dropped.
func Rows(labels []string) [][]string {
	return splitRows(labels, "")
}

func splitRows[T any](items []T, empty T) [][]T {
	rows := make([][]T, len(totemRows))
	idx := 0
	for r, shape := range totemRows {
		row := make([]T, shape.left+shape.right)
		for i := range row {
			row[i] = empty
			if idx < len(items) {
				row[i] = items[idx]
			}
			idx++
		}
		rows[r] = row
	}
	return rows
}

// Render draws the comment block for one layer, without indentation or line endings
func Render(labels []string, width int) []string {
	if width < 1 {
		width = DefaultCellWidth
	}
	rows := Rows(labels)
	bar := strings.Repeat("━", width+2)

	rule := func(start, seps, end string) string {
		var sb strings.Builder
		sb.WriteString(start)
		sb.WriteString(bar)
		for _, s := range seps {
			sb.WriteRune(s)
			sb.WriteString(bar)
		}
		sb.WriteString(end)
		return sb.String()
	}
	split := func(left, right string) string {
		return left + halfGap + right
	}
	row := func(r int) string {
		keys := rows[r]
		left := keys[:totemRows[r].left]
		right := keys[totemRows[r].left:]
		return cells(left, width) + "┃" + halfGap + cells(right, width) + "┃"
	}
	prefix := func(shift int) string {
		return "// " + strings.Repeat(" ", shift*(width+3))
	}

	return []string{
		prefix(1) + split(rule("┏", "┳┳┳┳", "┓"), rule("┏", "┳┳┳┳", "┓")),
		prefix(1) + row(0),
		prefix(1) + split(rule("┣", "╋╋╋╋", "┫"), rule("┣", "╋╋╋╋", "┫")),
		prefix(1) + row(1),
		prefix(0) + split(rule("┏", "╋╋╋╋╋", "┫"), rule("┣", "╋╋╋╋╋", "┓")),
		prefix(0) + row(2),
		prefix(0) + split(rule("┗", "┻┻╋╋╋", "┫"), rule("┣", "╋╋╋┻┻", "┛")),
		prefix(3) + row(3),
		prefix(3) + split(rule("┗", "┻┻", "┛"), rule("┗", "┻┻", "┛")),
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func cells(labels []string, width int) string {
	var sb strings.Builder
	for _, l := range labels {
		sb.WriteString("┃ ")
		sb.WriteString(center(l, width))
		sb.WriteString(" ")
	}
	return sb.String()
}

// center truncates label to width columns and pads it on both sides.
// An odd margin puts the extra space on the left when width is odd.
func center(label string, width int) string {
	label = widthCond.Truncate(label, width, "")
	margin := width - widthCond.StringWidth(label)
	if margin <= 0 {
		return label
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", margin-left)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
