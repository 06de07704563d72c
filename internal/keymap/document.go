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
	"regexp"
	"sort"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	layerHeader  = regexp.MustCompile(`(\w+_layer)\s*\{`)
	bindingsDecl = regexp.MustCompile(`(?:^|[\s;{])bindings\s*=\s*<([^>]*)>\s*;`)
	displayName  = regexp.MustCompile(`display-name\s*=\s*"([^"]*)"`)
)

// Document is a keymap source split into lines, with its layers located
type Document struct {
	Lines  []string
	Layers []Layer
}

// Layer is one `<name>_layer { ... };` node.
// StartLine and EndLine are the lines holding the header and the closing `};`.
type Layer struct {
	Name        string
	DisplayName string
	Bindings    []Binding
	StartLine   int
	EndLine     int
	Warning     *LayerParseWarning
}

// Title is the name shown to people: display-name when declared
func (l Layer) Title() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return strings.TrimSuffix(l.Name, "_layer")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// ParseDocument locates every layer of text and extracts its bindings.
// Layers whose body cannot be read carry a Warning instead of bindings.
func ParseDocument(text string) *Document {
	doc := &Document{Lines: strings.Split(text, "\n")}
	starts := lineStarts(text)
	code := maskComments(text)

	for _, m := range layerHeader.FindAllStringSubmatchIndex(code, -1) {
		start := m[0]
		layer := Layer{
			Name:      code[m[2]:m[3]],
			StartLine: lineAt(starts, start),
		}

		end := strings.Index(code[start:], "};")
		if end < 0 {
			layer.EndLine = len(doc.Lines) - 1
			layer.Warning = layer.warn("no closing `};` for layer body")
			doc.Layers = append(doc.Layers, layer)
			continue
		}
		layer.EndLine = lineAt(starts, start+end)

		body := code[start : start+end]
		if dm := displayName.FindStringSubmatch(body); dm != nil {
			layer.DisplayName = dm[1]
		}

		decl := bindingsDecl.FindStringSubmatch(body)
		if decl == nil {
			layer.Warning = layer.warn("no `bindings = < ... >;` declaration")
			doc.Layers = append(doc.Layers, layer)
			continue
		}

		bindings, err := splitBindings(decl[1])
		if err != nil {
			layer.Warning = layer.warn(err.Error())
		} else {
			layer.Bindings = bindings
		}
		doc.Layers = append(doc.Layers, layer)
	}

	return doc
}

// String joins the lines back, byte for byte
func (d *Document) String() string {
	return strings.Join(d.Lines, "\n")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (l Layer) warn(reason string) *LayerParseWarning {
	return &LayerParseWarning{Layer: l.Name, Line: l.StartLine + 1, Reason: reason}
}

// maskComments blanks `//` and `/* */` comments with spaces, keeping newlines and byte offsets.
// Comment markers inside string literals are left alone.
func maskComments(text string) string {
	const (
		code = iota
		str
		line
		block
	)

	out := []byte(text)
	state := code
	for i := 0; i < len(out); i++ {
		c := text[i]
		switch state {
		case code:
			switch {
			case c == '"':
				state = str
			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				state = line
				out[i] = ' '
			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				state = block
				out[i], out[i+1] = ' ', ' '
				i++
			}
		case str:
			switch c {
			case '\\':
				i++
			case '"', '\n':
				state = code
			}
		case line:
			if c == '\n' {
				state = code
			} else {
				out[i] = ' '
			}
		case block:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = code
			} else if c != '\n' {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// lineStarts returns the byte offset at which each line begins
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineAt(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}

////////////////////////////////////////////////////////////////////////////////////////////////////
