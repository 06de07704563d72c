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
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"olympos.io/encoding/edn"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

//go:embed labels.toml
var defaultLabels []byte

// labelFile is the on-disk shape of a label table, in TOML or EDN
type labelFile struct {
	Keys      map[string]string `toml:"keys" edn:"keys"`
	Behaviors map[string]string `toml:"behaviors" edn:"behaviors"`
}

// Labels maps key codes and zero-argument behaviors to display labels.
// A Labels value is never modified after construction; Merge returns a new table.
type Labels struct {
	keys      map[string]string
	behaviors map[string]string
}

// Entry is one row of a label table
type Entry struct {
	Section string
	Token   string
	Label   string
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func NewLabels(keys, behaviors map[string]string) Labels {
	return Labels{
		keys:      copyMap(keys),
		behaviors: copyMap(behaviors),
	}
}

// DefaultLabels returns the table shipped with the binary
func DefaultLabels() Labels {
	var lf labelFile
	if _, err := toml.Decode(string(defaultLabels), &lf); err != nil {
		panic(fmt.Sprintf("embedded labels.toml: %v", err))
	}
	return NewLabels(lf.Keys, lf.Behaviors)
}

// LoadLabels reads a label table from a .toml or .edn file
func LoadLabels(path string) (Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, &FileAccessError{Op: "read", Path: path, Err: err}
	}

	var lf labelFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".edn":
		err = edn.Unmarshal(data, &lf)
	case ".toml", "":
		_, err = toml.Decode(string(data), &lf)
	default:
		return Labels{}, fmt.Errorf("label table %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return Labels{}, fmt.Errorf("label table %s: %w", path, err)
	}
	return NewLabels(lf.Keys, lf.Behaviors), nil
}

// Merge returns a table where entries of over take precedence
func (l Labels) Merge(over Labels) Labels {
	keys := copyMap(l.keys)
	for k, v := range over.keys {
		keys[k] = v
	}
	behaviors := copyMap(l.behaviors)
	for k, v := range over.behaviors {
		behaviors[k] = v
	}
	return Labels{keys: keys, behaviors: behaviors}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Key returns the label for a key code, falling back to the code itself
func (l Labels) Key(code string) string {
	if v, ok := l.keys[code]; ok {
		return v
	}
	return code
}

// Behavior returns the label for a zero-argument behavior, falling back to its name
func (l Labels) Behavior(name string) string {
	if v, ok := l.behaviors[name]; ok {
		return v
	}
	return name
}

// Resolve returns the label shown in the comment cell for b
func (l Labels) Resolve(b Binding) string {
	switch b := b.(type) {
	case Plain:
		return l.Key(b.Code)
	case SpecialChar:
		return l.Key(b.Code)
	case ModTap:
		return l.Key(b.Tap)
	case LayerTap:
		return l.Key(b.Tap)
	case Momentary:
		return ""
	case Transparent:
		return ""
	case Control:
		if len(b.Params) == 0 {
			return l.Behavior(b.Behavior)
		}
		parts := make([]string, len(b.Params))
		for i, p := range b.Params {
			parts[i] = l.Key(p)
		}
		return strings.Join(parts, " ")
	default:
		panic(fmt.Sprintf("keymap: unhandled binding %T", b))
	}
}

// Hold returns the label of the hold action, empty for bindings without one
func (l Labels) Hold(b Binding) string {
	switch b := b.(type) {
	case ModTap:
		return l.Key(b.Mod)
	case LayerTap:
		return b.Layer
	case Momentary:
		return b.Layer
	default:
		return ""
	}
}

// Entries lists the table sorted by section then token
func (l Labels) Entries() []Entry {
	var out []Entry
	for k, v := range l.behaviors {
		out = append(out, Entry{Section: "behaviors", Token: k, Label: v})
	}
	for k, v := range l.keys {
		out = append(out, Entry{Section: "keys", Token: k, Label: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].Token < out[j].Token
	})
	return out
}

func (l Labels) Len() int {
	return len(l.keys) + len(l.behaviors)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////////////////////////
