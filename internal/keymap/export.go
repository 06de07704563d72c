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
	"io"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	drawerKeyboard = "totem"
	drawerTrans    = "▽"
)

// Export writes the layers of doc as a keymap-drawer YAML document.
// Layers carrying a parse warning are left out.
func Export(w io.Writer, doc *Document, labels Labels) error {
	layers := mapping()
	for _, l := range doc.Layers {
		if l.Warning != nil {
			continue
		}
		keys := make([]*yaml.Node, len(l.Bindings))
		for i, b := range l.Bindings {
			keys[i] = drawerKey(b, labels)
		}

		rows := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range splitRows[*yaml.Node](keys, nil) {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, k := range row {
				if k == nil {
					k = scalar("")
				}
				seq.Content = append(seq.Content, k)
			}
			rows.Content = append(rows.Content, seq)
		}
		layers.Content = append(layers.Content, scalar(l.Title()), rows)
	}

	layout := mapping()
	layout.Content = append(layout.Content, scalar("zmk_keyboard"), scalar(drawerKeyboard))

	root := mapping()
	root.Content = append(root.Content,
		scalar("layout"), layout,
		scalar("layers"), layers,
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// drawerKey is a bare label, or {t, h, type} when the key holds or is transparent
func drawerKey(b Binding, labels Labels) *yaml.Node {
	if b.Kind() == KindTransparent {
		n := mapping()
		n.Style = yaml.FlowStyle
		n.Content = append(n.Content, scalar("t"), scalar(drawerTrans), scalar("type"), scalar("trans"))
		return n
	}

	tap := labels.Resolve(b)
	hold := labels.Hold(b)
	if hold == "" {
		return scalar(tap)
	}
	n := mapping()
	n.Style = yaml.FlowStyle
	n.Content = append(n.Content, scalar("t"), scalar(tap), scalar("h"), scalar(hold))
	return n
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
