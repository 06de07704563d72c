package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawForgeCmd(t *testing.T) {
	df := newDrawConfig("config/totem.keymap", "out", "")

	assert.Equal(t, "out/totem.yaml", df.Yaml())
	assert.Equal(t,
		`keymap parse -z 'config/totem.keymap' > 'out/totem.yaml' && \`+"\n"+
			`keymap draw 'out/totem.yaml' > 'out/totem.svg'`,
		df.Cmd())
}

func TestDrawForgeCmdWithLayersAndConfig(t *testing.T) {
	df := newDrawConfig("totem.keymap", "svg", "drawer.yaml", "Base", "Nav")

	assert.Equal(t,
		`keymap -c 'drawer.yaml' parse -z 'totem.keymap' > 'svg/totem.yaml' && \`+"\n"+
			`keymap -c 'drawer.yaml' draw 'svg/totem.yaml' > 'svg/totem.svg' && \`+"\n"+
			`keymap -c 'drawer.yaml' draw 'svg/totem.yaml' -s 'Base' > 'svg/totem-Base.svg' && \`+"\n"+
			`keymap -c 'drawer.yaml' draw 'svg/totem.yaml' -s 'Nav' > 'svg/totem-Nav.svg'`,
		df.Cmd())
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, shellQuote("plain"))
	assert.Equal(t, `'my keymap'`, shellQuote("my keymap"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}
