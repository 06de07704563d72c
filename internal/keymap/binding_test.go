package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		raw  string
		want Binding
	}{
		{"&kp Q", Plain{Code: "Q"}},
		{"  &kp   C_MUTE \n", Plain{Code: "C_MUTE"}},
		{"&kp RA(A)", SpecialChar{Code: "RA(A)"}},
		{"&kp LS(RA(N4))", SpecialChar{Code: "LS(RA(N4))"}},
		{"&mt LSHFT E", ModTap{Mod: "LSHFT", Tap: "E"}},
		{"&lt NAV\tSPACE", LayerTap{Layer: "NAV", Tap: "SPACE"}},
		{"&mo ADJ", Momentary{Layer: "ADJ"}},
		{"&trans", Transparent{}},
		{"&bt BT_SEL 0", Control{Behavior: "bt", Params: []string{"BT_SEL", "0"}}},
		{"&sys_reset", Control{Behavior: "sys_reset", Params: []string{}}},
		{"&caps_word", Control{Behavior: "caps_word", Params: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBinding(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBindingRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "kp Q", "& kp Q", "&", "&9x Q"} {
		_, err := ParseBinding(raw)
		assert.Error(t, err, raw)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "mod-tap", ModTap{}.Kind().String())
	assert.Equal(t, "transparent", Transparent{}.Kind().String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestBindingString(t *testing.T) {
	assert.Equal(t, "&mt LSHFT E", ModTap{Mod: "LSHFT", Tap: "E"}.String())
	assert.Equal(t, "&bt BT_SEL 0", Control{Behavior: "bt", Params: []string{"BT_SEL", "0"}}.String())
	assert.Equal(t, "&trans", Transparent{}.String())
}

func TestSplitBindings(t *testing.T) {
	t.Run("free-form whitespace", func(t *testing.T) {
		got, err := splitBindings("\n  &kp Q &kp W\n\t&mt LSHFT E    &trans  \n")
		require.NoError(t, err)
		assert.Equal(t, []Binding{
			Plain{Code: "Q"},
			Plain{Code: "W"},
			ModTap{Mod: "LSHFT", Tap: "E"},
			Transparent{},
		}, got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := splitBindings("   \n ")
		assert.EqualError(t, err, "empty bindings")
	})

	t.Run("stray text", func(t *testing.T) {
		_, err := splitBindings("kp Q &kp W")
		assert.ErrorContains(t, err, `unexpected "kp"`)
	})

	t.Run("double ampersand", func(t *testing.T) {
		_, err := splitBindings("&kp Q && &kp W")
		assert.ErrorContains(t, err, "binding 2")
	})
}
