package keymap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseDocumentFixture(t *testing.T) {
	doc := ParseDocument(readFixture(t, "totem.keymap"))

	require.Len(t, doc.Layers, 3)

	names := []string{"base_layer", "nav_layer", "adj_layer"}
	titles := []string{"Base", "Nav", "Adjust"}
	for i, l := range doc.Layers {
		assert.Equal(t, names[i], l.Name)
		assert.Equal(t, titles[i], l.Title())
		assert.Nil(t, l.Warning)
		assert.Len(t, l.Bindings, KeyCount, l.Name)
		assert.Less(t, l.StartLine, l.EndLine)
	}

	base := doc.Layers[0]
	assert.Equal(t, Plain{Code: "Q"}, base.Bindings[0])
	assert.Equal(t, ModTap{Mod: "LGUI", Tap: "A"}, base.Bindings[10])
	assert.Equal(t, LayerTap{Layer: "NAV", Tap: "SPACE"}, base.Bindings[33])
	assert.Equal(t, Momentary{Layer: "ADJ"}, base.Bindings[37])
	assert.Equal(t, "base_layer {", strings.TrimSpace(doc.Lines[base.StartLine]))
	assert.Equal(t, "};", strings.TrimSpace(doc.Lines[base.EndLine]))

	assert.Equal(t, Transparent{}, doc.Layers[1].Bindings[0])
	assert.Equal(t, SpecialChar{Code: "RA(A)"}, doc.Layers[1].Bindings[10])
}

func TestParseDocumentRoundTrips(t *testing.T) {
	text := readFixture(t, "totem.keymap")
	assert.Equal(t, text, ParseDocument(text).String())
}

func TestParseDocumentWarnings(t *testing.T) {
	text := `/ {
    keymap {
        good_layer {
            bindings = < &kp A /* first */ &kp B // trailing
                         &trans >;
        };
        empty_layer {
            bindings = < >;
        };
        stray_layer {
            bindings = < kp Q &kp W >;
        };
        missing_layer {
            display-name = "Missing";
        };
    };
};`
	doc := ParseDocument(text)
	require.Len(t, doc.Layers, 4)

	good := doc.Layers[0]
	require.Nil(t, good.Warning)
	assert.Equal(t, []Binding{Plain{Code: "A"}, Plain{Code: "B"}, Transparent{}}, good.Bindings)
	assert.Equal(t, "good", good.Title())

	require.NotNil(t, doc.Layers[1].Warning)
	assert.Equal(t, "empty bindings", doc.Layers[1].Warning.Reason)
	assert.Equal(t, 7, doc.Layers[1].Warning.Line)

	require.NotNil(t, doc.Layers[2].Warning)
	assert.Contains(t, doc.Layers[2].Warning.Error(), "stray_layer")

	missing := doc.Layers[3]
	require.NotNil(t, missing.Warning)
	assert.Contains(t, missing.Warning.Reason, "bindings")
	assert.Equal(t, "Missing", missing.Title())
}

func TestParseDocumentUnterminatedLayer(t *testing.T) {
	doc := ParseDocument("tail_layer {\n  bindings = < &kp A >;\n")
	require.Len(t, doc.Layers, 1)
	require.NotNil(t, doc.Layers[0].Warning)
	assert.Contains(t, doc.Layers[0].Warning.Reason, "closing")
}

func TestParseDocumentIgnoresSensorBindings(t *testing.T) {
	text := "        enc_layer {\n" +
		"            sensor-bindings = <&inc_dec_kp C_VOL_UP C_VOL_DN>;\n" +
		"            bindings = < " + strings.Repeat("&kp Q ", KeyCount) + ">;\n" +
		"        };\n"

	doc := ParseDocument(text)
	require.Len(t, doc.Layers, 1)
	l := doc.Layers[0]
	require.Nil(t, l.Warning)
	require.Len(t, l.Bindings, KeyCount)
	for _, b := range l.Bindings {
		assert.Equal(t, Plain{Code: "Q"}, b)
	}

	only := ParseDocument("enc_layer {\n    sensor-bindings = <&inc_dec_kp C_VOL_UP C_VOL_DN>;\n};\n")
	require.NotNil(t, only.Layers[0].Warning)
	assert.Contains(t, only.Layers[0].Warning.Reason, "bindings")
}

func TestParseDocumentIgnoresCommentedStructure(t *testing.T) {
	text := `// old_layer { removed }
base_layer {
    // the body ends at }; below
    /* ghost_layer {
       bindings = < &kp Z >;
    }; */
    display-name = "Base // main";
    bindings = < &kp A &kp B >;
};`
	doc := ParseDocument(text)

	require.Len(t, doc.Layers, 1)
	base := doc.Layers[0]
	assert.Equal(t, "base_layer", base.Name)
	require.Nil(t, base.Warning)
	assert.Equal(t, []Binding{Plain{Code: "A"}, Plain{Code: "B"}}, base.Bindings)
	assert.Equal(t, "Base // main", base.Title())
	assert.Equal(t, 1, base.StartLine)
	assert.Equal(t, 8, base.EndLine)
	assert.Equal(t, text, doc.String())
}

func TestMaskCommentsKeepsOffsets(t *testing.T) {
	text := "a /* b\nc */ d // ┃ e\n\"f // g\" h"
	masked := maskComments(text)

	assert.Len(t, masked, len(text))
	assert.Equal(t, strings.Count(text, "\n"), strings.Count(masked, "\n"))
	assert.Equal(t, []string{"a", "d", `"f`, "//", `g"`, "h"}, strings.Fields(masked))
}
