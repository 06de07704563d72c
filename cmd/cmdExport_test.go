package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

func TestExportKeymap(t *testing.T) {
	in := writeTemp(t, "totem.keymap", readFixture(t, "totem.keymap"))

	var buf bytes.Buffer
	require.NoError(t, exportKeymap(&buf, keymap.DefaultLabels(), in))

	var out struct {
		Layers map[string][][]any `yaml:"layers"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Len(t, out.Layers, 3)
	assert.Equal(t, "Q", out.Layers["Base"][0][0])
}

func TestExportKeymapWarnsOnBrokenLayer(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = prev })

	in := writeTemp(t, "broken.keymap", "bad_layer {\n bindings = < Q >;\n};\n")

	var buf bytes.Buffer
	require.NoError(t, exportKeymap(&buf, keymap.DefaultLabels(), in))

	entries := logs.FilterField(zap.String("layer", "bad_layer")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "layer left out of export", entries[0].Message)
}

func TestExportKeymapMissingInput(t *testing.T) {
	var buf bytes.Buffer
	err := exportKeymap(&buf, keymap.DefaultLabels(), filepath.Join(t.TempDir(), "absent.keymap"))

	var fae *keymap.FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "read", fae.Op)
	assert.Zero(t, buf.Len())
}

func TestExportFile(t *testing.T) {
	in := writeTemp(t, "totem.keymap", readFixture(t, "totem.keymap"))

	t.Run("writes yaml", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "totem.yaml")
		require.NoError(t, exportFile(keymap.DefaultLabels(), in, out))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var doc struct {
			Layers map[string][][]any `yaml:"layers"`
		}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Len(t, doc.Layers, 3)
	})

	t.Run("failed read keeps previous output", func(t *testing.T) {
		out := writeTemp(t, "totem.yaml", "previous")

		err := exportFile(keymap.DefaultLabels(), filepath.Join(t.TempDir(), "absent.keymap"), out)
		assert.Equal(t, 2, exitCode(err))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})

	t.Run("unwritable output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "missing-dir", "totem.yaml")

		err := exportFile(keymap.DefaultLabels(), in, out)

		var fae *keymap.FileAccessError
		require.True(t, errors.As(err, &fae))
		assert.Equal(t, "write", fae.Op)
		assert.Equal(t, 3, exitCode(err))
		assert.NoFileExists(t, out)
	})
}
