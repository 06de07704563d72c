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
package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var exportCmd = &cobra.Command{
	Use:     "export <keymap>",
	Short:   "Export layers as keymap-drawer YAML",
	Long:    helpExport,
	Example: exampleExport,
	Args:    cobra.ExactArgs(1),

	Run: runExport,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&flags.exportOut, "out", "o", "", "Write output to this file instead of stdout")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runExport(cmd *cobra.Command, args []string) {
	labels := mustLabels("export")

	if flags.exportOut == "" {
		checkFileErr("export", exportKeymap(cmd.OutOrStdout(), labels, args[0]))
		return
	}
	checkFileErr("export", exportFile(labels, args[0], flags.exportOut))
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// exportKeymap writes the keymap-drawer YAML for the keymap at path
func exportKeymap(w io.Writer, labels keymap.Labels, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &keymap.FileAccessError{Op: "read", Path: path, Err: err}
	}

	doc := keymap.ParseDocument(string(data))
	for _, l := range doc.Layers {
		if l.Warning != nil {
			logger.Warn("layer left out of export",
				zap.String("layer", l.Name),
				zap.Int("line", l.Warning.Line),
				zap.String("reason", l.Warning.Reason),
			)
		}
	}

	if err := keymap.Export(w, doc, labels); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	return nil
}

// exportFile renders the whole export before replacing out, so a failure leaves out untouched
func exportFile(labels keymap.Labels, in, out string) error {
	var buf bytes.Buffer
	if err := exportKeymap(&buf, labels, in); err != nil {
		return err
	}
	if err := keymap.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return &keymap.FileAccessError{Op: "write", Path: out, Err: err}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
