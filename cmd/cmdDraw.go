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
	"os"
	"os/exec"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var drawCmd = &cobra.Command{
	Use:     "draw <keymap>",
	Short:   "Render SVG diagrams with keymap-drawer",
	Long:    helpDraw,
	Example: exampleDraw,
	Args:    cobra.ExactArgs(1),

	PreRun: preDraw,
	Run:    runDraw,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&flags.drawOutDir, "out-dir", "d", ".", "Directory receiving the YAML and SVG files")
	drawCmd.Flags().StringSliceVarP(&flags.drawLayers, "layer", "s", nil, "Also draw this layer on its own (repeatable)")
	drawCmd.Flags().StringVarP(&flags.drawConfig, "drawer-config", "c", "", "keymap-drawer config file")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func preDraw(cmd *cobra.Command, args []string) {
	_, err := exec.LookPath("keymap")
	horus.CheckErr(
		err,
		horus.WithOp("draw.lookup"),
		horus.WithMessage("`keymap` (keymap-drawer) is not on PATH"),
		horus.WithExitCode(2),
		horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
	)

	_, err = os.Stat(args[0])
	if err != nil {
		checkFileErr("draw", &keymap.FileAccessError{Op: "read", Path: args[0], Err: err})
	}

	horus.CheckErr(
		os.MkdirAll(flags.drawOutDir, 0o755),
		horus.WithOp("draw.mkdir"),
		horus.WithMessage(flags.drawOutDir),
		horus.WithExitCode(3),
		horus.WithFormatter(func(he *horus.Herror) string { return onelineErr("cannot create " + he.Message) }),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runDraw(cmd *cobra.Command, args []string) {
	df := newDrawConfig(args[0], flags.drawOutDir, cfg.GetString("drawer-config"), flags.drawLayers...)

	logger.Debug("running keymap-drawer", zap.String("command", df.Cmd()))
	drawForging("draw", df)
	logger.Info("diagrams written", zap.String("dir", flags.drawOutDir), zap.Int("layers", len(flags.drawLayers)))
}

////////////////////////////////////////////////////////////////////////////////////////////////////
