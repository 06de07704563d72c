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
	"errors"
	"fmt"
	"io"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttacon/chalk"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:     "totem <keymap> [output]",
	Short:   "Regenerate layer comment diagrams of a Totem keymap",
	Long:    helpRoot,
	Example: exampleRoot,
	Args:    cobra.RangeArgs(1, 2),

	PersistentPreRun:  persistentPreRun,
	PersistentPostRun: persistentPostRun,
	Run:               runSync,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func Execute() {
	horus.CheckErr(rootCmd.Execute())
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type totemFlags struct {
	verbose bool
	config  string
	labels  string
	check   bool

	filter string

	exportOut string

	drawOutDir string
	drawLayers []string
	drawConfig string
}

var errStale = errors.New("keymap comments are stale")

var (
	flags  totemFlags
	cfg    = viper.New()
	logger = zap.NewNop()
)

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose diagnostics")
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "", "", "Config file (default $HOME/.totem/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flags.labels, "labels", "l", "", "TOML or EDN label file merged over the built-in table")

	rootCmd.Flags().BoolVarP(&flags.check, "check", "", false, "Report stale layers without writing, exit 1 if any")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func persistentPreRun(cmd *cobra.Command, args []string) {
	var err error
	cfg, err = newConfig(flags.config, cmd.Flags())
	horus.CheckErr(
		err,
		horus.WithOp("config"),
		horus.WithCategory("init_error"),
		horus.WithMessage("loading configuration"),
		horus.WithExitCode(2),
	)

	logger, err = newLogger(cfg.GetBool("verbose"))
	horus.CheckErr(
		err,
		horus.WithOp("logger"),
		horus.WithCategory("init_error"),
		horus.WithMessage("initializing logger"),
	)
}

func persistentPostRun(cmd *cobra.Command, args []string) {
	_ = logger.Sync()
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runSync(cmd *cobra.Command, args []string) {
	in, out := args[0], ""
	if len(args) > 1 {
		out = args[1]
	}

	report, err := syncKeymap(mustLabels("sync"), in, out, flags.check)
	checkFileErr("sync", err)

	if flags.check {
		stale := printStale(cmd.OutOrStdout(), report)
		if stale > 0 {
			_ = logger.Sync()
			horus.CheckErr(
				errStale,
				horus.WithOp("check"),
				horus.WithMessage(fmt.Sprintf("%d stale layer(s) in %s", stale, in)),
				horus.WithExitCode(1),
				horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
			)
		}
		return
	}

	if out == "" {
		out = in
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated keymap saved to: %s (%d updated, %d unchanged, %d skipped)\n",
		chalk.Cyan.Color(out),
		report.Count(keymap.Updated),
		report.Count(keymap.Unchanged),
		report.Count(keymap.Skipped),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// syncKeymap regenerates the comments of in and writes them to out, or only reports in check mode
func syncKeymap(labels keymap.Labels, in, out string, check bool) (keymap.Report, error) {
	s := keymap.NewSynchronizer(labels, keymap.WithLogger(logger))
	if check {
		return s.CheckFile(in)
	}
	return s.SyncFile(in, out)
}

// printStale lists layers whose comment differs from their bindings
func printStale(w io.Writer, report keymap.Report) int {
	stale := 0
	for _, l := range report.Layers {
		if l.Status != keymap.Updated {
			continue
		}
		stale++
		fmt.Fprintf(w, "%s %s\n", chalk.Yellow.Color("stale:"), l.Layer)
	}
	return stale
}

// exitCode maps file access failures onto distinct exit statuses
func exitCode(err error) int {
	var fae *keymap.FileAccessError
	if errors.As(err, &fae) {
		switch fae.Op {
		case "read":
			return 2
		case "write":
			return 3
		}
	}
	return 1
}

func checkFileErr(op string, err error) {
	if err == nil {
		return
	}
	horus.CheckErr(
		err,
		horus.WithOp(op),
		horus.WithCategory("file_access"),
		horus.WithMessage(err.Error()),
		horus.WithExitCode(exitCode(err)),
		horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
