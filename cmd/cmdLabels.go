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
	"fmt"
	"io"
	"regexp"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var labelsCmd = &cobra.Command{
	Use:     "labels",
	Short:   "Display the label table",
	Long:    helpLabels,
	Example: exampleLabels,
	Args:    cobra.NoArgs,

	Run: runLabels,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringVarP(&flags.filter, "filter", "f", "", "Only show tokens matching this regular expression")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runLabels(cmd *cobra.Command, args []string) {
	entries, err := filterEntries(mustLabels("labels").Entries(), flags.filter)
	horus.CheckErr(
		err,
		horus.WithOp("labels"),
		horus.WithMessage("`--filter` is not a valid regular expression"),
		horus.WithExitCode(2),
		horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
	)

	emitTable(cmd.OutOrStdout(), entries)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// filterEntries keeps entries whose token matches pattern; an empty pattern keeps all
func filterEntries(entries []keymap.Entry, pattern string) ([]keymap.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var out []keymap.Entry
	for _, e := range entries {
		if re.MatchString(e.Token) {
			out = append(out, e)
		}
	}
	return out, nil
}

// emitTable prints entries as a Markdown table
func emitTable(w io.Writer, entries []keymap.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No labels found.")
		return
	}

	fmt.Fprintln(w, "| Section    | Token                | Label      |")
	fmt.Fprintln(w, "|------------|----------------------|------------|")
	for _, e := range entries {
		fmt.Fprintf(w, "| %-10s | %-20s | %-10s |\n", e.Section, e.Token, e.Label)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
