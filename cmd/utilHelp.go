////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"github.com/DanielRivasMD/domovoi"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var helpRoot = domovoi.FormatHelp(
	"Daniel Rivas",
	"danielrivasmd@gmail.com",
	"Keep Totem keymap comment diagrams in sync with their bindings",
)

var helpLabels = domovoi.FormatHelp(
	"Daniel Rivas",
	"danielrivasmd@gmail.com",
	"List the key labels used in comment diagrams",
)

var helpExport = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Export keymap layers as keymap-drawer YAML",
)

var helpDraw = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Render keymap layers as SVG through keymap-drawer",
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var exampleRoot = chalk.Cyan.Color("totem") + " " + chalk.Yellow.Color("config/totem.keymap") + `
` + chalk.Cyan.Color("totem") + " " + chalk.Yellow.Color("config/totem.keymap") + " " + chalk.Yellow.Color("/tmp/totem.keymap") + `
` + chalk.Cyan.Color("totem") + " --check " + chalk.Yellow.Color("config/totem.keymap")

var exampleLabels = chalk.Cyan.Color("totem") + " labels --filter " + chalk.Yellow.Color("'^C_'")

var exampleExport = chalk.Cyan.Color("totem") + " export " + chalk.Yellow.Color("config/totem.keymap") + " --out " + chalk.Yellow.Color("totem.yaml")

var exampleDraw = chalk.Cyan.Color("totem") + " draw " + chalk.Yellow.Color("config/totem.keymap") + " --layer Base --layer Nav"

////////////////////////////////////////////////////////////////////////////////////////////////////

func onelineErr(msg string) string {
	return chalk.Red.Color("error: ") + chalk.Bold.TextStyle(msg)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
