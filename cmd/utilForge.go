////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DanielRivasMD/domovoi"
	"github.com/DanielRivasMD/horus"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type drawForge struct {
	config string
	keymap string
	outDir string
	layers []string
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func newDrawConfig(
	keymapFile string,
	outDir string,
	drawerConfig string,
	layers ...string,
) drawForge {
	return drawForge{
		config: drawerConfig,
		keymap: keymapFile,
		outDir: outDir,
		layers: layers,
	}
}

func drawForging(op string, df drawForge) {
	horus.CheckErr(
		domovoi.ExecSh(df.Cmd()),
		horus.WithOp(op),
		horus.WithCategory("shell_command"),
		horus.WithMessage("Failed to execute keymap-drawer command"),
		horus.WithDetails(map[string]any{
			"command": df.Cmd(),
		}),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (d drawForge) stem() string {
	base := filepath.Base(d.keymap)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Yaml is the intermediate keymap-drawer file
func (d drawForge) Yaml() string {
	return filepath.Join(d.outDir, d.stem()+".yaml")
}

func (d drawForge) svg(suffix string) string {
	if suffix == "" {
		return filepath.Join(d.outDir, d.stem()+".svg")
	}
	return filepath.Join(d.outDir, d.stem()+"-"+suffix+".svg")
}

func (d drawForge) bin() string {
	if d.config == "" {
		return "keymap"
	}
	return "keymap -c " + shellQuote(d.config)
}

func (d drawForge) Cmd() string {
	steps := []string{
		fmt.Sprintf(`%s parse -z %s > %s`, d.bin(), shellQuote(d.keymap), shellQuote(d.Yaml())),
		fmt.Sprintf(`%s draw %s > %s`, d.bin(), shellQuote(d.Yaml()), shellQuote(d.svg(""))),
	}
	for _, l := range d.layers {
		steps = append(steps,
			fmt.Sprintf(`%s draw %s -s %s > %s`, d.bin(), shellQuote(d.Yaml()), shellQuote(l), shellQuote(d.svg(l))))
	}
	return strings.Join(steps, " && \\\n")
}

// shellQuote wraps s in single quotes for sh
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

////////////////////////////////////////////////////////////////////////////////////////////////////
