////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/DanielRivasMD/domovoi"
	"github.com/DanielRivasMD/horus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DanielRivasMD/Totem/internal/keymap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// newConfig layers flags over TOTEM_* environment variables over the config file.
// An empty path means $HOME/.totem/config.toml, which may be absent.
func newConfig(path string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := domovoi.FindHome(false)
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Join(home, ".totem"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("totem")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// newLogger writes leveled diagnostics to stderr, keeping stdout for command output
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// loadLabels merges a user label file over the built-in table
func loadLabels(path string) (keymap.Labels, error) {
	labels := keymap.DefaultLabels()
	if path == "" {
		return labels, nil
	}
	user, err := keymap.LoadLabels(path)
	if err != nil {
		return keymap.Labels{}, err
	}
	return labels.Merge(user), nil
}

func mustLabels(op string) keymap.Labels {
	labels, err := loadLabels(cfg.GetString("labels"))
	horus.CheckErr(
		err,
		horus.WithOp(op),
		horus.WithCategory("config_error"),
		horus.WithMessage(cfg.GetString("labels")),
		horus.WithExitCode(2),
		horus.WithFormatter(func(he *horus.Herror) string {
			return onelineErr("failed to load labels " + he.Message)
		}),
	)
	return labels
}

////////////////////////////////////////////////////////////////////////////////////////////////////
