// Package cmd implements the paleta command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mmuldo/paleta/image"
	"github.com/mmuldo/paleta/palette"
)

// app carries the configuration and logger shared by every command.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *zap.Logger
}

// Execute runs the root command.
func Execute() {
	if e := NewRootCmd().Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}

// NewRootCmd builds the paleta command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "paleta",
		Short: "Convert colors, compare palettes and generate color schemes",
		Long: `paleta keeps colors in RGB, HSL and hex at once, compares whole palettes
by their overall color trend and generates palettes (shades, analogous,
monochromatic, complementary, triad, tetrad, split complement, random or
from an image) out of a single seed color.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.paleta.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("swatch", false, "print a colored swatch next to each color")
	flags.Int("max-dimension", image.DefaultMaxDimension, "longest image side, in pixels, kept before quantizing")

	_ = a.v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("swatch", flags.Lookup("swatch"))
	_ = a.v.BindPFlag("max-dimension", flags.Lookup("max-dimension"))
	a.v.SetDefault("size", palette.DefaultSize)
	a.v.SetDefault("scheme", palette.Shades.String())

	rootCmd.AddCommand(
		newColorCmd(a),
		newGenerateCmd(a),
		newSimilarityCmd(a),
		newExtractCmd(a),
		newThemeCmd(a),
		newSwatchCmd(a),
	)

	return rootCmd
}

// init reads the config file and environment and builds the logger.
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			return e
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".paleta")
	}

	a.v.SetEnvPrefix("paleta")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	readErr := a.v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok || a.cfgFile != "" {
			return fmt.Errorf("read config: %w", readErr)
		}
	}

	a.logger = newLogger(a.v.GetString("log-level"))
	if readErr == nil {
		a.logger.Debug("using config file", zap.String("path", a.v.ConfigFileUsed()))
	}
	return nil
}

// extractor returns the image extractor configured for a.
func (a *app) extractor() *image.Extractor {
	x := image.NewExtractor(a.logger)
	x.MaxDimension = a.v.GetInt("max-dimension")
	return x
}

func newLogger(level string) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		parseLogLevel(level),
	)
	return zap.New(core)
}

// parseLogLevel converts a string log level to a zapcore.Level.
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}
