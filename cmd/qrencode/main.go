// Command qrencode prints a QR code symbol for a text payload.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ericlevine/qrsymbol/internal/log"
	"github.com/ericlevine/qrsymbol/qrcode"
	"github.com/ericlevine/qrsymbol/qrcode/encoder"
)

// flags holds the command line overrides.
type flags struct {
	ConfigFile   string
	Version      int
	Level        string
	Mask         int
	CharacterSet string
	Margin       int
	Output       string
	LogLevel     string
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "qrencode [flags] <text>",
		Short: "Encode text as a QR code symbol",
		Long: `qrencode encodes a short text payload as a byte-mode QR code symbol and
prints it to stdout, either as block characters or as a JSON module grid.

Defaults come from the optional TOML configuration file; flags override it.`,
		Example: `  # Version 2, level L, mask 7
  qrencode HELLO

  # Version 1 at level H with mask 3, as JSON
  qrencode --qr-version 1 --level H --mask 3 --output json HELLO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			return run(cfg, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&f.ConfigFile, "config", "c", "", "configuration file")
	cmd.Flags().IntVar(&f.Version, "qr-version", defaultVersion, "QR version (1-5)")
	cmd.Flags().StringVarP(&f.Level, "level", "l", defaultLevel, "error correction level (L, M, Q, H)")
	cmd.Flags().IntVarP(&f.Mask, "mask", "m", defaultMask, "data mask pattern (0-7)")
	cmd.Flags().StringVar(&f.CharacterSet, "charset", "", "single-byte character set (default ISO-8859-1)")
	cmd.Flags().IntVar(&f.Margin, "margin", defaultMargin, "quiet zone in modules")
	cmd.Flags().StringVarP(&f.Output, "output", "o", defaultFormat, "output format (text, json)")
	cmd.Flags().StringVar(&f.LogLevel, "log-level", defaultLogLevel, "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")

	return cmd
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*Config, error) {
	var cfg *Config
	var err error
	if f.ConfigFile != "" {
		cfg, err = LoadFile(f.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%v': %v", f.ConfigFile, err)
		}
	} else {
		cfg, err = Load(nil)
		if err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("qr-version") {
		cfg.Symbol.Version = f.Version
	}
	if changed("level") {
		cfg.Symbol.Level = f.Level
	}
	if changed("mask") {
		cfg.Symbol.Mask = &f.Mask
	}
	if changed("charset") {
		cfg.Symbol.CharacterSet = f.CharacterSet
	}
	if changed("margin") {
		cfg.Output.Margin = &f.Margin
	}
	if changed("output") {
		cfg.Output.Format = f.Output
	}
	if changed("log-level") {
		cfg.Logging.Level = f.LogLevel
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *Config, content string, w io.Writer) error {
	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return err
	}
	logger := backend.GetLogger("qrencode")
	encoder.SetLogger(backend.GetSlogger("encoder"))
	defer encoder.SetLogger(nil)

	symbolCfg, margin, err := qrcode.ConfigFromOptions(cfg.EncodeOptions())
	if err != nil {
		return err
	}
	s, err := encoder.Encode(content, symbolCfg)
	if err != nil {
		logger.Errorf("encoding %d characters: %v", len(content), err)
		return err
	}
	logger.Infof("encoded version %d-%s mask %d, %d modules per side",
		symbolCfg.Version, symbolCfg.ECLevel, symbolCfg.MaskPattern, s.Size())

	switch cfg.Output.Format {
	case "json":
		return writeJSON(w, s)
	default:
		return writeText(w, s, margin)
	}
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versioninfo.Short()),
	); err != nil {
		os.Exit(1)
	}
}
