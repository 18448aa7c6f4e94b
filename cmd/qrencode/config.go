package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/charset"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

const (
	defaultVersion  = 2
	defaultLevel    = "L"
	defaultMask     = 7
	defaultMargin   = 4
	defaultFormat   = "text"
	defaultLogLevel = "NOTICE"
)

// Symbol is the symbol layout section of the configuration.
type Symbol struct {
	// Version is the QR version, 1-5.
	Version int

	// Level is the error correction level: L, M, Q or H.
	Level string

	// Mask is the data mask pattern, 0-7.
	Mask *int

	// CharacterSet names the single-byte character set for the payload.
	CharacterSet string
}

// Output is the rendering section of the configuration.
type Output struct {
	// Format is "text" or "json".
	Format string

	// Margin is the quiet zone in modules.
	Margin *int
}

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

// Config is the qrencode configuration.
type Config struct {
	Symbol  *Symbol
	Output  *Output
	Logging *Logging
}

// FixupAndValidate applies defaults to unset fields and validates the
// configuration.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Symbol == nil {
		cfg.Symbol = &Symbol{}
	}
	if cfg.Output == nil {
		cfg.Output = &Output{}
	}
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}

	s := cfg.Symbol
	if s.Version == 0 {
		s.Version = defaultVersion
	}
	if s.Level == "" {
		s.Level = defaultLevel
	}
	if s.Mask == nil {
		mask := defaultMask
		s.Mask = &mask
	}
	if _, err := symbol.GetVersionForNumber(s.Version); err != nil {
		return fmt.Errorf("config: Symbol.Version: %w", err)
	}
	if _, err := symbol.ParseECLevel(s.Level); err != nil {
		return fmt.Errorf("config: Symbol.Level: %w", err)
	}
	if !symbol.IsValidMaskPattern(*s.Mask) {
		return fmt.Errorf("config: Symbol.Mask: %w: %d", qrsymbol.ErrInvalidMaskPattern, *s.Mask)
	}
	if _, err := charset.GetECIByName(s.CharacterSet); err != nil {
		return fmt.Errorf("config: Symbol.CharacterSet: %w", err)
	}

	o := cfg.Output
	if o.Format == "" {
		o.Format = defaultFormat
	}
	if o.Margin == nil {
		margin := defaultMargin
		o.Margin = &margin
	}
	switch o.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: Output.Format: invalid format '%v'", o.Format)
	}
	if *o.Margin < 0 {
		return errors.New("config: Output.Margin must not be negative")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	return nil
}

// EncodeOptions returns the symbol options the configuration selects.
func (cfg *Config) EncodeOptions() *qrsymbol.EncodeOptions {
	mask := *cfg.Symbol.Mask
	margin := *cfg.Output.Margin
	return &qrsymbol.EncodeOptions{
		ErrorCorrection: cfg.Symbol.Level,
		CharacterSet:    cfg.Symbol.CharacterSet,
		Margin:          &margin,
		QRVersion:       cfg.Symbol.Version,
		QRMaskPattern:   &mask,
	}
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
