package config

import (
	"os"
	"strings"

	"github.com/noriah/stepchart"
	"github.com/noriah/stepchart/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables, e.g. STEPCHART_MAX_HEIGHT
const EnvPrefix = "STEPCHART"

// FileName is the config file name searched for, without extension
const FileName = "stepchart"

// Config keys
const (
	KeyMaxHeight = "max-height"
	KeyView      = "view"
	KeyColor     = "color"
	KeyLogLevel  = "log-level"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the command line parameters
type Config struct {
	// MaxHeight is the tallest the chart may be, in lines
	MaxHeight int
	// View is "top" or "bottom"
	View string
	// Color is "auto", "always" or "never"
	Color string
	// LogLevel is "debug", "info", "warn" or "error"
	LogLevel string
}

// NewZeroConfig returns a zero config
// it is the "default"
func NewZeroConfig() Config {
	return Config{
		MaxHeight: 16,
		View:      scale.Bottom.String(),
		Color:     ColorAuto,
		LogLevel:  "warn",
	}
}

// Load reads the config from the environment and a config file.
// When path is empty, the user config directory is searched and a missing
// file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg = NewZeroConfig()

	v.SetDefault(KeyMaxHeight, cfg.MaxHeight)
	v.SetDefault(KeyView, cfg.View)
	v.SetDefault(KeyColor, cfg.Color)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	configureFile(v, path)

	if err := readFile(v, path != ""); err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	var height, err = cast.ToIntE(v.Get(KeyMaxHeight))
	if err != nil {
		return cfg, errors.Wrapf(err, "invalid %s", KeyMaxHeight)
	}

	cfg.MaxHeight = height
	cfg.View = v.GetString(KeyView)
	cfg.Color = v.GetString(KeyColor)
	cfg.LogLevel = v.GetString(KeyLogLevel)

	return cfg, nil
}

func configureFile(v *viper.Viper, path string) {
	if path != "" {
		v.SetConfigFile(path)
		return
	}

	v.SetConfigName(FileName)

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
}

func readFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && !strict {
			return nil
		}

		return err
	}

	return nil
}

// Sanitize cleans things up
func (cfg *Config) Sanitize() error {
	switch {
	case cfg.MaxHeight < 1:
		cfg.MaxHeight = 1
	case cfg.MaxHeight > stepchart.MaxHeight:
		cfg.MaxHeight = stepchart.MaxHeight
	}

	var view, err = scale.ParseView(cfg.View)
	if err != nil {
		return err
	}

	cfg.View = view.String()

	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("unknown color mode %q (expected auto, always, or never)", cfg.Color)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	case "warning":
		cfg.LogLevel = "warn"
	default:
		return errors.Errorf("unknown log level %q (expected debug, info, warn, or error)", cfg.LogLevel)
	}

	return nil
}

// ChartView returns the parsed view. Call after Sanitize.
func (cfg *Config) ChartView() scale.View {
	var view, _ = scale.ParseView(cfg.View)
	return view
}

// Height returns the chart height for data whose largest value is dataMax.
// A chart is never taller than its largest value, nor shorter than a line.
func (cfg *Config) Height(dataMax uint32) int {
	var height = cfg.MaxHeight

	if uint64(dataMax) < uint64(height) {
		height = int(dataMax)
	}

	if height < 1 {
		height = 1
	}

	return height
}
