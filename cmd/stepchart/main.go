package main

import (
	"fmt"
	"io"
	"os"

	"github.com/noriah/stepchart"
	"github.com/noriah/stepchart/config"
	"github.com/noriah/stepchart/input"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// AppName is the app name
const AppName = "stepchart"

// AppDesc is the app description
const AppDesc = "Compact bar charts of up to 100 values, for the terminal"

// AppSite is the app website
const AppSite = "https://github.com/noriah/stepchart"

var version = "unknown"

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitColumns = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flags hold command line values. Zero values are left to the config.
type flags struct {
	config    string
	maxHeight int
	view      string
	color     string
	logLevel  string
	raw       bool
}

func (fl *flags) apply(cfg *config.Config) {
	if fl.maxHeight != 0 {
		cfg.MaxHeight = fl.maxHeight
	}

	if fl.view != "" {
		cfg.View = fl.view
	}

	if fl.color != "" {
		cfg.Color = fl.color
	}

	if fl.logLevel != "" {
		cfg.LogLevel = fl.logLevel
	}
}

func newParser(fl *flags) *flaggy.Parser {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.AdditionalHelpAppend = "\n" + input.Docs
	parser.Version = version
	parser.ShowHelpOnUnexpected = false

	parser.Int(&fl.maxHeight, "mh", "max-height", "maximum chart height in lines (default 16)")
	parser.String(&fl.view, "v", "view", "which values stay in view, bottom or top (default bottom)")
	parser.String(&fl.color, "c", "color", "color mode, auto, always or never (default auto)")
	parser.String(&fl.logLevel, "l", "log-level", "log level, debug, info, warn or error (default warn)")
	parser.String(&fl.config, "", "config", "config file path")
	parser.Bool(&fl.raw, "r", "raw", "print the scaled steps instead of the chart")

	return parser
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var fl flags

	if err := newParser(&fl).ParseArgs(args); err != nil {
		fmt.Fprintln(stderr, "failed to parse arguments:", err)
		return exitFailure
	}

	cfg, err := config.Load(viper.New(), fl.config)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config:", err)
		return exitFailure
	}

	fl.apply(&cfg)

	if err := cfg.Sanitize(); err != nil {
		fmt.Fprintln(stderr, "invalid config:", err)
		return exitFailure
	}

	logger, err := buildLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "failed to build logger:", err)
		return exitFailure
	}

	defer logger.Sync()

	return draw(logger, &cfg, fl.raw, stdin, stdout)
}

func draw(logger *zap.Logger, cfg *config.Config, raw bool, stdin io.Reader, stdout io.Writer) int {
	cols, err := input.Read(stdin, input.DefaultLimit)
	if err != nil {
		logger.Error("failed to read input", zap.Error(err))

		var lineErr *input.LineError
		if errors.As(err, &lineErr) {
			return exitColumns
		}

		return exitFailure
	}

	if cols.Truncated {
		logger.Warn("data truncated", zap.Int("limit", input.DefaultLimit))
	}

	ds, err := input.Classify(cols)
	if err != nil {
		logger.Error("invalid input layout", zap.Error(err))
		return exitFailure
	}

	opts := stepchart.Options{
		Height:     cfg.Height(ds.Max()),
		View:       cfg.ChartView(),
		Display:    stepchart.Compact,
		Monochrome: !useColor(cfg.Color, stdout),
	}

	if ds.Labels != nil {
		opts.Display = stepchart.Portrait
		opts.Labels = ds.Labels
	}

	logger.Debug("drawing chart",
		zap.Int("values", len(ds.Primary)),
		zap.Bool("compare", ds.Compare != nil),
		zap.Int("height", opts.Height),
		zap.Stringer("view", opts.View),
		zap.Stringer("display", opts.Display))

	if err := stepchart.Validate(ds.Primary, ds.Compare, opts); err != nil {
		logger.Error("invalid chart", zap.Error(err))
		return exitFailure
	}

	chart := stepchart.New(ds.Primary, ds.Compare, opts)

	if raw {
		err = writeRaw(stdout, ds.Primary, ds.Compare, chart.Steps())
	} else {
		err = chart.Render(stdout)
	}

	if err != nil {
		logger.Error("failed to draw chart", zap.Error(err))
		return exitFailure
	}

	return exitOK
}
