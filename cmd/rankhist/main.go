package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/rankhist/internal/cli"
	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
	"github.com/linuxmatters/rankhist/internal/histogram"
	"github.com/linuxmatters/rankhist/internal/renderer"
	"github.com/linuxmatters/rankhist/internal/textplot"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input      string `arg:"" name:"input" help:"Delimited input file, stdin when omitted or -" optional:""`
	Delimiter  string `short:"d" help:"Field delimiter: tab, comma, space, semicolon, pipe or a single character" default:"${delimiter}"`
	Key        int    `short:"k" help:"Column holding the key, counting from 1" default:"${key}"`
	Output     string `short:"o" help:"Image file, format from extension (png, jpg, bmp, tif)" default:"${output}"`
	NoOutput   bool   `short:"n" name:"no-output" help:"Do not write the image"`
	Header     bool   `short:"H" help:"First record is a header"`
	TextPlot   bool   `short:"t" name:"text-plot" help:"Draw a text chart on stdout"`
	Save       string `short:"s" help:"Write raw counts to FILE, - for stdout" placeholder:"FILE"`
	Title      string `short:"T" help:"Chart title" default:"${title}"`
	Geometry   string `short:"g" help:"Image size as WIDTHxHEIGHT" default:"${geometry}"`
	XDesc      string `name:"xdesc" help:"X axis description" default:"${xdesc}"`
	YDesc      string `name:"ydesc" help:"Y axis description" default:"${ydesc}"`
	TextWidth  int    `name:"text-width" help:"Text chart width in dots" default:"${text_width}"`
	TextHeight int    `name:"text-height" help:"Text chart height in dots" default:"${text_height}"`
	Config     string `short:"c" help:"YAML file with colour, font and margin overrides" placeholder:"FILE"`
	Verbose    bool   `short:"v" help:"Log pipeline stages to stderr"`
	Version    bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("rankhist"),
		kong.Description("Plot the rank histogram of one column of a delimited stream."),
		kong.Vars{
			"version":     version,
			"delimiter":   config.DefaultDelimiter,
			"key":         strconv.Itoa(config.DefaultKeyColumn),
			"output":      config.DefaultOutput,
			"title":       config.DefaultTitle,
			"geometry":    config.DefaultGeometry,
			"xdesc":       config.DefaultXDesc,
			"ydesc":       config.DefaultYDesc,
			"text_width":  strconv.Itoa(config.TextWidth),
			"text_height": strconv.Itoa(config.TextHeight),
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	os.Exit(run())
}

// run executes one histogram pass and returns the process exit code
func run() int {
	logger := newLogger(CLI.Verbose)

	opts, err := buildOptions()
	if err != nil {
		return fail(logger, err)
	}
	logger.Debug("resolved options",
		"input", opts.Input,
		"delimiter", string(opts.Delimiter),
		"column", opts.Column,
		"geometry", opts.Plot.Geometry.String())

	p := &histogram.Pipeline{
		Options: opts,
		Stdout:  os.Stdout,
		Logger:  logger,
		Raster:  renderer.Raster,
		Text:    textplot.Renderer(),
	}

	res, err := p.RunInput(os.Stdin)
	if err != nil {
		return fail(logger, err)
	}

	// Keep pipes quiet; status is for people watching a terminal
	if textplot.IsTerminal(os.Stderr) {
		if opts.SavePath != "" && opts.SavePath != config.SaveToStdout {
			cli.PrintSuccess("Saved counts to " + opts.SavePath)
		}
		if !opts.NoImage {
			cli.PrintSuccess("Saved plot to " + opts.Plot.Output)
		}
		cli.PrintSummary(cli.Summary{
			Records:  res.Table.Total(),
			Distinct: res.Table.Len(),
			MaxCount: res.Ranks.Max(),
			AxisMax:  res.YMax,
		})
	}

	return 0
}

func buildOptions() (config.Options, error) {
	var rc *config.RuntimeConfig
	if CLI.Config != "" {
		loaded, err := config.LoadRuntimeConfig(CLI.Config)
		if err != nil {
			return config.Options{}, err
		}
		rc = loaded
	}

	return config.Build(config.Flags{
		Input:      CLI.Input,
		Delimiter:  CLI.Delimiter,
		Key:        CLI.Key,
		Output:     CLI.Output,
		NoOutput:   CLI.NoOutput,
		Header:     CLI.Header,
		TextPlot:   CLI.TextPlot,
		Save:       CLI.Save,
		Title:      CLI.Title,
		Geometry:   CLI.Geometry,
		XDesc:      CLI.XDesc,
		YDesc:      CLI.YDesc,
		TextWidth:  CLI.TextWidth,
		TextHeight: CLI.TextHeight,
	}, rc)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fail(logger *slog.Logger, err error) int {
	logger.Debug("run failed", "kind", string(errs.KindOf(err)))
	cli.PrintError(err.Error())
	return errs.ExitCode(err)
}
