package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gcslaoli/roundicon"
)

// go run ./cmd/roundicon icon.png
// go run ./cmd/roundicon icon.png icon_rounded.png 22
// go run ./cmd/roundicon -mask gg icon.jpg rounded.png 30
// go run ./cmd/roundicon -outbase64 icon.png > rounded.b64

const usageLine = "roundicon [flags] <input.png> [output.png] [radius_percent]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roundicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mask := fs.String("mask", roundicon.MaskVector, "Mask rasterizer backend (vector or gg)")
	inBase64 := fs.Bool("base64", false, "Treat the input argument as base64 image data (optionally a data URL)")
	outBase64 := fs.Bool("outbase64", false, "Write the rounded PNG as base64 to stdout instead of a file")
	verbose := fs.Bool("v", false, "Enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s\n", usageLine)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		roundicon.SetLogger(logger)
		gg.SetLogger(logger)
	}

	opts, err := parseArgs(fs.Args())
	if err != nil {
		var usage *roundicon.UsageError
		if errors.As(err, &usage) {
			fs.Usage()
			return 1
		}
		fmt.Fprintf(stderr, "❌ error: %v\n", err)
		return 1
	}

	rasterizer, err := roundicon.RasterizerByName(*mask)
	if err != nil {
		fmt.Fprintf(stderr, "❌ error: %v\n", err)
		return 1
	}
	engine := roundicon.NewEngine(roundicon.WithRasterizer(rasterizer))

	var info roundicon.Info
	switch {
	case *inBase64 || *outBase64:
		info, err = runBase64(engine, opts, *inBase64, *outBase64, stdout)
	default:
		info, err = engine.AddRoundedCorners(opts.input, opts.output, opts.radiusPercent)
	}
	if err != nil {
		fmt.Fprintf(stderr, "❌ error: %v\n", err)
		return 1
	}

	// Keep stdout clean when it carries the base64 payload.
	report := stdout
	dest := opts.output
	if *outBase64 {
		report = stderr
		dest = "stdout (base64)"
	}
	fmt.Fprintf(report, "✅ Rounded icon written: %s\n", dest)
	fmt.Fprintf(report, "   size: %dx%d, radius: %dpx (%d%%)\n", info.Width, info.Height, info.RadiusPx, info.RadiusPercent)
	return 0
}

type options struct {
	input         string
	output        string
	radiusPercent int
}

// parseArgs resolves the positional arguments: input, optional output and
// optional radius percentage.
func parseArgs(args []string) (options, error) {
	if len(args) < 1 || args[0] == "" {
		return options{}, &roundicon.UsageError{Usage: usageLine}
	}

	opts := options{
		input:         args[0],
		output:        roundicon.DefaultOutputPath,
		radiusPercent: roundicon.DefaultRadiusPercent,
	}
	if len(args) > 1 {
		opts.output = args[1]
	}
	if len(args) > 2 {
		v, err := roundicon.ParseRadiusPercent(args[2])
		if err != nil {
			return options{}, err
		}
		opts.radiusPercent = v
	}
	return opts, nil
}

// runBase64 handles the variants where the input, the output or both are
// base64 text instead of files.
func runBase64(engine *roundicon.Engine, opts options, inBase64, outBase64 bool, stdout io.Writer) (roundicon.Info, error) {
	var (
		img image.Image
		err error
	)
	if inBase64 {
		img, _, err = roundicon.DecodeBase64Image(opts.input)
	} else {
		img, err = roundicon.DecodeFile(opts.input)
	}
	if err != nil {
		return roundicon.Info{}, err
	}

	rounded, info, err := engine.RoundCorners(img, opts.radiusPercent)
	if err != nil {
		return roundicon.Info{}, err
	}

	if !outBase64 {
		return info, roundicon.WritePNG(opts.output, rounded)
	}

	encoded, err := roundicon.EncodePNGToBase64(rounded)
	if err != nil {
		return roundicon.Info{}, err
	}
	fmt.Fprintln(stdout, encoded)
	return info, nil
}
