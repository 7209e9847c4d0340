// Command texscale upscales every texture of a resource pack.
//
// Usage:
//
//	texscale -i <input dir> -o <output dir> [-x 64|128|256] [-l] [-workers N] [-v]
//
// Block textures are padded, upscaled and trimmed; item and entity textures
// are upscaled as-is; everything else is copied. The exit code is 0 when
// every resource was converted, 1 on a fatal error, and 2 when the batch
// finished with failed resources.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/texscale"
)

const (
	exitOK         = 0
	exitFatal      = 1
	exitIncomplete = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	input       string
	output      string
	scaleCode   int
	followLinks bool
	workers     int
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("texscale", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "input resource pack directory")
	fs.StringVar(&cfg.output, "o", "", "output directory")
	fs.IntVar(&cfg.scaleCode, "x", texscale.DefaultScaleCode, "target resolution 64, 128 or 256 (or scale 4, 8, 16)")
	fs.BoolVar(&cfg.followLinks, "l", false, "follow symbolic links to files")
	fs.IntVar(&cfg.workers, "workers", 0, "concurrent resources (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.verbose, "v", false, "log per-resource timings")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.input == "" || cfg.output == "" {
		fs.Usage()
		return cfg, errors.New("both -i and -o are required")
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "texscale: %v\n", err)
		return exitFatal
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	params, err := texscale.ParseScaleCode(cfg.scaleCode)
	if err != nil {
		log.Error("invalid scale", "err", err)
		return exitFatal
	}

	resources, err := texscale.Discover(cfg.input, cfg.followLinks)
	if err != nil {
		log.Error("discovery failed", "input", cfg.input, "err", err)
		return exitFatal
	}
	if err := texscale.PrepareOutput(cfg.output, resources); err != nil {
		log.Error("cannot create output tree", "output", cfg.output, "err", err)
		return exitFatal
	}
	log.Info("starting", "input", cfg.input, "output", cfg.output, "params", params.String(), "resources", len(resources))

	report, err := texscale.Run(ctx, texscale.Batch{
		InputRoot:  cfg.input,
		OutputRoot: cfg.output,
		Resources:  resources,
		Params:     params,
	}, texscale.WithWorkers(cfg.workers), texscale.WithLogger(log))
	if report != nil {
		printSummary(stdout, report)
	}
	switch {
	case err != nil:
		log.Error("batch aborted", "err", err)
		return exitFatal
	case report.Failed > 0:
		return exitIncomplete
	default:
		return exitOK
	}
}

func printSummary(w io.Writer, r *texscale.Report) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d of %d resources converted in %v", r.Succeeded, r.Total, r.Elapsed.Round(time.Millisecond))
	if r.Failed > 0 {
		p.Fprintf(w, ", %d failed", r.Failed)
	}
	if r.Skipped > 0 {
		p.Fprintf(w, ", %d skipped", r.Skipped)
	}
	p.Fprintln(w)
	for _, e := range r.Errors {
		p.Fprintf(w, "  %v\n", e)
	}
}
