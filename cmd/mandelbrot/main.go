// seehuhn.de/go/mandel - a Mandelbrot set renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command mandelbrot renders a view of the Mandelbrot set to an image file.
//
// Usage:
//
//	mandelbrot [flags] FILE PIXELS UPPERLEFT LOWERRIGHT
//
// PIXELS is the image size, for example 1000x750.  UPPERLEFT and LOWERRIGHT
// are the points of the complex plane at the corners of the image, for
// example -1.20,0.35 and -1.0,0.20.  The output format (PNG, TIFF, BMP or
// PDF) is chosen by the extension of FILE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"seehuhn.de/go/mandel"
	"seehuhn.de/go/mandel/output"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mandelbrot: ")

	err := run(os.Args[1:], os.Stderr)
	switch {
	case err == nil:
		// pass
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.As(err, new(*usageError)):
		log.Print(err)
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// usageError indicates a problem with the command line.  It is reported
// before any rendering starts.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

type config struct {
	path          string
	width, height int
	viewport      mandel.Viewport
	limit         int
	workers       int
	verbose       bool
}

// parseArgs checks the command line.  Usage information is written to
// stderr if the arguments are not valid.
func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	flags := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&cfg.limit, "limit", mandel.DefaultLimit, "maximal number of iterations per pixel (1-255)")
	flags.IntVar(&cfg.workers, "workers", 0, "number of parallel workers (0 means one per CPU)")
	flags.BoolVar(&cfg.verbose, "v", false, "log progress information")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintln(out, "Usage: mandelbrot [flags] FILE PIXELS UPPERLEFT LOWERRIGHT")
		fmt.Fprintln(out, "Example: mandelbrot mandel.png 1000x750 -1.20,0.35 -1.0,0.20")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &usageError{err: err}
	}

	if flags.NArg() != 4 {
		flags.Usage()
		return nil, usageErrorf("expected 4 arguments, got %d", flags.NArg())
	}
	if cfg.limit < 1 || cfg.limit > mandel.MaxLimit {
		return nil, usageErrorf("-limit must be between 1 and %d, got %d", mandel.MaxLimit, cfg.limit)
	}
	if cfg.workers < 0 {
		return nil, usageErrorf("-workers must not be negative, got %d", cfg.workers)
	}

	cfg.path = flags.Arg(0)
	if _, err := output.FormatFor(cfg.path); err != nil {
		return nil, &usageError{err: err}
	}

	var err error
	cfg.width, cfg.height, err = mandel.ParseSize(flags.Arg(1))
	if err != nil {
		return nil, &usageError{err: fmt.Errorf("image dimensions: %w", err)}
	}
	cfg.viewport.UpperLeft, err = mandel.ParsePoint(flags.Arg(2))
	if err != nil {
		return nil, &usageError{err: fmt.Errorf("upper left corner: %w", err)}
	}
	cfg.viewport.LowerRight, err = mandel.ParsePoint(flags.Arg(3))
	if err != nil {
		return nil, &usageError{err: fmt.Errorf("lower right corner: %w", err)}
	}

	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	r := mandel.NewRenderer()
	r.Limit = cfg.limit
	if cfg.workers > 0 {
		r.Workers = cfg.workers
	}

	start := time.Now()
	img := r.Image(cfg.width, cfg.height, cfg.viewport)
	if cfg.verbose {
		log.Printf("rendered %dx%d pixels with %d workers in %s",
			cfg.width, cfg.height, r.Workers, time.Since(start))
		log.Printf("pixel step %g", cfg.viewport.Step(cfg.width, cfg.height))
	}

	if err := output.WriteFile(cfg.path, img); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	if cfg.verbose {
		log.Printf("image saved to %q", cfg.path)
	}
	return nil
}
