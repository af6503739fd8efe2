package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/tabstat"
	"github.com/arloliu/tabstat/errs"
	"github.com/arloliu/tabstat/format"
	"github.com/arloliu/tabstat/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tabstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tabstat [flags] <\"filename.extension\">\n\nFlags:\n")
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output document path (default \"formatted.json\")")
	compression := fs.String("compress", "none", "Output compression: none, zstd, s2 or lz4")
	strict := fs.Bool("strict", false, "Fail on unparsable cells in numeric columns instead of skipping them")
	truncate := fs.Bool("truncate", false, "Ignore the cells of a trailing partial row")
	pretty := fs.Bool("pretty", true, "Human readable console output instead of JSON log lines")
	debug := fs.Bool("debug", false, "Enable debug logging")

	// -h and -help print usage but are still not a run.
	if err := fs.Parse(args); err != nil {
		return 1
	}

	log := logger.New(logger.Options{Pretty: *pretty, Debug: *debug, Out: stdout, Err: stderr})

	if fs.NArg() != 1 {
		log.Error().Err(errs.ErrUsage).Int("args", fs.NArg()).Msg("invalid arguments")
		fs.Usage()

		return 1
	}

	comp, ok := format.ParseCompression(*compression)
	if !ok {
		log.Error().Str("compress", *compression).Err(errs.ErrUnsupportedCompression).Msg("invalid flag")
		return 1
	}

	cfg := tabstat.Config{
		Input:       fs.Arg(0),
		Output:      *output,
		Compression: comp,
		Strict:      *strict,
		Truncate:    *truncate,
	}

	if err := tabstat.Run(cfg, log); err != nil {
		log.Error().Err(err).Str("kind", errorKind(err)).Msg("run failed")
		return 1
	}

	return 0
}

// errorKind names the failure class for the log line.
func errorKind(err error) string {
	switch {
	case errors.Is(err, errs.ErrNoDataBoundary):
		return "layout"
	case errors.Is(err, errs.ErrNoNumericData), errors.Is(err, errs.ErrInvalidNumber):
		return "content"
	default:
		return "io"
	}
}
