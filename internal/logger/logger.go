// Package logger builds the zerolog logger used by the tabstat command.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Pretty switches from JSON lines to zerolog's human console format.
	Pretty bool
	// Debug lowers the level from info to debug.
	Debug bool
	// Out receives debug and info events. Defaults to os.Stdout.
	Out io.Writer
	// Err receives warn and above. Defaults to os.Stderr.
	Err io.Writer
}

// New returns a logger that writes info and below to opts.Out and
// warnings and errors to opts.Err.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"

	out, errOut := opts.Out, opts.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !isTerminal(out)}
		errOut = zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.TimeOnly, NoColor: !isTerminal(errOut)}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(levelSplitWriter{out: out, err: errOut}).
		Level(level).
		With().Timestamp().Logger()
}

// levelSplitWriter routes events to one of two writers by level.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

var _ zerolog.LevelWriter = levelSplitWriter{}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.WarnLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}

	return w.out.Write(p)
}

// isTerminal reports whether w is a console, including Cygwin/MSYS ptys.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
