// Package emit renders column statistics as a tab-indented JSON document and
// writes it to its destination.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/arloliu/tabstat/compress"
	"github.com/arloliu/tabstat/format"
	"github.com/arloliu/tabstat/internal/options"
	"github.com/arloliu/tabstat/internal/pool"
	"github.com/arloliu/tabstat/stats"
)

// DefaultDestination is the output path used when none is configured.
const DefaultDestination = "formatted.json"

// Config holds the emitter settings.
type Config struct {
	// Destination is the file WriteFile creates or overwrites.
	Destination string
	// Compression wraps the rendered document before it is written.
	Compression format.CompressionType
}

func defaultConfig() Config {
	return Config{
		Destination: DefaultDestination,
		Compression: format.CompressionNone,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithDestination sets the output path.
func WithDestination(path string) Option {
	return options.New(func(cfg *Config) error {
		if path == "" {
			return fmt.Errorf("destination path cannot be empty")
		}
		cfg.Destination = path

		return nil
	})
}

// WithCompression sets the output compression.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.Compression = comp
			return nil
		default:
			return fmt.Errorf("invalid output compression: %v", comp)
		}
	})
}

// Emitter writes entries as a JSON object keyed by column name.
type Emitter struct {
	cfg   Config
	codec compress.Codec
}

// NewEmitter creates an emitter. Without options it writes plain text to
// DefaultDestination.
func NewEmitter(opts ...Option) (*Emitter, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.Compression, "output")
	if err != nil {
		return nil, err
	}

	return &Emitter{cfg: cfg, codec: codec}, nil
}

// Destination returns the configured output path.
func (e *Emitter) Destination() string {
	return e.cfg.Destination
}

// Render returns the document for entries.
//
// The layout is fixed: one key per line, entries indented by one tab and
// statistic fields by two, every line terminated by '\n'. The minimum and
// maximum lines end with a comma, the average line never does, and every
// entry's closing brace except the last one is followed by a comma.
// Entries without data are skipped.
func (e *Emitter) Render(entries []stats.Entry) []byte {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	renderTo(bb, entries)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}

// WriteTo renders entries, applies the configured compression and writes
// the result to w.
func (e *Emitter) WriteTo(w io.Writer, entries []stats.Entry) (int64, error) {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	renderTo(bb, entries)

	payload, err := e.codec.Compress(bb.Bytes())
	if err != nil {
		return 0, fmt.Errorf("compress output: %w", err)
	}

	n, err := w.Write(payload)

	return int64(n), err
}

// WriteFile writes the document to the configured destination, replacing
// any existing file without confirmation.
func (e *Emitter) WriteFile(entries []stats.Entry) error {
	f, err := os.Create(e.cfg.Destination)
	if err != nil {
		return fmt.Errorf("create %s: %w", e.cfg.Destination, err)
	}

	if _, err := e.WriteTo(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", e.cfg.Destination, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", e.cfg.Destination, err)
	}

	return nil
}

func renderTo(bb *pool.ByteBuffer, entries []stats.Entry) {
	last := -1
	for i, entry := range entries {
		if entry.HasData() {
			last = i
		}
	}

	writeLine(bb, "{")
	for i, entry := range entries {
		if !entry.HasData() {
			continue
		}

		_, _ = bb.WriteString("\t")
		writeKey(bb, entry.Name)
		writeLine(bb, ": {")

		writeField(bb, "minimum", entry.Data.Min, true)
		writeField(bb, "maximum", entry.Data.Max, true)
		writeField(bb, "average", entry.Data.Avg, false)

		if i == last {
			writeLine(bb, "\t}")
		} else {
			writeLine(bb, "\t},")
		}
	}
	writeLine(bb, "}")
}

func writeLine(bb *pool.ByteBuffer, line string) {
	_, _ = bb.WriteString(line)
	_ = bb.WriteByte('\n')
}

func writeField(bb *pool.ByteBuffer, key string, v float64, comma bool) {
	_, _ = bb.WriteString("\t\t")
	writeKey(bb, key)
	_, _ = bb.WriteString(": ")
	bb.B = appendNumber(bb.B, v)
	if comma {
		_ = bb.WriteByte(',')
	}
	_ = bb.WriteByte('\n')
}

// writeKey writes s as a quoted JSON string. Marshal cannot fail for a
// string value.
func writeKey(bb *pool.ByteBuffer, s string) {
	quoted, _ := json.Marshal(s)
	_, _ = bb.Write(quoted)
}

// appendNumber appends v in the shortest decimal form that round-trips,
// never using exponent notation. Non-finite values become null.
func appendNumber(dst []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(dst, "null"...)
	}

	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}
