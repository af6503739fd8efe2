package tabstat

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabstat/compress"
	"github.com/arloliu/tabstat/errs"
	"github.com/arloliu/tabstat/format"
	"github.com/arloliu/tabstat/table"
)

const sampleTable = "A\tB\t\n1\t2\t\n3\t4\t\n5\t6"

func writeInput(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.tsv")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestSummarize(t *testing.T) {
	res, err := Summarize(sampleTable)
	require.NoError(t, err)

	require.Equal(t, 6, res.Points)
	require.Equal(t, 2, res.Columns)
	require.Equal(t, 3, res.Rows)
	require.False(t, res.PartialRow)
	require.Len(t, res.Entries, 2)

	require.Equal(t, "A", res.Entries[0].Name)
	require.Equal(t, 1.0, res.Entries[0].Data.Min)
	require.Equal(t, 5.0, res.Entries[0].Data.Max)
	require.Equal(t, 3.0, res.Entries[0].Data.Avg)

	require.Equal(t, "B", res.Entries[1].Name)
	require.Equal(t, 2.0, res.Entries[1].Data.Min)
	require.Equal(t, 6.0, res.Entries[1].Data.Max)
	require.Equal(t, 4.0, res.Entries[1].Data.Avg)
}

func TestSummarize_Errors(t *testing.T) {
	t.Run("no line break", func(t *testing.T) {
		_, err := Summarize("A\tB\tC")
		require.ErrorIs(t, err, errs.ErrNoDataBoundary)
	})

	t.Run("single column without trailing tab", func(t *testing.T) {
		_, err := Summarize("A\n1\n2\n3")
		require.ErrorIs(t, err, errs.ErrNoDataBoundary)
	})

	t.Run("no numeric columns", func(t *testing.T) {
		res, err := Summarize("name\tcity\t\nann\tparis")
		require.ErrorIs(t, err, errs.ErrNoNumericData)
		require.Equal(t, 2, res.Columns)
		require.Equal(t, 2, res.Points)
		require.Equal(t, 1, res.Rows)
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := Summarize(sampleTable, table.WithRowPolicy(table.RowPolicy(0)))
		require.Error(t, err)
	})
}

func TestSummarize_PartialRowCounts(t *testing.T) {
	res, err := Summarize("A\tB\t\n1\t2\t\n3\t4\t\n5")
	require.NoError(t, err)
	require.Equal(t, 5, res.Points)
	require.Equal(t, 2, res.Rows)
	require.True(t, res.PartialRow)
	require.Equal(t, []float64{1, 3, 5}, res.Entries[0].Data.Values)

	res, err = Summarize("A\tB\t\n1\t2\t\n3\t4\t\n5", table.WithRowPolicy(table.TruncateIncompleteRow))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, res.Entries[0].Data.Values)
}

func TestReadInput(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		text, err := ReadInput(writeInput(t, []byte(sampleTable)))
		require.NoError(t, err)
		require.Equal(t, sampleTable, text)
	})

	for _, comp := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(comp.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(comp)
			require.NoError(t, err)
			framed, err := codec.Compress([]byte(sampleTable))
			require.NoError(t, err)

			text, err := ReadInput(writeInput(t, framed))
			require.NoError(t, err)
			require.Equal(t, sampleTable, text)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(t.TempDir(), "nope.tsv"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		_, err := ReadInput(writeInput(t, []byte{'A', '\t', 0xff, 0xfe, '\n'}))
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	})

	t.Run("corrupted frame", func(t *testing.T) {
		_, err := ReadInput(writeInput(t, []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00, 0x01}))
		require.Error(t, err)
		require.Contains(t, err.Error(), "Zstd")
	})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "formatted.json")
	var logs bytes.Buffer

	err := Run(Config{Input: writeInput(t, []byte(sampleTable)), Output: out}, zerolog.New(&logs))
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]map[string]float64
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, map[string]float64{"minimum": 1, "maximum": 5, "average": 3}, doc["A"])
	require.Equal(t, map[string]float64{"minimum": 2, "maximum": 6, "average": 4}, doc["B"])

	require.Contains(t, logs.String(), "Data Points: 6 | Columns: 2 | Rows: 3")
	require.Contains(t, logs.String(), "Outputted to")
}

func TestRun_CompressedOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "formatted.json.zst")

	err := Run(Config{
		Input:       writeInput(t, []byte(sampleTable)),
		Output:      out,
		Compression: format.CompressionZstd,
	}, zerolog.Nop())
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, format.DetectCompression(data))
}

func TestRun_CompressedDefaultDestination(t *testing.T) {
	input := writeInput(t, []byte(sampleTable))
	t.Chdir(t.TempDir())

	err := Run(Config{Input: input, Compression: format.CompressionLZ4}, zerolog.Nop())
	require.NoError(t, err)

	data, err := os.ReadFile("formatted.json.lz4")
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, format.DetectCompression(data))

	_, statErr := os.Stat("formatted.json")
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_PartialRowWarn(t *testing.T) {
	tests := []struct {
		name     string
		truncate bool
	}{
		{name: "included", truncate: false},
		{name: "ignored", truncate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "formatted.json")
			var logs bytes.Buffer

			cfg := Config{Input: writeInput(t, []byte("A\tB\t\n1\t2\t\n3\t4\t\n5")), Output: out, Truncate: tt.truncate}
			require.NoError(t, Run(cfg, zerolog.New(&logs)))

			var warning map[string]any
			for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
				var event map[string]any
				require.NoError(t, json.Unmarshal(line, &event))
				if event["level"] == "warn" {
					warning = event
				}
			}
			require.NotNil(t, warning)
			require.Equal(t, "trailing partial row", warning["message"])
			require.Equal(t, 1.0, warning["cells"])
			require.Equal(t, tt.truncate, warning["ignored"])
		})
	}

	var logs bytes.Buffer
	out := filepath.Join(t.TempDir(), "formatted.json")
	require.NoError(t, Run(Config{Input: writeInput(t, []byte(sampleTable)), Output: out}, zerolog.New(&logs)))
	require.NotContains(t, logs.String(), "partial row")
}

func TestRun_NoOutputOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cfg   Config
		err   error
	}{
		{name: "layout error", input: "A\tB\tC", err: errs.ErrNoDataBoundary},
		{name: "content error", input: "x\ty\t\na\tb", err: errs.ErrNoNumericData},
		{name: "strict parse error", input: "A\t\n10\t\nx\t\n20", cfg: Config{Strict: true}, err: errs.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "formatted.json")
			cfg := tt.cfg
			cfg.Input = writeInput(t, []byte(tt.input))
			cfg.Output = out

			err := Run(cfg, zerolog.Nop())
			require.ErrorIs(t, err, tt.err)

			_, statErr := os.Stat(out)
			require.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "formatted.json")

	err := Run(Config{Input: filepath.Join(t.TempDir(), "missing.tsv"), Output: out}, zerolog.Nop())
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "error reading file")

	_, statErr := os.Stat(out)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_DuplicateColumnsWarn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "formatted.json")
	var logs bytes.Buffer

	err := Run(Config{Input: writeInput(t, []byte("v\tv\t\n1\t2\t\n3\t4")), Output: out}, zerolog.New(&logs))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "duplicate column name")
}
