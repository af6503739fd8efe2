package format

import (
	"bytes"
	"strings"
)

// CompressionType identifies the container a table file or a rendered
// document is wrapped in.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents plain text.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

// Frame magic numbers used by DetectCompression.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file suffix for the compression type,
// including the leading dot. CompressionNone has no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression maps a user supplied name ("none", "zstd", "s2", "lz4")
// to a CompressionType. Matching is case-insensitive; the empty string means none.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// DetectCompression inspects the leading bytes of data and reports which
// frame format it starts with. Anything unrecognized is CompressionNone.
func DetectCompression(data []byte) CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, s2Magic):
		return CompressionS2
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
