package compress

// ZstdCompressor reads and writes Zstandard frames (the .zst file format).
//
// The pure Go implementation from klauspost/compress is used by default.
// Building with the gozstd tag on a cgo toolchain switches to the libzstd
// bindings instead; both produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	framed, err := codec.Compress(document)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
