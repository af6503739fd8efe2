// Package compress provides the codecs tabstat uses to read compressed table
// files and to optionally compress the rendered JSON document.
//
// # Overview
//
// Every codec speaks the standard on-disk container of its algorithm, so the
// input can be produced by the usual command line tools:
//   - None: plain text, passed through untouched
//   - Zstd: Zstandard frames (zstd, .zst)
//   - S2: S2 streams (s2c, .s2)
//   - LZ4: LZ4 frames (lz4, .lz4)
//
// # Usage
//
// Pick a codec from the leading bytes of a file:
//
//	raw, _ := os.ReadFile(path)
//	codec, err := compress.GetCodec(format.DetectCompression(raw))
//	if err != nil {
//	    return err
//	}
//	text, err := codec.Decompress(raw)
//
// # Thread Safety
//
// All codec implementations are stateless values backed by pooled encoders
// and decoders, and can be shared across goroutines.
package compress
