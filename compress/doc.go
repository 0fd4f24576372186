// Package compress provides the codecs applied to serialized text payloads.
//
// A blob payload is the raw unit buffer of a text: one byte per unit for
// narrow texts, two bytes per unit for wide ones. Wide payloads of mostly
// Latin text carry a zero byte in every other position and compress well.
//
// Supported algorithms:
//   - None: payload stored as-is
//   - Zstd: best ratio, moderate speed (klauspost/compress, or valyala/gozstd
//     when built with the gozstd and cgo tags)
//   - S2: balanced speed and ratio (klauspost/compress)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// All codecs are safe for concurrent use. Encoders and decoders are pooled.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
