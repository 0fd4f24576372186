// Package blob serializes texts into a compact, self-describing binary form.
//
// A blob is a 24-byte header (see package section) followed by the unit
// payload. Narrow texts store one byte per unit and wide texts two bytes per
// unit in the byte order chosen at encode time. The payload is compressed with
// one of the codecs from package compress and guarded by an xxHash64
// checksum of its uncompressed form.
//
// # Encoding
//
//	data, err := blob.Marshal(t,
//		blob.WithCompression(format.CompressionS2),
//		blob.WithBigEndian(),
//	)
//
// # Decoding
//
//	t, err := blob.Unmarshal(data, blob.WithConfig(cfg))
//
// Unmarshal validates the header, payload size and checksum, then rebuilds the
// text in the minimal encoding for the target configuration. A wide blob whose
// units all fit in one byte decodes to a narrow text under compact mode.
//
// Marshal and Unmarshal are safe for concurrent use.
package blob
