// Package section defines the binary header of a serialized text blob.
//
// A blob is a fixed 24-byte header followed by the (optionally compressed)
// unit payload:
//
//	offset  size  field
//	0       2     Flag.Options: magic (bits 4-15), coder (bit 0), endianness (bit 1)
//	2       1     Flag.Compression
//	3       1     reserved, must be zero
//	4       4     Length: text length in code units
//	8       4     RawSize: uncompressed payload size in bytes
//	12      4     PayloadSize: stored payload size in bytes
//	16      8     Checksum: xxhash64 of the uncompressed payload
//
// The Options word is always little-endian so the endianness bit can be read
// before the remaining fields are decoded with the recorded byte order.
package section
