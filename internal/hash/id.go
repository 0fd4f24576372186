// Package hash provides the 64-bit xxHash digests used for text fingerprints
// and blob payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint computes the xxHash64 of a unit buffer tagged with its coder, so
// identical bytes stored with different coders never share a fingerprint.
func Fingerprint(coder uint8, units []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{coder})
	_, _ = d.Write(units)

	return d.Sum64()
}
