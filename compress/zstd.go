package compress

// ZstdCompressor compresses payloads with Zstandard. The implementation is
// pure Go unless built with the gozstd and cgo tags, which switch to libzstd.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
