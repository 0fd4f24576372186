package compress

import "testing"

func BenchmarkCodec(b *testing.B) {
	payload := widePayload("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 256)

	for _, ct := range allTypes() {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}
		packed, err := codec.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String()+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})

		b.Run(ct.String()+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = DecompressSized(codec, packed, len(payload))
			}
		})
	}
}

func BenchmarkLZ4_DecompressUnsized(b *testing.B) {
	codec := NewLZ4Compressor()
	payload := widePayload("unsized lz4 decode ", 512)
	packed, _ := codec.Compress(payload)

	b.SetBytes(int64(len(payload)))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Decompress(packed)
	}
}

