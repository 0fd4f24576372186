package text

import (
	"strings"
	"testing"
)

var (
	benchNarrow = FromString(strings.Repeat("the quick brown fox jumps over the lazy dog ", 32))
	benchWide   = FromString(strings.Repeat("the quick brown fox jumps over the lazy dog € ", 32))
	benchNeedle = FromString("lazy dog")
)

func BenchmarkFromString(b *testing.B) {
	s := benchWide.String()
	b.ReportAllocs()
	for b.Loop() {
		_ = FromString(s)
	}
}

func BenchmarkIndexOf(b *testing.B) {
	b.Run("Narrow", func(b *testing.B) {
		for b.Loop() {
			_ = benchNarrow.LastIndexOf(benchNeedle)
		}
	})
	b.Run("Wide", func(b *testing.B) {
		for b.Loop() {
			_ = benchWide.LastIndexOf(benchNeedle)
		}
	})
}

func BenchmarkReplace(b *testing.B) {
	target, replacement := FromString("fox"), FromString("cat")
	b.ReportAllocs()
	for b.Loop() {
		_, _ = benchNarrow.Replace(target, replacement)
	}
}

func BenchmarkToUpper(b *testing.B) {
	b.Run("Narrow", func(b *testing.B) {
		for b.Loop() {
			_, _ = benchNarrow.ToUpper()
		}
	})
	b.Run("Wide", func(b *testing.B) {
		for b.Loop() {
			_, _ = benchWide.ToUpper()
		}
	})
}

func BenchmarkHash(b *testing.B) {
	for b.Loop() {
		_ = polyHash(benchWide.value, benchWide.coder)
	}
}

func BenchmarkBuilderAppend(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		sb := NewBuilder()
		for i := range 64 {
			_ = sb.AppendString("item ")
			_ = sb.AppendInt(int64(i))
		}
		_ = sb.ToText()
	}
}
