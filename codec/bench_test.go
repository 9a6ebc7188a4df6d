package codec_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ordhex/codec"
)

// benchSections builds count deterministic pseudo-random sections of
// sectionLen bytes each, with non-zero leading bytes so no nybbles truncate.
func benchSections(count, sectionLen int) [][]byte {
	rng := rand.New(rand.NewSource(int64(count*1000 + sectionLen)))
	sections := make([][]byte, count)
	for i := range sections {
		sections[i] = make([]byte, sectionLen)
		rng.Read(sections[i])
		sections[i][0] |= 0x10
	}

	return sections
}

// benchmarkEncode measures Encode over count sections of sectionLen bytes.
func benchmarkEncode(b *testing.B, count, sectionLen int) {
	sections := benchSections(count, sectionLen)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = codec.Encode(sections)
	}
}

// benchmarkDecode measures Decode over the encoding of count sections of
// sectionLen bytes, in loose or strict mode.
func benchmarkDecode(b *testing.B, count, sectionLen int, strict bool) {
	sections := benchSections(count, sectionLen)
	text := codec.Encode(sections)
	opts := codec.DefaultOptions()
	opts.Strict = strict

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(text, count, &opts); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkEncode_SmallKey benchmarks a typical composite key: 3 sections × 8 bytes.
func BenchmarkEncode_SmallKey(b *testing.B) {
	benchmarkEncode(b, 3, 8)
}

// BenchmarkEncode_LargePayload benchmarks a single 4 KiB section.
func BenchmarkEncode_LargePayload(b *testing.B) {
	benchmarkEncode(b, 1, 4096)
}

// BenchmarkDecode_SmallKey benchmarks loose decoding of 3 sections × 8 bytes.
func BenchmarkDecode_SmallKey(b *testing.B) {
	benchmarkDecode(b, 3, 8, false)
}

// BenchmarkDecode_SmallKeyStrict benchmarks strict decoding of the same key shape.
func BenchmarkDecode_SmallKeyStrict(b *testing.B) {
	benchmarkDecode(b, 3, 8, true)
}

// BenchmarkDecode_LargePayload benchmarks loose decoding of a single 4 KiB section.
func BenchmarkDecode_LargePayload(b *testing.B) {
	benchmarkDecode(b, 1, 4096, false)
}

// BenchmarkAppendEncode_Reuse benchmarks the allocation-free append path with
// a reused buffer.
func BenchmarkAppendEncode_Reuse(b *testing.B) {
	sections := benchSections(3, 8)
	buf := make([]byte, 0, codec.EncodedLen(sections))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = codec.AppendEncode(buf[:0], sections)
	}
	_ = buf
}
