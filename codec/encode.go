package codec

import "github.com/katalvlaran/ordhex/alphabet"

// Encode — sections to sortable text
//
// Description:
//
//	Encode writes every section in order into one string over [0-9a-z],
//	with no separator characters. Section boundaries are carried by the
//	alphabet split: continuation symbols for all nybbles but a section's
//	last, a terminal symbol for the last.
//
// Algorithm Outline (per section):
//  1. Expand bytes into nybbles, high half before low half.
//  2. An empty section expands to the single nybble 0.
//  3. Drop leading zero nybbles, always keeping the final nybble.
//  4. Emit Continuations[v] for every remaining nybble but the last.
//  5. Emit Terminals[v] for the last nybble.
//
// Guarantees:
//   - total: every section list has an encoding; the empty list encodes to "".
//   - per-section output length ∈ [1, 2·len(section)] (exactly 1 for empty
//     and all-zero sections).
//   - output never opens a section with 'g' (continuation-zero), since step 3
//     removes every leading zero nybble.
//   - for equal section counts, bytewise string comparison of encodings
//     reproduces section-by-section magnitude comparison of the inputs.
//
// Complexity:
//
//	Time = O(Σ len(section)), Memory = O(output length), single allocation.
func Encode(sections [][]byte) string {
	if len(sections) == 0 {
		return ""
	}

	return string(AppendEncode(make([]byte, 0, EncodedLen(sections)), sections))
}

// AppendEncode appends the encoding of sections to dst and returns the
// extended buffer, for callers assembling larger keys without re-allocating.
func AppendEncode(dst []byte, sections [][]byte) []byte {
	for _, s := range sections {
		dst = AppendSection(dst, s)
	}

	return dst
}

// EncodeSection encodes a single section. Equivalent to
// Encode([][]byte{section}) without the slice wrapping.
func EncodeSection(section []byte) string {
	return string(AppendSection(make([]byte, 0, EncodedSectionLen(section)), section))
}

// AppendSection appends the encoding of one section to dst and returns the
// extended buffer. This is the core of every encode path.
func AppendSection(dst []byte, section []byte) []byte {
	n := len(section) * 2
	if n == 0 {
		// Empty section: a single zero nybble.
		return append(dst, alphabet.TerminalSymbol(0))
	}

	start := leadingZeroNybbles(section)
	for i := start; i < n-1; i++ {
		dst = append(dst, alphabet.ContinuationSymbol(nybbleAt(section, i)))
	}

	return append(dst, alphabet.TerminalSymbol(nybbleAt(section, n-1)))
}

// EncodedSectionLen returns the exact encoded length of one section:
// 2·len(section) minus truncated leading zero nybbles, and never below 1.
func EncodedSectionLen(section []byte) int {
	if len(section) == 0 {
		return 1
	}

	return len(section)*2 - leadingZeroNybbles(section)
}

// EncodedLen returns the exact length of Encode(sections), letting callers
// size buffers for AppendEncode up front.
func EncodedLen(sections [][]byte) int {
	total := 0
	for _, s := range sections {
		total += EncodedSectionLen(s)
	}

	return total
}

// leadingZeroNybbles counts the zero nybbles to drop from the front of a
// non-empty section, keeping at least the final nybble.
func leadingZeroNybbles(section []byte) int {
	n := len(section) * 2
	start := 0
	for start < n-1 && nybbleAt(section, start) == 0 {
		start++
	}

	return start
}

// nybbleAt returns the i-th nybble of b, high half of each byte first.
func nybbleAt(b []byte, i int) uint8 {
	if i%2 == 0 {
		return b[i/2] >> 4
	}

	return b[i/2] & 0x0F
}
