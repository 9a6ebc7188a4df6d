// Package ordhex turns ordered collections of byte arrays ("sections")
// into a single compact, sortable, human-transcribable text string — and back.
//
// 🚀 What is ordhex?
//
//	A small, thread-safe encoding library built around one idea:
//		• Encode any number of byte sections into one [0-9a-z] string
//		• No separator characters — section boundaries ride on the alphabet itself
//		• Equal-count encodings sort exactly like the underlying byte arrays
//		• Decoding forgives the classic transcription slips: case flips,
//		  o↔0 and i/l↔1 look-alike confusion
//
// ✨ Why choose ordhex?
//
//   - URL-safe output — digits and lowercase letters only, nothing to escape
//   - Order-preserving — string comparison == byte-array comparison
//   - Human-friendly — case-insensitive, look-alike-tolerant decoding
//   - Pure Go — no cgo, no hidden deps, safe for concurrent use
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/ — the two 16-symbol alphabets (terminal & continuation),
//	            symbol classification, loose and strict decoding
//	codec/    — section and sequence encode/decode, canonical-form
//	            validation and canonicalization
//
// Quick taste:
//
//	text := codec.Encode([][]byte{{0x01}, {0x02}, {0x03}}) // "123"
//	sections, err := codec.Decode("123", 3, nil)           // [[0x01] [0x02] [0x03]]
//
// Dive into README.md and the examples/ directory for full scenarios,
// including composite database keys that stay sorted as plain strings.
//
//	go get github.com/katalvlaran/ordhex
package ordhex
