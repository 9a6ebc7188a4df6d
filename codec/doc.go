// Package codec encodes ordered byte sections into one sortable [0-9a-z]
// string and decodes such strings back, given the expected section count.
//
// 🚀 How does the encoding work?
//
//	Each section is expanded into nybbles (high half first), leading zero
//	nybbles are dropped (always keeping the last one), and each nybble is
//	written with one symbol:
//	  • every nybble but the last uses the continuation alphabet "g".."z"
//	  • the final nybble uses the terminal alphabet "0".."f"
//
//	Sections are concatenated with no separator — the terminal/continuation
//	split marks the boundaries.  The decoder therefore needs the section
//	count out-of-band: callers agree on it through their own schema.
//
// ✨ Key features:
//   - Encode is total — any byte sections, including empty ones, encode
//   - Equal-count encodings sort bytewise exactly like the sections do
//   - Loose decode forgives case flips and o↔0, i/l↔1 look-alike slips
//   - Strict mode (Options.Strict) accepts only canonical encoder output
//   - Canonicalize repairs a sloppy transcription into canonical form
//
// ⚙️ Usage:
//
//	text := codec.Encode([][]byte{{0xFF}, {0x10}})   // "zfh0"
//	secs, err := codec.Decode("ZFH0", 2, nil)        // loose: ok
//
//	opts := codec.DefaultOptions()
//	opts.Strict = true
//	err = codec.Validate("ZFH0", 2, &opts)           // ErrNonCanonicalEncoding
//
// Leading zero bytes of a section are unrecoverable by design: 0x00,0x07 and
// 0x07 share the encoding "7".  Decode returns the shortest byte form.
//
// Complexity: encode and decode run in O(total input length) time and space.
// All state is read-only alphabet tables, so every function is safe for
// unsynchronized concurrent use.
package codec
