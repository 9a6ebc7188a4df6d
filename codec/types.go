// Package codec: decode options and sentinel error definitions.
package codec

import (
	"errors"

	"github.com/katalvlaran/ordhex/alphabet"
)

// Sentinel errors for decoding. Encode is total and never fails.
// All decode failures are all-or-nothing: no partial sections are returned.
var (
	// ErrInvalidSymbol reports a character outside every decode set
	// (canonical symbols, case variants, look-alike aliases). Alias of
	// alphabet.ErrInvalidSymbol so errors.Is matches across both packages.
	ErrInvalidSymbol = alphabet.ErrInvalidSymbol

	// ErrTruncatedInput reports that the text ended while a section was
	// still open: its last symbol was a continuation symbol, or no symbols
	// were left for a required section.
	ErrTruncatedInput = errors.New("codec: truncated input")

	// ErrSectionCountMismatch reports unconsumed characters remaining after
	// the requested number of sections decoded successfully.
	ErrSectionCountMismatch = errors.New("codec: section count mismatch")

	// ErrNonCanonicalEncoding reports text that no encoder run could have
	// produced: an uppercase or alias character, or a section that opens
	// with the zero-valued continuation symbol 'g'. Strict mode only.
	ErrNonCanonicalEncoding = errors.New("codec: non-canonical encoding")

	// ErrBadSectionCount reports a negative requested section count.
	ErrBadSectionCount = errors.New("codec: negative section count")
)

// Options configures decoding.
//
// Fields:
//   - Strict — accept only canonical encoder output: lowercase canonical
//     symbols, no aliases, no section opening with continuation-zero ('g').
//     Violations fail with ErrNonCanonicalEncoding.
//
// The zero value is the loose (transcription-tolerant) mode; a nil *Options
// passed to Decode, DecodeSection or Validate means the same.
type Options struct {
	Strict bool
}

// DefaultOptions returns the loose decoding options:
//   - case-insensitive symbol matching
//   - look-alike aliases o/O→0 and i/I/l/L→1 accepted
//   - no canonical-form enforcement.
func DefaultOptions() Options {
	return Options{Strict: false}
}
