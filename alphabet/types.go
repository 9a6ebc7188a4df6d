// Package alphabet: symbol classification types and sentinel errors.
package alphabet

import "errors"

// Sentinel errors for symbol classification.
var (
	// ErrInvalidSymbol is returned when a character belongs to no decode set:
	// not a canonical symbol, not a case variant, not a look-alike alias.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

	// ErrNonCanonicalSymbol is returned by DecodeStrict for characters that
	// are decodable, but only through case folding or look-alike aliasing —
	// i.e. characters the encoder itself never emits.
	ErrNonCanonicalSymbol = errors.New("alphabet: non-canonical symbol")
)

// Class tags a decoded symbol as section-terminating or section-continuing.
//
//   - Terminal     — the symbol carries the final nybble of its section.
//   - Continuation — the symbol carries a nybble with more to follow.
type Class uint8

const (
	// Terminal marks a symbol from "0123456789abcdef": it closes the section.
	Terminal Class = iota

	// Continuation marks a symbol from "ghjkmnpqrstvwxyz": the section stays open.
	Continuation
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case Terminal:
		return "Terminal"
	case Continuation:
		return "Continuation"
	default:
		return "Unknown"
	}
}

// Symbol is one decoded character: its class plus its nybble value in [0,15].
// It is the tagged-union view of a character — callers branch on Class once
// instead of comparing raw character ranges.
type Symbol struct {
	Class Class
	Value uint8
}

// Canonical returns the canonical lowercase character for the symbol,
// i.e. the byte the encoder would emit for this (class, value) pair.
func (s Symbol) Canonical() byte {
	if s.Class == Continuation {
		return Continuations[s.Value]
	}

	return Terminals[s.Value]
}
