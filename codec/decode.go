package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ordhex/alphabet"
)

// Decode — sortable text back to sections
//
// Description:
//
//	Decode walks the text left to right and closes one section per terminal
//	symbol, exactly sections times. The section count is out-of-band: the
//	text carries no count or length metadata, so callers must supply the
//	number their schema prescribes.
//
// Algorithm Outline (per section):
//  1. Classify the symbol under the cursor via the alphabet.
//  2. Continuation: accumulate its nybble, advance, repeat.
//  3. Terminal: accumulate its nybble, advance, close the section.
//  4. Odd nybble count ⇒ prepend one zero nybble, then pack pairs
//     high-then-low into bytes.
//
// Errors:
//   - ErrInvalidSymbol         — character outside every decode set.
//   - ErrTruncatedInput        — text ends while a section is still open.
//   - ErrSectionCountMismatch  — trailing characters after the last section.
//   - ErrNonCanonicalEncoding  — strict mode: folded/alias character, or a
//     section opening with continuation-zero ('g').
//   - ErrBadSectionCount       — sections < 0.
//
// Decode is all-or-nothing: on any failure no sections are returned.
// Leading zero bytes truncated by Encode are not restored; decoded sections
// carry the shortest byte form of each value.
//
// Complexity:
//
//	Time = O(len(text)), Memory = O(len(text)).
func Decode(text string, sections int, opts *Options) ([][]byte, error) {
	if sections < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSectionCount, sections)
	}

	out := make([][]byte, 0, sections)
	cursor := 0
	for k := 0; k < sections; k++ {
		section, next, err := DecodeSection(text, cursor, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, section)
		cursor = next
	}

	if cursor != len(text) {
		return nil, fmt.Errorf("codec: %d trailing symbol(s) after section %d: %w",
			len(text)-cursor, sections, ErrSectionCountMismatch)
	}

	return out, nil
}

// DecodeSection decodes the single section starting at cursor and returns it
// together with the cursor position just past its terminal symbol. It is the
// building block for callers composing their own sequence walks (e.g. a
// consume-until-end loop when the section count is genuinely open-ended).
func DecodeSection(text string, cursor int, opts *Options) ([]byte, int, error) {
	var nybbles []uint8
	next, err := walkSection(text, cursor, opts, func(v uint8) {
		nybbles = append(nybbles, v)
	})
	if err != nil {
		return nil, cursor, err
	}

	return packNybbles(nybbles), next, nil
}

// Validate checks that text decodes as exactly the given number of sections
// without materializing them. With Options.Strict it answers the question
// "could the encoder have produced this text": canonical symbols only and no
// section opening with continuation-zero.
func Validate(text string, sections int, opts *Options) error {
	if sections < 0 {
		return fmt.Errorf("%w: %d", ErrBadSectionCount, sections)
	}

	cursor := 0
	for k := 0; k < sections; k++ {
		next, err := walkSection(text, cursor, opts, nil)
		if err != nil {
			return err
		}
		cursor = next
	}

	if cursor != len(text) {
		return fmt.Errorf("codec: %d trailing symbol(s) after section %d: %w",
			len(text)-cursor, sections, ErrSectionCountMismatch)
	}

	return nil
}

// Canonicalize maps any loosely decodable text to the canonical form the
// encoder would emit: lowercase symbols, no aliases, no redundant zero
// padding in front of a section. It is the identity on canonical input.
func Canonicalize(text string, sections int) (string, error) {
	decoded, err := Decode(text, sections, nil)
	if err != nil {
		return "", err
	}

	return Encode(decoded), nil
}

// walkSection scans one section from cursor, invoking visit (when non-nil)
// with each nybble value, and returns the cursor just past the terminal
// symbol. Strict-mode canonical checks happen here so that every decode
// surface shares them.
func walkSection(text string, cursor int, opts *Options, visit func(v uint8)) (int, error) {
	strict := opts != nil && opts.Strict

	i := cursor
	for {
		if i >= len(text) {
			return cursor, fmt.Errorf("codec: section open at position %d: %w", i, ErrTruncatedInput)
		}

		sym, err := classify(text[i], strict)
		if err != nil {
			return cursor, fmt.Errorf("codec: symbol %q at position %d: %w", text[i], i, err)
		}
		if strict && i == cursor && sym.Class == alphabet.Continuation && sym.Value == 0 {
			// 'g' cannot open a section: the encoder truncates leading zeros.
			return cursor, fmt.Errorf("codec: section opens with %q at position %d: %w",
				text[i], i, ErrNonCanonicalEncoding)
		}

		if visit != nil {
			visit(sym.Value)
		}
		i++

		if sym.Class == alphabet.Terminal {
			return i, nil
		}
	}
}

// classify resolves one character in the requested mode, mapping the
// alphabet's strict rejection onto the codec's canonical-form error.
func classify(c byte, strict bool) (alphabet.Symbol, error) {
	if !strict {
		return alphabet.Decode(c)
	}

	sym, err := alphabet.DecodeStrict(c)
	if errors.Is(err, alphabet.ErrNonCanonicalSymbol) {
		return alphabet.Symbol{}, ErrNonCanonicalEncoding
	}

	return sym, err
}

// packNybbles packs an accumulated nybble run into bytes, high half first,
// with an implicit zero nybble in front when the run has odd length.
func packNybbles(nybbles []uint8) []byte {
	out := make([]byte, (len(nybbles)+1)/2)

	i := len(nybbles) - 1
	for o := len(out) - 1; o >= 0; o-- {
		b := nybbles[i]
		i--
		if i >= 0 {
			b |= nybbles[i] << 4
			i--
		}
		out[o] = b
	}

	return out
}
