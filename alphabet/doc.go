// Package alphabet defines the two 16-symbol alphabets that carry ordhex
// encodings, and classifies characters back into (class, nybble) pairs.
//
// 🚀 What is the alphabet?
//
//	Every nybble of an encoded section is written with one of two alphabets:
//	  • Terminal     "0123456789abcdef" — closes the current section
//	  • Continuation "ghjkmnpqrstvwxyz" — more nybbles follow in this section
//
//	The two sets are disjoint, so a decoder can classify any symbol without
//	lookahead — the alphabet itself is the section delimiter.  Both sets are
//	ordered by nybble value, and every continuation symbol sorts above every
//	terminal symbol, which is what makes encodings compare like the bytes
//	they describe.
//
// ✨ Key features:
//   - Decode: tolerant classification — case-insensitive for every symbol,
//     plus the look-alike aliases o/O→0 and i/I/l/L→1 on the terminal set
//   - DecodeStrict: canonical classification — accepts exactly the lowercase
//     symbols the encoder emits, nothing else
//   - Symbol models the tagged union (class + nybble value) so "does this
//     symbol end a section" lives in one place
//
// ⚙️ Usage:
//
//	sym, err := alphabet.Decode('Z')      // Symbol{Continuation, 15}, nil
//	sym, err = alphabet.Decode('O')       // Symbol{Terminal, 0}, nil (alias)
//	sym, err = alphabet.DecodeStrict('O') // ErrNonCanonicalSymbol
//
// All tables are read-only package constants initialized once; every function
// here is safe for unsynchronized concurrent use.
package alphabet
