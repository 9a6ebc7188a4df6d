package alphabet

// Encode alphabets, value→symbol, both bijective on [0,15].
//
// Terminals and Continuations are disjoint and each is ordered by nybble
// value; 'z' > ... > 'g' > 'f' > ... > '0', so a continuation symbol always
// sorts above a terminal symbol. Both invariants are locked in by tests.
const (
	// Terminals holds the canonical terminal symbols: Terminals[v] closes a
	// section whose final nybble is v.
	Terminals = "0123456789abcdef"

	// Continuations holds the canonical continuation symbols:
	// Continuations[v] carries nybble v with more nybbles to follow.
	Continuations = "ghjkmnpqrstvwxyz"
)

// Packed decode-table entries: low four bits are the nybble value, contBit
// tags the continuation class, invalid marks a non-symbol.
const (
	invalid   = 0xFF
	contBit   = 0x10
	valueMask = 0x0F
)

// looseTab accepts canonical symbols, their uppercase variants, and the
// terminal-set look-alike aliases. strictTab accepts canonical symbols only.
var looseTab, strictTab = func() ([256]byte, [256]byte) {
	const upToLow = 'a' - 'A'

	var loose, strict [256]byte
	for i := range loose {
		loose[i] = invalid
		strict[i] = invalid
	}

	for v := 0; v < 16; v++ {
		t, c := Terminals[v], Continuations[v]

		strict[t] = byte(v)
		strict[c] = byte(v) | contBit

		loose[t] = byte(v)
		loose[c] = byte(v) | contBit
		loose[c-upToLow] = byte(v) | contBit
		if t >= 'a' {
			loose[t-upToLow] = byte(v)
		}
	}

	// Look-alike aliases, defined for the terminal set only.
	loose['o'], loose['O'] = 0, 0
	loose['i'], loose['I'] = 1, 1
	loose['l'], loose['L'] = 1, 1

	return loose, strict
}()

// TerminalSymbol returns the terminal symbol for nybble value v.
// v must be in [0,15]; anything else is a programmer error and panics.
func TerminalSymbol(v uint8) byte { return Terminals[v] }

// ContinuationSymbol returns the continuation symbol for nybble value v.
// v must be in [0,15]; anything else is a programmer error and panics.
func ContinuationSymbol(v uint8) byte { return Continuations[v] }

// Decode classifies c tolerantly: canonical symbols, uppercase variants of
// every symbol, and the aliases o/O→0, i/I/l/L→1 on the terminal set.
// Returns ErrInvalidSymbol for characters in no decode set.
func Decode(c byte) (Symbol, error) {
	p := looseTab[c]
	if p == invalid {
		return Symbol{}, ErrInvalidSymbol
	}

	return unpack(p), nil
}

// DecodeStrict classifies c against the canonical lowercase alphabets only.
// Characters that Decode would accept via folding or aliasing fail with
// ErrNonCanonicalSymbol; characters in no decode set fail with
// ErrInvalidSymbol.
func DecodeStrict(c byte) (Symbol, error) {
	if p := strictTab[c]; p != invalid {
		return unpack(p), nil
	}
	if looseTab[c] != invalid {
		return Symbol{}, ErrNonCanonicalSymbol
	}

	return Symbol{}, ErrInvalidSymbol
}

// IsCanonical reports whether c is a character the encoder can emit.
func IsCanonical(c byte) bool { return strictTab[c] != invalid }

// unpack expands a packed table entry into its Symbol form.
func unpack(p byte) Symbol {
	if p&contBit != 0 {
		return Symbol{Class: Continuation, Value: p & valueMask}
	}

	return Symbol{Class: Terminal, Value: p}
}
