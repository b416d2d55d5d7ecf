package circuit

import (
	"regexp"
	"strconv"
)

var (
	reWire    = regexp.MustCompile(`^[a-z]+$`)
	reLiteral = regexp.MustCompile(`^[0-9]+$`)
)

// Signal is either a literal 16-bit value, or a reference to a named wire.
// The zero Signal is the literal 0.
type Signal struct {
	Wire  string // Wire name. Unused for a literal.
	Value uint16 // Literal value. Unused for a wire reference.

	wire bool
}

// Literal returns a literal signal.
func Literal(value uint16) Signal {
	return Signal{Value: value}
}

// WireRef returns a signal referencing a wire by name.
func WireRef(name string) Signal {
	return Signal{Wire: name, wire: true}
}

// ValidWire returns true if name is a well formed wire name.
func ValidWire(name string) bool {
	return reWire.MatchString(name)
}

// ParseSignal parses a decimal literal or a wire name.
func ParseSignal(word string) (sig Signal, err error) {
	switch {
	case reLiteral.MatchString(word):
		var v64 uint64
		v64, err = strconv.ParseUint(word, 10, 16)
		if err != nil {
			err = ErrParseLiteral(word)
			return
		}
		sig = Literal(uint16(v64))
	case reWire.MatchString(word):
		sig = WireRef(word)
	default:
		err = ErrParseSignal(word)
	}

	return
}

func (sig Signal) IsLiteral() bool {
	return !sig.wire
}

func (sig Signal) IsWire() bool {
	return sig.wire
}

// String returns the signal as it appears in program text.
func (sig Signal) String() string {
	if sig.IsWire() {
		return sig.Wire
	}

	return strconv.FormatUint(uint64(sig.Value), 10)
}
