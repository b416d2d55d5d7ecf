package circuit

import (
	"iter"
	"strings"

	"github.com/ezrec/ucircuit/internal"
)

// Program is the ordered instruction set of a circuit.
type Program struct {
	Instructions []Instruction
}

// String returns the program text, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, instr := range prog.Instructions {
		sb.WriteString(instr.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Destinations returns an iterator over instruction destinations, in order.
func (prog *Program) Destinations() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, instr := range prog.Instructions {
			if !yield(instr.Dest) {
				return
			}
		}
	}
}

// sourceWires returns an iterator over wires read by instructions, in order.
func (prog *Program) sourceWires() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, instr := range prog.Instructions {
			for _, src := range instr.Sources() {
				if src.IsLiteral() {
					continue
				}
				if !yield(src.Wire) {
					return
				}
			}
		}
	}
}

// Wires returns every wire named by the program, destinations first.
func (prog *Program) Wires() iter.Seq[string] {
	return internal.IterSeqUnique(internal.IterSeqConcat(prog.Destinations(), prog.sourceWires()))
}
