// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package evaluator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/ucircuit/circuit"
	"github.com/ezrec/ucircuit/internal"
)

// Evaluator resolves the wires of a circuit by repeated passes over its
// instructions until a pass makes no progress.
type Evaluator struct {
	Verbose bool             // If set, enables verbose logging.
	Program *circuit.Program // Instruction set, in insertion order.

	Passes int // Passes run since the last reset.

	predefine map[string]uint16 // Wires forced before evaluation.
	values    map[string]uint16 // Resolved wire values.
	resolved  []string          // Wires in the order they were resolved.
}

// NewEvaluator creates a new evaluator with an empty instruction set.
func NewEvaluator() (ev *Evaluator) {
	ev = &Evaluator{
		Program: &circuit.Program{},
		values:  map[string]uint16{},
	}

	return
}

// Predefine forces a wire to a value. Instructions driving that wire are
// skipped. Takes effect at the next Reset.
func (ev *Evaluator) Predefine(wire string, value uint16) {
	if ev.predefine == nil {
		ev.predefine = map[string]uint16{wire: value}
	} else {
		ev.predefine[wire] = value
	}
}

// Reset clears all resolved wires and applies the predefines.
// The instruction set is kept.
func (ev *Evaluator) Reset() (err error) {
	clear(ev.values)
	if ev.values == nil {
		ev.values = map[string]uint16{}
	}
	ev.resolved = ev.resolved[:0]
	ev.Passes = 0

	for _, wire := range slices.Sorted(maps.Keys(ev.predefine)) {
		err = ev.SetValue(wire, ev.predefine[wire])
		if err != nil {
			return
		}
	}

	return
}

// Add appends an instruction to the instruction set.
func (ev *Evaluator) Add(instr circuit.Instruction) {
	ev.Program.Instructions = append(ev.Program.Instructions, instr)
}

// Load appends all of the instructions of a program.
func (ev *Evaluator) Load(prog *circuit.Program) {
	for _, instr := range prog.Instructions {
		ev.Add(instr)
	}
}

// HasValue returns true for a literal, or for a wire that has been resolved.
func (ev *Evaluator) HasValue(sig circuit.Signal) bool {
	if sig.IsLiteral() {
		return true
	}

	_, ok := ev.values[sig.Wire]
	return ok
}

// Value returns the value of a signal.
func (ev *Evaluator) Value(sig circuit.Signal) (value uint16, err error) {
	if sig.IsLiteral() {
		value = sig.Value
		return
	}

	value, ok := ev.values[sig.Wire]
	if !ok {
		err = ErrWireUnset(sig.Wire)
	}

	return
}

// SetValue resolves a wire. A wire can only be set once.
func (ev *Evaluator) SetValue(wire string, value uint16) (err error) {
	if !circuit.ValidWire(wire) {
		err = circuit.ErrParseSignal(wire)
		return
	}

	prev, ok := ev.values[wire]
	if ok {
		err = &ErrWireDuplicate{Wire: wire, Previous: prev, Value: value}
		return
	}

	if ev.values == nil {
		ev.values = map[string]uint16{}
	}
	ev.values[wire] = value
	ev.resolved = append(ev.resolved, wire)

	return
}

// execute attempts to resolve the destination of a single instruction.
func (ev *Evaluator) execute(instr *circuit.Instruction) (done bool, err error) {
	dest := circuit.WireRef(instr.Dest)
	if ev.HasValue(dest) {
		if ev.Verbose {
			log.Printf("%v # already has value: %v", instr.Debug(), ev.Report(instr.Dest))
		}
		return
	}

	srcs := instr.Sources()
	args := make([]uint16, len(srcs))
	for n, src := range srcs {
		if !ev.HasValue(src) {
			if ev.Verbose {
				log.Printf("%v # missing value for wire: %v", instr.Debug(), src)
			}
			return
		}
		args[n], err = ev.Value(src)
		if err != nil {
			return
		}
	}

	value := instr.Action.Compute(args...)
	err = ev.SetValue(instr.Dest, value)
	if err != nil {
		return
	}

	if ev.Verbose {
		log.Printf("%v # setting wire to: %v = %v", instr.Debug(), instr.Dest, value)
	}

	done = true
	return
}

// Pass runs every instruction once, in insertion order. Returns true if at
// least one wire was resolved.
func (ev *Evaluator) Pass() (progress bool, err error) {
	ev.Passes++

	for n := range ev.Program.Instructions {
		instr := &ev.Program.Instructions[n]

		var done bool
		done, err = ev.execute(instr)
		if err != nil {
			err = &ErrRuntime{LineNo: instr.LineNo, Err: err}
			return
		}
		progress = progress || done
	}

	return
}

// Run runs passes until one makes no progress, and returns the number of
// passes run, including the final one. Wires on a cycle, or depending on a
// wire that is never driven, are left unresolved.
func (ev *Evaluator) Run() (passes int, err error) {
	for {
		var progress bool
		progress, err = ev.Pass()
		passes++
		if err != nil || !progress {
			return
		}
	}
}

// Values returns an iterator over the resolved wires, sorted by name.
func (ev *Evaluator) Values() iter.Seq2[string, uint16] {
	return func(yield func(wire string, value uint16) bool) {
		for _, wire := range slices.Sorted(maps.Keys(ev.values)) {
			if !yield(wire, ev.values[wire]) {
				return
			}
		}
	}
}

// Resolved returns the resolved wires in the order they were resolved.
func (ev *Evaluator) Resolved() []string {
	return slices.Clone(ev.resolved)
}

// Unresolved returns an iterator over the instruction destinations that have
// no value.
func (ev *Evaluator) Unresolved() iter.Seq[string] {
	return internal.IterSeqFilter(internal.IterSeqUnique(ev.Program.Destinations()), func(wire string) bool {
		return !ev.HasValue(circuit.WireRef(wire))
	})
}

// Report returns 'wire = value', or 'wire = UNSET' if unresolved.
func (ev *Evaluator) Report(wire string) string {
	value, err := ev.Value(circuit.WireRef(wire))
	if err != nil {
		return fmt.Sprintf("%v = UNSET", wire)
	}

	return fmt.Sprintf("%v = %d", wire, value)
}
