// Package circuit implements the data model and parser for the wire circuit
// instruction language.
//
// A program is an unordered set of instructions, one per line, each assigning
// a computed 16-bit value to a named wire:
//
//	123 -> x
//	x AND y -> d
//	NOT x -> h
//
// A signal is either a decimal literal or a lowercase wire name. Wires may
// refer to other wires that are defined later, or never.
package circuit
