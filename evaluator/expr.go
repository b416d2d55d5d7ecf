package evaluator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// unsetWire stands in for a program wire without a value. Any use of it in
// an expression fails with ErrWireUnset.
type unsetWire string

func (w unsetWire) String() string        { return string(w) }
func (w unsetWire) Type() string          { return "unset" }
func (w unsetWire) Freeze()               {}
func (w unsetWire) Truth() starlark.Bool  { return starlark.False }
func (w unsetWire) Hash() (uint32, error) { return 0, ErrWireUnset(w) }

func (w unsetWire) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	return nil, ErrWireUnset(w)
}

func (w unsetWire) Unary(op syntax.Token) (starlark.Value, error) {
	return nil, ErrWireUnset(w)
}

// Eval evaluates a Starlark expression over the resolved wires, for example
// "d | e" or "x << 2".
//
// Each wire is predeclared under its own name, and also as an entry of the
// dict W. Wires named like Starlark keywords (if, in, or, ...) can only be
// read through W, as in W["if"]. Using a program wire that has no value
// returns ErrWireUnset; a name the program never mentions is a Starlark
// error.
func (ev *Evaluator) Eval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for wire := range ev.Program.Wires() {
		pred[wire] = unsetWire(wire)
	}
	for wire := range ev.predefine {
		pred[wire] = unsetWire(wire)
	}
	wires := starlark.NewDict(len(ev.values))
	for wire, val := range ev.Values() {
		pred[wire] = starlark.MakeInt(int(val))
		err = wires.SetKey(starlark.String(wire), starlark.MakeInt(int(val)))
		if err != nil {
			return
		}
	}
	pred["W"] = wires

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if unset, is_unset := st_rc.(unsetWire); is_unset {
		err = ErrWireUnset(unset)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_uint64)
	return
}
