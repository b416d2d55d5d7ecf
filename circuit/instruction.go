package circuit

import (
	"fmt"
)

// Instruction assigns the result of an action on its sources to a wire.
type Instruction struct {
	LineNo int       // Source line number, 0 if built in code.
	Action Action    // Operation to perform.
	Dest   string    // Destination wire.
	Src    [2]Signal // Source signals. Only Action.Operands() are used.
}

// NewInstruction builds an instruction, checking the destination and the
// source count against the action.
func NewInstruction(act Action, dest string, srcs ...Signal) (instr Instruction, err error) {
	if act < ACTION_SET || act > ACTION_RSHIFT {
		err = ErrActionInvalid
		return
	}
	if !ValidWire(dest) {
		err = ErrParseSignal(dest)
		return
	}
	if len(srcs) != act.Operands() {
		err = ErrSignalCount
		return
	}

	instr = Instruction{Action: act, Dest: dest}
	copy(instr.Src[:], srcs)

	return
}

// Sources returns the source signals consumed by the action.
func (instr Instruction) Sources() []Signal {
	return instr.Src[:instr.Action.Operands()]
}

// String returns the instruction in program text form.
func (instr Instruction) String() string {
	switch instr.Action {
	case ACTION_SET:
		return fmt.Sprintf("%v -> %v", instr.Src[0], instr.Dest)
	case ACTION_NOT:
		return fmt.Sprintf("NOT %v -> %v", instr.Src[0], instr.Dest)
	default:
		return fmt.Sprintf("%v %v %v -> %v", instr.Src[0], instr.Action, instr.Src[1], instr.Dest)
	}
}

// Debug returns the instruction as 'ACTION dest, src...'.
func (instr Instruction) Debug() (out string) {
	out = fmt.Sprintf("%v %v", instr.Action, instr.Dest)
	for _, src := range instr.Sources() {
		out += ", " + src.String()
	}
	return
}
