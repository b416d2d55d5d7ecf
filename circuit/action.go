package circuit

// Action is the operation an instruction performs on its sources.
type Action int

//go:generate go tool stringer -linecomment -type=Action
const (
	ACTION_SET    = Action(0) // SET
	ACTION_NOT    = Action(1) // NOT
	ACTION_AND    = Action(2) // AND
	ACTION_OR     = Action(3) // OR
	ACTION_LSHIFT = Action(4) // LSHIFT
	ACTION_RSHIFT = Action(5) // RSHIFT
)

// binaryMap maps binary operator keywords to actions.
var binaryMap = map[string]Action{
	"AND":    ACTION_AND,
	"OR":     ACTION_OR,
	"LSHIFT": ACTION_LSHIFT,
	"RSHIFT": ACTION_RSHIFT,
}

// ParseBinaryAction returns the action for a binary operator keyword.
func ParseBinaryAction(word string) (act Action, err error) {
	act, ok := binaryMap[word]
	if !ok {
		err = ErrActionInvalid
	}
	return
}

// Operands returns the number of source signals the action consumes.
func (act Action) Operands() int {
	switch act {
	case ACTION_SET, ACTION_NOT:
		return 1
	default:
		return 2
	}
}

// Binary returns true for the infix operators.
func (act Action) Binary() bool {
	return act.Operands() == 2
}

// Compute applies the action to its resolved source values.
// Shift counts of 16 or more shift every bit out.
func (act Action) Compute(args ...uint16) (value uint16) {
	switch act {
	case ACTION_SET:
		value = args[0]
	case ACTION_NOT:
		value = ^args[0]
	case ACTION_AND:
		value = args[0] & args[1]
	case ACTION_OR:
		value = args[0] | args[1]
	case ACTION_LSHIFT:
		value = args[0] << args[1]
	case ACTION_RSHIFT:
		value = args[0] >> args[1]
	default:
		panic("unknown action " + act.String())
	}

	return
}
