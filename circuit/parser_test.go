package circuit

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_ParseLine(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	table := [](struct {
		line  string
		instr Instruction
	}){
		{"123 -> x", Instruction{Action: ACTION_SET, Dest: "x", Src: [2]Signal{Literal(123)}}},
		{"b -> a", Instruction{Action: ACTION_SET, Dest: "a", Src: [2]Signal{WireRef("b")}}},
		{"NOT x -> h", Instruction{Action: ACTION_NOT, Dest: "h", Src: [2]Signal{WireRef("x")}}},
		{"NOT   7 -> h", Instruction{Action: ACTION_NOT, Dest: "h", Src: [2]Signal{Literal(7)}}},
		{"x AND y -> d", Instruction{Action: ACTION_AND, Dest: "d", Src: [2]Signal{WireRef("x"), WireRef("y")}}},
		{"1 AND y -> d", Instruction{Action: ACTION_AND, Dest: "d", Src: [2]Signal{Literal(1), WireRef("y")}}},
		{"x OR y -> e", Instruction{Action: ACTION_OR, Dest: "e", Src: [2]Signal{WireRef("x"), WireRef("y")}}},
		{"x LSHIFT 2 -> f", Instruction{Action: ACTION_LSHIFT, Dest: "f", Src: [2]Signal{WireRef("x"), Literal(2)}}},
		{"y RSHIFT 2 -> g", Instruction{Action: ACTION_RSHIFT, Dest: "g", Src: [2]Signal{WireRef("y"), Literal(2)}}},
		{"  44430 -> b  ", Instruction{Action: ACTION_SET, Dest: "b", Src: [2]Signal{Literal(44430)}}},
	}

	for _, entry := range table {
		instr, err := ps.ParseLine(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.instr, instr, entry.line)
	}
}

func TestParser_ParseLine_Invalid(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	invalid := []string{
		"",
		"x",
		"-> x",
		"x ->",
		"x -> 1",
		"x -> X",
		"x XOR y -> z",
		"x AND -> z",
		"x AND y z -> w",
		"NOT x y -> z",
		"NOTx -> y",
		"x -> y trailing",
		"x  AND y -> z",
	}

	for _, line := range invalid {
		_, err := ps.ParseLine(line)
		assert.ErrorIs(err, ErrInstructionInvalid, line)
	}
}

func TestParser_ParseLine_Range(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	for _, line := range []string{
		"65536 -> x",
		"NOT 70000 -> x",
		"1 AND 99999 -> x",
	} {
		_, err := ps.ParseLine(line)
		var lit ErrParseLiteral
		assert.True(errors.As(err, &lit), line)
	}

	instr, err := ps.ParseLine("65535 -> x")
	assert.NoError(err)
	assert.Equal(Literal(65535), instr.Src[0])
}

func TestParser_Parse(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	program := []string{
		"123 -> x",
		"456 -> y",
		"",
		"x AND y -> d",
		"x OR y -> e",
		"x LSHIFT 2 -> f",
		"y RSHIFT 2 -> g",
		"NOT x -> h",
		"NOT y -> i",
	}

	prog, err := ps.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(8, len(prog.Instructions))

	lines := []int{1, 2, 4, 5, 6, 7, 8, 9}
	for n, instr := range prog.Instructions {
		assert.Equal(lines[n], instr.LineNo)
		assert.Equal(program[instr.LineNo-1], instr.String())
	}
}

func TestParser_Parse_Error(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	program := []string{
		"123 -> x",
		"x XOR y -> d",
		"NOT x -> h",
	}

	prog, err := ps.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrInstructionInvalid)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.Equal("x XOR y -> d", syntax.Line)
	}
}

func TestParser_Parse_Empty(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{Verbose: true}

	prog, err := ps.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))
}

func TestParser_Verbose(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ps := &Parser{Verbose: true}
	_, err := ps.Parse(strings.NewReader("x AND y -> d\nNOT x -> h\n123 -> x\n"))
	assert.NoError(err)

	out := buf.String()
	assert.Contains(out, "AND d, x, y\n")
	assert.Contains(out, "NOT h, x\n")
	assert.Contains(out, "SET x, 123\n")

	buf.Reset()
	ps.Verbose = false
	_, err = ps.Parse(strings.NewReader("x AND y -> d\n"))
	assert.NoError(err)
	assert.Empty(buf.String())
}

func FuzzParser_RoundTrip(f *testing.F) {
	f.Add("123 -> x")
	f.Add("NOT x -> h")
	f.Add("x AND y -> d")
	f.Add("1 OR y -> e")
	f.Add("x LSHIFT 2 -> f")
	f.Add("y RSHIFT 15 -> g")
	f.Add("x XOR y -> z")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		ps := &Parser{}
		instr, err := ps.ParseLine(line)
		if err != nil {
			return
		}

		again, err := ps.ParseLine(instr.String())
		assert.NoError(err, line)
		assert.Equal(instr, again, line)
	})
}
