// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strings"
)

// Instruction grammar:
//
//	wire   := [a-z]+
//	value  := [0-9]+
//	signal := value | wire
//	set    := signal '->' wire
//	not    := 'NOT' set
//	op     := 'AND' | 'OR' | 'LSHIFT' | 'RSHIFT'
//	binop  := signal op signal '->' wire
//	instr  := binop | not | set
var (
	reBinop = regexp.MustCompile(`^([a-z0-9]+) ([A-Z]+) ([a-z0-9]+) -> ([a-z]+)$`)
	reSet   = regexp.MustCompile(`^([a-z0-9]+) -> ([a-z]+)$`)
)

// Parser converts program text into instructions.
type Parser struct {
	Verbose bool // If set, logs each parsed instruction.
}

// parseBinop parses 'signal OP signal -> wire'.
func (ps *Parser) parseBinop(line string) (instr Instruction, ok bool, err error) {
	m := reBinop.FindStringSubmatch(line)
	if m == nil {
		return
	}

	act, err := ParseBinaryAction(m[2])
	if err != nil {
		// Not a binop after all. Let the later rules reject it.
		err = nil
		return
	}

	var srcs [2]Signal
	for n, word := range []string{m[1], m[3]} {
		srcs[n], err = ParseSignal(word)
		if err != nil {
			return
		}
	}

	instr, err = NewInstruction(act, m[4], srcs[:]...)
	ok = err == nil
	return
}

// parseNot parses 'NOT signal -> wire'.
func (ps *Parser) parseNot(line string) (instr Instruction, ok bool, err error) {
	rest, found := strings.CutPrefix(line, "NOT ")
	if !found {
		return
	}

	return ps.parseSet(strings.TrimLeft(rest, " "), ACTION_NOT)
}

// parseSet parses 'signal -> wire' with the given action.
func (ps *Parser) parseSet(line string, act Action) (instr Instruction, ok bool, err error) {
	m := reSet.FindStringSubmatch(line)
	if m == nil {
		return
	}

	src, err := ParseSignal(m[1])
	if err != nil {
		return
	}

	instr, err = NewInstruction(act, m[2], src)
	ok = err == nil
	return
}

// ParseLine parses a single line of program text as an instruction.
func (ps *Parser) ParseLine(line string) (instr Instruction, err error) {
	line = strings.TrimSpace(line)

	rules := []func(string) (Instruction, bool, error){
		ps.parseBinop,
		ps.parseNot,
		func(line string) (Instruction, bool, error) { return ps.parseSet(line, ACTION_SET) },
	}

	for _, rule := range rules {
		var ok bool
		instr, ok, err = rule(line)
		if err != nil {
			return
		}
		if ok {
			if ps.Verbose {
				log.Printf("%v", instr.Debug())
			}
			return
		}
	}

	err = ErrInstructionInvalid
	return
}

// Parse parses an input stream into a Program. Blank lines are ignored.
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		var instr Instruction
		instr, err = ps.ParseLine(line)
		if err != nil {
			prog = nil
			return
		}
		instr.LineNo = lineno

		prog.Instructions = append(prog.Instructions, instr)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
