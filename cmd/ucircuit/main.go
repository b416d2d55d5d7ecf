// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/ezrec/ucircuit/circuit"
	"github.com/ezrec/ucircuit/evaluator"
)

// predefines collects repeated -D wire=value flags.
type predefines map[string]uint16

func (pd predefines) String() string {
	var defs []string
	for wire, value := range pd {
		defs = append(defs, fmt.Sprintf("%v=%v", wire, value))
	}
	return strings.Join(defs, ",")
}

func (pd predefines) Set(def string) error {
	wire, str, ok := strings.Cut(def, "=")
	if !ok || len(wire) == 0 {
		return errors.Errorf("%q is not wire=value", def)
	}
	if !circuit.ValidWire(wire) {
		return errors.Errorf("%q is not a wire", wire)
	}
	value, err := strconv.ParseUint(str, 0, 16)
	if err != nil {
		return errors.Wrapf(err, "predefine %v", wire)
	}
	pd[wire] = uint16(value)
	return nil
}

// logSummary logs the evaluation state, including when the run is aborted.
func logSummary(ev *evaluator.Evaluator) {
	log.Printf("%v passes, %v wires resolved", ev.Passes, len(ev.Resolved()))
	for wire := range ev.Unresolved() {
		log.Printf("unresolved: %v", wire)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	var input string
	var wires string
	var expr string
	var verbose bool
	defines := predefines{}

	flags := flag.NewFlagSet("ucircuit", flag.ContinueOnError)
	flags.StringVar(&input, "i", "-", "Circuit input")
	flags.StringVar(&wires, "w", "a", "Comma separated wires to report")
	flags.StringVar(&expr, "e", "", "Expression over resolved wires to report")
	flags.Var(defines, "D", "Predefine wire=value (repeatable)")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = errors.Errorf("unknown arguments: %v", flags.Args())
		return
	}

	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			return errors.Wrap(err, "input")
		}
		defer inf.Close()
		stdin = inf
	}

	ps := &circuit.Parser{Verbose: verbose}
	prog, err := ps.Parse(stdin)
	if err != nil {
		err = errors.Wrap(err, input)
		return
	}

	ev := evaluator.NewEvaluator()
	ev.Verbose = verbose
	ev.Load(prog)
	for wire, value := range defines {
		ev.Predefine(wire, value)
	}

	err = ev.Reset()
	if err != nil {
		return
	}

	if verbose {
		atexit.Register(func() { logSummary(ev) })
	}

	_, err = ev.Run()
	if err != nil {
		err = errors.Wrap(err, input)
		return
	}

	for _, wire := range strings.Split(wires, ",") {
		wire = strings.TrimSpace(wire)
		if len(wire) == 0 {
			continue
		}
		fmt.Fprintln(stdout, ev.Report(wire))
	}

	if len(expr) != 0 {
		var value uint16
		var unset evaluator.ErrWireUnset
		value, err = ev.Eval(expr)
		switch {
		case errors.As(err, &unset):
			err = nil
			fmt.Fprintf(stdout, "%v = UNSET\n", expr)
			if verbose {
				log.Printf("%v: wire %v unset", expr, string(unset))
			}
		case err != nil:
			err = errors.Wrapf(err, "expression %q", expr)
			return
		default:
			fmt.Fprintf(stdout, "%v = %d\n", expr, value)
		}
	}

	return
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Cause(err) == flag.ErrHelp {
		atexit.Exit(0)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}
	atexit.Exit(0)
}
