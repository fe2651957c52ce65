// Package options parses the fraction command line.
package options

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const Version = "fraction 1.0.0"

//nolint:gochecknoglobals
var (
	usage = `fraction

Usage:
  fraction convert [-b BITS] [-t TOL] [--] VALUE...
  fraction simplify [-b BITS] [--] FRACTION...
  fraction eval [-b BITS] [--] EXPRESSION...
  fraction [-b BITS] [-i]
  fraction -h
  fraction -v

Arguments:
  VALUE       Floating-point value to convert to a fraction.
  FRACTION    Fraction written as n/d.
  EXPRESSION  Operands and the operators + - * /, evaluated left to right.

Options:
  -b, --bits=BITS      Integer width: 8, 16, 32 or 64 [default: 64].
  -t, --tolerance=TOL  Relative tolerance for convert. Defaults to the
                       float64 machine epsilon.
  -i, --interactive    Invert interactive mode.
  -h, --help           Display this help.
  -v, --version        Print the fraction version.

Operands that start with a minus sign must follow --, as in
"fraction convert -- -1.375".

With no command, lines are read from stdin and evaluated. If stdin is a TTY
the session is interactive, with line editing and history.
`

	parser = &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	isTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// Options is the parsed command line.
type Options struct {
	// Command is "convert", "simplify", "eval", or empty for a session.
	Command string
	Args    []string

	Bits        int
	Tolerance   float64
	Interactive bool
}

func Parse(argv []string) (*Options, error) {
	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &Options{}
	for _, cmd := range []string{"convert", "simplify", "eval"} {
		if on, _ := opts.Bool(cmd); on {
			o.Command = cmd
		}
	}

	for _, key := range []string{"VALUE", "FRACTION", "EXPRESSION"} {
		if args, ok := opts[key].([]string); ok && len(args) > 0 {
			o.Args = operands(args)
		}
	}

	bits, _ := opts.String("--bits")
	if o.Bits, err = strconv.Atoi(strings.TrimSpace(bits)); err != nil {
		return nil, fmt.Errorf("options: --bits: %q is not an integer", bits)
	}

	if tol, err := opts.String("--tolerance"); err == nil {
		if o.Tolerance, err = strconv.ParseFloat(tol, 64); err != nil || !(o.Tolerance > 0) {
			return nil, fmt.Errorf("options: --tolerance: %q is not a positive number", tol)
		}
	}

	if o.Command == "" && isTerminal() {
		o.Interactive = true
	}
	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}

// operands drops the end-of-options marker if docopt passed it through.
func operands(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
