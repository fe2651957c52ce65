/*
Fraction converts, reduces and evaluates exact fractions over fixed-width
integers:

	fraction convert 1.375          # 11/8
	fraction simplify 6/20          # 3/10
	fraction eval 3/4 + 0.4         # 23/20
	fraction -b 8 convert 3.14159   # fails: no 8-bit convergent is close enough

Without a command it reads lines from stdin; on a terminal it runs an
interactive session.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/TamirPerek/Fraction-Lib/internal/calc"
	"github.com/TamirPerek/Fraction-Lib/internal/options"
	"github.com/TamirPerek/Fraction-Lib/internal/ui"
)

func main() {
	opts, err := options.Parse(os.Args[1:])
	if err != nil {
		fail(err)
	}

	c, err := calc.New(opts.Bits)
	if err != nil {
		fail(err)
	}

	if err := run(c, opts); err != nil {
		fail(err)
	}
}

func run(c calc.Calculator, opts *options.Options) error {
	switch opts.Command {
	case "convert":
		for _, v := range opts.Args {
			out, err := c.Convert(v, opts.Tolerance)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
	case "simplify":
		for _, v := range opts.Args {
			out, err := c.Simplify(v)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
	case "eval":
		out, err := c.Eval(strings.Join(opts.Args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		if opts.Interactive {
			return ui.Run(c, fmt.Sprintf("fraction/%d> ", c.Bits()))
		}
		return ui.Batch(os.Stdin, os.Stdout, c)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "fraction: %v\n", err)
	os.Exit(1)
}
