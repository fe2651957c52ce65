package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, terminal bool) {
	t.Helper()

	p, tty := parser, isTerminal
	parser = &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	isTerminal = func() bool { return terminal }

	t.Cleanup(func() {
		parser, isTerminal = p, tty
	})
}

func TestConvert(t *testing.T) {
	setup(t, true)

	o, err := Parse([]string{"convert", "-t", "1e-6", "3.14159", "0.4"})
	require.NoError(t, err)
	require.Equal(t, "convert", o.Command)
	require.Equal(t, []string{"3.14159", "0.4"}, o.Args)
	require.Equal(t, 64, o.Bits)
	require.Equal(t, 1e-6, o.Tolerance)
	require.False(t, o.Interactive)
}

func TestSimplify(t *testing.T) {
	setup(t, false)

	o, err := Parse([]string{"simplify", "--bits=32", "6/20"})
	require.NoError(t, err)
	require.Equal(t, "simplify", o.Command)
	require.Equal(t, []string{"6/20"}, o.Args)
	require.Equal(t, 32, o.Bits)
	require.Zero(t, o.Tolerance)
}

func TestEval(t *testing.T) {
	setup(t, false)

	o, err := Parse([]string{"eval", "3/4", "-", "2/5"})
	require.NoError(t, err)
	require.Equal(t, "eval", o.Command)
	require.Equal(t, []string{"3/4", "-", "2/5"}, o.Args)
}

func TestNegativeOperands(t *testing.T) {
	setup(t, false)

	o, err := Parse([]string{"convert", "--", "-1.375"})
	require.NoError(t, err)
	require.Equal(t, "convert", o.Command)
	require.Equal(t, []string{"-1.375"}, o.Args)

	o, err = Parse([]string{"convert", "-t", "1e-3", "--", "-3.14159", "0.4"})
	require.NoError(t, err)
	require.Equal(t, []string{"-3.14159", "0.4"}, o.Args)
	require.Equal(t, 1e-3, o.Tolerance)

	o, err = Parse([]string{"simplify", "-b", "8", "--", "-6/8"})
	require.NoError(t, err)
	require.Equal(t, []string{"-6/8"}, o.Args)
	require.Equal(t, 8, o.Bits)

	o, err = Parse([]string{"eval", "--", "-3/4", "+", "1/2"})
	require.NoError(t, err)
	require.Equal(t, "eval", o.Command)
	require.Equal(t, []string{"-3/4", "+", "1/2"}, o.Args)
}

func TestOperands(t *testing.T) {
	require.Equal(t, []string{"-1.375"}, operands([]string{"--", "-1.375"}))
	require.Equal(t, []string{"0.5"}, operands([]string{"0.5"}))
	require.Equal(t, []string{"3/4", "-", "2/5"}, operands([]string{"3/4", "-", "2/5"}))
}

func TestSession(t *testing.T) {
	setup(t, true)

	o, err := Parse([]string{})
	require.NoError(t, err)
	require.Empty(t, o.Command)
	require.True(t, o.Interactive)

	o, err = Parse([]string{"-i", "-b", "8"})
	require.NoError(t, err)
	require.False(t, o.Interactive)
	require.Equal(t, 8, o.Bits)

	setup(t, false)

	o, err = Parse([]string{})
	require.NoError(t, err)
	require.False(t, o.Interactive)

	o, err = Parse([]string{"--interactive"})
	require.NoError(t, err)
	require.True(t, o.Interactive)
}

func TestInvalid(t *testing.T) {
	setup(t, false)

	_, err := Parse([]string{"convert", "--tolerance=0", "0.5"})
	require.Error(t, err)

	_, err = Parse([]string{"convert", "-t", "zero", "0.5"})
	require.Error(t, err)

	_, err = Parse([]string{"simplify", "-b", "wide", "1/2"})
	require.Error(t, err)

	_, err = Parse([]string{"convert"})
	require.Error(t, err)
}
