// Package ui runs fraction sessions, either interactively with line editing or
// over a plain stream of lines.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process input lines.
type Evaluator interface {
	Evaluate(line string) (string, error)
}

// Run reads lines with a line editor until EOF or "quit".
func Run(e Evaluator, prompt string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)
			return nil
		default:
			return err
		}

		if quit(line) {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}
		respond(os.Stdout, e, line)
	}
}

// Batch evaluates every line of r, writing results and errors to w. It
// returns an error if any line failed.
func Batch(r io.Reader, w io.Writer, e Evaluator) error {
	failed, total := 0, 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if quit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if !respond(w, e, line) {
			failed++
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("ui: %d of %d lines failed", failed, total)
	}
	return nil
}

func respond(w io.Writer, e Evaluator, line string) bool {
	out, err := e.Evaluate(line)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return false
	}
	if out != "" {
		fmt.Fprintln(w, out)
	}
	return true
}

func quit(line string) bool {
	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return true
	}
	return false
}
