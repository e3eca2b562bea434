package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tofey-ar/nawa/internal/interp"
)

// runRepl is the minimal interactive seam spec.md §1/§6 names as an
// external collaborator out of the core's scope: one line in, lexed,
// parsed, and evaluated against a single persistent Interpreter so
// variables and functions survive across lines.
func runRepl() error {
	it := interp.NewStandard(os.Stdout, os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		program, err := parseSource(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := it.Run(program); err != nil {
			fmt.Fprintln(os.Stderr, exitError("%s", err))
		}
	}
}
