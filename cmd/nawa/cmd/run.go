package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/interp"
	"github.com/tofey-ar/nawa/internal/lexer"
	"github.com/tofey-ar/nawa/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Lex, parse, and evaluate a Nawa program",
	Long: `Execute a Nawa program from a file or an inline expression.

Examples:
  nawa run script.nawa
  nawa run -e "اطبع 1+1"
  nawa run --dump-ast script.nawa`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed program before evaluating it")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print a line per top-level statement executed")
}

func runScript(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return exitError("%s", err)
		}
		source = string(content)
	default:
		return runRepl()
	}

	program, err := parseSource(source)
	if err != nil {
		return err
	}
	if dumpAST {
		fmt.Fprintln(os.Stdout, program.String())
	}

	it := interp.NewStandard(os.Stdout, os.Stdin)
	if trace {
		return runTraced(it, program)
	}
	if err := it.Run(program); err != nil {
		return exitError("%s", err)
	}
	return nil
}

// parseSource lexes and parses source, reporting the first lex or parse
// error the way spec.md §7 requires: one diagnostic, line/column when
// available, no partial execution.
func parseSource(source string) (*ast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := l.Errors(); len(errs) > 0 {
		return nil, exitError("%s", errs[0])
	}
	if errs := p.Errors(); len(errs) > 0 {
		return nil, exitError("%s", errs[0])
	}
	return program, nil
}

// runTraced executes each top-level statement individually, printing one
// line per statement to stderr before running it — the --trace toggle
// named in SPEC_FULL.md's ambient CLI stack.
func runTraced(it *interp.Interpreter, program *ast.Program) error {
	for i, stmt := range program.Statements {
		fmt.Fprintf(os.Stderr, "[trace] %d: %s\n", i, stmt.String())
		if err := it.Run(&ast.Program{Statements: []ast.Statement{stmt}}); err != nil {
			return exitError("%s", err)
		}
	}
	return nil
}
