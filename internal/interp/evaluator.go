package interp

import (
	"io"
	"sync"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/interp/ierrors"
)

// Interpreter walks a parsed program against a mutable environment,
// producing side effects (primarily writes to Output) and either a nil
// error on success or the first RuntimeError encountered (spec.md §7:
// "no error is caught inside the core").
//
// constants and functions are process-global and shared by every call
// frame (spec.md: "The constant set and function table are
// process-global and are not snapshotted") — only env is swapped per
// call. mu serializes entry into the evaluator: spec.md §1/§5 name this
// interpreter as single-threaded with exactly one environment, but a
// hosted facade (the web-server route dispatcher) can call back in from
// a goroutine net/http spawns per request, so mu guards the one
// evaluator/environment pair against concurrent use from those callers.
type Interpreter struct {
	mu        sync.Mutex
	env       *Environment
	constants map[string]bool
	functions map[string]*UserFunction
	builtins  map[string]*Builtin
	Output    io.Writer
}

// New creates an Interpreter with a fresh global environment. builtins is
// the name-to-callable table installed by the built-in library surface
// (internal/interp/builtins.RegisterAll); it may be nil.
func New(output io.Writer, builtins map[string]*Builtin) *Interpreter {
	if builtins == nil {
		builtins = make(map[string]*Builtin)
	}
	return &Interpreter{
		env:       NewEnvironment(),
		constants: make(map[string]bool),
		functions: make(map[string]*UserFunction),
		builtins:  builtins,
		Output:    output,
	}
}

// Run lexes-free entry point: evaluates an already-parsed program,
// executing its top-level statements in order and stopping at the first
// error (spec.md §7). A bare, uncaught break/continue/return signal
// reaching the top level is treated as the latent bug spec.md §7/§9
// describes it as — it is silently discarded rather than reported as an
// error, since no enclosing loop or call exists to misbehave against.
//
// Run takes the same serializing lock invokeFunction does (standard.go),
// so a hosted facade invoking a Nawa function concurrently with a
// top-level Run (or with another invocation) cannot interleave with it.
func (it *Interpreter) Run(program *ast.Program) error {
	it.mu.Lock()
	defer it.mu.Unlock()
	_, err := it.evalStatements(program.Statements)
	return err
}

// evalStatements executes a sequence of statements in order, stopping at
// the first error or the first non-signalNone control-flow signal (which
// is then propagated to the caller — the enclosing loop or call).
func (it *Interpreter) evalStatements(stmts []ast.Statement) (signal, error) {
	for _, stmt := range stmts {
		sig, err := it.evalStatement(stmt)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

// posOf adapts an ast.Node's position to the ierrors package's Position
// type, used by every error constructor call in the evaluator.
func posOf(node ast.Node) *ierrors.Position {
	p := node.Pos()
	return &ierrors.Position{Line: p.Line, Column: p.Column}
}
