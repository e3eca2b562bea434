package interp

import (
	"io"

	"github.com/tofey-ar/nawa/internal/interp/builtins"
)

// NewStandard creates an Interpreter wired with the full built-in
// library surface (internal/interp/builtins.RegisterAll), the way
// cmd/nawa's run command does. stdin feeds the read-line built-in.
func NewStandard(output io.Writer, stdin io.Reader) *Interpreter {
	it := New(output, nil)
	it.builtins = builtins.RegisterAll(stdin, it.invokeFunction)
	return it
}

// invokeFunction adapts callUserFunction to builtins.Invoker's signature
// so hosted facades (the web-server route dispatcher) can call a Nawa
// user function without internal/interp/builtins importing this package.
//
// This is an external entry point into the evaluator exactly like Run:
// net/http invokes a registered route handler on a goroutine it spawns
// per request, so it takes the same serializing lock Run does before
// touching it.env/it.constants/it.functions, rather than relying on the
// caller already holding it.
func (it *Interpreter) invokeFunction(fn *UserFunction, args []Value) (Value, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.callUserFunction(fn, args)
}
