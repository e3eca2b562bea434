// Package interp implements the Nawa tree-walking evaluator (spec.md §4.F).
//
// The value model and environment themselves live in internal/interp/runtime
// so that internal/interp/builtins can depend on them without importing the
// evaluator package — the same split the teacher uses for its own
// internal/interp/runtime package. These aliases let the rest of this
// package keep writing Value, Number, Environment, and so on, instead of
// spelling out runtime.Value everywhere.
package interp

import "github.com/tofey-ar/nawa/internal/interp/runtime"

type (
	Value        = runtime.Value
	Number       = runtime.Number
	Text         = runtime.Text
	Boolean      = runtime.Boolean
	Null         = runtime.Null
	List         = runtime.List
	Object       = runtime.Object
	UserFunction = runtime.UserFunction
	BuiltinFunc  = runtime.BuiltinFunc
	Builtin      = runtime.Builtin
	Environment  = runtime.Environment
)

var (
	NewEnvironment = runtime.NewEnvironment
	NewList        = runtime.NewList
	NewObject      = runtime.NewObject
	IntNumber      = runtime.IntNumber
	FloatNumber    = runtime.FloatNumber
	Truthy         = runtime.Truthy
)
