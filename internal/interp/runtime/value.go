// Package runtime defines the Nawa value model shared by the evaluator
// (package interp) and the built-in function library (package builtins),
// breaking the import cycle that would otherwise exist between them —
// mirrors the teacher's own internal/interp/runtime split.
package runtime

import (
	"strconv"
	"strings"

	"github.com/tofey-ar/nawa/internal/ast"
)

// Value is a runtime value. Every concrete value variant named in
// spec.md §3 implements this interface.
type Value interface {
	Type() string
	String() string
}

// Number holds either an integer or a floating-point value. The distinction
// is preserved through arithmetic: integer+integer stays integer, any
// floating operand promotes (spec.md §3).
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func IntNumber(v int64) Number   { return Number{Int: v} }
func FloatNumber(v float64) Number { return Number{IsFloat: true, Float: v} }

func (n Number) Type() string { return "NUMBER" }

func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// AsFloat returns the numeric value widened to float64.
func (n Number) AsFloat() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// IsZero reports whether the number is exactly zero, used by the division
// and modulo operators to raise "division by zero" (spec.md §4.F).
func (n Number) IsZero() bool {
	if n.IsFloat {
		return n.Float == 0
	}
	return n.Int == 0
}

// Text is an immutable Unicode string value.
type Text string

func (t Text) Type() string   { return "TEXT" }
func (t Text) String() string { return string(t) }

// Boolean is a truth value. Rendered as the Arabic words for true/false
// per spec.md §6 output formatting.
type Boolean bool

func (b Boolean) Type() string { return "BOOLEAN" }
func (b Boolean) String() string {
	if b {
		return "صحيح"
	}
	return "خطأ"
}

// Null is the sole absent value.
type Null struct{}

func (Null) Type() string   { return "NULL" }
func (Null) String() string { return "فارغ" }

// List is an ordered, mutable, reference-shared sequence of values
// (spec.md §3: "Lists and Objects are reference-shared: aliasing is
// observable").
type List struct {
	Elements []Value
}

func NewList(elems []Value) *List { return &List{Elements: elems} }

func (l *List) Type() string { return "LIST" }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Object is an insertion-ordered, mutable, reference-shared mapping from
// text keys to values.
type Object struct {
	keys   []string
	values map[string]Value
}

func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (o *Object) Type() string { return "OBJECT" }

func (o *Object) String() string {
	parts := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		parts = append(parts, k+": "+o.values[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value bound to key and whether it exists.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set binds key to v, appending key to the insertion order only the first
// time it is set (last write wins for the value, first write wins for
// position, matching spec.md §9's "duplicate keys ... last wins").
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int { return len(o.keys) }

// UserFunction is a user-defined function: captured parameter names and
// body AST. Functions do not capture their defining environment — spec.md
// §3/§9 deliberately specifies dynamic-scope-like call semantics instead of
// lexical closures.
type UserFunction struct {
	Name       string
	Parameters []string
	Body       *ast.Block
}

func (f *UserFunction) Type() string   { return "FUNCTION" }
func (f *UserFunction) String() string { return "<دالة " + f.Name + ">" }

// BuiltinFunc is a host-provided callable's implementation. args is the
// positional, already-evaluated argument list.
type BuiltinFunc func(args []Value) (Value, error)

// Builtin is a host-provided opaque callable, exposed to the evaluator as
// an invokable Value (spec.md §4.G).
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() string   { return "BUILTIN" }
func (b *Builtin) String() string { return "<مدمج " + b.Name + ">" }

// Truthy implements spec.md §3's truthiness table: Null and Boolean-false
// are falsy; Number zero, empty Text, empty List, and empty Object are
// truthy (short-circuit operators delegate directly to this, unchanged).
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Null:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}
