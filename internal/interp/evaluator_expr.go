package interp

import (
	"math"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/interp/ierrors"
)

// evalExpression evaluates expr to a Value. It is the expression half of
// the post-order tree walk spec.md §4.F describes; statements live in
// evaluator_stmt.go.
func (it *Interpreter) evalExpression(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntNumber(e.Value), nil
	case *ast.FloatLiteral:
		return FloatNumber(e.Value), nil
	case *ast.TextLiteral:
		return Text(e.Value), nil
	case *ast.BooleanLiteral:
		return Boolean(e.Value), nil
	case *ast.NullLiteral:
		return Null{}, nil
	case *ast.Identifier:
		return it.evalIdentifier(e)
	case *ast.BinaryExpression:
		return it.evalBinaryExpression(e)
	case *ast.UnaryExpression:
		return it.evalUnaryExpression(e)
	case *ast.ListLiteral:
		return it.evalListLiteral(e)
	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(e)
	case *ast.IndexExpression:
		return it.evalIndexExpression(e)
	case *ast.PropertyAccessExpression:
		return it.evalPropertyAccess(e)
	case *ast.CallExpression:
		return it.evalCallExpression(e)
	}
	return nil, ierrors.NewTypeError(nil, "unknown expression node: %T", expr)
}

// evalIdentifier resolves a name in the order spec.md §4.F mandates:
// mutable environment, then built-ins, then the user-function table.
func (it *Interpreter) evalIdentifier(id *ast.Identifier) (Value, error) {
	if v, ok := it.env.Get(id.Value); ok {
		return v, nil
	}
	if b, ok := it.builtins[id.Value]; ok {
		return b, nil
	}
	if fn, ok := it.functions[id.Value]; ok {
		return fn, nil
	}
	return nil, ierrors.NewNameError(posOf(id), ierrors.MsgUndefinedVariable, id.Value)
}

func (it *Interpreter) evalListLiteral(ll *ast.ListLiteral) (Value, error) {
	elems := make([]Value, len(ll.Elements))
	for i, e := range ll.Elements {
		v, err := it.evalExpression(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return NewList(elems), nil
}

func (it *Interpreter) evalObjectLiteral(ol *ast.ObjectLiteral) (Value, error) {
	obj := NewObject()
	for _, entry := range ol.Entries {
		v, err := it.evalExpression(entry.Value)
		if err != nil {
			return nil, err
		}
		obj.Set(entry.Key, v)
	}
	return obj, nil
}

func (it *Interpreter) evalUnaryExpression(ue *ast.UnaryExpression) (Value, error) {
	operand, err := it.evalExpression(ue.Operand)
	if err != nil {
		return nil, err
	}
	switch ue.Operator {
	case "-":
		n, ok := operand.(Number)
		if !ok {
			return nil, ierrors.NewTypeError(posOf(ue), ierrors.MsgOperandMismatch, "-", operand.Type(), operand.Type())
		}
		if n.IsFloat {
			return FloatNumber(-n.Float), nil
		}
		return IntNumber(-n.Int), nil
	case "not":
		return Boolean(!Truthy(operand)), nil
	default:
		return nil, ierrors.NewTypeError(posOf(ue), ierrors.MsgUnknownOperator, ue.Operator)
	}
}

// evalBinaryExpression implements spec.md §4.F's binary-op semantics: or/and
// short-circuit by returning one operand unchanged (no Boolean coercion);
// every other operator evaluates both sides and applies the operator.
func (it *Interpreter) evalBinaryExpression(be *ast.BinaryExpression) (Value, error) {
	left, err := it.evalExpression(be.Left)
	if err != nil {
		return nil, err
	}

	switch be.Operator {
	case "or":
		if Truthy(left) {
			return left, nil
		}
		return it.evalExpression(be.Right)
	case "and":
		if !Truthy(left) {
			return left, nil
		}
		return it.evalExpression(be.Right)
	}

	right, err := it.evalExpression(be.Right)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(posOf(be), be.Operator, left, right)
}

func applyBinaryOperator(pos *ierrors.Position, op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		return evalAdd(pos, left, right)
	case "-", "*", "/", "%", "**":
		return evalArithmetic(pos, op, left, right)
	case "==":
		return Boolean(valuesEqual(left, right)), nil
	case "!=":
		return Boolean(!valuesEqual(left, right)), nil
	case ">", "<", ">=", "<=":
		return evalComparison(pos, op, left, right)
	default:
		return nil, ierrors.NewTypeError(pos, ierrors.MsgUnknownOperator, op)
	}
}

// evalAdd overloads '+' for Text concatenation and Number addition
// (spec.md §4.F: "+ on two Texts concatenates; + on two Numbers adds").
func evalAdd(pos *ierrors.Position, left, right Value) (Value, error) {
	if lt, ok := left.(Text); ok {
		if rt, ok := right.(Text); ok {
			return lt + rt, nil
		}
	}
	if ln, ok := left.(Number); ok {
		if rn, ok := right.(Number); ok {
			return numericAdd(ln, rn), nil
		}
	}
	return nil, ierrors.NewTypeError(pos, ierrors.MsgOperandMismatch, "+", left.Type(), right.Type())
}

func numericAdd(l, r Number) Number {
	if l.IsFloat || r.IsFloat {
		return FloatNumber(l.AsFloat() + r.AsFloat())
	}
	return IntNumber(l.Int + r.Int)
}

func evalArithmetic(pos *ierrors.Position, op string, left, right Value) (Value, error) {
	ln, ok := left.(Number)
	if !ok {
		return nil, ierrors.NewTypeError(pos, ierrors.MsgOperandMismatch, op, left.Type(), right.Type())
	}
	rn, ok := right.(Number)
	if !ok {
		return nil, ierrors.NewTypeError(pos, ierrors.MsgOperandMismatch, op, left.Type(), right.Type())
	}

	switch op {
	case "-":
		if ln.IsFloat || rn.IsFloat {
			return FloatNumber(ln.AsFloat() - rn.AsFloat()), nil
		}
		return IntNumber(ln.Int - rn.Int), nil
	case "*":
		if ln.IsFloat || rn.IsFloat {
			return FloatNumber(ln.AsFloat() * rn.AsFloat()), nil
		}
		return IntNumber(ln.Int * rn.Int), nil
	case "/":
		if rn.IsZero() {
			return nil, ierrors.NewArithmeticError(pos, ierrors.MsgDivisionByZero)
		}
		if ln.IsFloat || rn.IsFloat {
			return FloatNumber(ln.AsFloat() / rn.AsFloat()), nil
		}
		return IntNumber(ln.Int / rn.Int), nil
	case "%":
		if rn.IsZero() {
			return nil, ierrors.NewArithmeticError(pos, ierrors.MsgDivisionByZero)
		}
		if ln.IsFloat || rn.IsFloat {
			return FloatNumber(math.Mod(ln.AsFloat(), rn.AsFloat())), nil
		}
		return IntNumber(ln.Int % rn.Int), nil
	case "**":
		return numericPow(ln, rn), nil
	default:
		return nil, ierrors.NewTypeError(pos, ierrors.MsgUnknownOperator, op)
	}
}

func evalComparison(pos *ierrors.Position, op string, left, right Value) (Value, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if lok && rok {
		var result bool
		a, b := ln.AsFloat(), rn.AsFloat()
		switch op {
		case ">":
			result = a > b
		case "<":
			result = a < b
		case ">=":
			result = a >= b
		case "<=":
			result = a <= b
		}
		return Boolean(result), nil
	}
	lt, ltok := left.(Text)
	rt, rtok := right.(Text)
	if ltok && rtok {
		var result bool
		switch op {
		case ">":
			result = lt > rt
		case "<":
			result = lt < rt
		case ">=":
			result = lt >= rt
		case "<=":
			result = lt <= rt
		}
		return Boolean(result), nil
	}
	return nil, ierrors.NewTypeError(pos, ierrors.MsgOperandMismatch, op, left.Type(), right.Type())
}

// valuesEqual implements value equality for == and !=, structural for
// List/Object since those are spec.md's only composite value kinds.
func valuesEqual(left, right Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case Number:
		return l.AsFloat() == right.(Number).AsFloat()
	case Text:
		return l == right.(Text)
	case Boolean:
		return l == right.(Boolean)
	case Null:
		return true
	case *List:
		r := right.(*List)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *Object:
		r := right.(*Object)
		if l.Len() != r.Len() {
			return false
		}
		for _, k := range l.Keys() {
			lv, _ := l.Get(k)
			rv, ok := r.Get(k)
			if !ok || !valuesEqual(lv, rv) {
				return false
			}
		}
		return true
	default:
		return left == right
	}
}

func (it *Interpreter) evalIndexExpression(ie *ast.IndexExpression) (Value, error) {
	coll, err := it.evalExpression(ie.Collection)
	if err != nil {
		return nil, err
	}
	idx, err := it.evalExpression(ie.Index)
	if err != nil {
		return nil, err
	}

	switch c := coll.(type) {
	case *List:
		n, ok := idx.(Number)
		if !ok || n.IsFloat {
			return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgOperandMismatch, "[]", coll.Type(), idx.Type())
		}
		i := int(n.Int)
		if i < 0 || i >= len(c.Elements) {
			return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgIndexOutOfRange, i)
		}
		return c.Elements[i], nil
	case Text:
		n, ok := idx.(Number)
		if !ok || n.IsFloat {
			return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgOperandMismatch, "[]", coll.Type(), idx.Type())
		}
		runes := []rune(string(c))
		i := int(n.Int)
		if i < 0 || i >= len(runes) {
			return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgIndexOutOfRange, i)
		}
		return Text(runes[i]), nil
	case *Object:
		key, ok := idx.(Text)
		if !ok {
			return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgOperandMismatch, "[]", coll.Type(), idx.Type())
		}
		v, ok := c.Get(string(key))
		if !ok {
			return nil, ierrors.NewNameError(posOf(ie), ierrors.MsgKeyNotFound, string(key))
		}
		return v, nil
	default:
		return nil, ierrors.NewTypeError(posOf(ie), ierrors.MsgNotIndexable, coll.Type())
	}
}

// evalPropertyAccess looks up a key on an Object, returning Null if absent
// rather than erroring (spec.md §4.F). Host-hosted values (database
// handles, server handles) dispatch to their own named-attribute table.
func (it *Interpreter) evalPropertyAccess(pa *ast.PropertyAccessExpression) (Value, error) {
	obj, err := it.evalExpression(pa.Object)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *Object:
		v, ok := o.Get(pa.Property)
		if !ok {
			return Null{}, nil
		}
		return v, nil
	case HostObject:
		return o.Property(pa.Property)
	default:
		return nil, ierrors.NewTypeError(posOf(pa), ierrors.MsgNotIndexable, obj.Type())
	}
}

// evalCallExpression implements spec.md §4.F's call semantics: a built-in
// is invoked directly; a user function gets its entire caller environment
// swapped out for a fresh one containing only parameter bindings, and the
// swap is unconditionally restored afterward — there are no closures.
func (it *Interpreter) evalCallExpression(ce *ast.CallExpression) (Value, error) {
	callee, err := it.evalCallee(ce.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(ce.Arguments))
	for i, a := range ce.Arguments {
		v, err := it.evalExpression(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *UserFunction:
		return it.callUserFunction(fn, args)
	default:
		return nil, ierrors.NewTypeError(posOf(ce), ierrors.MsgNotCallable, callee.Type())
	}
}

// evalCallee evaluates the callee expression, preferring the function
// table directly for a bare identifier so a function and a variable of
// the same name can coexist (spec.md §9).
func (it *Interpreter) evalCallee(expr ast.Expression) (Value, error) {
	if id, ok := expr.(*ast.Identifier); ok {
		if fn, ok := it.functions[id.Value]; ok {
			return fn, nil
		}
	}
	return it.evalExpression(expr)
}

func (it *Interpreter) callUserFunction(fn *UserFunction, args []Value) (Value, error) {
	callerEnv := it.env
	frame := NewEnvironment()
	for i, name := range fn.Parameters {
		if i < len(args) {
			frame.Declare(name, args[i])
		}
	}
	it.env = frame
	defer func() { it.env = callerEnv }()

	sig, err := it.evalStatements(fn.Body.Statements)
	if err != nil {
		return nil, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return Null{}, nil
}

// HostObject is implemented by built-in library facade values (database
// handles, server handles) so property access can dispatch to them
// without the evaluator knowing their concrete type (spec.md §4.F).
type HostObject interface {
	Value
	Property(name string) (Value, error)
}

func numericPow(l, r Number) Number {
	if !l.IsFloat && !r.IsFloat && r.Int >= 0 {
		result := int64(1)
		base := l.Int
		exp := r.Int
		for exp > 0 {
			result *= base
			exp--
		}
		return IntNumber(result)
	}
	return FloatNumber(math.Pow(l.AsFloat(), r.AsFloat()))
}
