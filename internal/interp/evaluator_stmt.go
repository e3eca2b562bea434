package interp

import (
	"fmt"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/interp/ierrors"
)

// evalStatement executes one statement, returning any non-local control
// flow signal it raises or directly propagates from a nested block.
func (it *Interpreter) evalStatement(stmt ast.Statement) (signal, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := it.evalExpression(s.Expression)
		return noSignal, err
	case *ast.AssignStatement:
		return noSignal, it.evalAssignStatement(s)
	case *ast.VarDeclStatement:
		return noSignal, it.evalVarDeclStatement(s)
	case *ast.PrintStatement:
		return noSignal, it.evalPrintStatement(s)
	case *ast.IfStatement:
		return it.evalIfStatement(s)
	case *ast.WhileStatement:
		return it.evalWhileStatement(s)
	case *ast.ForStatement:
		return it.evalForStatement(s)
	case *ast.FunctionDefStatement:
		return noSignal, it.evalFunctionDefStatement(s)
	case *ast.ReturnStatement:
		return it.evalReturnStatement(s)
	case *ast.BreakStatement:
		return signal{kind: signalBreak}, nil
	case *ast.ContinueStatement:
		return signal{kind: signalContinue}, nil
	default:
		return noSignal, ierrors.NewTypeError(posOf(stmt), "unknown statement node: %T", stmt)
	}
}

// evalAssignStatement creates the binding if absent — bare assignment
// without var also creates, matching spec.md §4.F and §9 — and fails if
// the target is a constant. The constants set is checked on the
// Interpreter, not the current call frame's Environment: it is
// process-global and never snapshotted across a function call (spec.md:
// "The constant set and function table are process-global and are not
// snapshotted"), so a constant declared at top level still rejects
// reassignment from inside a function body.
func (it *Interpreter) evalAssignStatement(as *ast.AssignStatement) error {
	if it.constants[as.Target] {
		return ierrors.NewNameError(posOf(as), ierrors.MsgCannotModifyConst, as.Target)
	}
	v, err := it.evalExpression(as.Value)
	if err != nil {
		return err
	}
	it.env.Assign(as.Target, v)
	return nil
}

func (it *Interpreter) evalVarDeclStatement(vd *ast.VarDeclStatement) error {
	if it.env.Has(vd.Name) || it.constants[vd.Name] {
		return ierrors.NewNameError(posOf(vd), ierrors.MsgAlreadyDefined, vd.Name)
	}
	var value Value = Null{}
	if vd.Value != nil {
		v, err := it.evalExpression(vd.Value)
		if err != nil {
			return err
		}
		value = v
	}
	it.env.Declare(vd.Name, value)
	if vd.IsConst {
		it.constants[vd.Name] = true
	}
	return nil
}

func (it *Interpreter) evalPrintStatement(ps *ast.PrintStatement) error {
	v, err := it.evalExpression(ps.Value)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(it.Output, v.String()); err != nil {
		return ierrors.NewIOError("%s", err)
	}
	if ps.TrailingNewline {
		if _, err := fmt.Fprintln(it.Output); err != nil {
			return ierrors.NewIOError("%s", err)
		}
	}
	return nil
}

func (it *Interpreter) evalIfStatement(is *ast.IfStatement) (signal, error) {
	cond, err := it.evalExpression(is.Condition)
	if err != nil {
		return noSignal, err
	}
	if Truthy(cond) {
		return it.evalStatements(is.Then.Statements)
	}
	if is.Else != nil {
		return it.evalStatements(is.Else.Statements)
	}
	return noSignal, nil
}

// evalWhileStatement repeats Body while Condition is truthy; continue
// restarts the condition check, break exits the loop entirely.
func (it *Interpreter) evalWhileStatement(ws *ast.WhileStatement) (signal, error) {
	for {
		cond, err := it.evalExpression(ws.Condition)
		if err != nil {
			return noSignal, err
		}
		if !Truthy(cond) {
			return noSignal, nil
		}
		sig, err := it.evalStatements(ws.Body.Statements)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case signalBreak:
			return noSignal, nil
		case signalReturn:
			return sig, nil
		}
	}
}

// evalForStatement implements spec.md §4.F's iteration rule: a Number
// iterates 0..n-1; a List, Text, or Object (its keys) iterates directly.
// The loop variable is bound in the enclosing environment, not a fresh
// per-iteration scope.
func (it *Interpreter) evalForStatement(fs *ast.ForStatement) (signal, error) {
	iterable, err := it.evalExpression(fs.Iterable)
	if err != nil {
		return noSignal, err
	}

	var items []Value
	switch v := iterable.(type) {
	case Number:
		n := int64(v.Int)
		if v.IsFloat {
			n = int64(v.Float)
		}
		items = make([]Value, 0, n)
		for i := int64(0); i < n; i++ {
			items = append(items, IntNumber(i))
		}
	case *List:
		items = v.Elements
	case Text:
		runes := []rune(string(v))
		items = make([]Value, len(runes))
		for i, r := range runes {
			items[i] = Text(r)
		}
	case *Object:
		keys := v.Keys()
		items = make([]Value, len(keys))
		for i, k := range keys {
			items[i] = Text(k)
		}
	default:
		return noSignal, ierrors.NewTypeError(posOf(fs), ierrors.MsgNotIndexable, iterable.Type())
	}

	if it.constants[fs.LoopVar] {
		return noSignal, ierrors.NewNameError(posOf(fs), ierrors.MsgCannotModifyConst, fs.LoopVar)
	}

	for _, item := range items {
		it.env.Assign(fs.LoopVar, item)
		sig, err := it.evalStatements(fs.Body.Statements)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case signalBreak:
			return noSignal, nil
		case signalReturn:
			return sig, nil
		}
	}
	return noSignal, nil
}

// evalFunctionDefStatement registers the function in the global function
// table; redefinition silently overwrites (spec.md §4.F).
func (it *Interpreter) evalFunctionDefStatement(fd *ast.FunctionDefStatement) error {
	it.functions[fd.Name] = &UserFunction{
		Name:       fd.Name,
		Parameters: fd.Parameters,
		Body:       fd.Body,
	}
	return nil
}

func (it *Interpreter) evalReturnStatement(rs *ast.ReturnStatement) (signal, error) {
	if rs.Value == nil {
		return signal{kind: signalReturn, value: Null{}}, nil
	}
	v, err := it.evalExpression(rs.Value)
	if err != nil {
		return noSignal, err
	}
	return signal{kind: signalReturn, value: v}, nil
}
