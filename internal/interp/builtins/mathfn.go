package builtins

import (
	"math"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerMath wires spec.md §4.G's numeric built-ins (length for
// ranges, abs, round, max, min, sum, range) on the standard library math
// package alone — no third-party numeric library appears anywhere in the
// example pack (see DESIGN.md).
func registerMath(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"طول", CategoryMath, biLength},
		{"مطلق", CategoryMath, biAbs},
		{"تقريب", CategoryMath, biRound},
		{"اكبر", CategoryMath, biMax},
		{"اصغر", CategoryMath, biMin},
		{"مجموع", CategoryMath, biSum},
		{"مدى", CategoryMath, biRange},
	})
}

func biLength(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("طول", 1, len(args))
	}
	switch v := args[0].(type) {
	case runtime.Text:
		return runtime.IntNumber(int64(len([]rune(string(v))))), nil
	case *runtime.List:
		return runtime.IntNumber(int64(len(v.Elements))), nil
	case *runtime.Object:
		return runtime.IntNumber(int64(v.Len())), nil
	default:
		return nil, errWrongType("طول", "text, a list, or an object", args[0])
	}
}

func biAbs(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("مطلق", 1, len(args))
	}
	n, err := asNumber("مطلق", args[0])
	if err != nil {
		return nil, err
	}
	if n.IsFloat {
		return runtime.FloatNumber(math.Abs(n.Float)), nil
	}
	if n.Int < 0 {
		return runtime.IntNumber(-n.Int), nil
	}
	return n, nil
}

func biRound(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("تقريب", 1, len(args))
	}
	n, err := asNumber("تقريب", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.IntNumber(int64(math.Round(n.AsFloat()))), nil
}

func biMax(args []runtime.Value) (runtime.Value, error) {
	return numericFold("اكبر", args, func(a, b float64) bool { return b > a })
}

func biMin(args []runtime.Value) (runtime.Value, error) {
	return numericFold("اصغر", args, func(a, b float64) bool { return b < a })
}

// numericFold reduces args (or, when a single List is passed, its
// elements) to one Number using replace(a, b) to decide whether b
// displaces the running result a.
func numericFold(name string, args []runtime.Value, replace func(a, b float64) bool) (runtime.Value, error) {
	values := args
	if len(args) == 1 {
		if l, ok := args[0].(*runtime.List); ok {
			values = l.Elements
		}
	}
	if len(values) == 0 {
		return nil, errWrongArity(name, 1, 0)
	}
	best, err := asNumber(name, values[0])
	if err != nil {
		return nil, err
	}
	for _, v := range values[1:] {
		n, err := asNumber(name, v)
		if err != nil {
			return nil, err
		}
		if replace(best.AsFloat(), n.AsFloat()) {
			best = n
		}
	}
	return best, nil
}

func biSum(args []runtime.Value) (runtime.Value, error) {
	values := args
	if len(args) == 1 {
		if l, ok := args[0].(*runtime.List); ok {
			values = l.Elements
		}
	}
	isFloat := false
	var intTotal int64
	var floatTotal float64
	for _, v := range values {
		n, err := asNumber("مجموع", v)
		if err != nil {
			return nil, err
		}
		if n.IsFloat {
			isFloat = true
		}
		intTotal += n.Int
		floatTotal += n.AsFloat()
	}
	if isFloat {
		return runtime.FloatNumber(floatTotal), nil
	}
	return runtime.IntNumber(intTotal), nil
}

// biRange mirrors the for-statement's own Number-iteration rule
// (spec.md §4.F) as a callable: مدى(ن) yields [0 .. ن-1].
func biRange(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("مدى", 1, len(args))
	}
	n, err := asNumber("مدى", args[0])
	if err != nil {
		return nil, err
	}
	count := n.Int
	if n.IsFloat {
		count = int64(n.Float)
	}
	elems := make([]runtime.Value, 0, count)
	for i := int64(0); i < count; i++ {
		elems = append(elems, runtime.IntNumber(i))
	}
	return runtime.NewList(elems), nil
}
