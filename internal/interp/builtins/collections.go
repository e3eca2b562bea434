package builtins

import (
	"sort"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerCollections wires فرز (sort) and اعكس (reverse) on Lists.
// Text elements reuse arabicCollator's locale-aware ordering; Number
// elements sort numerically via sort.SliceStable.
func registerCollections(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"فرز", CategoryMath, biSortList},
		{"اعكس", CategoryMath, biReverse},
	})
}

func biSortList(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("فرز", 1, len(args))
	}
	l, err := asList("فرز", args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Elements) == 0 {
		return runtime.NewList(nil), nil
	}
	if _, ok := l.Elements[0].(runtime.Text); ok {
		return biSortText(args)
	}

	elems := make([]runtime.Value, len(l.Elements))
	copy(elems, l.Elements)
	var sortErr error
	sort.SliceStable(elems, func(i, j int) bool {
		ni, err := asNumber("فرز", elems[i])
		if err != nil {
			sortErr = err
			return false
		}
		nj, err := asNumber("فرز", elems[j])
		if err != nil {
			sortErr = err
			return false
		}
		return ni.AsFloat() < nj.AsFloat()
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return runtime.NewList(elems), nil
}

func biReverse(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("اعكس", 1, len(args))
	}
	l, err := asList("اعكس", args[0])
	if err != nil {
		return nil, err
	}
	elems := make([]runtime.Value, len(l.Elements))
	for i, v := range l.Elements {
		elems[len(elems)-1-i] = v
	}
	return runtime.NewList(elems), nil
}
