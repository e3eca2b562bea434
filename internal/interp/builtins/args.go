package builtins

import (
	"fmt"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

func errWrongArity(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func errWrongType(name, want string, v runtime.Value) error {
	return fmt.Errorf("%s expects %s, got %s", name, want, v.Type())
}

func asNumber(name string, v runtime.Value) (runtime.Number, error) {
	n, ok := v.(runtime.Number)
	if !ok {
		return runtime.Number{}, errWrongType(name, "a number", v)
	}
	return n, nil
}

func asText(name string, v runtime.Value) (runtime.Text, error) {
	t, ok := v.(runtime.Text)
	if !ok {
		return "", errWrongType(name, "text", v)
	}
	return t, nil
}

func asList(name string, v runtime.Value) (*runtime.List, error) {
	l, ok := v.(*runtime.List)
	if !ok {
		return nil, errWrongType(name, "a list", v)
	}
	return l, nil
}
