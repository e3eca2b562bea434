package builtins

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerJSON wires the hosted JSON codec facade (spec.md §4.G/§1's
// "JSON codec") on github.com/tidwall/gjson (decode) and
// github.com/tidwall/sjson (encode) instead of encoding/json — both ship
// in the teacher's own go.mod (pulled in transitively through
// go-snaps's diff engine) and there is no reason to reach for a second,
// unrelated JSON library when the pack already carries one.
func registerJSON(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"ترميز_json", CategoryJSON, biJSONEncode},
		{"فك_json", CategoryJSON, biJSONDecode},
	})
}

func biJSONDecode(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("فك_json", 1, len(args))
	}
	t, err := asText("فك_json", args[0])
	if err != nil {
		return nil, err
	}
	result := gjson.Parse(string(t))
	if !result.Exists() && string(t) != "null" {
		return nil, fmt.Errorf("فك_json: invalid JSON document")
	}
	return gjsonToValue(result), nil
}

func gjsonToValue(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.Null{}
	case gjson.False:
		return runtime.Boolean(false)
	case gjson.True:
		return runtime.Boolean(true)
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return runtime.IntNumber(int64(r.Num))
		}
		return runtime.FloatNumber(r.Num)
	case gjson.String:
		return runtime.Text(r.Str)
	}
	if r.IsArray() {
		var elems []runtime.Value
		r.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, gjsonToValue(v))
			return true
		})
		return runtime.NewList(elems)
	}
	if r.IsObject() {
		obj := runtime.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), gjsonToValue(v))
			return true
		})
		return obj
	}
	return runtime.Null{}
}

func biJSONEncode(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("ترميز_json", 1, len(args))
	}
	// A bare scalar has no path to sjson.Set against (sjson always builds
	// beneath an existing document root), so it is rendered directly;
	// every composite value goes through sjson.Set path-at-a-time.
	switch val := args[0].(type) {
	case *runtime.List, *runtime.Object:
		doc, err := valueToJSON("", emptyRootFor(val), val)
		if err != nil {
			return nil, err
		}
		return runtime.Text(doc), nil
	default:
		return runtime.Text(scalarJSON(val)), nil
	}
}

func emptyRootFor(v runtime.Value) string {
	if _, ok := v.(*runtime.List); ok {
		return "[]"
	}
	return "{}"
}

// valueToJSON sets path within document to v using sjson, recursing into
// List/Object children since sjson builds a document path-at-a-time
// rather than from an in-memory tree.
func valueToJSON(path, document string, v runtime.Value) (string, error) {
	switch val := v.(type) {
	case *runtime.List:
		if path != "" {
			var err error
			document, err = sjson.SetRaw(document, path, "[]")
			if err != nil {
				return "", err
			}
		}
		for i, elem := range val.Elements {
			elemPath := joinPath(path, fmt.Sprintf("%d", i))
			switch elem.(type) {
			case *runtime.List, *runtime.Object:
				var err error
				document, err = valueToJSON(elemPath, document, elem)
				if err != nil {
					return "", err
				}
			default:
				var err error
				document, err = sjson.SetRaw(document, elemPath, scalarJSON(elem))
				if err != nil {
					return "", err
				}
			}
		}
		return document, nil
	case *runtime.Object:
		if path != "" {
			var err error
			document, err = sjson.SetRaw(document, path, "{}")
			if err != nil {
				return "", err
			}
		}
		for _, k := range val.Keys() {
			fv, _ := val.Get(k)
			fieldPath := joinPath(path, k)
			switch fv.(type) {
			case *runtime.List, *runtime.Object:
				var err error
				document, err = valueToJSON(fieldPath, document, fv)
				if err != nil {
					return "", err
				}
			default:
				var err error
				document, err = sjson.SetRaw(document, fieldPath, scalarJSON(fv))
				if err != nil {
					return "", err
				}
			}
		}
		return document, nil
	default:
		return "", fmt.Errorf("ترميز_json: cannot encode %s", v.Type())
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

// scalarJSON renders a non-composite Value as a raw JSON literal for use
// with sjson.SetRaw.
func scalarJSON(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.Null:
		return "null"
	case runtime.Boolean:
		if val {
			return "true"
		}
		return "false"
	case runtime.Text:
		return strconv.Quote(string(val))
	case runtime.Number:
		if val.IsFloat {
			return strconv.FormatFloat(val.Float, 'g', -1, 64)
		}
		return strconv.FormatInt(val.Int, 10)
	default:
		return "null"
	}
}
