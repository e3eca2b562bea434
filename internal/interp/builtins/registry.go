// Package builtins implements the built-in library surface spec.md §4.G
// names only by example: a flat mapping from Arabic built-in names to
// opaque callables. It depends only on internal/interp/runtime, never on
// internal/interp itself, so the evaluator can register this package's
// output without an import cycle — mirrors the teacher's own
// internal/interp/builtins split against internal/interp/runtime.
package builtins

import "github.com/tofey-ar/nawa/internal/interp/runtime"

// Category groups related built-ins for documentation/introspection
// purposes; it has no effect on lookup (spec.md §4.G treats the surface
// as one flat table).
type Category string

const (
	CategoryMath      Category = "math"
	CategoryStrings   Category = "strings"
	CategoryConvert   Category = "convert"
	CategoryJSON      Category = "json"
	CategoryHash      Category = "hash"
	CategoryDateTime  Category = "datetime"
	CategoryFileIO    Category = "fileio"
	CategoryHTTP      Category = "http"
	CategoryWebServer Category = "webserver"
	CategoryDBHandle  Category = "dbhandle"
	CategoryIO        Category = "io"
)

// entry pairs a built-in name with its category, used only when building
// the registration maps below.
type entry struct {
	name     string
	category Category
	fn       runtime.BuiltinFunc
}

func register(dst map[string]*runtime.Builtin, entries []entry) {
	for _, e := range entries {
		dst[e.name] = &runtime.Builtin{Name: e.name, Fn: e.fn}
	}
}

// Invoker lets a hosted facade (the web server route dispatcher) call
// back into a Nawa user function without this package importing the
// evaluator package — the evaluator supplies the implementation at
// registration time.
type Invoker func(fn *runtime.UserFunction, args []runtime.Value) (runtime.Value, error)
