package builtins

import (
	"io"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// RegisterAll builds the complete built-in name-to-callable table
// spec.md §4.G describes, aggregating every category's registration
// function. stdin feeds the read-line built-in; invoke lets the
// web-server facade call back into a Nawa user function as a route
// handler without this package importing the evaluator.
func RegisterAll(stdin io.Reader, invoke Invoker) map[string]*runtime.Builtin {
	dst := make(map[string]*runtime.Builtin)
	registerMath(dst)
	registerStrings(dst)
	registerConvert(dst)
	registerJSON(dst)
	registerHash(dst)
	registerDateTime(dst)
	registerFileIO(dst, stdin)
	registerHTTPClient(dst)
	registerWebServer(dst, invoke)
	registerDBHandle(dst)
	registerCollections(dst)
	return dst
}
