package builtins

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerWebServer wires the hosted web-server constructor facade
// (spec.md §4.G: "hosted façade constructors for web server") on
// github.com/go-chi/chi/v5, adopted from the dphaener-conduit example
// repo's router stack. invoke lets a registered route dispatch to a
// Nawa user function without this package importing the evaluator.
func registerWebServer(dst map[string]*runtime.Builtin, invoke Invoker) {
	register(dst, []entry{
		{"انشئ_خادم", CategoryWebServer, biNewServer(invoke)},
	})
}

// serverHandle is the opaque Object returned by انشئ_خادم. مسار (route)
// and استمع (listen) are exposed through property-access dispatch
// (spec.md §4.F: "Built-in hosted values ... expose named attributes by
// host-side dispatch"), matching the evaluator's HostObject contract.
// مسار is also a reserved word (token.ROUTE), and the parser accepts only
// an identifier after '.', so Nawa source cannot reach the مسار property.
type serverHandle struct {
	router chi.Router
	invoke Invoker
}

func (s *serverHandle) Type() string   { return "WEBSERVER" }
func (s *serverHandle) String() string { return "<خادم>" }

func (s *serverHandle) Property(name string) (runtime.Value, error) {
	switch name {
	case "مسار":
		return &runtime.Builtin{Name: "مسار", Fn: s.route}, nil
	case "استمع":
		return &runtime.Builtin{Name: "استمع", Fn: s.listen}, nil
	default:
		return runtime.Null{}, nil
	}
}

// route registers مسار(method, path, handler): handler is a Nawa
// function of one parameter, an Object describing the request (method
// and path keys); the text form of its return value is written as the
// response body.
func (s *serverHandle) route(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 3 {
		return nil, errWrongArity("مسار", 3, len(args))
	}
	method, err := asText("مسار", args[0])
	if err != nil {
		return nil, err
	}
	path, err := asText("مسار", args[1])
	if err != nil {
		return nil, err
	}
	handler, ok := args[2].(*runtime.UserFunction)
	if !ok {
		return nil, errWrongType("مسار", "a function", args[2])
	}

	s.router.MethodFunc(string(method), string(path), func(w http.ResponseWriter, r *http.Request) {
		req := runtime.NewObject()
		req.Set("method", runtime.Text(r.Method))
		req.Set("path", runtime.Text(r.URL.Path))
		result, err := s.invoke(handler, []runtime.Value{req})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, result.String())
	})
	return runtime.Null{}, nil
}

// listen blocks serving on the given port, matching chi's standard
// http.ListenAndServe entry point.
func (s *serverHandle) listen(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("استمع", 1, len(args))
	}
	port, err := asNumber("استمع", args[0])
	if err != nil {
		return nil, err
	}
	addr := fmt.Sprintf(":%d", port.Int)
	if err := http.ListenAndServe(addr, s.router); err != nil {
		return nil, fmt.Errorf("استمع: %w", err)
	}
	return runtime.Null{}, nil
}

func biNewServer(invoke Invoker) runtime.BuiltinFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 0 {
			return nil, errWrongArity("انشئ_خادم", 0, len(args))
		}
		return &serverHandle{router: chi.NewRouter(), invoke: invoke}, nil
	}
}
