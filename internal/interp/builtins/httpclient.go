package builtins

import (
	"io"
	"net/http"
	"time"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerHTTPClient wires the hosted HTTP client facade (spec.md §4.G)
// on stdlib net/http. No HTTP client library (e.g. resty) appears in
// the example pack; go-chi/chi is a server-side router and is wired
// into the web-server facade instead (webserver.go).
func registerHTTPClient(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"طلب_http", CategoryHTTP, biHTTPRequest},
	})
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// biHTTPRequest performs طلب_http(method, url) and returns an Object with
// status, body, and headers keys, per spec.md §4.G's description of the
// HTTP client facade.
func biHTTPRequest(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errWrongArity("طلب_http", 2, len(args))
	}
	method, err := asText("طلب_http", args[0])
	if err != nil {
		return nil, err
	}
	url, err := asText("طلب_http", args[1])
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(string(method), string(url), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	headers := runtime.NewObject()
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers.Set(k, runtime.Text(v[0]))
		}
	}

	result := runtime.NewObject()
	result.Set("status", runtime.IntNumber(int64(resp.StatusCode)))
	result.Set("body", runtime.Text(body))
	result.Set("headers", headers)
	return result, nil
}
