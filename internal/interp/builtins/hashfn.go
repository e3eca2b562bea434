package builtins

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerHash wires the تجزئة (hash) built-in on stdlib crypto/sha256
// and crypto/md5 — no hashing library ships anywhere in the example
// pack, so stdlib is the grounded choice here (see DESIGN.md).
func registerHash(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"تجزئة", CategoryHash, biHash},
	})
}

// biHash hashes its first argument's text form with the algorithm named
// by the optional second argument ("sha256" by default, or "md5").
func biHash(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errWrongArity("تجزئة", 1, len(args))
	}
	t, err := asText("تجزئة", args[0])
	if err != nil {
		return nil, err
	}
	algo := "sha256"
	if len(args) == 2 {
		a, err := asText("تجزئة", args[1])
		if err != nil {
			return nil, err
		}
		algo = string(a)
	}
	switch algo {
	case "md5":
		sum := md5.Sum([]byte(t))
		return runtime.Text(hex.EncodeToString(sum[:])), nil
	default:
		sum := sha256.Sum256([]byte(t))
		return runtime.Text(hex.EncodeToString(sum[:])), nil
	}
}
