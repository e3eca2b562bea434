package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerFileIO wires the hosted file I/O facade (spec.md §4.G) on
// stdlib os/io, matching the teacher's own file-facing built-ins — no
// third-party filesystem helper library is present in the example pack.
func registerFileIO(dst map[string]*runtime.Builtin, stdin io.Reader) {
	scanner := bufio.NewScanner(stdin)
	register(dst, []entry{
		{"اقرأ_ملف", CategoryFileIO, biReadFile},
		{"اكتب_ملف", CategoryFileIO, biWriteFile},
		{"اقرأ_سطر", CategoryIO, biReadLine(scanner)},
	})
}

func biReadFile(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("اقرأ_ملف", 1, len(args))
	}
	path, err := asText("اقرأ_ملف", args[0])
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("اقرأ_ملف: %w", err)
	}
	return runtime.Text(data), nil
}

func biWriteFile(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errWrongArity("اكتب_ملف", 2, len(args))
	}
	path, err := asText("اكتب_ملف", args[0])
	if err != nil {
		return nil, err
	}
	content, err := asText("اكتب_ملف", args[1])
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("اكتب_ملف: %w", err)
	}
	return runtime.Null{}, nil
}

// biReadLine returns a built-in ("read-input" in spec.md §4.G's example
// list) that reads one line from stdin via bufio.Scanner, yielding Null
// at end of input.
func biReadLine(scanner *bufio.Scanner) runtime.BuiltinFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 0 {
			return nil, errWrongArity("اقرأ_سطر", 0, len(args))
		}
		if !scanner.Scan() {
			return runtime.Null{}, nil
		}
		return runtime.Text(scanner.Text()), nil
	}
}
