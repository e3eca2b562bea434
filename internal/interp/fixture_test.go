package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/tofey-ar/nawa/internal/lexer"
	"github.com/tofey-ar/nawa/internal/parser"
)

// TestFixtures runs every .nawa program under testdata/fixtures and
// snapshots its output with go-snaps, the way the teacher's own
// TestDWScriptFixtures snapshots DWScript program output — scaled down
// to the handful of fixtures this language's surface warrants rather
// than the teacher's 64 test categories.
func TestFixtures(t *testing.T) {
	matches, err := filepath.Glob("../../testdata/fixtures/*.nawa")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no .nawa fixtures found")
	}
	for _, path := range matches {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}
			l := lexer.New(string(source))
			p := parser.New(l)
			program := p.ParseProgram()
			if errs := p.Errors(); len(errs) > 0 {
				t.Fatalf("parse errors in %s: %v", name, errs)
			}
			var out bytes.Buffer
			it := NewStandard(&out, bytes.NewReader(nil))
			if err := it.Run(program); err != nil {
				t.Fatalf("evaluating %s: %v", name, err)
			}
			snaps.MatchSnapshot(t, name+"_output", out.String())
		})
	}
}
