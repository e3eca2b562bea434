package builtins

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// arabicCollator orders Text values the way a native Arabic reader
// would, rather than by raw code point — grounded on the teacher's own
// internal/string_helpers.go and internal/interp/builtins/strings_compare.go,
// which reach for the exact same golang.org/x/text packages for
// CompareText/CompareLocaleStrings.
var arabicCollator = collate.New(language.Arabic)

// registerStrings wires the text built-ins, including the locale-aware
// ترتيب (sort) built-in for Lists of Text.
func registerStrings(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"دمج", CategoryStrings, biConcat},
		{"كبير", CategoryStrings, biUpper},
		{"صغير", CategoryStrings, biLower},
		{"اقتطاع", CategoryStrings, biTrim},
		{"ترتيب", CategoryStrings, biSortText},
	})
}

// normalizeText NFC-normalizes the Text results of دمج, كبير, صغير and
// اقتطاع, so those results use one composition of combining marks. Text
// literals and other Text values are not normalized, and == compares Text
// values as they are.
func normalizeText(s string) runtime.Text {
	return runtime.Text(norm.NFC.String(s))
}

func biConcat(args []runtime.Value) (runtime.Value, error) {
	var b strings.Builder
	for _, v := range args {
		t, err := asText("دمج", v)
		if err != nil {
			return nil, err
		}
		b.WriteString(string(t))
	}
	return normalizeText(b.String()), nil
}

func biUpper(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("كبير", 1, len(args))
	}
	t, err := asText("كبير", args[0])
	if err != nil {
		return nil, err
	}
	return normalizeText(strings.ToUpper(string(t))), nil
}

func biLower(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("صغير", 1, len(args))
	}
	t, err := asText("صغير", args[0])
	if err != nil {
		return nil, err
	}
	return normalizeText(strings.ToLower(string(t))), nil
}

func biTrim(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("اقتطاع", 1, len(args))
	}
	t, err := asText("اقتطاع", args[0])
	if err != nil {
		return nil, err
	}
	return normalizeText(strings.TrimSpace(string(t))), nil
}

// biSortText sorts a List of Text values using arabicCollator rather
// than Go's default byte-wise string comparison (spec.md's ترتيب
// built-in example, §4.G).
func biSortText(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("ترتيب", 1, len(args))
	}
	l, err := asList("ترتيب", args[0])
	if err != nil {
		return nil, err
	}
	sorted := make([]string, len(l.Elements))
	for i, v := range l.Elements {
		t, err := asText("ترتيب", v)
		if err != nil {
			return nil, err
		}
		sorted[i] = string(t)
	}
	arabicCollator.SortStrings(sorted)
	out := make([]runtime.Value, len(sorted))
	for i, s := range sorted {
		out[i] = runtime.Text(s)
	}
	return runtime.NewList(out), nil
}
