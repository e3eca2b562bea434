package builtins

import (
	"strings"
	"testing"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

func mustCall(t *testing.T, table map[string]*runtime.Builtin, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	b, ok := table[name]
	if !ok {
		t.Fatalf("no built-in registered under %q", name)
	}
	v, err := b.Fn(args)
	if err != nil {
		t.Fatalf("%s(%v): unexpected error: %v", name, args, err)
	}
	return v
}

func TestMathBuiltins(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerMath(dst)

	if got := mustCall(t, dst, "طول", runtime.Text("أهلا")); got.String() != "4" {
		t.Fatalf("طول(أهلا) = %v, want 4", got)
	}
	if got := mustCall(t, dst, "مطلق", runtime.IntNumber(-5)); got.String() != "5" {
		t.Fatalf("مطلق(-5) = %v, want 5", got)
	}
	if got := mustCall(t, dst, "اكبر", runtime.IntNumber(3), runtime.IntNumber(9), runtime.IntNumber(1)); got.String() != "9" {
		t.Fatalf("اكبر(3,9,1) = %v, want 9", got)
	}
	if got := mustCall(t, dst, "اصغر", runtime.IntNumber(3), runtime.IntNumber(9), runtime.IntNumber(1)); got.String() != "1" {
		t.Fatalf("اصغر(3,9,1) = %v, want 1", got)
	}
	sum := mustCall(t, dst, "مجموع", runtime.NewList([]runtime.Value{
		runtime.IntNumber(1), runtime.IntNumber(2), runtime.IntNumber(3),
	}))
	if sum.String() != "6" {
		t.Fatalf("مجموع([1,2,3]) = %v, want 6", sum)
	}
	rng := mustCall(t, dst, "مدى", runtime.IntNumber(3)).(*runtime.List)
	if len(rng.Elements) != 3 || rng.Elements[0].String() != "0" || rng.Elements[2].String() != "2" {
		t.Fatalf("مدى(3) = %v, want [0 1 2]", rng.Elements)
	}
}

func TestStringsBuiltins(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerStrings(dst)

	got := mustCall(t, dst, "دمج", runtime.Text("أ"), runtime.Text("ب"))
	if got.String() != "أب" {
		t.Fatalf("دمج(أ,ب) = %v, want أب", got)
	}
	if got := mustCall(t, dst, "كبير", runtime.Text("abc")); got.String() != "ABC" {
		t.Fatalf("كبير(abc) = %v, want ABC", got)
	}
	if got := mustCall(t, dst, "صغير", runtime.Text("ABC")); got.String() != "abc" {
		t.Fatalf("صغير(ABC) = %v, want abc", got)
	}
	if got := mustCall(t, dst, "اقتطاع", runtime.Text("  حبا  ")); got.String() != "حبا" {
		t.Fatalf("اقتطاع = %q, want حبا", got.String())
	}
	sorted := mustCall(t, dst, "ترتيب", runtime.NewList([]runtime.Value{
		runtime.Text("ب"), runtime.Text("أ"),
	})).(*runtime.List)
	if len(sorted.Elements) != 2 {
		t.Fatalf("ترتيب produced %d elements, want 2", len(sorted.Elements))
	}
}

func TestConvertBuiltins(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerConvert(dst)

	if got := mustCall(t, dst, "نص", runtime.IntNumber(42)); got.String() != "42" {
		t.Fatalf("نص(42) = %v, want \"42\"", got)
	}
	if got := mustCall(t, dst, "رقم", runtime.Text("42")); got.String() != "42" {
		t.Fatalf("رقم(\"42\") = %v, want 42", got)
	}
	if got := mustCall(t, dst, "رقم", runtime.Text("3.5")); got.String() != "3.5" {
		t.Fatalf("رقم(\"3.5\") = %v, want 3.5", got)
	}
	if got := mustCall(t, dst, "نوع", runtime.Text("x")); got.String() != "TEXT" {
		t.Fatalf("نوع(\"x\") = %v, want TEXT", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerJSON(dst)

	obj := runtime.NewObject()
	obj.Set("name", runtime.Text("سارة"))
	obj.Set("age", runtime.IntNumber(30))
	obj.Set("tags", runtime.NewList([]runtime.Value{runtime.Text("a"), runtime.Text("b")}))

	encoded := mustCall(t, dst, "ترميز_json", obj)
	text, ok := encoded.(runtime.Text)
	if !ok {
		t.Fatalf("ترميز_json did not return Text: %T", encoded)
	}
	if !strings.Contains(string(text), `"name"`) || !strings.Contains(string(text), "سارة") {
		t.Fatalf("encoded JSON missing expected fields: %s", text)
	}

	decoded := mustCall(t, dst, "فك_json", text).(*runtime.Object)
	name, ok := decoded.Get("name")
	if !ok || name.String() != "سارة" {
		t.Fatalf("round-tripped name = %v, want سارة", name)
	}
	age, ok := decoded.Get("age")
	if !ok || age.String() != "30" {
		t.Fatalf("round-tripped age = %v, want 30", age)
	}
}

func TestJSONScalarEncode(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerJSON(dst)

	if got := mustCall(t, dst, "ترميز_json", runtime.IntNumber(7)); got.String() != "7" {
		t.Fatalf("ترميز_json(7) = %v, want 7", got)
	}
	if got := mustCall(t, dst, "ترميز_json", runtime.Text("hi")); got.String() != `"hi"` {
		t.Fatalf("ترميز_json(\"hi\") = %v, want \"hi\"", got)
	}
}

func TestHashBuiltin(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerHash(dst)

	sum := mustCall(t, dst, "تجزئة", runtime.Text("hello")).(runtime.Text)
	if len(sum) != 64 {
		t.Fatalf("تجزئة default digest length = %d, want 64 (sha256 hex)", len(sum))
	}
	md5sum := mustCall(t, dst, "تجزئة", runtime.Text("hello"), runtime.Text("md5")).(runtime.Text)
	if len(md5sum) != 32 {
		t.Fatalf("تجزئة md5 digest length = %d, want 32", len(md5sum))
	}
}

func TestDateTimeBuiltin(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerDateTime(dst)

	formatted := mustCall(t, dst, "نسق_تاريخ", runtime.IntNumber(0), runtime.Text("2006-01-02"))
	if formatted.String() != "1970-01-01" {
		t.Fatalf("نسق_تاريخ(0, ...) = %v, want 1970-01-01", formatted)
	}
}

func TestCollectionsBuiltins(t *testing.T) {
	dst := make(map[string]*runtime.Builtin)
	registerCollections(dst)

	sorted := mustCall(t, dst, "فرز", runtime.NewList([]runtime.Value{
		runtime.IntNumber(3), runtime.IntNumber(1), runtime.IntNumber(2),
	})).(*runtime.List)
	want := []int64{1, 2, 3}
	for i, v := range sorted.Elements {
		n := v.(runtime.Number)
		if n.Int != want[i] {
			t.Fatalf("فرز result[%d] = %d, want %d", i, n.Int, want[i])
		}
	}

	reversed := mustCall(t, dst, "اعكس", runtime.NewList([]runtime.Value{
		runtime.IntNumber(1), runtime.IntNumber(2), runtime.IntNumber(3),
	})).(*runtime.List)
	if reversed.Elements[0].String() != "3" || reversed.Elements[2].String() != "1" {
		t.Fatalf("اعكس([1,2,3]) = %v, want [3 2 1]", reversed.Elements)
	}
}
