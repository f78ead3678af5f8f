package poculum

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromGo(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Uint(1)},
		{"int", 42, Uint(42)},
		{"negative int", -42, Int(-42)},
		{"int8", int8(-7), Int(-7)},
		{"uint16", uint16(300), Uint(300)},
		{"uint64", uint64(1 << 60), Uint(1 << 60)},
		{"float32", float32(0.5), Float(0.5)},
		{"float64", 2.25, Float(2.25)},
		{"string", "abc", String("abc")},
		{"bytes", []byte{1, 2}, Bytes([]byte{1, 2})},
		{"value passthrough", String("v"), String("v")},
		{"any slice", []any{1, "two", nil}, List(Uint(1), String("two"), Null())},
		{"entry slice", []Entry{E("k", Uint(1))}, Map(E("k", Uint(1)))},
	}
	for _, tc := range cases {
		got, err := FromGo(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Go map iteration order is unspecified, so FromGo sorts keys to keep the
// resulting encoding deterministic.
func TestFromGoMapSortsKeys(t *testing.T) {
	got, err := FromGo(map[string]any{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := Map(E("a", Uint(1)), E("b", Uint(2)), E("c", Uint(3)))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFromGoUnsupported(t *testing.T) {
	for _, in := range []any{struct{}{}, make(chan int), func() {}, map[int]any{1: "x"}, complex(1, 2)} {
		if _, err := FromGo(in); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("FromGo(%T): got %v, want ErrUnsupportedType", in, err)
		}
	}
	// Unsupported elements are rejected wherever they nest.
	if _, err := FromGo([]any{1, struct{}{}}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("nested unsupported: got %v", err)
	}
	if _, err := Marshal(map[string]any{"k": make(chan int)}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Marshal unsupported: got %v", err)
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	v := Map(
		E("n", Null()),
		E("u", Uint(9)),
		E("i", Int(-9)),
		E("f", Float(0.25)),
		E("s", String("x")),
		E("b", Bytes([]byte{1})),
		E("l", List(Uint(1), Uint(2))),
	)
	back, err := FromGo(v.Interface())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Fatalf("Interface round trip: got %v, want %v", back, v)
	}
}

func TestEqual(t *testing.T) {
	nan := Float(math.NaN())
	if !nan.Equal(Float(math.NaN())) {
		t.Error("NaN should equal NaN (bit comparison)")
	}
	if Float(0).Equal(Float(math.Copysign(0, -1))) {
		t.Error("+0 and -0 differ by bit pattern")
	}
	if Uint(1).Equal(Int(-1)) {
		t.Error("kinds differ")
	}
	if Map(E("a", Uint(1)), E("b", Uint(2))).Equal(Map(E("b", Uint(2)), E("a", Uint(1)))) {
		t.Error("maps compare as ordered entry lists")
	}
	if String("").Equal(Null()) || Uint(0).Equal(Null()) || List().Equal(Null()) {
		t.Error("null is distinct from empty/zero values")
	}
}

func TestAccessors(t *testing.T) {
	if u, ok := Uint(7).Uint64(); !ok || u != 7 {
		t.Errorf("Uint64: %v %v", u, ok)
	}
	if i, ok := Int(-7).Int64(); !ok || i != -7 {
		t.Errorf("Int64: %v %v", i, ok)
	}
	if i, ok := Uint(7).Int64(); !ok || i != 7 {
		t.Errorf("Int64 of small uint: %v %v", i, ok)
	}
	if _, ok := Uint(1 << 63).Int64(); ok {
		t.Error("Int64 of huge uint should not be representable")
	}
	if _, ok := String("x").Uint64(); ok {
		t.Error("Uint64 of string should fail")
	}
	if got := List(Uint(1), Uint(2)).Len(); got != 2 {
		t.Errorf("Len: %d", got)
	}
}

func TestMarshal(t *testing.T) {
	got, err := Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x71, 0x31, 0x61, 0x01, 0x01}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Marshal (-want +got):\n%s", diff)
	}
}
