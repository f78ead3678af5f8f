package codec

import (
	"errors"
	"strings"
	"testing"

	poculum "github.com/shinyes/poculum-go"
)

func TestPoculumCodecRoundTrip(t *testing.T) {
	c := Poculum{}
	v := poculum.Map(
		poculum.E("a", poculum.Uint(1)),
		poculum.E("b", poculum.List(poculum.String("x"), poculum.Null())),
	)
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("round trip: got %v, want %v", got, v)
	}
}

func TestPoculumCodecStrict(t *testing.T) {
	c := Poculum{}
	if _, err := c.Decode([]byte{0x00, 0xAA}); !errors.Is(err, poculum.ErrTrailingBytes) {
		t.Fatalf("trailing bytes: got %v", err)
	}
}

type record struct {
	ID   int      `json:"id" msgpack:"id"`
	Name string   `json:"name" msgpack:"name"`
	Tags []string `json:"tags" msgpack:"tags"`
}

func TestGenericCodecsRoundTrip(t *testing.T) {
	want := record{ID: 7, Name: "cup", Tags: []string{"a", "b"}}

	codecs := map[string]Codec[record]{
		"json":    JSON[record]{},
		"msgpack": Msgpack[record]{},
		"cbor":    MustCBOR[record](true),
	}
	for name, c := range codecs {
		b, err := c.Encode(want)
		if err != nil {
			t.Fatalf("%s Encode: %v", name, err)
		}
		got, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s Decode: %v", name, err)
		}
		if got.ID != want.ID || got.Name != want.Name || len(got.Tags) != 2 {
			t.Fatalf("%s round trip: got %+v", name, got)
		}
	}
}

func TestLimitCodec(t *testing.T) {
	lc := Limit[string]{Inner: String{}, MaxDecode: 4}
	if _, err := lc.Decode([]byte("12345")); err == nil {
		t.Fatal("oversized payload should fail")
	}
	s, err := lc.Decode([]byte("1234"))
	if err != nil || s != "1234" {
		t.Fatalf("at the limit: %q %v", s, err)
	}
	// Encode is not limited.
	if _, err := lc.Encode(strings.Repeat("x", 100)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}

func TestIdentityCodecs(t *testing.T) {
	in := []byte{1, 2, 3}
	if out, _ := (Bytes{}).Encode(in); &out[0] != &in[0] {
		t.Fatal("Bytes.Encode should be identity")
	}
	s, err := (String{}).Decode([]byte("hi"))
	if err != nil || s != "hi" {
		t.Fatalf("String.Decode: %q %v", s, err)
	}
}
