package codec

import (
	"testing"

	poculum "github.com/shinyes/poculum-go"
)

// The same document expressed for each codec, so the formats can be
// compared on encode/decode cost and output size.

type benchDoc struct {
	ID      uint64   `json:"id" msgpack:"id"`
	Name    string   `json:"name" msgpack:"name"`
	Ratio   float64  `json:"ratio" msgpack:"ratio"`
	Deleted bool     `json:"deleted" msgpack:"deleted"`
	Tags    []string `json:"tags" msgpack:"tags"`
	Offsets []int64  `json:"offsets" msgpack:"offsets"`
}

func benchStruct() benchDoc {
	return benchDoc{
		ID:      982451653,
		Name:    "poculum benchmark document",
		Ratio:   0.6180339887,
		Tags:    []string{"alpha", "beta", "gamma"},
		Offsets: []int64{1, 300, 70000, -12},
	}
}

func benchPoculum() poculum.Value {
	return poculum.Map(
		poculum.E("id", poculum.Uint(982451653)),
		poculum.E("name", poculum.String("poculum benchmark document")),
		poculum.E("ratio", poculum.Float(0.6180339887)),
		poculum.E("deleted", poculum.Bool(false)),
		poculum.E("tags", poculum.List(
			poculum.String("alpha"), poculum.String("beta"), poculum.String("gamma"))),
		poculum.E("offsets", poculum.List(
			poculum.Uint(1), poculum.Uint(300), poculum.Uint(70000), poculum.Int(-12))),
	)
}

func BenchmarkEncodePoculum(b *testing.B) {
	c := Poculum{}
	v := benchPoculum()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeCBOR(b *testing.B) {
	c := MustCBOR[benchDoc](true)
	v := benchStruct()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeMsgpack(b *testing.B) {
	c := Msgpack[benchDoc]{}
	v := benchStruct()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeJSON(b *testing.B) {
	c := JSON[benchDoc]{}
	v := benchStruct()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodePoculum(b *testing.B) {
	c := Poculum{}
	enc, err := c.Encode(benchPoculum())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeCBOR(b *testing.B) {
	c := MustCBOR[benchDoc](true)
	enc, err := c.Encode(benchStruct())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeMsgpack(b *testing.B) {
	c := Msgpack[benchDoc]{}
	enc, err := c.Encode(benchStruct())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeJSON(b *testing.B) {
	c := JSON[benchDoc]{}
	enc, err := c.Encode(benchStruct())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}
