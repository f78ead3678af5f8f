package poculum

import "testing"

func benchValue() Value {
	return Map(
		E("id", Uint(982451653)),
		E("name", String("poculum benchmark document")),
		E("ratio", Float(0.6180339887)),
		E("deleted", Bool(false)),
		E("tags", List(String("alpha"), String("beta"), String("gamma"))),
		E("blob", Bytes(make([]byte, 64))),
		E("nested", Map(
			E("offsets", List(Uint(1), Uint(300), Uint(70000), Int(-12))),
		)),
	)
}

func BenchmarkEncode(b *testing.B) {
	v := benchValue()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, err := Encode(benchValue())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}
