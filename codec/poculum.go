package codec

import (
	poculum "github.com/shinyes/poculum-go"
)

// Poculum is the Codec for poculum values. The zero value is ready to use.
//
// Encode is canonical (narrowest size class per value) and Decode is strict
// (trailing bytes are rejected), so Poculum is safe for content addressing:
// equal values produce equal bytes.
type Poculum struct{}

var _ Codec[poculum.Value] = Poculum{}

func (Poculum) Encode(v poculum.Value) ([]byte, error) {
	return poculum.Encode(v)
}

func (Poculum) Decode(b []byte) (poculum.Value, error) {
	return poculum.Decode(b)
}
