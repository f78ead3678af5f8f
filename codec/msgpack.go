package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec backed by vmihailenco/msgpack/v5, the closest widely
// deployed relative of the poculum format. The zero value is ready to use.
//
// Unlike Poculum, msgpack encoding of Go maps is not canonical: iteration
// order leaks into the bytes. Use it behind this seam for interop and
// comparison, not for content addressing.
type Msgpack[V any] struct{}

var _ Codec[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
