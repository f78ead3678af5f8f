package codec

import "google.golang.org/protobuf/proto"

// Protobuf is a Codec for protocol buffer messages. Decode needs to
// allocate a fresh message, so the codec requires a constructor for the
// concrete type T; build with NewProtobuf.
//
// Example:
//
//	pb := codec.NewProtobuf(func() *mypb.Record { return &mypb.Record{} })
type Protobuf[T proto.Message] struct {
	newMsg func() T
}

// NewProtobuf constructs a Protobuf codec for message type T.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{newMsg: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.newMsg()
	err := proto.Unmarshal(b, m)
	return m, err
}
