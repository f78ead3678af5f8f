package codec

// Bytes is an identity codec for []byte values: Encode and Decode return
// the input unchanged. Useful when the payload is already serialized and
// only the surrounding plumbing (store framing, size limits) is wanted.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts Go strings to and from raw bytes. No UTF-8 validation is
// performed; use the poculum string variant when validity must be enforced
// on the wire.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
