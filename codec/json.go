package codec

import "encoding/json"

// JSON is a Codec backed by encoding/json. The zero value is ready to use
// and respects `json` struct tags. Interface-typed fields decode to the
// default concrete types (numbers become float64) unless the value type
// provides custom unmarshaling.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
