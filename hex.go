package poculum

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeHex encodes v and renders the result as lowercase hex, for
// transport through text-only channels.
func EncodeHex(v Value) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// DecodeHex decodes a hex string produced by EncodeHex or a foreign
// encoder. ASCII whitespace between digit pairs is ignored.
func DecodeHex(s string) (Value, error) {
	fields := strings.Fields(s)
	b, err := hex.DecodeString(strings.Join(fields, ""))
	if err != nil {
		return Value{}, fmt.Errorf("poculum: bad hex input: %w", err)
	}
	return Decode(b)
}
