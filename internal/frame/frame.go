// Package frame contains the envelope the store wraps around codec output
// before it reaches a Provider. The codec payload is opaque here; the frame
// only guards it.
//
// Encoding choices:
//   - All integers are big-endian (network byte order).
//   - A 4-byte ASCII magic ("POCM") allows quick format discrimination.
//   - A 1-byte version enables layout changes in place.
//   - An xxhash64 checksum over the payload detects corrupt and foreign
//     writes before the codec ever sees the bytes.
//   - Decode returns a zero-copy subslice of the input for the payload;
//     callers that retain or mutate it past the buffer's lifetime must copy.
//
// Strict framing:
//   - Decode requires the frame to consume the entire buffer (no trailing
//     bytes). Anything malformed returns ErrCorrupt.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

// version is the frame version. Bump only on incompatible layout changes.
const version byte = 1

// header is magic(4) + ver(1) + sum(8) + plen(4).
const header = 4 + 1 + 8 + 4

// ErrCorrupt is returned when a byte slice does not conform to the expected
// structure (bad magic/version/length/checksum).
var ErrCorrupt = errors.New("frame: corrupt entry")

var magic4 = [...]byte{'P', 'O', 'C', 'M'}

// Encode wraps payload in a checksummed frame.
//
// Layout (big-endian):
//
//	magic(4) | ver(1) | xxhash64(payload)(8) | plen(u32) | payload(plen)
func Encode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(header + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u8 [8]byte
	binary.BigEndian.PutUint64(u8[:], xxhash.Sum64(payload))
	buf.Write(u8[:])

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates a frame and returns its payload. The payload is a
// zero-copy subslice of b and must be treated as read-only.
func Decode(b []byte) ([]byte, error) {
	if len(b) < header || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return nil, ErrCorrupt
	}

	sum := binary.BigEndian.Uint64(b[5:13])
	plen := int(binary.BigEndian.Uint32(b[13:17]))
	// no trailing bytes allowed
	if plen < 0 || header+plen != len(b) {
		return nil, ErrCorrupt
	}

	payload := b[header:]
	if xxhash.Sum64(payload) != sum {
		return nil, ErrCorrupt
	}
	return payload, nil
}
