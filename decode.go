package poculum

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Decode parses exactly one value from b. It is strict: input left over
// after the root value fails with ErrTrailingBytes. Decoded strings and
// byte payloads are copied out of b; the caller keeps ownership of the
// input buffer.
//
// Decode never panics on malformed input. Failures are *DecodeError values
// carrying the byte offset; match the kind with errors.Is.
func Decode(b []byte) (Value, error) {
	v, off, err := decodeValue(b, 0, 0)
	if err != nil {
		return Value{}, err
	}
	if off != len(b) {
		return Value{}, &DecodeError{Offset: off, Err: ErrTrailingBytes}
	}
	return v, nil
}

// decodeValue reads one value starting at off and returns it together with
// the offset of the first byte it did not consume. The cursor only moves
// forward; every read is bounds-checked first.
func decodeValue(b []byte, off, depth int) (Value, int, error) {
	if depth > MaxDepth {
		return Value{}, 0, &DecodeError{Offset: off, Err: ErrTooDeep}
	}
	if off >= len(b) {
		return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
	}
	tag := b[off]
	off++

	switch {
	case tag == tagNull:
		return Null(), off, nil

	case tag == tagUint8:
		if off+1 > len(b) {
			return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
		}
		return Uint(uint64(b[off])), off + 1, nil
	case tag == tagUint16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return Uint(u), off, nil
	case tag == tagUint32:
		u, off, err := readUint(b, off, 4)
		if err != nil {
			return Value{}, 0, err
		}
		return Uint(u), off, nil
	case tag == tagUint64:
		u, off, err := readUint(b, off, 8)
		if err != nil {
			return Value{}, 0, err
		}
		return Uint(u), off, nil

	case tag == tagInt8:
		if off+1 > len(b) {
			return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
		}
		return Int(int64(int8(b[off]))), off + 1, nil
	case tag == tagInt16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return Int(int64(int16(u))), off, nil
	case tag == tagInt32:
		u, off, err := readUint(b, off, 4)
		if err != nil {
			return Value{}, 0, err
		}
		return Int(int64(int32(u))), off, nil
	case tag == tagInt64:
		u, off, err := readUint(b, off, 8)
		if err != nil {
			return Value{}, 0, err
		}
		return Int(int64(u)), off, nil

	case tag == tagFloat64:
		u, off, err := readUint(b, off, 8)
		if err != nil {
			return Value{}, 0, err
		}
		return Float(math.Float64frombits(u)), off, nil

	case tag&0xF0 == tagFixStr:
		return decodeString(b, off, int(tag&0x0F))
	case tag == tagStr16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return decodeString(b, off, int(u))
	case tag == tagStr32:
		u, off, err := readUint(b, off, 4)
		if err != nil {
			return Value{}, 0, err
		}
		return decodeString(b, off, int(u))

	case tag&0xF0 == tagFixList:
		return decodeList(b, off, int(tag&0x0F), depth)
	case tag == tagList16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return decodeList(b, off, int(u), depth)

	case tag&0xF0 == tagFixMap:
		return decodeMap(b, off, int(tag&0x0F), depth)
	case tag == tagMap16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return decodeMap(b, off, int(u), depth)

	case tag == tagBytes8:
		if off+1 > len(b) {
			return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
		}
		return decodeBytes(b, off+1, int(b[off]))
	case tag == tagBytes16:
		u, off, err := readUint(b, off, 2)
		if err != nil {
			return Value{}, 0, err
		}
		return decodeBytes(b, off, int(u))
	}

	return Value{}, 0, &DecodeError{Offset: off - 1, Tag: tag, Err: ErrUnknownTag}
}

// readUint reads a width-byte big-endian unsigned field.
func readUint(b []byte, off, width int) (uint64, int, error) {
	if off+width > len(b) {
		return 0, 0, &DecodeError{Offset: off, Err: ErrTruncated}
	}
	var u uint64
	switch width {
	case 2:
		u = uint64(binary.BigEndian.Uint16(b[off : off+2]))
	case 4:
		u = uint64(binary.BigEndian.Uint32(b[off : off+4]))
	default:
		u = binary.BigEndian.Uint64(b[off : off+8])
	}
	return u, off + width, nil
}

func decodeString(b []byte, off, n int) (Value, int, error) {
	if n < 0 || n > len(b)-off {
		return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
	}
	p := b[off : off+n]
	if !utf8.Valid(p) {
		return Value{}, 0, &DecodeError{Offset: off, Err: ErrInvalidUTF8}
	}
	return String(string(p)), off + n, nil
}

func decodeBytes(b []byte, off, n int) (Value, int, error) {
	if n < 0 || n > len(b)-off {
		return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
	}
	out := make([]byte, n)
	copy(out, b[off:off+n])
	return Bytes(out), off + n, nil
}

func decodeList(b []byte, off, count, depth int) (Value, int, error) {
	// Cap the preallocation by what the buffer could plausibly hold (one
	// byte per element at minimum) so a bogus count cannot force a huge
	// allocation before the first truncation error.
	capHint := count
	if rem := len(b) - off; capHint > rem {
		capHint = rem
	}
	vs := make([]Value, 0, capHint)
	for i := 0; i < count; i++ {
		v, noff, err := decodeValue(b, off, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		vs = append(vs, v)
		off = noff
	}
	return List(vs...), off, nil
}

func decodeMap(b []byte, off, count, depth int) (Value, int, error) {
	// Minimum entry footprint: one key tag byte plus one value tag byte.
	capHint := count
	if rem := (len(b) - off) / 2; capHint > rem {
		capHint = rem
	}
	es := make([]Entry, 0, capHint)
	for i := 0; i < count; i++ {
		if off >= len(b) {
			return Value{}, 0, &DecodeError{Offset: off, Err: ErrTruncated}
		}
		if !isStringTag(b[off]) {
			return Value{}, 0, &DecodeError{Offset: off, Tag: b[off], Err: ErrInvalidKey}
		}
		k, noff, err := decodeValue(b, off, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		off = noff
		v, noff, err := decodeValue(b, off, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		off = noff
		es = append(es, Entry{Key: k.str, Value: v})
	}
	return Map(es...), off, nil
}
