package poculum

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Encode returns the canonical encoding of v: for every variant the
// narrowest size class whose range contains the magnitude or length. No
// partial output is returned on failure.
//
// Strings must be valid UTF-8; Encode rejects them otherwise so that every
// buffer it produces decodes.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(encodedSize(v))
	if err := encodeValue(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	switch v.kind {
	case KindNull:
		buf.WriteByte(tagNull)
		return nil
	case KindUint:
		encodeUint(buf, v.num)
		return nil
	case KindInt:
		encodeInt(buf, int64(v.num))
		return nil
	case KindFloat:
		var u8 [8]byte
		buf.WriteByte(tagFloat64)
		binary.BigEndian.PutUint64(u8[:], v.num)
		buf.Write(u8[:])
		return nil
	case KindString:
		return encodeString(buf, v.str)
	case KindBytes:
		return encodeBytes(buf, v.raw)
	case KindList:
		if err := encodeCount(buf, tagFixList, tagList16, len(v.list)); err != nil {
			return fmt.Errorf("%w: list count %d", ErrOutOfRange, len(v.list))
		}
		for _, e := range v.list {
			if err := encodeValue(buf, e, depth+1); err != nil {
				return err
			}
		}
		return nil
	case KindMap:
		if err := encodeCount(buf, tagFixMap, tagMap16, len(v.ents)); err != nil {
			return fmt.Errorf("%w: map count %d", ErrOutOfRange, len(v.ents))
		}
		for _, e := range v.ents {
			if err := encodeString(buf, e.Key); err != nil {
				return err
			}
			if err := encodeValue(buf, e.Value, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	// Only reachable through a Value built outside the constructors.
	return fmt.Errorf("%w: %v", ErrUnsupportedType, v.kind)
}

func encodeUint(buf *bytes.Buffer, u uint64) {
	var s [8]byte
	switch {
	case u <= max8:
		buf.WriteByte(tagUint8)
		buf.WriteByte(byte(u))
	case u <= max16:
		buf.WriteByte(tagUint16)
		binary.BigEndian.PutUint16(s[:2], uint16(u))
		buf.Write(s[:2])
	case u <= max32:
		buf.WriteByte(tagUint32)
		binary.BigEndian.PutUint32(s[:4], uint32(u))
		buf.Write(s[:4])
	default:
		buf.WriteByte(tagUint64)
		binary.BigEndian.PutUint64(s[:], u)
		buf.Write(s[:])
	}
}

// encodeInt handles strictly negative integers; non-negative ones never
// reach it (the Int constructor folds them to the Uint kind).
func encodeInt(buf *bytes.Buffer, i int64) {
	var s [8]byte
	switch {
	case i >= math.MinInt8:
		buf.WriteByte(tagInt8)
		buf.WriteByte(byte(i))
	case i >= math.MinInt16:
		buf.WriteByte(tagInt16)
		binary.BigEndian.PutUint16(s[:2], uint16(i))
		buf.Write(s[:2])
	case i >= math.MinInt32:
		buf.WriteByte(tagInt32)
		binary.BigEndian.PutUint32(s[:4], uint32(i))
		buf.Write(s[:4])
	default:
		buf.WriteByte(tagInt64)
		binary.BigEndian.PutUint64(s[:], uint64(i))
		buf.Write(s[:])
	}
}

func encodeString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
	}
	var u4 [4]byte
	n := len(s)
	switch {
	case n <= fixMax:
		buf.WriteByte(tagFixStr | byte(n))
	case n <= max16:
		buf.WriteByte(tagStr16)
		binary.BigEndian.PutUint16(u4[:2], uint16(n))
		buf.Write(u4[:2])
	case n <= max32:
		buf.WriteByte(tagStr32)
		binary.BigEndian.PutUint32(u4[:], uint32(n))
		buf.Write(u4[:])
	default:
		return fmt.Errorf("%w: string length %d", ErrOutOfRange, n)
	}
	buf.WriteString(s)
	return nil
}

func encodeBytes(buf *bytes.Buffer, b []byte) error {
	var u2 [2]byte
	n := len(b)
	switch {
	case n <= max8:
		buf.WriteByte(tagBytes8)
		buf.WriteByte(byte(n))
	case n <= max16:
		buf.WriteByte(tagBytes16)
		binary.BigEndian.PutUint16(u2[:], uint16(n))
		buf.Write(u2[:])
	default:
		return fmt.Errorf("%w: bytes length %d", ErrOutOfRange, n)
	}
	buf.Write(b)
	return nil
}

// encodeCount writes the header of a list or map: the fix tag with the
// count in the low nibble when it fits, the 16-bit tag otherwise.
func encodeCount(buf *bytes.Buffer, fixTag, tag16 byte, n int) error {
	switch {
	case n <= fixMax:
		buf.WriteByte(fixTag | byte(n))
	case n <= max16:
		var u2 [2]byte
		buf.WriteByte(tag16)
		binary.BigEndian.PutUint16(u2[:], uint16(n))
		buf.Write(u2[:])
	default:
		return ErrOutOfRange
	}
	return nil
}

// encodedSize returns the exact byte size of the canonical encoding, used
// to pre-grow the output buffer. Values a size class cannot hold contribute
// a best-effort size; Encode reports the error.
func encodedSize(v Value) int {
	switch v.kind {
	case KindNull:
		return 1
	case KindUint:
		return 1 + uintWidth(v.num)
	case KindInt:
		return 1 + intWidth(int64(v.num))
	case KindFloat:
		return 1 + 8
	case KindString:
		return headSize(len(v.str)) + len(v.str)
	case KindBytes:
		n := len(v.raw)
		if n <= max8 {
			return 2 + n
		}
		return 3 + n
	case KindList:
		total := headSize(len(v.list))
		for _, e := range v.list {
			total += encodedSize(e)
		}
		return total
	case KindMap:
		total := headSize(len(v.ents))
		for _, e := range v.ents {
			total += headSize(len(e.Key)) + len(e.Key) + encodedSize(e.Value)
		}
		return total
	}
	return 1
}

func uintWidth(u uint64) int {
	switch {
	case u <= max8:
		return 1
	case u <= max16:
		return 2
	case u <= max32:
		return 4
	}
	return 8
}

func intWidth(i int64) int {
	switch {
	case i >= math.MinInt8:
		return 1
	case i >= math.MinInt16:
		return 2
	case i >= math.MinInt32:
		return 4
	}
	return 8
}

// headSize is the header size (tag plus length field) for the string, list,
// and map families, which share the 15 / 0xFFFF boundaries.
func headSize(n int) int {
	switch {
	case n <= fixMax:
		return 1
	case n <= max16:
		return 3
	}
	return 5
}
