package poculum

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindUint
	KindInt
	KindFloat
	KindString
	KindBytes
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNull:   "null",
	KindUint:   "uint",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindBytes:  "bytes",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a dynamically-typed poculum value: a tagged union over the eight
// kinds above. Booleans have no kind of their own; Bool stores them as the
// Uint values 1 and 0. The zero Value is Null. Values are plain
// data; copying one shares any underlying byte slice, list, or entry slice.
type Value struct {
	kind Kind
	num  uint64 // Uint magnitude, Int two's-complement bits, Float IEEE-754 bits
	str  string
	raw  []byte
	list []Value
	ents []Entry
}

// Entry is one key/value pair of a map. Maps are ordered: entries keep the
// order in which they were built or decoded, duplicates included.
type Entry struct {
	Key   string
	Value Value
}

// E is shorthand for building map entries in literals.
func E(key string, v Value) Entry { return Entry{Key: key, Value: v} }

func Null() Value { return Value{} }

// Bool returns the value booleans carry on the wire: Uint 1 for true and
// Uint 0 for false. The format shares tag 0x01 between booleans and 8-bit
// unsigned integers, so booleans round-trip as integers.
func Bool(b bool) Value {
	if b {
		return Uint(1)
	}
	return Uint(0)
}

func Uint(u uint64) Value { return Value{kind: KindUint, num: u} }

// Int returns an integer value. Non-negative arguments fold to the Uint
// kind: the Int variant holds strictly negative integers, which keeps the
// encoding a function of the integer rather than of how it was built.
func Int(i int64) Value {
	if i >= 0 {
		return Uint(uint64(i))
	}
	return Value{kind: KindInt, num: uint64(i)}
}

func Float(f float64) Value { return Value{kind: KindFloat, num: math.Float64bits(f)} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Bytes(b []byte) Value { return Value{kind: KindBytes, raw: b} }

func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

func Map(es ...Entry) Value { return Value{kind: KindMap, ents: es} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Uint64 returns the value as a uint64. ok is false unless v is a
// non-negative integer.
func (v Value) Uint64() (u uint64, ok bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.num, true
}

// Int64 returns the value as an int64. ok is false unless v is an integer
// representable in the int64 range.
func (v Value) Int64() (i int64, ok bool) {
	switch v.kind {
	case KindInt:
		return int64(v.num), true
	case KindUint:
		if v.num > math.MaxInt64 {
			return 0, false
		}
		return int64(v.num), true
	}
	return 0, false
}

// Float64 returns the value as a float64. ok is false unless v is a float.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// Text returns the string payload. ok is false unless v is a string.
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Raw returns the bytes payload. ok is false unless v is a bytes value.
// The returned slice is not copied.
func (v Value) Raw() (b []byte, ok bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.raw, true
}

// Items returns the list elements. ok is false unless v is a list.
func (v Value) Items() (vs []Value, ok bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Entries returns the map entries in order. ok is false unless v is a map.
func (v Value) Entries() (es []Entry, ok bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.ents, true
}

// Len returns the element, entry, or byte-length count for composite and
// length-carrying variants, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.str)
	case KindBytes:
		return len(v.raw)
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.ents)
	}
	return 0
}

// Equal reports structural equality. Maps compare as ordered entry lists;
// floats compare by bit pattern, so NaN equals NaN and +0 differs from -0.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindUint, KindInt, KindFloat:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindBytes:
		return bytes.Equal(v.raw, w.raw)
	case KindList:
		if len(v.list) != len(w.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(w.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.ents) != len(w.ents) {
			return false
		}
		for i := range v.ents {
			if v.ents[i].Key != w.ents[i].Key || !v.ents[i].Value.Equal(w.ents[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v for debugging. The output is not a serialization format.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindUint:
		return strconv.FormatUint(v.num, 10)
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBytes:
		return fmt.Sprintf("bytes(%x)", v.raw)
	case KindList:
		var b bytes.Buffer
		b.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	case KindMap:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, e := range v.ents {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(e.Key))
			b.WriteString(": ")
			b.WriteString(e.Value.String())
		}
		b.WriteByte('}')
		return b.String()
	}
	return v.kind.String()
}

// FromGo converts a native Go value to a Value. Supported inputs: nil, bool,
// all fixed-width and platform int/uint types, float32/float64, string,
// []byte, []any, []Value, []Entry, map[string]any, and Value itself.
// map[string]any entries are ordered by sorted key, since Go map iteration
// order would make the encoding nondeterministic; callers that care about
// entry order should pass []Entry. Anything else fails with
// ErrUnsupportedType.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case []byte:
		return Bytes(t), nil
	case []Value:
		return List(t...), nil
	case []Entry:
		return Map(t...), nil
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			vs[i] = v
		}
		return List(vs...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		es := make([]Entry, 0, len(t))
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			es = append(es, Entry{Key: k, Value: v})
		}
		return Map(es...), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

// Interface converts v back to a native Go value: nil, uint64, int64,
// float64, string, []byte, []any, or []Entry. Maps stay []Entry so that
// entry order is not lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindUint:
		return v.num
	case KindInt:
		return int64(v.num)
	case KindFloat:
		return math.Float64frombits(v.num)
	case KindString:
		return v.str
	case KindBytes:
		return v.raw
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		return v.ents
	}
	return nil
}

// Marshal converts x with FromGo and encodes the result.
func Marshal(x any) ([]byte, error) {
	v, err := FromGo(x)
	if err != nil {
		return nil, err
	}
	return Encode(v)
}
