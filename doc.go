// Package poculum implements the poculum binary serialization format: a
// compact, self-describing encoding for dynamically-typed values in the
// family of MessagePack and CBOR, designed for bit-for-bit cross-language
// interoperability.
//
// A value is one of nine variants: null, unsigned integer, negative integer,
// 64-bit float, UTF-8 string, raw bytes, list, or ordered string-keyed map
// (booleans share the 8-bit unsigned integer tag and therefore decode as the
// integers 0 and 1). An encoding is exactly one value with no framing, magic,
// or checksum: a tag byte, an optional big-endian length or width field, and
// a payload; composite values nest their children directly.
//
// Encoding choices:
//   - All multi-byte integer and length fields are big-endian.
//   - Encode is canonical: it always picks the narrowest size class whose
//     range contains the value's magnitude or length, so two encoders given
//     the same value produce identical bytes.
//   - Decode accepts any size class that is valid for the tag, including
//     non-canonical ones; re-encoding a decoded value yields canonical form.
//   - Maps are ordered sequences of (string, value) entries. Entry order
//     survives a round trip. Duplicate keys are preserved, not merged.
//   - Decoders are written for bounds safety: every slice operation is
//     preceded by a length check; malformed input returns an error carrying
//     the byte offset, never a panic.
//
// Strict framing:
//   - Decode requires the root value to consume the entire buffer. Trailing
//     bytes fail with ErrTrailingBytes.
package poculum
