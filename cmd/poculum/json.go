package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	poculum "github.com/shinyes/poculum-go"
)

// parseJSON converts one JSON document to a poculum value. It walks the
// token stream rather than unmarshaling into a Go map, so object key order
// is preserved in the resulting map entries.
func parseJSON(r io.Reader) (poculum.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := parseJSONValue(dec)
	if err != nil {
		return poculum.Value{}, err
	}
	if dec.More() {
		return poculum.Value{}, fmt.Errorf("trailing content after JSON document")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (poculum.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return poculum.Value{}, err
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *json.Decoder, tok json.Token) (poculum.Value, error) {
	switch t := tok.(type) {
	case nil:
		return poculum.Null(), nil
	case bool:
		return poculum.Bool(t), nil
	case string:
		return poculum.String(t), nil
	case json.Number:
		return parseJSONNumber(t)
	case json.Delim:
		switch t {
		case '[':
			var vs []poculum.Value
			for dec.More() {
				v, err := parseJSONValue(dec)
				if err != nil {
					return poculum.Value{}, err
				}
				vs = append(vs, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return poculum.Value{}, err
			}
			return poculum.List(vs...), nil
		case '{':
			var es []poculum.Entry
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return poculum.Value{}, err
				}
				key, ok := ktok.(string)
				if !ok {
					return poculum.Value{}, fmt.Errorf("object key is not a string: %v", ktok)
				}
				v, err := parseJSONValue(dec)
				if err != nil {
					return poculum.Value{}, err
				}
				es = append(es, poculum.E(key, v))
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return poculum.Value{}, err
			}
			return poculum.Map(es...), nil
		}
	}
	return poculum.Value{}, fmt.Errorf("unexpected JSON token: %v", tok)
}

func parseJSONNumber(n json.Number) (poculum.Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return poculum.Int(i), nil
		}
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return poculum.Uint(u), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return poculum.Value{}, fmt.Errorf("bad number %q: %w", n.String(), err)
	}
	return poculum.Float(f), nil
}

// renderJSON renders a poculum value as a JSON document. Map entry order
// is kept, which is why this walks the value instead of going through
// map[string]any. Bytes values have no JSON counterpart and render as an
// object {"$hex": "…"}.
func renderJSON(v poculum.Value) (string, error) {
	var b strings.Builder
	if err := writeJSONValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeJSONValue(b *strings.Builder, v poculum.Value) error {
	switch v.Kind() {
	case poculum.KindNull:
		b.WriteString("null")
	case poculum.KindUint:
		u, _ := v.Uint64()
		b.WriteString(strconv.FormatUint(u, 10))
	case poculum.KindInt:
		i, _ := v.Int64()
		b.WriteString(strconv.FormatInt(i, 10))
	case poculum.KindFloat:
		f, _ := v.Float64()
		out, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("float %v has no JSON form: %w", f, err)
		}
		b.Write(out)
	case poculum.KindString:
		s, _ := v.Text()
		out, err := json.Marshal(s)
		if err != nil {
			return err
		}
		b.Write(out)
	case poculum.KindBytes:
		raw, _ := v.Raw()
		b.WriteString(`{"$hex": "`)
		b.WriteString(hex.EncodeToString(raw))
		b.WriteString(`"}`)
	case poculum.KindList:
		items, _ := v.Items()
		b.WriteByte('[')
		for i, e := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeJSONValue(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case poculum.KindMap:
		es, _ := v.Entries()
		b.WriteByte('{')
		for i, e := range es {
			if i > 0 {
				b.WriteString(", ")
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteString(": ")
			if err := writeJSONValue(b, e.Value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	}
	return nil
}

// dumpValue writes one line per value: nesting, wire tag of the canonical
// encoding, and a payload summary.
func dumpValue(b *strings.Builder, v poculum.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	enc, err := poculum.Encode(v)
	tag := "??"
	if err == nil && len(enc) > 0 {
		tag = fmt.Sprintf("%02x", enc[0])
	}
	switch v.Kind() {
	case poculum.KindList:
		fmt.Fprintf(b, "%s[%s] list(%d)\n", indent, tag, v.Len())
		items, _ := v.Items()
		for _, e := range items {
			dumpValue(b, e, depth+1)
		}
	case poculum.KindMap:
		fmt.Fprintf(b, "%s[%s] map(%d)\n", indent, tag, v.Len())
		es, _ := v.Entries()
		for _, e := range es {
			fmt.Fprintf(b, "%s  %q:\n", indent, e.Key)
			dumpValue(b, e.Value, depth+2)
		}
	default:
		fmt.Fprintf(b, "%s[%s] %s %s\n", indent, tag, v.Kind(), v.String())
	}
}
