package frame

import (
	"bytes"
	"testing"
)

func mustDecode(t *testing.T, b []byte) []byte {
	t.Helper()
	p, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("hello"),
		{0, 1, 2, 3, 255},
	}
	for _, payload := range cases {
		enc := Encode(payload)
		got := mustDecode(t, enc)
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload mismatch: got %x want %x", got, payload)
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := append(Encode([]byte("x")), 0xDE, 0xAD)
	if _, err := Decode(enc); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestCorruptHeaders(t *testing.T) {
	enc := Encode([]byte("abc"))

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := Decode(badMagic); err == nil {
		t.Fatal("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := Decode(badVer); err == nil {
		t.Fatal("expected error on bad version")
	}

	trunc := enc[:len(enc)-1]
	if _, err := Decode(trunc); err == nil {
		t.Fatal("expected error on truncated frame")
	}

	if _, err := Decode(nil); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestChecksumDetectsFlippedPayload(t *testing.T) {
	enc := Encode([]byte("abc"))
	flipped := append([]byte(nil), enc...)
	flipped[len(flipped)-1] ^= 0x01
	if _, err := Decode(flipped); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt on checksum mismatch, got %v", err)
	}
}

func TestZeroCopyPayload(t *testing.T) {
	enc := Encode([]byte("Z"))
	p := mustDecode(t, enc)
	p[0] = 'Q'
	if enc[len(enc)-1] != 'Q' {
		t.Fatal("expected zero-copy slice into the frame buffer")
	}
}
