package tlv

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursor_ReadExact(t *testing.T) {
	cur := NewCursor(Hex("AA BB CC DD"))

	got, err := cur.ReadExact(3)
	if err != nil {
		t.Fatalf("ReadExact(3) failed: %v", err)
	}
	if !bytes.Equal(got, Hex("AA BB CC")) {
		t.Errorf("ReadExact(3) = %X, want AABBCC", got)
	}
	if cur.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", cur.Remaining())
	}

	if _, err := cur.ReadExact(2); !errors.Is(err, ErrTruncated) {
		t.Errorf("ReadExact past end: err = %v, want ErrTruncated", err)
	}
	// A failed read must not consume anything.
	if cur.Remaining() != 1 {
		t.Errorf("Remaining() after failed read = %d, want 1", cur.Remaining())
	}

	if _, err := cur.ReadExact(-1); err == nil {
		t.Error("ReadExact(-1) should fail")
	}
}

func TestCursor_ReadExactZero(t *testing.T) {
	cur := NewCursor(nil)

	got, err := cur.ReadExact(0)
	if err != nil {
		t.Fatalf("ReadExact(0) on empty cursor failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadExact(0) = %X, want empty", got)
	}
}

func TestCursor_ReadByte(t *testing.T) {
	cur := NewCursor(Hex("9F"))

	b, err := cur.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte() failed: %v", err)
	}
	if b != 0x9F {
		t.Errorf("ReadByte() = %02X, want 9F", b)
	}

	if _, err := cur.ReadByte(); !errors.Is(err, ErrTruncated) {
		t.Errorf("ReadByte on empty cursor: err = %v, want ErrTruncated", err)
	}
}

func TestCursor_Peek(t *testing.T) {
	cur := NewCursor(Hex("6F 00"))

	b, err := cur.Peek()
	if err != nil {
		t.Fatalf("Peek() failed: %v", err)
	}
	if b != 0x6F {
		t.Errorf("Peek() = %02X, want 6F", b)
	}
	if cur.Remaining() != 2 {
		t.Errorf("Peek() advanced the cursor: Remaining() = %d, want 2", cur.Remaining())
	}

	cur.ReadExact(2)
	if _, err := cur.Peek(); !errors.Is(err, ErrTruncated) {
		t.Errorf("Peek on empty cursor: err = %v, want ErrTruncated", err)
	}
}
