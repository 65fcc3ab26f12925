package tlv

import (
	"fmt"

	"github.com/cardtools/gpinspect/pkg/bits"
)

// Tag byte layout according to ISO/IEC 7816-4:
//
//	b8 b7: class (00 universal, 01 application, 10 context-specific, 11 private)
//	b6:    constructed flag (1 = value contains nested TLVs)
//	b5-b1: tag number; all ones (0x1F) escapes to a second tag byte whose
//	       low 7 bits carry the number.
//
// Card data objects never need more than two tag bytes, so a second byte
// with its continuation bit (b8) set is rejected.

// Class is the tag class carried in the top two bits of the first tag byte.
type Class byte

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// String returns the ISO name of the class.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "Context-specific"
	case ClassPrivate:
		return "Private"
	default:
		return fmt.Sprintf("Class(%d)", byte(c))
	}
}

// Tag identifies a BER-TLV data element.
type Tag struct {
	Class       Class
	Constructed bool
	Number      uint16

	raw [2]byte
	n   int // encoded size, 1 or 2
}

// twoByteMarker in the tag-number subfield of the first byte signals a
// second tag byte.
const twoByteMarker = 0x1F

// decodeTag reads one tag (1 or 2 bytes) from the cursor.
func decodeTag(cur *Cursor) (Tag, error) {
	b0, err := cur.ReadByte()
	if err != nil {
		return Tag{}, fmt.Errorf("tag: %w", err)
	}

	t := Tag{
		Class:       Class(bits.GetRange(b0, 8, 7)),
		Constructed: bits.IsSet(b0, 6),
		Number:      uint16(bits.GetRange(b0, 5, 1)),
		raw:         [2]byte{b0},
		n:           1,
	}

	if t.Number != twoByteMarker {
		return t, nil
	}

	b1, err := cur.ReadByte()
	if err != nil {
		return Tag{}, fmt.Errorf("tag continuation: %w", err)
	}
	if bits.IsSet(b1, 8) {
		// A set continuation bit would announce a third tag byte.
		return Tag{}, fmt.Errorf("tag 0x%02X%02X announces more than 2 bytes: %w", b0, b1, ErrUnsupportedTagFormat)
	}

	t.Number = uint16(bits.GetRange(b1, 7, 1))
	t.raw[1] = b1
	t.n = 2
	return t, nil
}

// Bytes returns the encoded tag bytes (1 or 2).
func (t Tag) Bytes() []byte {
	return t.raw[:t.n]
}

// Uint returns the encoded tag as a big-endian integer, e.g. 0x9F7F for
// the two bytes 9F 7F. Convenient for comparing against well-known tags.
func (t Tag) Uint() uint16 {
	if t.n == 2 {
		return uint16(t.raw[0])<<8 | uint16(t.raw[1])
	}
	return uint16(t.raw[0])
}

// String returns the tag bytes in hexadecimal, e.g. "9F7F".
func (t Tag) String() string {
	return fmt.Sprintf("%X", t.Bytes())
}
