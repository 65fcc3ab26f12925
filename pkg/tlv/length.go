package tlv

import "fmt"

// BER length field according to ISO/IEC 7816-4:
//
//	Short form:  one byte 0x00-0x7F, the length itself.
//	Long form:   first byte 0x80|k, followed by k big-endian length bytes.
//
// k is capped at 4 (lengths beyond 32 bits cannot occur in card
// responses), and k = 0 (the indefinite-length marker 0x80) is rejected
// because card data is always a complete, self-contained buffer.
const maxLengthOfLength = 4

// decodeLength reads one BER length field from the cursor.
func decodeLength(cur *Cursor) (int, error) {
	l0, err := cur.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("length: %w", err)
	}

	if l0 <= 0x7F {
		return int(l0), nil
	}

	k := int(l0 & 0x7F)
	if k == 0 {
		return 0, fmt.Errorf("indefinite length 0x80: %w", ErrUnsupportedLengthForm)
	}
	if k > maxLengthOfLength {
		return 0, fmt.Errorf("length of length %d exceeds %d: %w", k, maxLengthOfLength, ErrUnsupportedLengthForm)
	}

	raw, err := cur.ReadExact(k)
	if err != nil {
		return 0, fmt.Errorf("length: %w", err)
	}

	length := 0
	for _, b := range raw {
		length = length<<8 | int(b)
	}
	return length, nil
}
