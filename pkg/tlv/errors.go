package tlv

import "errors"

// Decoding failures are reported through these sentinel values so callers
// can classify them with errors.Is. Returned errors carry positional
// context wrapped around the sentinel.
var (
	// ErrTruncated signals that fewer bytes were available than a
	// structural element (tag, length or value) requires.
	ErrTruncated = errors.New("truncated input")

	// ErrUnsupportedTagFormat signals a tag-number encoding longer than
	// the 2-byte form used by ISO 7816-4 card data.
	ErrUnsupportedTagFormat = errors.New("unsupported tag format")

	// ErrUnsupportedLengthForm signals an indefinite length (0x80) or a
	// length-of-length greater than 4 bytes.
	ErrUnsupportedLengthForm = errors.New("unsupported length form")

	// ErrTrailingGarbage signals leftover bytes that do not form a
	// complete TLV after a full decode.
	ErrTrailingGarbage = errors.New("trailing garbage")

	// ErrNestingTooDeep signals that constructed-tag recursion exceeded
	// MaxDepth.
	ErrNestingTooDeep = errors.New("nesting too deep")
)
