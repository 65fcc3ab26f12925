package tlv

import "fmt"

// Cursor is a bounded, forward-only view over a byte buffer. It never
// reads past the end of its buffer and never seeks backwards; every read
// either returns the requested bytes or fails with ErrTruncated.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor over data, positioned at the first byte.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining reports the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Offset reports the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// ReadExact returns the next n bytes and advances the position by n.
// It fails with ErrTruncated if fewer than n bytes remain.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read of %d bytes", n)
	}
	if rem := c.Remaining(); rem < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, %d remaining: %w", n, c.pos, rem, ErrTruncated)
	}

	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// ReadByte returns the next byte and advances the position by one.
func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, fmt.Errorf("need 1 byte at offset %d, 0 remaining: %w", c.pos, ErrTruncated)
	}

	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Peek returns the next byte without advancing the position.
func (c *Cursor) Peek() (byte, error) {
	if c.Remaining() < 1 {
		return 0, fmt.Errorf("need 1 byte at offset %d, 0 remaining: %w", c.pos, ErrTruncated)
	}
	return c.data[c.pos], nil
}
