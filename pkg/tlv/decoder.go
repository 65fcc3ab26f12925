// Package tlv implements a BER-TLV (Basic Encoding Rules Tag-Length-Value)
// decoder for data structures returned by ISO 7816-4 smart cards.
//
// The decoder is written for untrusted input: every read is bounded by the
// source buffer, constructed values are re-parsed on a cursor scoped to
// exactly their declared length, and recursion is capped by MaxDepth.
// Each decoded element consumes at least two bytes, so a full decode is
// strictly bounded by the input size.
package tlv

import (
	"errors"
	"fmt"
)

// MaxDepth caps constructed-tag recursion. Genuine card data nests a
// handful of levels at most; anything deeper is treated as hostile.
const MaxDepth = 32

// Node is one decoded TLV element. For constructed tags, Value holds the
// raw encoding of the children and Children holds their decoded form.
// Nodes are built in a single pass and not modified afterwards.
type Node struct {
	Tag      Tag
	Value    []byte
	Children []Node
}

// Decode parses data as a sequence of sibling TLV elements, consuming the
// whole buffer. Empty input yields an empty sequence. Leftover bytes that
// do not form a complete element fail with ErrTrailingGarbage.
func Decode(data []byte) ([]Node, error) {
	return decodeSiblings(NewCursor(data), 0)
}

// DecodeOne parses exactly the next TLV element from data and returns it
// together with the unconsumed remainder.
func DecodeOne(data []byte) (Node, []byte, error) {
	cur := NewCursor(data)
	node, err := decodeNode(cur, 0)
	if err != nil {
		return Node{}, nil, err
	}
	return node, data[cur.Offset():], nil
}

func decodeSiblings(cur *Cursor, depth int) ([]Node, error) {
	nodes := []Node{}
	for cur.Remaining() > 0 {
		start := cur.Offset()

		node, err := decodeNode(cur, depth)
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				// The final element is only partially present.
				return nil, fmt.Errorf("partial TLV at offset %d: %w: %w", start, ErrTrailingGarbage, err)
			}
			return nil, err
		}

		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeNode(cur *Cursor, depth int) (Node, error) {
	tag, err := decodeTag(cur)
	if err != nil {
		return Node{}, err
	}

	length, err := decodeLength(cur)
	if err != nil {
		return Node{}, fmt.Errorf("tag %s: %w", tag, err)
	}

	value, err := cur.ReadExact(length)
	if err != nil {
		return Node{}, fmt.Errorf("tag %s value: %w", tag, err)
	}

	node := Node{Tag: tag, Value: value}

	if tag.Constructed {
		if depth+1 > MaxDepth {
			return Node{}, fmt.Errorf("tag %s nested %d levels deep: %w", tag, depth+1, ErrNestingTooDeep)
		}
		// The children get a cursor over the declared value only, so a
		// malformed inner element can never cross a sibling boundary.
		children, err := decodeSiblings(NewCursor(value), depth+1)
		if err != nil {
			return Node{}, fmt.Errorf("tag %s children: %w", tag, err)
		}
		node.Children = children
	}

	return node, nil
}

// Find returns the first sibling carrying the given tag (as a big-endian
// integer, e.g. 0x9F7F) and whether one was found.
func Find(nodes []Node, tag uint16) (Node, bool) {
	for _, n := range nodes {
		if n.Tag.Uint() == tag {
			return n, true
		}
	}
	return Node{}, false
}
