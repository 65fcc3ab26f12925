// Package iso7816 implements the minimal APDU (Application Protocol Data
// Unit) plumbing needed to retrieve data objects from a smart card:
// short-length command encoding, response splitting, status-word analysis
// and the GET DATA / GET RESPONSE flow.
package iso7816

import (
	"bytes"
	"fmt"
)

// Short-length APDU limits according to ISO 7816-3. Data-object retrieval
// never needs the extended encoding.
const (
	// MaxShortLc is the maximum data length (Nc) encodable in one byte.
	MaxShortLc = 255

	// MaxShortLe is the maximum expected response length (Ne); 0x00
	// encodes 256.
	MaxShortLe = 256
)

// CommandAPDU represents a command sent to the card (C-APDU).
type CommandAPDU struct {
	Cla, Ins, P1, P2 byte
	Data             []byte
	Ne               int // Expected response length (0 means none)
}

// Bytes encodes the command in the short format: Header (CLA INS P1 P2),
// optional Lc + Data, optional Le.
func (c *CommandAPDU) Bytes() ([]byte, error) {
	if len(c.Data) > MaxShortLc {
		return nil, fmt.Errorf("data length %d exceeds short Lc limit %d", len(c.Data), MaxShortLc)
	}
	if c.Ne > MaxShortLe {
		return nil, fmt.Errorf("expected length %d exceeds short Le limit %d", c.Ne, MaxShortLe)
	}

	buf := new(bytes.Buffer)
	buf.WriteByte(c.Cla)
	buf.WriteByte(c.Ins)
	buf.WriteByte(c.P1)
	buf.WriteByte(c.P2)

	if len(c.Data) > 0 {
		buf.WriteByte(byte(len(c.Data)))
		buf.Write(c.Data)
	}

	if c.Ne > 0 {
		if c.Ne == MaxShortLe {
			buf.WriteByte(0x00) // 0x00 represents 256
		} else {
			buf.WriteByte(byte(c.Ne))
		}
	}

	return buf.Bytes(), nil
}

// String returns a readable representation of the command meta-data.
func (c *CommandAPDU) String() string {
	return fmt.Sprintf("CLA: %02X, INS: %02X, P1: %02X, P2: %02X | Lc: %d | Le: %d",
		c.Cla, c.Ins, c.P1, c.P2, len(c.Data), c.Ne)
}

// ResponseAPDU represents the reply from the card (R-APDU).
type ResponseAPDU struct {
	Data   []byte
	Status StatusWord
}

// ParseResponseAPDU parses raw bytes received from the card into a
// ResponseAPDU. The input must contain at least 2 bytes (SW1, SW2).
func ParseResponseAPDU(raw []byte) (*ResponseAPDU, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("response too short: length %d", len(raw))
	}

	indexSW1 := len(raw) - 2
	return &ResponseAPDU{
		Data:   raw[:indexSW1],
		Status: NewStatusWord(raw[indexSW1], raw[indexSW1+1]),
	}, nil
}

// String returns a readable representation of the response.
func (r *ResponseAPDU) String() string {
	return fmt.Sprintf("Data (%d bytes) | Status: %s", len(r.Data), r.Status.Verbose())
}
