package iso7816

import "fmt"

// The Client drives the physical connection and absorbs the ISO 7816-3
// transport behaviors that T=0 cards expose to the application layer:
//
// 1. "61 XX" (Response Available): the card holds XX more bytes; the
//    client automatically issues GET RESPONSE and concatenates the data.
// 2. "6C XX" (Wrong Length): the card rejects the expected length and
//    suggests XX; the client re-sends the command with Le = XX.

// maxContinuations bounds the 61XX/6CXX follow-up loop so a misbehaving
// card cannot keep the client busy forever.
const maxContinuations = 16

// Transmitter abstracts the physical card connection.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Client manages the high-level communication with the card.
type Client struct {
	Card Transmitter
}

// NewClient creates a new Client instance.
func NewClient(card Transmitter) *Client {
	return &Client{Card: card}
}

// Send transmits a command, resolves 61XX/6CXX continuations and returns
// the assembled response.
func (c *Client) Send(cmd *CommandAPDU) (*ResponseAPDU, error) {
	resp, err := c.transmit(cmd)
	if err != nil {
		return nil, err
	}

	data := resp.Data

	for i := 0; i < maxContinuations; i++ {
		switch {
		case resp.Status.IsWrongLength():
			retry := *cmd
			retry.Ne = int(resp.Status.SW2())
			if resp, err = c.transmit(&retry); err != nil {
				return nil, err
			}
			data = resp.Data

		case resp.Status.HasMoreData():
			ne := int(resp.Status.SW2())
			if ne == 0 {
				ne = MaxShortLe
			}
			if resp, err = c.transmit(GetResponse(cmd.Cla, ne)); err != nil {
				return nil, err
			}
			data = append(data, resp.Data...)

		default:
			return &ResponseAPDU{Data: data, Status: resp.Status}, nil
		}
	}

	return nil, fmt.Errorf("card kept requesting continuations after %d rounds", maxContinuations)
}

func (c *Client) transmit(cmd *CommandAPDU) (*ResponseAPDU, error) {
	rawCmd, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding error: %w", err)
	}

	rawResp, err := c.Card.Transmit(rawCmd)
	if err != nil {
		return nil, fmt.Errorf("transmission error: %w", err)
	}

	return ParseResponseAPDU(rawResp)
}
