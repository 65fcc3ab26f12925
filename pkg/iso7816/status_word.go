package iso7816

import "fmt"

// StatusWord represents the two-byte status response (SW1-SW2) returned
// by the smart card.
//
// Most values are static (0x9000 = success), but two ranges are dynamic:
// '61XX' announces XX more response bytes (retrieved with GET RESPONSE)
// and '6CXX' announces the correct Le for a re-send.
type StatusWord uint16

// Status Word codes relevant to data-object retrieval (ISO/IEC 7816-4).
const (
	SW_NO_ERROR               StatusWord = 0x9000
	SW_ERR_WRONG_LENGTH       StatusWord = 0x6700
	SW_ERR_FUNC_NOT_SUPPORTED StatusWord = 0x6A81
	SW_ERR_FILE_NOT_FOUND     StatusWord = 0x6A82
	SW_ERR_REF_DATA_NOT_FOUND StatusWord = 0x6A88
	SW_ERR_INS_NOT_SUPPORTED  StatusWord = 0x6D00
	SW_ERR_CLA_NOT_SUPPORTED  StatusWord = 0x6E00
)

// NewStatusWord creates a StatusWord instance from two separate bytes.
func NewStatusWord(sw1, sw2 byte) StatusWord {
	return StatusWord(uint16(sw1)<<8 | uint16(sw2))
}

// SW1 returns the first byte (high byte) of the status word.
func (sw StatusWord) SW1() byte {
	return byte(sw >> 8)
}

// SW2 returns the second byte (low byte) of the status word.
func (sw StatusWord) SW2() byte {
	return byte(sw)
}

// IsSuccess returns true if the command was processed successfully (9000)
// or if data is available (61XX).
func (sw StatusWord) IsSuccess() bool {
	return sw == SW_NO_ERROR || sw.SW1() == 0x61
}

// HasMoreData returns true for 61XX, meaning SW2 more bytes are waiting
// for a GET RESPONSE.
func (sw StatusWord) HasMoreData() bool {
	return sw.SW1() == 0x61
}

// IsWrongLength returns true for 6CXX, meaning the command must be
// re-sent with Le = SW2.
func (sw StatusWord) IsWrongLength() bool {
	return sw.SW1() == 0x6C
}

// Verbose returns a human-readable description of the status word.
func (sw StatusWord) Verbose() string {
	if sw.HasMoreData() {
		return fmt.Sprintf("Process completed, %d bytes available", sw.SW2())
	}
	if sw.IsWrongLength() {
		return fmt.Sprintf("Wrong length, correct Le is %d", sw.SW2())
	}

	switch sw {
	case SW_NO_ERROR:
		return "Success"
	case SW_ERR_WRONG_LENGTH:
		return "Wrong length"
	case SW_ERR_FUNC_NOT_SUPPORTED:
		return "Function not supported"
	case SW_ERR_FILE_NOT_FOUND:
		return "File or application not found"
	case SW_ERR_REF_DATA_NOT_FOUND:
		return "Referenced data not found"
	case SW_ERR_INS_NOT_SUPPORTED:
		return "Instruction not supported"
	case SW_ERR_CLA_NOT_SUPPORTED:
		return "Class not supported"
	}

	return fmt.Sprintf("[%04X] %s", uint16(sw), sw.categoryDescription())
}

// categoryDescription provides a fallback description based on SW1.
func (sw StatusWord) categoryDescription() string {
	switch sw.SW1() {
	case 0x62:
		return "Warning: NV memory unchanged"
	case 0x63:
		return "Warning: NV memory changed"
	case 0x64:
		return "Execution Error: NV memory unchanged"
	case 0x65:
		return "Execution Error: NV memory changed"
	case 0x66:
		return "Execution Error: Security issue"
	case 0x68:
		return "Checking Error: Function not supported"
	case 0x69:
		return "Checking Error: Command not allowed"
	case 0x6A:
		return "Checking Error: Wrong parameters"
	default:
		return "Unknown Status"
	}
}
