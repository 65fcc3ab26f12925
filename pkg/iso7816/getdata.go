package iso7816

// Instruction codes used by the data-object retrieval flow.
const (
	InsGetResponse byte = 0xC0
	InsGetData     byte = 0xCA
)

// GetData builds a GET DATA command for a 2-byte data object tag
// (P1-P2 carry the tag, ISO 7816-4 §7.4.2). Global Platform cards expect
// CLA 0x80 for CPLC retrieval; plain interindustry objects use CLA 0x00.
func GetData(cla byte, tag uint16) *CommandAPDU {
	return &CommandAPDU{
		Cla: cla,
		Ins: InsGetData,
		P1:  byte(tag >> 8),
		P2:  byte(tag),
		Ne:  MaxShortLe,
	}
}

// GetResponse builds the command retrieving ne pending response bytes
// after a 61XX status.
func GetResponse(cla byte, ne int) *CommandAPDU {
	return &CommandAPDU{
		Cla: cla,
		Ins: InsGetResponse,
		Ne:  ne,
	}
}
