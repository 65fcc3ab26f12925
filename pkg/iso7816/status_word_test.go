package iso7816

import (
	"strings"
	"testing"
)

func TestStatusWord_Classification(t *testing.T) {
	tests := []struct {
		sw            StatusWord
		isSuccess     bool
		hasMoreData   bool
		isWrongLength bool
	}{
		{SW_NO_ERROR, true, false, false},
		{NewStatusWord(0x61, 0x10), true, true, false},
		{NewStatusWord(0x6C, 0x2D), false, false, true},
		{SW_ERR_REF_DATA_NOT_FOUND, false, false, false},
		{SW_ERR_CLA_NOT_SUPPORTED, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.sw.IsSuccess(); got != tt.isSuccess {
			t.Errorf("SW %04X IsSuccess = %v, want %v", uint16(tt.sw), got, tt.isSuccess)
		}
		if got := tt.sw.HasMoreData(); got != tt.hasMoreData {
			t.Errorf("SW %04X HasMoreData = %v, want %v", uint16(tt.sw), got, tt.hasMoreData)
		}
		if got := tt.sw.IsWrongLength(); got != tt.isWrongLength {
			t.Errorf("SW %04X IsWrongLength = %v, want %v", uint16(tt.sw), got, tt.isWrongLength)
		}
	}
}

func TestStatusWord_Parts(t *testing.T) {
	sw := NewStatusWord(0x61, 0x2A)
	if sw.SW1() != 0x61 || sw.SW2() != 0x2A {
		t.Errorf("SW1/SW2 = %02X/%02X, want 61/2A", sw.SW1(), sw.SW2())
	}
}

func TestStatusWord_Verbose(t *testing.T) {
	tests := []struct {
		sw       StatusWord
		contains string
	}{
		{NewStatusWord(0x61, 0x20), "32 bytes available"},
		{NewStatusWord(0x6C, 0x2D), "correct Le is 45"},
		{SW_NO_ERROR, "Success"},
		{SW_ERR_REF_DATA_NOT_FOUND, "Referenced data not found"},
		{SW_ERR_INS_NOT_SUPPORTED, "Instruction not supported"},
		{NewStatusWord(0x6A, 0x86), "Wrong parameters"},
		{NewStatusWord(0x42, 0x42), "Unknown Status"},
	}

	for _, tt := range tests {
		if got := tt.sw.Verbose(); !strings.Contains(got, tt.contains) {
			t.Errorf("SW %04X Verbose() = %q, want it to contain %q", uint16(tt.sw), got, tt.contains)
		}
	}
}
