package tlv

import (
	"errors"
	"testing"
)

func TestDecodeTag(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		class       Class
		constructed bool
		number      uint16
		uint        uint16
		consumed    int
	}{
		{
			name:     "Universal Primitive",
			input:    Hex("02"),
			class:    ClassUniversal,
			number:   2,
			uint:     0x02,
			consumed: 1,
		},
		{
			name:        "Application Constructed (FCI Template)",
			input:       Hex("6F"),
			class:       ClassApplication,
			constructed: true,
			number:      0x0F,
			uint:        0x6F,
			consumed:    1,
		},
		{
			name:        "Context-specific Constructed",
			input:       Hex("A5"),
			class:       ClassContextSpecific,
			constructed: true,
			number:      5,
			uint:        0xA5,
			consumed:    1,
		},
		{
			name:     "Two-byte CPLC tag",
			input:    Hex("9F 7F"),
			class:    ClassContextSpecific,
			number:   0x7F,
			uint:     0x9F7F,
			consumed: 2,
		},
		{
			name:     "Two-byte low number",
			input:    Hex("5F 2D"),
			class:    ClassApplication,
			number:   0x2D,
			uint:     0x5F2D,
			consumed: 2,
		},
		{
			name:        "Private Constructed",
			input:       Hex("E1"),
			class:       ClassPrivate,
			constructed: true,
			number:      1,
			uint:        0xE1,
			consumed:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := NewCursor(tt.input)

			tag, err := decodeTag(cur)
			if err != nil {
				t.Fatalf("decodeTag(%X) failed: %v", tt.input, err)
			}

			if tag.Class != tt.class {
				t.Errorf("Class = %s, want %s", tag.Class, tt.class)
			}
			if tag.Constructed != tt.constructed {
				t.Errorf("Constructed = %v, want %v", tag.Constructed, tt.constructed)
			}
			if tag.Number != tt.number {
				t.Errorf("Number = %d, want %d", tag.Number, tt.number)
			}
			if tag.Uint() != tt.uint {
				t.Errorf("Uint() = %04X, want %04X", tag.Uint(), tt.uint)
			}
			if got := len(tt.input) - cur.Remaining(); got != tt.consumed {
				t.Errorf("consumed %d bytes, want %d", got, tt.consumed)
			}
		})
	}
}

func TestDecodeTag_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"Empty Input", []byte{}, ErrTruncated},
		{"Missing Second Byte", Hex("9F"), ErrTruncated},
		{"Three-byte Tag", Hex("9F 81"), ErrUnsupportedTagFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeTag(NewCursor(tt.input)); !errors.Is(err, tt.wantErr) {
				t.Errorf("decodeTag(%X) err = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTag_String(t *testing.T) {
	cur := NewCursor(Hex("9F 7F"))
	tag, err := decodeTag(cur)
	if err != nil {
		t.Fatal(err)
	}

	if tag.String() != "9F7F" {
		t.Errorf("String() = %q, want 9F7F", tag.String())
	}
}

func TestClass_String(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassUniversal, "Universal"},
		{ClassApplication, "Application"},
		{ClassContextSpecific, "Context-specific"},
		{ClassPrivate, "Private"},
		{Class(9), "Class(9)"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", byte(tt.class), got, tt.want)
		}
	}
}
