// Package gp decodes Global Platform card data, primarily the Card
// Production Life Cycle (CPLC) record that describes who manufactured,
// packaged and personalized a card before issuance.
package gp

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/cardtools/gpinspect/pkg/tlv"
)

// TagCPLC is the Global Platform tag wrapping the CPLC record in a
// GET DATA response.
const TagCPLC uint16 = 0x9F7F

// RecordLength is the fixed size of a bare CPLC value.
const RecordLength = 42

// wrappedLength is RecordLength framed as 9F 7F 2A <42 bytes>.
const wrappedLength = RecordLength + 3

var (
	// ErrUnexpectedTag signals a 45-byte input whose outer tag is not 9F7F.
	ErrUnexpectedTag = errors.New("unexpected tag")

	// ErrInvalidLength signals an input that is neither a bare 42-byte
	// CPLC value nor a 45-byte wrapped one.
	ErrInvalidLength = errors.New("invalid CPLC length")
)

// CPLC field names as defined by the Global Platform Card Specification.
const (
	FieldICFabricator       = "IC Fabricator"
	FieldICType             = "IC Type"
	FieldOperatingSystem    = "Operating System"
	FieldOSReleaseDate      = "OS Release Date"
	FieldOSReleaseLevel     = "OS Release Level"
	FieldICFabricationDate  = "IC Fabrication Date"
	FieldICSerialNumber     = "IC Serial Number"
	FieldICBatchIdentifier  = "IC Batch Identifier"
	FieldICModuleFabricator = "IC Module Fabricator"
	FieldICModulePackDate   = "IC Module Packaging Date"
	FieldICCManufacturer    = "ICC Manufacturer"
	FieldICEmbeddingDate    = "IC Embedding Date"
	FieldPrepersonalizerID  = "Prepersonalizer ID"
	FieldPrepersoDate       = "Prepersonalization Date"
	FieldPrepersoEquipment  = "Prepersonalization Equipment"
	FieldPersonalizerID     = "Personalizer ID"
	FieldPersoDate          = "Personalization Date"
	FieldPersoEquipment     = "Personalization Equipment"
)

type cplcField struct {
	name   string
	length int
}

// The schema is one ordered table of (name, byte length) pairs; the field
// widths sum to exactly RecordLength.
var cplcSchema = []cplcField{
	{FieldICFabricator, 2},
	{FieldICType, 2},
	{FieldOperatingSystem, 2},
	{FieldOSReleaseDate, 2},
	{FieldOSReleaseLevel, 2},
	{FieldICFabricationDate, 2},
	{FieldICSerialNumber, 4},
	{FieldICBatchIdentifier, 2},
	{FieldICModuleFabricator, 2},
	{FieldICModulePackDate, 2},
	{FieldICCManufacturer, 2},
	{FieldICEmbeddingDate, 2},
	{FieldPrepersonalizerID, 2},
	{FieldPrepersoDate, 2},
	{FieldPrepersoEquipment, 4},
	{FieldPersonalizerID, 2},
	{FieldPersoDate, 2},
	{FieldPersoEquipment, 4},
}

// Record holds the parsed CPLC fields as uppercase hex strings, keyed by
// the Field* names. It is built in one pass and not modified afterwards.
type Record struct {
	fields map[string]string
}

// ParseRecord decodes a CPLC record from raw card bytes.
//
// A 42-byte input is taken as the bare CPLC value. A 45-byte input must be
// a single TLV with tag 9F7F wrapping the 42-byte value; any other outer
// tag fails with ErrUnexpectedTag. Any other input size fails with
// ErrInvalidLength.
func ParseRecord(raw []byte) (*Record, error) {
	var cplc []byte

	switch len(raw) {
	case RecordLength:
		cplc = raw

	case wrappedLength:
		node, rest, err := tlv.DecodeOne(raw)
		if err != nil {
			return nil, fmt.Errorf("CPLC wrapper: %w", err)
		}
		if node.Tag.Uint() != TagCPLC {
			return nil, fmt.Errorf("CPLC wrapper has tag %s, want 9F7F: %w", node.Tag, ErrUnexpectedTag)
		}
		if len(node.Value) != RecordLength || len(rest) != 0 {
			return nil, fmt.Errorf("CPLC wrapper declares %d value bytes, want %d: %w", len(node.Value), RecordLength, ErrInvalidLength)
		}
		cplc = node.Value

	default:
		return nil, fmt.Errorf("got %d bytes, want %d or %d: %w", len(raw), RecordLength, wrappedLength, ErrInvalidLength)
	}

	rec := &Record{fields: make(map[string]string, len(cplcSchema))}
	idx := 0
	for _, f := range cplcSchema {
		if idx+f.length > len(cplc) {
			return nil, fmt.Errorf("field %q: %w", f.name, tlv.ErrTruncated)
		}
		rec.fields[f.name] = strings.ToUpper(hex.EncodeToString(cplc[idx : idx+f.length]))
		idx += f.length
	}

	return rec, nil
}

// Field returns the hex value of the named field, or "" for an unknown name.
func (r *Record) Field(name string) string {
	return r.fields[name]
}

// Fields returns a copy of all fields keyed by name; iterate FieldNames
// for schema order.
func (r *Record) Fields() map[string]string {
	out := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// FieldNames returns the field names in schema order.
func FieldNames() []string {
	names := make([]string, len(cplcSchema))
	for i, f := range cplcSchema {
		names[i] = f.name
	}
	return names
}

// CUID derives the Global Platform Card Unique Identifier: the
// concatenation IC Fabricator || IC Type || IC Batch Identifier ||
// IC Serial Number (10 bytes, 20 hex characters). It is recomputed from
// the record on every call.
func (r *Record) CUID() string {
	return r.fields[FieldICFabricator] +
		r.fields[FieldICType] +
		r.fields[FieldICBatchIdentifier] +
		r.fields[FieldICSerialNumber]
}

// Dump renders the record as a line-oriented report: one line per field in
// schema order, the fabricator name annotated on the IC Fabricator line,
// followed by the derived CUID.
func (r *Record) Dump() string {
	var sb strings.Builder

	sb.WriteString("Card Production Life Cycle Data (CPLC)\n")
	for _, f := range cplcSchema {
		val := r.fields[f.name]
		if f.name == FieldICFabricator {
			fmt.Fprintf(&sb, "%s: %s (%s)\n", f.name, val, FabricatorName(val))
		} else {
			fmt.Fprintf(&sb, "%s: %s\n", f.name, val)
		}
	}
	sb.WriteString(" -> Card Unique Identifier: " + r.CUID() + "\n")

	return sb.String()
}
