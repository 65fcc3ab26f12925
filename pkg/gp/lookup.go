package gp

import (
	"strconv"
	"strings"
)

// Known IC fabricator codes. Some entries come from cards seen in the
// wild rather than any published registry.
var fabricatorNames = map[string]string{
	"4180": "Atmel",
	"4250": "Samsung",
	"4790": "NXP",
	"4090": "Infineon Technologies AG",
	"2391": "AUSTRIA CARD",
	"3060": "Renesas",
	"1180": "cpi-pf (CPI Card Group)", // seen on an Austrian Mastercard from Kalixa
	"1143": "Oberthur Technologies",   // seen on a Romanian Mastercard
}

var icTypeNames = map[string]string{
	"5032": "SmartMX",
}

var osProviderNames = map[string]string{
	"2391": "AUSTRIA CARD OS (ACOS)",
	"8211": "SCS OS",
	"1291": "TOP",
	"1981": "TOP",
	"0230": "G230",
	"230":  "G230",
	"D000": "Gemalto OS",
	"4051": "NXP JCOP",
	"4A5A": "NXP JCOP",
	"4070": "NXP JCOP",
	"4791": "NXP JCOP",
	"4091": "Trusted Logic jTOP",
	"8231": "OCS",
	"1671": "G&D Sm@rtCaf",
	"27":   "STM027",
	"027":  "STM027",
	"0027": "STM027",
}

func unknownValue(id string) string {
	return "Unknown (0x" + id + ")"
}

// FabricatorName returns the display name for an IC fabricator code
// (hex string), or an "Unknown (0x....)" fallback.
func FabricatorName(id string) string {
	if name, ok := fabricatorNames[strings.ToUpper(id)]; ok {
		return name
	}
	return unknownValue(id)
}

// ICTypeName returns the display name for an IC type code.
func ICTypeName(id string) string {
	if name, ok := icTypeNames[strings.ToUpper(id)]; ok {
		return name
	}
	return unknownValue(id)
}

// OSProviderName returns the display name for an operating system
// provider code.
func OSProviderName(id string) string {
	if name, ok := osProviderNames[strings.ToUpper(id)]; ok {
		return name
	}
	return unknownValue(id)
}

// HumanReadableValue renders a CPLC field for display. It dispatches on
// the field name to the lookup tables, to date decoding for date fields,
// and to decimal conversion for counters; everything else is shown as
// "0x<value>". It never fails: values that cannot be interpreted degrade
// to the raw hex fallback.
func HumanReadableValue(field, val string) string {
	switch field {
	case FieldICFabricator, FieldICCManufacturer, FieldICModuleFabricator, FieldPrepersonalizerID:
		return FabricatorName(val)
	case FieldOperatingSystem:
		return OSProviderName(val)
	case FieldICType:
		return ICTypeName(val)
	case FieldICBatchIdentifier, FieldOSReleaseLevel:
		if n, err := strconv.ParseUint(val, 16, 32); err == nil {
			return strconv.FormatUint(n, 10)
		}
		return "0x" + val
	}

	if strings.Contains(field, "Date") {
		if date, ok := decodeDate(val); ok {
			return date
		}
		return "0x" + val
	}

	return "0x" + val
}
