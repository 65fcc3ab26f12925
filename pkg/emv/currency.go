// Package emv holds EMV payment-application data tables.
package emv

import (
	"encoding/hex"
	"strings"
)

// ISO 4217 numeric currency codes, as they appear in EMV fields
// (2 bytes, BCD). Only currencies observed on European payment cards are
// listed; unknown codes fall through to a descriptive string.
var currencyNames = map[string]string{
	"0040": "ATS",
	"0124": "CAD",
	"0156": "CNY",
	"0348": "HUF",
	"0643": "RUB",
	"0752": "SEK",
	"0756": "CHF",
	"0784": "AED",
	"0826": "GBP",
	"0840": "USD",
	"0941": "RSD",
	"0946": "RON",
	"0975": "BGN",
	"0977": "BAM",
	"0978": "EUR",
	"0980": "UAH",
	"0985": "PLN",
}

// CurrencyName returns the alphabetic currency code for a 2-byte ISO 4217
// numeric code. The codes 0999 and 0000 mark "not set" on some cards.
func CurrencyName(code []byte) string {
	hexCode := strings.ToUpper(hex.EncodeToString(code))

	if name, ok := currencyNames[hexCode]; ok {
		return name
	}

	switch hexCode {
	case "0999":
		return "<currency not set>"
	case "0000":
		return "?"
	}

	return "ISO 4217 Currency Code " + hexCode
}
