// Package currency maps supported currency codes to their display and
// number-format conventions.
package currency

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code is an ISO 4217 currency code such as "USD".
type Code string

// Default is the fallback currency used when a stored or selected code
// is not on the supported list.
const Default = Code("USD")

// Supported currency codes, in display order.
var supported = []Code{
	"USD", "EUR", "GBP", "JPY", "KRW", "CNY",
	"INR", "BRL", "CAD", "AUD", "CHF", "MXN",
}

// FormatSpec describes how amounts in a currency are rendered: the
// canonical pattern string plus the separator conventions it encodes.
type FormatSpec struct {
	Pattern    string // e.g. "#,##0.00"
	DecimalSep string
	GroupSep   string
	Decimals   int
	Symbol     string // e.g. "$" for USD
}

// Format patterns by separator convention.
const (
	patternDotDecimal   = "#,##0.00" // 1,234.56
	patternCommaDecimal = "#.##0,00" // 1.234,56
	patternNoDecimal    = "#,##0"    // 1,235
)

// specs is the canonical format table. Every supported code has an entry.
var specs = map[Code]FormatSpec{
	"USD": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"EUR": {Pattern: patternCommaDecimal, DecimalSep: ",", GroupSep: ".", Decimals: 2},
	"GBP": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"JPY": {Pattern: patternNoDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 0},
	"KRW": {Pattern: patternNoDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 0},
	"CNY": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"INR": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"BRL": {Pattern: patternCommaDecimal, DecimalSep: ",", GroupSep: ".", Decimals: 2},
	"CAD": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"AUD": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
	"CHF": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: "'", Decimals: 2},
	"MXN": {Pattern: patternDotDecimal, DecimalSep: ".", GroupSep: ",", Decimals: 2},
}

// symbolPrinter renders currency symbols from the CLDR data shipped with
// x/text. English is used only as the symbol-selection locale.
var symbolPrinter = message.NewPrinter(language.English)

// Supported returns the supported currency codes in display order.
// The returned slice is a copy.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is on the supported list.
func IsSupported(code Code) bool {
	_, ok := specs[code]
	return ok
}

// Normalize coerces raw input (stored preference, user selection) to a
// supported code. Unknown or empty input maps to Default.
func Normalize(raw string) Code {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	if IsSupported(code) {
		return code
	}
	return Default
}

// FormatFor returns the format spec for code. It is total: codes outside
// the supported list return the Default spec.
func FormatFor(code Code) FormatSpec {
	spec, ok := specs[code]
	if !ok {
		code = Default
		spec = specs[code]
	}
	spec.Symbol = symbolFor(code)
	return spec
}

// symbolFor resolves the display symbol for a supported code, falling back
// to the code itself when x/text has no symbol data.
func symbolFor(code Code) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return string(code)
	}
	if sym := symbolPrinter.Sprint(currency.Symbol(unit)); sym != "" {
		return sym
	}
	return string(code)
}

// Preview renders amount using the spec's separator conventions, for use
// in selection previews (e.g. "1.234,56").
func (s FormatSpec) Preview(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to the spec's decimal places without drifting on repeated calls.
	scale := 1.0
	for i := 0; i < s.Decimals; i++ {
		scale *= 10
	}
	scaled := int64(amount*scale + 0.5)

	whole := scaled
	frac := int64(0)
	if s.Decimals > 0 {
		whole = scaled / int64(scale)
		frac = scaled % int64(scale)
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(s.GroupSep)
		}
		b.WriteRune(d)
	}
	if s.Decimals > 0 {
		b.WriteString(s.DecimalSep)
		fmt.Fprintf(&b, "%0*d", s.Decimals, frac)
	}
	return b.String()
}
