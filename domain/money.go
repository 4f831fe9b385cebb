package domain

import (
	"math"
	"strconv"
)

// Pence converts a decimal pound amount to integer minor units, rounding
// to the nearest penny.
func Pence(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// DecimalString serializes an amount the way the session metadata
// contract requires: a minimal decimal string, so 500.0 becomes "500"
// and 75.5 becomes "75.5".
func DecimalString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ParseDecimal reads a metadata amount back. Absent or malformed values
// read as zero so a half-filled session still renders.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Pounds renders a minor-unit amount as a two-decimal pound value.
func Pounds(pence int64) string {
	return strconv.FormatFloat(float64(pence)/100, 'f', 2, 64)
}
