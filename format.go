package pgnumeric

import (
	"strconv"
	"strings"
)

// decimalDigitsOf splits a base-B digit into its DEC_DIGITS decimal digit
// characters, most significant first.
func decimalDigitsOf(d digit) [decDigits]byte {
	var out [decDigits]byte
	n := int(d)
	for i := decDigits - 1; i >= 0; i-- {
		out[i] = byte('0' + n%10)
		n /= 10
	}
	return out
}

// decimalDigitAt returns the decimal digit character at decimal place
// value 10^place (the digit's place, not its string index), or '0' if
// place falls outside the stored digits.
func decimalDigitAt(v *numericVar, place int) byte {
	bIdx := floorDiv(place, decDigits)
	i := int(v.weight) - bIdx
	if i < 0 || i >= v.ndigits {
		return '0'
	}
	k := place - bIdx*decDigits
	chars := decimalDigitsOf(v.digitAt(i))
	return chars[decDigits-1-k]
}

// formatFixed renders v in fixed notation with exactly scale fractional
// digits, zero-padding beyond what is actually stored and suppressing
// leading zeros within the most significant base-B digit.
func formatFixed(v *numericVar, scale int32) string {
	var b strings.Builder
	if v.sign == signNeg && !v.isZero() {
		b.WriteByte('-')
	}

	wroteInt := false
	// Walk every digit group from the most significant (i==0) down to
	// weight 0, not just the stored ones: a carry during rounding can
	// raise weight past what strip() left behind, leaving implicit zero
	// groups between the stored digits and the decimal point that still
	// must print. Only the leading group (i==0) suppresses its own
	// high-order decimal zeros; every later group always prints in full.
	for i := 0; i <= int(v.weight); i++ {
		chars := decimalDigitsOf(v.digitAt(i))
		s := string(chars[:])
		if i == 0 {
			s = strings.TrimLeft(s, "0")
		}
		if s != "" {
			b.WriteString(s)
			wroteInt = true
		}
	}
	if !wroteInt {
		b.WriteByte('0')
	}

	if scale > 0 {
		b.WriteByte('.')
		for p := int32(0); p < scale; p++ {
			place := -1 - int(p)
			b.WriteByte(decimalDigitAt(v, place))
		}
	}
	return b.String()
}

// formatSci renders v in scientific notation with scale fractional
// digits in the significand, e.g. "1.414213562373095e+00".
func formatSci(v *numericVar, scale int32) string {
	if v.isZero() {
		return formatFixed(v, scale) + "e+00"
	}

	d0 := int(v.digitAt(0))
	log10d0 := 0
	for t := d0; t >= 10; t /= 10 {
		log10d0++
	}
	exponent := (int(v.weight)+1)*decDigits - (decDigits - log10d0)

	// The denominator 10^exponent needs enough fractional digits to stay
	// nonzero when exponent itself is negative (e.g. 10^-3 rounded to 2
	// places is 0.00); denomScale must cover the full magnitude of a
	// negative exponent, not just the caller's requested display scale.
	denomScale := int32(0)
	if exponent < 0 {
		denomScale = int32(-exponent)
	}

	ten := intToVar(10, 0)
	var tenPow numericVar
	_ = powVarInt(&ten, int64(exponent), &tenPow, denomScale)

	var sig numericVar
	_ = divVarFast(v, &tenPow, &sig, scale)

	mant := formatFixed(&sig, scale)

	sign := "+"
	e := exponent
	if e < 0 {
		sign = "-"
		e = -e
	}
	expStr := strconv.Itoa(e)
	if len(expStr) < 2 {
		expStr = "0" + expStr
	}
	return mant + "e" + sign + expStr
}

// Text renders d in fixed notation with scale fractional digits; a
// negative scale uses d's own stored display scale. NaN renders as
// "NaN".
func (d Decimal) Text(scale int) string {
	if d.IsNaN() {
		return "NaN"
	}
	v := d.unpack()
	if scale < 0 {
		scale = int(v.dscale)
	}
	return formatFixed(&v, int32(scale))
}

// String renders d using its own stored display scale.
func (d Decimal) String() string {
	return d.Text(-1)
}

// TextSci renders d in scientific notation with scale fractional digits
// in the significand; a negative scale uses d's own stored display
// scale. NaN renders as "NaN".
func (d Decimal) TextSci(scale int) string {
	if d.IsNaN() {
		return "NaN"
	}
	v := d.unpack()
	if scale < 0 {
		scale = int(v.dscale)
	}
	return formatSci(&v, int32(scale))
}
