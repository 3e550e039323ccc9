package pgnumeric

import (
	"strconv"
	"strings"
)

// Parse parses s as a decimal literal: an optional sign, digits with an
// optional decimal point, an optional exponent, or the case-insensitive
// token "NaN". Surrounding whitespace is ignored.
func Parse(s string) (Decimal, error) {
	v, err := setVarFromStr(s)
	if err != nil {
		return Decimal{}, err
	}
	return packVar(&v)
}

// ParseScale parses s as Parse does, then, when precision is
// non-negative, applies a precision/scale bound: the value is rounded to
// scale fractional digits and rejected with VALUE_OUT_OF_RANGE if more
// than precision-scale digits remain before the point. A negative
// precision means unlimited, and the value is returned as parsed.
func ParseScale(s string, precision, scale int32) (Decimal, error) {
	v, err := setVarFromStr(s)
	if err != nil {
		return Decimal{}, err
	}
	if !v.isNaN() && precision >= 0 {
		if err := checkBoundsAndRound(&v, precision, scale); err != nil {
			return Decimal{}, err
		}
	}
	return packVar(&v)
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func syntaxError(s string) error {
	return newError(ErrCodeInvalidArgument, "invalid input syntax for decimal: "+strconv.Quote(s))
}

// setVarFromStr implements the grammar
//
//	number := [+-]? (digit+ ('.' digit*)? | '.' digit+) ([eE][+-]?digit+)? | 'NaN'
func setVarFromStr(s string) (numericVar, error) {
	orig := s
	i, n := 0, len(s)
	for i < n && isASCIISpace(s[i]) {
		i++
	}

	if n-i >= 3 && strings.EqualFold(s[i:i+3], "nan") {
		j := i + 3
		for j < n && isASCIISpace(s[j]) {
			j++
		}
		if j != n {
			return numericVar{}, syntaxError(orig)
		}
		return nanVar(), nil
	}

	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var digitsBuf []byte
	dweight := -1
	haveDP := false
	hadDigits := false
	for i < n {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digitsBuf = append(digitsBuf, c)
			hadDigits = true
			if !haveDP {
				dweight++
			}
			i++
		case c == '.' && !haveDP:
			haveDP = true
			i++
		default:
			goto afterMantissa
		}
	}
afterMantissa:
	if !hadDigits {
		return numericVar{}, syntaxError(orig)
	}

	dscale := 0
	if haveDP {
		dscale = len(digitsBuf) - (dweight + 1)
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < n && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return numericVar{}, syntaxError(orig)
		}
		exp, err := strconv.Atoi(s[start:i])
		if err != nil {
			return numericVar{}, syntaxError(orig)
		}
		if expNeg {
			exp = -exp
		}
		if exp > MaxPrecision || exp < -MaxPrecision {
			return numericVar{}, syntaxError(orig)
		}
		dweight += exp
		dscale -= exp
	}

	for i < n && isASCIISpace(s[i]) {
		i++
	}
	if i != n {
		return numericVar{}, syntaxError(orig)
	}

	if dscale < 0 {
		dscale = 0
	}

	v := packDecimalDigits(digitsBuf, dweight, dscale)
	if neg && !v.isZero() {
		v.sign = signNeg
	}
	return v, nil
}

// packDecimalDigits converts a run of decimal digit characters (the
// digit at digitsBuf[k] sits at decimal place value 10^(dweight-k)) plus
// a target display scale into a base-numBase numericVar, padding with
// implicit zeros on either side as dweight/dscale require.
func packDecimalDigits(digitsBuf []byte, dweight, dscale int) numericVar {
	decimalDigitAt := func(place int) int {
		idx := dweight - place
		if idx < 0 || idx >= len(digitsBuf) {
			return 0
		}
		return int(digitsBuf[idx] - '0')
	}

	topWeight := floorDiv(dweight, decDigits)
	botWeight := floorDiv(-dscale, decDigits)
	ndigits := topWeight - botWeight + 1
	if ndigits < 1 {
		ndigits = 1
	}

	v := allocVar(ndigits)
	vd := v.digits()
	for i := 0; i < ndigits; i++ {
		weight := topWeight - i
		d := 0
		for p := 0; p < decDigits; p++ {
			place := weight*decDigits + (decDigits - 1 - p)
			d = d*10 + decimalDigitAt(place)
		}
		vd[i] = digit(d)
	}
	v.weight = int32(topWeight)
	v.dscale = int32(dscale)
	v.strip()
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ClampTo rounds d to scale fractional digits and, when precision is
// non-negative, rejects the result with VALUE_OUT_OF_RANGE if more than
// precision-scale digits remain before the point. It is the bound a
// Context applies after every operation.
func (d Decimal) ClampTo(precision, scale int32) (Decimal, error) {
	if d.IsNaN() {
		return NaN, nil
	}
	v := d.unpack()
	if precision < 0 {
		roundVar(&v, scale)
		return packVar(&v)
	}
	if err := checkBoundsAndRound(&v, precision, scale); err != nil {
		return Decimal{}, err
	}
	return packVar(&v)
}

// checkBoundsAndRound rounds v to scale fractional digits and rejects it
// if more than precision-scale decimal digits remain before the point.
func checkBoundsAndRound(v *numericVar, precision, scale int32) error {
	maxDigits := precision - scale

	roundVar(v, scale)
	v.strip()
	if v.isZero() {
		return nil
	}

	ddigits := int32(0)
	if v.weight >= 0 {
		ddigits = (v.weight + 1) * decDigits
	}
	if ddigits > maxDigits {
		// The base-B digit count overstates the true decimal digit
		// count whenever the leading stored digit itself has
		// high-order decimal zeros (e.g. base 10000's digit "0005" is
		// one decimal digit, not four); walk to the first nonzero
		// digit and correct for that before rejecting.
		digits := v.digits()
		for i := 0; i < v.ndigits; i++ {
			if dig := digits[i]; dig != 0 {
				ddigits -= decDigits - decimalDigitCount(int(dig))
				if ddigits > maxDigits {
					return newError(ErrCodeValueOutOfRange, "decimal field overflow")
				}
				break
			}
			ddigits -= decDigits
		}
	}
	return nil
}

// decimalDigitCount returns the number of decimal digits in dig, a
// single base-B digit (1 <= dig < numBase).
func decimalDigitCount(dig int) int32 {
	n := int32(1)
	for dig >= 10 {
		dig /= 10
		n++
	}
	return n
}
