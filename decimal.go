package pgnumeric

// Decimal is an immutable, arbitrary-precision signed decimal value, or
// the special token NaN. Values are returned only from this package's
// functions and methods; there is no exported constructor that leaves a
// Decimal in a non-normalized state.
//
// The zero Decimal is the number 0 with display scale 0, ready to use.
type Decimal struct {
	digits []digit // most significant first; nil means exact zero
	weight int32
	sign   sign
	dscale int32
}

// Limits mirrored from PostgreSQL's numeric.h. MaxPrecision bounds the
// magnitude of a parsed exponent; MaxDisplayScale caps the result scale
// that automatic scale selection picks for inexact results; MaxResultScale
// bounds Exp's argument (3*MaxResultScale) and clamps the magnitude
// estimates that Exp and Pow feed into scale selection; MinSigDigits is the
// minimum number of significant digits scale selection aims for in inexact
// results (see selectDivScale in scale.go).
const (
	MaxPrecision    = 1000
	MaxDisplayScale = 1000
	MaxResultScale  = 2000
	MinSigDigits    = 16
)

// Pre-built sentinel constants, analogous to numeric.c's static
// const_zero/const_one/.../const_nan. They are ordinary immutable
// Decimal values; sharing one is always safe since nothing ever mutates
// a Decimal in place.
var (
	Zero         = mustDecimalFromVar(intToVar(0, 0))
	One          = mustDecimalFromVar(intToVar(1, 0))
	Two          = mustDecimalFromVar(intToVar(2, 0))
	Ten          = mustDecimalFromVar(intToVar(10, 0))
	pointFive    = mustParseLiteral("0.5")
	pointNine    = mustParseLiteral("0.9")
	pointZeroOne = mustParseLiteral("0.01")
	onePointOne  = mustParseLiteral("1.1")
	NaN          = Decimal{sign: signNaN}
)

func mustParseLiteral(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func intToVar(n int64, dscale int32) numericVar {
	var v numericVar
	int64ToNumericVar(n, &v)
	v.dscale = dscale
	return v
}

func mustDecimalFromVar(v numericVar) Decimal {
	d, err := packVar(&v)
	if err != nil {
		panic(err)
	}
	return d
}

// IsNaN reports whether d is the NaN token.
func (d Decimal) IsNaN() bool { return d.sign == signNaN }

// unpack returns an independently-owned numericVar copy of d, with a
// spare leading slot so arithmetic can grow into it.
func (d Decimal) unpack() numericVar {
	if d.IsNaN() {
		return nanVar()
	}
	v := allocVar(len(d.digits))
	copy(v.digits(), d.digits)
	v.ndigits = len(d.digits)
	v.weight = d.weight
	v.sign = d.sign
	v.dscale = d.dscale
	return v
}

// packVar strips v and copies its digits into a new minimal, immutable
// Decimal, checking the packed-form bounds on weight and dscale.
func packVar(v *numericVar) (Decimal, error) {
	if v.isNaN() {
		return NaN, nil
	}
	v.strip()
	if debugAssertions {
		v.validate()
	}

	if v.weight > 1<<15-1 || v.weight < -(1<<15-1) {
		return Decimal{}, newError(ErrCodeValueOutOfRange, "result weight out of packed range")
	}
	if v.dscale < 0 || v.dscale > 1<<14-1 {
		return Decimal{}, newError(ErrCodeValueOutOfRange, "result scale out of packed range")
	}

	var digits []digit
	if v.ndigits > 0 {
		digits = make([]digit, v.ndigits)
		copy(digits, v.digits())
	}
	return Decimal{digits: digits, weight: v.weight, sign: v.sign, dscale: v.dscale}, nil
}

// MustParse parses s and panics on error. Intended for tests and
// package-level fixtures, not for handling untrusted input.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Sign returns -1, 0, or 1 for a negative, zero, or positive value, and
// 0 for NaN's sign slot (callers must check IsNaN separately; Sign alone
// cannot distinguish NaN from zero).
func (d Decimal) Sign() int {
	if d.IsNaN() || len(d.digits) == 0 {
		return 0
	}
	if d.sign == signNeg {
		return -1
	}
	return 1
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	if d.IsNaN() {
		return NaN
	}
	r := d
	r.sign = signPos
	return r
}

// Negate returns -d.
func (d Decimal) Negate() Decimal {
	if d.IsNaN() {
		return NaN
	}
	r := d
	if len(d.digits) > 0 {
		if d.sign == signPos {
			r.sign = signNeg
		} else {
			r.sign = signPos
		}
	}
	return r
}

// Plus returns d unchanged (unary +), preserved only for symmetry with
// Negate and because NaN must still propagate through it.
func (d Decimal) Plus() Decimal {
	return d
}

// Add returns a + b.
func (a Decimal) Add(b Decimal) Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	av, bv := a.unpack(), b.unpack()
	var r numericVar
	addSub(&av, &bv, &r)
	d, err := packVar(&r)
	if err != nil {
		panic(err) // overflow of packed-form bounds from finite inputs is an invariant violation
	}
	return d
}

// Sub returns a - b.
func (a Decimal) Sub(b Decimal) Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	av, bv := a.unpack(), b.unpack()
	bv.sign = negateSign(bv.sign)
	var r numericVar
	addSub(&av, &bv, &r)
	d, err := packVar(&r)
	if err != nil {
		panic(err)
	}
	return d
}

func negateSign(s sign) sign {
	if s == signPos {
		return signNeg
	}
	if s == signNeg {
		return signPos
	}
	return s
}

// addSub implements the eight-way sign dispatch for a+b: pick abs-add or
// abs-sub and the result's sign, per the sign combination of the two
// operands. r may alias a or b.
func addSub(a, b *numericVar, r *numericVar) {
	switch {
	case a.sign == signPos && b.sign == signPos:
		addAbs(a, b, r)
		r.sign = signPos
	case a.sign == signPos && b.sign == signNeg:
		switch cmpAbs(a, b) {
		case 0:
			*r = zeroVar(max32(a.dscale, b.dscale))
		case 1:
			subAbs(a, b, r)
			r.sign = signPos
		default:
			subAbs(b, a, r)
			r.sign = signNeg
		}
	case a.sign == signNeg && b.sign == signPos:
		switch cmpAbs(a, b) {
		case 0:
			*r = zeroVar(max32(a.dscale, b.dscale))
		case 1:
			subAbs(a, b, r)
			r.sign = signNeg
		default:
			subAbs(b, a, r)
			r.sign = signPos
		}
	default: // both negative
		addAbs(a, b, r)
		r.sign = signNeg
	}
}
