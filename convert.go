package pgnumeric

import (
	"math"
	"strconv"
)

// int64ToNumericVar builds the base-numBase representation of val.
func int64ToNumericVar(val int64, v *numericVar) {
	neg := val < 0
	uval := uint64(val)
	if neg {
		uval = uint64(-val)
	}

	if uval == 0 {
		*v = zeroVar(0)
		return
	}

	var tmp [32]digit
	n := 0
	for uval > 0 {
		tmp[n] = digit(uval % numBase)
		uval /= numBase
		n++
	}

	nv := allocVar(n)
	rd := nv.digits()
	for i := 0; i < n; i++ {
		rd[i] = tmp[n-1-i]
	}
	nv.weight = int32(n - 1)
	if neg {
		nv.sign = signNeg
	}
	*v = nv
}

// FromInt64 returns the exact decimal value of n.
func FromInt64(n int64) Decimal {
	var v numericVar
	int64ToNumericVar(n, &v)
	d, err := packVar(&v)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInt32 returns the exact decimal value of n.
func FromInt32(n int32) Decimal { return FromInt64(int64(n)) }

// numericVarToInt64 reconstructs an int64 from a numericVar already
// rounded to scale 0, returning an error if the value doesn't fit.
func numericVarToInt64(v *numericVar) (int64, error) {
	if v.isZero() {
		return 0, nil
	}
	if v.weight < 0 {
		return 0, nil
	}
	// Walk every base-numBase digit position from weight down to 0, not
	// just the stored digits: strip() drops trailing zero digits entirely
	// without adjusting weight, so a value like 100000000 is stored as a
	// single digit at weight 2 with two implied zero digits below it, and
	// those positions still need their numBase multiply applied.
	var result uint64
	for pos := int(v.weight); pos >= 0; pos-- {
		idx := int(v.weight) - pos
		var d uint64
		if idx < v.ndigits {
			d = uint64(v.digitAt(idx))
		}
		if result > (math.MaxUint64-d)/numBase {
			return 0, newError(ErrCodeValueOutOfRange, "value out of range for int64")
		}
		result = result*numBase + d
	}
	if v.sign == signNeg {
		if result > uint64(math.MaxInt64)+1 {
			return 0, newError(ErrCodeValueOutOfRange, "value out of range for int64")
		}
		return -int64(result), nil
	}
	if result > uint64(math.MaxInt64) {
		return 0, newError(ErrCodeValueOutOfRange, "value out of range for int64")
	}
	return int64(result), nil
}

// ToInt64 converts d to an int64, rounding to the nearest integer.
// It reports INVALID_ARGUMENT for NaN and VALUE_OUT_OF_RANGE if the
// rounded value doesn't fit.
func (d Decimal) ToInt64() (int64, error) {
	if d.IsNaN() {
		return 0, newError(ErrCodeInvalidArgument, "cannot convert NaN to int64")
	}
	v := d.unpack()
	roundVar(&v, 0)
	return numericVarToInt64(&v)
}

// ToInt32 converts d to an int32, rounding to the nearest integer.
//
// The round trip is checked by comparing the int64 value against itself
// cast through int32 and back — comparing the *value*, not a pointer, so
// this does not reproduce the historical bug in numeric.c's
// numericvar_to_int32, which compared an int64 cast of the result
// pointer instead of the dereferenced value and so could never actually
// detect overflow.
func (d Decimal) ToInt32() (int32, error) {
	val, err := d.ToInt64()
	if err != nil {
		return 0, err
	}
	if int64(int32(val)) != val {
		return 0, newError(ErrCodeValueOutOfRange, "value out of range for int32")
	}
	return int32(val), nil
}

// ToFloat64 converts d to the nearest float64. NaN converts to
// math.NaN(). The conversion goes through the formatted decimal string,
// never a native reinterpretation of the digit array, so it can't
// overflow differently depending on platform float parsing quirks.
func (d Decimal) ToFloat64() float64 {
	if d.IsNaN() {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(d.Text(-1), 64)
	if err != nil {
		// d.Text always produces a syntactically valid decimal literal;
		// the only failure ParseFloat can report here is overflow to
		// +/-Inf, which it still returns alongside the error.
		return f
	}
	return f
}

// ToFloat32 converts d to the nearest float32.
func (d Decimal) ToFloat32() float32 {
	return float32(d.ToFloat64())
}

// FromFloat64 builds a Decimal from f by formatting it with the minimum
// number of decimal digits that round-trips exactly, then parsing that
// text. A NaN float converts to NaN. +/-Inf is rejected with
// INVALID_ARGUMENT, since Decimal has no representation for infinities.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) {
		return NaN, nil
	}
	if math.IsInf(f, 0) {
		return Decimal{}, newError(ErrCodeInvalidArgument, "cannot represent an infinite float")
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// FromFloat32 builds a Decimal from f, as FromFloat64 does.
func FromFloat32(f float32) (Decimal, error) {
	if math.IsNaN(float64(f)) {
		return NaN, nil
	}
	if math.IsInf(float64(f), 0) {
		return Decimal{}, newError(ErrCodeInvalidArgument, "cannot represent an infinite float")
	}
	return Parse(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

// approxFloat64 returns a crude float64 magnitude estimate of v, used
// only to feed scale-selection heuristics in exp.go/pow.go — never for
// a user-facing conversion. It goes through the formatted string for the
// same reason ToFloat64 does.
func approxFloat64(v *numericVar) float64 {
	var c numericVar
	c.setVarFromVar(v)
	d, err := packVar(&c)
	if err != nil {
		return 0
	}
	f, _ := strconv.ParseFloat(d.Text(-1), 64)
	return f
}
