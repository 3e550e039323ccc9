package pgnumeric

import "math"

// powVarInt raises base to the integer power n using binary
// exponentiation, with a handful of small exponents hardcoded since they
// need neither guard digits nor a loop. Negative n returns the
// reciprocal of the positive-exponent result. By convention 0^0 is 1.
func powVarInt(base *numericVar, n int64, result *numericVar, rscale int32) error {
	switch n {
	case 0:
		r := One.unpack()
		roundVar(&r, rscale)
		*result = r
		return nil
	case 1:
		r := copyOf(base)
		roundVar(&r, rscale)
		*result = r
		return nil
	case -1:
		one := One.unpack()
		return divVarFast(&one, base, result, rscale)
	case 2:
		mulVar(base, base, result, rscale)
		return nil
	}

	neg := n < 0
	un := n
	if neg {
		un = -n
	}

	localRscale := rscale + 2*mulGuardDigits

	baseProd := copyOf(base)
	var res numericVar
	if un&1 == 1 {
		res = copyOf(base)
	} else {
		res = One.unpack()
	}
	un >>= 1
	for un > 0 {
		var squared numericVar
		mulVar(&baseProd, &baseProd, &squared, localRscale)
		baseProd = squared
		if un&1 == 1 {
			var newRes numericVar
			mulVar(&res, &baseProd, &newRes, localRscale)
			res = newRes
		}
		un >>= 1
	}

	if neg {
		one := One.unpack()
		var inv numericVar
		if err := divVarFast(&one, &res, &inv, rscale); err != nil {
			return err
		}
		res = inv
	}

	roundVar(&res, rscale)
	*result = res
	return nil
}

// tryExactInt32 reports whether v's value is an exact integer that fits
// in an int32, returning it if so. v is left untouched.
func tryExactInt32(v *numericVar) (int32, bool) {
	c := copyOf(v)
	roundVar(&c, 0)
	if c.sign != v.sign && !(c.isZero() && v.isZero()) {
		return 0, false
	}
	if cmpAbs(&c, v) != 0 {
		return 0, false
	}
	n, err := numericVarToInt64(&c)
	if err != nil {
		return 0, false
	}
	if int64(int32(n)) != n {
		return 0, false
	}
	return int32(n), true
}

// powVar computes base^exp. When exp is an exact int32 it dispatches to
// the binary-exponentiation fast path; otherwise it requires base >= 0
// (negative^non-integer has no real result), avoids ln(0) by returning 0
// directly for a zero base, and computes exp(exp*ln(base)) for the
// general case — mirroring power_var's scale selection (numeric.c:3928-3991)
// digit for digit, including its doubled-MinSigDigits ln scale and its
// float64-estimate-based exp scale, rather than the ad hoc magnitude
// heuristic this package used before.
func powVar(base, exp *numericVar, result *numericVar, rscale int32) error {
	if n, ok := tryExactInt32(exp); ok {
		if base.isZero() && n < 0 {
			return newError(ErrCodeInvalidArgument, "zero raised to a negative power")
		}
		return powVarInt(base, int64(n), result, rscale)
	}

	if base.isZero() {
		// Unlike numeric.c, which returns 0 unconditionally here (only
		// power_var_int's exact-integer path rejects a negative exponent),
		// this package rejects 0^negative for every exponent shape, per
		// this package's own error contract.
		if exp.sign == signNeg {
			return newError(ErrCodeInvalidArgument, "zero raised to a negative power")
		}
		r := zeroVar(MinSigDigits)
		*result = r
		return nil
	}
	if base.sign != signPos {
		return newError(ErrCodeInvalidArgument, "invalid base for a non-integer exponent")
	}

	decDigitsBeforePoint := (int(base.weight) + 1) * decDigits
	var lnRscale int32
	switch {
	case decDigitsBeforePoint > 1:
		lnRscale = int32(MinSigDigits)*2 - int32(math.Log10(float64(decDigitsBeforePoint-1)))
	case decDigitsBeforePoint < 1:
		lnRscale = int32(MinSigDigits)*2 - int32(math.Log10(float64(1-decDigitsBeforePoint)))
	default:
		lnRscale = int32(MinSigDigits) * 2
	}
	lnRscale = max32(lnRscale, base.dscale*2)
	lnRscale = max32(lnRscale, exp.dscale*2)
	lnRscale = max32(lnRscale, 0)
	lnRscale = min32(lnRscale, MaxDisplayScale*2)

	localRscale := lnRscale + 8

	var lnBase numericVar
	if err := lnVar(base, &lnBase, localRscale); err != nil {
		return err
	}
	var product numericVar
	mulVar(&lnBase, exp, &product, localRscale)

	// log10(e^product) = product*log10(e), an approximate weight of the
	// final result, clamped against MaxResultScale before it drives the
	// scale estimate below (mirrors the same clamp in Exp).
	val := approxFloat64(&product) * log10OfE
	if val > MaxResultScale {
		val = MaxResultScale
	}
	if val < -MaxResultScale {
		val = -MaxResultScale
	}

	expRscale := int32(MinSigDigits) - int32(val)
	expRscale = max32(expRscale, base.dscale)
	expRscale = max32(expRscale, exp.dscale)
	expRscale = max32(expRscale, 0)
	expRscale = min32(expRscale, MaxDisplayScale)

	return expVar(&product, result, expRscale)
}

// Pow returns base^exp. When exp is an exact integer the result is
// exact, so its scale carries no information about precision loss — it
// is simply set to at least MinSigDigits fractional digits, matching
// the displayed zero-padding of an exact integer power. Otherwise the
// scale computed here with selectDivScale is passed on but not used:
// powVar picks the result scale of exp(exp*ln(base)) itself from a
// float64 estimate of the result's magnitude, as Exp does.
func (base Decimal) Pow(exp Decimal) (Decimal, error) {
	if base.IsNaN() || exp.IsNaN() {
		return NaN, nil
	}
	bv, ev := base.unpack(), exp.unpack()

	var rscale int32
	if _, ok := tryExactInt32(&ev); ok {
		rscale = max32(MinSigDigits, bv.dscale)
	} else {
		rscale = selectDivScale(&bv, &ev)
		rscale = max32(rscale, MinSigDigits)
	}

	var r numericVar
	if err := powVar(&bv, &ev, &r, rscale); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}
