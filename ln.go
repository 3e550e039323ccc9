package pgnumeric

import "math"

// lnVar computes the natural logarithm of x, which must be positive.
// x is first reduced into (0.9, 1.1) by repeated square roots (each
// square root halves ln(x), tracked by doubling f so it can be undone at
// the end), then ln of the reduced value is computed from
// 2*artanh((x-1)/(x+1)) via its Taylor series, which converges quickly
// once x is that close to 1.
func lnVar(x *numericVar, result *numericVar, rscale int32) error {
	if x.sign != signPos || x.isZero() {
		return newError(ErrCodeInvalidArgument, "cannot take the natural log of a non-positive number")
	}

	localRscale := rscale + 8
	xv := copyOf(x)
	f := int64(1)

	pointNineV := pointNine.unpack()
	onePointOneV := onePointOne.unpack()

	for cmpAbs(&xv, &pointNineV) < 0 || cmpAbs(&xv, &onePointOneV) > 0 {
		localRscale += 8
		var sq numericVar
		if err := sqrtVar(&xv, &sq, localRscale); err != nil {
			return err
		}
		xv = sq
		f *= 2
	}

	one := One.unpack()
	negOne := copyOf(&one)
	negOne.sign = signNeg

	var numer numericVar
	addSub(&xv, &negOne, &numer)
	var denom numericVar
	addSub(&xv, &one, &denom)

	var z numericVar
	if err := divVarFast(&numer, &denom, &z, localRscale); err != nil {
		return err
	}
	var z2 numericVar
	mulVar(&z, &z, &z2, localRscale)

	sum := copyOf(&z)
	term := copyOf(&z)
	n := int64(1)

	for {
		var newTerm numericVar
		mulVar(&term, &z2, &newTerm, localRscale)
		term = newTerm

		n += 2
		nVar := intToVar(n, 0)
		var divided numericVar
		if err := divVarFast(&term, &nVar, &divided, localRscale); err != nil {
			return err
		}
		if divided.ndigits == 0 {
			break
		}
		if divided.weight < sum.weight-int32(2*int(localRscale)/decDigits) {
			break
		}

		var newSum numericVar
		addSub(&sum, &divided, &newSum)
		sum = newSum
	}

	two := Two.unpack()
	var doubled numericVar
	mulVar(&sum, &two, &doubled, localRscale)

	fVar := intToVar(f, 0)
	var scaled numericVar
	mulVar(&doubled, &fVar, &scaled, localRscale)

	roundVar(&scaled, rscale)
	*result = scaled
	return nil
}

// Ln returns the natural logarithm of d. The result scale is chosen from
// the approximate decimal digit count before the point, taken straight
// from d's weight field rather than a float64 conversion of d itself:
// ln(d) only needs to know how many digits d has, and an argument with
// more digits than float64 can represent exactly would otherwise convert
// to +Inf and corrupt the scale estimate.
func (d Decimal) Ln() (Decimal, error) {
	if d.IsNaN() {
		return NaN, nil
	}
	v := d.unpack()

	decDigitsBeforePoint := (int(v.weight) + 1) * decDigits

	var rscale int32
	switch {
	case decDigitsBeforePoint > 1:
		rscale = int32(MinSigDigits) - int32(math.Log10(float64(decDigitsBeforePoint-1)))
	case decDigitsBeforePoint < 1:
		rscale = int32(MinSigDigits) - int32(math.Log10(float64(1-decDigitsBeforePoint)))
	default:
		rscale = int32(MinSigDigits)
	}
	rscale = max32(rscale, v.dscale)
	rscale = max32(rscale, 0)
	rscale = min32(rscale, MaxDisplayScale)

	var r numericVar
	if err := lnVar(&v, &r, rscale); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}
