package pgnumeric

// expVarInternal computes e^x for x known to be in [0, 1] by reducing
// the argument (repeated halving until it's at most 0.01, since the
// Taylor series below converges fastest near zero) and then undoing the
// reduction by repeated squaring (e^(2y) = (e^y)^2).
func expVarInternal(x *numericVar, result *numericVar, rscale int32) error {
	localRscale := rscale + 8
	half := pointFive.unpack()
	pointZeroOneV := pointZeroOne.unpack()

	xv := copyOf(x)
	k := 0
	for cmpAbs(&xv, &pointZeroOneV) > 0 {
		var halved numericVar
		localRscale++
		mulVar(&xv, &half, &halved, localRscale)
		xv = halved
		k++
	}

	sum := One.unpack()
	xpow := copyOf(&xv)
	ifac := One.unpack()
	n := int64(1)

	for {
		var term numericVar
		if err := divVarFast(&xpow, &ifac, &term, localRscale); err != nil {
			return err
		}
		if term.ndigits == 0 {
			break
		}
		var newSum numericVar
		addSub(&sum, &term, &newSum)
		sum = newSum

		n++
		nVar := intToVar(n, 0)
		var newIfac numericVar
		mulVar(&ifac, &nVar, &newIfac, 0)
		ifac = newIfac

		var newXpow numericVar
		mulVar(&xpow, &xv, &newXpow, localRscale)
		xpow = newXpow
	}

	for i := 0; i < k; i++ {
		var squared numericVar
		mulVar(&sum, &sum, &squared, localRscale)
		sum = squared
	}

	roundVar(&sum, rscale)
	*result = sum
	return nil
}

func copyOf(v *numericVar) numericVar {
	var c numericVar
	c.setVarFromVar(v)
	return c
}

// expVar computes e^x to rscale decimal digits, splitting x into an
// integer and fractional part (exp_var_internal only handles [0, 1]),
// computing e to the integer power by binary exponentiation, and
// inverting at the end if x was negative.
func expVar(x *numericVar, result *numericVar, rscale int32) error {
	localRscale := rscale + 8

	xAbs := copyOf(x)
	xAbs.sign = signPos

	xInt := copyOf(&xAbs)
	truncVar(&xInt, 0)

	// Reject on the integer part's actual value, not its digit count: a
	// few-digit base-10000 value can still be astronomically large.
	n, err := numericVarToInt64(&xInt)
	if err != nil || n >= 3*MaxResultScale {
		return newError(ErrCodeValueOutOfRange, "argument for exp is too large")
	}

	var xFrac numericVar
	subAbs(&xAbs, &xInt, &xFrac)
	xFrac.sign = signPos

	var fracResult numericVar
	if err := expVarInternal(&xFrac, &fracResult, localRscale); err != nil {
		return err
	}

	res := fracResult
	if xInt.ndigits > 0 {
		oneV := One.unpack()
		var eResult numericVar
		if err := expVarInternal(&oneV, &eResult, localRscale); err != nil {
			return err
		}
		var ePow numericVar
		if err := powVarInt(&eResult, n, &ePow, localRscale); err != nil {
			return err
		}
		var product numericVar
		mulVar(&ePow, &fracResult, &product, localRscale)
		res = product
	}

	if x.sign == signNeg {
		oneV := One.unpack()
		var inverted numericVar
		if err := divVarFast(&oneV, &res, &inverted, rscale); err != nil {
			return err
		}
		res = inverted
	}

	roundVar(&res, rscale)
	*result = res
	return nil
}

// log10OfE is log10(e), used to turn an order-of-magnitude estimate of
// an exponent into an order-of-magnitude estimate of e raised to it.
const log10OfE = 0.4342944819032518

// Exp returns e^d. The result scale is chosen from an order-of-magnitude
// estimate of the result (x*log10(e)). The float64 estimate of x is
// clamped to ±MaxResultScale before it is scaled and converted to int32,
// so a huge x can't overflow the scale computation before expVar's own
// overflow guard gets a chance to reject it.
func (d Decimal) Exp() (Decimal, error) {
	if d.IsNaN() {
		return NaN, nil
	}
	v := d.unpack()

	val := approxFloat64(&v)
	if val > MaxResultScale {
		val = MaxResultScale
	}
	if val < -MaxResultScale {
		val = -MaxResultScale
	}
	dweight := int32(val * log10OfE)
	rscale := int32(MinSigDigits) - dweight
	rscale = max32(rscale, v.dscale)
	rscale = max32(rscale, 0)
	rscale = min32(rscale, MaxDisplayScale)

	var r numericVar
	if err := expVar(&v, &r, rscale); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}
