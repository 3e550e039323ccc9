package pgnumeric

// sqrtVar computes the square root of arg to rscale decimal digits using
// Newton's method on x_{n+1} = 0.5*(x_n + arg/x_n), run at rscale+8 guard
// digits and terminated the moment an iterate repeats exactly (Newton's
// method for square roots converges quadratically, so one extra
// iteration past that point could never change a rounded digit).
func sqrtVar(arg *numericVar, result *numericVar, rscale int32) error {
	if arg.sign == signNeg {
		return newError(ErrCodeInvalidArgument, "cannot take the square root of a negative number")
	}
	if arg.isZero() {
		*result = zeroVar(rscale)
		return nil
	}

	localRscale := rscale + 8

	x := allocVar(1)
	firstDigit := arg.digitAt(0) / 2
	if firstDigit < 1 {
		firstDigit = 1
	}
	x.digits()[0] = firstDigit
	x.weight = arg.weight / 2
	x.sign = signPos

	half := pointFive.unpack()

	for {
		var q, sum, next numericVar
		if err := divVarFast(arg, &x, &q, localRscale); err != nil {
			return err
		}
		addAbs(&x, &q, &sum)
		mulVar(&sum, &half, &next, localRscale)
		if varsEqual(&next, &x) {
			x = next
			break
		}
		x = next
	}

	roundVar(&x, rscale)
	*result = x
	return nil
}

func varsEqual(a, b *numericVar) bool {
	if a.sign != b.sign || a.ndigits != b.ndigits || a.weight != b.weight {
		return false
	}
	ad, bd := a.digits(), b.digits()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// Sqrt returns the square root of d. The result scale is chosen from
// d's weight (a square root roughly halves the number of integer
// digits, so the weight-derived significant-digit budget is halved too)
// rather than through selectDivScale, which estimates a quotient's
// weight and doesn't apply here.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNaN() {
		return NaN, nil
	}
	v := d.unpack()

	sweight := (v.weight+1)*int32(decDigits)/2 - 1
	rscale := int32(MinSigDigits) - sweight
	rscale = max32(rscale, v.dscale)
	rscale = max32(rscale, 0)
	rscale = min32(rscale, MaxDisplayScale)

	var r numericVar
	if err := sqrtVar(&v, &r, rscale); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}
