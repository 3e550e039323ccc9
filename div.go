package pgnumeric

// divVar sets result = a/b, computing resNdigits quotient digits derived
// from qw (the tentative quotient weight) and rscale, then rounds or
// truncates to rscale. It implements Knuth's Algorithm 4.3.1D: normalize
// divisor and dividend so the divisor's leading digit is at least half
// of numBase, then produce one quotient digit per position by a
// float-free estimate-and-correct step.
//
// Both working arrays carry one reserved leading slot (index 0) exactly
// as numericVar.buf does, so that normalization's multiply-by-d can leave
// its carry somewhere instead of needing a reallocation.
func divVar(a, b *numericVar, result *numericVar, rscale int32, doRound bool) error {
	if b.ndigits == 0 || b.digitAt(0) == 0 {
		return newError(ErrCodeDivisionByZero, "division by zero")
	}
	if a.ndigits == 0 {
		*result = zeroVar(rscale)
		return nil
	}

	sign := signPos
	if a.sign != b.sign {
		sign = signNeg
	}
	qw := a.weight - b.weight

	resNdigits := int(qw) + 1 + int((rscale+decDigits-1)/decDigits)
	if resNdigits < 1 {
		resNdigits = 1
	}
	resNdigits++ // one extra digit to support rounding

	var res numericVar
	if b.ndigits == 1 {
		divisor := int(b.digitAt(0))
		res = allocVar(resNdigits)
		rd := res.digits()
		rem := 0
		for i := 0; i < resNdigits; i++ {
			numer := rem*numBase + int(a.digitAt(i))
			rd[i] = digit(numer / divisor)
			rem = numer % divisor
		}
	} else {
		res = divVarKnuth(a, b, resNdigits)
	}

	res.weight = qw
	res.sign = sign
	res.dscale = rscale
	*result = res

	if doRound {
		roundVar(result, rscale)
	} else {
		truncVar(result, rscale)
	}
	result.strip()
	return nil
}

func divVarKnuth(a, b *numericVar, resNdigits int) numericVar {
	bLen := b.ndigits
	d := numBase / (int(b.digitAt(0)) + 1)

	divisorArr := make([]int, bLen+1)
	for i := 0; i < bLen; i++ {
		divisorArr[i+1] = int(b.digitAt(i))
	}
	mulBySmall(divisorArr, d)

	divNdigits := resNdigits + bLen
	dividendArr := make([]int, divNdigits+1)
	for i := 0; i < a.ndigits && i+1 < len(dividendArr); i++ {
		dividendArr[i+1] = int(a.digitAt(i))
	}
	mulBySmall(dividendArr, d)

	res := allocVar(resNdigits)
	rd := res.digits()

	d1 := divisorArr[1]
	d2 := 0
	if bLen >= 2 {
		d2 = divisorArr[2]
	}

	for j := 0; j < resNdigits; j++ {
		next2 := dividendArr[j]*numBase + dividendArr[j+1]
		if next2 == 0 {
			rd[j] = 0
			continue
		}
		qhat := next2 / d1
		if qhat > numBase-1 {
			qhat = numBase - 1
		}

		for {
			rhat := next2 - qhat*d1
			if rhat >= numBase {
				break
			}
			dn2 := 0
			if j+2 < len(dividendArr) {
				dn2 = dividendArr[j+2]
			}
			if d2*qhat > rhat*numBase+dn2 {
				qhat--
			} else {
				break
			}
		}

		if qhat > 0 {
			borrow, carry := 0, 0
			for i := bLen; i >= 1; i-- {
				prod := divisorArr[i]*qhat + carry
				carry = prod / numBase
				pd := prod % numBase
				idx := j + i
				t := dividendArr[idx] - pd - borrow
				if t < 0 {
					t += numBase
					borrow = 1
				} else {
					borrow = 0
				}
				dividendArr[idx] = t
			}
			t := dividendArr[j] - carry - borrow
			if t < 0 {
				// qhat was one too large: undo by adding the divisor back.
				qhat--
				addCarry := 0
				for i := bLen; i >= 1; i-- {
					idx := j + i
					s := dividendArr[idx] + divisorArr[i] + addCarry
					if s >= numBase {
						dividendArr[idx] = s - numBase
						addCarry = 1
					} else {
						dividendArr[idx] = s
						addCarry = 0
					}
				}
				t += addCarry
			}
			dividendArr[j] = t
		}
		rd[j] = digit(qhat)
	}

	return res
}

// mulBySmall multiplies the base-numBase bignum stored in arr (most
// significant digit first, arr[0] a spare slot) by the small factor d,
// in place. Any final carry out of arr[0] is discarded; callers choose d
// so that never happens for the divisor, and rely on arr[0] to capture it
// for the dividend.
func mulBySmall(arr []int, d int) {
	carry := 0
	for i := len(arr) - 1; i >= 0; i-- {
		t := arr[i]*d + carry
		carry = t / numBase
		arr[i] = t % numBase
	}
}

// Div returns a/b rounded to a scale chosen by selectDivScale.
func (a Decimal) Div(b Decimal) (Decimal, error) {
	if a.IsNaN() || b.IsNaN() {
		return NaN, nil
	}
	av, bv := a.unpack(), b.unpack()
	rscale := selectDivScale(&av, &bv)
	var r numericVar
	if err := divVar(&av, &bv, &r, rscale, true); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}

// DivTrunc returns a/b truncated toward zero with scale 0.
func (a Decimal) DivTrunc(b Decimal) (Decimal, error) {
	if a.IsNaN() || b.IsNaN() {
		return NaN, nil
	}
	av, bv := a.unpack(), b.unpack()
	var r numericVar
	if err := divVar(&av, &bv, &r, 0, false); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}

// Mod returns a - DivTrunc(a, b)*b.
func (a Decimal) Mod(b Decimal) (Decimal, error) {
	if a.IsNaN() || b.IsNaN() {
		return NaN, nil
	}
	q, err := a.DivTrunc(b)
	if err != nil {
		return Decimal{}, err
	}
	return a.Sub(q.Mul(b)), nil
}
