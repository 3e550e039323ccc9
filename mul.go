package pgnumeric

// Mul returns a*b, computed exactly (no rounding is needed: the full
// product's scale is the sum of the operands' dscale).
func (a Decimal) Mul(b Decimal) Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	av, bv := a.unpack(), b.unpack()
	rscale := av.dscale + bv.dscale
	var r numericVar
	mulVar(&av, &bv, &r, rscale)
	d, err := packVar(&r)
	if err != nil {
		panic(err)
	}
	return d
}

// mulVar sets result = a*b, rounded to rscale decimal digits. result may
// alias a or b.
//
// The accumulator is a plain Go int (64 bits on every platform this
// package targets). Since numBase <= 10000, each partial product is below
// 10^8, so a cell would need on the order of 10^10 of them to approach the
// int64 range, far beyond any operand length in practice; so unlike
// numeric.c — which tracks a running bound and must sweep carries
// mid-loop to avoid overflowing a 32-bit int — a single carry sweep after
// all partial products are accumulated is always sufficient here.
func mulVar(a, b *numericVar, result *numericVar, rscale int32) {
	if a.ndigits == 0 || b.ndigits == 0 {
		*result = zeroVar(rscale)
		return
	}

	resSign := signPos
	if a.sign != b.sign {
		resSign = signNeg
	}
	resWeight := a.weight + b.weight + 2

	// aLen/bLen are how many of each operand's leading (most significant)
	// digits participate; resNdigits == aLen+bLen+1 always holds, so the
	// pair is reduced together when the exact product would carry more
	// digits than rscale plus guard digits can use.
	aLen, bLen := a.ndigits, b.ndigits
	resNdigits := aLen + bLen + 1
	maxDigits := int(resWeight) + 1 + int(rscale)*decDigits + mulGuardDigits
	if resNdigits > maxDigits {
		if maxDigits < 3 {
			*result = zeroVar(rscale)
			return
		}
		if maxDigits%2 == 0 {
			maxDigits++
		}
		if aLen > bLen {
			aLen -= resNdigits - maxDigits
			if aLen < bLen {
				aLen = (aLen + bLen) / 2
				bLen = aLen
			}
		} else {
			bLen -= resNdigits - maxDigits
			if bLen < aLen {
				aLen = (aLen + bLen) / 2
				bLen = aLen
			}
		}
		resNdigits = maxDigits
	}

	aDigits, bDigits := a.digits(), b.digits()

	dig := getAcc(resNdigits)
	defer putAcc(dig)

	// aDigits/bDigits are MSD-first; dropping digits beyond aLen/bLen
	// drops the least significant ones. i1/i2 index from the end (the
	// LSD of the truncated prefix) toward 0 (the MSD); a product of the
	// digit at i1 and the digit at i2 lands at combined weight
	// (a.weight-i1)+(b.weight-i2), which is resWeight-(i1+i2+2).
	for i1 := aLen - 1; i1 >= 0; i1-- {
		v1 := int(aDigits[i1])
		if v1 == 0 {
			continue
		}
		for i2 := bLen - 1; i2 >= 0; i2-- {
			dig[i1+i2+2] += v1 * int(bDigits[i2])
		}
	}

	res := allocVar(resNdigits)
	rd := res.digits()
	carry := 0
	for i := resNdigits - 1; i >= 0; i-- {
		total := dig[i] + carry
		carry = total / numBase
		rd[i] = digit(total - carry*numBase)
	}
	if carry != 0 {
		panic("pgnumeric: mulVar carry overflow")
	}

	res.weight = resWeight
	res.sign = resSign
	res.dscale = rscale
	*result = res
	roundVar(result, rscale)
	result.strip()
}
