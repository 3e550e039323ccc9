package pgnumeric

// selectDivScale picks the result scale for an inherently inexact
// quotient (Div, and Log10's ln(x)/ln(b)) from the operands' weights,
// first significant digits,
// and display scales, aiming for at least MinSigDigits significant
// digits in the result without letting it run away in width.
func selectDivScale(a, b *numericVar) int32 {
	weight1, firstDigit1 := int32(0), digit(0)
	for i := 0; i < a.ndigits; i++ {
		firstDigit1 = a.digitAt(i)
		if firstDigit1 != 0 {
			weight1 = a.weight - int32(i)
			break
		}
	}

	weight2, firstDigit2 := int32(0), digit(0)
	for i := 0; i < b.ndigits; i++ {
		firstDigit2 = b.digitAt(i)
		if firstDigit2 != 0 {
			weight2 = b.weight - int32(i)
			break
		}
	}

	// Estimate the quotient's weight. If the leading digits are equal we
	// can't tell which operand is larger, so assume pessimistically that
	// a < b.
	qweight := weight1 - weight2
	if firstDigit1 <= firstDigit2 {
		qweight--
	}

	rscale := int32(MinSigDigits) - qweight*decDigits
	rscale = max32(rscale, a.dscale)
	rscale = max32(rscale, b.dscale)
	rscale = max32(rscale, 0)
	rscale = min32(rscale, MaxDisplayScale)
	return rscale
}
