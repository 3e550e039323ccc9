package pgnumeric

// logVar computes log base `base` of x as ln(x)/ln(base), at a local
// scale boost to absorb the two ln() calls' own error before the final
// division rounds down to rscale.
func logVar(base, x *numericVar, result *numericVar, rscale int32) error {
	localRscale := rscale + 8

	var lnBase numericVar
	if err := lnVar(base, &lnBase, localRscale); err != nil {
		return err
	}
	var lnX numericVar
	if err := lnVar(x, &lnX, localRscale); err != nil {
		return err
	}
	if err := divVarFast(&lnX, &lnBase, result, rscale); err != nil {
		return err
	}
	roundVar(result, rscale)
	return nil
}

// Log10 returns the base-10 logarithm of d.
func (d Decimal) Log10() (Decimal, error) {
	if d.IsNaN() {
		return NaN, nil
	}
	v := d.unpack()
	rscale := selectDivScale(&v, &v)
	if rscale < MinSigDigits {
		rscale = MinSigDigits
	}
	ten := Ten.unpack()
	var r numericVar
	if err := logVar(&ten, &v, &r, rscale); err != nil {
		return Decimal{}, err
	}
	return packVar(&r)
}
