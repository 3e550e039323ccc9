package pgnumeric

// Round returns d rounded to scale decimal digits after the point, half
// away from zero. scale may be negative (e.g. Round(-1) rounds to the
// nearest 10); the packed result's display scale is never negative, so a
// negative scale still shows no fractional digits.
func (d Decimal) Round(scale int32) Decimal {
	if d.IsNaN() {
		return NaN
	}
	v := d.unpack()
	roundVar(&v, scale)
	if v.dscale < 0 {
		v.dscale = 0
	}
	r, err := packVar(&v)
	if err != nil {
		panic(err)
	}
	return r
}

// Trunc returns d truncated toward zero to scale decimal digits after
// the point. As with Round, a negative scale truncates at the
// corresponding integer position but the packed result's display scale
// is clamped to 0.
func (d Decimal) Trunc(scale int32) Decimal {
	if d.IsNaN() {
		return NaN
	}
	v := d.unpack()
	truncVar(&v, scale)
	if v.dscale < 0 {
		v.dscale = 0
	}
	r, err := packVar(&v)
	if err != nil {
		panic(err)
	}
	return r
}

// Ceil returns the smallest integer value >= d.
func (d Decimal) Ceil() Decimal {
	if d.IsNaN() {
		return NaN
	}
	t := d.Trunc(0)
	if d.Sign() > 0 && !t.Equal(d) {
		return t.Add(One)
	}
	return t
}

// Floor returns the largest integer value <= d.
func (d Decimal) Floor() Decimal {
	if d.IsNaN() {
		return NaN
	}
	t := d.Trunc(0)
	if d.Sign() < 0 && !t.Equal(d) {
		return t.Sub(One)
	}
	return t
}
