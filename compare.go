package pgnumeric

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. NaN compares equal to NaN and strictly greater than every non-NaN
// value, giving a consistent total order.
func (a Decimal) Cmp(b Decimal) int {
	switch {
	case a.IsNaN() && b.IsNaN():
		return 0
	case a.IsNaN():
		return 1
	case b.IsNaN():
		return -1
	}

	switch {
	case a.Sign() < b.Sign():
		return -1
	case a.Sign() > b.Sign():
		return 1
	}

	av, bv := a.unpack(), b.unpack()
	c := cmpAbs(&av, &bv)
	if a.Sign() < 0 {
		return -c
	}
	return c
}

// Equal reports whether a and b compare equal.
func (a Decimal) Equal(b Decimal) bool { return a.Cmp(b) == 0 }

// NotEqual reports whether a and b do not compare equal.
func (a Decimal) NotEqual(b Decimal) bool { return a.Cmp(b) != 0 }

// GreaterThan reports whether a > b.
func (a Decimal) GreaterThan(b Decimal) bool { return a.Cmp(b) > 0 }

// GreaterThanOrEqual reports whether a >= b.
func (a Decimal) GreaterThanOrEqual(b Decimal) bool { return a.Cmp(b) >= 0 }

// LessThan reports whether a < b.
func (a Decimal) LessThan(b Decimal) bool { return a.Cmp(b) < 0 }

// LessThanOrEqual reports whether a <= b.
func (a Decimal) LessThanOrEqual(b Decimal) bool { return a.Cmp(b) <= 0 }

// Min returns the smaller of a and b, or NaN if either operand is NaN.
func Min(a, b Decimal) Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Decimal) Decimal {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
