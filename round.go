package pgnumeric

// roundVar rounds v in place to rscale decimal digits after the point,
// half away from zero, and sets v.dscale = rscale. Carry may propagate
// all the way past the current most-significant digit, growing weight
// by one; that is exactly what the reserved leading slot in v.buf exists
// for.
func roundVar(v *numericVar, rscale int32) {
	v.dscale = rscale

	// di: decimal digits to retain, counting from the most significant
	// stored digit.
	di := (int(v.weight)+1)*decDigits + int(rscale)
	if di < 0 {
		*v = zeroVar(rscale)
		return
	}

	ndigits := (di + decDigits - 1) / decDigits
	if ndigits > v.ndigits {
		// Retaining more digits than are stored just pads with
		// implicit trailing zeros; nothing to round.
		v.dscale = rscale
		return
	}

	// dropCount: how many of the last retained base-B digit's decDigits
	// decimal characters are being discarded (0 means di lands exactly
	// on a base-B digit boundary, so the very next stored digit, if any,
	// decides the carry wholesale).
	dropCount := ndigits*decDigits - di
	nextDigit := int(v.digitAt(ndigits))
	v.ndigits = ndigits

	var carry int
	if dropCount == 0 {
		if nextDigit >= halfNBase {
			carry = 1
		}
		carry = propagateCarry(v, ndigits-1, carry)
	} else {
		pow10 := 1
		for i := 0; i < dropCount; i++ {
			pow10 *= 10
		}
		last := int(v.digitAt(ndigits - 1))
		extra := last % pow10
		last -= extra
		if extra >= pow10/2 {
			last += pow10
		}
		if last >= numBase {
			last -= numBase
			carry = 1
		}
		v.buf[v.off+ndigits-1] = digit(last)
		carry = propagateCarry(v, ndigits-2, carry)
	}

	if carry != 0 {
		// Overflowed past the most significant retained digit: use the
		// reserved leading slot instead of reallocating.
		v.off--
		v.ndigits++
		v.buf[v.off] = 1
		v.weight++
	}

	v.strip()
	v.dscale = rscale
}

// propagateCarry adds carry into v.buf[v.off+i], then v.buf[v.off+i-1],
// and so on while it keeps overflowing, returning whatever carry is left
// once it runs past the start of the retained digits (i < 0).
func propagateCarry(v *numericVar, i int, carry int) int {
	for carry != 0 && i >= 0 {
		d := int(v.buf[v.off+i]) + carry
		if d >= numBase {
			v.buf[v.off+i] = digit(d - numBase)
			carry = 1
		} else {
			v.buf[v.off+i] = digit(d)
			carry = 0
		}
		i--
	}
	return carry
}

// truncVar truncates v in place toward zero to rscale decimal digits,
// with no rounding, and sets v.dscale = rscale.
func truncVar(v *numericVar, rscale int32) {
	v.dscale = rscale

	di := (int(v.weight)+1)*decDigits + int(rscale)
	if di <= 0 {
		*v = zeroVar(rscale)
		return
	}

	ndigits := (di + decDigits - 1) / decDigits
	if ndigits > v.ndigits {
		v.dscale = rscale
		return
	}

	dropCount := ndigits*decDigits - di
	v.ndigits = ndigits
	if dropCount != 0 {
		pow10 := 1
		for i := 0; i < dropCount; i++ {
			pow10 *= 10
		}
		last := int(v.digitAt(ndigits - 1))
		v.buf[v.off+ndigits-1] = digit(last - last%pow10)
	}

	v.strip()
	v.dscale = rscale
}
