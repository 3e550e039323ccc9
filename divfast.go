package pgnumeric

// divVarFast computes result = a/b rounded to rscale+divGuardDigits
// decimal digits (callers that need exactly rscale round again), for use by the
// transcendental routines (sqrt, ln, exp's inverse) that only need a
// result accurate to within their own guard digits, not an exact
// quotient.
//
// numeric.c's div_var_fast earns its name by estimating each quotient
// digit from a cached float64 reciprocal of the divisor instead of doing
// full-precision Knuth division, because its accumulator is a 32-bit
// int and repeated exact division at the scales transcendentals need
// would be too slow otherwise. Go's int is 64 bits on every platform
// this package targets, which removes the overflow pressure that
// motivated the float estimate, so here divVarFast is exact Knuth
// division with divGuardDigits of extra scale. Exact is always within
// the "may be off in the least-significant digits" contract its callers
// rely on — it just happens never to need the slack.
func divVarFast(a, b *numericVar, result *numericVar, rscale int32) error {
	return divVar(a, b, result, rscale+divGuardDigits, true)
}
