// +build !pgnumeric_base100,!pgnumeric_base10

package pgnumeric

// digit holds one base-numBase digit. numBase fits comfortably in an
// int16 for all three supported radixes; arithmetic accumulators widen to
// int for carry/borrow headroom (see mul.go, div.go).
type digit = int16

const (
	// numBase is the compile-time radix B. Exactly one of the
	// radix_*.go files is compiled in, selected by build tag.
	numBase = 10000
	// decDigits is log10(numBase): the number of decimal digits packed
	// into one stored digit.
	decDigits = 4
	// halfNBase is numBase/2, the threshold used when a carry decision
	// must be made on a whole dropped digit rather than an intra-digit
	// remainder.
	halfNBase = 5000
	// mulGuardDigits is how many extra base-B digits multiplication
	// keeps past the requested result scale; divGuardDigits is how many
	// extra decimal digits of scale fast division computes past the
	// requested rscale. Both absorb rounding error in intermediate steps.
	mulGuardDigits = 2
	divGuardDigits = 4
)
