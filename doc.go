/*
Package pgnumeric implements an exact, arbitrary-precision decimal number
type modeled on PostgreSQL's numeric type.

A Decimal is either the special token NaN, or a signed, arbitrary-precision
number represented internally as a little-endian-free array of base-B
"digits" (B is a compile-time radix; see the radix_*.go files) together with
a weight (the power of B contributed by the first stored digit) and a
display scale (the number of decimal digits to render after the point).
NaN propagates through every operation that returns a Decimal: if any
operand is NaN, so is the result.

Decimal values returned from any function in this package are immutable;
there is no in-place mutation of a value a caller already holds. Binary
operations such as Add and Mul are ordinary value-returning functions/
methods — there is no receiver aliasing to manage, unlike math/big's API.

Most operations, Mod and DivTrunc included, are exact. Division and the
transcendental functions (Sqrt, Ln, Log10, Exp, Pow) are inherently
inexact; for those, the scale of the result is chosen automatically to
provide at least MinSigDigits significant digits (selectDivScale for Div
and Log10, a per-function estimate for the others), unless the caller
pins a scale with Round or a parse-time precision/scale pair.

Internally, operations work with a mutable numericVar that owns a growable
digit buffer with one reserved leading slot, so that rounding can propagate
a carry into a new most-significant digit without reallocating. A numericVar
is unpacked from an immutable Decimal, mutated by some sequence of
arithmetic primitives, and then packed back into a new, minimal, immutable
Decimal. All binary and unary operations tolerate their result aliasing one
of their operands at the numericVar level, because the new digit buffer is
fully populated before the old one is discarded.
*/
package pgnumeric
