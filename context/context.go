// Package context bundles a precision/scale pair with a sticky
// first-error latch for chaining pgnumeric.Decimal operations.
//
// Once any Context method reports an error, the Context remembers it and
// every subsequent method becomes a no-op that returns pgnumeric.NaN,
// until Err is called to inspect and clear the latch. This mirrors the
// teacher's Context, which silently produces an undefined result after a
// NaN-raising operation until its own Err is checked — adapted here to
// this package's explicit (Decimal, error) style instead of panic and
// recover, since this package's Decimal never holds an error by itself.
package context

import (
	"github.com/hnakamur/pgnumeric"
)

// Context bounds results to a fixed precision and scale and accumulates
// the first error encountered across a chain of operations.
type Context struct {
	precision int32 // negative means unlimited
	scale     int32
	err       error
}

// New creates a Context bounding results to precision total significant
// digits (precision < 0 means unlimited) and scale fractional digits.
func New(precision, scale int32) *Context {
	return &Context{precision: precision, scale: scale}
}

// Precision returns c's configured precision.
func (c *Context) Precision() int32 { return c.precision }

// Scale returns c's configured scale.
func (c *Context) Scale() int32 { return c.scale }

// Err returns the first error latched since the last call to Err, if
// any, and clears the latch.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// latch records err as c's sticky fault if none is already latched.
func (c *Context) latch(err error) pgnumeric.Decimal {
	if c.err == nil {
		c.err = err
	}
	return pgnumeric.NaN
}

// bound clamps d to c's precision and scale, latching any resulting
// error and yielding NaN in its place.
func (c *Context) bound(d pgnumeric.Decimal, err error) pgnumeric.Decimal {
	if err != nil {
		return c.latch(err)
	}
	r, err := d.ClampTo(c.precision, c.scale)
	if err != nil {
		return c.latch(err)
	}
	return r
}

// blocked reports whether c already holds a latched error, in which case
// every operation is a no-op.
func (c *Context) blocked() bool { return c.err != nil }

// Parse parses s and bounds it to c's precision and scale.
func (c *Context) Parse(s string) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := pgnumeric.ParseScale(s, c.precision, c.scale)
	return c.bound(d, err)
}

// Add returns the bounded sum x+y.
func (c *Context) Add(x, y pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Add(y), nil)
}

// Sub returns the bounded difference x-y.
func (c *Context) Sub(x, y pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Sub(y), nil)
}

// Mul returns the bounded product x*y.
func (c *Context) Mul(x, y pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Mul(y), nil)
}

// Div returns the bounded quotient x/y.
func (c *Context) Div(x, y pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Div(y)
	return c.bound(d, err)
}

// Mod returns the bounded remainder of x/y.
func (c *Context) Mod(x, y pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Mod(y)
	return c.bound(d, err)
}

// Neg returns the bounded negation of x.
func (c *Context) Neg(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Negate(), nil)
}

// Abs returns the bounded absolute value of x.
func (c *Context) Abs(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Abs(), nil)
}

// Round returns x rounded to scale digits, then bounded to c's precision
// and scale.
func (c *Context) Round(x pgnumeric.Decimal, scale int32) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Round(scale), nil)
}

// Trunc returns x truncated to scale digits, then bounded to c's
// precision and scale.
func (c *Context) Trunc(x pgnumeric.Decimal, scale int32) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Trunc(scale), nil)
}

// Ceil returns the bounded ceiling of x.
func (c *Context) Ceil(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Ceil(), nil)
}

// Floor returns the bounded floor of x.
func (c *Context) Floor(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	return c.bound(x.Floor(), nil)
}

// Sqrt returns the bounded square root of x.
func (c *Context) Sqrt(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Sqrt()
	return c.bound(d, err)
}

// Ln returns the bounded natural logarithm of x.
func (c *Context) Ln(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Ln()
	return c.bound(d, err)
}

// Log10 returns the bounded base-10 logarithm of x.
func (c *Context) Log10(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Log10()
	return c.bound(d, err)
}

// Exp returns the bounded value of e^x.
func (c *Context) Exp(x pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := x.Exp()
	return c.bound(d, err)
}

// Pow returns the bounded value of base^exp.
func (c *Context) Pow(base, exp pgnumeric.Decimal) pgnumeric.Decimal {
	if c.blocked() {
		return pgnumeric.NaN
	}
	d, err := base.Pow(exp)
	return c.bound(d, err)
}
