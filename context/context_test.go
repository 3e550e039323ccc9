package context

import (
	"testing"

	"github.com/hnakamur/pgnumeric"
)

func TestContextArithmeticAndBounding(t *testing.T) {
	c := New(10, 2)
	var x, y pgnumeric.Decimal
	x = c.Parse("1.235")
	y = c.Parse("2.005")
	if err := c.Err(); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	sum := c.Add(x, y)
	if err := c.Err(); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := sum.String(); got != "3.25" {
		t.Errorf("Add = %s, want 3.25", got)
	}
}

func TestContextStickyErrorLatch(t *testing.T) {
	c := New(10, 2)
	zero := c.Parse("0")
	one := c.Parse("1")
	if err := c.Err(); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	r := c.Div(one, zero)
	if !r.IsNaN() {
		t.Errorf("Div(1,0) = %s, want NaN", r.String())
	}

	// Further operations become no-ops while the latch is set.
	r2 := c.Add(one, one)
	if !r2.IsNaN() {
		t.Errorf("Add after latched error = %s, want NaN", r2.String())
	}

	err := c.Err()
	if err == nil {
		t.Fatal("Err() returned nil, want the latched division-by-zero error")
	}

	// The latch is cleared: subsequent operations run normally again.
	r3 := c.Add(one, one)
	if err := c.Err(); err != nil {
		t.Fatalf("Add after clearing latch: %v", err)
	}
	if got := r3.String(); got != "2.00" {
		t.Errorf("Add after clearing latch = %s, want 2.00", got)
	}
}

func TestContextPrecisionScaleAccessors(t *testing.T) {
	c := New(8, 3)
	if c.Precision() != 8 {
		t.Errorf("Precision() = %d, want 8", c.Precision())
	}
	if c.Scale() != 3 {
		t.Errorf("Scale() = %d, want 3", c.Scale())
	}
}
