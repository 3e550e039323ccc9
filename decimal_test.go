package pgnumeric

import "testing"

func TestDecimalAddSub(t *testing.T) {
	for _, test := range []struct{ x, y, wantAdd, wantSub string }{
		{"1.5", "2.25", "3.75", "-0.75"},
		{"-1.5", "2.25", "0.75", "-3.75"},
		{"10", "10", "20", "0"},
		{"0", "5", "5", "-5"},
	} {
		x, y := MustParse(test.x), MustParse(test.y)
		if got := x.Add(y).String(); got != test.wantAdd {
			t.Errorf("%s + %s = %s, want %s", test.x, test.y, got, test.wantAdd)
		}
		if got := x.Sub(y).String(); got != test.wantSub {
			t.Errorf("%s - %s = %s, want %s", test.x, test.y, got, test.wantSub)
		}
	}
}

func TestDecimalSignAbsNegate(t *testing.T) {
	for _, test := range []struct {
		in         string
		wantSign   int
		wantAbs    string
		wantNegate string
	}{
		{"5", 1, "5", "-5"},
		{"-5", -1, "5", "5"},
		{"0", 0, "0", "0"},
	} {
		d := MustParse(test.in)
		if got := d.Sign(); got != test.wantSign {
			t.Errorf("Sign(%s) = %d, want %d", test.in, got, test.wantSign)
		}
		if got := d.Abs().String(); got != test.wantAbs {
			t.Errorf("Abs(%s) = %s, want %s", test.in, got, test.wantAbs)
		}
		if got := d.Negate().String(); got != test.wantNegate {
			t.Errorf("Negate(%s) = %s, want %s", test.in, got, test.wantNegate)
		}
	}
}

func TestDecimalCmp(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"1.50", "1.5", 0},
		{"-1", "1", -1},
		{"NaN", "NaN", 0},
		{"NaN", "12.345", 1},
		{"12.345", "NaN", -1},
	} {
		got := MustParse(test.x).Cmp(MustParse(test.y))
		if got != test.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestDecimalNaNPropagation(t *testing.T) {
	n := NaN
	one := MustParse("1")
	if !n.Add(one).IsNaN() {
		t.Error("NaN + 1 is not NaN")
	}
	if !one.Mul(n).IsNaN() {
		t.Error("1 * NaN is not NaN")
	}
	r, err := n.Div(one)
	if err != nil {
		t.Fatalf("NaN / 1 returned an error instead of NaN: %v", err)
	}
	if !r.IsNaN() {
		t.Error("NaN / 1 is not NaN")
	}
}

func TestMinMax(t *testing.T) {
	a, b := MustParse("3"), MustParse("7")
	if got := Min(a, b).String(); got != "3" {
		t.Errorf("Min(3,7) = %s, want 3", got)
	}
	if got := Max(a, b).String(); got != "7" {
		t.Errorf("Max(3,7) = %s, want 7", got)
	}
}
