package pgnumeric

import "testing"

func TestParse(t *testing.T) {
	for _, test := range []struct{ in, want string }{
		{"0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"1.5", "1.5"},
		{"-1.5", "-1.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{"+5", "5"},
		{"0012.340", "12.340"},
		{"1e3", "1000"},
		{"1.5e2", "150"},
		{"1.5e-2", "0.015"},
		{"-1.5e+2", "-150"},
		{"  42  ", "42"},
	} {
		d, err := Parse(test.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.in, err)
		}
		if s := d.String(); s != test.want {
			t.Errorf("Parse(%q).String() = %q, want %q", test.in, s, test.want)
		}
	}
}

func TestParseNaN(t *testing.T) {
	d, err := Parse("NaN")
	if err != nil {
		t.Fatalf("Parse(NaN): %v", err)
	}
	if !d.IsNaN() {
		t.Errorf("Parse(NaN) did not produce NaN")
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "--1", "1e", "."} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestParseScaleClamp(t *testing.T) {
	d, err := ParseScale("123.456", 6, 2)
	if err != nil {
		t.Fatalf("ParseScale: %v", err)
	}
	if s := d.String(); s != "123.46" {
		t.Errorf("ParseScale(123.456, 6, 2) = %s, want 123.46", s)
	}

	if _, err := ParseScale("12345.6", 5, 2); err == nil {
		t.Errorf("ParseScale(12345.6, 5, 2) succeeded, want overflow error")
	}
}

// TestParseScaleLeadingZeroDigit guards against a radix-dependent bounds
// check: "1.00" has a single true digit before the point, which must fit
// in precision-scale=1 regardless of how many digits the base-B
// representation pads it to internally.
func TestParseScaleLeadingZeroDigit(t *testing.T) {
	d, err := ParseScale("1.00", 3, 2)
	if err != nil {
		t.Fatalf("ParseScale(1.00, 3, 2): %v", err)
	}
	if s := d.String(); s != "1.00" {
		t.Errorf("ParseScale(1.00, 3, 2) = %s, want 1.00", s)
	}
}
