package pgnumeric

import "testing"

func TestDecimalText(t *testing.T) {
	for _, test := range []struct {
		in    string
		scale int
		want  string
	}{
		{"1.5", -1, "1.5"},
		{"1.5", 0, "1"},
		{"1.5", 4, "1.5000"},
		{"0", 2, "0.00"},
		{"-3.14159", 2, "-3.14"},
	} {
		d := MustParse(test.in)
		if got := d.Text(test.scale); got != test.want {
			t.Errorf("%s.Text(%d) = %s, want %s", test.in, test.scale, got, test.want)
		}
	}
}

func TestDecimalTextSci(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"0", "0e+00"},
		{"100", "1e+02"},
		{"0.001", "1e-03"},
		{"0.0000001234", "1e-07"},
	} {
		d := MustParse(test.in)
		if got := d.TextSci(0); got != test.want {
			t.Errorf("%s.TextSci(0) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestDecimalStringNaN(t *testing.T) {
	if s := NaN.String(); s != "NaN" {
		t.Errorf("NaN.String() = %s, want NaN", s)
	}
}
