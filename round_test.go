package pgnumeric

import "testing"

func TestDecimalRound(t *testing.T) {
	for _, test := range []struct {
		x     string
		scale int32
		want  string
	}{
		{"12.355", 2, "12.36"},
		{"-12.355", 2, "-12.36"},
		{"12.355", -1, "10"},
		{"12.345", 2, "12.35"},
		{"0.005", 2, "0.01"},
		{"0", 2, "0.00"},
		{"9999.9999", 3, "10000.000"},
		{"1234", 0, "1234"},
	} {
		d := MustParse(test.x)
		got := d.Round(test.scale).Text(-1)
		if got != test.want {
			t.Errorf("Round(%s, %d) = %s, want %s", test.x, test.scale, got, test.want)
		}
	}
}

func TestDecimalTrunc(t *testing.T) {
	for _, test := range []struct {
		x     string
		scale int32
		want  string
	}{
		{"12.355", 2, "12.35"},
		{"-12.355", 2, "-12.35"},
		{"12.999", 0, "12"},
		{"0.005", 2, "0.00"},
	} {
		d := MustParse(test.x)
		got := d.Trunc(test.scale).Text(-1)
		if got != test.want {
			t.Errorf("Trunc(%s, %d) = %s, want %s", test.x, test.scale, got, test.want)
		}
	}
}

func TestDecimalCeilFloor(t *testing.T) {
	for _, test := range []struct {
		x         string
		wantCeil  string
		wantFloor string
	}{
		{"1.5", "2", "1"},
		{"-1.5", "-1", "-2"},
		{"2", "2", "2"},
		{"0", "0", "0"},
	} {
		d := MustParse(test.x)
		if got := d.Ceil().Text(-1); got != test.wantCeil {
			t.Errorf("Ceil(%s) = %s, want %s", test.x, got, test.wantCeil)
		}
		if got := d.Floor().Text(-1); got != test.wantFloor {
			t.Errorf("Floor(%s) = %s, want %s", test.x, got, test.wantFloor)
		}
	}
}
