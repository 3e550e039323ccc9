package pgnumeric

import (
	"errors"
	"testing"
)

func TestDecimalDiv(t *testing.T) {
	for _, test := range []struct{ x, y, want string }{
		{"1", "3", "0.33333333333333333333"},
		{"10", "4", "2.5000000000000000"},
		{"-7", "2", "-3.5000000000000000"},
	} {
		got, err := MustParse(test.x).Div(MustParse(test.y))
		if err != nil {
			t.Fatalf("%s / %s: %v", test.x, test.y, err)
		}
		if s := got.String(); s != test.want {
			t.Errorf("%s / %s = %s, want %s", test.x, test.y, s, test.want)
		}
	}
}

func TestDecimalDivByZero(t *testing.T) {
	_, err := MustParse("1").Div(MustParse("0"))
	if err == nil {
		t.Fatal("expected division by zero error")
	}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got error %v, want ErrDivisionByZero", err)
	}
}

func TestDecimalDivTrunc(t *testing.T) {
	for _, test := range []struct{ x, y, want string }{
		{"1.243", "0.2", "6"},
		{"7", "2", "3"},
		{"-7", "2", "-3"},
	} {
		got, err := MustParse(test.x).DivTrunc(MustParse(test.y))
		if err != nil {
			t.Fatalf("DivTrunc(%s, %s): %v", test.x, test.y, err)
		}
		if s := got.String(); s != test.want {
			t.Errorf("DivTrunc(%s, %s) = %s, want %s", test.x, test.y, s, test.want)
		}
	}
}

func TestDecimalMod(t *testing.T) {
	for _, test := range []struct{ x, y, want string }{
		{"1.243", "0.2", "0.043"},
		{"7", "2", "1"},
		{"-7", "2", "-1"},
	} {
		got, err := MustParse(test.x).Mod(MustParse(test.y))
		if err != nil {
			t.Fatalf("Mod(%s, %s): %v", test.x, test.y, err)
		}
		if s := got.String(); s != test.want {
			t.Errorf("Mod(%s, %s) = %s, want %s", test.x, test.y, s, test.want)
		}
	}
}
