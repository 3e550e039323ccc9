package pgnumeric

import (
	"errors"
	"testing"
)

func TestDecimalSqrt(t *testing.T) {
	got, err := MustParse("2").Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(2): %v", err)
	}
	want := "1.414213562373095"
	if s := got.String(); s != want {
		t.Errorf("Sqrt(2) = %s, want %s", s, want)
	}
}

func TestDecimalSqrtNegative(t *testing.T) {
	_, err := MustParse("-1").Sqrt()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Sqrt(-1) = %v, want ErrInvalidArgument", err)
	}
}

func TestDecimalSqrtZero(t *testing.T) {
	got, err := MustParse("0").Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(0): %v", err)
	}
	if got.Sign() != 0 {
		t.Errorf("Sqrt(0) = %s, want 0", got.String())
	}
}

func TestDecimalExp(t *testing.T) {
	got, err := MustParse("1").Exp()
	if err != nil {
		t.Fatalf("Exp(1): %v", err)
	}
	want := "2.7182818284590452"
	if s := got.String(); s != want {
		t.Errorf("Exp(1) = %s, want %s", s, want)
	}
}

func TestDecimalExpOverflow(t *testing.T) {
	_, err := MustParse("100000000").Exp()
	if !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("Exp(100000000) = %v, want ErrValueOutOfRange", err)
	}
}

func TestDecimalPowInteger(t *testing.T) {
	got, err := MustParse("2").Pow(MustParse("31"))
	if err != nil {
		t.Fatalf("Pow(2, 31): %v", err)
	}
	want := "2147483648.0000000000000000"
	if s := got.String(); s != want {
		t.Errorf("Pow(2, 31) = %s, want %s", s, want)
	}
}

func TestDecimalPowZeroNegative(t *testing.T) {
	for _, exp := range []string{"-1", "-5", "-0.5"} {
		_, err := MustParse("0").Pow(MustParse(exp))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Pow(0, %s) = %v, want ErrInvalidArgument", exp, err)
		}
	}
}

func TestDecimalPowZeroNonNegative(t *testing.T) {
	for _, exp := range []string{"0.5", "2.5"} {
		got, err := MustParse("0").Pow(MustParse(exp))
		if err != nil {
			t.Fatalf("Pow(0, %s): %v", exp, err)
		}
		if got.Sign() != 0 {
			t.Errorf("Pow(0, %s) = %s, want 0", exp, got.String())
		}
	}
}
