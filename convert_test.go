package pgnumeric

import (
	"math"
	"testing"
)

func TestDecimalToInt64(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 1},
		{"-1", -1},
		{"12345", 12345},
		// Exercises the numBase-aligned case: the trailing zero base-B
		// digits are stripped from storage, leaving gaps that must still
		// count toward the digit's positional value.
		{"100000000", 100000000},
		{"123450000", 123450000},
		{"-9223372036854775808", math.MinInt64},
		{"9223372036854775807", math.MaxInt64},
		{"1.6", 2},
		{"-1.6", -2},
	} {
		got, err := MustParse(test.in).ToInt64()
		if err != nil {
			t.Fatalf("ToInt64(%s): %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ToInt64(%s) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestDecimalToInt64Overflow(t *testing.T) {
	for _, in := range []string{"9223372036854775808", "-9223372036854775809", "1e30"} {
		if _, err := MustParse(in).ToInt64(); err == nil {
			t.Errorf("ToInt64(%s) succeeded, want overflow error", in)
		}
	}
}

func TestDecimalToInt32(t *testing.T) {
	got, err := MustParse("2147483647").ToInt32()
	if err != nil {
		t.Fatalf("ToInt32: %v", err)
	}
	if got != math.MaxInt32 {
		t.Errorf("ToInt32 = %d, want %d", got, math.MaxInt32)
	}

	if _, err := MustParse("2147483648").ToInt32(); err == nil {
		t.Error("ToInt32(2147483648) succeeded, want overflow error")
	}
}
