package calc

import "testing"

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math0(), "0"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-2.5e25, "-2.5e+25"},
	}

	for _, tt := range tests {
		if got := FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// math0 returns negative zero, which must print like zero.
func math0() float64 {
	z := 0.0
	return -z
}
