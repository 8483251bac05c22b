package hw

import "testing"

func TestRoundDeci(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{4, 0},
		{5, 1}, // ties round away from zero
		{14, 1},
		{15, 2},
		{234, 23},
		{235, 24},
		{-4, 0},
		{-5, -1},
		{-15, -2},
		{-234, -23},
		{-235, -24},
	}
	for _, c := range cases {
		if got := roundDeci(c.in); got != c.want {
			t.Errorf("roundDeci(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
