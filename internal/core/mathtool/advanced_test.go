package mathtool

import (
	"math"
	"testing"
)

func TestCombinationsPermutations(t *testing.T) {
	cases := []struct {
		name    string
		n, r    int
		comb    string
		perm    string
		wantErr bool
	}{
		{name: "basic", n: 5, r: 2, comb: "10", perm: "20"},
		{name: "choose all", n: 6, r: 6, comb: "1", perm: "720"},
		{name: "choose none", n: 6, r: 0, comb: "1", perm: "1"},
		{name: "choose three", n: 10, r: 3, comb: "120", perm: "720"},
		{name: "r exceeds n", n: 3, r: 4, wantErr: true},
		{name: "negative", n: -1, r: 0, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			comb, err := Combinations(tc.n, tc.r)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if comb.String() != tc.comb {
				t.Fatalf("combinations: expected %s, got %s", tc.comb, comb)
			}
			perm, err := Permutations(tc.n, tc.r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if perm.String() != tc.perm {
				t.Fatalf("permutations: expected %s, got %s", tc.perm, perm)
			}
		})
	}

	// beyond int64 territory
	comb, err := Combinations(100, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comb.String() != "100891344545564193334812497256" {
		t.Fatalf("unexpected C(100,50): %s", comb)
	}
}

func TestSolveQuadratic(t *testing.T) {
	if _, err := SolveQuadratic(0, 1, 2); err == nil {
		t.Fatalf("expected error for a=0")
	}

	roots, err := SolveQuadratic(1, -3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roots[0].Real != 2 || roots[0].Imag != 0 {
		t.Fatalf("expected root 2, got %v", roots[0])
	}
	if roots[1].Real != 1 || roots[1].Imag != 0 {
		t.Fatalf("expected root 1, got %v", roots[1])
	}

	// negative discriminant: conjugate pair
	roots, err = SolveQuadratic(1, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roots[0].Real != -1 || roots[0].Imag != 2 {
		t.Fatalf("expected -1+2i, got %v", roots[0])
	}
	if roots[1].Real != -1 || roots[1].Imag != -2 {
		t.Fatalf("expected -1-2i, got %v", roots[1])
	}
	if roots[0].String() != "-1+2i" {
		t.Fatalf("unexpected rendering: %s", roots[0])
	}
}

func TestRandomInteger(t *testing.T) {
	for i := 0; i < 100; i++ {
		got, err := RandomInteger(3, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < 3 || got > 5 {
			t.Fatalf("out of range: %d", got)
		}
	}
	if _, err := RandomInteger(5, 3); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestRandomNumberRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := RandomNumber(-1, 1)
		if got < -1 || got >= 1 {
			t.Fatalf("out of range: %v", got)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := Ceiling(2.1); got != 3 {
		t.Fatalf("ceiling: expected 3, got %d", got)
	}
	if got := Floor(-2.1); got != -3 {
		t.Fatalf("floor: expected -3, got %d", got)
	}
	if got := RoundNumber(2.5, 0); got != 2 {
		t.Fatalf("round half even: expected 2, got %v", got)
	}
	if got := RoundNumber(3.14159, 2); got != 3.14 {
		t.Fatalf("expected 3.14, got %v", got)
	}
}

func TestFractionFromDecimal(t *testing.T) {
	cases := []struct {
		name    string
		decimal float64
		expect  string
	}{
		{name: "exact", decimal: 0.75, expect: "3/4"},
		{name: "whole", decimal: 5, expect: "5/1"},
		{name: "negative", decimal: -0.5, expect: "-1/2"},
		{name: "repeating third", decimal: 1.0 / 3.0, expect: "1/3"},
		{name: "pi approx", decimal: math.Pi, expect: "3126535/995207"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := FractionFromDecimal(tc.decimal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expect {
				t.Fatalf("expected %s, got %s", tc.expect, got)
			}
		})
	}

	if _, err := FractionFromDecimal(math.Inf(1)); err == nil {
		t.Fatalf("expected error for infinity")
	}
}

func TestPercentage(t *testing.T) {
	got, err := Percentage(25, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
	if _, err := Percentage(1, 0); err == nil {
		t.Fatalf("expected error for zero whole")
	}
}
