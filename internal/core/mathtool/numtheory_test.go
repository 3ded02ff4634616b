package mathtool

import (
	"reflect"
	"testing"
)

func TestFactorial(t *testing.T) {
	if _, err := Factorial(-1); err == nil {
		t.Fatalf("expected error for negative input")
	}

	got, err := Factorial(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "1" {
		t.Fatalf("expected 1, got %s", got)
	}

	// beyond int64 range
	got, err = Factorial(25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "15511210043330985984000000" {
		t.Fatalf("unexpected 25!: %s", got)
	}
}

func TestGcdLcm(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		gcd  int64
		lcm  string
	}{
		{name: "coprime", a: 7, b: 9, gcd: 1, lcm: "63"},
		{name: "shared factor", a: 12, b: 18, gcd: 6, lcm: "36"},
		{name: "zero operand", a: 0, b: 5, gcd: 5, lcm: "0"},
		{name: "negative", a: -4, b: 6, gcd: 2, lcm: "12"},
		// product of coprime operands beyond int64
		{name: "large coprime", a: 1 << 40, b: 1<<40 - 1, gcd: 1, lcm: "1208925819613529663078400"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Gcd(tc.a, tc.b); got != tc.gcd {
				t.Fatalf("gcd: expected %d, got %d", tc.gcd, got)
			}
			if got := Lcm(tc.a, tc.b); got.String() != tc.lcm {
				t.Fatalf("lcm: expected %s, got %s", tc.lcm, got)
			}
		})
	}
}

func TestIsPrime(t *testing.T) {
	cases := []struct {
		n      int64
		expect bool
	}{
		{n: -3, expect: false},
		{n: 1, expect: false},
		{n: 2, expect: true},
		{n: 9, expect: false},
		{n: 97, expect: true},
		{n: 7919, expect: true},
		{n: 7921, expect: false},
	}

	for _, tc := range cases {
		tc := tc
		if got := IsPrime(tc.n); got != tc.expect {
			t.Fatalf("IsPrime(%d): expected %v, got %v", tc.n, tc.expect, got)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	cases := []struct {
		n      int64
		expect []int64
	}{
		{n: 1, expect: []int64{}},
		{n: 12, expect: []int64{2, 2, 3}},
		{n: 97, expect: []int64{97}},
		{n: 360, expect: []int64{2, 2, 2, 3, 3, 5}},
	}

	for _, tc := range cases {
		tc := tc
		got := PrimeFactors(tc.n)
		if !reflect.DeepEqual(got, tc.expect) {
			t.Fatalf("PrimeFactors(%d): expected %v, got %v", tc.n, tc.expect, got)
		}
	}
}

func TestFibonacci(t *testing.T) {
	if _, err := Fibonacci(-1); err == nil {
		t.Fatalf("expected error for negative index")
	}

	expect := []string{"0", "1", "1", "2", "3", "5", "8", "13"}
	for i, want := range expect {
		got, err := Fibonacci(i)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if got.String() != want {
			t.Fatalf("Fibonacci(%d): expected %s, got %s", i, want, got)
		}
	}

	// arbitrary precision holds for large indexes
	got, _ := Fibonacci(100)
	if got.String() != "354224848179261915075" {
		t.Fatalf("unexpected Fibonacci(100): %s", got)
	}
}
