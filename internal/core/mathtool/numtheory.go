package mathtool

import (
	"fmt"
	"math"
	"math/big"
)

// Factorial returns n! as a big integer; results outgrow int64 from n=21.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Factorial is not defined for negative numbers")
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

func Gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple as a big integer; the product of
// two coprime int64 values already outgrows int64.
func Lcm(a, b int64) *big.Int {
	if a == 0 || b == 0 {
		return big.NewInt(0)
	}
	prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	prod.Abs(prod)
	return prod.Div(prod, big.NewInt(Gcd(a, b)))
}

func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= int64(math.Sqrt(float64(n))); i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func PrimeFactors(n int64) []int64 {
	if n <= 1 {
		return []int64{}
	}
	factors := []int64{}
	d := int64(2)
	for d*d <= n {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
		d++
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Fibonacci returns the nth Fibonacci number, 0-indexed.
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("n must be non-negative")
	}
	a, b := big.NewInt(0), big.NewInt(1)
	if n == 0 {
		return a, nil
	}
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}
