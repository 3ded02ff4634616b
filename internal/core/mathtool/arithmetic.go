package mathtool

import (
	"fmt"
	"math"
)

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("Division by zero is not allowed")
	}
	return a / b, nil
}

func Power(base, exponent float64) (float64, error) {
	return finite(math.Pow(base, exponent))
}

func SquareRoot(number float64) (float64, error) {
	if number < 0 {
		return 0, fmt.Errorf("Cannot calculate square root of negative number")
	}
	return math.Sqrt(number), nil
}

// NthRoot returns the real nth root. For negative inputs only odd root
// degrees are defined.
func NthRoot(number float64, n int) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("Root degree cannot be zero")
	}
	if number < 0 && n%2 == 0 {
		return 0, fmt.Errorf("Cannot calculate even root of negative number")
	}
	if number < 0 {
		r, err := finite(math.Pow(-number, 1/float64(n)))
		return -r, err
	}
	return finite(math.Pow(number, 1/float64(n)))
}

// finite rejects NaN and infinities so results stay representable in JSON.
func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("result is not a finite number")
	}
	return v, nil
}
