package mathtool

import (
	"fmt"
	"math"
)

// Log computes the logarithm of number in the given base.
func Log(number, base float64) (float64, error) {
	if number <= 0 {
		return 0, fmt.Errorf("Number must be positive")
	}
	if base <= 0 || base == 1 {
		return 0, fmt.Errorf("Base must be positive and not equal to 1")
	}
	return math.Log(number) / math.Log(base), nil
}

func Log10(number float64) (float64, error) {
	if number <= 0 {
		return 0, fmt.Errorf("Number must be positive")
	}
	return math.Log10(number), nil
}

func Ln(number float64) (float64, error) {
	if number <= 0 {
		return 0, fmt.Errorf("Number must be positive")
	}
	return math.Log(number), nil
}
