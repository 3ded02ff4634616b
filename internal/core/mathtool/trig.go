package mathtool

import (
	"fmt"
	"math"
)

// Sin, Cos and Tan take the angle in radians unless degrees is set.
func Sin(angle float64, degrees bool) float64 {
	if degrees {
		angle = angle * math.Pi / 180
	}
	return math.Sin(angle)
}

func Cos(angle float64, degrees bool) float64 {
	if degrees {
		angle = angle * math.Pi / 180
	}
	return math.Cos(angle)
}

func Tan(angle float64, degrees bool) float64 {
	if degrees {
		angle = angle * math.Pi / 180
	}
	return math.Tan(angle)
}

// Asin, Acos and Atan return radians unless degrees is set.
func Asin(value float64, degrees bool) (float64, error) {
	if value < -1 || value > 1 {
		return 0, fmt.Errorf("Value must be between -1 and 1")
	}
	result := math.Asin(value)
	if degrees {
		result = result * 180 / math.Pi
	}
	return result, nil
}

func Acos(value float64, degrees bool) (float64, error) {
	if value < -1 || value > 1 {
		return 0, fmt.Errorf("Value must be between -1 and 1")
	}
	result := math.Acos(value)
	if degrees {
		result = result * 180 / math.Pi
	}
	return result, nil
}

func Atan(value float64, degrees bool) float64 {
	result := math.Atan(value)
	if degrees {
		result = result * 180 / math.Pi
	}
	return result
}
