package mathtool

import (
	"fmt"
	"math"
)

func CircleArea(radius float64) (float64, error) {
	if radius < 0 {
		return 0, fmt.Errorf("Radius must be non-negative")
	}
	return math.Pi * radius * radius, nil
}

func CircleCircumference(radius float64) (float64, error) {
	if radius < 0 {
		return 0, fmt.Errorf("Radius must be non-negative")
	}
	return 2 * math.Pi * radius, nil
}

func RectangleArea(length, width float64) (float64, error) {
	if length < 0 || width < 0 {
		return 0, fmt.Errorf("Length and width must be non-negative")
	}
	return length * width, nil
}

func TriangleArea(base, height float64) (float64, error) {
	if base < 0 || height < 0 {
		return 0, fmt.Errorf("Base and height must be non-negative")
	}
	return 0.5 * base * height, nil
}

func SphereVolume(radius float64) (float64, error) {
	if radius < 0 {
		return 0, fmt.Errorf("Radius must be non-negative")
	}
	return 4.0 / 3.0 * math.Pi * radius * radius * radius, nil
}

func Distance2D(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func Distance3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x2-x1, y2-y1, z2-z1
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
