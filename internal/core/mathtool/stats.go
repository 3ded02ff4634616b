package mathtool

import (
	"fmt"
	"math"
	"sort"
)

func Mean(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("List cannot be empty")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}

func Median(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("List cannot be empty")
	}
	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Mode returns the most frequent value; on ties, the one appearing first.
func Mode(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("List cannot be empty")
	}
	counts := map[float64]int{}
	for _, n := range numbers {
		counts[n]++
	}
	best := numbers[0]
	for _, n := range numbers {
		if counts[n] > counts[best] {
			best = n
		}
	}
	return best, nil
}

// StandardDeviation computes the sample deviation by default; set sample to
// false for the population deviation.
func StandardDeviation(numbers []float64, sample bool) (float64, error) {
	v, err := Variance(numbers, sample)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func Variance(numbers []float64, sample bool) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("List cannot be empty")
	}
	if sample && len(numbers) < 2 {
		return 0, fmt.Errorf("variance requires at least two data points")
	}
	m, _ := Mean(numbers)
	sum := 0.0
	for _, n := range numbers {
		d := n - m
		sum += d * d
	}
	if sample {
		return sum / float64(len(numbers)-1), nil
	}
	return sum / float64(len(numbers)), nil
}
