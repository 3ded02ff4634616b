package mathtool

import (
	"fmt"
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
)

func Combinations(n, r int) (*big.Int, error) {
	if r < 0 || r > n || n < 0 {
		return nil, fmt.Errorf("Invalid values for n and r")
	}
	return new(big.Int).Binomial(int64(n), int64(r)), nil
}

func Permutations(n, r int) (*big.Int, error) {
	if r < 0 || r > n || n < 0 {
		return nil, fmt.Errorf("Invalid values for n and r")
	}
	return new(big.Int).MulRange(int64(n-r+1), int64(n)), nil
}

// QuadraticRoot is one solution of ax²+bx+c=0. Imag is zero for real roots.
type QuadraticRoot struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag,omitempty"`
}

func (r QuadraticRoot) String() string {
	if r.Imag == 0 {
		return strconv.FormatFloat(r.Real, 'g', -1, 64)
	}
	return fmt.Sprintf("%g%+gi", r.Real, r.Imag)
}

func SolveQuadratic(a, b, c float64) ([2]QuadraticRoot, error) {
	if a == 0 {
		return [2]QuadraticRoot{}, fmt.Errorf("Coefficient 'a' cannot be zero for quadratic equation")
	}

	discriminant := b*b - 4*a*c
	if discriminant >= 0 {
		sq := math.Sqrt(discriminant)
		return [2]QuadraticRoot{
			{Real: (-b + sq) / (2 * a)},
			{Real: (-b - sq) / (2 * a)},
		}, nil
	}

	re := -b / (2 * a)
	im := math.Sqrt(-discriminant) / (2 * a)
	return [2]QuadraticRoot{
		{Real: re, Imag: im},
		{Real: re, Imag: -im},
	}, nil
}

func RandomNumber(minVal, maxVal float64) float64 {
	return minVal + rand.Float64()*(maxVal-minVal)
}

// RandomInteger returns a random integer in [minVal, maxVal], inclusive.
func RandomInteger(minVal, maxVal int) (int, error) {
	if maxVal < minVal {
		return 0, fmt.Errorf("max_val must not be less than min_val")
	}
	return minVal + rand.IntN(maxVal-minVal+1), nil
}

func AbsoluteValue(number float64) float64 {
	return math.Abs(number)
}

func Ceiling(number float64) int64 {
	return int64(math.Ceil(number))
}

func Floor(number float64) int64 {
	return int64(math.Floor(number))
}

// RoundNumber rounds half to even, matching conventional statistical
// rounding.
func RoundNumber(number float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.RoundToEven(number*shift) / shift
}

// FractionFromDecimal renders the closest fraction with denominator at most
// 10^6, e.g. 0.75 -> "3/4".
func FractionFromDecimal(decimal float64) (string, error) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return "", fmt.Errorf("cannot convert a non-finite number to a fraction")
	}
	frac := limitDenominator(new(big.Rat).SetFloat64(decimal), big.NewInt(1000000))
	return fmt.Sprintf("%s/%s", frac.Num().String(), frac.Denom().String()), nil
}

// limitDenominator finds the closest rational to x whose denominator does
// not exceed maxDen, walking the continued-fraction expansion.
func limitDenominator(x *big.Rat, maxDen *big.Int) *big.Rat {
	if x.Denom().Cmp(maxDen) <= 0 {
		return x
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())

	for {
		a, rem := new(big.Int).DivMod(n, d, new(big.Int))
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, new(big.Int).Add(p0, new(big.Int).Mul(a, p1)), q2
		n, d = d, rem
	}

	k := new(big.Int).Div(new(big.Int).Sub(maxDen, q0), q1)
	first := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	second := new(big.Rat).SetFrac(p1, q1)

	d1 := new(big.Rat).Sub(first, x)
	d2 := new(big.Rat).Sub(second, x)
	if d2.Abs(d2).Cmp(d1.Abs(d1)) <= 0 {
		return second
	}
	return first
}

func Percentage(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, fmt.Errorf("Whole cannot be zero")
	}
	return part / whole * 100, nil
}
