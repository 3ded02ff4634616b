package mathtool

import (
	"encoding/json"
	"math"

	"mathmcp/internal/core/tool"
)

type param struct {
	name     string
	typ      string
	required bool
	desc     string
}

func num(name string) param  { return param{name: name, typ: "number", required: true} }
func intp(name string) param { return param{name: name, typ: "integer", required: true} }
func optNum(name string) param {
	return param{name: name, typ: "number"}
}
func optInt(name string) param {
	return param{name: name, typ: "integer"}
}
func optBool(name string) param {
	return param{name: name, typ: "boolean"}
}
func numList(name string) param {
	return param{name: name, typ: "number[]", required: true}
}

func schema(params ...param) json.RawMessage {
	props := map[string]any{}
	required := []string{}
	for _, p := range params {
		var prop map[string]any
		if p.typ == "number[]" {
			prop = map[string]any{"type": "array", "items": map[string]any{"type": "number"}}
		} else {
			prop = map[string]any{"type": p.typ}
		}
		if p.desc != "" {
			prop["description"] = p.desc
		}
		props[p.name] = prop
		if p.required {
			required = append(required, p.name)
		}
	}
	doc := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return encoded
}

// RegisterAll adds the complete math catalog to the registry.
func RegisterAll(r tool.RegistryHandler) error {
	for _, t := range catalog() {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func catalog() []tool.Tool {
	return []tool.Tool{
		// == basic arithmetic ==
		{
			Name:        "add",
			Description: "Add two numbers.",
			InputSchema: schema(num("a"), num("b")),
			Handler: twoFloats("a", "b", func(a, b float64) (any, error) {
				return Add(a, b), nil
			}),
		},
		{
			Name:        "subtract",
			Description: "Subtract b from a.",
			InputSchema: schema(num("a"), num("b")),
			Handler: twoFloats("a", "b", func(a, b float64) (any, error) {
				return Subtract(a, b), nil
			}),
		},
		{
			Name:        "multiply",
			Description: "Multiply two numbers.",
			InputSchema: schema(num("a"), num("b")),
			Handler: twoFloats("a", "b", func(a, b float64) (any, error) {
				return Multiply(a, b), nil
			}),
		},
		{
			Name:        "divide",
			Description: "Divide a by b. Returns error if b is zero.",
			InputSchema: schema(num("a"), num("b")),
			Handler: twoFloats("a", "b", func(a, b float64) (any, error) {
				return Divide(a, b)
			}),
		},
		{
			Name:        "power",
			Description: "Raise base to the power of exponent.",
			InputSchema: schema(num("base"), num("exponent")),
			Handler: twoFloats("base", "exponent", func(a, b float64) (any, error) {
				return Power(a, b)
			}),
		},
		{
			Name:        "square_root",
			Description: "Calculate the square root of a number.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return SquareRoot(v)
			}),
		},
		{
			Name:        "nth_root",
			Description: "Calculate the nth root of a number.",
			InputSchema: schema(num("number"), intp("n")),
			Handler: func(args tool.Args) (any, error) {
				number, err := args.Float("number", 0)
				if err != nil {
					return nil, err
				}
				n, err := args.Int("n", 0)
				if err != nil {
					return nil, err
				}
				return NthRoot(number, n)
			},
		},

		// == trigonometry ==
		{
			Name:        "sin",
			Description: "Calculate sine of an angle. Angle in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("angle"), optBool("degrees")),
			Handler: angleTool(func(angle float64, degrees bool) (any, error) {
				return Sin(angle, degrees), nil
			}),
		},
		{
			Name:        "cos",
			Description: "Calculate cosine of an angle. Angle in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("angle"), optBool("degrees")),
			Handler: angleTool(func(angle float64, degrees bool) (any, error) {
				return Cos(angle, degrees), nil
			}),
		},
		{
			Name:        "tan",
			Description: "Calculate tangent of an angle. Angle in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("angle"), optBool("degrees")),
			Handler: angleTool(func(angle float64, degrees bool) (any, error) {
				return Tan(angle, degrees), nil
			}),
		},
		{
			Name:        "asin",
			Description: "Calculate arcsine of a value. Returns in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("value"), optBool("degrees")),
			Handler: valueTool(func(value float64, degrees bool) (any, error) {
				return Asin(value, degrees)
			}),
		},
		{
			Name:        "acos",
			Description: "Calculate arccosine of a value. Returns in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("value"), optBool("degrees")),
			Handler: valueTool(func(value float64, degrees bool) (any, error) {
				return Acos(value, degrees)
			}),
		},
		{
			Name:        "atan",
			Description: "Calculate arctangent of a value. Returns in radians by default, set degrees=True for degrees.",
			InputSchema: schema(num("value"), optBool("degrees")),
			Handler: valueTool(func(value float64, degrees bool) (any, error) {
				return Atan(value, degrees), nil
			}),
		},

		// == logarithms ==
		{
			Name:        "log",
			Description: "Calculate logarithm of a number with specified base (natural log by default).",
			InputSchema: schema(num("number"), optNum("base")),
			Handler: func(args tool.Args) (any, error) {
				number, err := args.Float("number", 0)
				if err != nil {
					return nil, err
				}
				base, err := args.Float("base", math.E)
				if err != nil {
					return nil, err
				}
				return Log(number, base)
			},
		},
		{
			Name:        "log10",
			Description: "Calculate base-10 logarithm of a number.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return Log10(v)
			}),
		},
		{
			Name:        "ln",
			Description: "Calculate natural logarithm of a number.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return Ln(v)
			}),
		},

		// == number theory ==
		{
			Name:        "factorial",
			Description: "Calculate factorial of a non-negative integer.",
			InputSchema: schema(intp("n")),
			Handler: oneInt("n", func(n int) (any, error) {
				return Factorial(n)
			}),
		},
		{
			Name:        "gcd",
			Description: "Calculate greatest common divisor of two integers.",
			InputSchema: schema(intp("a"), intp("b")),
			Handler: twoInts("a", "b", func(a, b int) (any, error) {
				return Gcd(int64(a), int64(b)), nil
			}),
		},
		{
			Name:        "lcm",
			Description: "Calculate least common multiple of two integers.",
			InputSchema: schema(intp("a"), intp("b")),
			Handler: twoInts("a", "b", func(a, b int) (any, error) {
				return Lcm(int64(a), int64(b)), nil
			}),
		},
		{
			Name:        "is_prime",
			Description: "Check if a number is prime.",
			InputSchema: schema(intp("n")),
			Handler: oneInt("n", func(n int) (any, error) {
				return IsPrime(int64(n)), nil
			}),
		},
		{
			Name:        "prime_factors",
			Description: "Find all prime factors of a number.",
			InputSchema: schema(intp("n")),
			Handler: oneInt("n", func(n int) (any, error) {
				return PrimeFactors(int64(n)), nil
			}),
		},
		{
			Name:        "fibonacci",
			Description: "Calculate the nth Fibonacci number (0-indexed).",
			InputSchema: schema(intp("n")),
			Handler: oneInt("n", func(n int) (any, error) {
				return Fibonacci(n)
			}),
		},

		// == statistics ==
		{
			Name:        "mean",
			Description: "Calculate arithmetic mean of a list of numbers.",
			InputSchema: schema(numList("numbers")),
			Handler: listTool(func(numbers []float64) (any, error) {
				return Mean(numbers)
			}),
		},
		{
			Name:        "median",
			Description: "Calculate median of a list of numbers.",
			InputSchema: schema(numList("numbers")),
			Handler: listTool(func(numbers []float64) (any, error) {
				return Median(numbers)
			}),
		},
		{
			Name:        "mode",
			Description: "Calculate mode of a list of numbers.",
			InputSchema: schema(numList("numbers")),
			Handler: listTool(func(numbers []float64) (any, error) {
				return Mode(numbers)
			}),
		},
		{
			Name:        "standard_deviation",
			Description: "Calculate standard deviation. Set sample=False for population standard deviation.",
			InputSchema: schema(numList("numbers"), optBool("sample")),
			Handler: sampleTool(func(numbers []float64, sample bool) (any, error) {
				return StandardDeviation(numbers, sample)
			}),
		},
		{
			Name:        "variance",
			Description: "Calculate variance. Set sample=False for population variance.",
			InputSchema: schema(numList("numbers"), optBool("sample")),
			Handler: sampleTool(func(numbers []float64, sample bool) (any, error) {
				return Variance(numbers, sample)
			}),
		},

		// == geometry ==
		{
			Name:        "circle_area",
			Description: "Calculate area of a circle given its radius.",
			InputSchema: schema(num("radius")),
			Handler: oneFloat("radius", func(v float64) (any, error) {
				return CircleArea(v)
			}),
		},
		{
			Name:        "circle_circumference",
			Description: "Calculate circumference of a circle given its radius.",
			InputSchema: schema(num("radius")),
			Handler: oneFloat("radius", func(v float64) (any, error) {
				return CircleCircumference(v)
			}),
		},
		{
			Name:        "rectangle_area",
			Description: "Calculate area of a rectangle.",
			InputSchema: schema(num("length"), num("width")),
			Handler: twoFloats("length", "width", func(a, b float64) (any, error) {
				return RectangleArea(a, b)
			}),
		},
		{
			Name:        "triangle_area",
			Description: "Calculate area of a triangle given base and height.",
			InputSchema: schema(num("base"), num("height")),
			Handler: twoFloats("base", "height", func(a, b float64) (any, error) {
				return TriangleArea(a, b)
			}),
		},
		{
			Name:        "sphere_volume",
			Description: "Calculate volume of a sphere given its radius.",
			InputSchema: schema(num("radius")),
			Handler: oneFloat("radius", func(v float64) (any, error) {
				return SphereVolume(v)
			}),
		},
		{
			Name:        "distance_2d",
			Description: "Calculate Euclidean distance between two 2D points.",
			InputSchema: schema(num("x1"), num("y1"), num("x2"), num("y2")),
			Handler: func(args tool.Args) (any, error) {
				vals, err := floatsOf(args, "x1", "y1", "x2", "y2")
				if err != nil {
					return nil, err
				}
				return Distance2D(vals[0], vals[1], vals[2], vals[3]), nil
			},
		},
		{
			Name:        "distance_3d",
			Description: "Calculate Euclidean distance between two 3D points.",
			InputSchema: schema(num("x1"), num("y1"), num("z1"), num("x2"), num("y2"), num("z2")),
			Handler: func(args tool.Args) (any, error) {
				vals, err := floatsOf(args, "x1", "y1", "z1", "x2", "y2", "z2")
				if err != nil {
					return nil, err
				}
				return Distance3D(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), nil
			},
		},

		// == advanced ==
		{
			Name:        "combinations",
			Description: "Calculate combinations (n choose r).",
			InputSchema: schema(intp("n"), intp("r")),
			Handler: twoInts("n", "r", func(n, r int) (any, error) {
				return Combinations(n, r)
			}),
		},
		{
			Name:        "permutations",
			Description: "Calculate permutations (n permute r).",
			InputSchema: schema(intp("n"), intp("r")),
			Handler: twoInts("n", "r", func(n, r int) (any, error) {
				return Permutations(n, r)
			}),
		},
		{
			Name:        "solve_quadratic",
			Description: "Solve quadratic equation ax² + bx + c = 0. Returns tuple of two solutions.",
			InputSchema: schema(num("a"), num("b"), num("c")),
			Handler: func(args tool.Args) (any, error) {
				vals, err := floatsOf(args, "a", "b", "c")
				if err != nil {
					return nil, err
				}
				return SolveQuadratic(vals[0], vals[1], vals[2])
			},
		},
		{
			Name:        "random_number",
			Description: "Generate a random float between min_val and max_val.",
			InputSchema: schema(optNum("min_val"), optNum("max_val")),
			Handler: func(args tool.Args) (any, error) {
				minVal, err := args.Float("min_val", 0)
				if err != nil {
					return nil, err
				}
				maxVal, err := args.Float("max_val", 1)
				if err != nil {
					return nil, err
				}
				return RandomNumber(minVal, maxVal), nil
			},
		},
		{
			Name:        "random_integer",
			Description: "Generate a random integer between min_val and max_val (inclusive).",
			InputSchema: schema(optInt("min_val"), optInt("max_val")),
			Handler: func(args tool.Args) (any, error) {
				minVal, err := args.Int("min_val", 0)
				if err != nil {
					return nil, err
				}
				maxVal, err := args.Int("max_val", 100)
				if err != nil {
					return nil, err
				}
				return RandomInteger(minVal, maxVal)
			},
		},
		{
			Name:        "absolute_value",
			Description: "Calculate absolute value of a number.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return AbsoluteValue(v), nil
			}),
		},
		{
			Name:        "ceiling",
			Description: "Round number up to nearest integer.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return Ceiling(v), nil
			}),
		},
		{
			Name:        "floor",
			Description: "Round number down to nearest integer.",
			InputSchema: schema(num("number")),
			Handler: oneFloat("number", func(v float64) (any, error) {
				return Floor(v), nil
			}),
		},
		{
			Name:        "round_number",
			Description: "Round number to specified decimal places.",
			InputSchema: schema(num("number"), optInt("decimals")),
			Handler: func(args tool.Args) (any, error) {
				number, err := args.Float("number", 0)
				if err != nil {
					return nil, err
				}
				decimals, err := args.Int("decimals", 0)
				if err != nil {
					return nil, err
				}
				return RoundNumber(number, decimals), nil
			},
		},
		{
			Name:        "fraction_from_decimal",
			Description: "Convert decimal to fraction representation.",
			InputSchema: schema(num("decimal_num")),
			Handler: oneFloat("decimal_num", func(v float64) (any, error) {
				return FractionFromDecimal(v)
			}),
		},
		{
			Name:        "percentage",
			Description: "Calculate what percentage 'part' is of 'whole'.",
			InputSchema: schema(num("part"), num("whole")),
			Handler: twoFloats("part", "whole", func(a, b float64) (any, error) {
				return Percentage(a, b)
			}),
		},
	}
}

// == handler adapters ==

func oneFloat(key string, fn func(float64) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		v, err := args.Float(key, 0)
		if err != nil {
			return nil, err
		}
		return fn(v)
	}
}

func twoFloats(k1, k2 string, fn func(a, b float64) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		a, err := args.Float(k1, 0)
		if err != nil {
			return nil, err
		}
		b, err := args.Float(k2, 0)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

func oneInt(key string, fn func(int) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		v, err := args.Int(key, 0)
		if err != nil {
			return nil, err
		}
		return fn(v)
	}
}

func twoInts(k1, k2 string, fn func(a, b int) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		a, err := args.Int(k1, 0)
		if err != nil {
			return nil, err
		}
		b, err := args.Int(k2, 0)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

func angleTool(fn func(angle float64, degrees bool) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		angle, err := args.Float("angle", 0)
		if err != nil {
			return nil, err
		}
		degrees, err := args.Bool("degrees", false)
		if err != nil {
			return nil, err
		}
		return fn(angle, degrees)
	}
}

func valueTool(fn func(value float64, degrees bool) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		value, err := args.Float("value", 0)
		if err != nil {
			return nil, err
		}
		degrees, err := args.Bool("degrees", false)
		if err != nil {
			return nil, err
		}
		return fn(value, degrees)
	}
}

func listTool(fn func([]float64) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		numbers, err := args.FloatSlice("numbers")
		if err != nil {
			return nil, err
		}
		return fn(numbers)
	}
}

func sampleTool(fn func([]float64, bool) (any, error)) tool.HandlerFunc {
	return func(args tool.Args) (any, error) {
		numbers, err := args.FloatSlice("numbers")
		if err != nil {
			return nil, err
		}
		sample, err := args.Bool("sample", true)
		if err != nil {
			return nil, err
		}
		return fn(numbers, sample)
	}
}

func floatsOf(args tool.Args, keys ...string) ([]float64, error) {
	out := make([]float64, 0, len(keys))
	for _, key := range keys {
		v, err := args.Float(key, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
