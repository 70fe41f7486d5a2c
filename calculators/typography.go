package calculators

import "math"

type TypeScaleRatio struct {
	Name  string  `json:"name" toml:"name"`
	Value float64 `json:"value" toml:"value"`
}

func defaultTypeScales() []TypeScaleRatio {
	return []TypeScaleRatio{
		{Name: "Minor Second", Value: 1.067},
		{Name: "Major Second", Value: 1.125},
		{Name: "Minor Third", Value: 1.200},
		{Name: "Major Third", Value: 1.250},
		{Name: "Perfect Fourth", Value: 1.333},
		{Name: "Augmented Fourth", Value: 1.414},
		{Name: "Perfect Fifth", Value: 1.500},
		{Name: "Golden Ratio", Value: 1.618},
	}
}

type TypeStep struct {
	Step       int     `json:"step"`
	Size       float64 `json:"size"`
	LineHeight float64 `json:"lineHeight"`
}

// TypeScale builds a modular scale of steps sizes starting at base. The
// largest step comes first.
func TypeScale(base, ratio float64, steps int, lineHeight float64) []TypeStep {
	if steps <= 0 {
		return []TypeStep{}
	}

	out := make([]TypeStep, steps)
	for i := 0; i < steps; i++ {
		size := base * math.Pow(ratio, float64(i))
		out[steps-1-i] = TypeStep{
			Step:       i,
			Size:       round2(size),
			LineHeight: round2(size * lineHeight),
		}
	}
	return out
}
