package domain

import "fmt"

// ModelVariant selects the economic-assumption preset a projection runs under.
type ModelVariant string

const (
	ModelLinear       ModelVariant = "linear"
	ModelExponential  ModelVariant = "exponential"
	ModelSeasonal     ModelVariant = "seasonal"
	ModelRealistic    ModelVariant = "realistic"
	ModelConservative ModelVariant = "conservative"
	ModelSavings      ModelVariant = "savings"
	ModelOptimistic   ModelVariant = "optimistic"
)

// AllModelVariants lists every supported variant.
var AllModelVariants = []ModelVariant{
	ModelLinear,
	ModelExponential,
	ModelSeasonal,
	ModelRealistic,
	ModelConservative,
	ModelSavings,
	ModelOptimistic,
}

// Valid reports whether the variant is one of the supported values.
func (mv ModelVariant) Valid() bool {
	for _, v := range AllModelVariants {
		if mv == v {
			return true
		}
	}
	return false
}

// ParseModelVariant converts a string into a ModelVariant, rejecting unknown
// values with a descriptive error rather than silently defaulting.
func ParseModelVariant(s string) (ModelVariant, error) {
	mv := ModelVariant(s)
	if !mv.Valid() {
		return "", fmt.Errorf("unknown model variant %q (expected one of %v)", s, AllModelVariants)
	}
	return mv, nil
}
