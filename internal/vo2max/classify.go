package vo2max

import "math"

// Sex selects the normative column of the classification table.
type Sex string

// Supported sexes for classification lookup.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Category is a qualitative fitness band for a relative VO2max value.
type Category string

// Classification categories, ordered from lowest to highest.
const (
	CategoryPoor      Category = "Poor"
	CategoryFair      Category = "Fair"
	CategoryGood      Category = "Good"
	CategoryExcellent Category = "Excellent"
	CategoryElite     Category = "Elite"
)

// Band is a half-open range [Lo, Hi) of relative VO2max values (ml/min/kg)
// mapped to a category. The top band is unbounded above (Hi is +Inf).
type Band struct {
	Category Category
	Lo       float64
	Hi       float64
}

// Normative thresholds for trained cyclists. Bands are contiguous and
// non-overlapping per sex; boundaries are inclusive-low, exclusive-high.
var (
	maleBands = []Band{
		{CategoryPoor, math.Inf(-1), 35},
		{CategoryFair, 35, 45},
		{CategoryGood, 45, 55},
		{CategoryExcellent, 55, 65},
		{CategoryElite, 65, math.Inf(1)},
	}
	femaleBands = []Band{
		{CategoryPoor, math.Inf(-1), 30},
		{CategoryFair, 30, 40},
		{CategoryGood, 40, 50},
		{CategoryExcellent, 50, 60},
		{CategoryElite, 60, math.Inf(1)},
	}
)

// Bands returns the classification table for the given sex, ordered from
// lowest to highest band. The returned slice must not be modified.
func Bands(sex Sex) []Band {
	if sex == Female {
		return femaleBands
	}
	return maleBands
}

// Classify maps a relative VO2max value (ml/min/kg) to exactly one category
// for the given sex. Every real value falls into exactly one band.
func Classify(relative float64, sex Sex) Category {
	bands := Bands(sex)
	for _, b := range bands {
		if relative >= b.Lo && relative < b.Hi {
			return b.Category
		}
	}
	// Unreachable for finite values; NaN falls through to the top band.
	return bands[len(bands)-1].Category
}
