// Package classify holds the pure classification rule: it maps a
// location's association counts to an accessibility level and a derived
// rating, with no knowledge of storage or transport.
package classify

import "math"

// Level names form a fixed enumeration; rows outside it never occur in
// practice and fall back to the default color.
const (
	FullyAccessible      = "fully_accessible"
	MostlyAccessible     = "mostly_accessible"
	PartiallyAccessible  = "partially_accessible"
	LimitedAccessibility = "limited_accessibility"
)

// DefaultColor is used for any level name outside the enumeration.
const DefaultColor = "#FFFFFF"

var levelColors = map[string]string{
	FullyAccessible:      "#008000",
	MostlyAccessible:     "#0000FF",
	PartiallyAccessible:  "#FFA500",
	LimitedAccessibility: "#FF0000",
}

// Level is the classification result: a bucket name and its display color.
type Level struct {
	Name  string
	Color string
}

// Classify maps association counts to exactly one level. Thresholds are
// evaluated high to low with inclusive lower bounds, so a total of
// exactly 15, 10 or 5 lands in the higher bucket.
func Classify(featureCount, categoryCount int) Level {
	score := featureCount + categoryCount

	var name string
	switch {
	case score >= 15:
		name = FullyAccessible
	case score >= 10:
		name = MostlyAccessible
	case score >= 5:
		name = PartiallyAccessible
	default:
		name = LimitedAccessibility
	}

	return Level{Name: name, Color: ColorFor(name)}
}

// ColorFor returns the display color for a level name.
func ColorFor(name string) string {
	if c, ok := levelColors[name]; ok {
		return c
	}
	return DefaultColor
}

// Rating derives the location rating from the same score the level uses:
// score/3 capped at 5.0, rounded to one fractional digit. The cap is
// reached exactly at the fully_accessible threshold.
func Rating(featureCount, categoryCount int) float64 {
	score := float64(featureCount + categoryCount)
	r := score / 3
	if r > 5 {
		r = 5
	}
	return math.Round(r*10) / 10
}
