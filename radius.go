package roundicon

import "strconv"

// DefaultRadiusPercent approximates the Big Sur app icon corner.
const DefaultRadiusPercent = 22

// RadiusPixels converts a percentage of the smaller dimension into a corner
// radius in pixels, truncating toward zero. The result is clamped to
// [0, min(width, height)/2], the largest radius a rounded rectangle spanning
// the canvas can have.
func RadiusPixels(width, height, radiusPercent int) int {
	short := min(width, height)
	if short <= 0 {
		return 0
	}

	radius := short * radiusPercent / 100
	return max(0, min(radius, short/2))
}

// ParseRadiusPercent parses a radius percentage argument. Only integers are
// accepted.
func ParseRadiusPercent(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ArgumentError{Name: "radius_percent", Value: s, Err: err}
	}
	return v, nil
}
