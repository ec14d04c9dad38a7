package vincenty

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// Point is a geographic position in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NormalizeLongitude wraps a longitude into the range (-180,180].
func NormalizeLongitude(degs float64) float64 {
	degs = math.Mod(degs+180, 360)
	if degs <= 0 {
		degs += 360
	}
	return degs - 180
}

// NormalizeBearing wraps a bearing into the range [0,360).
func NormalizeBearing(degs float64) float64 {
	degs = math.Mod(degs, 360)
	if degs < 0 {
		degs += 360
	}
	// a tiny negative input rounds up to exactly 360
	if degs >= 360 {
		degs -= 360
	}
	return degs + 0
}

// BearingDelta returns the signed smallest angle from b1 to b2 in
// (-180,180].
func BearingDelta(b1, b2 float64) float64 {
	return NormalizeLongitude(b2 - b1)
}
