package vincenty

// Series expansions shared by the inverse and direct solvers.

// ab returns Vincenty's A and B coefficients for the squared cosine of
// the equatorial azimuth.
func (e *Ellipsoid) ab(cos2α float64) (A, B float64) {
	u2 := cos2α * (e.a*e.a - e.b*e.b) / (e.b * e.b)
	A = 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	B = u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
	return A, B
}

// deltaσ is the difference between the angular distance on the auxiliary
// sphere and the scaled ellipsoidal distance.
func deltaσ(B, sinσ, cosσ, cos2σm float64) float64 {
	c2 := cos2σm * cos2σm
	return B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*c2)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*c2)))
}

// c is the third-flattening correction term C.
func (e *Ellipsoid) c(cos2α float64) float64 {
	return e.f / 16 * cos2α * (4 + e.f*(4-3*cos2α))
}

// lambdaOffset is (1-C)·f·sinα·(σ + C·sinσ·(cos2σm + C·cosσ·(2cos²2σm-1))),
// the difference between the longitude on the auxiliary sphere and the
// longitude on the ellipsoid.
func (e *Ellipsoid) lambdaOffset(C, sinα, σ, sinσ, cosσ, cos2σm float64) float64 {
	return (1 - C) * e.f * sinα *
		(σ + C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
}
