package vincenty

import "math"

// InverseResult is the solution of the inverse problem.
type InverseResult struct {
	// Distance along the geodesic (meters).
	Distance float64 `json:"distance"`
	// InitialBearing is the azimuth at the first point (degrees).
	InitialBearing float64 `json:"initial_bearing"`
	// FinalBearing is the forward azimuth at the second point (degrees).
	FinalBearing float64 `json:"final_bearing"`
	// Iterations used by the solver; zero for coincident points.
	Iterations int `json:"iterations"`
}

func (e *Ellipsoid) inverse(p1, p2 Point) (InverseResult, error) {
	φ1 := p1.Lat * radians
	φ2 := p2.Lat * radians
	L := NormalizeLongitude(p2.Lon-p1.Lon) * radians

	U1 := math.Atan((1 - e.f) * math.Tan(φ1))
	U2 := math.Atan((1 - e.f) * math.Tan(φ2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	λ := L
	var sinλ, cosλ, σ, sinσ, cosσ, cos2α, cos2σm float64
	iterations, converged := 0, false
	for iterations < e.budget.MaxIterations {
		iterations++
		sinλ, cosλ = math.Sincos(λ)
		x := cosU2 * sinλ
		y := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ = math.Sqrt(x*x + y*y)
		if sinσ == 0 {
			// coincident points
			return InverseResult{}, nil
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα := cosU1 * cosU2 * sinλ / sinσ
		cos2α = 1 - sinα*sinα
		if cos2α == 0 {
			// equatorial line
			cos2σm = 0
		} else {
			cos2σm = cosσ - 2*sinU1*sinU2/cos2α
		}
		C := e.c(cos2α)
		prev := λ
		λ = L + e.lambdaOffset(C, sinα, σ, sinσ, cosσ, cos2σm)
		if math.Abs(λ-prev) < e.budget.Epsilon {
			converged = true
			break
		}
	}
	if !converged {
		return InverseResult{}, &ConvergenceError{Solver: SolverInverse, Iterations: iterations}
	}

	A, B := e.ab(cos2α)
	s := e.b * A * (σ - deltaσ(B, sinσ, cosσ, cos2σm))

	sinλ, cosλ = math.Sincos(λ)
	α1 := math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)
	α2 := math.Atan2(cosU1*sinλ, -sinU1*cosU2+cosU1*sinU2*cosλ)

	return InverseResult{
		Distance:       s,
		InitialBearing: NormalizeBearing(α1 * degrees),
		FinalBearing:   NormalizeBearing(α2 * degrees),
		Iterations:     iterations,
	}, nil
}
