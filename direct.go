package vincenty

import "math"

// DirectResult is the solution of the direct problem.
type DirectResult struct {
	// Point is the destination.
	Point Point `json:"point"`
	// ReverseBearing is the forward azimuth at the destination (degrees).
	ReverseBearing float64 `json:"reverse_bearing"`
	// Iterations used by the solver.
	Iterations int `json:"iterations"`
}

func (e *Ellipsoid) direct(p1 Point, bearing, distance float64) (DirectResult, error) {
	φ1 := p1.Lat * radians
	α1 := bearing * radians
	sinα1, cosα1 := math.Sincos(α1)

	tanU1 := (1 - e.f) * math.Tan(φ1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	σ1 := math.Atan2(tanU1, cosα1)
	sinα := cosU1 * sinα1
	cos2α := 1 - sinα*sinα
	A, B := e.ab(cos2α)

	σ0 := distance / (e.b * A)
	σ := σ0
	var sinσ, cosσ, cos2σm float64
	iterations, converged := 0, false
	for iterations < e.budget.MaxIterations {
		iterations++
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ, cosσ = math.Sincos(σ)
		prev := σ
		σ = σ0 + deltaσ(B, sinσ, cosσ, cos2σm)
		if math.Abs(σ-prev) < e.budget.Epsilon {
			converged = true
			break
		}
	}
	if !converged {
		return DirectResult{}, &ConvergenceError{Solver: SolverDirect, Iterations: iterations}
	}

	sinσ, cosσ = math.Sincos(σ)
	t := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1,
		(1-e.f)*math.Sqrt(sinα*sinα+t*t))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	// cos2σm is taken from the final iteration
	L := λ - e.lambdaOffset(e.c(cos2α), sinα, σ, sinσ, cosσ, cos2σm)
	α2 := math.Atan2(sinα, -t)

	return DirectResult{
		Point: Point{
			Lat: φ2 * degrees,
			Lon: NormalizeLongitude(p1.Lon + L*degrees),
		},
		ReverseBearing: NormalizeBearing(α2 * degrees),
		Iterations:     iterations,
	}, nil
}
