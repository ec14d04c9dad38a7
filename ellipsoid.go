// Package vincenty solves the direct and inverse geodesic problems on an
// ellipsoid of revolution using Vincenty's iterative formulae, and
// interpolates points along the geodesic joining two points.
package vincenty

import (
	"context"
	"fmt"
)

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = mustEllipsoid(6378137, float64(1.)/298.257223563)

// ConvergenceBudget bounds the fixed-point iterations of both solvers.
type ConvergenceBudget struct {
	// MaxIterations is the number of iterations after which a solver gives
	// up with a ConvergenceError.
	MaxIterations int
	// Epsilon is the angular tolerance (radians) between successive
	// iterates that counts as converged.
	Epsilon float64
}

// DefaultBudget is the budget used by ellipsoids built with NewEllipsoid.
var DefaultBudget = ConvergenceBudget{MaxIterations: 200, Epsilon: 1e-12}

// Ellipsoid is an immutable set of ellipsoid parameters used for performing
// geodesic operations. It is safe for concurrent use.
type Ellipsoid struct {
	a      float64 // semi-major axis
	f      float64 // flattening
	b      float64 // semi-minor axis
	budget ConvergenceBudget
}

// NewEllipsoid initializes a new ellipsoid.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The radius must be positive and the flattening must lie in (0, 1),
// otherwise an error matching ErrInvalidEllipsoid is returned.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) (*Ellipsoid, error) {
	if !(radius > 0) || !(flattening > 0 && flattening < 1) {
		return nil, fmt.Errorf("%w: radius=%v flattening=%v",
			ErrInvalidEllipsoid, radius, flattening)
	}
	return &Ellipsoid{
		a:      radius,
		f:      flattening,
		b:      radius * (1 - flattening),
		budget: DefaultBudget,
	}, nil
}

func mustEllipsoid(radius, flattening float64) *Ellipsoid {
	e, err := NewEllipsoid(radius, flattening)
	if err != nil {
		panic(err)
	}
	return e
}

// WithBudget returns a copy of the ellipsoid whose solvers use the given
// convergence budget. Non-positive fields keep their current values.
func (e *Ellipsoid) WithBudget(budget ConvergenceBudget) *Ellipsoid {
	c := *e
	if budget.MaxIterations > 0 {
		c.budget.MaxIterations = budget.MaxIterations
	}
	if budget.Epsilon > 0 {
		c.budget.Epsilon = budget.Epsilon
	}
	return &c
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.a
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.f
}

// SemiMinorAxis of the Ellipsoid, b = a(1-f).
func (e *Ellipsoid) SemiMinorAxis() float64 {
	return e.b
}

// Budget returns the convergence budget used by the solvers.
func (e *Ellipsoid) Budget() ConvergenceBudget {
	return e.budget
}

// Inverse solves the inverse geodesic problem.
//
// Param p1 is the first point (degrees).
// Param p2 is the second point (degrees).
//
// The returned distance is in meters. The initial bearing is the azimuth
// at p1 and the final bearing the (forward) azimuth at p2, both in the
// range [0,360). Coincident points yield a zero result.
//
// Nearly antipodal points may not converge within the budget, in which
// case a *ConvergenceError is returned.
func (e *Ellipsoid) Inverse(p1, p2 Point) (InverseResult, error) {
	return e.inverse(p1, p2)
}

// Direct solves the direct geodesic problem.
//
// Param p1 is the start point (degrees).
// Param bearing is the initial azimuth at p1 (degrees).
// Param distance is the distance from p1 to the destination (meters).
//
// The destination longitude is returned in the range (-180,180] and the
// reverse bearing, the (forward) azimuth at the destination, in [0,360).
func (e *Ellipsoid) Direct(p1 Point, bearing, distance float64) (DirectResult, error) {
	return e.direct(p1, bearing, distance)
}

// Interpolate returns the points found at each of the given distances
// along the geodesic leaving p1 towards p2, in the order of distances.
//
// The initial bearing is solved once. Distances beyond the length of the
// segment are not rejected: they extrapolate along the same geodesic.
func (e *Ellipsoid) Interpolate(p1, p2 Point, distances []float64) ([]Point, error) {
	l, err := e.Line(p1, p2)
	if err != nil {
		return nil, err
	}
	return l.Positions(distances)
}

// InterpolateConcurrent is Interpolate with the direct solves spread over
// at most workers goroutines. The output order matches distances.
func (e *Ellipsoid) InterpolateConcurrent(
	ctx context.Context,
	p1, p2 Point,
	distances []float64,
	workers int,
) ([]Point, error) {
	l, err := e.Line(p1, p2)
	if err != nil {
		return nil, err
	}
	return l.PositionsConcurrent(ctx, distances, workers)
}
