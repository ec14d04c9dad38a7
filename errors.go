package vincenty

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConvergence is matched by every ConvergenceError.
	ErrNoConvergence = errors.New("vincenty: formula failed to converge")

	// ErrInvalidEllipsoid is returned by NewEllipsoid for parameters that do
	// not describe an oblate ellipsoid.
	ErrInvalidEllipsoid = errors.New("vincenty: invalid ellipsoid parameters")
)

// Solver names reported by ConvergenceError.
const (
	SolverInverse = "inverse"
	SolverDirect  = "direct"
)

// ConvergenceError reports that a solver exhausted its iteration budget
// before successive iterates agreed within the angular tolerance.
type ConvergenceError struct {
	Solver     string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("vincenty %s formula failed to converge after %d iterations",
		e.Solver, e.Iterations)
}

// Is makes errors.Is(err, ErrNoConvergence) succeed.
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrNoConvergence
}
