package vincenty

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Line is the geodesic leaving Start towards End. Positions along it are
// found with the direct solver on the shared initial bearing.
type Line struct {
	e *Ellipsoid

	Start          Point   `json:"start"`
	End            Point   `json:"end"`
	InitialBearing float64 `json:"initial_bearing"`
	FinalBearing   float64 `json:"final_bearing"`
	// Distance from Start to End (meters).
	Distance float64 `json:"distance"`
	// Iterations used by the inverse solve.
	Iterations int `json:"iterations"`
}

// Line solves the inverse problem once for p1 and p2 and returns the
// geodesic joining them.
func (e *Ellipsoid) Line(p1, p2 Point) (Line, error) {
	inv, err := e.Inverse(p1, p2)
	if err != nil {
		return Line{}, fmt.Errorf("geodesic line: %w", err)
	}
	return Line{
		e:              e,
		Start:          p1,
		End:            p2,
		InitialBearing: inv.InitialBearing,
		FinalBearing:   inv.FinalBearing,
		Distance:       inv.Distance,
		Iterations:     inv.Iterations,
	}, nil
}

// Position returns the point at distance s (meters) from Start.
// s is not limited to the segment length.
func (l Line) Position(s float64) (DirectResult, error) {
	res, err := l.e.Direct(l.Start, l.InitialBearing, s)
	if err != nil {
		return DirectResult{}, fmt.Errorf("position at %v m: %w", s, err)
	}
	return res, nil
}

// Positions returns the points at each of the given distances, in order.
func (l Line) Positions(distances []float64) ([]Point, error) {
	res, err := l.Solve(distances)
	if err != nil {
		return nil, err
	}
	return points(res), nil
}

// PositionsConcurrent is Positions with at most workers direct solves in
// flight. Dispatch stops at the first error or when ctx is done.
func (l Line) PositionsConcurrent(ctx context.Context, distances []float64, workers int) ([]Point, error) {
	res, err := l.SolveConcurrent(ctx, distances, workers)
	if err != nil {
		return nil, err
	}
	return points(res), nil
}

// Solve is Positions keeping the full direct solution of every distance.
func (l Line) Solve(distances []float64) ([]DirectResult, error) {
	out := make([]DirectResult, len(distances))
	for i, s := range distances {
		res, err := l.Position(s)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// SolveConcurrent is Solve with at most workers direct solves in flight.
func (l Line) SolveConcurrent(ctx context.Context, distances []float64, workers int) ([]DirectResult, error) {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return l.Solve(distances)
	}

	out := make([]DirectResult, len(distances))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range distances {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := l.Position(s)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func points(res []DirectResult) []Point {
	out := make([]Point, len(res))
	for i, r := range res {
		out[i] = r.Point
	}
	return out
}
