package vincenty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseBenchmark(t *testing.T) {
	res, err := WGS84.Inverse(flindersPeak, buninyong)
	require.NoError(t, err)

	assert.InDelta(t, 54972.271, res.Distance, 1e-3)
	assert.InDelta(t, dms(306, 52, 5.37), res.InitialBearing, 1e-5)
	// published as the reverse azimuth 127°10'25.07"
	assert.InDelta(t, dms(127, 10, 25.07)+180, res.FinalBearing, 1e-5)
	assert.Positive(t, res.Iterations)
}

func TestInverse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		p1, p2 Point
		s      float64
		azi1   float64
		azi2   float64
	}{
		{
			name: "cli example",
			p1:   Point{23.776939, 97.724721},
			p2:   Point{24.374530, 84.144159},
			s:    1382071.7387795222,
			azi1: 275.51200605912317,
			azi2: 269.9499890510617,
		},
		{
			name: "cli example reversed",
			p1:   Point{24.374530, 84.144159},
			p2:   Point{23.776939, 97.724721},
			s:    1382071.7387795222,
			azi1: 89.94998905106169,
			azi2: 95.51200605912318,
		},
		{
			name: "equator quarter",
			p1:   Point{0, 0},
			p2:   Point{0, 90},
			s:    10018754.171390377,
			azi1: 90,
			azi2: 90,
		},
		{
			name: "meridian",
			p1:   Point{0, 0},
			p2:   Point{45, 0},
			s:    4984944.377978652,
			azi1: 0,
			azi2: 0,
		},
		{
			name: "from north pole",
			p1:   Point{90, 0},
			p2:   Point{-45, 30},
			s:    14986910.107290443,
			azi1: 150,
			azi2: 180,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := WGS84.Inverse(tc.p1, tc.p2)
			require.NoError(t, err)
			assert.InDelta(t, tc.s, res.Distance, 1e-6)
			assert.InDelta(t, 0, BearingDelta(tc.azi1, res.InitialBearing), 1e-9)
			assert.InDelta(t, 0, BearingDelta(tc.azi2, res.FinalBearing), 1e-9)
		})
	}
}

func TestInverseCoincident(t *testing.T) {
	for _, p := range []Point{
		{0, 0},
		{23.776939, 97.724721},
		{-89.5, -179.25},
		{90, 45},
		flindersPeak,
	} {
		res, err := WGS84.Inverse(p, p)
		require.NoError(t, err)
		assert.Equal(t, InverseResult{}, res, "point %+v", p)
	}
}

func TestInverseCoincidentAfterReduction(t *testing.T) {
	for _, tc := range []struct{ p1, p2 Point }{
		{Point{10, 180}, Point{10, -180}},
		{Point{-45, 30}, Point{-45, 390}},
		{Point{0, -720}, Point{0, 0}},
	} {
		res, err := WGS84.Inverse(tc.p1, tc.p2)
		require.NoError(t, err)
		assert.Equal(t, InverseResult{}, res, "%+v -> %+v", tc.p1, tc.p2)
	}
}

func TestInverseAntipodal(t *testing.T) {
	_, err := WGS84.Inverse(Point{0, 0}, Point{0, 180})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoConvergence))

	var ce *ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, SolverInverse, ce.Solver)
	assert.Equal(t, DefaultBudget.MaxIterations, ce.Iterations)
	assert.EqualError(t, err, "vincenty inverse formula failed to converge after 200 iterations")
}
