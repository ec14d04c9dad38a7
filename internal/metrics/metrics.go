package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vincenty"

// Recorder collects solver metrics in a private registry so a run can be
// dumped to a node_exporter textfile. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	// SolverIterations tracks fixed-point iterations per solve
	// Labels: solver ("inverse", "direct")
	SolverIterations *prometheus.HistogramVec

	// SolverFailures tracks solves that exhausted the iteration budget
	// Labels: solver
	SolverFailures *prometheus.CounterVec

	// InterpolatedPoints counts points written by interpolation runs
	InterpolatedPoints prometheus.Counter
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		SolverIterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solver_iterations",
				Help:      "Fixed-point iterations used per solve",
				Buckets:   []float64{1, 2, 3, 4, 5, 8, 13, 21, 50, 100, 200},
			},
			[]string{"solver"},
		),
		SolverFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solver_failures_total",
				Help:      "Solves that failed to converge within the iteration budget",
			},
			[]string{"solver"},
		),
		InterpolatedPoints: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interpolated_points_total",
				Help:      "Points produced by interpolation",
			},
		),
	}
	r.registry.MustRegister(r.SolverIterations, r.SolverFailures, r.InterpolatedPoints)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveIterations records a successful solve.
func (r *Recorder) ObserveIterations(solver string, iterations int) {
	if r == nil {
		return
	}
	r.SolverIterations.WithLabelValues(solver).Observe(float64(iterations))
}

// ObserveFailure records a solve that did not converge.
func (r *Recorder) ObserveFailure(solver string) {
	if r == nil {
		return
	}
	r.SolverFailures.WithLabelValues(solver).Inc()
}

// AddPoints counts interpolated points.
func (r *Recorder) AddPoints(n int) {
	if r == nil {
		return
	}
	r.InterpolatedPoints.Add(float64(n))
}

// WriteTextfile writes the collected metrics in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %q: %w", path, err)
	}
	return nil
}
