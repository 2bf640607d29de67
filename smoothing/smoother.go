/*
Package smoothing relaxes the vertex positions of a half-edge mesh while
leaving its connectivity untouched. Three variants share one iteration
contract: simultaneous Laplacian (snapshot-based), immediate Laplacian
(in-place, order-sensitive) and HC, which corrects Laplacian shrinkage by
pulling vertices back toward a blend of their original and previous
positions.
*/
package smoothing

import (
	"errors"
	"fmt"

	"github.com/softmesh/hemesh/mesh"
)

// MaxIterations caps SmoothUntilConvergence against cutoffs that are never
// reached.
const MaxIterations = 10000

var ErrInvalidArgument = errors.New("invalid smoothing argument")

// A Smoother performs one relaxation step over all mesh vertices and reports
// the largest Euclidean displacement any vertex moved. With preserveBoundary
// set, boundary vertices hold their positions.
type Smoother interface {
	SmoothOnce(preserveBoundary bool) (maxDisplacement float64)
}

// Smooth runs exactly iterations steps and returns the displacement of the
// final step. Zero iterations is a no-op returning 0.
func Smooth(s Smoother, iterations int, preserveBoundary bool) (maxDisplacement float64, err error) {
	if iterations < 0 {
		err = fmt.Errorf("iterations must be non-negative, have %d: %w",
			iterations, ErrInvalidArgument)
		return
	}
	for i := 0; i < iterations; i++ {
		maxDisplacement = s.SmoothOnce(preserveBoundary)
	}
	return
}

// SmoothUntilConvergence repeats single steps until the step displacement
// falls to cutoff or below, or MaxIterations steps have run, whichever comes
// first. It reports the number of steps taken and the final displacement.
func SmoothUntilConvergence(s Smoother, cutoff float64, preserveBoundary bool) (iterations int, maxDisplacement float64, err error) {
	if cutoff < 0 {
		err = fmt.Errorf("displacement cutoff must be non-negative, have %g: %w",
			cutoff, ErrInvalidArgument)
		return
	}
	for iterations < MaxIterations {
		maxDisplacement = s.SmoothOnce(preserveBoundary)
		iterations++
		if maxDisplacement <= cutoff {
			break
		}
	}
	return
}

func validateMesh(m *mesh.Mesh) (err error) {
	if m == nil {
		err = fmt.Errorf("mesh must not be nil: %w", ErrInvalidArgument)
	}
	return
}

func validateUnit(name string, val float64) (err error) {
	if val < 0 || val > 1 {
		err = fmt.Errorf("%s must be between 0 and 1 inclusive, have %g: %w",
			name, val, ErrInvalidArgument)
	}
	return
}
