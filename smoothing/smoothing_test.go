package smoothing

import (
	"testing"

	"github.com/softmesh/hemesh/geometry2D"
	"github.com/softmesh/hemesh/mesh"
	"github.com/stretchr/testify/assert"
)

// two triangles forming a unit quadrilateral split by a diagonal
func splitQuad(t *testing.T) (m *mesh.Mesh) {
	var err error
	m, err = mesh.New([]geometry2D.Polygon{
		{geometry2D.NewPoint(0, 0), geometry2D.NewPoint(1, 0), geometry2D.NewPoint(1, 1)},
		{geometry2D.NewPoint(0, 0), geometry2D.NewPoint(1, 1), geometry2D.NewPoint(0, 1)},
	})
	assert.NoError(t, err)
	return
}

// 2x2 grid of unit squares; the returned index is the single interior vertex
func grid2x2(t *testing.T) (m *mesh.Mesh, center int) {
	var (
		soup []geometry2D.Polygon
		err  error
	)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			x, y := float64(col), float64(row)
			soup = append(soup, geometry2D.Polygon{
				geometry2D.NewPoint(x, y), geometry2D.NewPoint(x+1, y),
				geometry2D.NewPoint(x+1, y+1), geometry2D.NewPoint(x, y+1),
			})
		}
	}
	m, err = mesh.New(soup)
	assert.NoError(t, err)
	center = -1
	for i := range m.Vertices {
		if !m.Vertices[i].OnBoundary {
			assert.Equal(t, -1, center)
			center = i
		}
	}
	assert.Equal(t, geometry2D.NewPoint(1, 1), m.Vertices[center].Position)
	return
}

func positions(m *mesh.Mesh) (pts []geometry2D.Point) {
	pts = make([]geometry2D.Point, len(m.Vertices))
	for i := range m.Vertices {
		pts[i] = m.Vertices[i].Position
	}
	return
}

func TestArgumentValidation(t *testing.T) {
	m := splitQuad(t)
	{ // Mesh and factor ranges are rejected at construction
		_, err := NewSimultaneousLaplacian(nil, 0.5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewSimultaneousLaplacian(m, -0.1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewImmediateLaplacian(m, 1.1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewHC(nil, 0.5, 0.5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewHC(m, -0.5, 0.5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewHC(m, 0.5, 2)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	{ // Iteration count and cutoff are rejected before any step runs
		s, err := NewSimultaneousLaplacian(m, 0.5)
		assert.NoError(t, err)
		before := positions(m)

		_, err = Smooth(s, -1, true)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, _, err = SmoothUntilConvergence(s, -0.001, true)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, before, positions(m))

		// Zero iterations is a no-op returning 0
		d, err := Smooth(s, 0, true)
		assert.NoError(t, err)
		assert.Equal(t, 0., d)
		assert.Equal(t, before, positions(m))
	}
}

func TestSimultaneousLaplacian(t *testing.T) {
	{ // Factor 0 is the identity
		m := splitQuad(t)
		s, err := NewSimultaneousLaplacian(m, 0)
		assert.NoError(t, err)
		before := positions(m)
		assert.Equal(t, 0., s.SmoothOnce(false))
		assert.Equal(t, before, positions(m))
	}
	{ // Factor 1 places a free vertex exactly on its neighbor centroid
		m, center := grid2x2(t)
		m.Vertices[center].Position = geometry2D.NewPoint(1.2, 0.9)
		s, err := NewSimultaneousLaplacian(m, 1)
		assert.NoError(t, err)

		d := s.SmoothOnce(true)
		var centroid geometry2D.Point
		for _, n := range m.Vertices[center].Neighbors {
			centroid = centroid.Plus(m.Vertices[n].Position)
		}
		centroid = centroid.Scale(1. / 4.)
		assert.Equal(t, centroid, m.Vertices[center].Position)
		assert.InDelta(t, geometry2D.NewPoint(1.2, 0.9).Dist(centroid), d, 1e-14)

		// Boundary vertices held their positions
		for i := range m.Vertices {
			if i != center {
				assert.True(t, m.Vertices[i].OnBoundary)
				assert.Equal(t, float64(int(m.Vertices[i].Position.X[0])), m.Vertices[i].Position.X[0])
			}
		}
	}
	{ // Without boundary preservation every vertex moves
		m := splitQuad(t)
		s, err := NewSimultaneousLaplacian(m, 1)
		assert.NoError(t, err)
		d := s.SmoothOnce(false)
		assert.Greater(t, d, 0.)
		// All-boundary quad contracts toward its interior
		box := m.Bounds()
		assert.Less(t, box.XMax[0]-box.XMin[0], 1.)
	}
}

func TestImmediateLaplacianIsOrderDependent(t *testing.T) {
	var (
		mSim, mImm = splitQuad(t), splitQuad(t)
	)
	sim, err := NewSimultaneousLaplacian(mSim, 1)
	assert.NoError(t, err)
	imm, err := NewImmediateLaplacian(mImm, 1)
	assert.NoError(t, err)

	sim.SmoothOnce(false)
	imm.SmoothOnce(false)

	// Vertex 0 is relaxed first in both variants and sees only pre-step
	// neighbors, so it lands in the same place
	assert.Equal(t, mSim.Vertices[0].Position, mImm.Vertices[0].Position)

	// Vertex 1 sees vertex 0's already-updated position in the immediate
	// variant and diverges from the snapshot result
	assert.NotEqual(t, mSim.Vertices[1].Position, mImm.Vertices[1].Position)
}

func TestHCSmoother(t *testing.T) {
	{ // One step of HC(0.5, 0.5) on the split quad, all vertices free.
		// Hand-computed from the two-pass rule with q = o on the first step.
		m := splitQuad(t)
		s, err := NewHC(m, 0.5, 0.5)
		assert.NoError(t, err)
		d := s.SmoothOnce(false)

		expected := []geometry2D.Point{
			geometry2D.NewPoint(4./9., 4./9.),
			geometry2D.NewPoint(0.75, 0.25),
			geometry2D.NewPoint(5./9., 5./9.),
			geometry2D.NewPoint(0.25, 0.75),
		}
		for i, want := range expected {
			assert.InDelta(t, want.X[0], m.Vertices[i].Position.X[0], 1e-12)
			assert.InDelta(t, want.X[1], m.Vertices[i].Position.X[1], 1e-12)
		}
		assert.Greater(t, d, 0.)
	}
	{ // Alpha 0, beta 1: the self correction cancels the Laplacian move
		// exactly and the step is the identity
		m := splitQuad(t)
		s, err := NewHC(m, 0, 1)
		assert.NoError(t, err)
		before := positions(m)
		d := s.SmoothOnce(false)
		assert.InDelta(t, 0., d, 1e-14)
		for i, want := range before {
			assert.InDelta(t, want.X[0], m.Vertices[i].Position.X[0], 1e-14)
			assert.InDelta(t, want.X[1], m.Vertices[i].Position.X[1], 1e-14)
		}
	}
	{ // HC resists the shrinkage plain Laplacian smoothing causes
		mLap, mHC := splitQuad(t), splitQuad(t)
		lap, err := NewSimultaneousLaplacian(mLap, 1)
		assert.NoError(t, err)
		hc, err := NewHC(mHC, 0.5, 0.5)
		assert.NoError(t, err)

		_, err = Smooth(lap, 3, false)
		assert.NoError(t, err)
		_, err = Smooth(hc, 3, false)
		assert.NoError(t, err)

		lapBox, hcBox := mLap.Bounds(), mHC.Bounds()
		assert.Greater(t, hcBox.XMax[0]-hcBox.XMin[0], lapBox.XMax[0]-lapBox.XMin[0])
		assert.Greater(t, hcBox.XMax[1]-hcBox.XMin[1], lapBox.XMax[1]-lapBox.XMin[1])
	}
	{ // Boundary vertices hold position under preservation
		m, center := grid2x2(t)
		m.Vertices[center].Position = geometry2D.NewPoint(0.8, 1.3)
		s, err := NewHC(m, 0.5, 0.5)
		assert.NoError(t, err)
		s.SmoothOnce(true)
		for i := range m.Vertices {
			if i != center {
				assert.Equal(t, float64(int(m.Vertices[i].Position.X[0])), m.Vertices[i].Position.X[0])
				assert.Equal(t, float64(int(m.Vertices[i].Position.X[1])), m.Vertices[i].Position.X[1])
			}
		}
	}
}

// reports a constant displacement, so no cutoff ever converges
type stuckSmoother struct{}

func (stuckSmoother) SmoothOnce(preserveBoundary bool) (maxDisplacement float64) {
	return 1
}

func TestConvergenceDriver(t *testing.T) {
	{ // A converged mesh stops on the first step at cutoff 0
		m, _ := grid2x2(t)
		s, err := NewSimultaneousLaplacian(m, 1)
		assert.NoError(t, err)
		iterations, d, err := SmoothUntilConvergence(s, 0, true)
		assert.NoError(t, err)
		assert.Equal(t, 1, iterations)
		assert.Equal(t, 0., d)
	}
	{ // A perturbed interior vertex snaps back, then the next step is still
		m, center := grid2x2(t)
		m.Vertices[center].Position = geometry2D.NewPoint(1.1, 1.1)
		s, err := NewSimultaneousLaplacian(m, 1)
		assert.NoError(t, err)
		iterations, d, err := SmoothUntilConvergence(s, 0, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, iterations)
		assert.Equal(t, 0., d)
		assert.Equal(t, geometry2D.NewPoint(1, 1), m.Vertices[center].Position)
	}
	{ // An unreachable cutoff terminates at the hard iteration cap
		iterations, d, err := SmoothUntilConvergence(stuckSmoother{}, 0.5, false)
		assert.NoError(t, err)
		assert.Equal(t, MaxIterations, iterations)
		assert.Equal(t, 1., d)
	}
	{ // Smooth returns the displacement of the final step
		m, center := grid2x2(t)
		m.Vertices[center].Position = geometry2D.NewPoint(1.5, 1)
		s, err := NewSimultaneousLaplacian(m, 1)
		assert.NoError(t, err)
		d, err := Smooth(s, 2, true)
		assert.NoError(t, err)
		assert.Equal(t, 0., d) // second step has nothing left to move
	}
}
