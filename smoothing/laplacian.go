package smoothing

import (
	"github.com/softmesh/hemesh/geometry2D"
	"github.com/softmesh/hemesh/mesh"
)

/*
SimultaneousLaplacian moves every free vertex toward the centroid of its
neighbors by a factor in [0,1]. All new positions are computed from a single
snapshot of pre-step positions and written back together, so no vertex
observes a partially updated neighborhood within one step. Factor 0 is the
identity; factor 1 places each free vertex exactly on its neighbor centroid.

A vertex with no neighbors has its centroid at the origin and is pulled
there; such vertices cannot come out of the mesh builder, and the behavior is
kept for parity with the algorithm this implements
*/
type SimultaneousLaplacian struct {
	Mesh   *mesh.Mesh
	Factor float64
}

func NewSimultaneousLaplacian(m *mesh.Mesh, factor float64) (s *SimultaneousLaplacian, err error) {
	if err = validateMesh(m); err != nil {
		return
	}
	if err = validateUnit("smoothing factor", factor); err != nil {
		return
	}
	s = &SimultaneousLaplacian{Mesh: m, Factor: factor}
	return
}

func (s *SimultaneousLaplacian) SmoothOnce(preserveBoundary bool) (maxDisplacement float64) {
	var (
		verts        = s.Mesh.Vertices
		newPositions = make([]geometry2D.Point, len(verts))
	)
	for i := range verts {
		if !preserveBoundary || !verts[i].OnBoundary {
			newPositions[i] = s.newPosition(i)
			if d := verts[i].Position.Dist(newPositions[i]); d > maxDisplacement {
				maxDisplacement = d
			}
		} else {
			newPositions[i] = verts[i].Position
		}
	}
	for i := range verts {
		verts[i].Position = newPositions[i]
	}
	return
}

func (s *SimultaneousLaplacian) newPosition(vert int) (pos geometry2D.Point) {
	var (
		current  = s.Mesh.Vertices[vert].Position
		centroid = s.centroid(vert)
	)
	pos = current.Plus(centroid.Minus(current).Scale(s.Factor))
	return
}

// centroid of the vertex's current neighbor positions; the origin when the
// vertex has none.
func (s *SimultaneousLaplacian) centroid(vert int) (centroid geometry2D.Point) {
	var (
		neighbors = s.Mesh.Vertices[vert].Neighbors
	)
	for _, n := range neighbors {
		centroid = centroid.Plus(s.Mesh.Vertices[n].Position)
	}
	if len(neighbors) > 0 {
		centroid = centroid.Scale(1 / float64(len(neighbors)))
	}
	return
}

/*
ImmediateLaplacian applies the same relaxation rule as SimultaneousLaplacian
but writes each new position before computing the next, so vertices later in
arena order see already-updated neighbors from the same step. Convergence is
faster but depends on the order vertices were pooled during construction
*/
type ImmediateLaplacian struct {
	SimultaneousLaplacian
}

func NewImmediateLaplacian(m *mesh.Mesh, factor float64) (s *ImmediateLaplacian, err error) {
	var base *SimultaneousLaplacian
	if base, err = NewSimultaneousLaplacian(m, factor); err != nil {
		return
	}
	s = &ImmediateLaplacian{SimultaneousLaplacian: *base}
	return
}

func (s *ImmediateLaplacian) SmoothOnce(preserveBoundary bool) (maxDisplacement float64) {
	var (
		verts = s.Mesh.Vertices
	)
	for i := range verts {
		if preserveBoundary && verts[i].OnBoundary {
			continue
		}
		newPosition := s.newPosition(i)
		if d := verts[i].Position.Dist(newPosition); d > maxDisplacement {
			maxDisplacement = d
		}
		verts[i].Position = newPosition
	}
	return
}
