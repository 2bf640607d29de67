package smoothing

import (
	"github.com/softmesh/hemesh/geometry2D"
	"github.com/softmesh/hemesh/mesh"
)

/*
HC implements the HC ("Humphrey's Classes") smoothing algorithm: a Laplacian
step followed by a correction that pushes vertices back toward a blend of
their original and previous positions, counteracting the shrinkage plain
Laplacian smoothing causes.

One step, with q the pre-step positions, o the originals snapshotted at
construction, and adj(i) the neighbor set:

 1. p_i = average of current neighbor positions, or q_i unchanged for a
    vertex with no neighbors or a held boundary vertex
 2. b_i = p_i - (alpha*o_i + (1-alpha)*q_i), computed for every vertex
    before any correction is applied
 3. new_i = p_i - (beta*b_i + (1-beta) * average of b_j over adj(i))

The correction pass must read b values from step 2 of the same step, never
already-corrected positions, so steps 2 and 3 are two full passes over the
vertex arena. All new positions apply simultaneously.

The original-position snapshot is indexed by vertex arena position and is
valid only while the mesh's vertex collection is unchanged, which the mesh
guarantees by construction
*/
type HC struct {
	Mesh        *mesh.Mesh
	Alpha, Beta float64
	original    []geometry2D.Point
}

func NewHC(m *mesh.Mesh, alpha, beta float64) (s *HC, err error) {
	if err = validateMesh(m); err != nil {
		return
	}
	if err = validateUnit("alpha", alpha); err != nil {
		return
	}
	if err = validateUnit("beta", beta); err != nil {
		return
	}
	s = &HC{Mesh: m, Alpha: alpha, Beta: beta}
	s.original = make([]geometry2D.Point, len(m.Vertices))
	for i := range m.Vertices {
		s.original[i] = m.Vertices[i].Position
	}
	return
}

func (s *HC) SmoothOnce(preserveBoundary bool) (maxDisplacement float64) {
	var (
		verts = s.Mesh.Vertices
		nv    = len(verts)
		q     = make([]geometry2D.Point, nv) // pre-step positions
		p     = make([]geometry2D.Point, nv) // Laplacian-smoothed positions
		b     = make([]geometry2D.Point, nv) // correction vectors
		out   = make([]geometry2D.Point, nv)
	)
	for i := range verts {
		q[i] = verts[i].Position
	}

	// First pass: Laplacian step and correction vectors
	for i := range verts {
		held := preserveBoundary && verts[i].OnBoundary
		if neighbors := verts[i].Neighbors; !held && len(neighbors) > 0 {
			var avg geometry2D.Point
			for _, n := range neighbors {
				avg = avg.Plus(verts[n].Position)
			}
			p[i] = avg.Scale(1 / float64(len(neighbors)))
		} else {
			p[i] = q[i]
		}
		blend := s.original[i].Scale(s.Alpha).Plus(q[i].Scale(1 - s.Alpha))
		b[i] = p[i].Minus(blend)
	}

	// Second pass: correction, reading only first-pass b values
	for i := range verts {
		switch neighbors := verts[i].Neighbors; {
		case preserveBoundary && verts[i].OnBoundary:
			out[i] = q[i]
		case len(neighbors) > 0:
			var avgB geometry2D.Point
			for _, n := range neighbors {
				avgB = avgB.Plus(b[n])
			}
			avgB = avgB.Scale(1 / float64(len(neighbors)))
			correction := b[i].Scale(s.Beta).Plus(avgB.Scale(1 - s.Beta))
			out[i] = p[i].Minus(correction)
		default:
			out[i] = p[i]
		}
		if d := q[i].Dist(out[i]); d > maxDisplacement {
			maxDisplacement = d
		}
	}

	for i := range verts {
		verts[i].Position = out[i]
	}
	return
}
