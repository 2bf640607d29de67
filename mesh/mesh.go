package mesh

import (
	"errors"

	"github.com/softmesh/hemesh/geometry2D"
)

// None marks an absent arena index, e.g. the twin of a boundary half-edge.
const None = -1

var (
	ErrInvalidFace = errors.New("invalid mesh face")
	ErrNonManifold = errors.New("non-manifold edge")
)

/*
Vertex is one pooled position plus its derived topology: the half-edges
leaving it, its unique topological neighbors in insertion order, and whether
it touches the mesh perimeter (outer or hole). Positions are the only mesh
state that mutates after construction - the smoothers write them in place
*/
type Vertex struct {
	Position   geometry2D.Point
	Outgoing   []int // half-edge indices with this vertex as origin
	Neighbors  []int // vertex indices, insertion-ordered, no duplicates
	OnBoundary bool
}

/*
HalfEdge is one directed traversal of an edge. Twin is the oppositely
directed half-edge sharing both endpoints, or None on the boundary. Next and
Prev link the edges of one face into a cycle in face winding order
*/
type HalfEdge struct {
	Origin int
	Twin   int
	Next   int
	Prev   int
}

// Face holds only a representative half-edge; its boundary is recovered by
// walking Next until the representative repeats.
type Face struct {
	Edge int
}

/*
Mesh is the half-edge aggregate built once from a polygon soup. Vertices,
Edges, Faces and BaseEdges index into each other by position in their slices.
BaseEdges holds one half-edge per undirected edge, the directed traversal
that was encountered first during construction. Topology is immutable after
construction; only vertex positions change
*/
type Mesh struct {
	Vertices  []Vertex
	Edges     []HalfEdge
	Faces     []Face
	BaseEdges []int
}

// Dest is the destination vertex of a half-edge, read through the face cycle
// as the origin of the next edge.
func (m *Mesh) Dest(he int) (vert int) {
	vert = m.Edges[m.Edges[he].Next].Origin
	return
}

// EdgeLength is the Euclidean distance between a half-edge's endpoints,
// usable directly as a graph export weight function.
func (m *Mesh) EdgeLength(he int) (length float64) {
	var (
		a = m.Vertices[m.Edges[he].Origin].Position
		b = m.Vertices[m.Dest(he)].Position
	)
	length = a.Dist(b)
	return
}

// FaceHalfEdges walks Next from the face's representative edge until it
// repeats, returning the face's half-edges in face winding order.
func (m *Mesh) FaceHalfEdges(face int) (hes []int) {
	var (
		start = m.Faces[face].Edge
	)
	if start == None {
		return
	}
	for he := start; ; he = m.Edges[he].Next {
		hes = append(hes, he)
		if m.Edges[he].Next == start {
			break
		}
	}
	return
}

// FaceVertices returns the origins of FaceHalfEdges in the same order, which
// preserves the winding order the face was supplied in.
func (m *Mesh) FaceVertices(face int) (verts []int) {
	var (
		hes = m.FaceHalfEdges(face)
	)
	verts = make([]int, len(hes))
	for i, he := range hes {
		verts[i] = m.Edges[he].Origin
	}
	return
}

// FacePolygon materializes a face as a ring of positions, the inverse of the
// soup the mesh was built from (up to rotation).
func (m *Mesh) FacePolygon(face int) (ring geometry2D.Polygon) {
	var (
		verts = m.FaceVertices(face)
	)
	ring = make(geometry2D.Polygon, len(verts))
	for i, v := range verts {
		ring[i] = m.Vertices[v].Position
	}
	return
}

// Soup reconstructs every face ring, preserving face order and winding.
func (m *Mesh) Soup() (soup []geometry2D.Polygon) {
	soup = make([]geometry2D.Polygon, len(m.Faces))
	for i := range m.Faces {
		soup[i] = m.FacePolygon(i)
	}
	return
}

// BoundaryVertexCount counts vertices incident to at least one twinless edge.
func (m *Mesh) BoundaryVertexCount() (count int) {
	for i := range m.Vertices {
		if m.Vertices[i].OnBoundary {
			count++
		}
	}
	return
}

// Bounds is the bounding box over all vertex positions.
func (m *Mesh) Bounds() (box *geometry2D.BoundingBox) {
	pts := make([]geometry2D.Point, len(m.Vertices))
	for i := range m.Vertices {
		pts[i] = m.Vertices[i].Position
	}
	box = geometry2D.NewBoundingBox(pts)
	return
}
