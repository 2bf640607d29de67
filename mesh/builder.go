package mesh

import (
	"fmt"

	"github.com/softmesh/hemesh/geometry2D"
	"github.com/softmesh/hemesh/types"
)

/*
New builds a half-edge mesh from a polygon soup: an ordered collection of
simple polygons that tile without gaps or overlaps, each wound the same way
(clockwise under a y-down convention, so that a half-edge's bounded face lies
to its left).

Coincident positions are pooled into shared vertices by exact coordinate
equality. Each face edge becomes a directed half-edge; opposing traversals of
one undirected edge are linked as twins, and the traversal seen first is
recorded as the undirected edge's base. A face with fewer than 3 distinct
vertices fails with ErrInvalidFace before any of its state is created; a
directed edge reused by a second face fails the whole build with
ErrNonManifold
*/
func New(soup []geometry2D.Polygon) (m *Mesh, err error) {
	if soup == nil {
		err = fmt.Errorf("nil face source: %w", ErrInvalidFace)
		return
	}
	var (
		pool    = make(map[geometry2D.Point]int)
		edgeMap = make(map[types.DirectedEdge]int)
	)
	m = &Mesh{}
	for fi, ring := range soup {
		var cleaned geometry2D.Polygon
		if cleaned, err = geometry2D.CleanRing(ring); err != nil {
			err = fmt.Errorf("face %d: %w: %s", fi, ErrInvalidFace, err)
			return nil, err
		}
		// Resolve positions through the vertex pool
		faceVerts := make([]int, len(cleaned))
		for i, pt := range cleaned {
			vi, ok := pool[pt]
			if !ok {
				vi = len(m.Vertices)
				pool[pt] = vi
				m.Vertices = append(m.Vertices, Vertex{Position: pt})
			}
			faceVerts[i] = vi
		}
		// Create the face's half-edges, pairing twins as they appear
		faceEdges := make([]int, len(faceVerts))
		for i, a := range faceVerts {
			b := faceVerts[(i+1)%len(faceVerts)]
			key := types.NewDirectedEdge(a, b)
			if prior, exists := edgeMap[key]; exists {
				err = fmt.Errorf("face %d reuses directed edge %d->%d (half-edge %d): %w",
					fi, a, b, prior, ErrNonManifold)
				return nil, err
			}
			he := len(m.Edges)
			m.Edges = append(m.Edges, HalfEdge{Origin: a, Twin: None, Next: None, Prev: None})
			edgeMap[key] = he
			m.Vertices[a].Outgoing = append(m.Vertices[a].Outgoing, he)
			if twin, ok := edgeMap[key.Reversed()]; ok {
				m.Edges[he].Twin = twin
				m.Edges[twin].Twin = he
			} else {
				m.BaseEdges = append(m.BaseEdges, he)
			}
			faceEdges[i] = he
		}
		// Link the face cycle
		for i, he := range faceEdges {
			next := faceEdges[(i+1)%len(faceEdges)]
			m.Edges[he].Next = next
			m.Edges[next].Prev = he
		}
		m.Faces = append(m.Faces, Face{Edge: faceEdges[0]})
	}
	m.classify()
	return
}

/*
classify runs once after all faces are built. Pass 1 marks both endpoints of
every twinless half-edge as boundary. Pass 2 collects each vertex's unique
neighbors in insertion order, taking for every outgoing half-edge both its
destination and its predecessor's origin - outgoing destinations alone
under-count neighbors at boundary and irregular-valence vertices, because a
neighbor can be connected only by an edge arriving through an adjacent face
*/
func (m *Mesh) classify() {
	for i := range m.Edges {
		if m.Edges[i].Twin == None {
			m.Vertices[m.Edges[i].Origin].OnBoundary = true
			m.Vertices[m.Dest(i)].OnBoundary = true
		}
	}
	for i := range m.Vertices {
		var (
			v    = &m.Vertices[i]
			seen = make(map[int]bool)
		)
		for _, he := range v.Outgoing {
			for _, n := range [2]int{m.Dest(he), m.Edges[m.Edges[he].Prev].Origin} {
				if !seen[n] {
					seen[n] = true
					v.Neighbors = append(v.Neighbors, n)
				}
			}
		}
	}
}
