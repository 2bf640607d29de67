package types

import (
	"fmt"
	"math"
)

/*
EdgeKey is an always positive number that stores an undirected edge's vertices
as arena indices in a way that can be compared. An edge between vertices [4]
and [0] will always be stored as [0,4], in the ascending order of the index
values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices() (verts [2]int) {
	var (
		ekTmp = ek >> 32
	)
	verts[1] = int(ekTmp)
	verts[0] = int(ek - ekTmp*(1<<32))
	return
}

/*
DirectedEdge stores an edge's vertices in their traversal order, so that the
two opposing traversals of one undirected edge produce distinct keys. The
half-edge builder keys its lookup map on this: the reverse of a key addresses
the candidate twin
*/
type DirectedEdge uint64

func NewDirectedEdge(origin, dest int) (packed DirectedEdge) {
	var (
		limit = math.MaxUint32
	)
	if origin < 0 || origin > limit || dest < 0 || dest > limit {
		panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
			origin, dest))
	}
	packed = DirectedEdge(origin + dest<<32)
	return
}

func (de DirectedEdge) Reversed() (rev DirectedEdge) {
	verts := de.GetVertices()
	rev = NewDirectedEdge(verts[1], verts[0])
	return
}

func (de DirectedEdge) GetVertices() (verts [2]int) {
	var (
		deTmp = de >> 32
	)
	verts[1] = int(deTmp)
	verts[0] = int(de - deTmp*(1<<32))
	return
}

// Undirected reduces a directed key to the canonical undirected key shared by
// both traversal orders
func (de DirectedEdge) Undirected() (ek EdgeKey) {
	ek = NewEdgeKey(de.GetVertices())
	return
}
