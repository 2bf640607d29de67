package mesh

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/graph/simple"
)

/*
Graph exports the mesh as an undirected simple graph: one node per vertex,
keyed by its arena index, and one edge per base edge. weight maps a base
half-edge index to the edge's weight; pass nil for unit weights, or
(*Mesh).EdgeLength for geometric weights. Self-loops and multi-edges cannot
occur - the builder rejects degenerate rings and base edges are unique per
undirected edge
*/
func (m *Mesh) Graph(weight func(he int) float64) (g *simple.WeightedUndirectedGraph) {
	g = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range m.Vertices {
		g.AddNode(simple.Node(i))
	}
	for _, he := range m.BaseEdges {
		w := 1.
		if weight != nil {
			w = weight(he)
		}
		g.SetWeightedEdge(g.NewWeightedEdge(
			simple.Node(m.Edges[he].Origin), simple.Node(m.Dest(he)), w))
	}
	return
}

// AdjacencyMatrix exports the symmetric 0/1 vertex adjacency over base edges
// as a sparse DOK matrix, which satisfies gonum's mat.Matrix. Convert with
// ToCSR for arithmetic-heavy consumers.
func (m *Mesh) AdjacencyMatrix() (adj *sparse.DOK) {
	var (
		nv = len(m.Vertices)
	)
	adj = sparse.NewDOK(nv, nv)
	for _, he := range m.BaseEdges {
		i, j := m.Edges[he].Origin, m.Dest(he)
		adj.Set(i, j, 1)
		adj.Set(j, i, 1)
	}
	return
}
