package geometry2D

import (
	"errors"
	"fmt"
)

// A Polygon is an ordered, structurally open ring of vertices. The closing
// edge from the last vertex back to the first is implied, never stored.
type Polygon []Point

var ErrShortRing = errors.New("polygon must have at least 3 distinct vertices")

/*
CleanRing removes consecutive duplicate vertices and a duplicated closing
vertex from a ring, returning the cleaned copy. Equality is exact coordinate
equality - geometrically coincident but numerically distinct points are kept
distinct here and everywhere downstream
*/
func CleanRing(ring Polygon) (cleaned Polygon, err error) {
	cleaned = make(Polygon, 0, len(ring))
	for i, pt := range ring {
		if i == 0 || pt != cleaned[len(cleaned)-1] {
			cleaned = append(cleaned, pt)
		}
	}
	if len(cleaned) > 1 && cleaned[0] == cleaned[len(cleaned)-1] {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		err = fmt.Errorf("have %d vertices after cleanup: %w", len(cleaned), ErrShortRing)
		return nil, err
	}
	return
}

/*
IsClockwise reports whether the ring is wound clockwise under a y-down
convention (screen coordinates), where a positive signed area corresponds to
visually clockwise winding
*/
func IsClockwise(ring Polygon) (cw bool) {
	if len(ring) < 3 {
		panic(fmt.Errorf("polygon must have at least 3 points, have %d", len(ring)))
	}
	var (
		area float64
		n    = len(ring)
	)
	for i := 0; i < n; i++ {
		p1 := ring[i]
		p2 := ring[(i+1)%n]
		area += p1.X[0]*p2.X[1] - p2.X[0]*p1.X[1]
	}
	cw = area > 0
	return
}

// Reverse flips the winding order in place
func Reverse(ring Polygon) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

// Centroid is the arithmetic mean of the ring's vertices
func (p Polygon) Centroid() (centroid Point) {
	for _, pt := range p {
		centroid = centroid.Plus(pt)
	}
	if len(p) > 0 {
		centroid = centroid.Scale(1 / float64(len(p)))
	}
	return
}
