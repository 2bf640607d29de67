package geometry2D

import "math"

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) (pt Point) {
	pt.X[0], pt.X[1] = x, y
	return
}

func (pt Point) Plus(po Point) (out Point) {
	out.X[0] = pt.X[0] + po.X[0]
	out.X[1] = pt.X[1] + po.X[1]
	return
}

func (pt Point) Minus(po Point) (out Point) {
	out.X[0] = pt.X[0] - po.X[0]
	out.X[1] = pt.X[1] - po.X[1]
	return
}

func (pt Point) Scale(a float64) (out Point) {
	out.X[0] = a * pt.X[0]
	out.X[1] = a * pt.X[1]
	return
}

func (pt Point) Dist(po Point) (d float64) {
	var (
		dx = pt.X[0] - po.X[0]
		dy = pt.X[1] - po.X[1]
	)
	d = math.Sqrt(dx*dx + dy*dy)
	return
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(geometry []Point) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin[0], box.XMin[1] = geometry[0].X[0], geometry[0].X[1]
	box.XMax[0], box.XMax[1] = geometry[0].X[0], geometry[0].X[1]
	for _, point := range geometry {
		for i := 0; i < 2; i++ {
			if point.X[i] < box.XMin[i] {
				box.XMin[i] = point.X[i]
			}
			if point.X[i] > box.XMax[i] {
				box.XMax[i] = point.X[i]
			}
		}
	}
	return box
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	centroid = NewPoint(
		0.5*(bb.XMax[0]+bb.XMin[0]),
		0.5*(bb.XMax[1]+bb.XMin[1]),
	)
	return
}

func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 2; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], newBB.XMin[i])
		bb.XMax[i] = math.Max(bb.XMax[i], newBB.XMax[i])
	}
}
