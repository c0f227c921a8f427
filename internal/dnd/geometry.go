package dnd

import "github.com/jask/wanderlist/internal/destination"

// Point is a terminal cell position.
type Point struct {
	X, Y int
}

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Rect is the on-screen area of a draggable/droppable card.
type Rect struct {
	ID   destination.ID
	X, Y int
	W, H int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// center2 is the center in doubled coordinates so odd sizes stay exact.
func (r Rect) center2() Point {
	return Point{X: 2*r.X + r.W, Y: 2*r.Y + r.H}
}

func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// CollisionDetector picks the droppable that best matches the dragged rect.
type CollisionDetector func(active Rect, droppables []Rect) (destination.ID, bool)

// ClosestCenter returns the droppable whose center is nearest to the center
// of active. Ties go to the earlier droppable.
func ClosestCenter(active Rect, droppables []Rect) (destination.ID, bool) {
	if len(droppables) == 0 {
		return 0, false
	}
	c := active.center2()
	best, bestDist := 0, -1
	for i, r := range droppables {
		d := r.center2().Sub(c)
		dist := d.X*d.X + d.Y*d.Y
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return droppables[best].ID, true
}

func hit(rects []Rect, p Point) (Rect, bool) {
	for _, r := range rects {
		if r.Contains(p) {
			return r, true
		}
	}
	return Rect{}, false
}

func find(rects []Rect, id destination.ID) (int, bool) {
	for i, r := range rects {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}
