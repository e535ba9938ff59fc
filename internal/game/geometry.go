package game

import "math"

type Point struct {
	X float64
	Y float64
}

func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// InRange is inclusive: a target exactly r away is in range.
func InRange(ax, ay, bx, by, r float64) bool {
	return Distance(ax, ay, bx, by) <= r
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NormalizedRect builds a rect from two corners given in any order.
func NormalizedRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X: math.Min(x0, x1),
		Y: math.Min(y0, y1),
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W && r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// scaleStat multiplies an integer stat and truncates toward zero, so 200*1.15 is 229.
func scaleStat(v int, factor float64) int {
	return int(float64(v) * factor)
}
