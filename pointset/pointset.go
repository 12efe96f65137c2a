package pointset

import "github.com/jbeda/geom"

// Set is a named list of points in caller order.
type Set struct {
	Name   string
	Points []geom.Coord
}

// Classic is the four-point instance (0,0), (10,5), (12,-5), (22,0).
func Classic() Set {
	return Set{
		Name: "classic",
		Points: []geom.Coord{
			{X: 0, Y: 0},
			{X: 10, Y: 5},
			{X: 12, Y: -5},
			{X: 22, Y: 0},
		},
	}
}

// Len returns the number of points.
func (s Set) Len() int { return len(s.Points) }

// Bounds returns the smallest rectangle containing every point.
// An empty set yields the zero Rect.
func (s Set) Bounds() geom.Rect {
	if len(s.Points) == 0 {
		return geom.Rect{}
	}

	r := geom.Rect{Min: s.Points[0], Max: s.Points[0]}
	for _, p := range s.Points[1:] {
		r.ExpandToContainRect(geom.Rect{Min: p, Max: p})
	}

	return r
}

// Translate returns a copy shifted by (dx, dy).
func (s Set) Translate(dx, dy float64) Set {
	d := geom.Coord{X: dx, Y: dy}

	return s.transform(func(p geom.Coord) geom.Coord { return p.Plus(d) })
}

// MirrorY returns a copy reflected across the x axis. X order is unchanged.
func (s Set) MirrorY() Set {
	return s.transform(func(p geom.Coord) geom.Coord { return geom.Coord{X: p.X, Y: -p.Y} })
}

// Rotate180 returns a copy rotated by a half turn about the origin.
// X order is reversed: rank r becomes rank n-1-r.
func (s Set) Rotate180() Set {
	return s.transform(func(p geom.Coord) geom.Coord { return p.Times(-1) })
}

func (s Set) transform(f func(geom.Coord) geom.Coord) Set {
	out := Set{Name: s.Name, Points: make([]geom.Coord, len(s.Points))}
	for i, p := range s.Points {
		out.Points[i] = f(p)
	}

	return out
}
