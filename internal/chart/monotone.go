package chart

import "math"

// Segment is a cubic Bézier segment.
type Segment struct {
	From Point
	C1   Point
	C2   Point
	To   Point
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Monotone returns the cubic segments of a monotone cubic interpolation through the provided
// points, which must be ordered by X. The curve passes through every point and preserves the
// monotonicity of the data between them, so it never overshoots a local extreme.
func Monotone(points []Point) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}

	slopes := make([]float64, n-1)
	for idx := 0; idx < n-1; idx++ {
		h := points[idx+1].X - points[idx].X
		if h != 0 {
			slopes[idx] = (points[idx+1].Y - points[idx].Y) / h
		}
	}

	tangents := make([]float64, n)
	switch n {
	case 2:
		tangents[0], tangents[1] = slopes[0], slopes[0]
	default:
		for idx := 1; idx < n-1; idx++ {
			h0 := points[idx].X - points[idx-1].X
			h1 := points[idx+1].X - points[idx].X
			s0, s1 := slopes[idx-1], slopes[idx]

			var p float64
			if h0+h1 != 0 {
				p = (s0*h1 + s1*h0) / (h0 + h1)
			}

			tangents[idx] = (sign(s0) + sign(s1)) *
				math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
		}

		tangents[0] = (3*slopes[0] - tangents[1]) / 2
		tangents[n-1] = (3*slopes[n-2] - tangents[n-2]) / 2
	}

	segments := make([]Segment, n-1)
	for idx := 0; idx < n-1; idx++ {
		p0, p1 := points[idx], points[idx+1]
		dx := (p1.X - p0.X) / 3
		segments[idx] = Segment{
			From: p0,
			C1:   Point{X: p0.X + dx, Y: p0.Y + dx*tangents[idx]},
			C2:   Point{X: p1.X - dx, Y: p1.Y - dx*tangents[idx+1]},
			To:   p1,
		}
	}

	return segments
}
