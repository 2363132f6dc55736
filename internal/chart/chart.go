package chart

import (
	"image"
	"math"

	"github.com/shopspring/decimal"
)

// flatPadding widens a flat series so it still spans a drawable range.
const flatPadding = 0.001

// Point is a position on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Line is a straight segment on the drawing surface.
type Line struct {
	From Point
	To   Point
}

// Bounds returns the lowest and highest of the provided values. A flat series is widened
// so the returned range is never zero.
func Bounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		lo -= flatPadding
		hi += flatPadding
	}

	return lo, hi
}

// Project maps values onto the provided rectangle. Values are evenly spaced along X from the
// left edge to the right edge, Y grows upwards from the bottom edge between lo and hi.
func Project(values []float64, lo, hi float64, rect image.Rectangle) []Point {
	points := make([]Point, len(values))
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for idx, v := range values {
		x := float64(rect.Min.X) + float64(rect.Dx())/2
		if len(values) > 1 {
			x = float64(rect.Min.X) + float64(idx)/float64(len(values)-1)*float64(rect.Dx())
		}

		y := float64(rect.Max.Y) - (v-lo)/span*float64(rect.Dy())
		points[idx] = Point{X: x, Y: y}
	}

	return points
}

// Dashes splits the segment between from and to into dash segments of the provided length
// separated by gaps.
func Dashes(from, to Point, dash, gap float64) []Line {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	ux, uy := dx/length, dy/length
	lines := make([]Line, 0, int(length/(dash+gap))+1)
	for pos := 0.0; pos < length; pos += dash + gap {
		end := math.Min(pos+dash, length)
		lines = append(lines, Line{
			From: Point{X: from.X + ux*pos, Y: from.Y + uy*pos},
			To:   Point{X: from.X + ux*end, Y: from.Y + uy*end},
		})
	}

	return lines
}

// TickIndices returns the category indices labeled on an axis of n categories when interval
// categories are skipped between labeled ones.
func TickIndices(n, interval int) []int {
	if n <= 0 {
		return nil
	}
	if interval < 0 {
		interval = 0
	}

	ticks := make([]int, 0, n/(interval+1)+1)
	for idx := 0; idx < n; idx += interval + 1 {
		ticks = append(ticks, idx)
	}

	return ticks
}

// niceStep rounds a raw tick step up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base

	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 2.5:
		return 2.5 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// ValueTicks returns evenly stepped, human friendly tick values covering lo to hi using
// at most count ticks.
func ValueTicks(lo, hi float64, count int) []float64 {
	if count < 2 || hi <= lo {
		return []float64{lo}
	}

	step := niceStep((hi - lo) / float64(count-1))
	start := math.Ceil(lo/step) * step

	ticks := make([]float64, 0, count)
	for v := start; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, v)
	}

	return ticks
}

// FormatTick formats an axis value, keeping more decimal places for smaller magnitudes.
func FormatTick(v float64) string {
	var places int32
	abs := math.Abs(v)
	switch {
	case abs >= 1000:
		places = 0
	case abs >= 1:
		places = 2
	case abs >= 0.01:
		places = 4
	default:
		places = 6
	}

	return decimal.NewFromFloat(v).Round(places).String()
}

// Nearest returns the index of the point horizontally closest to x, or -1 if there are
// no points.
func Nearest(points []Point, x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for idx := range points {
		dist := math.Abs(points[idx].X - x)
		if dist < bestDist {
			best = idx
			bestDist = dist
		}
	}

	return best
}
