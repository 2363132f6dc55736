package chart

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestBounds(t *testing.T) {
	// Ensure the extremes of a series are found.
	lo, hi := Bounds([]float64{5, 2, 9, 4})
	assert.Equal(t, lo, float64(2))
	assert.Equal(t, hi, float64(9))

	// Ensure a flat series is widened.
	lo, hi = Bounds([]float64{3, 3, 3})
	assert.True(t, lo < 3)
	assert.True(t, hi > 3)

	// Ensure an empty series yields a usable range.
	lo, hi = Bounds(nil)
	assert.True(t, hi > lo)
}

func TestProject(t *testing.T) {
	rect := image.Rect(10, 20, 110, 220)

	// Ensure values are spread across the rectangle with Y growing upwards.
	points := Project([]float64{0, 5, 10}, 0, 10, rect)
	want := []Point{
		{X: 10, Y: 220},
		{X: 60, Y: 120},
		{X: 110, Y: 20},
	}
	if !cmp.Equal(points, want) {
		t.Errorf("mismatching points, got %v", cmp.Diff(want, points))
	}

	// Ensure a single value is centered horizontally.
	points = Project([]float64{5}, 0, 10, rect)
	assert.Equal(t, len(points), 1)
	assert.Equal(t, points[0].X, float64(60))

	// Ensure no values yield no points.
	assert.Equal(t, len(Project(nil, 0, 10, rect)), 0)
}

func TestDashes(t *testing.T) {
	// Ensure a horizontal line is split into dashes and gaps.
	lines := Dashes(Point{X: 0, Y: 0}, Point{X: 22, Y: 0}, 5, 5)
	want := []Line{
		{From: Point{X: 0}, To: Point{X: 5}},
		{From: Point{X: 10}, To: Point{X: 15}},
		{From: Point{X: 20}, To: Point{X: 22}},
	}
	if !cmp.Equal(lines, want) {
		t.Errorf("mismatching dashes, got %v", cmp.Diff(want, lines))
	}

	// Ensure vertical lines are supported.
	lines = Dashes(Point{X: 4, Y: 0}, Point{X: 4, Y: 10}, 5, 5)
	assert.Equal(t, len(lines), 1)
	assert.Equal(t, lines[0].To.Y, float64(5))

	// Ensure degenerate input yields nothing.
	assert.Equal(t, len(Dashes(Point{}, Point{}, 5, 5)), 0)
	assert.Equal(t, len(Dashes(Point{}, Point{X: 10}, 0, 5)), 0)
}

func TestTickIndices(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		interval int
		want     []int
	}{
		{name: "week of labeled points", n: 29, interval: 7, want: []int{0, 8, 16, 24}},
		{name: "no skipping", n: 3, interval: 0, want: []int{0, 1, 2}},
		{name: "negative interval", n: 2, interval: -3, want: []int{0, 1}},
		{name: "no categories", n: 0, interval: 7, want: nil},
	}

	for _, test := range tests {
		got := TickIndices(test.n, test.interval)
		if !cmp.Equal(got, test.want) {
			t.Errorf("%s: mismatching ticks, got %v", test.name, cmp.Diff(test.want, got))
		}
	}
}

func TestValueTicks(t *testing.T) {
	// Ensure ticks are rounded to friendly steps within the range.
	ticks := ValueTicks(0, 100, 5)
	want := []float64{0, 25, 50, 75, 100}
	if !cmp.Equal(ticks, want) {
		t.Errorf("mismatching ticks, got %v", cmp.Diff(want, ticks))
	}

	// Ensure the step is rounded up so the tick count is never exceeded.
	ticks = ValueTicks(41234, 43890, 5)
	want = []float64{42000, 43000}
	if !cmp.Equal(ticks, want) {
		t.Errorf("mismatching ticks, got %v", cmp.Diff(want, ticks))
	}

	// Ensure ticks never escape the range.
	ticks = ValueTicks(0.9987, 1.0012, 5)
	assert.True(t, len(ticks) > 1)
	for _, v := range ticks {
		assert.True(t, v >= 0.9987)
		assert.True(t, v <= 1.0012+1e-9)
	}

	// Ensure an empty range yields its only value.
	assert.Equal(t, len(ValueTicks(3, 3, 5)), 1)
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{value: 43250.7, want: "43251"},
		{value: 2345.125, want: "2345"},
		{value: 1.23456, want: "1.23"},
		{value: 0.5, want: "0.5"},
		{value: 0.0123456, want: "0.0123"},
		{value: 0.000123456, want: "0.000123"},
	}

	for _, test := range tests {
		assert.Equal(t, FormatTick(test.value), test.want)
	}
}

func TestNearest(t *testing.T) {
	points := []Point{{X: 0}, {X: 10}, {X: 20}}

	// Ensure the horizontally closest point is found.
	assert.Equal(t, Nearest(points, 4), 0)
	assert.Equal(t, Nearest(points, 6), 1)
	assert.Equal(t, Nearest(points, 100), 2)
	assert.Equal(t, Nearest(points, -100), 0)

	// Ensure no points yield no index.
	assert.Equal(t, Nearest(nil, 3), -1)
}

func TestMonotone(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1.1}, {X: 3, Y: 5}, {X: 4, Y: 5}}
	segments := Monotone(points)

	// Ensure there is one segment between each pair of points.
	assert.Equal(t, len(segments), len(points)-1)

	for idx, seg := range segments {
		// Ensure the curve passes through every point.
		assert.Equal(t, seg.From, points[idx])
		assert.Equal(t, seg.To, points[idx+1])

		// Ensure control points stay between their end points, so monotone data never
		// overshoots.
		lo := math.Min(seg.From.Y, seg.To.Y)
		hi := math.Max(seg.From.Y, seg.To.Y)
		for _, c := range []Point{seg.C1, seg.C2} {
			assert.True(t, c.Y >= lo-1e-9)
			assert.True(t, c.Y <= hi+1e-9)
			assert.True(t, c.X > seg.From.X)
			assert.True(t, c.X < seg.To.X)
		}
	}

	// Ensure a flat run stays flat.
	flat := segments[3]
	assert.Equal(t, flat.C1.Y, float64(5))
	assert.Equal(t, flat.C2.Y, float64(5))

	// Ensure two points form a straight line.
	line := Monotone([]Point{{X: 0, Y: 0}, {X: 3, Y: 6}})
	assert.Equal(t, len(line), 1)
	assert.Equal(t, line[0].C1, Point{X: 1, Y: 2})
	assert.Equal(t, line[0].C2, Point{X: 2, Y: 4})

	// Ensure fewer than two points yield no segments.
	assert.Equal(t, len(Monotone([]Point{{X: 1, Y: 1}})), 0)
}
