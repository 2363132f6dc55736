package series

import "time"

const (
	// WindowHours is the span of the sparkline window, one sample per hour.
	WindowHours = 168
	// SampleEvery is the index stride between labeled samples.
	SampleEvery = 6
	// LabelLayout formats labels as a short weekday and 12-hour clock hour, e.g. "Tue 3pm".
	LabelLayout = "Mon 3pm"
)

// LabeledPoint is a sampled price paired with a relative time label.
type LabeledPoint struct {
	Value float64
	Label string
	// At is the instant the label was derived from.
	At time.Time
}

// FormatLabel formats the provided time as a chart label.
func FormatLabel(t time.Time) string {
	return t.Format(LabelLayout)
}

// LabelSeries reduces an hourly price series to the points shown on a chart: every
// SampleEvery-th sample plus the most recent one. Sample i is labeled WindowHours-i hours
// before now, the last sample is labeled now.
func LabelSeries(prices []float64, now time.Time) []LabeledPoint {
	points := make([]LabeledPoint, 0, len(prices)/SampleEvery+2)
	last := len(prices) - 1

	for idx, price := range prices {
		var at time.Time
		switch {
		case idx%SampleEvery == 0:
			at = now.Add(-time.Duration(WindowHours-idx) * time.Hour)
		case idx == last:
			at = now
		default:
			continue
		}

		points = append(points, LabeledPoint{
			Value: price,
			Label: FormatLabel(at),
			At:    at,
		})
	}

	return points
}
