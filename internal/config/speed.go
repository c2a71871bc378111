package config

import "math"

// SpeedCurve maps score to scroll speed.
// Speed grows linearly with score from Initial and is capped at Max.
type SpeedCurve struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added per point of score
	Max       float64 `yaml:"max"`
}

// Speed returns the scroll speed for the given score.
// Negative scores are treated as zero so the curve never drops below Initial.
func (c SpeedCurve) Speed(score int) float64 {
	if score < 0 {
		score = 0
	}
	return math.Min(c.Initial+float64(score)*c.Increment, c.Max)
}

// ScoreAtMax returns the first score at which the curve reaches Max,
// or -1 when it never grows.
func (c SpeedCurve) ScoreAtMax() int {
	if c.Increment <= 0 {
		return -1
	}
	if c.Initial >= c.Max {
		return 0
	}
	return int(math.Ceil((c.Max - c.Initial) / c.Increment))
}
