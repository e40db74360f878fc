package bench

import (
	"math/rand"
	"time"
)

// DefaultSizes is the text-size ladder used when the caller does not pick
// their own.
var DefaultSizes = []int{1_000, 10_000, 100_000, 1_000_000}

// Point is one rung of a scalability ladder.
type Point struct {
	TextSize int
	Avg      time.Duration
	Matches  int
}

// Scalability measures pattern over random texts of the given sizes and
// returns one point per size. Sizes <= 0 are skipped.
func Scalability(pattern string, sizes []int, gcPercent float64, iterations int, rng *rand.Rand) ([]Point, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	var points []Point
	for _, n := range sizes {
		if n <= 0 {
			continue
		}
		text := RandomDNA(n, gcPercent, rng)
		r, err := MeasureDFA(pattern, text, iterations)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{TextSize: n, Avg: r.Avg, Matches: r.Matches})
	}
	return points, nil
}

// Step compares one ladder rung against the previous one.
type Step struct {
	SizeRatio float64
	TimeRatio float64
	Linear    bool
}

// Linearity is the verdict over a whole ladder.
type Linearity struct {
	Linear    bool
	Tolerance float64
	Steps     []Step
}

// CheckLinear verifies the O(n) contract empirically: between successive
// points, scan time may grow at most tolerance times faster than text
// size. Timer noise on very fast scans makes small ladders jitter, so a
// tolerance around 2 is the practical choice.
func CheckLinear(points []Point, tolerance float64) Linearity {
	if tolerance <= 0 {
		tolerance = 2.0
	}
	lin := Linearity{Linear: true, Tolerance: tolerance}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if prev.TextSize <= 0 || prev.Avg <= 0 {
			continue
		}
		s := Step{
			SizeRatio: float64(cur.TextSize) / float64(prev.TextSize),
			TimeRatio: float64(cur.Avg) / float64(prev.Avg),
		}
		s.Linear = s.TimeRatio <= s.SizeRatio*tolerance
		if !s.Linear {
			lin.Linear = false
		}
		lin.Steps = append(lin.Steps, s)
	}
	return lin
}
