package report

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/frlex"
)

// ScoreStats describes the distribution of importance scores.
type ScoreStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Scores computes ScoreStats over words. The standard deviation is zero for
// fewer than two words.
func Scores(words []frlex.LexicalItem) ScoreStats {
	if len(words) == 0 {
		return ScoreStats{}
	}
	xs := make([]float64, len(words))
	for i, w := range words {
		xs[i] = w.ImportanceScore
	}

	s := ScoreStats{
		Count: len(xs),
		Mean:  round(stat.Mean(xs, nil)),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	if len(xs) > 1 {
		s.StdDev = round(stat.StdDev(xs, nil))
	}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	return s
}

func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
