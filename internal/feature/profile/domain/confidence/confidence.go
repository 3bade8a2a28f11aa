// Package confidence derives the confidence percentage of a parametric scoring record.
package confidence

import (
	"errors"
	"fmt"
)

// ScoreCount is the number of sub-scores that make up one scoring record.
const ScoreCount = 10

// ErrIncompleteScores is returned when at least one of the sub-scores is missing.
// A missing score is never treated as zero.
var ErrIncompleteScores = errors.New("confidence: all scores must be present")

// Calculate returns (mean of scores / 10) * 100.
func Calculate(scores [ScoreCount]*float64) (float64, error) {
	var total float64
	for _, s := range scores {
		if s == nil {
			return 0, ErrIncompleteScores
		}
		total += *s
	}
	average := total / ScoreCount
	return (average / 10) * 100, nil
}

// Format renders a confidence value as "NN.NN%".
func Format(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
