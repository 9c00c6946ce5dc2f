// Package gradepolicy holds the canonical remark derivation formula. Any
// client-side preview must reproduce this computation bit-for-bit; keep the
// policy constants and the rounding rule here and nowhere else.
package gradepolicy

import "math"

// Remark values derived from the weighted period scores.
const (
	RemarkPassed     = "PASSED"
	RemarkFailed     = "FAILED"
	RemarkIncomplete = "INCOMPLETE"
)

// Score scale bounds. 1.0 is the best grade, 5.0 the worst.
const (
	MinScore = 1.0
	MaxScore = 5.0
)

// PassingThreshold is the inclusive weighted-average bound for a PASSED remark.
const PassingThreshold = 3.00

// periodWeights are the nominal weights for prelim, midterm, semifinal and
// final. Weights of absent scores are excluded from both numerator and
// denominator, so the mean is always renormalized over present entries.
var periodWeights = [4]float64{0.30, 0.30, 0.20, 0.20}

// PeriodCount is the number of grading periods per offering.
const PeriodCount = 4

// InRange reports whether a score lies on the 1.0-5.0 scale.
func InRange(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

// Compute derives the remark and the rounded weighted average from up to four
// period scores. Nil entries are absent scores. The average is rounded to two
// decimal places before the threshold comparison; it is nil when every score
// is absent, in which case the remark is INCOMPLETE.
func Compute(scores [4]*float64) (remark string, average *float64) {
	var sum, weight float64
	present := 0
	for i, s := range scores {
		if s == nil {
			continue
		}
		sum += *s * periodWeights[i]
		weight += periodWeights[i]
		present++
	}

	if present == 0 {
		return RemarkIncomplete, nil
	}

	avg := math.Round(sum/weight*100) / 100
	if avg <= PassingThreshold {
		return RemarkPassed, &avg
	}
	return RemarkFailed, &avg
}
