package models

import "time"

// LedgerRow is one student's graded record within one offering, unique on
// (StudentID, OfferingID). Period scores are on the 1.0 (best) to 5.0 (worst)
// scale and nil until recorded. Remark is recomputed whenever any score
// changes.
type LedgerRow struct {
	ID         int64     `json:"id" db:"id"`
	OfferingID int64     `json:"offeringId" db:"offering_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	Prelim     *float64  `json:"prelim" db:"prelim"`
	Midterm    *float64  `json:"midterm" db:"midterm"`
	Semifinal  *float64  `json:"semifinal" db:"semifinal"`
	Final      *float64  `json:"final" db:"final"`
	Remark     string    `json:"remark" db:"remark"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}

// Scores returns the four period scores in grading order.
func (r *LedgerRow) Scores() [4]*float64 {
	return [4]*float64{r.Prelim, r.Midterm, r.Semifinal, r.Final}
}

// HasAnyScore reports whether at least one period score has been recorded.
func (r *LedgerRow) HasAnyScore() bool {
	return r.Prelim != nil || r.Midterm != nil || r.Semifinal != nil || r.Final != nil
}
