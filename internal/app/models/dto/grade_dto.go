package dto

import "github.com/emreo/scholaris/internal/app/models"

// ScoreUpdate is one student's new period scores. Nil fields clear nothing;
// they mean "score not yet recorded" and participate in remark derivation as
// absent.
type ScoreUpdate struct {
	LedgerRowID int64    `json:"ledgerRowId" binding:"required,gt=0"`
	StudentID   int64    `json:"studentId" binding:"required,gt=0"`
	Prelim      *float64 `json:"prelim"`
	Midterm     *float64 `json:"midterm"`
	Semifinal   *float64 `json:"semifinal"`
	Final       *float64 `json:"final"`
}

// UpdateScoresRequest is a batch of score edits applied atomically.
type UpdateScoresRequest struct {
	Rows []ScoreUpdate `json:"rows" binding:"required,min=1"`
}

// LedgerRowResponse is one graded record in an offering's ledger.
type LedgerRowResponse struct {
	ID            int64    `json:"id"`
	StudentID     int64    `json:"studentId"`
	StudentNumber string   `json:"studentNumber,omitempty"`
	StudentName   string   `json:"studentName,omitempty"`
	Prelim        *float64 `json:"prelim"`
	Midterm       *float64 `json:"midterm"`
	Semifinal     *float64 `json:"semifinal"`
	Final         *float64 `json:"final"`
	Remark        string   `json:"remark" example:"PASSED"`
}

// FromLedgerRow converts a models.LedgerRow to a LedgerRowResponse.
func FromLedgerRow(r *models.LedgerRow) LedgerRowResponse {
	resp := LedgerRowResponse{
		ID:        r.ID,
		StudentID: r.StudentID,
		Prelim:    r.Prelim,
		Midterm:   r.Midterm,
		Semifinal: r.Semifinal,
		Final:     r.Final,
		Remark:    r.Remark,
	}
	if r.Student != nil {
		resp.StudentNumber = r.Student.StudentNumber
		resp.StudentName = r.Student.LastName + ", " + r.Student.FirstName
	}
	return resp
}

// FieldRejection reports one score field that failed range validation. The
// rest of the row is still applied.
type FieldRejection struct {
	LedgerRowID int64  `json:"ledgerRowId"`
	Field       string `json:"field" example:"final"`
	Reason      string `json:"reason" example:"score 6.0 out of range 1.0-5.0"`
}

// UpdateScoresResult reports a batch score edit. The batch either committed
// as a whole or not at all; Rejected lists individual fields that were
// dropped from otherwise-applied rows.
type UpdateScoresResult struct {
	Rows     []LedgerRowResponse `json:"rows"`
	Rejected []FieldRejection    `json:"rejected,omitempty"`
}

// RemarkPreviewRequest asks for the remark a score set would produce, for
// live preview. Mirrors the server-side derivation exactly.
type RemarkPreviewRequest struct {
	Prelim    *float64 `json:"prelim"`
	Midterm   *float64 `json:"midterm"`
	Semifinal *float64 `json:"semifinal"`
	Final     *float64 `json:"final"`
}

// RemarkPreviewResponse carries the derived remark and rounded average.
type RemarkPreviewResponse struct {
	Remark  string   `json:"remark" example:"PASSED"`
	Average *float64 `json:"average,omitempty" example:"2.45"`
}
