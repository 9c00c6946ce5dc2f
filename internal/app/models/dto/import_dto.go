package dto

// ImportRowError identifies one rejected score-sheet row and why it was
// skipped. Row numbers are 1-based and count data rows, not the header.
type ImportRowError struct {
	Row           int    `json:"row" example:"4"`
	StudentNumber string `json:"studentNumber,omitempty" example:"2023-00142"`
	Reason        string `json:"reason" example:"final score 6.0 out of range 1.0-5.0"`
}

// ImportResult reports a bulk score import. Row-level failures never abort
// the import; only structural failures do.
type ImportResult struct {
	ProcessedCount int              `json:"processedCount" example:"9"`
	FailedCount    int              `json:"failedCount" example:"1"`
	Errors         []ImportRowError `json:"errors"`
}
