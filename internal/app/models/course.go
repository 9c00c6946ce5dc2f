package models

// Course represents a catalog course that offerings are created from.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	ProgramID int64  `json:"programId" db:"program_id"`
	Code      string `json:"code" db:"code"`
	Title     string `json:"title" db:"title"`
	Units     int    `json:"units" db:"units"`

	// Relations (populated when needed)
	Program *Program `json:"program,omitempty"`
}
