package models

// Student defines the student model based on the 'students' table.
type Student struct {
	ID            int64         `json:"id" db:"id" example:"1"`
	StudentNumber string        `json:"studentNumber" db:"student_number" example:"2023-00142"` // Registrar-issued unique number
	FirstName     string        `json:"firstName" db:"first_name"`
	LastName      string        `json:"lastName" db:"last_name"`
	ProgramID     int64         `json:"programId" db:"program_id"`
	YearLevel     int           `json:"yearLevel" db:"year_level" example:"2"`
	Section       string        `json:"section" db:"section" example:"A"`
	Status        StudentStatus `json:"status" db:"status" example:"ACTIVE"`

	// Relations (populated when needed)
	Program *Program `json:"program,omitempty"`
}
