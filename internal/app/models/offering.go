package models

import "time"

// Offering binds a course to a teacher, program and term under a unique
// offering code. The code is immutable after creation.
type Offering struct {
	ID        int64          `json:"id" db:"id"`
	Code      string         `json:"code" db:"code"`
	CourseID  int64          `json:"courseId" db:"course_id"`
	TeacherID int64          `json:"teacherId" db:"teacher_id"`
	ProgramID int64          `json:"programId" db:"program_id"`
	Section   string         `json:"section" db:"section"`
	Term      Term           `json:"term"`
	Units     int            `json:"units" db:"units"`
	Status    OfferingStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course   *Course    `json:"course,omitempty"`
	Teacher  *Teacher   `json:"teacher,omitempty"`
	Program  *Program   `json:"program,omitempty"`
	Meetings []*Meeting `json:"meetings,omitempty"`
}
