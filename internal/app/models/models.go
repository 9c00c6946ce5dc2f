package models

// Semester identifies one of the school-year terms.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
	SemesterSummer Semester = "SUMMER"
)

// Valid reports whether s is a known semester value.
func (s Semester) Valid() bool {
	switch s {
	case SemesterFirst, SemesterSecond, SemesterSummer:
		return true
	}
	return false
}

// Term scopes offerings and meeting conflict checks. SchoolYear uses the
// "2025-2026" form.
type Term struct {
	Semester   Semester `json:"semester" db:"semester"`
	SchoolYear string   `json:"schoolYear" db:"school_year"`
}

// OfferingStatus is the lifecycle state of an offering.
type OfferingStatus string

const (
	OfferingActive  OfferingStatus = "ACTIVE"
	OfferingRetired OfferingStatus = "RETIRED"
)

// StudentStatus is the registrar standing of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentInactive  StudentStatus = "INACTIVE"
	StudentGraduated StudentStatus = "GRADUATED"
)
