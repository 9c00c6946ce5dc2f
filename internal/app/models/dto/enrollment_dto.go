package dto

import "github.com/emreo/scholaris/internal/app/models"

// EnrollRequest enrolls students into an offering. Already-enrolled ids are
// skipped, not rejected.
type EnrollRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
}

// UnenrollRequest removes students from an offering. This discards their
// recorded scores, so the caller must confirm explicitly.
type UnenrollRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
	Confirm    bool    `json:"confirm" binding:"required"`
}

// EnrollmentResult reports how an enrollment mutation landed.
type EnrollmentResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Removed int `json:"removed"`
}

// AddableStudentsFilter narrows the addable-students page.
type AddableStudentsFilter struct {
	ProgramID int64
	YearLevel int
	Section   string
	Status    string
	Page      int
	PageSize  int
}

// StudentResponse is one student row in listings.
type StudentResponse struct {
	ID            int64  `json:"id"`
	StudentNumber string `json:"studentNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ProgramID     int64  `json:"programId"`
	YearLevel     int    `json:"yearLevel"`
	Section       string `json:"section"`
	Status        string `json:"status"`
}

// FromStudent converts a models.Student to a StudentResponse.
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID,
		StudentNumber: s.StudentNumber,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		ProgramID:     s.ProgramID,
		YearLevel:     s.YearLevel,
		Section:       s.Section,
		Status:        string(s.Status),
	}
}
