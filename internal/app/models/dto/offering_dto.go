package dto

import (
	"fmt"

	"github.com/emreo/scholaris/internal/app/models"
)

// MeetingRequest is one requested time block. Times use the "HH:MM" form.
type MeetingRequest struct {
	Day   int    `json:"day" binding:"min=0,max=6"`
	Start string `json:"start" binding:"required,hhmm" example:"09:00"`
	End   string `json:"end" binding:"required,hhmm" example:"10:30"`
	Room  string `json:"room" binding:"required" example:"RM-204"`
}

// CreateOfferingRequest creates a new course offering.
type CreateOfferingRequest struct {
	CourseID   int64            `json:"courseId" binding:"required,gt=0"`
	TeacherID  int64            `json:"teacherId" binding:"required,gt=0"`
	ProgramID  int64            `json:"programId" binding:"required,gt=0"`
	Section    string           `json:"section" binding:"required"`
	Semester   string           `json:"semester" binding:"required" example:"FIRST"`
	SchoolYear string           `json:"schoolYear" binding:"required" example:"2025-2026"`
	Meetings   []MeetingRequest `json:"meetings"`
	StudentIDs []int64          `json:"studentIds"` // optional initial enrollment block
}

// UpdateOfferingRequest re-assigns an offering and/or replaces its schedule
// and reconciles enrollment. Nil slices mean "leave unchanged".
type UpdateOfferingRequest struct {
	TeacherID        int64             `json:"teacherId" binding:"required,gt=0"`
	ProgramID        int64             `json:"programId" binding:"required,gt=0"`
	Section          string            `json:"section" binding:"required"`
	Semester         string            `json:"semester" binding:"required"`
	SchoolYear       string            `json:"schoolYear" binding:"required"`
	Meetings         *[]MeetingRequest `json:"meetings,omitempty"`
	AddStudentIDs    []int64           `json:"addStudentIds"`
	RemoveStudentIDs []int64           `json:"removeStudentIds"`
}

// MeetingResponse is one scheduled time block.
type MeetingResponse struct {
	ID    int64  `json:"id"`
	Day   int    `json:"day"`
	Start string `json:"start" example:"09:00"`
	End   string `json:"end" example:"10:30"`
	Room  string `json:"room"`
}

// OfferingResponse is the offering detail payload.
type OfferingResponse struct {
	ID          int64             `json:"id"`
	Code        string            `json:"code" example:"MATH101-1-2025-01"`
	CourseID    int64             `json:"courseId"`
	CourseCode  string            `json:"courseCode,omitempty"`
	CourseTitle string            `json:"courseTitle,omitempty"`
	TeacherID   int64             `json:"teacherId"`
	TeacherName string            `json:"teacherName,omitempty"`
	ProgramID   int64             `json:"programId"`
	Section     string            `json:"section"`
	Semester    string            `json:"semester"`
	SchoolYear  string            `json:"schoolYear"`
	Units       int               `json:"units"`
	Status      string            `json:"status"`
	Meetings    []MeetingResponse `json:"meetings"`
	Enrolled    int               `json:"enrolled"`
}

// minuteToClock renders minutes since midnight as "HH:MM".
func minuteToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FromMeeting converts a models.Meeting to a MeetingResponse.
func FromMeeting(m *models.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:    m.ID,
		Day:   m.Day,
		Start: minuteToClock(m.StartMinute),
		End:   minuteToClock(m.EndMinute),
		Room:  m.Room,
	}
}

// FromOffering converts a models.Offering to an OfferingResponse.
func FromOffering(o *models.Offering, enrolled int) OfferingResponse {
	resp := OfferingResponse{
		ID:         o.ID,
		Code:       o.Code,
		CourseID:   o.CourseID,
		TeacherID:  o.TeacherID,
		ProgramID:  o.ProgramID,
		Section:    o.Section,
		Semester:   string(o.Term.Semester),
		SchoolYear: o.Term.SchoolYear,
		Units:      o.Units,
		Status:     string(o.Status),
		Meetings:   make([]MeetingResponse, 0, len(o.Meetings)),
		Enrolled:   enrolled,
	}
	if o.Course != nil {
		resp.CourseCode = o.Course.Code
		resp.CourseTitle = o.Course.Title
	}
	if o.Teacher != nil {
		resp.TeacherName = o.Teacher.FirstName + " " + o.Teacher.LastName
	}
	for _, m := range o.Meetings {
		resp.Meetings = append(resp.Meetings, FromMeeting(m))
	}
	return resp
}
