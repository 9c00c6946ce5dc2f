package models

// Meeting is one scheduled time block belonging to an offering. Times are
// minutes since midnight; the interval is half-open, so meetings that touch
// at an endpoint do not conflict. Day follows time.Weekday (Sunday = 0).
type Meeting struct {
	ID          int64  `json:"id" db:"id"`
	OfferingID  int64  `json:"offeringId" db:"offering_id"`
	Day         int    `json:"day" db:"day"`
	StartMinute int    `json:"startMinute" db:"start_minute"`
	EndMinute   int    `json:"endMinute" db:"end_minute"`
	Room        string `json:"room" db:"room"`
}

// ScheduledMeeting is a meeting joined with the offering it belongs to, as
// returned by conflict scans.
type ScheduledMeeting struct {
	Meeting
	OfferingCode string `json:"offeringCode" db:"offering_code"`
	TeacherID    int64  `json:"teacherId" db:"teacher_id"`
	Term         Term   `json:"term"`
}

// OverlapsWith reports whether two meetings collide on the same day using the
// half-open interval test.
func (m *Meeting) OverlapsWith(other *Meeting) bool {
	if m.Day != other.Day {
		return false
	}
	return m.StartMinute < other.EndMinute && other.StartMinute < m.EndMinute
}
