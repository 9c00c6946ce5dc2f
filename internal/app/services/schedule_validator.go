package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/pkg/helpers"
)

// ScheduleConflict describes the first collision found between a candidate
// schedule and an existing meeting, or between two candidate meetings.
type ScheduleConflict struct {
	Candidate *models.Meeting
	Existing  *models.ScheduledMeeting // nil when two candidates collide
	Resource  string                   // "teacher" or "room"
}

// Error renders the conflict as a plain-text reason.
func (c *ScheduleConflict) Error() string {
	day := dayName(c.Candidate.Day)
	window := fmt.Sprintf("%s %s-%s", day,
		helpers.FormatClockMinute(c.Candidate.StartMinute),
		helpers.FormatClockMinute(c.Candidate.EndMinute))
	if c.Existing == nil {
		return fmt.Sprintf("requested meetings overlap each other on %s", window)
	}
	return fmt.Sprintf("%s conflict on %s with %s (%s-%s, room %s)",
		c.Resource, window, c.Existing.OfferingCode,
		helpers.FormatClockMinute(c.Existing.StartMinute),
		helpers.FormatClockMinute(c.Existing.EndMinute),
		c.Existing.Room)
}

// ScheduleValidator detects room/time overlap for a teacher or room within a
// term. It finds conflicts; resolving them is the caller's job.
type ScheduleValidator struct {
	meetings  MeetingStore
	crossTerm bool
}

// NewScheduleValidator creates a schedule validator. crossTerm widens the
// scan beyond the offering's own term.
func NewScheduleValidator(meetings MeetingStore, crossTerm bool) *ScheduleValidator {
	return &ScheduleValidator{meetings: meetings, crossTerm: crossTerm}
}

// Validate checks the candidate meetings against each other and against all
// other meetings of the same teacher or the same rooms, excluding the
// offering being edited. Must run on the transaction that will persist the
// meetings, so two concurrent schedule saves cannot both pass against a
// stale snapshot. Returns the first conflict found, or nil.
func (v *ScheduleValidator) Validate(ctx context.Context, tx pgx.Tx, teacherID int64, term models.Term, excludeOfferingID int64, candidates []*models.Meeting) (*ScheduleConflict, error) {
	// Candidates share a teacher, so any mutual overlap is a conflict
	// regardless of room.
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[i].OverlapsWith(candidates[j]) {
				return &ScheduleConflict{Candidate: candidates[j], Resource: "teacher"}, nil
			}
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	rooms := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if !seen[c.Room] {
			seen[c.Room] = true
			rooms = append(rooms, c.Room)
		}
	}

	existing, err := v.meetings.FindCandidateConflicts(ctx, tx, teacherID, rooms, term, v.crossTerm, excludeOfferingID)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		for _, e := range existing {
			if !c.OverlapsWith(&e.Meeting) {
				continue
			}
			resource := "room"
			if e.TeacherID == teacherID {
				resource = "teacher"
			} else if e.Room != c.Room {
				continue
			}
			return &ScheduleConflict{Candidate: c, Existing: e, Resource: resource}, nil
		}
	}
	return nil, nil
}

func dayName(day int) string {
	names := [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day >= 0 && day < 7 {
		return names[day]
	}
	return fmt.Sprintf("day %d", day)
}
