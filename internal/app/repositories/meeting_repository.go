package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/scholaris/internal/app/models"
)

// MeetingRepository handles database operations for scheduled meetings.
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new meeting repository.
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) querier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.db
}

// GetByOffering retrieves all meetings of one offering ordered by day and start.
func (r *MeetingRepository) GetByOffering(ctx context.Context, offeringID int64) ([]*models.Meeting, error) {
	query := `
		SELECT id, offering_id, day, start_minute, end_minute, room
		FROM meetings
		WHERE offering_id = $1
		ORDER BY day, start_minute
	`

	rows, err := r.db.Query(ctx, query, offeringID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(&m.ID, &m.OfferingID, &m.Day, &m.StartMinute, &m.EndMinute, &m.Room); err != nil {
			return nil, err
		}
		meetings = append(meetings, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindCandidateConflicts loads every active-offering meeting that could
// collide with a schedule for the given teacher or rooms, excluding the
// offering being edited. Scoped to the term unless crossTerm is set. Runs on
// the caller's transaction so validation and persistence see one snapshot.
func (r *MeetingRepository) FindCandidateConflicts(ctx context.Context, tx pgx.Tx, teacherID int64, rooms []string, term models.Term, crossTerm bool, excludeOfferingID int64) ([]*models.ScheduledMeeting, error) {
	builder := psql.Select(
		"m.id", "m.offering_id", "m.day", "m.start_minute", "m.end_minute", "m.room",
		"o.code", "o.teacher_id", "o.semester", "o.school_year",
	).
		From("meetings m").
		Join("offerings o ON m.offering_id = o.id").
		Where(squirrel.Eq{"o.status": models.OfferingActive}).
		Where(squirrel.Or{
			squirrel.Eq{"o.teacher_id": teacherID},
			squirrel.Eq{"m.room": rooms},
		})

	if excludeOfferingID > 0 {
		builder = builder.Where(squirrel.NotEq{"o.id": excludeOfferingID})
	}
	if !crossTerm {
		builder = builder.Where(squirrel.Eq{
			"o.semester":    term.Semester,
			"o.school_year": term.SchoolYear,
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build conflict scan query: %w", err)
	}

	rows, err := r.querier(tx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error scanning for conflicting meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*models.ScheduledMeeting
	for rows.Next() {
		var m models.ScheduledMeeting
		if err := rows.Scan(&m.ID, &m.OfferingID, &m.Day, &m.StartMinute, &m.EndMinute, &m.Room,
			&m.OfferingCode, &m.TeacherID, &m.Term.Semester, &m.Term.SchoolYear); err != nil {
			return nil, err
		}
		meetings = append(meetings, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meetings, nil
}

// ReplaceForOffering swaps the offering's schedule for the given meetings
// inside the caller's transaction.
func (r *MeetingRepository) ReplaceForOffering(ctx context.Context, tx pgx.Tx, offeringID int64, meetings []*models.Meeting) error {
	q := r.querier(tx)

	if _, err := q.Exec(ctx, `DELETE FROM meetings WHERE offering_id = $1`, offeringID); err != nil {
		return fmt.Errorf("error clearing meetings: %w", err)
	}

	for _, m := range meetings {
		err := q.QueryRow(ctx, `
			INSERT INTO meetings (offering_id, day, start_minute, end_minute, room)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			offeringID, m.Day, m.StartMinute, m.EndMinute, m.Room,
		).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("error inserting meeting: %w", err)
		}
		m.OfferingID = offeringID
	}
	return nil
}

// DeleteForOffering removes all meetings of an offering inside the caller's
// transaction.
func (r *MeetingRepository) DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error {
	if _, err := r.querier(tx).Exec(ctx, `DELETE FROM meetings WHERE offering_id = $1`, offeringID); err != nil {
		return fmt.Errorf("error deleting meetings: %w", err)
	}
	return nil
}
