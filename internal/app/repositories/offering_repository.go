package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/dberrors"
)

// OfferingCodeConstraint is the unique index backing offering code
// uniqueness; it is the final backstop against concurrent code allocation.
const OfferingCodeConstraint = "offerings_code_key"

// OfferingRepository handles database operations for course offerings.
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository.
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func (r *OfferingRepository) querier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.db
}

// NextCodeSequence atomically allocates the next sequence number for the
// given course and term. Must run inside the same transaction as the
// offering insert so the read-modify-write serializes on the sequence row.
func (r *OfferingRepository) NextCodeSequence(ctx context.Context, tx pgx.Tx, courseID int64, term models.Term) (int, error) {
	query := `
		INSERT INTO offering_code_sequences (course_id, semester, school_year, next_seq)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (course_id, semester, school_year)
		DO UPDATE SET next_seq = offering_code_sequences.next_seq + 1
		RETURNING next_seq
	`

	var seq int
	err := r.querier(tx).QueryRow(ctx, query, courseID, term.Semester, term.SchoolYear).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("error allocating offering code sequence: %w", err)
	}
	return seq, nil
}

// Create inserts a new offering inside the caller's transaction.
func (r *OfferingRepository) Create(ctx context.Context, tx pgx.Tx, offering *models.Offering) error {
	query := `
		INSERT INTO offerings (code, course_id, teacher_id, program_id, section, semester, school_year, units, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.querier(tx).QueryRow(ctx, query,
		offering.Code, offering.CourseID, offering.TeacherID, offering.ProgramID,
		offering.Section, offering.Term.Semester, offering.Term.SchoolYear,
		offering.Units, offering.Status,
	).Scan(&offering.ID, &offering.CreatedAt, &offering.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, OfferingCodeConstraint) {
			return apperrors.NewConflictError(fmt.Sprintf("offering code %s already exists", offering.Code))
		}
		return fmt.Errorf("error creating offering: %w", err)
	}
	return nil
}

// GetByID retrieves an offering with its course and teacher relations.
func (r *OfferingRepository) GetByID(ctx context.Context, id int64) (*models.Offering, error) {
	query := `
		SELECT o.id, o.code, o.course_id, o.teacher_id, o.program_id, o.section,
		       o.semester, o.school_year, o.units, o.status, o.created_at, o.updated_at,
		       c.code, c.title, c.units,
		       t.first_name, t.last_name
		FROM offerings o
		JOIN courses c ON o.course_id = c.id
		JOIN teachers t ON o.teacher_id = t.id
		WHERE o.id = $1
	`

	var o models.Offering
	var course models.Course
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Code, &o.CourseID, &o.TeacherID, &o.ProgramID, &o.Section,
		&o.Term.Semester, &o.Term.SchoolYear, &o.Units, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&course.Code, &course.Title, &course.Units,
		&teacher.FirstName, &teacher.LastName,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving offering: %w", err)
	}

	course.ID = o.CourseID
	teacher.ID = o.TeacherID
	o.Course = &course
	o.Teacher = &teacher
	return &o, nil
}

// GetByIDForUpdate locks the offering row inside the caller's transaction so
// concurrent edits of the same offering serialize.
func (r *OfferingRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Offering, error) {
	query := `
		SELECT id, code, course_id, teacher_id, program_id, section,
		       semester, school_year, units, status, created_at, updated_at
		FROM offerings
		WHERE id = $1
		FOR UPDATE
	`

	var o models.Offering
	err := r.querier(tx).QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Code, &o.CourseID, &o.TeacherID, &o.ProgramID, &o.Section,
		&o.Term.Semester, &o.Term.SchoolYear, &o.Units, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving offering for update: %w", err)
	}
	return &o, nil
}

// ListByTerm retrieves offerings, optionally narrowed to one term.
func (r *OfferingRepository) ListByTerm(ctx context.Context, term *models.Term) ([]*models.Offering, error) {
	builder := psql.Select(
		"o.id", "o.code", "o.course_id", "o.teacher_id", "o.program_id", "o.section",
		"o.semester", "o.school_year", "o.units", "o.status", "o.created_at", "o.updated_at",
		"c.code", "c.title", "c.units",
		"t.first_name", "t.last_name",
	).
		From("offerings o").
		Join("courses c ON o.course_id = c.id").
		Join("teachers t ON o.teacher_id = t.id").
		OrderBy("o.code")

	if term != nil {
		builder = builder.Where("o.semester = ? AND o.school_year = ?", term.Semester, term.SchoolYear)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build offering list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.Offering
	for rows.Next() {
		var o models.Offering
		var course models.Course
		var teacher models.Teacher
		if err := rows.Scan(
			&o.ID, &o.Code, &o.CourseID, &o.TeacherID, &o.ProgramID, &o.Section,
			&o.Term.Semester, &o.Term.SchoolYear, &o.Units, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&course.Code, &course.Title, &course.Units,
			&teacher.FirstName, &teacher.LastName,
		); err != nil {
			return nil, err
		}
		course.ID = o.CourseID
		teacher.ID = o.TeacherID
		o.Course = &course
		o.Teacher = &teacher
		offerings = append(offerings, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offerings, nil
}

// Update persists re-assignable offering fields. The code column is never
// touched; it is immutable after creation.
func (r *OfferingRepository) Update(ctx context.Context, tx pgx.Tx, offering *models.Offering) error {
	query := `
		UPDATE offerings
		SET teacher_id = $1, program_id = $2, section = $3,
		    semester = $4, school_year = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.querier(tx).Exec(ctx, query,
		offering.TeacherID, offering.ProgramID, offering.Section,
		offering.Term.Semester, offering.Term.SchoolYear, offering.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating offering: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", offering.ID))
	}
	return nil
}

// UpdateStatus flips the offering lifecycle state.
func (r *OfferingRepository) UpdateStatus(ctx context.Context, id int64, status models.OfferingStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE offerings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating offering status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
	}
	return nil
}

// Delete removes an offering row inside the caller's transaction. Dependent
// meeting and ledger rows must already be gone; the service layer decides
// whether cascading is permitted.
func (r *OfferingRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := r.querier(tx).Exec(ctx, `DELETE FROM offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting offering: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
	}
	return nil
}
