package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
)

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindAddable returns one page of students matching the filters who are not
// yet enrolled in the given offering, plus the total match count.
func (r *StudentRepository) FindAddable(ctx context.Context, offeringID int64, filter dto.AddableStudentsFilter) ([]*models.Student, int64, error) {
	notEnrolled := squirrel.Expr(
		"NOT EXISTS (SELECT 1 FROM ledger_rows l WHERE l.student_id = s.id AND l.offering_id = ?)",
		offeringID,
	)

	where := squirrel.And{notEnrolled}
	if filter.ProgramID > 0 {
		where = append(where, squirrel.Eq{"s.program_id": filter.ProgramID})
	}
	if filter.YearLevel > 0 {
		where = append(where, squirrel.Eq{"s.year_level": filter.YearLevel})
	}
	if filter.Section != "" {
		where = append(where, squirrel.Eq{"s.section": strings.TrimSpace(filter.Section)})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"s.status": strings.ToUpper(strings.TrimSpace(filter.Status))})
	}

	countSql, countArgs, err := psql.Select("COUNT(*)").From("students s").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build addable students count query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count addable students: %w", err)
	}
	if totalItems == 0 {
		return []*models.Student{}, 0, nil
	}

	offset := uint64((filter.Page - 1) * filter.PageSize)
	listSql, listArgs, err := psql.Select(
		"s.id", "s.student_number", "s.first_name", "s.last_name",
		"s.program_id", "s.year_level", "s.section", "s.status",
	).
		From("students s").
		Where(where).
		OrderBy("s.last_name", "s.first_name").
		Limit(uint64(filter.PageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build addable students query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query addable students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName,
			&s.ProgramID, &s.YearLevel, &s.Section, &s.Status,
		); err != nil {
			return nil, 0, err
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return students, totalItems, nil
}

// FilterExisting returns which of the given student ids actually exist.
func (r *StudentRepository) FilterExisting(ctx context.Context, studentIDs []int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM students WHERE id = ANY($1)`, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error checking student ids: %w", err)
	}
	defer rows.Close()

	var existing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing = append(existing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return existing, nil
}
