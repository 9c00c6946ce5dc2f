package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/dberrors"
)

// CatalogRepository provides read access to the course/program/teacher
// catalog. The catalog is maintained elsewhere; the engine only resolves
// references out of it.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCourseByID retrieves a catalog course.
func (r *CatalogRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	var c models.Course
	err := r.db.QueryRow(ctx,
		`SELECT id, program_id, code, title, units FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.ProgramID, &c.Code, &c.Title, &c.Units)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &c, nil
}

// GetTeacherByID retrieves a teacher.
func (r *CatalogRepository) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var t models.Teacher
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("teacher %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &t, nil
}

// GetProgramByID retrieves a degree program.
func (r *CatalogRepository) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	var p models.Program
	err := r.db.QueryRow(ctx,
		`SELECT id, code, name FROM programs WHERE id = $1`, id,
	).Scan(&p.ID, &p.Code, &p.Name)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("program %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return &p, nil
}
